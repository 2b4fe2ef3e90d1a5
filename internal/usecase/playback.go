package usecase

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sk-ys/video-snapshot/internal/domain/entity"
	"github.com/sk-ys/video-snapshot/internal/domain/port"
	"github.com/sk-ys/video-snapshot/pkg/timefmt"
)

// Key bindings for the interactive loop.
const (
	KeyQuit        = 'q'
	KeyTogglePause = ' '
	KeySnapshot    = 's'
	KeyStepBack    = 'a'
	KeyStepForward = 'd'
	KeyFixAspect   = 'r'
	KeyResetSize   = 'R'
)

type ControllerConfig struct {
	PollInterval          time.Duration
	SnapshotDirName       string
	SeekProgressMinFrames int
}

// Controller owns the open video handle, the current decoded frame and the
// playback state, and drives the interactive loop. Everything runs on the
// calling goroutine; decode, render and input handling are strictly
// sequential within one iteration.
type Controller struct {
	opener  port.SourceOpener
	display port.Display
	encoder port.SnapshotEncoder
	logger  *zap.Logger
	cfg     ControllerConfig

	videoPath string
	source    port.VideoSource
	frame     port.Frame
	state     *entity.PlaybackState

	origWidth  int
	origHeight int

	srcSize  int64
	srcMtime time.Time
}

func NewController(
	opener port.SourceOpener,
	display port.Display,
	encoder port.SnapshotEncoder,
	logger *zap.Logger,
	cfg ControllerConfig,
) *Controller {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 30 * time.Millisecond
	}
	if cfg.SnapshotDirName == "" {
		cfg.SnapshotDirName = "snapshots"
	}
	return &Controller{
		opener:  opener,
		display: display,
		encoder: encoder,
		logger:  logger,
		cfg:     cfg,
		state:   entity.NewPlaybackState(),
	}
}

// Run opens the video, decodes the first frame and enters the interactive
// loop. Only fatal setup errors are returned; interactive failures are
// logged and the loop continues.
func (c *Controller) Run(ctx context.Context, videoPath string) error {
	c.videoPath = videoPath
	c.recordSourceIdentity()

	src, err := c.opener.Open(videoPath)
	if err != nil {
		return fmt.Errorf("open video: %w", err)
	}
	c.source = src
	defer c.releaseSource()

	c.logger.Info("video opened",
		zap.String("path", videoPath),
		zap.String("backend", src.Backend()),
	)

	frame, ok := src.Read()
	if !ok {
		return fmt.Errorf("decode first frame of %s", videoPath)
	}
	c.frame = frame
	defer c.releaseFrame()

	c.origWidth, c.origHeight = frame.Size()
	c.display.Resize(c.origWidth, c.origHeight)

	if err := os.MkdirAll(c.snapshotDir(), 0755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}

	return c.loop(ctx)
}

func (c *Controller) loop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !c.display.Visible() {
			c.logger.Info("window closed")
			return nil
		}

		if !c.state.Paused {
			frame, ok := c.source.Read()
			if !ok {
				c.logger.Info("end of stream reached",
					zap.Int("frame_index", c.state.FrameIndex))
				return nil
			}
			c.replaceFrame(frame)
			c.state.Advance()
		}

		if c.frame != nil {
			c.display.Show(c.frame)
		}

		key := c.display.WaitKey(c.cfg.PollInterval)
		if key < 0 {
			continue
		}
		if quit := c.handleKey(key); quit {
			return nil
		}
	}
}

func (c *Controller) handleKey(key int) (quit bool) {
	switch key {
	case KeyQuit:
		c.logger.Info("quit requested")
		return true
	case KeyTogglePause:
		if c.state.TogglePause() {
			c.logger.Info("paused", zap.Int("frame_index", c.state.FrameIndex))
		} else {
			c.logger.Info("resumed")
		}
	case KeySnapshot:
		c.snapshot()
	case KeyStepForward:
		c.stepForward()
	case KeyStepBack:
		c.stepBackward()
	case KeyFixAspect:
		c.fixAspect()
	case KeyResetSize:
		c.display.Resize(c.origWidth, c.origHeight)
		c.logger.Info("window reset to frame size",
			zap.Int("width", c.origWidth),
			zap.Int("height", c.origHeight),
		)
	}
	return false
}

// stepForward reads the next frame while paused. At end of stream the held
// frame and index stay as they are.
func (c *Controller) stepForward() {
	if !c.state.Paused {
		return
	}
	frame, ok := c.source.Read()
	if !ok {
		c.logger.Warn("no more frames")
		return
	}
	c.replaceFrame(frame)
	c.state.Advance()
	c.logger.Info("stepped forward", zap.Int("frame_index", c.state.FrameIndex))
}

func (c *Controller) snapshot() {
	if c.frame == nil {
		c.logger.Warn("snapshot skipped: no frame held")
		return
	}

	base := strings.TrimSuffix(filepath.Base(c.videoPath), filepath.Ext(c.videoPath))
	pos := c.source.PositionMsec()
	name := entity.SnapshotFilename(base, pos, c.state.FrameIndex)
	path := filepath.Join(c.snapshotDir(), name)

	data, err := c.encoder.Encode(c.frame)
	if err != nil {
		c.logger.Warn("snapshot encode failed", zap.Error(err))
		return
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		c.logger.Warn("snapshot write failed", zap.String("path", path), zap.Error(err))
		return
	}

	snap := entity.NewSnapshot(path, c.state.FrameIndex, timefmt.FormatMsec(pos), len(data))
	c.logger.Info("snapshot saved",
		zap.String("id", snap.ID.String()),
		zap.String("path", snap.Path),
		zap.Int("frame_index", snap.FrameIndex),
		zap.Int("bytes", snap.Bytes),
	)
}

// fixAspect keeps the current window width and recomputes the height from
// the original frame's aspect ratio.
func (c *Controller) fixAspect() {
	width, _, err := c.display.ContentSize()
	if err != nil {
		c.logger.Warn("window geometry query failed", zap.Error(err))
		return
	}
	aspect := float64(c.origWidth) / float64(c.origHeight)
	height := int(math.Round(float64(width) / aspect))
	c.display.Resize(width, height)
	c.logger.Info("aspect ratio restored",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

func (c *Controller) snapshotDir() string {
	return filepath.Join(filepath.Dir(c.videoPath), c.cfg.SnapshotDirName)
}

func (c *Controller) replaceFrame(f port.Frame) {
	if c.frame != nil {
		c.frame.Close()
	}
	c.frame = f
}

func (c *Controller) releaseFrame() {
	if c.frame != nil {
		c.frame.Close()
		c.frame = nil
	}
}

func (c *Controller) releaseSource() {
	if c.source != nil {
		_ = c.source.Close()
		c.source = nil
	}
}

func (c *Controller) recordSourceIdentity() {
	if info, err := os.Stat(c.videoPath); err == nil {
		c.srcSize = info.Size()
		c.srcMtime = info.ModTime()
	}
}

// sourceChanged compares the file's size and mtime against what was recorded
// at open, so a failed re-seek can be attributed to the file changing.
func (c *Controller) sourceChanged() (bool, string) {
	info, err := os.Stat(c.videoPath)
	if err != nil {
		return true, err.Error()
	}
	if info.Size() != c.srcSize || !info.ModTime().Equal(c.srcMtime) {
		return true, fmt.Sprintf("size %d -> %d, mtime %s -> %s",
			c.srcSize, info.Size(),
			c.srcMtime.Format(time.RFC3339), info.ModTime().Format(time.RFC3339))
	}
	return false, ""
}
