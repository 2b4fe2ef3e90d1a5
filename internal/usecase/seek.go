package usecase

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/sk-ys/video-snapshot/internal/domain/port"
)

// stepBackward retreats one frame while paused. The capture handle is
// forward-only, so the source is reopened and linearly re-decoded up to the
// target index. On any failure the current handle, frame and index are left
// untouched. No-op at the first frame.
func (c *Controller) stepBackward() {
	if !c.state.Paused {
		return
	}
	target := c.state.FrameIndex - 1
	if target < 1 {
		return
	}

	src, frame, err := c.reopenAndSeek(target)
	if err != nil {
		c.logger.Warn("step backward failed",
			zap.Int("target_frame", target),
			zap.Error(err),
		)
		return
	}

	_ = c.source.Close()
	c.source = src
	c.replaceFrame(frame)
	c.state.SeekTo(target)
	c.logger.Info("stepped backward", zap.Int("frame_index", target))
}

// reopenAndSeek opens a fresh handle and decodes frames 1..target,
// discarding intermediates. Linear in target; the backend's direct seeks are
// unreliable for many container formats, so they are deliberately not used.
func (c *Controller) reopenAndSeek(target int) (port.VideoSource, port.Frame, error) {
	if changed, detail := c.sourceChanged(); changed {
		c.logger.Warn("source file changed since open", zap.String("detail", detail))
	}

	src, err := c.opener.Open(c.videoPath)
	if err != nil {
		return nil, nil, fmt.Errorf("reopen video: %w", err)
	}

	var bar *progressbar.ProgressBar
	if c.cfg.SeekProgressMinFrames > 0 && target >= c.cfg.SeekProgressMinFrames {
		bar = progressbar.NewOptions(target,
			progressbar.OptionSetDescription("Re-seeking..."),
			progressbar.OptionClearOnFinish(),
		)
	}

	var frame port.Frame
	for i := 0; i < target; i++ {
		next, ok := src.Read()
		if !ok {
			if frame != nil {
				frame.Close()
			}
			_ = src.Close()
			return nil, nil, fmt.Errorf("stream ended at frame %d before target %d", i, target)
		}
		if frame != nil {
			frame.Close()
		}
		frame = next
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	return src, frame, nil
}
