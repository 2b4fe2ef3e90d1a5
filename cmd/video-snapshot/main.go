package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/sk-ys/video-snapshot/internal/domain/port"
	"github.com/sk-ys/video-snapshot/internal/infra/config"
	"github.com/sk-ys/video-snapshot/internal/infra/ffprobe"
	"github.com/sk-ys/video-snapshot/internal/infra/picker"
	"github.com/sk-ys/video-snapshot/internal/infra/video"
	"github.com/sk-ys/video-snapshot/internal/usecase"
	"github.com/sk-ys/video-snapshot/pkg/logger"
)

const windowTitle = "video-snapshot (space: play/pause, s: snapshot, a/d: frame step, r/R: resize, q: quit)"

func main() {
	cmd := &cli.Command{
		Name:      "video-snapshot",
		Usage:     "Step through a video frame-by-frame and save PNG snapshots",
		ArgsUsage: "[VIDEO]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:  "snapshot-dir",
				Usage: "snapshot directory name, created alongside the video",
			},
			&cli.IntFlag{
				Name:  "poll-interval",
				Usage: "key poll interval in milliseconds",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if v := cmd.String("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if v := cmd.String("snapshot-dir"); v != "" {
		cfg.SnapshotDirName = v
	}
	if v := cmd.Int("poll-interval"); v > 0 {
		cfg.PollIntervalMs = int(v)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	log = log.With(zap.String("session_id", uuid.NewString()))

	videoPath, err := resolveVideoPath(cmd.Args().First(), picker.NewDialog(), log)
	if err != nil {
		return err
	}
	videoPath, err = filepath.Abs(videoPath)
	if err != nil {
		return fmt.Errorf("resolve video path: %w", err)
	}
	if _, err := os.Stat(videoPath); err != nil {
		return fmt.Errorf("video file not found: %s", videoPath)
	}

	var prober port.MediaProber = ffprobe.NewProber(log)
	if info, err := prober.Probe(ctx, videoPath); err != nil {
		log.Warn("could not probe video metadata", zap.Error(err))
	} else {
		log.Info("video metadata",
			zap.String("format", info.FormatName),
			zap.String("codec", info.CodecName),
			zap.Int("width", info.Width),
			zap.Int("height", info.Height),
			zap.Float64("duration_secs", info.DurationSec),
			zap.Float64("avg_fps", info.AvgFrameRate),
		)
	}

	printKeyBindings(videoPath)

	win := video.NewWindow(windowTitle)
	defer win.Close()

	ctrl := usecase.NewController(
		video.NewOpener(log),
		win,
		video.NewEncoder(),
		log,
		usecase.ControllerConfig{
			PollInterval:          time.Duration(cfg.PollIntervalMs) * time.Millisecond,
			SnapshotDirName:       cfg.SnapshotDirName,
			SeekProgressMinFrames: cfg.SeekProgressMinFrames,
		},
	)

	return ctrl.Run(ctx, videoPath)
}

func resolveVideoPath(arg string, pick port.FilePicker, log *zap.Logger) (string, error) {
	if arg != "" {
		return arg, nil
	}
	log.Info("no path argument given, opening file selection dialog")
	path, err := pick.PickVideo()
	if err != nil {
		if errors.Is(err, port.ErrPickCanceled) {
			return "", errors.New("no video file selected")
		}
		return "", fmt.Errorf("file selection: %w", err)
	}
	return path, nil
}

func printKeyBindings(videoPath string) {
	fmt.Printf("Video file: %s\n", videoPath)
	fmt.Println("Controls:")
	fmt.Println("  space : play / pause")
	fmt.Println("  s     : save snapshot")
	fmt.Println("  a     : step one frame back (while paused)")
	fmt.Println("  d     : step one frame forward (while paused)")
	fmt.Println("  r     : keep current width, restore aspect ratio")
	fmt.Println("  R     : reset window to original frame size")
	fmt.Println("  q or closing the window : quit")
	fmt.Println("Playback starts paused.")
}
