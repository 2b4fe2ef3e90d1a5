package config

import (
	"github.com/caarlos0/env/v11"
)

type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	PollIntervalMs  int    `env:"POLL_INTERVAL_MS"  envDefault:"30"`
	SnapshotDirName string `env:"SNAPSHOT_DIR_NAME" envDefault:"snapshots"`

	// Backward seeks re-decode linearly from the start; past this many frames
	// a console progress bar is shown.
	SeekProgressMinFrames int `env:"SEEK_PROGRESS_MIN_FRAMES" envDefault:"240"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
