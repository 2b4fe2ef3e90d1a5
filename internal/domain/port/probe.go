package port

import (
	"context"

	"github.com/sk-ys/video-snapshot/internal/domain/entity"
)

type MediaProber interface {
	Probe(ctx context.Context, path string) (*entity.MediaInfo, error)
}
