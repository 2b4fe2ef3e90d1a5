package ffprobe

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"
	"go.uber.org/zap"

	"github.com/sk-ys/video-snapshot/internal/domain/entity"
	"github.com/sk-ys/video-snapshot/internal/domain/port"
)

// Prober reports container-level metadata via ffprobe. Probe failures are
// non-fatal for the caller; playback never depends on the result.
type Prober struct {
	logger *zap.Logger
}

var _ port.MediaProber = (*Prober)(nil)

func NewProber(logger *zap.Logger) *Prober {
	return &Prober{logger: logger}
}

type probeOutput struct {
	Streams []struct {
		CodecType    string `json:"codec_type"`
		CodecName    string `json:"codec_name"`
		Width        int    `json:"width"`
		Height       int    `json:"height"`
		AvgFrameRate string `json:"avg_frame_rate"`
	} `json:"streams"`
	Format struct {
		FormatName string `json:"format_name"`
		Duration   string `json:"duration"`
	} `json:"format"`
}

func (p *Prober) Probe(ctx context.Context, path string) (*entity.MediaInfo, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	p.logger.Debug("probing video", zap.String("path", path))

	raw, err := ffmpeg.Probe(path)
	if err != nil {
		return nil, fmt.Errorf("ffprobe: %w", err)
	}

	info, err := parseProbe(path, raw)
	if err != nil {
		return nil, err
	}
	return info, nil
}

func parseProbe(path, raw string) (*entity.MediaInfo, error) {
	var out probeOutput
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("parse ffprobe output: %w", err)
	}

	info := &entity.MediaInfo{
		Path:       path,
		FormatName: out.Format.FormatName,
	}

	if out.Format.Duration != "" {
		d, err := strconv.ParseFloat(out.Format.Duration, 64)
		if err != nil {
			return nil, fmt.Errorf("parse duration: %w", err)
		}
		info.DurationSec = d
	}

	for _, s := range out.Streams {
		if s.CodecType != "video" {
			continue
		}
		info.CodecName = s.CodecName
		info.Width = s.Width
		info.Height = s.Height
		info.AvgFrameRate = parseRate(s.AvgFrameRate)
		break
	}

	return info, nil
}

// parseRate handles ffprobe's rational rates such as "30000/1001".
func parseRate(s string) float64 {
	num, den, found := strings.Cut(s, "/")
	if found {
		n, err1 := strconv.ParseFloat(num, 64)
		d, err2 := strconv.ParseFloat(den, 64)
		if err1 != nil || err2 != nil || d == 0 {
			return 0
		}
		return n / d
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
