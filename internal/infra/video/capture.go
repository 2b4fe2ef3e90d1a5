package video

import (
	"fmt"

	"go.uber.org/zap"
	"gocv.io/x/gocv"

	"github.com/sk-ys/video-snapshot/internal/domain/port"
)

// Backend labels reported for the decode pathway actually used.
const (
	BackendFFmpeg  = "FFMPEG"
	BackendDefault = "DEFAULT"
)

// captureHandle is the slice of *gocv.VideoCapture the source needs.
type captureHandle interface {
	Read(m *gocv.Mat) bool
	Get(prop gocv.VideoCaptureProperties) float64
	Close() error
}

// captureAPI isolates the gocv constructors so the backend fallback and
// handle-release behavior can be tested without the OpenCV runtime. The
// constructors allocate a native handle even when the open fails, so a
// non-nil handle returned alongside an error must still be closed.
type captureAPI interface {
	OpenWithFFmpeg(path string) (captureHandle, error)
	Open(path string) (captureHandle, error)
}

type gocvAPI struct{}

func (gocvAPI) OpenWithFFmpeg(path string) (captureHandle, error) {
	return gocv.VideoCaptureFileWithAPI(path, gocv.VideoCaptureFFmpeg)
}

func (gocvAPI) Open(path string) (captureHandle, error) {
	return gocv.VideoCaptureFile(path)
}

// Opener opens video files with the FFMPEG backend explicitly when it is
// available and falls back to OpenCV's default backend selection otherwise.
type Opener struct {
	api    captureAPI
	logger *zap.Logger
}

var _ port.SourceOpener = (*Opener)(nil)

func NewOpener(logger *zap.Logger) *Opener {
	return &Opener{api: gocvAPI{}, logger: logger}
}

func (o *Opener) Open(path string) (port.VideoSource, error) {
	h, err := o.api.OpenWithFFmpeg(path)
	if err == nil {
		return &Source{vc: h, backend: BackendFFmpeg}, nil
	}
	if h != nil {
		_ = h.Close()
	}
	o.logger.Warn("ffmpeg backend unavailable, falling back to default backend",
		zap.String("path", path),
		zap.Error(err),
	)

	h, err = o.api.Open(path)
	if err != nil {
		if h != nil {
			_ = h.Close()
		}
		return nil, fmt.Errorf("open video: %w", err)
	}
	return &Source{vc: h, backend: BackendDefault}, nil
}

// Source wraps a forward-only capture handle.
type Source struct {
	vc      captureHandle
	backend string
}

func (s *Source) Read() (port.Frame, bool) {
	mat := gocv.NewMat()
	if ok := s.vc.Read(&mat); !ok || mat.Empty() {
		_ = mat.Close()
		return nil, false
	}
	return &matFrame{mat: mat}, true
}

func (s *Source) PositionMsec() float64 {
	return s.vc.Get(gocv.VideoCapturePosMsec)
}

func (s *Source) Backend() string {
	return s.backend
}

func (s *Source) Close() error {
	return s.vc.Close()
}
