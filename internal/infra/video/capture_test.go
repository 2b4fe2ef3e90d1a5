package video

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gocv.io/x/gocv"
)

// fakeHandle mimics gocv's behavior of handing out an allocated handle even
// when the open itself fails.
type fakeHandle struct {
	closed bool
}

func (h *fakeHandle) Read(m *gocv.Mat) bool                        { return false }
func (h *fakeHandle) Get(prop gocv.VideoCaptureProperties) float64 { return 0 }
func (h *fakeHandle) Close() error                                 { h.closed = true; return nil }

type fakeAPI struct {
	ffmpegErr      error
	defaultErr     error
	ffmpegHandles  []*fakeHandle
	defaultHandles []*fakeHandle
}

func (f *fakeAPI) OpenWithFFmpeg(path string) (captureHandle, error) {
	h := &fakeHandle{}
	f.ffmpegHandles = append(f.ffmpegHandles, h)
	return h, f.ffmpegErr
}

func (f *fakeAPI) Open(path string) (captureHandle, error) {
	h := &fakeHandle{}
	f.defaultHandles = append(f.defaultHandles, h)
	return h, f.defaultErr
}

func TestOpenPrefersFFmpegBackend(t *testing.T) {
	api := &fakeAPI{}
	o := &Opener{api: api, logger: zap.NewNop()}

	src, err := o.Open("movie.mp4")
	require.NoError(t, err)

	assert.Equal(t, BackendFFmpeg, src.Backend())
	require.Len(t, api.ffmpegHandles, 1)
	assert.False(t, api.ffmpegHandles[0].closed)
	assert.Empty(t, api.defaultHandles)
}

func TestOpenFallsBackToDefaultBackend(t *testing.T) {
	api := &fakeAPI{ffmpegErr: errors.New("no ffmpeg support")}
	o := &Opener{api: api, logger: zap.NewNop()}

	src, err := o.Open("movie.mp4")
	require.NoError(t, err)

	assert.Equal(t, BackendDefault, src.Backend())
	require.Len(t, api.ffmpegHandles, 1)
	assert.True(t, api.ffmpegHandles[0].closed, "failed ffmpeg handle must be released")
	require.Len(t, api.defaultHandles, 1)
	assert.False(t, api.defaultHandles[0].closed)
}

func TestOpenFailsWhenNoBackendSucceeds(t *testing.T) {
	api := &fakeAPI{
		ffmpegErr:  errors.New("no ffmpeg support"),
		defaultErr: errors.New("cannot open"),
	}
	o := &Opener{api: api, logger: zap.NewNop()}

	_, err := o.Open("movie.mp4")
	assert.Error(t, err)

	require.Len(t, api.ffmpegHandles, 1)
	require.Len(t, api.defaultHandles, 1)
	assert.True(t, api.ffmpegHandles[0].closed, "failed ffmpeg handle must be released")
	assert.True(t, api.defaultHandles[0].closed, "failed default handle must be released")
}
