package video

import (
	"errors"
	"time"

	"gocv.io/x/gocv"

	"github.com/sk-ys/video-snapshot/internal/domain/port"
)

// Window is the single display surface. highgui in this binding exposes no
// on-screen geometry query, so the last programmatically set size is tracked
// and served for aspect-correcting resizes.
type Window struct {
	win    *gocv.Window
	width  int
	height int
}

func NewWindow(title string) *Window {
	return &Window{win: gocv.NewWindow(title)}
}

func (w *Window) Show(f port.Frame) {
	mf, ok := f.(*matFrame)
	if !ok {
		return
	}
	w.win.IMShow(mf.mat)
}

func (w *Window) WaitKey(timeout time.Duration) int {
	return w.win.WaitKey(int(timeout / time.Millisecond))
}

func (w *Window) Visible() bool {
	return w.win.GetWindowProperty(gocv.WindowPropertyVisible) >= 1
}

func (w *Window) Resize(width, height int) {
	w.win.ResizeWindow(width, height)
	w.width, w.height = width, height
}

func (w *Window) ContentSize() (int, int, error) {
	if w.width <= 0 || w.height <= 0 {
		return 0, 0, errors.New("window geometry unknown")
	}
	return w.width, w.height, nil
}

func (w *Window) Close() error {
	return w.win.Close()
}
