package video

import "gocv.io/x/gocv"

// matFrame backs a decoded frame with an OpenCV Mat (8-bit BGR).
type matFrame struct {
	mat gocv.Mat
}

func (f *matFrame) Size() (int, int) {
	return f.mat.Cols(), f.mat.Rows()
}

func (f *matFrame) Close() {
	_ = f.mat.Close()
}
