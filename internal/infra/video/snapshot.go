package video

import (
	"errors"
	"fmt"

	"gocv.io/x/gocv"

	"github.com/sk-ys/video-snapshot/internal/domain/port"
)

// Encoder turns frames into PNG bytes in memory. The caller writes the bytes
// to disk itself; some image-library path writers fail on directories with
// non-ASCII names.
type Encoder struct{}

func NewEncoder() *Encoder {
	return &Encoder{}
}

func (Encoder) Encode(f port.Frame) ([]byte, error) {
	mf, ok := f.(*matFrame)
	if !ok {
		return nil, errors.New("unsupported frame type")
	}
	buf, err := gocv.IMEncode(gocv.PNGFileExt, mf.mat)
	if err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	defer buf.Close()

	// The native buffer is freed on Close; hand back a copy.
	data := append([]byte(nil), buf.GetBytes()...)
	return data, nil
}
