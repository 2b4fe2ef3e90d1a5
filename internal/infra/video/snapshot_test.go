package video

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestEncodeReturnsStandalonePNGBytes(t *testing.T) {
	mat := gocv.NewMatWithSize(4, 4, gocv.MatTypeCV8UC3)
	f := &matFrame{mat: mat}
	defer f.Close()

	data, err := Encoder{}.Encode(f)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, pngMagic), "encoded output should be a PNG stream")
	assert.Greater(t, len(data), len(pngMagic))

	// The returned slice must survive further encodes: it may not alias the
	// encoder's native buffer, which is released per call.
	first := append([]byte(nil), data...)
	_, err = Encoder{}.Encode(f)
	require.NoError(t, err)
	assert.Equal(t, first, data)
}

type stubFrame struct{}

func (stubFrame) Size() (int, int) { return 0, 0 }
func (stubFrame) Close()           {}

func TestEncodeRejectsForeignFrame(t *testing.T) {
	_, err := Encoder{}.Encode(stubFrame{})
	assert.Error(t, err)
}
