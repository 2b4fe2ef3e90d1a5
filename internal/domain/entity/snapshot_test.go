package entity

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotFilename(t *testing.T) {
	assert.Equal(t, "movie_0000m12s345ms_000007.png", SnapshotFilename("movie", 12345, 7))
	assert.Equal(t, "クリップ_0001m01s999ms_000123.png", SnapshotFilename("クリップ", 61999, 123))
}

func TestSnapshotFilenamePattern(t *testing.T) {
	pattern := regexp.MustCompile(`^movie_\d{4}m\d{2}s\d{3}ms_\d{6}\.png$`)

	for _, name := range []string{
		SnapshotFilename("movie", 0, 1),
		SnapshotFilename("movie", 3599999, 999999),
		SnapshotFilename("movie", 500.4, 42),
	} {
		assert.Regexp(t, pattern, name)
	}
}

func TestNewSnapshotAssignsID(t *testing.T) {
	a := NewSnapshot("/tmp/a.png", 1, "0000m00s000ms", 10)
	b := NewSnapshot("/tmp/b.png", 2, "0000m00s033ms", 20)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, "/tmp/a.png", a.Path)
	assert.Equal(t, 2, b.FrameIndex)
}
