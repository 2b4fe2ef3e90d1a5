package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPlaybackStateStartsPausedAtFirstFrame(t *testing.T) {
	s := NewPlaybackState()
	assert.Equal(t, 1, s.FrameIndex)
	assert.True(t, s.Paused)
}

func TestTogglePause(t *testing.T) {
	s := NewPlaybackState()
	assert.False(t, s.TogglePause())
	assert.True(t, s.TogglePause())
}

func TestAdvanceAndSeek(t *testing.T) {
	s := NewPlaybackState()
	s.Advance()
	s.Advance()
	assert.Equal(t, 3, s.FrameIndex)

	s.SeekTo(2)
	assert.Equal(t, 2, s.FrameIndex)
}
