package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sk-ys/video-snapshot/internal/domain/port"
)

type fakePicker struct {
	path   string
	err    error
	called bool
}

func (p *fakePicker) PickVideo() (string, error) {
	p.called = true
	return p.path, p.err
}

func TestResolveVideoPathUsesArgument(t *testing.T) {
	p := &fakePicker{}

	path, err := resolveVideoPath("clip.mp4", p, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, "clip.mp4", path)
	assert.False(t, p.called, "dialog should not open when a path is given")
}

func TestResolveVideoPathFallsBackToDialog(t *testing.T) {
	p := &fakePicker{path: "/movies/clip.mp4"}

	path, err := resolveVideoPath("", p, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, "/movies/clip.mp4", path)
	assert.True(t, p.called)
}

func TestResolveVideoPathCanceledDialog(t *testing.T) {
	p := &fakePicker{err: port.ErrPickCanceled}

	_, err := resolveVideoPath("", p, zap.NewNop())
	assert.EqualError(t, err, "no video file selected")
}

func TestResolveVideoPathDialogFailure(t *testing.T) {
	p := &fakePicker{err: errors.New("no display")}

	_, err := resolveVideoPath("", p, zap.NewNop())
	assert.ErrorContains(t, err, "file selection")
}
