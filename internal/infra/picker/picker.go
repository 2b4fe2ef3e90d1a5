package picker

import (
	"errors"

	"github.com/sqweek/dialog"

	"github.com/sk-ys/video-snapshot/internal/domain/port"
)

// Dialog shows the operating system's native open-file dialog.
type Dialog struct{}

var _ port.FilePicker = (*Dialog)(nil)

func NewDialog() *Dialog {
	return &Dialog{}
}

func (Dialog) PickVideo() (string, error) {
	path, err := dialog.File().
		Title("Select a video file").
		Filter("Video files", "mp4", "avi", "mkv", "mov", "wmv", "flv", "m4v").
		Filter("All files", "*").
		Load()
	if err != nil {
		if errors.Is(err, dialog.ErrCancelled) {
			return "", port.ErrPickCanceled
		}
		return "", err
	}
	return path, nil
}
