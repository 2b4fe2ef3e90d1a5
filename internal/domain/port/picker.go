package port

import "errors"

// ErrPickCanceled is returned when the user dismisses the file dialog
// without choosing a file.
var ErrPickCanceled = errors.New("file selection canceled")

type FilePicker interface {
	// PickVideo shows a native open-file dialog restricted to common video
	// extensions plus an all-files option.
	PickVideo() (string, error)
}
