package port

import "time"

// Display is the single resizable window showing the current frame.
type Display interface {
	Show(Frame)
	// WaitKey polls for a key press for at most the given duration and
	// returns a negative value when no key arrived.
	WaitKey(timeout time.Duration) int
	// Visible reports whether the window is still open on screen.
	Visible() bool
	Resize(width, height int)
	// ContentSize returns the current content area size, if known.
	ContentSize() (width, height int, err error)
	Close() error
}
