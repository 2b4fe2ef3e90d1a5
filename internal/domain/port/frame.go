package port

// Frame is a single decoded image. Frames are owned by the playback
// controller, replaced on every advance or retreat, and must be released
// with Close once replaced.
type Frame interface {
	Size() (width, height int)
	Close()
}
