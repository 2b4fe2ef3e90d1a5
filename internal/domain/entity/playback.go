package entity

// PlaybackState tracks where the controller is within the video stream.
// FrameIndex is the 1-based ordinal of the currently held frame.
type PlaybackState struct {
	FrameIndex int
	Paused     bool
}

// NewPlaybackState starts at the first frame, paused.
func NewPlaybackState() *PlaybackState {
	return &PlaybackState{FrameIndex: 1, Paused: true}
}

// TogglePause flips the paused flag and reports the new value.
func (s *PlaybackState) TogglePause() bool {
	s.Paused = !s.Paused
	return s.Paused
}

func (s *PlaybackState) Advance() {
	s.FrameIndex++
}

func (s *PlaybackState) SeekTo(index int) {
	s.FrameIndex = index
}
