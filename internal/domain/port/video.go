package port

// VideoSource is an opened, forward-only decodable stream. Stepping backward
// requires opening a fresh source and re-reading from the start.
type VideoSource interface {
	// Read decodes the next frame. ok is false once the stream is exhausted.
	Read() (frame Frame, ok bool)
	// PositionMsec reports the source's current playback position in
	// milliseconds.
	PositionMsec() float64
	// Backend identifies the decode pathway the source was opened with.
	Backend() string
	Close() error
}

type SourceOpener interface {
	Open(path string) (VideoSource, error)
}
