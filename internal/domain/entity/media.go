package entity

// MediaInfo is container-level metadata reported at startup. Informational
// only; playback never depends on it.
type MediaInfo struct {
	Path         string
	FormatName   string
	CodecName    string
	Width        int
	Height       int
	DurationSec  float64
	AvgFrameRate float64
}
