package entity

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/sk-ys/video-snapshot/pkg/timefmt"
)

// Snapshot is a single decoded frame persisted to disk.
type Snapshot struct {
	ID         uuid.UUID
	Path       string
	FrameIndex int
	Timestamp  string
	Bytes      int
}

func NewSnapshot(path string, frameIndex int, timestamp string, size int) *Snapshot {
	return &Snapshot{
		ID:         uuid.New(),
		Path:       path,
		FrameIndex: frameIndex,
		Timestamp:  timestamp,
		Bytes:      size,
	}
}

// SnapshotFilename builds the on-disk name for a saved frame:
// {video basename}_{position timestamp}_{6-digit frame index}.png
func SnapshotFilename(videoBase string, posMsec float64, frameIndex int) string {
	return fmt.Sprintf("%s_%s_%06d.png", videoBase, timefmt.FormatMsec(posMsec), frameIndex)
}
