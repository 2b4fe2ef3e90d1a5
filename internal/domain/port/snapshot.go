package port

// SnapshotEncoder encodes a frame to an image format in memory. Writing the
// bytes to disk is a separate step so that snapshot paths with non-ASCII
// characters go through the regular file API rather than the image library's
// own path writer.
type SnapshotEncoder interface {
	Encode(Frame) ([]byte, error)
}
