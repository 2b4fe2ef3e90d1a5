package timefmt

import (
	"fmt"
	"math"
)

// FormatMsec renders an elapsed playback position in milliseconds as a
// fixed-width string, e.g. 12345 -> "0000m12s345ms". Fractional input is
// rounded to the nearest millisecond before decomposition.
func FormatMsec(msec float64) string {
	totalMs := int(math.Round(msec))
	totalSeconds := totalMs / 1000
	ms := totalMs % 1000
	minutes := totalSeconds / 60
	seconds := totalSeconds % 60
	return fmt.Sprintf("%04dm%02ds%03dms", minutes, seconds, ms)
}
