package codec

import (
	"math"

	"github.com/dustin/go-humanize"
)

// FormatBytes renders a byte count in SI units, e.g. "8.2 kB".
func FormatBytes(n int) string {
	if n < 0 {
		return "-" + humanize.Bytes(uint64(-n))
	}
	return humanize.Bytes(uint64(n))
}

// SizeDelta returns after-before and that difference as a percentage of
// before. The percentage is 0 when before is 0.
func SizeDelta(before, after int) (int, float64) {
	delta := after - before
	if before == 0 {
		return delta, 0
	}
	pct := float64(delta) / float64(before) * 100
	// two decimals are enough for a diagnostic line
	return delta, math.Round(pct*100) / 100
}
