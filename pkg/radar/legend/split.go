package legend

import (
	"math"

	"github.com/matzehuels/techradar/pkg/errors"
)

// RingOffset is the height of a ring header, in entry units.
const RingOffset = 3

// SplitMode selects the column balancing algorithm.
type SplitMode string

// Split modes.
const (
	SplitFixed SplitMode = "fixed"
	SplitRing  SplitMode = "ring"
	SplitEntry SplitMode = "entry"
)

// SplitModes lists the valid modes, default first.
var SplitModes = []SplitMode{SplitFixed, SplitRing, SplitEntry}

// ParseSplitMode converts s into a SplitMode. An empty string selects
// SplitFixed.
func ParseSplitMode(s string) (SplitMode, error) {
	switch SplitMode(s) {
	case "", SplitFixed:
		return SplitFixed, nil
	case SplitRing, SplitEntry:
		return SplitMode(s), nil
	}
	return "", errors.New(errors.ErrCodeInvalidSplitMode,
		"unknown split mode %q: want fixed, ring or entry", s)
}

// SplitPoint is where a quadrant legend breaks into its second column:
// before entry Entry of ring Ring. Entry 0 breaks before the ring header.
// Ring equal to the ring count keeps everything in the first column.
type SplitPoint struct {
	Ring  int `json:"ring"`
	Entry int `json:"entry"`
}

// ringHeight is the display height of a ring with n entries.
func ringHeight(n int) int {
	return RingOffset + max(n, 1)
}

// Height returns the total legend height of a quadrant with the given
// ring sizes.
func Height(sizes []int) int {
	total := 0
	for _, n := range sizes {
		total += ringHeight(n)
	}
	return total
}

// Split computes the split point for a quadrant whose rings hold sizes[r]
// entries. Unknown modes behave like SplitFixed.
func Split(sizes []int, mode SplitMode) SplitPoint {
	total := Height(sizes)
	half := float64(total) / 2

	switch mode {
	case SplitRing:
		acc := 0
		for r, n := range sizes {
			next := acc + ringHeight(n)
			if float64(next) > half {
				before := max(acc, total-acc)
				after := max(next, total-next)
				if before < after {
					return SplitPoint{Ring: r}
				}
				return SplitPoint{Ring: r + 1}
			}
			acc = next
		}
	case SplitEntry:
		acc := 0
		for r, n := range sizes {
			delta := ringHeight(n)
			if float64(acc+delta) > half {
				at := int(math.Floor(half - float64(acc) - RingOffset))
				return SplitPoint{Ring: r, Entry: max(at, 0)}
			}
			acc += delta
		}
	default:
		return SplitPoint{Ring: (len(sizes) + 1) / 2}
	}
	return SplitPoint{Ring: len(sizes)}
}
