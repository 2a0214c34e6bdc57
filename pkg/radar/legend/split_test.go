package legend

import (
	"testing"

	"github.com/matzehuels/techradar/pkg/errors"
)

func TestParseSplitMode(t *testing.T) {
	tests := []struct {
		in      string
		want    SplitMode
		wantErr bool
	}{
		{in: "", want: SplitFixed},
		{in: "fixed", want: SplitFixed},
		{in: "ring", want: SplitRing},
		{in: "entry", want: SplitEntry},
		{in: "Ring", wantErr: true},
		{in: "balanced", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSplitMode(tt.in)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidSplitMode) {
					t.Errorf("ParseSplitMode(%q) error = %v, want INVALID_SPLIT_MODE", tt.in, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseSplitMode(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
			}
		})
	}
}

func TestHeight(t *testing.T) {
	// 6 + 4 + 8 + 5: empty rings still cost one unit.
	if got := Height([]int{3, 0, 5, 2}); got != 23 {
		t.Errorf("Height() = %d, want 23", got)
	}
	if got := Height(nil); got != 0 {
		t.Errorf("Height(nil) = %d, want 0", got)
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		sizes []int
		mode  SplitMode
		want  SplitPoint
	}{
		{name: "fixed even", sizes: []int{3, 0, 5, 2}, mode: SplitFixed, want: SplitPoint{Ring: 2}},
		{name: "fixed odd", sizes: []int{1, 1, 1}, mode: SplitFixed, want: SplitPoint{Ring: 2}},
		{name: "fixed ignores sizes", sizes: []int{40, 0, 0, 0}, mode: SplitFixed, want: SplitPoint{Ring: 2}},
		{name: "unknown mode is fixed", sizes: []int{40, 0, 0, 0}, mode: "other", want: SplitPoint{Ring: 2}},

		// total 23, half 11.5; ring 2 brings the sum to 18. Splitting
		// before it gives max(10, 13) = 13, after it max(18, 5) = 18.
		{name: "ring", sizes: []int{3, 0, 5, 2}, mode: SplitRing, want: SplitPoint{Ring: 2}},
		// total 25; before ring 0 gives 25, after gives max(13, 12) = 13.
		{name: "ring heavy first", sizes: []int{10, 1, 1, 1}, mode: SplitRing, want: SplitPoint{Ring: 1}},
		{name: "ring heavy last", sizes: []int{1, 1, 1, 10}, mode: SplitRing, want: SplitPoint{Ring: 3}},

		// total 23, half 11.5; ring 2 overflows at acc 10, so the split
		// lands at floor(11.5 - 10 - 3) = -2, clamped to 0.
		{name: "entry clamps to zero", sizes: []int{3, 0, 5, 2}, mode: SplitEntry, want: SplitPoint{Ring: 2}},
		// total 18, half 9; ring 0 overflows, split at floor(9 - 0 - 3) = 6.
		{name: "entry inside first ring", sizes: []int{10, 2}, mode: SplitEntry, want: SplitPoint{Ring: 0, Entry: 6}},
		// total 32, half 16; ring 1 overflows at acc 5, split at floor(16 - 5 - 3) = 8.
		{name: "entry inside second ring", sizes: []int{2, 20, 1}, mode: SplitEntry, want: SplitPoint{Ring: 1, Entry: 8}},

		{name: "no rings", sizes: nil, mode: SplitRing, want: SplitPoint{Ring: 0}},
		{name: "no rings entry", sizes: []int{}, mode: SplitEntry, want: SplitPoint{Ring: 0}},
		{name: "no rings fixed", sizes: []int{}, mode: SplitFixed, want: SplitPoint{Ring: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Split(tt.sizes, tt.mode); got != tt.want {
				t.Errorf("Split(%v, %s) = %+v, want %+v", tt.sizes, tt.mode, got, tt.want)
			}
		})
	}
}

// Equal column heights on both candidates split after the ring.
func TestSplitRingTieFavorsLaterRing(t *testing.T) {
	tests := []struct {
		sizes []int
		want  int
	}{
		// total 16; at ring 1: max(4, 12) = 12 vs max(12, 4) = 12.
		{sizes: []int{1, 5, 1}, want: 2},
		// total 5; at ring 0: max(0, 5) = 5 vs max(5, 0) = 5.
		{sizes: []int{2}, want: 1},
	}
	for _, tt := range tests {
		if got := Split(tt.sizes, SplitRing); got.Ring != tt.want || got.Entry != 0 {
			t.Errorf("Split(%v, ring) = %+v, want ring %d", tt.sizes, got, tt.want)
		}
	}
}

func TestSplitRingMinimizesAdjacentCandidates(t *testing.T) {
	inputs := [][]int{
		{3, 0, 5, 2}, {0, 0, 0, 0}, {7, 7, 7, 7}, {1, 30, 1, 1}, {12, 0, 0, 9}, {4, 6},
	}
	for _, sizes := range inputs {
		got := Split(sizes, SplitRing)
		total := Height(sizes)
		height := func(ring int) int {
			first := Height(sizes[:ring])
			return max(first, total-first)
		}
		if got.Ring < 1 || got.Ring > len(sizes) {
			t.Fatalf("Split(%v) = %+v out of range", sizes, got)
		}
		if height(got.Ring) > height(got.Ring-1) {
			t.Errorf("Split(%v) = ring %d, but ring %d is more balanced", sizes, got.Ring, got.Ring-1)
		}
	}
}
