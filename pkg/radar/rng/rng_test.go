package rng

import (
	"math"
	"testing"
)

func TestFloat64Range(t *testing.T) {
	src := New(DefaultSeed)
	for i := 0; i < 10000; i++ {
		v := src.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64() draw %d = %v, outside [0, 1)", i, v)
		}
	}
}

func TestFirstDrawMatchesSineHash(t *testing.T) {
	src := New(42)
	x := math.Sin(42) * 10000
	want := x - math.Floor(x)
	if got := src.Float64(); got != want {
		t.Errorf("Float64() = %v, want %v", got, want)
	}
	x = math.Sin(43) * 10000
	want = x - math.Floor(x)
	if got := src.Float64(); got != want {
		t.Errorf("second Float64() = %v, want %v", got, want)
	}
}

func TestSameSeedSameSequence(t *testing.T) {
	a, b := New(7), New(7)
	for i := 0; i < 500; i++ {
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("draw %d differs: %v != %v", i, x, y)
		}
	}
}

func TestDifferentSeedsDiffer(t *testing.T) {
	a, b := New(1), New(2)
	same := 0
	for i := 0; i < 100; i++ {
		if a.Float64() == b.Float64() {
			same++
		}
	}
	if same == 100 {
		t.Error("sources with different seeds produced identical sequences")
	}
}

func TestBetween(t *testing.T) {
	src := New(DefaultSeed)
	for i := 0; i < 1000; i++ {
		v := src.Between(30, 130)
		if v < 30 || v >= 130 {
			t.Fatalf("Between(30, 130) = %v", v)
		}
	}
}

func TestBetweenReversed(t *testing.T) {
	src := New(DefaultSeed)
	for i := 0; i < 1000; i++ {
		v := src.Between(math.Pi, 0.5*math.Pi)
		if v > math.Pi || v < 0.5*math.Pi {
			t.Fatalf("Between(π, π/2) = %v", v)
		}
	}
}

func TestNormalBetweenCentered(t *testing.T) {
	src := New(DefaultSeed)
	const n = 20000
	var sum float64
	edge := 0
	for i := 0; i < n; i++ {
		v := src.NormalBetween(0, 100)
		if v < 0 || v >= 100 {
			t.Fatalf("NormalBetween(0, 100) = %v", v)
		}
		if v < 10 || v > 90 {
			edge++
		}
		sum += v
	}
	if mean := sum / n; math.Abs(mean-50) > 2 {
		t.Errorf("mean = %v, want about 50", mean)
	}
	// The mean of two uniform draws puts 4% of its mass in the outer 10%
	// bands, a single uniform draw 20%.
	if frac := float64(edge) / n; frac > 0.08 {
		t.Errorf("edge fraction = %v, want samples concentrated in the middle", frac)
	}
}

func TestJiggle(t *testing.T) {
	src := New(DefaultSeed)
	for i := 0; i < 100; i++ {
		if j := src.Jiggle(); math.Abs(j) > 0.5e-6 {
			t.Fatalf("Jiggle() = %v, want |j| <= 5e-7", j)
		}
	}
}

func TestSeed(t *testing.T) {
	if got := New(99).Seed(); got != 99 {
		t.Errorf("Seed() = %v, want 99", got)
	}
}
