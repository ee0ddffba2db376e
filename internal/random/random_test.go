package random

import (
	"math"
	"testing"
)

func TestComputeTargetRotation(t *testing.T) {
	tests := []struct {
		name      string
		index     int
		total     int
		fullSpins int
		want      float64
	}{
		{"first of eight", 0, 8, 5, 2137.5},
		{"second of eight", 1, 8, 5, 2092.5},
		{"last of eight", 7, 8, 5, 1822.5},
		{"no spins", 0, 8, 0, 337.5},
		{"single outcome", 0, 1, 2, 720 + 180},
		{"four outcomes", 2, 4, 1, 360 + 135},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTargetRotation(tt.index, tt.total, tt.fullSpins)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ComputeTargetRotation(%d, %d, %d) = %v, want %v",
					tt.index, tt.total, tt.fullSpins, got, tt.want)
			}
		})
	}
}

func TestComputeTargetRotationAlwaysForward(t *testing.T) {
	for total := 1; total <= 12; total++ {
		for i := range total {
			got := ComputeTargetRotation(i, total, 5)
			if got < 5*360 || got >= 6*360 {
				t.Errorf("ComputeTargetRotation(%d, %d, 5) = %v, expected within [1800, 2160)", i, total, got)
			}
		}
	}
}

func TestMod360(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{360, 0},
		{370, 10},
		{-22.5, 337.5},
		{-720, 0},
		{337.5, 337.5},
	}
	for _, tt := range tests {
		if got := Mod360(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Mod360(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSourceInRangeAndDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	counts := make([]int, 8)

	for range 8000 {
		x := a.PickUniform(8)
		if x < 0 || x >= 8 {
			t.Fatalf("PickUniform(8) = %d, out of range", x)
		}
		if y := b.PickUniform(8); x != y {
			t.Fatal("same seed should give same sequence")
		}
		counts[x]++
	}

	// Loose uniformity check: every bucket within 30% of the mean
	for i, c := range counts {
		if c < 700 || c > 1300 {
			t.Errorf("bucket %d has %d hits, expected roughly 1000", i, c)
		}
	}
}

func TestFixed(t *testing.T) {
	if got := Fixed(3).PickUniform(8); got != 3 {
		t.Errorf("Fixed(3).PickUniform(8) = %d", got)
	}
	if got := Fixed(10).PickUniform(8); got != 2 {
		t.Errorf("Fixed(10).PickUniform(8) = %d, expected 2", got)
	}
	if got := Fixed(-1).PickUniform(8); got != 7 {
		t.Errorf("Fixed(-1).PickUniform(8) = %d, expected 7", got)
	}
}

func TestPick(t *testing.T) {
	items := []string{"a", "b", "c", "d"}
	item, idx := Pick(Fixed(2), items)
	if item != "c" || idx != 2 {
		t.Errorf("Pick() = (%q, %d), expected (\"c\", 2)", item, idx)
	}
}

func TestNextSeedStream(t *testing.T) {
	a, b := New(5), New(5)
	seen := make(map[int64]bool)
	for range 20 {
		sa, sb := a.NextSeed(), b.NextSeed()
		if sa != sb {
			t.Fatalf("same parent seed diverged: %d vs %d", sa, sb)
		}
		if sa == 0 {
			t.Fatal("NextSeed() returned 0")
		}
		if seen[sa] {
			t.Errorf("NextSeed() repeated %d", sa)
		}
		seen[sa] = true
	}
}
