package dice

import (
	"testing"
)

// sequenceRNG returns values from a pre-set sequence.
type sequenceRNG struct {
	values []int
	idx    int
}

func (r *sequenceRNG) Intn(n int) int {
	v := r.values[r.idx%len(r.values)] % n
	r.idx++
	return v
}

func TestMaxRoll(t *testing.T) {
	tests := []struct {
		length int
		want   int
	}{
		{5, 3},
		{8, 3},
		{12, 3},
		{13, 6},
		{16, 6},
		{104, 6},
	}
	for _, tt := range tests {
		if got := MaxRoll(tt.length); got != tt.want {
			t.Errorf("MaxRoll(%d) = %d, want %d", tt.length, got, tt.want)
		}
	}
}

func TestAdvance(t *testing.T) {
	tests := []struct {
		current, roll, length int
		want                  int
	}{
		{10, 5, 12, 3},
		{0, 3, 12, 3},
		{11, 1, 12, 0},
		{15, 6, 16, 5},
		{4, 0, 8, 4},
		{2, 1, 0, 2},
	}
	for _, tt := range tests {
		if got := Advance(tt.current, tt.roll, tt.length); got != tt.want {
			t.Errorf("Advance(%d, %d, %d) = %d, want %d", tt.current, tt.roll, tt.length, got, tt.want)
		}
	}
}

func TestRollAndAdvance(t *testing.T) {
	rng := &sequenceRNG{values: []int{2}}
	got := RollAndAdvance(rng, 12, 10)
	want := Result{Roll: 3, From: 10, Position: 1}
	if got != want {
		t.Errorf("RollAndAdvance() = %+v, want %+v", got, want)
	}
}

func TestRollAndAdvanceNonPositiveLength(t *testing.T) {
	rng := &sequenceRNG{values: []int{0}}
	got := RollAndAdvance(rng, 0, 4)
	if got.Roll != 0 || got.Position != 4 {
		t.Errorf("RollAndAdvance(len=0) = %+v, want no-op", got)
	}
	if rng.idx != 0 {
		t.Error("RollAndAdvance(len=0) should not draw from the RNG")
	}
}

func TestPositionAlwaysInRange(t *testing.T) {
	rng := NewSeededRNG(7)
	for _, length := range []int{5, 8, 12, 16, 20, 44} {
		pos := 0
		for i := 0; i < 500; i++ {
			res := RollAndAdvance(rng, length, pos)
			if res.Position < 0 || res.Position >= length {
				t.Fatalf("length %d: position %d out of range", length, res.Position)
			}
			pos = res.Position
		}
	}
}

func TestRollDistribution(t *testing.T) {
	tests := []struct {
		name   string
		length int
		faces  int
	}{
		{"small board", 12, 3},
		{"large board", 16, 6},
	}

	const trials = 60000
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := NewSeededRNG(42)
			counts := make(map[int]int)
			for i := 0; i < trials; i++ {
				counts[Roll(rng, tt.length)]++
			}

			if len(counts) != tt.faces {
				t.Fatalf("observed %d faces, want %d: %v", len(counts), tt.faces, counts)
			}
			expected := float64(trials) / float64(tt.faces)
			for face := 1; face <= tt.faces; face++ {
				got := float64(counts[face])
				if got < expected*0.95 || got > expected*1.05 {
					t.Errorf("face %d seen %v times, want about %v", face, got, expected)
				}
			}
		})
	}
}

func TestSeededRNGReproducible(t *testing.T) {
	a, b := NewSeededRNG(99), NewSeededRNG(99)
	for i := 0; i < 20; i++ {
		if x, y := a.Intn(6), b.Intn(6); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}
