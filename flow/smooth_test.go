package flow

import (
	"math"
	"testing"
)

func TestSmoothedConverges(t *testing.T) {
	tests := []struct {
		name   string
		start  float64
		target float64
		k      float64
	}{
		{"rise", 0, 100, PointerSmoothing},
		{"fall", 250, -40, ScrollSmoothing},
		{"small gap", -3, 7, VisibilitySmoothing},
		{"already there", 5, 5, PointerSmoothing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSmoothed(tt.k)
			s.Snap(tt.start)
			s.Target = tt.target

			prev := math.Abs(tt.target - s.Value)

			for i := 0; i < 2000; i++ {
				s.Step()

				dist := math.Abs(tt.target - s.Value)
				if dist > prev+1e-12 {
					t.Fatalf("step %d moved away from target: dist %v -> %v", i, prev, dist)
				}
				prev = dist

				// The remaining gap may shrink but its sign must
				// never flip.
				if (tt.target-s.Value)*(tt.target-tt.start) < 0 {
					t.Fatalf("step %d overshot target %v: value %v", i, tt.target, s.Value)
				}
			}

			if prev > 1e-6 {
				t.Errorf("did not converge: value %v target %v", s.Value, tt.target)
			}
		})
	}
}

func TestSmoothedSnap(t *testing.T) {
	s := NewSmoothed(ScrollSmoothing)
	s.Snap(42)

	if s.Value != 42 || s.Target != 42 {
		t.Fatalf("snap: value %v target %v, want 42 for both", s.Value, s.Target)
	}

	s.Step()

	if s.Value != 42 {
		t.Errorf("step after snap moved value to %v", s.Value)
	}
}

func TestSmoothingConstants(t *testing.T) {
	constants := map[string]float64{
		"pointer":    PointerSmoothing,
		"scroll":     ScrollSmoothing,
		"visibility": VisibilitySmoothing,
	}

	for name, k := range constants {
		if k <= 0 || k >= 1 {
			t.Errorf("%s smoothing %v is outside (0, 1)", name, k)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		n, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0.7, 0.7, 1, 0.7},
	}

	for _, tt := range tests {
		if got := Clamp(tt.n, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.n, tt.lo, tt.hi, got, tt.want)
		}
	}

	if got := Clamp(7, 0, 5); got != 5 {
		t.Errorf("integer Clamp(7, 0, 5) = %d, want 5", got)
	}
}
