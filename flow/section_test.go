package flow

import (
	"math"
	"testing"
)

func TestDeriveSection(t *testing.T) {
	tests := []struct {
		name     string
		scroll   float64
		height   float64
		count    int
		index    int
		progress float64
	}{
		{"top", 0, 800, 4, 0, 0},
		{"half into first", 400, 800, 4, 0, 0.5},
		{"second boundary", 800, 800, 4, 1, 0},
		{"deep", 2000, 800, 4, 2, 0.5},
		{"negative clamps", -300, 800, 4, 0, 0},
		{"last section", 2400, 800, 4, 3, 0},
		{"single section", 500, 800, 1, 0, 0.625},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveSection(tt.scroll, tt.height, tt.count)

			if got.Index != tt.index {
				t.Errorf("index = %d, want %d", got.Index, tt.index)
			}
			if math.Abs(got.Progress-tt.progress) > 1e-9 {
				t.Errorf("progress = %v, want %v", got.Progress, tt.progress)
			}
			if got.Count != tt.count {
				t.Errorf("count = %d, want %d", got.Count, tt.count)
			}
		})
	}
}

func TestSectionNextSaturates(t *testing.T) {
	tests := []struct {
		index, count, want int
	}{
		{0, 4, 1},
		{2, 4, 3},
		{3, 4, 3},
		{0, 1, 0},
	}

	for _, tt := range tests {
		s := SectionState{Count: tt.count, Index: tt.index}
		if got := s.Next(); got != tt.want {
			t.Errorf("Next() with index %d of %d = %d, want %d", tt.index, tt.count, got, tt.want)
		}
	}
}

func TestVisibilityTarget(t *testing.T) {
	tests := []struct {
		name         string
		home, active int
		want         float64
	}{
		{"active", 2, 2, 1.0},
		{"next", 3, 2, AdjacentVisibility},
		{"previous", 1, 2, AdjacentVisibility},
		{"two away", 0, 2, 0.0},
		{"far", 9, 2, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VisibilityTarget(tt.home, tt.active); got != tt.want {
				t.Errorf("VisibilityTarget(%d, %d) = %v, want %v", tt.home, tt.active, got, tt.want)
			}
		})
	}
}

func TestBlendFactorZeroBeforeStart(t *testing.T) {
	for _, p := range []float64{0, 0.2, 0.5, BlendStart - 0.01, BlendStart} {
		if got := BlendFactor(p); got != 0 {
			t.Errorf("BlendFactor(%v) = %v, want 0", p, got)
		}
	}
}

func TestBlendFactorContinuity(t *testing.T) {
	// No jump where the window opens.
	if got := BlendFactor(BlendStart + 1e-6); got > 1e-3 {
		t.Errorf("BlendFactor just past start = %v, want near 0", got)
	}

	// Reaches 1 exactly at the section boundary.
	if got := BlendFactor(1); got != 1 {
		t.Errorf("BlendFactor(1) = %v, want 1", got)
	}
	if got := BlendFactor(1 - 1e-6); got < 1-1e-3 {
		t.Errorf("BlendFactor just before 1 = %v, want near 1", got)
	}

	// Monotone across the window.
	prev := 0.0
	for p := BlendStart; p <= 1.0; p += 0.001 {
		got := BlendFactor(p)
		if got < prev-1e-12 {
			t.Fatalf("BlendFactor not monotone at %v: %v < %v", p, got, prev)
		}
		prev = got
	}
}

func TestEaseInOutCubic(t *testing.T) {
	if got := EaseInOutCubic(0); got != 0 {
		t.Errorf("EaseInOutCubic(0) = %v, want 0", got)
	}
	if got := EaseInOutCubic(1); got != 1 {
		t.Errorf("EaseInOutCubic(1) = %v, want 1", got)
	}
	if got := EaseInOutCubic(0.5); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("EaseInOutCubic(0.5) = %v, want 0.5", got)
	}

	// Symmetric around the midpoint.
	for _, p := range []float64{0.1, 0.25, 0.4} {
		a := EaseInOutCubic(p)
		b := EaseInOutCubic(1 - p)
		if math.Abs((a+b)-1) > 1e-9 {
			t.Errorf("EaseInOutCubic not symmetric at %v: %v + %v != 1", p, a, b)
		}
	}
}
