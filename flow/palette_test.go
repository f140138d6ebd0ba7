package flow

import (
	"math"
	"testing"
)

func TestPaletteEndpoints(t *testing.T) {
	p := DefaultPalette()

	if got := p.At(0); got != p[0] {
		t.Errorf("At(0) = %+v, want first stop %+v", got, p[0])
	}
	if got := p.At(1); got != p[PaletteStops-1] {
		t.Errorf("At(1) = %+v, want last stop %+v", got, p[PaletteStops-1])
	}

	t.Run("out of range clamps", func(t *testing.T) {
		if got := p.At(-3); got != p[0] {
			t.Errorf("At(-3) = %+v, want first stop", got)
		}
		if got := p.At(2); got != p[PaletteStops-1] {
			t.Errorf("At(2) = %+v, want last stop", got)
		}
	})
}

// Any sampled color has to stay inside the channel hull of the two
// stops its segment blends between.
func TestPaletteStaysInSegmentHull(t *testing.T) {
	p := DefaultPalette()

	channels := func(c RGBA) [4]float64 {
		return [4]float64{c.R, c.G, c.B, c.A}
	}

	for i := 0; i <= 200; i++ {
		tt := float64(i) / 200

		scaled := tt * float64(PaletteStops-1)
		seg := int(scaled)
		if seg >= PaletteStops-1 {
			seg = PaletteStops - 2
		}

		got := channels(p.At(tt))
		lo := channels(p[seg])
		hi := channels(p[seg+1])

		for ch := range got {
			min := math.Min(lo[ch], hi[ch])
			max := math.Max(lo[ch], hi[ch])
			if got[ch] < min-1e-12 || got[ch] > max+1e-12 {
				t.Fatalf("At(%v) channel %d = %v outside [%v, %v]",
					tt, ch, got[ch], min, max)
			}
		}
	}
}

func TestPaletteStopAlignment(t *testing.T) {
	p := DefaultPalette()

	// Interior stops sit exactly at their grid position.
	for i := 0; i < PaletteStops; i++ {
		tt := float64(i) / float64(PaletteStops-1)
		if got := p.At(tt); got != p[i] {
			t.Errorf("At(%v) = %+v, want stop %d %+v", tt, got, i, p[i])
		}
	}
}

func TestParsePalette(t *testing.T) {
	t.Run("default parses", func(t *testing.T) {
		p, err := ParsePalette(DefaultPaletteHex)
		if err != nil {
			t.Fatalf("ParsePalette: %v", err)
		}
		for i, c := range p {
			if c.A != 1 {
				t.Errorf("stop %d alpha = %v, want 1", i, c.A)
			}
		}

		// First stop is the deep blue: blue clearly dominates.
		if !(p[0].B > p[0].R && p[0].B > p[0].G) {
			t.Errorf("first stop is not blue dominant: %+v", p[0])
		}
		// Last stop is the warm orange: red dominates blue.
		last := p[PaletteStops-1]
		if !(last.R > last.B) {
			t.Errorf("last stop is not warm: %+v", last)
		}
	})

	t.Run("bad color reports error", func(t *testing.T) {
		hex := DefaultPaletteHex
		hex[2] = "#notacolor"
		if _, err := ParsePalette(hex); err == nil {
			t.Error("expected an error for an unparsable stop")
		}
	})
}

func TestRGBAToNRGBA(t *testing.T) {
	tests := []struct {
		name string
		in   RGBA
		want [4]uint8
	}{
		{"black", RGBA{0, 0, 0, 1}, [4]uint8{0, 0, 0, 255}},
		{"white", RGBA{1, 1, 1, 1}, [4]uint8{255, 255, 255, 255}},
		{"clamps high", RGBA{2, 1.5, 1, 3}, [4]uint8{255, 255, 255, 255}},
		{"clamps low", RGBA{-1, 0, 0.5, -2}, [4]uint8{0, 0, 127, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.NRGBA()
			if got.R != tt.want[0] || got.G != tt.want[1] ||
				got.B != tt.want[2] || got.A != tt.want[3] {
				t.Errorf("NRGBA() = %+v, want %v", got, tt.want)
			}
		})
	}
}
