package flow

import (
	"image/color"

	css "github.com/mazznoer/csscolorparser"
)

const PaletteStops = 4

// RGBA is a normalized straight-alpha color.
type RGBA struct {
	R, G, B, A float64
}

func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(Clamp(c.R, 0, 1) * 255),
		G: uint8(Clamp(c.G, 0, 1) * 255),
		B: uint8(Clamp(c.B, 0, 1) * 255),
		A: uint8(Clamp(c.A, 0, 1) * 255),
	}
}

// Palette is the ordered color ramp trails are shaded with. The Kage
// trail shader implements the same piecewise smoothstep blend; this
// mirror exists for the terminal frontend and for tests.
type Palette [PaletteStops]RGBA

var DefaultPaletteHex = [PaletteStops]string{
	"#1d3fa8", // deep blue
	"#7a39d9", // violet
	"#e14fc0", // magenta
	"#ff9a4d", // orange
}

func ParsePalette(hex [PaletteStops]string) (Palette, error) {
	var p Palette

	for i, str := range hex {
		c, err := css.Parse(str)
		if err != nil {
			return p, err
		}
		p[i] = RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
	}

	return p, nil
}

func DefaultPalette() Palette {
	p, err := ParsePalette(DefaultPaletteHex)
	if err != nil {
		panic("default palette does not parse: " + err.Error())
	}
	return p
}

// At maps t in [0, 1] onto the ramp. Segment blending is smoothstep
// shaped, so At(0) is exactly the first stop, At(1) exactly the last,
// and everything between stays inside the hull of its two neighbors.
func (p Palette) At(t float64) RGBA {
	t = Clamp(t, 0, 1)

	scaled := t * float64(PaletteStops-1)
	i := int(scaled)
	if i >= PaletteStops-1 {
		return p[PaletteStops-1]
	}

	f := Smoothstep(0, 1, scaled-float64(i))
	a, b := p[i], p[i+1]

	return RGBA{
		R: Lerp(a.R, b.R, f),
		G: Lerp(a.G, b.G, f),
		B: Lerp(a.B, b.B, f),
		A: Lerp(a.A, b.A, f),
	}
}
