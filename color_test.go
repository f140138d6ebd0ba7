package main

import (
	"image/color"
	"math"
	"testing"
)

func TestColorToHSVPrimaries(t *testing.T) {
	tests := []struct {
		clr color.NRGBA
		hue float64
		sat float64
		val float64
	}{
		{color.NRGBA{255, 0, 0, 255}, 0, 1, 1},
		{color.NRGBA{0, 255, 0, 255}, math.Pi * 2 / 3, 1, 1},
		{color.NRGBA{0, 0, 255, 255}, math.Pi * 4 / 3, 1, 1},
		{color.NRGBA{255, 255, 255, 255}, 0, 0, 1},
		{color.NRGBA{0, 0, 0, 255}, 0, 0, 0},
	}

	for _, tt := range tests {
		hsv := ColorToHSV(tt.clr)

		if math.Abs(hsv[0]-tt.hue) > 1e-9 {
			t.Errorf("%v: hue = %v, want %v", tt.clr, hsv[0], tt.hue)
		}
		if math.Abs(hsv[1]-tt.sat) > 1e-9 {
			t.Errorf("%v: saturation = %v, want %v", tt.clr, hsv[1], tt.sat)
		}
		if math.Abs(hsv[2]-tt.val) > 1e-9 {
			t.Errorf("%v: value = %v, want %v", tt.clr, hsv[2], tt.val)
		}
	}
}

func TestColorHSVRoundTrip(t *testing.T) {
	colors := []color.NRGBA{
		{200, 120, 40, 255},
		{10, 200, 150, 255},
		{90, 90, 200, 255},
		{255, 0, 128, 255},
		{30, 30, 30, 255},
	}

	for _, clr := range colors {
		hsv := ColorToHSV(clr)
		back := ColorFromHSV(hsv[0], hsv[1], hsv[2])

		// one step of slack for the byte quantization
		if absDiffU8(back.R, clr.R) > 1 || absDiffU8(back.G, clr.G) > 1 || absDiffU8(back.B, clr.B) > 1 {
			t.Errorf("%v came back as %v", clr, back)
		}
	}
}

func absDiffU8(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d
}

func TestColorFromHSVAlwaysOpaque(t *testing.T) {
	// callers carry alpha themselves
	for _, hue := range []float64{0, 1.3, math.Pi, 5.9} {
		c := ColorFromHSV(hue, 0.7, 0.4)
		if c.A != 255 {
			t.Errorf("hue %v: alpha = %d, want 255", hue, c.A)
		}
	}
}

func TestHSVmodZeroAmountIsNoop(t *testing.T) {
	mod := HSVmod{Hue: 1, Saturation: 0.5, Value: -0.5}
	clr := color.NRGBA{180, 40, 90, 200}

	got := ColorToNRGBA(mod.ModifyColor(clr, 0))
	if got != clr {
		t.Errorf("amount 0 changed %v to %v", clr, got)
	}

	var zero HSVmod
	got = ColorToNRGBA(zero.ModifyColor(clr, 1))
	if got != clr {
		t.Errorf("zero mod changed %v to %v", clr, got)
	}
}

func TestHSVmodPreservesAlpha(t *testing.T) {
	mod := HSVmod{Value: -0.4}
	clr := color.NRGBA{180, 40, 90, 77}

	got := ColorToNRGBA(mod.ModifyColor(clr, 1))

	if got.A != 77 {
		t.Errorf("alpha = %d, want 77", got.A)
	}
	if got.R == clr.R && got.G == clr.G && got.B == clr.B {
		t.Errorf("value mod left %v unchanged", clr)
	}
}

func TestHSVmodValueDarkens(t *testing.T) {
	mod := HSVmod{Value: -0.3}
	clr := color.NRGBA{200, 150, 100, 255}

	got := mod.ModifyColor(clr, 1)

	before := ColorToHSV(clr)
	after := ColorToHSV(got)

	if after[2] >= before[2] {
		t.Errorf("value went from %v to %v, want darker", before[2], after[2])
	}
}

func TestColorNormalizedPremultiply(t *testing.T) {
	clr := color.NRGBA{255, 255, 255, 128}

	straight := ColorNormalized(clr, false)
	if straight[0] != 1 || straight[3] != 128.0/255.0 {
		t.Errorf("straight = %v", straight)
	}

	pre := ColorNormalized(clr, true)
	if pre[0] != pre[3] || pre[1] != pre[3] || pre[2] != pre[3] {
		t.Errorf("premultiplied white should equal its alpha, got %v", pre)
	}
}

func TestLerpColorRGBAEndpoints(t *testing.T) {
	c1 := color.NRGBA{255, 0, 0, 255}
	c2 := color.NRGBA{0, 0, 255, 255}

	if got := LerpColorRGBA(c1, c2, 0); got != c1 {
		t.Errorf("t=0: got %v, want %v", got, c1)
	}
	if got := LerpColorRGBA(c1, c2, 1); got != c2 {
		t.Errorf("t=1: got %v, want %v", got, c2)
	}

	mid := LerpColorRGBA(c1, c2, 0.5)
	if mid.R != 127 || mid.B != 127 {
		t.Errorf("t=0.5: got %v", mid)
	}
}

func TestColorStringRoundTrip(t *testing.T) {
	clr := color.NRGBA{0x1D, 0x3F, 0xA8, 0xFF}

	str := ColorToString(clr)
	if str != "#1D3FA8FF" {
		t.Fatalf("ColorToString = %q", str)
	}

	back, err := ParseColorString(str)
	if err != nil {
		t.Fatalf("ParseColorString: %v", err)
	}

	if absDiffU8(back.R, clr.R) > 1 || absDiffU8(back.G, clr.G) > 1 ||
		absDiffU8(back.B, clr.B) > 1 || absDiffU8(back.A, clr.A) > 1 {
		t.Errorf("%q parsed back as %v", str, back)
	}
}

func TestParseColorStringRejectsGarbage(t *testing.T) {
	if _, err := ParseColorString("definitely not a color"); err == nil {
		t.Error("garbage parsed without an error")
	}
}
