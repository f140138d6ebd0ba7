package main

import (
	"image/color"
	"testing"

	"lightdrift/flow"
)

func TestVIaddRect(t *testing.T) {
	vi := NewVIBuffer(8, 12)

	VIaddRect(vi, FRect(10, 20, 30, 40), color.NRGBA{255, 255, 255, 255})

	if len(vi.Vertices) != 4 {
		t.Fatalf("verts = %d, want 4", len(vi.Vertices))
	}
	if len(vi.Indices) != 6 {
		t.Fatalf("indices = %d, want 6", len(vi.Indices))
	}

	if vi.Vertices[0].DstX != 10 || vi.Vertices[0].DstY != 20 {
		t.Errorf("first corner at (%v, %v), want (10, 20)", vi.Vertices[0].DstX, vi.Vertices[0].DstY)
	}
	if vi.Vertices[2].DstX != 30 || vi.Vertices[2].DstY != 40 {
		t.Errorf("opposite corner at (%v, %v), want (30, 40)", vi.Vertices[2].DstX, vi.Vertices[2].DstY)
	}

	// a second quad's indices have to point past the first
	VIaddRect(vi, FRectWH(1, 1), color.NRGBA{0, 0, 0, 255})

	if len(vi.Vertices) != 8 || len(vi.Indices) != 12 {
		t.Fatalf("after second quad: verts = %d indices = %d", len(vi.Vertices), len(vi.Indices))
	}

	for _, idx := range vi.Indices[6:] {
		if idx < 4 || idx > 7 {
			t.Errorf("second quad index %d escapes its verts", idx)
		}
	}
}

func TestVIaddRectVerticalGradient(t *testing.T) {
	vi := NewVIBuffer(4, 6)

	VIaddRectVerticalGradient(
		vi, FRectWH(100, 100),
		color.NRGBA{255, 0, 0, 255},
		color.NRGBA{0, 0, 255, 255},
	)

	if len(vi.Vertices) != 4 || len(vi.Indices) != 6 {
		t.Fatalf("verts = %d indices = %d", len(vi.Vertices), len(vi.Indices))
	}

	top := vi.Vertices[0]
	bottom := vi.Vertices[2]

	if top.ColorR != 1 || top.ColorB != 0 {
		t.Errorf("top corner color = (%v, %v, %v)", top.ColorR, top.ColorG, top.ColorB)
	}
	if bottom.ColorR != 0 || bottom.ColorB != 1 {
		t.Errorf("bottom corner color = (%v, %v, %v)", bottom.ColorR, bottom.ColorG, bottom.ColorB)
	}
}

func TestVIaddRibbonEncoding(t *testing.T) {
	vi := NewVIBuffer(16, 24)

	// offset the buffer first so the index rebase shows
	VIaddRect(vi, FRectWH(1, 1), color.NRGBA{255, 255, 255, 255})

	ribbon := flow.Ribbon{
		Verts: []flow.Vert{
			{X: 0, Y: 10, Along: 0, Cross: -1},
			{X: 0, Y: 20, Along: 0, Cross: 1},
			{X: 50, Y: 10, Along: 0.5, Cross: -1},
			{X: 50, Y: 20, Along: 0.5, Cross: 1},
		},
		Indices: []uint16{0, 1, 2, 1, 3, 2},
	}

	VIaddRibbon(vi, ribbon)

	verts := vi.Vertices[4:]

	if verts[0].ColorG != 0 {
		t.Errorf("cross -1 encodes to %v, want 0", verts[0].ColorG)
	}
	if verts[1].ColorG != 1 {
		t.Errorf("cross +1 encodes to %v, want 1", verts[1].ColorG)
	}
	if verts[2].ColorR != 0.5 {
		t.Errorf("along 0.5 encodes to %v, want 0.5", verts[2].ColorR)
	}
	if verts[3].DstX != 50 || verts[3].DstY != 20 {
		t.Errorf("vertex position = (%v, %v), want (50, 20)", verts[3].DstX, verts[3].DstY)
	}

	for i, idx := range vi.Indices[6:] {
		want := ribbon.Indices[i] + 4
		if idx != want {
			t.Errorf("index %d = %d, want %d", i, idx, want)
		}
	}
}

func TestVIBufferReset(t *testing.T) {
	vi := NewVIBuffer(4, 6)

	VIaddRect(vi, FRectWH(5, 5), color.NRGBA{255, 255, 255, 255})
	vi.Reset()

	if len(vi.Vertices) != 0 || len(vi.Indices) != 0 {
		t.Errorf("reset left verts = %d indices = %d", len(vi.Vertices), len(vi.Indices))
	}

	// backing arrays survive the reset
	if cap(vi.Vertices) < 4 || cap(vi.Indices) < 6 {
		t.Errorf("reset dropped capacity: verts %d indices %d", cap(vi.Vertices), cap(vi.Indices))
	}
}
