package flow

// Vert is one ribbon vertex. Along runs 0..1 down the spine, Cross is
// -1 on one edge and +1 on the other.
type Vert struct {
	X, Y  float64
	Along float64
	Cross float64
}

// Ribbon is a triangle strip swept along a spine. Buffers are replaced
// wholesale on every rebuild, never patched in place.
type Ribbon struct {
	Verts   []Vert
	Indices []uint16
}

// BuildRibbon extrudes the spine along its perpendicular by halfWidth
// on each side, reusing r's backing arrays.
func BuildRibbon(spine []Point, halfWidth float64, r Ribbon) Ribbon {
	r.Verts = r.Verts[:0]
	r.Indices = r.Indices[:0]

	n := len(spine)
	if n < 2 {
		return r
	}

	for i, p := range spine {
		var d Point
		switch i {
		case 0:
			d = spine[1].Sub(spine[0])
		case n - 1:
			d = spine[n-1].Sub(spine[n-2])
		default:
			d = spine[i+1].Sub(spine[i-1])
		}

		length := d.Length()
		if length == 0 {
			d = Pt(1, 0)
			length = 1
		}

		// perpendicular of the (normalized) direction
		nx := -d.Y / length
		ny := d.X / length

		along := float64(i) / float64(n-1)

		r.Verts = append(r.Verts,
			Vert{X: p.X + nx*halfWidth, Y: p.Y + ny*halfWidth, Along: along, Cross: 1},
			Vert{X: p.X - nx*halfWidth, Y: p.Y - ny*halfWidth, Along: along, Cross: -1},
		)
	}

	for i := 0; i+1 < n; i++ {
		a := uint16(i * 2)
		r.Indices = append(r.Indices,
			a, a+1, a+2,
			a+1, a+3, a+2,
		)
	}

	return r
}
