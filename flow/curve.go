package flow

import (
	"math"
)

type Point struct {
	X, Y float64
}

func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point {
	p.X += q.X
	p.Y += q.Y
	return p
}

func (p Point) Sub(q Point) Point {
	p.X -= q.X
	p.Y -= q.Y
	return p
}

func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// CatmullRom evaluates the uniform spline span between p1 and p2 at
// t in [0, 1]. The curve passes through every control point.
func CatmullRom(p0, p1, p2, p3 Point, t float64) Point {
	t2 := t * t
	t3 := t2 * t

	return Point{
		X: 0.5 * ((2 * p1.X) +
			(-p0.X+p2.X)*t +
			(2*p0.X-5*p1.X+4*p2.X-p3.X)*t2 +
			(-p0.X+3*p1.X-3*p2.X+p3.X)*t3),
		Y: 0.5 * ((2 * p1.Y) +
			(-p0.Y+p2.Y)*t +
			(2*p0.Y-5*p1.Y+4*p2.Y-p3.Y)*t2 +
			(-p0.Y+3*p1.Y-3*p2.Y+p3.Y)*t3),
	}
}

// SplinePoints samples a Catmull-Rom spline through pts, reusing out's
// backing array. Endpoints are clamped so the spline starts and ends
// exactly on the first and last control points.
func SplinePoints(pts []Point, segmentsPerSpan int, out []Point) []Point {
	out = out[:0]

	if len(pts) < 2 || segmentsPerSpan < 1 {
		return append(out, pts...)
	}

	at := func(i int) Point {
		i = Clamp(i, 0, len(pts)-1)
		return pts[i]
	}

	for i := 0; i+1 < len(pts); i++ {
		for s := 0; s < segmentsPerSpan; s++ {
			t := float64(s) / float64(segmentsPerSpan)
			out = append(out, CatmullRom(at(i-1), at(i), at(i+1), at(i+2), t))
		}
	}

	return append(out, pts[len(pts)-1])
}

// Taper fades displacement out near both ends of a trail. Zero at
// u = 0 and u = 1, one through the middle (for edge <= 0.5).
func Taper(u, edge float64) float64 {
	u = Clamp(u, 0, 1)
	return Smoothstep(0, edge, u) * Smoothstep(1, 1-edge, u)
}
