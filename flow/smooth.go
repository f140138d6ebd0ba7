package flow

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Smoothing factors per input channel.
// All of these must stay in (0, 1) so values converge on their
// targets without overshooting.
const (
	PointerSmoothing    = 0.05
	ScrollSmoothing     = 0.02
	VisibilitySmoothing = 0.08
)

// Smoothed is a scalar that chases Target by a fixed fraction K
// every tick.
type Smoothed struct {
	Value  float64
	Target float64
	K      float64
}

func NewSmoothed(k float64) Smoothed {
	return Smoothed{K: k}
}

// SnapEpsilon closes the exponential asymptote: once the remaining
// gap is this small the value lands exactly on the target. Without it
// a clamped scroll never attains its maximum and the bottommost
// section can never become the active one.
const SnapEpsilon = 1e-4

func (s *Smoothed) Step() {
	s.Value += (s.Target - s.Value) * s.K

	if math.Abs(s.Target-s.Value) < SnapEpsilon {
		s.Value = s.Target
	}
}

// Snap sets both value and target, skipping the smoothing.
func (s *Smoothed) Snap(v float64) {
	s.Value = v
	s.Target = v
}

func Lerp[F constraints.Float](a, b, t F) F {
	return a + (b-a)*t
}

func Clamp[N constraints.Integer | constraints.Float](n, minN, maxN N) N {
	n = min(n, maxN)
	n = max(n, minN)

	return n
}
