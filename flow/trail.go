package flow

// CurveKind selects how displacement maps onto the axes.
type CurveKind int

const (
	// KindBand displaces straight up and down.
	KindBand CurveKind = iota
	// KindDiagonal leaks part of the displacement onto the X axis.
	KindDiagonal
	// KindArc bows the trail and adds a small X wobble.
	KindArc

	CurveKindCount
)

func (k CurveKind) String() string {
	switch k {
	case KindBand:
		return "band"
	case KindDiagonal:
		return "diagonal"
	case KindArc:
		return "arc"
	}
	return "unknown"
}

// TrailConfig is the static per-trail configuration, fixed at field
// creation. Lengths are fractions of the view height so the scene
// survives resizes.
type TrailConfig struct {
	Section int

	Amplitude float64
	Frequency float64
	Speed     float64

	Intensity  float64 // color intensity multiplier
	Opacity    float64
	ColorShift float64 // offset into the palette ramp

	Phase     float64 // 0..1, de-syncs trails from each other
	Depth     float64 // 0 near .. 1 far, scales parallax and sway
	Direction float64 // +1 or -1 flow direction
	Kind      CurveKind

	BaseY float64 // row center, fraction of view height
	Width float64 // ribbon width, fraction of view height
	Core  float64 // 0 soft band .. 1 thin bright line

	Points int // control points in the lattice
}

// ParamSet is the slice of TrailConfig that interpolates during a
// section handoff.
type ParamSet struct {
	Amplitude  float64
	Frequency  float64
	Speed      float64
	Opacity    float64
	Direction  float64
	ColorShift float64
	Intensity  float64
}

func (c TrailConfig) Params() ParamSet {
	return ParamSet{
		Amplitude:  c.Amplitude,
		Frequency:  c.Frequency,
		Speed:      c.Speed,
		Opacity:    c.Opacity,
		Direction:  c.Direction,
		ColorShift: c.ColorShift,
		Intensity:  c.Intensity,
	}
}

func LerpParams(a, b ParamSet, t float64) ParamSet {
	return ParamSet{
		Amplitude:  Lerp(a.Amplitude, b.Amplitude, t),
		Frequency:  Lerp(a.Frequency, b.Frequency, t),
		Speed:      Lerp(a.Speed, b.Speed, t),
		Opacity:    Lerp(a.Opacity, b.Opacity, t),
		Direction:  Lerp(a.Direction, b.Direction, t),
		ColorShift: Lerp(a.ColorShift, b.ColorShift, t),
		Intensity:  Lerp(a.Intensity, b.Intensity, t),
	}
}

// Trail is one animated ribbon.
type Trail struct {
	Config TrailConfig

	// Live is the blended parameter set for the current tick.
	Live ParamSet

	// Visibility chases the section-distance target.
	Visibility Smoothed

	// local is the trail's position inside its home section group.
	// Handoff blending pairs it with the same slot in the next group.
	local int

	original []Point
	control  []Point
	spine    []Point
	ribbon   Ribbon
}

// Controls returns the current displaced control points. Read only.
func (t *Trail) Controls() []Point {
	return t.control
}

// Spine returns the current sampled spline. Read only.
func (t *Trail) Spine() []Point {
	return t.spine
}

// Ribbon returns the current strip geometry. Read only.
func (t *Trail) Ribbon() Ribbon {
	return t.ribbon
}

// Alpha is the combined opacity uniform pushed to the shader.
func (t *Trail) Alpha() float64 {
	return Clamp(t.Visibility.Value*t.Live.Opacity, 0, 1)
}

func direction(n int) float64 {
	if n%2 == 0 {
		return 1
	}
	return -1
}

// DefaultTrailConfigs builds the stock scene: per section, three wide
// bands plus two thin core lines. Parameters are jittered through the
// coordinate hash so the list stays a fixed function of the section
// count.
func DefaultTrailConfigs(sections int) []TrailConfig {
	var configs []TrailConfig

	if sections <= 0 {
		sections = 1
	}

	shiftStep := 0.0
	if sections > 1 {
		shiftStep = 0.35 / float64(sections-1)
	}

	for s := 0; s < sections; s++ {
		sf := float64(s)
		kind := CurveKind(s % int(CurveKindCount))

		rows := [3]float64{0.24, 0.48, 0.72}

		for i, row := range rows {
			fi := float64(i)
			configs = append(configs, TrailConfig{
				Section: s,

				Amplitude: 0.055 + 0.025*Hash21(sf*3+1, fi*7+1),
				Frequency: 1.2 + 0.55*fi + 0.3*Hash21(sf*5+2, fi*11+2),
				Speed:     (0.35 + 0.17*fi) * (1 + 0.12*sf),

				Intensity:  0.7 + 0.3*Hash21(sf*7+3, fi*13+3),
				Opacity:    0.4 + 0.12*Hash21(sf*11+4, fi*17+4),
				ColorShift: shiftStep*sf + 0.07*fi,

				Phase:     Hash21(sf*13+5, fi*19+5),
				Depth:     0.25 + 0.28*fi,
				Direction: direction(i + s),
				Kind:      kind,

				BaseY: row + 0.06*(Hash21(sf*17+6, fi*23+6)-0.5),
				Width: 0.15 + 0.06*Hash21(sf*19+7, fi*29+7),
				Core:  0,

				Points: 10,
			})
		}

		for i := 0; i < 2; i++ {
			fi := float64(i)
			configs = append(configs, TrailConfig{
				Section: s,

				Amplitude: 0.08 + 0.03*Hash21(sf*23+8, fi*31+8),
				Frequency: 1.7 + 0.5*fi,
				Speed:     (0.55 + 0.2*fi) * (1 + 0.1*sf),

				Intensity:  1,
				Opacity:    0.85,
				ColorShift: shiftStep*sf + 0.22 + 0.1*fi,

				Phase:     Hash21(sf*29+9, fi*37+9),
				Depth:     0.1 + 0.15*fi,
				Direction: direction(i + s + 1),
				Kind:      kind,

				BaseY: 0.3 + 0.35*fi + 0.08*(Hash21(sf*31+10, fi*41+10)-0.5),
				Width: 0.012,
				Core:  1,

				Points: 8,
			})
		}
	}

	return configs
}
