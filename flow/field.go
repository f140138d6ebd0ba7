package flow

import "math"

// TickDelta is the fixed simulation step. The field never reads a wall
// clock; callers decide how often to call Step.
const TickDelta float64 = 1.0 / 60.0

const (
	DefaultSectionCount    = 4
	DefaultRebuildEvery    = 3
	DefaultSegmentsPerSpan = 8

	// EdgeMargin extends the control lattice past both screen edges so
	// ribbon tips never become visible, as a fraction of the width.
	EdgeMargin = 0.08

	// ScrollParallax shifts trails against the scroll by their depth.
	ScrollParallax = 0.04

	// BoostGain scales how much a click impulse widens the sway.
	BoostGain = 0.6
)

// Sample is one tick worth of raw input. Pointer and scroll are in
// pixels, boost is a unitless impulse level (0 when idle).
type Sample struct {
	PointerX float64
	PointerY float64
	Scroll   float64
	Boost    float64
}

// Tuning holds live global multipliers. All 1 by default.
type Tuning struct {
	Amplitude float64
	Frequency float64
	Speed     float64
	Opacity   float64
	Sway      float64
}

func DefaultTuning() Tuning {
	return Tuning{Amplitude: 1, Frequency: 1, Speed: 1, Opacity: 1, Sway: 1}
}

// Config fixes a field's size and content at creation time.
// Zero values fall back to the defaults above.
type Config struct {
	Width  float64
	Height float64

	SectionCount int
	Seed         int64

	Trails []TrailConfig

	// RebuildEvery is the geometry rebuild cadence in ticks.
	RebuildEvery    int
	SegmentsPerSpan int
}

func (c Config) withDefaults() Config {
	if c.Width <= 0 {
		c.Width = 1
	}
	if c.Height <= 0 {
		c.Height = 1
	}
	if c.SectionCount <= 0 {
		c.SectionCount = DefaultSectionCount
	}
	if c.RebuildEvery <= 0 {
		c.RebuildEvery = DefaultRebuildEvery
	}
	if c.SegmentsPerSpan <= 0 {
		c.SegmentsPerSpan = DefaultSegmentsPerSpan
	}
	if len(c.Trails) == 0 {
		c.Trails = DefaultTrailConfigs(c.SectionCount)
	}
	return c
}

// Field advances the whole scene one fixed tick at a time. It is plain
// math over plain data: the same config and the same Sample sequence
// always produce the same geometry.
type Field struct {
	// Tune may be set between steps for live adjustment.
	Tune Tuning

	Trails []*Trail

	cfg  Config
	time float64
	tick int

	pointerX Smoothed
	pointerY Smoothed
	scroll   Smoothed
	boost    float64

	section SectionState

	// groups holds trail indices per home section.
	groups [][]int

	lane float64

	dirty bool
}

func NewField(cfg Config) *Field {
	cfg = cfg.withDefaults()

	f := new(Field)
	f.cfg = cfg
	f.Tune = DefaultTuning()

	f.pointerX = NewSmoothed(PointerSmoothing)
	f.pointerY = NewSmoothed(PointerSmoothing)
	f.scroll = NewSmoothed(ScrollSmoothing)

	f.pointerX.Snap(cfg.Width * 0.5)
	f.pointerY.Snap(cfg.Height * 0.5)

	// Seed picks the hash lane the noise terms sample from.
	f.lane = float64(cfg.Seed%4096) * 0.713

	f.groups = make([][]int, cfg.SectionCount)

	for _, tc := range cfg.Trails {
		t := new(Trail)
		t.Config = tc
		t.Live = tc.Params()
		t.Visibility = NewSmoothed(VisibilitySmoothing)

		home := Clamp(tc.Section, 0, cfg.SectionCount-1)
		t.Config.Section = home
		t.local = len(f.groups[home])
		f.groups[home] = append(f.groups[home], len(f.Trails))

		f.Trails = append(f.Trails, t)
	}

	f.rebuildLattice()
	f.section = DeriveSection(0, cfg.Height, cfg.SectionCount)
	f.rebuildGeometry()

	return f
}

func (f *Field) Config() Config        { return f.cfg }
func (f *Field) Time() float64         { return f.time }
func (f *Field) Section() SectionState { return f.section }
func (f *Field) Scroll() float64       { return f.scroll.Value }
func (f *Field) Pointer() Point        { return Pt(f.pointerX.Value, f.pointerY.Value) }
func (f *Field) Boost() float64        { return f.boost }

// MaxScroll is the largest meaningful scroll offset, the top of the
// last section.
func (f *Field) MaxScroll() float64 {
	return float64(f.cfg.SectionCount-1) * f.cfg.Height
}

// Resize re-derives every size-dependent quantity. Geometry catches up
// on the next Step regardless of the rebuild cadence.
func (f *Field) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	if width == f.cfg.Width && height == f.cfg.Height {
		return
	}

	f.cfg.Width = width
	f.cfg.Height = height

	f.rebuildLattice()
	f.dirty = true
}

// Step advances the field by TickDelta using one input sample.
func (f *Field) Step(s Sample) {
	f.time += TickDelta
	f.tick++

	f.pointerX.Target = s.PointerX
	f.pointerY.Target = s.PointerY
	f.pointerX.Step()
	f.pointerY.Step()

	f.scroll.Target = Clamp(s.Scroll, 0, f.MaxScroll())
	f.scroll.Step()

	f.boost = math.Max(s.Boost, 0)

	f.section = DeriveSection(f.scroll.Value, f.cfg.Height, f.cfg.SectionCount)

	f.updateTrails()

	if f.dirty || f.tick%f.cfg.RebuildEvery == 0 {
		f.rebuildGeometry()
		f.dirty = false
	}
}

// updateTrails refreshes visibility and the live parameter set. Near a
// section tail, the active section's trails chase their counterpart in
// the next group so the handoff reads as one continuous motion.
func (f *Field) updateTrails() {
	active := f.section.Index
	next := f.section.Next()
	blend := f.section.Blend

	for _, t := range f.Trails {
		t.Visibility.Target = VisibilityTarget(t.Config.Section, active)
		t.Visibility.Step()

		params := t.Config.Params()

		if blend > 0 && next != active && t.Config.Section == active {
			ng := f.groups[next]
			if len(ng) > 0 {
				other := f.Trails[ng[t.local%len(ng)]]
				params = LerpParams(params, other.Config.Params(), blend)
			}
		}

		params.Opacity *= f.Tune.Opacity
		t.Live = params
	}
}

// rebuildLattice lays the resting control points out across the width,
// extended past both edges, on each trail's base row.
func (f *Field) rebuildLattice() {
	for _, t := range f.Trails {
		n := t.Config.Points
		if n < 4 {
			n = 4
		}

		if cap(t.original) < n {
			t.original = make([]Point, n)
		}
		t.original = t.original[:n]

		x0 := -f.cfg.Width * EdgeMargin
		span := f.cfg.Width * (1 + 2*EdgeMargin)
		y := t.Config.BaseY * f.cfg.Height

		for i := range n {
			u := float64(i) / float64(n-1)
			t.original[i] = Pt(x0+span*u, y)
		}
	}
}

func (f *Field) rebuildGeometry() {
	for _, t := range f.Trails {
		f.displace(t)
		t.spine = SplinePoints(t.control, f.cfg.SegmentsPerSpan, t.spine)
		t.ribbon = BuildRibbon(t.spine, t.Config.Width*f.cfg.Height*0.5, t.ribbon)
	}
}

// displace moves each resting control point by a tapered mix of a
// traveling sine and fractal noise, then layers pointer sway and
// scroll parallax on top. Everything here is a pure function of the
// field state so replays stay exact.
func (f *Field) displace(t *Trail) {
	n := len(t.original)

	t.control = t.control[:0]

	w := f.cfg.Width
	h := f.cfg.Height

	amp := t.Live.Amplitude * f.Tune.Amplitude * h * (1 + BoostGain*f.boost)
	freq := t.Live.Frequency * f.Tune.Frequency
	tt := f.time * t.Live.Speed * f.Tune.Speed * t.Live.Direction
	phase := t.Config.Phase * 2 * math.Pi

	// Pointer offset from center, as a fraction of the view.
	px := (f.pointerX.Value - w*0.5) / w
	py := (f.pointerY.Value - h*0.5) / h
	swayX := px * h * 0.06 * t.Config.Depth * f.Tune.Sway
	swayY := py * h * 0.04 * t.Config.Depth * f.Tune.Sway

	parallax := -f.scroll.Value * ScrollParallax * t.Config.Depth

	laneY := f.lane + float64(t.Config.Section)*13.1 + float64(t.local)*3.7

	for i, p := range t.original {
		u := float64(i) / float64(n-1)

		sine := math.Sin(u*freq*2*math.Pi + tt*2*math.Pi + phase)
		noise := Fbm2(
			u*freq*2.3+f.lane,
			f.time*t.Live.Speed*f.Tune.Speed*0.35+laneY,
			4,
		)*2 - 1

		d := amp * (0.62*sine + 0.38*noise) * Taper(u, 0.16)

		var dx, dy float64
		switch t.Config.Kind {
		case KindDiagonal:
			dy = d * 0.8
			dx = d * 0.5 * t.Live.Direction
		case KindArc:
			dy = d
			dx = d * 0.35 * arcSign(i)
		default: // KindBand
			dy = d
		}

		t.control = append(t.control, Pt(
			p.X+dx+swayX,
			p.Y+dy+swayY+parallax,
		))
	}
}

func arcSign(i int) float64 {
	if i%2 == 0 {
		return 1
	}
	return -1
}
