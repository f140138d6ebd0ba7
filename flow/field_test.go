package flow

import (
	"math"
	"testing"
)

func testFieldConfig() Config {
	return Config{
		Width:        1000,
		Height:       800,
		SectionCount: 4,
		Seed:         7,
	}
}

// centerSample keeps the pointer parked at the view center so sway and
// parallax stay zero unless a test wants them.
func centerSample(cfg Config) Sample {
	return Sample{
		PointerX: cfg.Width * 0.5,
		PointerY: cfg.Height * 0.5,
	}
}

func TestFieldDeterministicReplay(t *testing.T) {
	sampleAt := func(i int) Sample {
		fi := float64(i)
		return Sample{
			PointerX: 500 + 300*math.Sin(fi*0.013),
			PointerY: 400 + 200*math.Cos(fi*0.027),
			Scroll:   1200 * (0.5 + 0.5*math.Sin(fi*0.004)),
			Boost:    math.Max(math.Sin(fi*0.05), 0),
		}
	}

	a := NewField(testFieldConfig())
	b := NewField(testFieldConfig())

	for i := 0; i < 250; i++ {
		s := sampleAt(i)
		a.Step(s)
		b.Step(s)
	}

	if a.Time() != b.Time() {
		t.Fatalf("time diverged: %v vs %v", a.Time(), b.Time())
	}
	if a.Scroll() != b.Scroll() {
		t.Fatalf("scroll diverged: %v vs %v", a.Scroll(), b.Scroll())
	}
	if len(a.Trails) != len(b.Trails) {
		t.Fatalf("trail count diverged: %d vs %d", len(a.Trails), len(b.Trails))
	}

	for i := range a.Trails {
		ta, tb := a.Trails[i], b.Trails[i]

		if ta.Live != tb.Live {
			t.Errorf("trail %d live params diverged", i)
		}
		if ta.Visibility.Value != tb.Visibility.Value {
			t.Errorf("trail %d visibility diverged: %v vs %v",
				i, ta.Visibility.Value, tb.Visibility.Value)
		}

		ra, rb := ta.Ribbon(), tb.Ribbon()
		if len(ra.Verts) != len(rb.Verts) || len(ra.Indices) != len(rb.Indices) {
			t.Fatalf("trail %d ribbon size diverged", i)
		}
		for j := range ra.Verts {
			if ra.Verts[j] != rb.Verts[j] {
				t.Fatalf("trail %d vert %d diverged: %+v vs %+v",
					i, j, ra.Verts[j], rb.Verts[j])
			}
		}
		for j := range ra.Indices {
			if ra.Indices[j] != rb.Indices[j] {
				t.Fatalf("trail %d index %d diverged", i, j)
			}
		}
	}
}

func TestFieldRebuildCadence(t *testing.T) {
	cfg := testFieldConfig()
	f := NewField(cfg)
	s := centerSample(cfg)

	snapshot := func() []Vert {
		return append([]Vert(nil), f.Trails[0].Ribbon().Verts...)
	}
	same := func(a, b []Vert) bool {
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
		return true
	}

	initial := snapshot()
	if len(initial) == 0 {
		t.Fatal("field built no geometry")
	}

	// Default cadence rebuilds every third tick, so ticks 1 and 2 must
	// keep the geometry from construction time.
	f.Step(s)
	if !same(initial, snapshot()) {
		t.Error("tick 1 rebuilt geometry off cadence")
	}
	f.Step(s)
	if !same(initial, snapshot()) {
		t.Error("tick 2 rebuilt geometry off cadence")
	}
	f.Step(s)
	if same(initial, snapshot()) {
		t.Error("tick 3 did not rebuild geometry")
	}

	// Off cadence again on tick 4.
	afterRebuild := snapshot()
	f.Step(s)
	if !same(afterRebuild, snapshot()) {
		t.Error("tick 4 rebuilt geometry off cadence")
	}

	// A resize marks the field dirty, which overrides the cadence on
	// the very next step.
	f.Resize(1400, 900)
	f.Step(s)
	if same(afterRebuild, snapshot()) {
		t.Error("resize did not force a rebuild on the next step")
	}
}

func TestFieldResize(t *testing.T) {
	cfg := testFieldConfig()
	f := NewField(cfg)

	const w, h = 1400.0, 900.0
	f.Resize(w, h)
	f.Step(centerSample(f.Config()))

	if f.Config().Width != w || f.Config().Height != h {
		t.Fatalf("config size = %vx%v, want %vx%v",
			f.Config().Width, f.Config().Height, w, h)
	}

	for i, tr := range f.Trails {
		lat := tr.original
		if len(lat) < 4 {
			t.Fatalf("trail %d lattice has %d points", i, len(lat))
		}

		wantX0 := -w * EdgeMargin
		wantX1 := wantX0 + w*(1+2*EdgeMargin)
		if lat[0].X != wantX0 {
			t.Errorf("trail %d lattice start = %v, want %v", i, lat[0].X, wantX0)
		}
		if lat[len(lat)-1].X != wantX1 {
			t.Errorf("trail %d lattice end = %v, want %v", i, lat[len(lat)-1].X, wantX1)
		}

		wantY := tr.Config.BaseY * h
		if lat[0].Y != wantY {
			t.Errorf("trail %d lattice row = %v, want %v", i, lat[0].Y, wantY)
		}
	}

	t.Run("degenerate sizes ignored", func(t *testing.T) {
		bw, bh := f.Config().Width, f.Config().Height
		f.Resize(0, 500)
		f.Resize(500, -10)
		if f.Config().Width != bw || f.Config().Height != bh {
			t.Errorf("size changed on degenerate resize: %vx%v",
				f.Config().Width, f.Config().Height)
		}
	})

	t.Run("max scroll follows height", func(t *testing.T) {
		want := float64(f.Config().SectionCount-1) * h
		if f.MaxScroll() != want {
			t.Errorf("MaxScroll = %v, want %v", f.MaxScroll(), want)
		}
	})
}

func TestFieldVisibilityConvergence(t *testing.T) {
	cfg := testFieldConfig()
	f := NewField(cfg)

	s := centerSample(cfg)
	s.Scroll = 2 * cfg.Height // park in section 2

	for i := 0; i < 1500; i++ {
		f.Step(s)
	}

	if got := f.Section().Index; got != 2 {
		t.Fatalf("section index = %d, want 2", got)
	}

	for i, tr := range f.Trails {
		want := 0.0
		switch tr.Config.Section {
		case 2:
			want = 1.0
		case 1, 3:
			want = 0.25
		}

		if tr.Visibility.Value != want {
			t.Errorf("trail %d (section %d) visibility = %v, want %v",
				i, tr.Config.Section, tr.Visibility.Value, want)
		}
	}
}

func TestFieldBlendHandoff(t *testing.T) {
	cfg := testFieldConfig()

	t.Run("below blend window", func(t *testing.T) {
		f := NewField(cfg)
		s := centerSample(cfg)
		s.Scroll = 0.5 * cfg.Height

		for i := 0; i < 1200; i++ {
			f.Step(s)
		}

		sec := f.Section()
		if sec.Blend != 0 {
			t.Fatalf("blend = %v at progress %v, want 0", sec.Blend, sec.Progress)
		}

		tr := f.Trails[0]
		if tr.Config.Section != 0 {
			t.Fatal("expected trail 0 to live in section 0")
		}
		if tr.Live != tr.Config.Params() {
			t.Errorf("live params drifted outside the blend window:\n got %+v\nwant %+v",
				tr.Live, tr.Config.Params())
		}
	})

	t.Run("inside blend window", func(t *testing.T) {
		f := NewField(cfg)
		s := centerSample(cfg)
		s.Scroll = 0.8 * cfg.Height

		for i := 0; i < 1200; i++ {
			f.Step(s)
		}

		sec := f.Section()
		if sec.Index != 0 {
			t.Fatalf("section index = %d, want 0", sec.Index)
		}
		if sec.Blend <= 0.1 || sec.Blend >= 0.2 {
			t.Fatalf("blend = %v at progress %v, want roughly 0.148", sec.Blend, sec.Progress)
		}

		own := f.Trails[0]
		other := f.Trails[f.groups[1][own.local]]

		want := LerpParams(own.Config.Params(), other.Config.Params(), sec.Blend)
		want.Opacity *= f.Tune.Opacity

		if own.Live != want {
			t.Errorf("blended params:\n got %+v\nwant %+v", own.Live, want)
		}

		// Trails outside the active section keep their own params.
		if other.Live != other.Config.Params() {
			t.Errorf("next-section trail blended too early: %+v", other.Live)
		}
	})
}

func TestFieldScrollClamp(t *testing.T) {
	cfg := testFieldConfig()
	f := NewField(cfg)

	s := centerSample(cfg)
	s.Scroll = 1e9

	for i := 0; i < 2000; i++ {
		f.Step(s)
		if f.Scroll() > f.MaxScroll() {
			t.Fatalf("scroll %v exceeded max %v at tick %d", f.Scroll(), f.MaxScroll(), i)
		}
	}
	if f.Scroll() != f.MaxScroll() {
		t.Errorf("scroll = %v, want clamp at %v", f.Scroll(), f.MaxScroll())
	}

	s.Scroll = -1e9
	for i := 0; i < 2000; i++ {
		f.Step(s)
		if f.Scroll() < 0 {
			t.Fatalf("scroll went negative: %v", f.Scroll())
		}
	}
	if f.Scroll() != 0 {
		t.Errorf("scroll = %v, want clamp at 0", f.Scroll())
	}
}

func TestFieldBoostScalesDisplacement(t *testing.T) {
	cfg := testFieldConfig()

	deviation := func(boost float64) float64 {
		f := NewField(cfg)
		s := centerSample(cfg)
		s.Boost = boost

		// Three steps land exactly on a rebuild tick.
		for i := 0; i < 3; i++ {
			f.Step(s)
		}

		max := 0.0
		tr := f.Trails[0]
		for i, p := range tr.Controls() {
			d := math.Abs(p.Y - tr.original[i].Y)
			if d > max {
				max = d
			}
		}
		return max
	}

	calm := deviation(0)
	boosted := deviation(1)

	if calm <= 0 {
		t.Fatal("expected nonzero displacement without boost")
	}

	ratio := boosted / calm
	want := 1 + BoostGain
	if math.Abs(ratio-want) > 1e-9 {
		t.Errorf("boost ratio = %v, want %v", ratio, want)
	}

	t.Run("negative boost clamps", func(t *testing.T) {
		f := NewField(cfg)
		s := centerSample(cfg)
		s.Boost = -5
		f.Step(s)
		if f.Boost() != 0 {
			t.Errorf("boost = %v, want 0", f.Boost())
		}
	})
}

func TestFieldPointerSway(t *testing.T) {
	cfg := testFieldConfig()
	f := NewField(cfg)

	// Park the pointer at the right edge and let the chaser settle,
	// ending on a rebuild tick.
	s := Sample{PointerX: cfg.Width, PointerY: cfg.Height * 0.5}
	for i := 0; i < 402; i++ {
		f.Step(s)
	}

	px := (f.Pointer().X - cfg.Width*0.5) / cfg.Width
	if px <= 0.49 {
		t.Fatalf("pointer did not settle right of center: px = %v", px)
	}

	for i, tr := range f.Trails {
		if tr.Config.Kind != KindBand {
			continue // bands carry no kind displacement on X
		}

		wantSway := px * cfg.Height * 0.06 * tr.Config.Depth * f.Tune.Sway
		got := tr.Controls()[0].X - tr.original[0].X
		if math.Abs(got-wantSway) > 1e-9 {
			t.Errorf("trail %d sway = %v, want %v", i, got, wantSway)
		}
	}
}

func TestDefaultTrailConfigs(t *testing.T) {
	configs := DefaultTrailConfigs(4)

	if len(configs) != 4*5 {
		t.Fatalf("got %d configs, want %d", len(configs), 4*5)
	}

	for i, c := range configs {
		if c.Section < 0 || c.Section > 3 {
			t.Errorf("config %d section out of range: %d", i, c.Section)
		}
		if c.BaseY <= 0 || c.BaseY >= 1 {
			t.Errorf("config %d base row out of view: %v", i, c.BaseY)
		}
		if c.Points < 4 {
			t.Errorf("config %d has too few points: %d", i, c.Points)
		}
		if c.Amplitude <= 0 || c.Opacity <= 0 || c.Width <= 0 {
			t.Errorf("config %d has non-positive shape params: %+v", i, c)
		}
	}

	t.Run("deterministic", func(t *testing.T) {
		again := DefaultTrailConfigs(4)
		for i := range configs {
			if configs[i] != again[i] {
				t.Fatalf("config %d differs between calls", i)
			}
		}
	})

	t.Run("zero sections clamps to one", func(t *testing.T) {
		if got := DefaultTrailConfigs(0); len(got) != 5 {
			t.Errorf("got %d configs, want 5", len(got))
		}
	})
}
