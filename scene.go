package main

import (
	"fmt"
	"image/color"
	"math"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"

	"lightdrift/flow"
)

// trails dimmer than this skip their draw call entirely
const minVisibleAlpha = 0.004

// Scene owns the field, the offscreen it renders into and the bloom
// pass. Draw order is background, haze, trails, then bloom on top.
type Scene struct {
	Field *flow.Field

	SceneTarget *eb.Image
	Bloom       *BloomRenderer

	vi *VIBuffer
}

func NewScene(width, height float64, sections int, seed int64) *Scene {
	s := new(Scene)

	s.Field = flow.NewField(flow.Config{
		Width:        width,
		Height:       height,
		SectionCount: sections,
		Seed:         seed,
	})

	s.Bloom = NewBloomRenderer()
	s.vi = NewVIBuffer(512, 1024)

	return s
}

func (s *Scene) Update() error {
	UpdatePresetManager()

	ApplyTuning(s.Field)

	UpdateVirtualPage(s.Field.MaxScroll())

	s.Field.Step(VirtualPageSample())

	DebugPrint("scroll", fmt.Sprintf("%.1f", s.Field.Scroll()))
	DebugPrint("section", fmt.Sprintf(
		"%d (%.2f)", s.Field.Section().Index, s.Field.Section().Blend))
	DebugPrint("boost", fmt.Sprintf("%.2f", s.Field.Boost()))

	return nil
}

func (s *Scene) Draw(dst *eb.Image) {
	// the whole frame lands in the offscreen first. bloom has to read
	// the scene back and the final screen can't be a shader source.
	// keeping the finished frame around also lets screenshots read it.
	s.resizeSceneTarget(dst.Bounds().Dx(), dst.Bounds().Dy())

	s.SceneTarget.Clear()

	s.drawBackground(s.SceneTarget)
	s.drawHaze(s.SceneTarget)
	s.drawTrails(s.SceneTarget)

	boostGlow := BezierCurveDataAsGraph(
		TheEaseTable[EaseBoostGlow], Clamp(s.Field.Boost(), 0, 1))

	pulse := 1 + TheParamTable[ParamBloomPulse]*0.25*math.Sin(s.Field.Time()*0.7)

	strength := TheParamTable[ParamBloomStrength]*pulse + boostGlow*0.8

	s.Bloom.Draw(s.SceneTarget, s.SceneTarget, TheParamTable[ParamBloomThreshold], strength)

	DrawImage(dst, s.SceneTarget, nil)
}

func (s *Scene) Layout(outsideWidth, outsideHeight int) (int, int) {
	s.Field.Resize(f64(outsideWidth), f64(outsideHeight))

	return outsideWidth, outsideHeight
}

func (s *Scene) resizeSceneTarget(width, height int) {
	if s.SceneTarget != nil {
		w, h := ImageSize(s.SceneTarget)
		if w == width && h == height {
			return
		}
		s.SceneTarget.Deallocate()
	}

	s.SceneTarget = eb.NewImageWithOptions(
		RectWH(width, height),
		&eb.NewImageOptions{Unmanaged: true},
	)
}

func (s *Scene) drawBackground(dst *eb.Image) {
	top := HSVmodBg.ModifyColor(TheColorTable[ColorBgTop], 1)
	bottom := HSVmodBg.ModifyColor(TheColorTable[ColorBgBottom], 1)

	s.vi.Reset()
	VIaddRectVerticalGradient(
		s.vi, FRectWH(ScreenWidth, ScreenHeight), top, bottom)

	DrawTriangles(dst, s.vi.Vertices, s.vi.Indices, WhiteImage, nil)
}

func (s *Scene) drawHaze(dst *eb.Image) {
	strength := TheParamTable[ParamHazeStrength]
	if strength <= 0 {
		return
	}

	colors := [2]color.Color{
		HSVmodHaze.ModifyColor(TheColorTable[ColorHaze1], 1),
		HSVmodHaze.ModifyColor(TheColorTable[ColorHaze2], 1),
	}

	// the fog drifts slowly against the scroll
	offset := FPt(0, s.Field.Scroll()*0.2)

	DrawHazeRect(
		dst,
		FRectWH(ScreenWidth, ScreenHeight),
		time.Duration(s.Field.Time()*f64(time.Second)),
		colors,
		offset,
		strength,
	)
}

func (s *Scene) drawTrails(dst *eb.Image) {
	stops := TrailPaletteColors()

	var colors [16]float64
	for i, c := range stops {
		n := ColorNormalized(c, true)
		colors[i*4+0] = n[0]
		colors[i*4+1] = n[1]
		colors[i*4+2] = n[2]
		colors[i*4+3] = n[3]
	}

	boostGlow := BezierCurveDataAsGraph(
		TheEaseTable[EaseBoostGlow], Clamp(s.Field.Boost(), 0, 1))

	drawn := 0

	BeginBlend(eb.BlendLighter)

	for _, t := range s.Field.Trails {
		if t.Alpha() < minVisibleAlpha {
			continue
		}

		ribbon := t.Ribbon()
		if len(ribbon.Indices) == 0 {
			continue
		}

		s.vi.Reset()
		VIaddRibbon(s.vi, ribbon)

		op := &DrawTrianglesShaderOptions{}
		op.Uniforms = map[string]any{
			"Time":       s.Field.Time(),
			"Visibility": t.Visibility.Value,
			"Opacity":    t.Live.Opacity,
			"Intensity":  t.Live.Intensity,
			"Phase":      t.Config.Phase,
			"ColorShift": t.Live.ColorShift,
			"Core":       t.Config.Core,

			// near trails catch more of the click glow than far ones
			"Boost": boostGlow * (1 - t.Config.Depth*0.5),

			"Colors": colors,
		}

		DrawTrianglesShader(dst, s.vi.Vertices, s.vi.Indices, TrailShader, op)

		drawn++
	}

	EndBlend()

	DebugPrint("trails drawn", fmt.Sprintf("%d", drawn))
}
