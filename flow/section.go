package flow

import (
	"math"
)

// How far into a section the handoff toward the next section's
// parameters begins.
const BlendStart = 0.7

// Visibility target for a trail whose home section is right next to
// the active one.
const AdjacentVisibility = 0.25

// SectionState is derived from the smoothed scroll every tick and
// never carried across frames.
type SectionState struct {
	Count    int
	Index    int
	Progress float64
	Blend    float64
}

func DeriveSection(scroll, viewHeight float64, count int) SectionState {
	index, progress := sectionIndex(scroll, viewHeight, count)

	return SectionState{
		Count:    count,
		Index:    index,
		Progress: progress,
		Blend:    BlendFactor(progress),
	}
}

// Next returns the section blended toward near the tail of the active
// one. Scroll is clamped so the last section has nothing to blend
// into; it saturates instead of wrapping.
func (s SectionState) Next() int {
	if s.Index+1 < s.Count {
		return s.Index + 1
	}
	return s.Index
}

func sectionIndex(scroll, viewHeight float64, count int) (int, float64) {
	if viewHeight <= 0 || count <= 0 {
		return 0, 0
	}

	raw := scroll / viewHeight

	index := int(math.Floor(raw))
	index = Clamp(index, 0, count-1)

	progress := Clamp(raw-float64(index), 0, 1)

	return index, progress
}

// VisibilityTarget is 1 for trails homed in the active section, a
// fixed partial value for neighbors and 0 for everything further out.
// Always approached through a Smoothed, never snapped.
func VisibilityTarget(home, active int) float64 {
	switch d := home - active; {
	case d == 0:
		return 1.0
	case d == 1 || d == -1:
		return AdjacentVisibility
	default:
		return 0.0
	}
}

func EaseInOutCubic(t float64) float64 {
	t = Clamp(t, 0, 1)
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// BlendFactor is 0 through most of a section and eases from 0 to 1
// across the last stretch of it, continuous at both ends.
func BlendFactor(progress float64) float64 {
	if progress <= BlendStart {
		return 0
	}
	return EaseInOutCubic((progress - BlendStart) / (1 - BlendStart))
}
