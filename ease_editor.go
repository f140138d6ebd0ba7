//go:build driftdev

package main

import (
	"image/color"
	"math"
	"strings"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebu "github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Handles 1 and 2 are stored pulled in towards their endpoint by this
// factor so they stay draggable inside the curve box. Reading the
// curve out scales them back.
const easeEditorHandleScale = 3.0

// EaseEditor edits the ease table curves with the mouse.
//
// TunerUpKey and TunerDownKey switch between curves, control points
// drag with the left mouse button. C copies the whole table as json,
// V pastes it back, R resets the showing curve.
type EaseEditor struct {
	DoShow     bool
	wasShowing bool

	Rect FRectangle

	TableIndex EaseTableIndex

	Points  [4]FPoint
	Focused int
}

func NewEaseEditor() *EaseEditor {
	ee := new(EaseEditor)

	ee.Points = DefaultBezierCurveData.Points
	ee.Focused = -1

	return ee
}

// CurveRect is the box the curve and its control points live in.
// The strip left of it holds the curve list and the help text.
func (ee *EaseEditor) CurveRect() FRectangle {
	return FRect(
		ee.Rect.Max.X-ee.Rect.Dx()*0.65, ee.Rect.Min.Y,
		ee.Rect.Max.X, ee.Rect.Max.Y,
	).Inset(1)
}

func (ee *EaseEditor) Update() {
	if !ee.wasShowing && ee.DoShow {
		ee.SetToBezierCurveData(TheEaseTable[ee.TableIndex])
	}
	ee.wasShowing = ee.DoShow

	if !ee.DoShow {
		return
	}

	ee.Rect = FRectWH(380, 300)
	ee.Rect = FRectMoveTo(ee.Rect, ScreenWidth-(380+25), 70)

	const firstRate = 200 * time.Millisecond
	const repeatRate = 50 * time.Millisecond

	{ // switch the showing curve
		changed := false

		if HandleKeyRepeat(firstRate, repeatRate, TunerUpKey) {
			ee.TableIndex--
			changed = true
		}
		if HandleKeyRepeat(firstRate, repeatRate, TunerDownKey) {
			ee.TableIndex++
			changed = true
		}

		ee.TableIndex = Clamp(ee.TableIndex, 0, EaseTableSize-1)

		if changed {
			ee.SetToBezierCurveData(TheEaseTable[ee.TableIndex])
		}
	}

	prevP0 := ee.Points[0]
	prevP3 := ee.Points[3]

	cursor := CursorFPt()

	if IsMouseButtonJustPressed(eb.MouseButtonLeft) {
		// handles first, they sit on top of the endpoints
		focusPriority := [4]int{1, 2, 0, 3}

		for _, i := range focusPriority {
			sp := ee.ControlPosToScreenPos(ee.Points[i])
			if sp.Sub(cursor).LengthSquared() < 20*20 {
				ee.Focused = i
				break
			}
		}
	}

	if ee.Focused >= 0 {
		ee.Points[ee.Focused] = ee.ScreenPosToControlPos(cursor)
	}

	if !IsMouseButtonPressed(eb.MouseButtonLeft) {
		ee.Focused = -1
	}

	// clamp control points
	ee.Points[0].X = 0
	ee.Points[3].X = 1
	ee.Points[0].Y = Clamp(ee.Points[0].Y, -1, 1)
	ee.Points[3].Y = Clamp(ee.Points[3].Y, -1, 1)

	ee.Points[1].X = Clamp(ee.Points[1].X, 0, 1.0/easeEditorHandleScale)
	ee.Points[2].X = Clamp(ee.Points[2].X, 1-1.0/easeEditorHandleScale, 1)

	// handles follow their endpoint
	delta0 := ee.Points[0].Sub(prevP0)
	delta3 := ee.Points[3].Sub(prevP3)

	ee.Points[1] = ee.Points[1].Add(delta0)
	ee.Points[2] = ee.Points[2].Add(delta3)

	TheEaseTable[ee.TableIndex] = ee.GetBezierCurveData()

	if IsKeyJustPressed(eb.KeyC) {
		jsonBytes, err := EaseTableToJson(TheEaseTable)
		if err != nil {
			ErrorLogger.Printf("failed to copy ease table : %v", err)
		} else {
			ClipboardWriteText(string(jsonBytes))
			InfoLogger.Print("copied ease table to clipboard")
		}
	}

	if IsKeyJustPressed(eb.KeyV) {
		jsonStr := ClipboardReadText()
		if len(jsonStr) > 0 {
			table, err := EaseTableFromJson([]byte(jsonStr))
			if err != nil {
				ErrorLogger.Printf("failed to paste ease table : %v", err)
			} else {
				TheEaseTable = table
				ee.SetToBezierCurveData(TheEaseTable[ee.TableIndex])
				InfoLogger.Print("pasted ease table from clipboard")
			}
		}
	}

	if IsKeyJustPressed(eb.KeyR) {
		TheEaseTable[ee.TableIndex] = DefaultEaseTable()[ee.TableIndex]
		ee.SetToBezierCurveData(TheEaseTable[ee.TableIndex])
		InfoLogger.Printf("reset %s curve", ee.TableIndex.String())
	}
}

func (ee *EaseEditor) Draw(dst *eb.Image) {
	if !ee.DoShow {
		return
	}

	FillRect(dst, ee.Rect, color.NRGBA{0, 0, 0, 150})

	{ // draw the curve box
		rect := ee.CurveRect()
		StrokeRect(dst, rect, 2, color.NRGBA{255, 255, 255, 100})

		// y = 0 line
		center := FRectangleCenter(rect)
		StrokeLine(
			dst,
			rect.Min.X, center.Y,
			rect.Max.X, center.Y,
			2,
			color.NRGBA{255, 255, 255, 100},
		)
	}

	{ // draw the curve as the runtime samples it
		data := ee.GetBezierCurveData()

		x := f64(0)

		for x < 1 {
			nextX := math.Min(x+0.02, 1)

			p0 := FPt(x, BezierCurveDataAsGraph(data, x))
			p1 := FPt(nextX, BezierCurveDataAsGraph(data, nextX))

			p0 = ee.ControlPosToScreenPos(p0)
			p1 = ee.ControlPosToScreenPos(p1)

			StrokeLine(
				dst,
				p0.X, p0.Y,
				p1.X, p1.Y,
				3,
				color.NRGBA{255, 60, 60, 255},
			)

			x = nextX
		}
	}

	{ // draw control points
		var sps [4]FPoint

		for i, p := range ee.Points {
			sps[i] = ee.ControlPosToScreenPos(p)
		}

		StrokeLine(
			dst,
			sps[0].X, sps[0].Y,
			sps[1].X, sps[1].Y,
			2,
			color.NRGBA{0, 255, 0, 255},
		)

		StrokeLine(
			dst,
			sps[2].X, sps[2].Y,
			sps[3].X, sps[3].Y,
			2,
			color.NRGBA{0, 255, 0, 255},
		)

		for _, sp := range sps {
			DrawFilledCircle(dst, sp.X, sp.Y, 7, color.NRGBA{255, 255, 255, 255})
			StrokeCircle(dst, sp.X, sp.Y, 7, 2, color.NRGBA{255, 0, 0, 255})
		}
	}

	{ // draw the curve list and help text
		var builder strings.Builder

		for i := EaseTableIndex(0); i < EaseTableSize; i++ {
			if i == ee.TableIndex {
				builder.WriteString("> ")
			} else {
				builder.WriteString("  ")
			}
			builder.WriteString(i.String())
			builder.WriteString("\n")
		}

		builder.WriteString("\nC copy\nV paste\nR reset")

		ebu.DebugPrintAt(
			dst, builder.String(),
			int(ee.Rect.Min.X)+8, int(ee.Rect.Min.Y)+8,
		)
	}
}

func (ee *EaseEditor) GetBezierCurveData() BezierCurveData {
	data := BezierCurveData{}

	data.Points[0], data.Points[3] = ee.Points[0], ee.Points[3]

	data.Points[1] = ee.Points[1].Sub(ee.Points[0]).Scale(easeEditorHandleScale).Add(ee.Points[0])
	data.Points[2] = ee.Points[2].Sub(ee.Points[3]).Scale(easeEditorHandleScale).Add(ee.Points[3])

	return data
}

func (ee *EaseEditor) SetToBezierCurveData(data BezierCurveData) {
	// clamp the data
	data.Points[0].X = 0
	data.Points[3].X = 1
	data.Points[0].Y = Clamp(data.Points[0].Y, -1, 1)
	data.Points[3].Y = Clamp(data.Points[3].Y, -1, 1)

	data.Points[1].X = Clamp(data.Points[1].X, 0, 1)
	data.Points[2].X = Clamp(data.Points[2].X, 0, 1)

	// shrink points 1 and 2
	data.Points[1] = data.Points[1].Sub(data.Points[0]).Scale(1.0 / easeEditorHandleScale).Add(data.Points[0])
	data.Points[2] = data.Points[2].Sub(data.Points[3]).Scale(1.0 / easeEditorHandleScale).Add(data.Points[3])

	for i, dataP := range data.Points {
		ee.Points[i] = dataP
	}
}

func (ee *EaseEditor) ScreenPosToControlPos(pos FPoint) FPoint {
	rect := ee.CurveRect()

	pos.X -= rect.Min.X
	pos.Y -= (rect.Min.Y + rect.Max.Y) * 0.5

	pos.X /= rect.Dx()
	pos.Y /= rect.Dy() * 0.5

	pos.Y = -pos.Y

	return pos
}

func (ee *EaseEditor) ControlPosToScreenPos(pos FPoint) FPoint {
	rect := ee.CurveRect()

	pos.Y = -pos.Y
	pos.X = pos.X*rect.Dx() + rect.Min.X
	pos.Y = pos.Y*rect.Dy()*0.5 + (rect.Min.Y+rect.Max.Y)*0.5

	return pos
}
