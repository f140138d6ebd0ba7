//go:build driftdev

package main

import (
	"fmt"
	"image/color"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/harmonica"
	eb "github.com/hajimehoshi/ebiten/v2"
	ebu "github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Tuner edits the value tables live while the demo runs.
//
// TunerUpKey and TunerDownKey move between rows, left and right arrows
// nudge the selected value, A and D flip between tables. C copies the
// showing table to the clipboard as json, V pastes it back, R resets
// the showing table to its defaults.
type Tuner struct {
	DoShow bool

	ParamRow  int
	ColorRow  int
	HSVmodRow int

	// 0 : showing param table
	// 1 : showing color table
	// 2 : showing hsv mod table
	ShowingTable int

	showSpring harmonica.Spring

	showPos float64
	showVel float64
}

// color rows split each entry into hue, saturation, value, alpha
const colorChannelCount = 4

// hsv mod rows split each entry into hue, saturation, value
const hsvModChannelCount = 3

func NewTuner() *Tuner {
	tn := new(Tuner)

	tn.showSpring = harmonica.NewSpring(harmonica.FPS(eb.TPS()), 7.0, 0.9)

	return tn
}

func (tn *Tuner) rowCount() int {
	if tn.ShowingTable == 0 { // showing param table
		return int(ParamTableSize)
	} else if tn.ShowingTable == 1 { // showing color table
		return int(ColorTableSize) * colorChannelCount
	} else if tn.ShowingTable == 2 { // showing hsv mod table
		return int(HSVmodTableSize) * hsvModChannelCount
	}
	return 0
}

func (tn *Tuner) selectedRow() int {
	if tn.ShowingTable == 0 { // showing param table
		return tn.ParamRow
	} else if tn.ShowingTable == 1 { // showing color table
		return tn.ColorRow
	} else if tn.ShowingTable == 2 { // showing hsv mod table
		return tn.HSVmodRow
	}
	return 0
}

func (tn *Tuner) tableName() string {
	if tn.ShowingTable == 0 {
		return "param"
	} else if tn.ShowingTable == 1 {
		return "color"
	} else if tn.ShowingTable == 2 {
		return "hsv mod"
	}
	return "unknown"
}

func (tn *Tuner) rowLabel(row int) string {
	if tn.ShowingTable == 0 { // showing param table
		return ParamTableIndex(row).String()
	} else if tn.ShowingTable == 1 { // showing color table
		name := ColorTableIndex(row / colorChannelCount).String()
		return fmt.Sprintf("%s %c", name, "HSVA"[row%colorChannelCount])
	} else if tn.ShowingTable == 2 { // showing hsv mod table
		name := HSVmodTableIndex(row / hsvModChannelCount).String()
		channels := [hsvModChannelCount]string{"Hue", "Sat", "Val"}
		return fmt.Sprintf("%s %s", name, channels[row%hsvModChannelCount])
	}
	return ""
}

func (tn *Tuner) rowRange(row int) (float64, float64) {
	if tn.ShowingTable == 0 { // showing param table
		return ParamTableIndex(row).Range()
	} else if tn.ShowingTable == 1 { // showing color table
		if row%colorChannelCount == 0 { // hue
			return 0, math.Pi * 2
		}
		return 0, 1
	} else if tn.ShowingTable == 2 { // showing hsv mod table
		if row%hsvModChannelCount == 0 { // hue
			return -math.Pi, math.Pi
		}
		return -1, 1
	}
	return 0, 1
}

func (tn *Tuner) rowValue(row int) float64 {
	if tn.ShowingTable == 0 { // showing param table
		return TheParamTable[row]
	} else if tn.ShowingTable == 1 { // showing color table
		return colorChannel(TheColorTable[row/colorChannelCount], row%colorChannelCount)
	} else if tn.ShowingTable == 2 { // showing hsv mod table
		mod := TheHSVmodTable[row/hsvModChannelCount]
		switch row % hsvModChannelCount {
		case 0:
			return mod.Hue
		case 1:
			return mod.Saturation
		}
		return mod.Value
	}
	return 0
}

func (tn *Tuner) setRowValue(row int, v float64) {
	minV, maxV := tn.rowRange(row)
	v = Clamp(v, minV, maxV)

	if tn.ShowingTable == 0 { // showing param table
		TheParamTable[row] = v
	} else if tn.ShowingTable == 1 { // showing color table
		i := ColorTableIndex(row / colorChannelCount)
		TheColorTable[i] = setColorChannel(TheColorTable[i], row%colorChannelCount, v)
	} else if tn.ShowingTable == 2 { // showing hsv mod table
		i := HSVmodTableIndex(row / hsvModChannelCount)
		mod := TheHSVmodTable[i]
		switch row % hsvModChannelCount {
		case 0:
			mod.Hue = v
		case 1:
			mod.Saturation = v
		case 2:
			mod.Value = v
		}
		TheHSVmodTable[i] = mod
	}
}

// color rows edit in hsv space. The alpha channel is kept as is
// except for the alpha row itself.
func colorChannel(c color.NRGBA, channel int) float64 {
	if channel == 3 {
		return f64(c.A) / 255
	}
	return ColorToHSV(c)[channel]
}

func setColorChannel(c color.NRGBA, channel int, v float64) color.NRGBA {
	if channel == 3 {
		c.A = uint8(Clamp(v, 0, 1)*255 + 0.5)
		return c
	}

	hsv := ColorToHSV(c)
	hsv[channel] = v

	modified := ColorFromHSV(hsv[0], hsv[1], hsv[2])
	modified.A = c.A

	return modified
}

func (tn *Tuner) Update() {
	target := 0.0
	if tn.DoShow {
		target = 1
	}
	tn.showPos, tn.showVel = tn.showSpring.Update(tn.showPos, tn.showVel, target)

	if !tn.DoShow {
		return
	}

	const firstRate = 200 * time.Millisecond
	const repeatRate = 50 * time.Millisecond

	if HandleKeyRepeat(firstRate, repeatRate, TunerUpKey) {
		if tn.ShowingTable == 0 { // showing param table
			tn.ParamRow--
		} else if tn.ShowingTable == 1 { // showing color table
			tn.ColorRow--
		} else if tn.ShowingTable == 2 { // showing hsv mod table
			tn.HSVmodRow--
		}
	}
	if HandleKeyRepeat(firstRate, repeatRate, TunerDownKey) {
		if tn.ShowingTable == 0 { // showing param table
			tn.ParamRow++
		} else if tn.ShowingTable == 1 { // showing color table
			tn.ColorRow++
		} else if tn.ShowingTable == 2 { // showing hsv mod table
			tn.HSVmodRow++
		}
	}

	tn.ParamRow = Clamp(tn.ParamRow, 0, int(ParamTableSize)-1)
	tn.ColorRow = Clamp(tn.ColorRow, 0, int(ColorTableSize)*colorChannelCount-1)
	tn.HSVmodRow = Clamp(tn.HSVmodRow, 0, int(HSVmodTableSize)*hsvModChannelCount-1)

	if IsKeyJustPressed(eb.KeyA) {
		tn.ShowingTable--
	}
	if IsKeyJustPressed(eb.KeyD) {
		tn.ShowingTable++
	}

	if tn.ShowingTable < 0 {
		tn.ShowingTable = 2
	}
	if tn.ShowingTable > 2 {
		tn.ShowingTable = 0
	}

	{ // nudge the selected value
		row := tn.selectedRow()

		minV, maxV := tn.rowRange(row)
		step := (maxV - minV) * 0.01

		if HandleKeyRepeat(firstRate, repeatRate, eb.KeyArrowLeft) {
			tn.setRowValue(row, tn.rowValue(row)-step)
		}
		if HandleKeyRepeat(firstRate, repeatRate, eb.KeyArrowRight) {
			tn.setRowValue(row, tn.rowValue(row)+step)
		}
	}

	if IsKeyJustPressed(eb.KeyC) {
		tn.copyShowingTable()
	}
	if IsKeyJustPressed(eb.KeyV) {
		tn.pasteShowingTable()
	}

	if IsKeyJustPressed(eb.KeyR) {
		if tn.ShowingTable == 0 { // showing param table
			TheParamTable = DefaultParamTable()
		} else if tn.ShowingTable == 1 { // showing color table
			TheColorTable = DefaultColorTable()
		} else if tn.ShowingTable == 2 { // showing hsv mod table
			TheHSVmodTable = [HSVmodTableSize]HSVmod{}
		}
		InfoLogger.Printf("reset %s table", tn.tableName())
	}
}

func (tn *Tuner) copyShowingTable() {
	var jsonBytes []byte
	var err error

	if tn.ShowingTable == 0 { // showing param table
		jsonBytes, err = ParamTableToJson(TheParamTable)
	} else if tn.ShowingTable == 1 { // showing color table
		jsonBytes, err = ColorTableToJson(TheColorTable)
	} else if tn.ShowingTable == 2 { // showing hsv mod table
		jsonBytes, err = HSVmodTableToJson(TheHSVmodTable)
	}

	if err != nil {
		ErrorLogger.Printf("failed to copy %s table : %v", tn.tableName(), err)
		return
	}

	ClipboardWriteText(string(jsonBytes))
	InfoLogger.Printf("copied %s table to clipboard", tn.tableName())
}

func (tn *Tuner) pasteShowingTable() {
	jsonStr := ClipboardReadText()
	if len(jsonStr) <= 0 {
		return
	}

	var err error

	if tn.ShowingTable == 0 { // showing param table
		var table [ParamTableSize]float64
		table, err = ParamTableFromJson([]byte(jsonStr))
		if err == nil {
			TheParamTable = table
		}
	} else if tn.ShowingTable == 1 { // showing color table
		var table [ColorTableSize]color.NRGBA
		table, err = ColorTableFromJson([]byte(jsonStr))
		if err == nil {
			TheColorTable = table
		}
	} else if tn.ShowingTable == 2 { // showing hsv mod table
		var table [HSVmodTableSize]HSVmod
		table, err = HSVmodTableFromJson([]byte(jsonStr))
		if err == nil {
			TheHSVmodTable = table
		}
	}

	if err != nil {
		ErrorLogger.Printf("failed to paste %s table : %v", tn.tableName(), err)
		return
	}

	InfoLogger.Printf("pasted %s table from clipboard", tn.tableName())
}

func (tn *Tuner) Draw(dst *eb.Image) {
	if !tn.DoShow && tn.showPos < 0.01 {
		return
	}

	helpText := fmt.Sprintf(
		"%s table (A and D to switch)\n"+
			"%s and %s select, left and right adjust\n"+
			"C copies json, V pastes, R resets\n"+
			"press %s to save a preset",
		tn.tableName(),
		TunerUpKey.String(), TunerDownKey.String(),
		SavePresetKey.String(),
	)

	helpLines := strings.Count(helpText, "\n") + 1

	rowCount := tn.rowCount()
	selected := tn.selectedRow()

	nameW := 0
	for i := 0; i < rowCount; i++ {
		nameW = max(nameW, len(tn.rowLabel(i)))
	}

	var builder strings.Builder

	builder.WriteString(helpText)
	builder.WriteString("\n\n")

	longestLine := 0
	for _, line := range strings.Split(helpText, "\n") {
		longestLine = max(longestLine, len(line))
	}

	for i := 0; i < rowCount; i++ {
		marker := "  "
		if i == selected {
			marker = "> "
		}

		line := fmt.Sprintf("%s%-*s %8.3f", marker, nameW, tn.rowLabel(i), tn.rowValue(i))
		longestLine = max(longestLine, len(line))

		builder.WriteString(line)
		if i != rowCount-1 {
			builder.WriteString("\n")
		}
	}

	const hozMargin = 8
	const vertMargin = 8

	boxW := f64(longestLine*debugCharWidth) + hozMargin*2
	boxH := f64((helpLines+1+rowCount)*debugLineHeight) + vertMargin*2

	// slides in from the left edge
	offsetX := (tn.showPos - 1) * (boxW + 10)

	boxRect := FRectXYWH(offsetX, 10, boxW, boxH)

	FillRect(dst, boxRect, color.NRGBA{0, 0, 0, 150})

	highlightY := boxRect.Min.Y + vertMargin + f64((helpLines+1+selected)*debugLineHeight)
	FillRect(
		dst,
		FRectXYWH(boxRect.Min.X+2, highlightY, boxW-4, debugLineHeight),
		color.NRGBA{85, 40, 130, 160},
	)

	ebu.DebugPrintAt(
		dst, builder.String(),
		int(boxRect.Min.X)+hozMargin, int(boxRect.Min.Y)+vertMargin,
	)
}
