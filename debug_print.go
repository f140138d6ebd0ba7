package main

import (
	"fmt"
	"image/color"
	"strings"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebu "github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// cell size of the ebitenutil debug font
const (
	debugCharWidth  = 6
	debugLineHeight = 16
)

type DebugMsg struct {
	Key   string
	Value string
}

var TheDebugPrintManager struct {
	DebugMsgs           []DebugMsg
	PersistentDebugMsgs []DebugMsg

	DebugMsgRenderTarget *eb.Image

	builder strings.Builder
}

func DebugPrintf(key, fmtStr string, values ...any) {
	DebugPuts(key, fmt.Sprintf(fmtStr, values...))
}

func DebugPrint(key string, values ...any) {
	DebugPuts(key, fmt.Sprint(values...))
}

func DebugPuts(key, value string) {
	dm := &TheDebugPrintManager

	for i, msg := range dm.DebugMsgs {
		if msg.Key == key {
			dm.DebugMsgs[i].Value = value
			return
		}
	}

	dm.DebugMsgs = append(dm.DebugMsgs, DebugMsg{
		Key:   key,
		Value: value,
	})
}

func DebugPrintfPersist(key, fmtStr string, values ...any) {
	DebugPutsPersist(key, fmt.Sprintf(fmtStr, values...))
}

func DebugPrintPersist(key string, values ...any) {
	DebugPutsPersist(key, fmt.Sprint(values...))
}

func DebugPutsPersist(key, value string) {
	dm := &TheDebugPrintManager

	for i, msg := range dm.PersistentDebugMsgs {
		if msg.Key == key {
			dm.PersistentDebugMsgs[i].Value = value
			return
		}
	}

	dm.PersistentDebugMsgs = append(dm.PersistentDebugMsgs, DebugMsg{
		Key:   key,
		Value: value,
	})
}

func DrawDebugMsgs(dst *eb.Image) {
	dm := &TheDebugPrintManager

	msgTotal := len(dm.PersistentDebugMsgs) + len(dm.DebugMsgs)
	if msgTotal <= 0 {
		return
	}

	dm.builder.Reset()

	msgCounter := 0
	longestLine := 0

	writeMsg := func(msg DebugMsg) {
		// builder doesn't actually errors out
		// no need to check error
		dm.builder.WriteString(msg.Key)
		dm.builder.WriteString(": ")
		dm.builder.WriteString(msg.Value)

		longestLine = max(longestLine, len(msg.Key)+len(msg.Value)+2)

		msgCounter++
		if msgCounter != msgTotal {
			dm.builder.WriteString("\n")
		}
	}

	for _, msg := range dm.PersistentDebugMsgs {
		writeMsg(msg)
	}
	for _, msg := range dm.DebugMsgs {
		writeMsg(msg)
	}

	const hozMargin = 5
	const vertMargin = 5

	text := dm.builder.String()

	boxW := f64(longestLine*debugCharWidth + hozMargin*2)
	boxH := f64(msgTotal*debugLineHeight + vertMargin*2)

	rect := FRectWH(boxW, boxH)

	createBuf := dm.DebugMsgRenderTarget == nil
	createBuf = createBuf || dm.DebugMsgRenderTarget.Bounds().Dx() < int(boxW+1)
	createBuf = createBuf || dm.DebugMsgRenderTarget.Bounds().Dy() < int(boxH+1)

	if createBuf {
		if dm.DebugMsgRenderTarget != nil {
			dm.DebugMsgRenderTarget.Deallocate()
		}
		dm.DebugMsgRenderTarget = eb.NewImageWithOptions(
			RectWH(int(boxW+1), int(boxH+1)),
			&eb.NewImageOptions{Unmanaged: true},
		)
	}

	dm.DebugMsgRenderTarget.Clear()

	// draw background
	FillRect(
		dm.DebugMsgRenderTarget,
		rect,
		color.NRGBA{255, 255, 255, 255},
	)
	FillRect(
		dm.DebugMsgRenderTarget,
		rect.Inset(2),
		color.NRGBA{0, 0, 0, 255},
	)

	// draw text
	ebu.DebugPrintAt(dm.DebugMsgRenderTarget, text, hozMargin, vertMargin)

	// draw DebugMsgRenderTarget
	{
		dstRect := RectToFRect(dst.Bounds())
		op := &DrawImageOptions{}
		op.GeoM.Translate(dstRect.Max.X-boxW, dstRect.Max.Y-boxH)
		DrawImage(dst, dm.DebugMsgRenderTarget, op)
	}
}

func ClearDebugMsgs() {
	dm := &TheDebugPrintManager

	dm.DebugMsgs = dm.DebugMsgs[:0]
}
