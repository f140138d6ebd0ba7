package main

import (
	"image"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebi "github.com/hajimehoshi/ebiten/v2/inpututil"
)

func CursorFPt() FPoint {
	mx, my := eb.CursorPosition()
	return FPt(f64(mx), f64(my))
}

func TouchFPt(touchId eb.TouchID) FPoint {
	tx, ty := eb.TouchPosition(touchId)
	return FPt(f64(tx), f64(ty))
}

// PrevTouchFPt is the touch position in the previous tick.
// Released touches report (0, 0) from TouchPosition so this is the
// only way to learn where a touch ended.
func PrevTouchFPt(touchId eb.TouchID) FPoint {
	tx, ty := ebi.TouchPositionInPreviousTick(touchId)
	return FPt(f64(tx), f64(ty))
}

func ImageSize(img image.Image) (int, int) {
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func ImageSizeF(img image.Image) (float64, float64) {
	return f64(img.Bounds().Dx()), f64(img.Bounds().Dy())
}
