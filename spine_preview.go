//go:build ignore

// ====================================================
// renders a field wireframe to a png without opening
// a window
//
// usage :
// 	go run spine_preview.go
// 	go run spine_preview.go -ticks 600 -scroll 1200 -o preview.png
// ====================================================

package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"lightdrift/flow"
)

var (
	FlagWidth    int
	FlagHeight   int
	FlagTicks    int
	FlagSeed     int64
	FlagSections int
	FlagScroll   float64
	FlagOut      string
)

func init() {
	flag.IntVar(&FlagWidth, "width", 1280, "image width")
	flag.IntVar(&FlagHeight, "height", 720, "image height")
	flag.IntVar(&FlagTicks, "ticks", 300, "ticks to run before the snapshot")
	flag.Int64Var(&FlagSeed, "seed", 0, "noise seed")
	flag.IntVar(&FlagSections, "sections", 0, "section count (0 for default)")
	flag.Float64Var(&FlagScroll, "scroll", 0, "scroll position")
	flag.StringVar(&FlagOut, "o", "spine_preview.png", "output path")
}

func main() {
	flag.Parse()

	field := flow.NewField(flow.Config{
		Width:        float64(FlagWidth),
		Height:       float64(FlagHeight),
		SectionCount: FlagSections,
		Seed:         FlagSeed,
	})

	// sweep the pointer around a little so the smoothing
	// has something to chew on
	for i := 0; i < FlagTicks; i++ {
		t := float64(i) * flow.TickDelta
		field.Step(flow.Sample{
			PointerX: float64(FlagWidth) * (0.5 + 0.3*math.Sin(t*0.7)),
			PointerY: float64(FlagHeight) * (0.5 + 0.2*math.Cos(t*0.9)),
			Scroll:   FlagScroll,
		})
	}

	img := image.NewRGBA(image.Rect(0, 0, FlagWidth, FlagHeight))

	palette := flow.DefaultPalette()

	for _, trail := range field.Trails {
		alpha := trail.Alpha()
		if alpha < 0.01 {
			continue
		}

		clr := palette.At(trail.Config.ColorShift).NRGBA()
		clr.A = uint8(alpha * 255)

		spine := trail.Spine()
		for i := 1; i < len(spine); i++ {
			drawLine(img, spine[i-1], spine[i], clr)
		}

		for _, p := range trail.Controls() {
			drawDot(img, p, color.NRGBA{255, 255, 255, clr.A})
		}
	}

	file, err := os.Create(FlagOut)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create %s : %v\n", FlagOut, err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode %s : %v\n", FlagOut, err)
		os.Exit(1)
	}

	fmt.Printf("wrote %s\n", FlagOut)
}

func drawLine(img *image.RGBA, p0, p1 flow.Point, clr color.NRGBA) {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y

	steps := int(math.Max(math.Abs(dx), math.Abs(dy))) + 1

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		plot(img, int(p0.X+dx*t), int(p0.Y+dy*t), clr)
	}
}

func drawDot(img *image.RGBA, p flow.Point, clr color.NRGBA) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			plot(img, int(p.X)+dx, int(p.Y)+dy, clr)
		}
	}
}

// additive so crossing trails read brighter
func plot(img *image.RGBA, x, y int, clr color.NRGBA) {
	if !(image.Pt(x, y).In(img.Bounds())) {
		return
	}

	old := img.RGBAAt(x, y)

	add := func(a uint8, b uint8) uint8 {
		v := int(a) + int(b)*int(clr.A)/255
		if v > 255 {
			v = 255
		}
		return uint8(v)
	}

	img.SetRGBA(x, y, color.RGBA{
		R: add(old.R, clr.R),
		G: add(old.G, clr.G),
		B: add(old.B, clr.B),
		A: 255,
	})
}
