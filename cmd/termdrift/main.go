// lightdrift in a terminal. Renders the flow field as colored glyph
// cells instead of shaded ribbons. Mostly a toy, but it runs over ssh.
//
// scroll with the mouse wheel or arrow keys, click or press space for
// a boost pulse, n jumps to the next section. q quits.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/gdamore/tcell/v2"

	"lightdrift/flow"
)

// terminals rarely keep up with more
const tickRate = 33 * time.Millisecond

const (
	wheelStep = 4.0
	arrowStep = 4.0

	minEnergy = 0.05
)

// glyphs get denser as cell energy builds up
var energyRamp = []rune(" .:-=+*#%@")

var (
	FlagSeed     int64
	FlagSections int
)

func init() {
	flag.Int64Var(&FlagSeed, "seed", 0, "seed for the noise lanes")
	flag.IntVar(&FlagSections, "sections", 0, "number of page sections (0 for default)")
}

type cellAccum struct {
	r, g, b float64
	energy  float64
}

type App struct {
	screen tcell.Screen
	field  *flow.Field

	palette flow.Palette

	width  int
	height int

	cells []cellAccum

	scroll   float64
	pointerX float64
	pointerY float64

	boostSpring harmonica.Spring
	boostPos    float64
	boostVel    float64

	mouseDown bool
}

func NewApp() (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}

	if err := screen.Init(); err != nil {
		return nil, err
	}

	screen.EnableMouse()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))

	a := new(App)

	a.screen = screen
	a.width, a.height = screen.Size()
	a.cells = make([]cellAccum, a.width*a.height)

	a.palette = flow.DefaultPalette()

	a.field = flow.NewField(flow.Config{
		Width:  float64(a.width),
		Height: a.fieldHeight(),

		SectionCount: FlagSections,
		Seed:         FlagSeed,
	})

	fps := 1 / tickRate.Seconds()
	a.boostSpring = harmonica.NewSpring(harmonica.FPS(int(fps)), 4.5, 0.35)

	a.pointerX = float64(a.width) / 2
	a.pointerY = a.fieldHeight() / 2

	return a, nil
}

// fieldHeight doubles the row count since cells are about twice as
// tall as they are wide. Spine points map back with y/2.
func (a *App) fieldHeight() float64 {
	return float64(a.height) * 2
}

func (a *App) kickBoost() {
	a.boostPos = math.Min(a.boostPos+1, 2)
}

func (a *App) handleResize() {
	newWidth, newHeight := a.screen.Size()
	if newWidth == a.width && newHeight == a.height {
		return
	}

	a.width = newWidth
	a.height = newHeight
	a.cells = make([]cellAccum, a.width*a.height)

	a.field.Resize(float64(a.width), a.fieldHeight())
	a.scroll = flow.Clamp(a.scroll, 0, a.field.MaxScroll())

	a.screen.Sync()
}

func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false

		case ev.Key() == tcell.KeyUp:
			a.scroll -= arrowStep
		case ev.Key() == tcell.KeyDown:
			a.scroll += arrowStep

		case ev.Key() == tcell.KeyPgUp:
			a.scroll -= a.fieldHeight()
		case ev.Key() == tcell.KeyPgDn:
			a.scroll += a.fieldHeight()

		case ev.Key() == tcell.KeyHome:
			a.scroll = 0
		case ev.Key() == tcell.KeyEnd:
			a.scroll = a.field.MaxScroll()

		case ev.Key() == tcell.KeyRune && ev.Rune() == 'n':
			a.scroll = float64(a.field.Section().Next()) * a.fieldHeight()

		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			a.kickBoost()
		}

		a.scroll = flow.Clamp(a.scroll, 0, a.field.MaxScroll())

	case *tcell.EventMouse:
		x, y := ev.Position()
		a.pointerX = float64(x)
		a.pointerY = float64(y) * 2

		btns := ev.Buttons()

		if btns&tcell.WheelUp != 0 {
			a.scroll -= wheelStep
		}
		if btns&tcell.WheelDown != 0 {
			a.scroll += wheelStep
		}

		if btns&tcell.Button1 != 0 {
			if !a.mouseDown {
				a.kickBoost()
			}
			a.mouseDown = true
		} else {
			a.mouseDown = false
		}

		a.scroll = flow.Clamp(a.scroll, 0, a.field.MaxScroll())

	case *tcell.EventResize:
		a.handleResize()
	}

	return true
}

func (a *App) tick() {
	a.boostPos, a.boostVel = a.boostSpring.Update(a.boostPos, a.boostVel, 0)

	a.field.Step(flow.Sample{
		PointerX: a.pointerX,
		PointerY: a.pointerY,
		Scroll:   a.scroll,
		Boost:    math.Max(a.boostPos, 0),
	})

	a.draw()
}

func (a *App) draw() {
	a.screen.Clear()

	for i := range a.cells {
		a.cells[i] = cellAccum{}
	}

	boostGain := 1 + a.field.Boost()*0.6

	for _, trail := range a.field.Trails {
		alpha := trail.Alpha()
		if alpha < 0.02 {
			continue
		}

		clr := a.palette.At(flow.Clamp(trail.Live.ColorShift, 0, 1))
		gain := alpha * trail.Live.Intensity * boostGain * 0.35

		spine := trail.Spine()
		for i := 1; i < len(spine); i++ {
			a.splatSegment(spine[i-1], spine[i], clr, gain)
		}
	}

	for y := 0; y < a.height; y++ {
		for x := 0; x < a.width; x++ {
			c := a.cells[y*a.width+x]
			if c.energy < minEnergy {
				continue
			}

			e := math.Min(c.energy, 1)

			// average chroma scaled by brightness
			r := c.r / c.energy * e
			g := c.g / c.energy * e
			b := c.b / c.energy * e

			glyph := energyRamp[int(e*float64(len(energyRamp)-1))]

			style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(
				int32(flow.Clamp(r, 0, 1)*255),
				int32(flow.Clamp(g, 0, 1)*255),
				int32(flow.Clamp(b, 0, 1)*255),
			))

			a.screen.SetContent(x, y, glyph, nil, style)
		}
	}

	a.drawStatus()

	a.screen.Show()
}

func (a *App) splatSegment(p0, p1 flow.Point, clr flow.RGBA, gain float64) {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y

	steps := int(math.Max(math.Abs(dx), math.Abs(dy)/2)) + 1

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)

		x := int(p0.X + dx*t)
		y := int((p0.Y + dy*t) / 2)

		if x < 0 || x >= a.width || y < 0 || y >= a.height {
			continue
		}

		c := &a.cells[y*a.width+x]
		c.r += clr.R * gain
		c.g += clr.G * gain
		c.b += clr.B * gain
		c.energy += gain
	}
}

func (a *App) drawStatus() {
	sec := a.field.Section()

	status := fmt.Sprintf(
		" section %d/%d  scroll %4.0f  q quits ",
		sec.Index+1, a.field.Config().SectionCount, a.field.Scroll(),
	)

	style := tcell.StyleDefault.Foreground(tcell.ColorGray)

	for i, r := range status {
		if i >= a.width {
			break
		}
		a.screen.SetContent(i, a.height-1, r, nil, style)
	}
}

func (a *App) run() {
	ticker := time.NewTicker(tickRate)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- a.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				return
			}

		case <-ticker.C:
			a.tick()
		}
	}
}

func (a *App) cleanup() {
	a.screen.Fini()
}

func main() {
	flag.Parse()

	app, err := NewApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize : %v\n", err)
		os.Exit(1)
	}
	defer app.cleanup()

	app.run()
}
