package main

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
	eb "github.com/hajimehoshi/ebiten/v2"
	ebi "github.com/hajimehoshi/ebiten/v2/inpututil"

	"lightdrift/flow"
)

// dragDistance is how far a press may travel and still count as a tap.
const dragDistance = 15

type TouchInfo struct {
	TouchID eb.TouchID

	StartedTime time.Duration
	StartedPos  FPoint

	EndedTime time.Duration
	EndedPos  FPoint
	DidEnd    bool

	Dragged bool

	// max number of simultaneous touches during
	// this was touching
	MaxTouchCount int
}

var TheInputManager struct {
	// below fields are updated by TheInputManager
	// only public for convinience
	// don't write in to it

	TouchInfos map[eb.TouchID]TouchInfo

	TouchingMap     map[eb.TouchID]bool
	JustTouchedMap  map[eb.TouchID]bool
	JustReleasedMap map[eb.TouchID]bool

	TouchingBuf     []eb.TouchID
	JustTouchedBuf  []eb.TouchID
	JustReleasedBuf []eb.TouchID
}

func InitInputManager() {
	im := &TheInputManager

	im.TouchInfos = make(map[eb.TouchID]TouchInfo)
}

func UpdateInput() {
	im := &TheInputManager

	// =============================
	// update touch buffers
	// =============================
	im.TouchingBuf = eb.AppendTouchIDs(im.TouchingBuf[:0])
	im.JustTouchedBuf = ebi.AppendJustPressedTouchIDs(im.JustTouchedBuf[:0])
	im.JustReleasedBuf = ebi.AppendJustReleasedTouchIDs(im.JustReleasedBuf[:0])

	// =============================
	// update touch maps
	// =============================
	im.TouchingMap = nil
	im.JustTouchedMap = nil
	im.JustReleasedMap = nil

	if len(im.TouchingBuf) > 0 {
		im.TouchingMap = make(map[eb.TouchID]bool)
		for _, id := range im.TouchingBuf {
			im.TouchingMap[id] = true
		}
	}
	if len(im.JustTouchedBuf) > 0 {
		im.JustTouchedMap = make(map[eb.TouchID]bool)
		for _, id := range im.JustTouchedBuf {
			im.JustTouchedMap[id] = true
		}
	}
	if len(im.JustReleasedBuf) > 0 {
		im.JustReleasedMap = make(map[eb.TouchID]bool)
		for _, id := range im.JustReleasedBuf {
			im.JustReleasedMap[id] = true
		}
	}

	// =============================
	// update touch infos
	// =============================
	for _, touchId := range im.JustTouchedBuf {
		im.TouchInfos[touchId] = TouchInfo{
			StartedTime: GlobalTimerNow(),
			StartedPos:  TouchFPt(touchId),
			TouchID:     touchId,
		}
	}

	for _, touchId := range im.TouchingBuf {
		if info, ok := im.TouchInfos[touchId]; ok {
			curPos := TouchFPt(touchId)
			if info.StartedPos.Sub(curPos).LengthSquared() > dragDistance*dragDistance {
				info.Dragged = true
			}

			info.MaxTouchCount = max(info.MaxTouchCount, len(im.TouchingBuf))

			im.TouchInfos[touchId] = info
		}
	}

	for _, touchId := range im.JustReleasedBuf {
		if info, ok := im.TouchInfos[touchId]; ok {
			info.DidEnd = true
			info.EndedTime = GlobalTimerNow()
			info.EndedPos = PrevTouchFPt(touchId)
			im.TouchInfos[touchId] = info
		}
	}

	// for safety
	// remove TouchInfo that are unpressed and too old
	for touchId, info := range im.TouchInfos {
		if !IsTouchIdTouching(touchId) && TimeSinceNow(info.StartedTime) > time.Minute*30 {
			delete(im.TouchInfos, touchId)
		}
	}
}

func GetTouchInfo(touchId eb.TouchID) (TouchInfo, bool) {
	im := &TheInputManager
	info, ok := im.TouchInfos[touchId]
	return info, ok
}

func IsMouseButtonPressed(button eb.MouseButton) bool {
	return eb.IsMouseButtonPressed(button)
}

func IsMouseButtonJustPressed(button eb.MouseButton) bool {
	return ebi.IsMouseButtonJustPressed(button)
}

func IsMouseButtonJustReleased(button eb.MouseButton) bool {
	return ebi.IsMouseButtonJustReleased(button)
}

func IsKeyPressed(key eb.Key) bool {
	return eb.IsKeyPressed(key)
}

func IsKeyJustPressed(key eb.Key) bool {
	return ebi.IsKeyJustPressed(key)
}

var keyRepeatMap = make(map[eb.Key]time.Duration)

func HandleKeyRepeat(
	firstRate, repeatRate time.Duration,
	key eb.Key,
) bool {
	if !IsKeyPressed(key) {
		keyRepeatMap[key] = 0
		return false
	}

	if IsKeyJustPressed(key) {
		keyRepeatMap[key] = GlobalTimerNow() + firstRate
		return true
	}

	time, ok := keyRepeatMap[key]

	if !ok {
		keyRepeatMap[key] = GlobalTimerNow() + firstRate
		return true
	} else {
		now := GlobalTimerNow()
		if now-time > repeatRate {
			keyRepeatMap[key] = now
			return true
		}
	}

	return false
}

func IsTouchFree() bool {
	im := &TheInputManager

	return len(im.TouchingBuf) <= 0
}

func IsTouchIdTouching(touchId eb.TouchID) bool {
	im := &TheInputManager
	return im.TouchingMap[touchId]
}

// =====================================
// virtual page
// =====================================

const (
	wheelScrollStep = 48.0
	arrowScrollStep = 60.0

	boostSpringFrequency = 4.5
	boostSpringDamping   = 0.35
)

// The backdrop pretends to sit behind a tall page.
// TheVirtualPage turns wheel, drag and key input into a scroll offset
// and a click impulse for the field to chase.
var TheVirtualPage struct {
	// Scroll is the raw scroll offset in pixels.
	// Smoothing happens inside the field.
	Scroll float64

	boostSpring harmonica.Spring
	boostPos    float64
	boostVel    float64

	mouseHeld    bool
	mouseDragged bool
	mouseStart   FPoint
	mousePrevY   float64
}

func InitVirtualPage() {
	vp := &TheVirtualPage

	vp.boostSpring = harmonica.NewSpring(
		harmonica.FPS(eb.TPS()), boostSpringFrequency, boostSpringDamping)
}

// KickBoost pulses the glow. Rapid clicks stack up to a cap.
func KickBoost() {
	vp := &TheVirtualPage
	vp.boostPos = math.Min(vp.boostPos+1, 2)
}

func UpdateVirtualPage(maxScroll float64) {
	vp := &TheVirtualPage
	im := &TheInputManager

	// =============================
	// wheel
	// =============================
	_, wheelY := eb.Wheel()
	vp.Scroll -= wheelY * wheelScrollStep

	// =============================
	// keyboard
	// =============================
	const firstRate = time.Millisecond * 200
	const repeatRate = time.Millisecond * 35

	if HandleKeyRepeat(firstRate, repeatRate, ScrollUpKey) {
		vp.Scroll -= arrowScrollStep
	}
	if HandleKeyRepeat(firstRate, repeatRate, ScrollDownKey) {
		vp.Scroll += arrowScrollStep
	}

	if IsKeyJustPressed(PageUpKey) {
		vp.Scroll -= ScreenHeight
	}
	if IsKeyJustPressed(PageDownKey) {
		vp.Scroll += ScreenHeight
	}
	if IsKeyJustPressed(ScrollHomeKey) {
		vp.Scroll = 0
	}
	if IsKeyJustPressed(ScrollEndKey) {
		vp.Scroll = maxScroll
	}

	// =============================
	// mouse drag and click
	// =============================
	cursor := CursorFPt()

	if IsMouseButtonJustPressed(eb.MouseButtonLeft) {
		vp.mouseHeld = true
		vp.mouseDragged = false
		vp.mouseStart = cursor
		vp.mousePrevY = cursor.Y
	}

	if vp.mouseHeld {
		if IsMouseButtonJustReleased(eb.MouseButtonLeft) {
			if !vp.mouseDragged {
				KickBoost()
			}
			vp.mouseHeld = false
		} else if IsMouseButtonPressed(eb.MouseButtonLeft) {
			if cursor.Sub(vp.mouseStart).LengthSquared() > dragDistance*dragDistance {
				vp.mouseDragged = true
			}
			if vp.mouseDragged {
				vp.Scroll -= cursor.Y - vp.mousePrevY
			}
			vp.mousePrevY = cursor.Y
		} else {
			// released while we weren't looking (window lost focus)
			vp.mouseHeld = false
		}
	}

	// =============================
	// touch drag and tap
	// =============================
	for _, touchId := range im.TouchingBuf {
		info, ok := GetTouchInfo(touchId)
		if !ok || !info.Dragged {
			continue
		}

		pos := TouchFPt(touchId)
		prevPos := PrevTouchFPt(touchId)
		vp.Scroll -= pos.Y - prevPos.Y

		// first dragging finger wins
		break
	}

	for _, touchId := range im.JustReleasedBuf {
		info, ok := GetTouchInfo(touchId)
		if !ok {
			continue
		}
		if !info.Dragged && info.MaxTouchCount == 1 {
			KickBoost()
		}
	}

	// =============================
	// settle
	// =============================
	vp.Scroll = Clamp(vp.Scroll, 0, maxScroll)

	vp.boostPos, vp.boostVel = vp.boostSpring.Update(vp.boostPos, vp.boostVel, 0)
}

// VirtualPageSample bundles this tick's input for the field.
func VirtualPageSample() flow.Sample {
	vp := &TheVirtualPage
	im := &TheInputManager

	pointer := CursorFPt()
	if !IsTouchFree() {
		pointer = TouchFPt(im.TouchingBuf[0])
	}

	return flow.Sample{
		PointerX: pointer.X,
		PointerY: pointer.Y,
		Scroll:   vp.Scroll,
		Boost:    math.Max(vp.boostPos, 0),
	}
}
