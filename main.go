package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/silbinarywolf/preferdiscretegpu"
	"net/http"
	_ "net/http/pprof"

	eb "github.com/hajimehoshi/ebiten/v2"
)

var (
	ScreenWidth  float64 = 1280
	ScreenHeight float64 = 720
)

var ErrorLogger *log.Logger = log.New(os.Stderr, "ERROR: ", log.Lshortfile)
var InfoLogger *log.Logger = log.New(os.Stdout, "INFO: ", log.Lshortfile)

// set by the screenshot build tag
var ScreenshotEnabled bool

var (
	FlagHotReload bool
	FlagPProf     bool
	FlagSeed      int64
	FlagSections  int
	FlagPreset    string
)

func init() {
	flag.BoolVar(&FlagHotReload, "hot", false, "reload shaders from disk on F5")
	flag.BoolVar(&FlagPProf, "pprof", false, "enable pprof")
	flag.Int64Var(&FlagSeed, "seed", 0, "seed for the noise lanes and haze tiles")
	flag.IntVar(&FlagSections, "sections", 0, "number of page sections (0 for default)")
	flag.StringVar(&FlagPreset, "preset", "", "preset file to load at startup")
}

type App struct {
	Scene *Scene

	Tuner      *Tuner
	EaseEditor *EaseEditor

	ShowDebugConsole bool

	wantScreenshot bool
}

func NewApp() *App {
	a := new(App)

	a.Scene = NewScene(ScreenWidth, ScreenHeight, FlagSections, FlagSeed)
	a.Tuner = NewTuner()
	a.EaseEditor = NewEaseEditor()

	return a
}

func (a *App) Update() error {
	ClearDebugMsgs()

	// ==========================
	// update global timer
	// ==========================
	UpdateGlobalTimer()

	// ==========================
	// update input
	// ==========================
	UpdateInput()

	fpsStr := fmt.Sprintf("%.2f", eb.ActualFPS())
	tpsStr := fmt.Sprintf("%.2f", eb.ActualTPS())

	// ==========================
	// update windows title
	// ==========================
	eb.SetWindowTitle("lightdrift FPS: " + fpsStr + " TPS: " + tpsStr)

	// ==========================
	// DebugPrint
	// ==========================
	DebugPrint("FPS", fpsStr)
	DebugPrint("TPS", tpsStr)

	// ==========================
	// asset loading and saving
	// ==========================
	if IsKeyJustPressed(ReloadAssetsKey) {
		LoadAssets()
	}

	if IsKeyJustPressed(SavePresetKey) {
		if path, err := SavePresetFile(); err == nil {
			InfoLogger.Printf("saved preset to %s", path)
		} else {
			ErrorLogger.Printf("failed to save preset : %v", err)
		}
	}

	// ==========================
	// presets
	// ==========================
	if IsKeyJustPressed(NextPresetKey) {
		ApplyNextPreset(time.Millisecond * 800)
	}

	// ==========================
	// debug showing
	// ==========================
	if IsKeyJustPressed(ShowDebugConsoleKey) {
		a.ShowDebugConsole = !a.ShowDebugConsole
	}

	// the tuner and the ease editor share their edit keys
	// so only one shows at a time
	if IsKeyJustPressed(ShowTunerKey) {
		a.Tuner.DoShow = !a.Tuner.DoShow
		if a.Tuner.DoShow {
			a.EaseEditor.DoShow = false
		}
	}

	if IsKeyJustPressed(ShowEaseEditorKey) {
		a.EaseEditor.DoShow = !a.EaseEditor.DoShow
		if a.EaseEditor.DoShow {
			a.Tuner.DoShow = false
		}
	}

	// ==========================
	// screenshot
	// ==========================
	if ScreenshotEnabled && IsKeyJustPressed(ScreenshotKey) {
		a.wantScreenshot = true
	}

	if err := a.Scene.Update(); err != nil {
		return err
	}

	a.Tuner.Update()
	a.EaseEditor.Update()

	return nil
}

func (a *App) Draw(dst *eb.Image) {
	a.Scene.Draw(dst)

	// the screen itself can't be read back, the scene offscreen can
	if a.wantScreenshot {
		a.wantScreenshot = false

		if name, err := TakeScreenshot(a.Scene.SceneTarget); err == nil {
			InfoLogger.Printf("saved screenshot to %s", name)
		} else {
			ErrorLogger.Printf("failed to take screenshot : %v", err)
		}
	}

	a.Tuner.Draw(dst)
	a.EaseEditor.Draw(dst)

	if a.ShowDebugConsole {
		DrawDebugMsgs(dst)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	ScreenWidth = f64(outsideWidth)
	ScreenHeight = f64(outsideHeight)

	return a.Scene.Layout(outsideWidth, outsideHeight)
}

func main() {
	flag.Parse()

	if FlagPProf {
		go func() {
			InfoLogger.Print("initializing pprof")
			InfoLogger.Print(http.ListenAndServe("localhost:6060", nil))
		}()
	}

	InitClipboardManager()
	InitInputManager()
	InitVirtualPage()
	InitPresetManager()

	LoadAssets()

	if FlagPreset != "" {
		preset, err := LoadPresetFile(FlagPreset)
		if err != nil {
			ErrorLogger.Fatalf("failed to load preset %s : %v", FlagPreset, err)
		}
		ApplyPreset(preset, 0)
		InfoLogger.Printf("loaded preset %q", preset.Name)
	}

	app := NewApp()

	eb.SetVsyncEnabled(true)
	eb.SetWindowSize(int(ScreenWidth), int(ScreenHeight))
	eb.SetWindowResizingMode(eb.WindowResizingModeEnabled)
	eb.SetWindowTitle("lightdrift")

	if err := eb.RunGame(app); err != nil {
		panic(err)
	}
}
