package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"
)

const (
	ReloadAssetsKey eb.Key = eb.KeyF5
	SavePresetKey   eb.Key = eb.KeyF10

	ShowDebugConsoleKey = eb.KeyF1

	NextPresetKey eb.Key = eb.KeyN

	ShowTunerKey      = eb.KeyF3
	ShowEaseEditorKey = eb.KeyF4
	TunerUpKey        = eb.KeyW
	TunerDownKey      = eb.KeyS

	ScrollUpKey   = eb.KeyArrowUp
	ScrollDownKey = eb.KeyArrowDown
	PageUpKey     = eb.KeyPageUp
	PageDownKey   = eb.KeyPageDown
	ScrollHomeKey = eb.KeyHome
	ScrollEndKey  = eb.KeyEnd

	ScreenshotKey eb.Key = eb.KeyP
)
