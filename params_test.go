package main

import (
	"image/color"
	"testing"
	"time"
)

// snapshotTables saves the live tables so a test can mutate them
// freely. Restore with the returned func.
func snapshotTables() func() {
	colors := TheColorTable
	params := TheParamTable
	mods := TheHSVmodTable
	eases := TheEaseTable

	return func() {
		TheColorTable = colors
		TheParamTable = params
		TheHSVmodTable = mods
		TheEaseTable = eases
	}
}

func TestParamTableJsonRoundTrip(t *testing.T) {
	table := DefaultParamTable()
	table[ParamAmplitude] = 1.7
	table[ParamBloomPulse] = 0.9

	jsonBytes, err := ParamTableToJson(table)
	if err != nil {
		t.Fatalf("to json: %v", err)
	}

	got, err := ParamTableFromJson(jsonBytes)
	if err != nil {
		t.Fatalf("from json: %v", err)
	}

	if got != table {
		t.Errorf("round trip changed the table:\ngot  %v\nwant %v", got, table)
	}
}

func TestParamTableFromJsonPartial(t *testing.T) {
	jsonStr := `{"Amplitude": 2.5, "NoSuchParam": 9}`

	got, err := ParamTableFromJson([]byte(jsonStr))
	if err != nil {
		t.Fatalf("from json: %v", err)
	}

	want := DefaultParamTable()
	want[ParamAmplitude] = 2.5

	if got != want {
		t.Errorf("partial overlay:\ngot  %v\nwant %v", got, want)
	}
}

func TestColorTableFromJsonPartial(t *testing.T) {
	jsonStr := `{"BgTop": {"R": 1, "G": 2, "B": 3, "A": 255}}`

	got, err := ColorTableFromJson([]byte(jsonStr))
	if err != nil {
		t.Fatalf("from json: %v", err)
	}

	want := DefaultColorTable()
	want[ColorBgTop] = color.NRGBA{1, 2, 3, 255}

	if got != want {
		t.Errorf("partial overlay:\ngot  %v\nwant %v", got, want)
	}
}

func TestPresetJsonRoundTrip(t *testing.T) {
	preset := BuiltinPresets()[1]

	jsonBytes, err := PresetToJson(preset)
	if err != nil {
		t.Fatalf("to json: %v", err)
	}

	got, err := PresetFromJson(jsonBytes)
	if err != nil {
		t.Fatalf("from json: %v", err)
	}

	if got.Name != preset.Name {
		t.Errorf("name = %q, want %q", got.Name, preset.Name)
	}
	if got.Colors != preset.Colors {
		t.Errorf("colors changed in round trip")
	}
	if got.Params != preset.Params {
		t.Errorf("params changed in round trip")
	}
	if got.HSVmods != preset.HSVmods {
		t.Errorf("hsv mods changed in round trip")
	}
	if got.Eases != preset.Eases {
		t.Errorf("eases changed in round trip")
	}
}

func TestPresetFromJsonEmpty(t *testing.T) {
	// a bare preset file falls back to the defaults
	got, err := PresetFromJson([]byte(`{"name": "bare"}`))
	if err != nil {
		t.Fatalf("from json: %v", err)
	}

	if got.Name != "bare" {
		t.Errorf("name = %q, want bare", got.Name)
	}
	if got.Colors != DefaultColorTable() {
		t.Errorf("colors should default")
	}
	if got.Params != DefaultParamTable() {
		t.Errorf("params should default")
	}
	if got.Eases != DefaultEaseTable() {
		t.Errorf("eases should default")
	}
}

func TestApplyPresetImmediate(t *testing.T) {
	defer snapshotTables()()

	InitPresetManager()

	ember := BuiltinPresets()[1]
	ApplyPreset(ember, 0)

	if TheColorTable != ember.Colors {
		t.Errorf("colors not applied")
	}
	if TheParamTable != ember.Params {
		t.Errorf("params not applied")
	}
	if TheHSVmodTable != ember.HSVmods {
		t.Errorf("hsv mods not applied")
	}
}

func TestApplyPresetFade(t *testing.T) {
	defer snapshotTables()()

	InitPresetManager()

	presets := BuiltinPresets()
	ApplyPreset(presets[0], 0)

	ember := presets[1]
	ApplyPreset(ember, time.Millisecond*100)

	// one tick in, the fade has started but not landed
	UpdatePresetManager()
	if TheParamTable == ember.Params {
		t.Errorf("fade landed after a single tick")
	}

	// well past the fade everything sits exactly on the preset
	for i := 0; i < 60; i++ {
		UpdatePresetManager()
	}

	if TheColorTable != ember.Colors {
		t.Errorf("colors did not land")
	}
	if TheParamTable != ember.Params {
		t.Errorf("params did not land")
	}
	if TheHSVmodTable != ember.HSVmods {
		t.Errorf("hsv mods did not land")
	}
	if TheEaseTable != ember.Eases {
		t.Errorf("eases did not land")
	}
}

func TestApplyPresetFadeInterrupted(t *testing.T) {
	defer snapshotTables()()

	InitPresetManager()

	presets := BuiltinPresets()
	ApplyPreset(presets[0], 0)

	// starting a second fade skips the first to its end state
	ApplyPreset(presets[1], time.Second)
	ApplyPreset(presets[2], 0)

	if TheColorTable != presets[2].Colors {
		t.Errorf("interrupting fade should land on the last preset")
	}
}

func TestApplyNextPresetCycles(t *testing.T) {
	defer snapshotTables()()

	InitPresetManager()

	presets := BuiltinPresets()

	for i := 1; i <= len(presets); i++ {
		ApplyNextPreset(0)

		want := presets[i%len(presets)]
		if TheColorTable != want.Colors {
			t.Fatalf("cycle step %d: wrong preset applied", i)
		}
	}
}

func TestTrailPaletteColorsGrading(t *testing.T) {
	defer snapshotTables()()

	TheColorTable = DefaultColorTable()
	TheHSVmodTable = [HSVmodTableSize]HSVmod{}

	// with zero mods the stops pass through untouched
	stops := TrailPaletteColors()
	for i, stop := range stops {
		want := TheColorTable[ColorTrail1+ColorTableIndex(i)]
		if stop != want {
			t.Errorf("stop %d = %v, want %v", i, stop, want)
		}
	}

	// darkening the trail group darkens every stop
	TheHSVmodTable[HSVmodTrail] = HSVmod{Value: -0.3}

	graded := TrailPaletteColors()
	for i := range graded {
		if graded[i] == stops[i] {
			t.Errorf("stop %d unchanged by grading", i)
		}
	}
}
