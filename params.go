package main

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"time"

	"lightdrift/flow"
)

// =================================
// color table
// =================================

type ColorTableIndex int

const (
	ColorBgTop ColorTableIndex = iota
	ColorBgBottom

	ColorHaze1
	ColorHaze2

	ColorTrail1
	ColorTrail2
	ColorTrail3
	ColorTrail4

	ColorTableSize
)

func (i ColorTableIndex) String() string {
	switch i {
	case ColorBgTop:
		return "BgTop"
	case ColorBgBottom:
		return "BgBottom"
	case ColorHaze1:
		return "Haze1"
	case ColorHaze2:
		return "Haze2"
	case ColorTrail1:
		return "Trail1"
	case ColorTrail2:
		return "Trail2"
	case ColorTrail3:
		return "Trail3"
	case ColorTrail4:
		return "Trail4"
	}
	return "Unknown"
}

var TheColorTable [ColorTableSize]color.NRGBA

func init() {
	TheColorTable = DefaultColorTable()
}

func DefaultColorTable() [ColorTableSize]color.NRGBA {
	var table [ColorTableSize]color.NRGBA

	table[ColorBgTop] = color.NRGBA{8, 10, 26, 255}
	table[ColorBgBottom] = color.NRGBA{18, 9, 38, 255}

	table[ColorHaze1] = color.NRGBA{43, 27, 88, 140}
	table[ColorHaze2] = color.NRGBA{21, 48, 107, 110}

	// trail stops share the core ramp
	palette := flow.DefaultPalette()
	for i := 0; i < flow.PaletteStops; i++ {
		table[ColorTrail1+ColorTableIndex(i)] = palette[i].NRGBA()
	}

	return table
}

// TrailPaletteColors returns the four ramp stops after grading.
func TrailPaletteColors() [flow.PaletteStops]color.NRGBA {
	var stops [flow.PaletteStops]color.NRGBA
	for i := 0; i < flow.PaletteStops; i++ {
		c := TheColorTable[ColorTrail1+ColorTableIndex(i)]
		stops[i] = ColorToNRGBA(HSVmodTrail.ModifyColor(c, 1))
	}
	return stops
}

func ColorTableToJson(table [ColorTableSize]color.NRGBA) ([]byte, error) {
	tableMap := make(map[string]color.NRGBA)

	for i := ColorTableIndex(0); i < ColorTableSize; i++ {
		tableMap[i.String()] = table[i]
	}

	jsonBytes, err := json.MarshalIndent(tableMap, "", "    ")
	if err != nil {
		return nil, err
	}

	return jsonBytes, nil
}

// ColorTableFromJson starts from the default table and overwrites the
// entries the json names. Unknown names are ignored.
func ColorTableFromJson(tableJson []byte) ([ColorTableSize]color.NRGBA, error) {
	table := DefaultColorTable()

	var tableMap map[string]color.NRGBA

	err := json.Unmarshal(tableJson, &tableMap)
	if err != nil {
		return table, err
	}

	for i := ColorTableIndex(0); i < ColorTableSize; i++ {
		if c, ok := tableMap[i.String()]; ok {
			table[i] = c
		}
	}

	return table, nil
}

// =================================
// param table
// =================================

type ParamTableIndex int

const (
	// multipliers on top of the per trail configs
	ParamAmplitude ParamTableIndex = iota
	ParamFrequency
	ParamSpeed
	ParamOpacity
	ParamSway

	ParamHazeStrength

	ParamBloomStrength
	ParamBloomThreshold
	ParamBloomPulse

	ParamTableSize
)

func (i ParamTableIndex) String() string {
	switch i {
	case ParamAmplitude:
		return "Amplitude"
	case ParamFrequency:
		return "Frequency"
	case ParamSpeed:
		return "Speed"
	case ParamOpacity:
		return "Opacity"
	case ParamSway:
		return "Sway"
	case ParamHazeStrength:
		return "HazeStrength"
	case ParamBloomStrength:
		return "BloomStrength"
	case ParamBloomThreshold:
		return "BloomThreshold"
	case ParamBloomPulse:
		return "BloomPulse"
	}
	return "Unknown"
}

// ParamRange is what the tuner clamps adjustments to.
func (i ParamTableIndex) Range() (float64, float64) {
	switch i {
	case ParamAmplitude, ParamFrequency, ParamSpeed, ParamOpacity, ParamSway:
		return 0, 3
	case ParamHazeStrength:
		return 0, 1
	case ParamBloomStrength:
		return 0, 2
	case ParamBloomThreshold:
		return 0, 1
	case ParamBloomPulse:
		return 0, 1
	}
	return 0, 1
}

var TheParamTable [ParamTableSize]float64

func init() {
	TheParamTable = DefaultParamTable()
}

func DefaultParamTable() [ParamTableSize]float64 {
	var table [ParamTableSize]float64

	table[ParamAmplitude] = 1
	table[ParamFrequency] = 1
	table[ParamSpeed] = 1
	table[ParamOpacity] = 1
	table[ParamSway] = 1

	table[ParamHazeStrength] = 0.45

	table[ParamBloomStrength] = 0.55
	table[ParamBloomThreshold] = 0.6
	table[ParamBloomPulse] = 0.25

	return table
}

// ApplyTuning pushes the multiplier block into the field.
func ApplyTuning(f *flow.Field) {
	f.Tune = flow.Tuning{
		Amplitude: TheParamTable[ParamAmplitude],
		Frequency: TheParamTable[ParamFrequency],
		Speed:     TheParamTable[ParamSpeed],
		Opacity:   TheParamTable[ParamOpacity],
		Sway:      TheParamTable[ParamSway],
	}
}

func ParamTableToJson(table [ParamTableSize]float64) ([]byte, error) {
	tableMap := make(map[string]float64)

	for i := ParamTableIndex(0); i < ParamTableSize; i++ {
		tableMap[i.String()] = table[i]
	}

	jsonBytes, err := json.MarshalIndent(tableMap, "", "    ")
	if err != nil {
		return nil, err
	}

	return jsonBytes, nil
}

// ParamTableFromJson starts from the default table and overwrites the
// entries the json names. Unknown names are ignored.
func ParamTableFromJson(tableJson []byte) ([ParamTableSize]float64, error) {
	table := DefaultParamTable()

	var tableMap map[string]float64

	err := json.Unmarshal(tableJson, &tableMap)
	if err != nil {
		return table, err
	}

	for i := ParamTableIndex(0); i < ParamTableSize; i++ {
		if v, ok := tableMap[i.String()]; ok {
			table[i] = v
		}
	}

	return table, nil
}

// =================================
// presets
// =================================

// Preset bundles every tunable table into one keepsake.
type Preset struct {
	Name string

	Colors  [ColorTableSize]color.NRGBA
	Params  [ParamTableSize]float64
	HSVmods [HSVmodTableSize]HSVmod
	Eases   [EaseTableSize]BezierCurveData
}

func CurrentTablesPreset(name string) Preset {
	return Preset{
		Name:    name,
		Colors:  TheColorTable,
		Params:  TheParamTable,
		HSVmods: TheHSVmodTable,
		Eases:   TheEaseTable,
	}
}

// BuiltinPresets is the cycle the next-preset key walks through.
func BuiltinPresets() []Preset {
	aurora := Preset{
		Name:   "aurora",
		Colors: DefaultColorTable(),
		Params: DefaultParamTable(),
		Eases:  DefaultEaseTable(),
	}

	ember := aurora
	ember.Name = "ember"
	ember.Colors[ColorBgTop] = color.NRGBA{24, 7, 7, 255}
	ember.Colors[ColorBgBottom] = color.NRGBA{43, 13, 5, 255}
	ember.Colors[ColorHaze1] = color.NRGBA{96, 33, 16, 140}
	ember.Colors[ColorHaze2] = color.NRGBA{121, 61, 18, 110}
	ember.Colors[ColorTrail1] = color.NRGBA{121, 24, 33, 255}
	ember.Colors[ColorTrail2] = color.NRGBA{201, 60, 41, 255}
	ember.Colors[ColorTrail3] = color.NRGBA{255, 140, 50, 255}
	ember.Colors[ColorTrail4] = color.NRGBA{255, 221, 121, 255}
	ember.Params[ParamHazeStrength] = 0.5
	ember.Params[ParamBloomStrength] = 0.7
	ember.HSVmods[HSVmodTrail] = HSVmod{Saturation: 0.1}

	abyss := aurora
	abyss.Name = "abyss"
	abyss.Colors[ColorBgTop] = color.NRGBA{2, 6, 16, 255}
	abyss.Colors[ColorBgBottom] = color.NRGBA{4, 11, 24, 255}
	abyss.Colors[ColorHaze1] = color.NRGBA{10, 60, 70, 130}
	abyss.Colors[ColorHaze2] = color.NRGBA{16, 40, 90, 110}
	abyss.Colors[ColorTrail1] = color.NRGBA{12, 64, 96, 255}
	abyss.Colors[ColorTrail2] = color.NRGBA{24, 130, 150, 255}
	abyss.Colors[ColorTrail3] = color.NRGBA{70, 190, 210, 255}
	abyss.Colors[ColorTrail4] = color.NRGBA{180, 240, 255, 255}
	abyss.Params[ParamAmplitude] = 1.15
	abyss.Params[ParamSpeed] = 0.7
	abyss.Params[ParamHazeStrength] = 0.55
	abyss.Params[ParamBloomStrength] = 0.45
	abyss.HSVmods[HSVmodBg] = HSVmod{Value: -0.05}

	return []Preset{aurora, ember, abyss}
}

type presetJson struct {
	Name string `json:"name"`

	Colors  json.RawMessage `json:"colors,omitempty"`
	Params  json.RawMessage `json:"params,omitempty"`
	HSVmods json.RawMessage `json:"hsvmods,omitempty"`
	Eases   json.RawMessage `json:"eases,omitempty"`
}

func PresetToJson(p Preset) ([]byte, error) {
	var pj presetJson
	var err error

	pj.Name = p.Name

	if pj.Colors, err = ColorTableToJson(p.Colors); err != nil {
		return nil, err
	}
	if pj.Params, err = ParamTableToJson(p.Params); err != nil {
		return nil, err
	}
	if pj.HSVmods, err = HSVmodTableToJson(p.HSVmods); err != nil {
		return nil, err
	}
	if pj.Eases, err = EaseTableToJson(p.Eases); err != nil {
		return nil, err
	}

	return json.MarshalIndent(pj, "", "    ")
}

// PresetFromJson fills anything the json leaves out with the table
// defaults, so old preset files keep loading after new entries appear.
func PresetFromJson(data []byte) (Preset, error) {
	p := Preset{
		Colors: DefaultColorTable(),
		Params: DefaultParamTable(),
		Eases:  DefaultEaseTable(),
	}

	var pj presetJson

	if err := json.Unmarshal(data, &pj); err != nil {
		return p, err
	}

	p.Name = pj.Name

	var err error

	if len(pj.Colors) > 0 {
		if p.Colors, err = ColorTableFromJson(pj.Colors); err != nil {
			return p, err
		}
	}
	if len(pj.Params) > 0 {
		if p.Params, err = ParamTableFromJson(pj.Params); err != nil {
			return p, err
		}
	}
	if len(pj.HSVmods) > 0 {
		if p.HSVmods, err = HSVmodTableFromJson(pj.HSVmods); err != nil {
			return p, err
		}
	}
	if len(pj.Eases) > 0 {
		if p.Eases, err = EaseTableFromJson(pj.Eases); err != nil {
			return p, err
		}
	}

	return p, nil
}

// SavePresetFile writes the current tables next to the working
// directory as preset-<timestamp>.json and returns the path.
func SavePresetFile() (string, error) {
	jsonBytes, err := PresetToJson(CurrentTablesPreset("saved"))
	if err != nil {
		return "", err
	}

	fileName := fmt.Sprintf("preset-%d.json", time.Now().Unix())

	// avoid clobbering an earlier save from the same second
	for counter := 1; ; counter++ {
		if _, err := os.Stat(fileName); os.IsNotExist(err) {
			break
		}
		fileName = fmt.Sprintf("preset-%d-%d.json", time.Now().Unix(), counter)
	}

	if err := os.WriteFile(fileName, jsonBytes, 0664); err != nil {
		return "", err
	}

	return fileName, nil
}

func LoadPresetFile(path string) (Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, err
	}

	return PresetFromJson(data)
}

// =================================
// preset manager
// =================================

var ThePresetManager struct {
	// Index into BuiltinPresets, -1 once a file preset took over.
	Index int

	Animations CircularQueue[CallbackAnimation]
}

func InitPresetManager() {
	ThePresetManager.Index = 0
	ThePresetManager.Animations = NewCircularQueue[CallbackAnimation](4)
}

func UpdatePresetManager() {
	AnimationQueueUpdate(&ThePresetManager.Animations)
}

func ApplyNextPreset(fade time.Duration) {
	pm := &ThePresetManager

	presets := BuiltinPresets()
	pm.Index = (pm.Index + 1) % len(presets)

	ApplyPreset(presets[pm.Index], fade)
}

// ApplyPreset crossfades every table toward the preset. The fade is
// shaped by the preset fade ease. Ease curves themselves snap at the
// end instead of fading.
func ApplyPreset(p Preset, fade time.Duration) {
	pm := &ThePresetManager

	AnimationQueueSkipAll(&pm.Animations)

	if fade <= 0 {
		TheColorTable = p.Colors
		TheParamTable = p.Params
		TheHSVmodTable = p.HSVmods
		TheEaseTable = p.Eases
		return
	}

	fromColors := TheColorTable
	fromParams := TheParamTable
	fromMods := TheHSVmodTable

	timer := Timer{Duration: fade}

	var anim CallbackAnimation
	anim.Tag = AnimationTagPresetFade

	anim.Update = func() {
		timer.TickUp()
		timer.ClampCurrent()

		t := BezierCurveDataAsGraph(TheEaseTable[EasePresetFade], timer.Normalize())

		for i := range TheColorTable {
			TheColorTable[i] = LerpColorRGBA(fromColors[i], p.Colors[i], t)
		}
		for i := range TheParamTable {
			TheParamTable[i] = Lerp(fromParams[i], p.Params[i], t)
		}
		for i := range TheHSVmodTable {
			TheHSVmodTable[i] = HSVmod{
				Hue:        Lerp(fromMods[i].Hue, p.HSVmods[i].Hue, t),
				Saturation: Lerp(fromMods[i].Saturation, p.HSVmods[i].Saturation, t),
				Value:      Lerp(fromMods[i].Value, p.HSVmods[i].Value, t),
			}
		}
	}

	anim.Skip = func() {
		timer.Current = timer.Duration
		anim.Update()
	}

	anim.Done = func() bool {
		return timer.Current >= timer.Duration
	}

	anim.AfterDone = func() {
		TheColorTable = p.Colors
		TheParamTable = p.Params
		TheHSVmodTable = p.HSVmods
		TheEaseTable = p.Eases
	}

	pm.Animations.Enqueue(anim)
}
