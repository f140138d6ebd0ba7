package main

import (
	"encoding/json"
)

type EaseTableIndex int

const (
	// shapes the table crossfade when a preset is applied
	EasePresetFade EaseTableIndex = iota

	// shapes how hard a click boost pushes the bloom
	EaseBoostGlow

	EaseTableSize
)

func (i EaseTableIndex) String() string {
	switch i {
	case EasePresetFade:
		return "PresetFade"
	case EaseBoostGlow:
		return "BoostGlow"
	}
	return "Unknown"
}

type BezierCurveData struct {
	Points [4]FPoint
}

var DefaultBezierCurveData BezierCurveData = BezierCurveData{
	Points: [4]FPoint{
		FPt(0, 0),
		FPt(0.3, 0),
		FPt(0.7, 1),
		FPt(1, 1),
	},
}

var TheEaseTable [EaseTableSize]BezierCurveData

func init() {
	TheEaseTable = DefaultEaseTable()
}

func DefaultEaseTable() [EaseTableSize]BezierCurveData {
	var table [EaseTableSize]BezierCurveData

	for i := EaseTableIndex(0); i < EaseTableSize; i++ {
		table[i] = DefaultBezierCurveData
	}

	// boost rises fast and settles soft
	table[EaseBoostGlow] = BezierCurveData{
		Points: [4]FPoint{
			FPt(0, 0),
			FPt(0.1, 0.6),
			FPt(0.6, 1),
			FPt(1, 1),
		},
	}

	return table
}

func EaseTableToJson(table [EaseTableSize]BezierCurveData) ([]byte, error) {
	tableMap := make(map[string]BezierCurveData)

	for i := EaseTableIndex(0); i < EaseTableSize; i++ {
		tableMap[i.String()] = table[i]
	}

	jsonBytes, err := json.MarshalIndent(tableMap, "", "    ")
	if err != nil {
		return nil, err
	}

	return jsonBytes, nil
}

// EaseTableFromJson starts from the default table and overwrites the
// entries the json names. Unknown names are ignored.
func EaseTableFromJson(tableJson []byte) ([EaseTableSize]BezierCurveData, error) {
	table := DefaultEaseTable()

	var tableMap map[string]BezierCurveData

	err := json.Unmarshal(tableJson, &tableMap)
	if err != nil {
		return table, err
	}

	for i := EaseTableIndex(0); i < EaseTableSize; i++ {
		if curve, ok := tableMap[i.String()]; ok {
			table[i] = curve
		}
	}

	return table, nil
}
