package main

import (
	"math"
	"testing"
)

func TestBezierCurveEndpoints(t *testing.T) {
	if got := BezierCurve(2, 5, -1, 7, 0); got != 2 {
		t.Errorf("t=0 gives %v, want 2", got)
	}
	if got := BezierCurve(2, 5, -1, 7, 1); got != 7 {
		t.Errorf("t=1 gives %v, want 7", got)
	}
}

func TestBezierCurveNewtonInverts(t *testing.T) {
	// monotonic x controls, same shape as the default ease
	p0, p1, p2, p3 := 0.0, 0.3, 0.7, 1.0

	for _, x := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1} {
		ct := BezierCurveNewton(p0, p1, p2, p3, x)
		got := BezierCurve(p0, p1, p2, p3, ct)

		if math.Abs(got-x) > 1e-3 {
			t.Errorf("newton at %v: curve gives %v back", x, got)
		}
	}
}

func TestDefaultEaseGraph(t *testing.T) {
	data := DefaultBezierCurveData

	if got := BezierCurveDataAsGraph(data, 0); math.Abs(got) > 1e-9 {
		t.Errorf("graph(0) = %v, want 0", got)
	}
	if got := BezierCurveDataAsGraph(data, 1); math.Abs(got-1) > 1e-9 {
		t.Errorf("graph(1) = %v, want 1", got)
	}

	// the default control points are symmetric around (0.5, 0.5)
	if got := BezierCurveDataAsGraph(data, 0.5); math.Abs(got-0.5) > 1e-3 {
		t.Errorf("graph(0.5) = %v, want 0.5", got)
	}

	// nondecreasing over the whole span
	prev := BezierCurveDataAsGraph(data, 0)
	for x := 0.05; x <= 1; x += 0.05 {
		cur := BezierCurveDataAsGraph(data, x)
		if cur < prev-1e-6 {
			t.Fatalf("graph decreases at x=%v: %v -> %v", x, prev, cur)
		}
		prev = cur
	}
}

func TestEaseTableJsonRoundTrip(t *testing.T) {
	table := DefaultEaseTable()
	table[EaseBoostGlow].Points[1] = FPt(0.2, 0.9)

	jsonBytes, err := EaseTableToJson(table)
	if err != nil {
		t.Fatalf("to json: %v", err)
	}

	got, err := EaseTableFromJson(jsonBytes)
	if err != nil {
		t.Fatalf("from json: %v", err)
	}

	if got != table {
		t.Errorf("round trip changed the table:\ngot  %+v\nwant %+v", got, table)
	}
}

func TestEaseTableFromJsonPartial(t *testing.T) {
	jsonStr := `{
		"PresetFade": {"Points": [{"X":0,"Y":0},{"X":0.1,"Y":0.5},{"X":0.9,"Y":0.5},{"X":1,"Y":1}]},
		"NoSuchCurve": {"Points": [{"X":0,"Y":0},{"X":0,"Y":0},{"X":0,"Y":0},{"X":0,"Y":0}]}
	}`

	got, err := EaseTableFromJson([]byte(jsonStr))
	if err != nil {
		t.Fatalf("from json: %v", err)
	}

	if got[EasePresetFade].Points[1] != FPt(0.1, 0.5) {
		t.Errorf("named entry not applied: %+v", got[EasePresetFade])
	}

	// entries the json doesn't name keep their defaults
	if got[EaseBoostGlow] != DefaultEaseTable()[EaseBoostGlow] {
		t.Errorf("unnamed entry changed: %+v", got[EaseBoostGlow])
	}
}
