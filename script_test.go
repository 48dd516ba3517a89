package touchscreen

import (
	"testing"
	"time"
)

// runScript steps the script and writes frames until it finishes, advancing
// the clock by one 60Hz tick per frame. Returns the last written frame and
// the number of ticks consumed.
func runScript(t *testing.T, d *Device, clk *fakeClock, r *Script) (*MapFrame, int) {
	t.Helper()
	f := NewMapFrame()
	ticks := 0
	for !r.Done() {
		if ticks > 1000 {
			t.Fatal("script did not finish within 1000 ticks")
		}
		r.Step(d)
		f.Clear()
		d.WriteFrame(f)
		clk.advance(time.Second / 60)
		ticks++
	}
	return f, ticks
}

func TestLoadScriptErrors(t *testing.T) {
	if _, err := LoadScript([]byte("{not json")); err == nil {
		t.Error("malformed JSON should fail")
	}
	if _, err := LoadScript([]byte(`{"steps": []}`)); err == nil {
		t.Error("empty script should fail")
	}
}

func TestScriptTap(t *testing.T) {
	d, clk := newTestDevice(nil)
	r, err := LoadScript([]byte(`{"steps": [
		{"action": "tap", "id": 1, "x": 400, "y": 300}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	sawTap := false
	f := NewMapFrame()
	for !r.Done() {
		r.Step(d)
		f.Clear()
		d.WriteFrame(f)
		clk.advance(time.Second / 60)
		if f.Bool(TapPath(1)) {
			sawTap = true
		}
	}
	if !sawTap {
		t.Error("tap action never published tap1")
	}
}

func TestScriptDragAccumulatesCameraDelta(t *testing.T) {
	d, clk := newTestDevice(nil)
	r, err := LoadScript([]byte(`{"steps": [
		{"action": "drag", "id": 1, "x": 100, "y": 100, "toX": 300, "toY": 100, "frames": 10}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	var total float64
	f := NewMapFrame()
	for !r.Done() {
		r.Step(d)
		f.Clear()
		d.WriteFrame(f)
		clk.advance(time.Second / 60)
		if delta, ok := f.Vec2(PathCameraDelta); ok {
			total += delta.X
		}
	}
	// The first 150ms of motion resolves the buffered touch; whatever the
	// camera job saw afterwards must cover the remaining travel.
	if total <= 0 || total > 200 {
		t.Errorf("accumulated delta = %v, want within (0, 200]", total)
	}
	if d.ActiveJobs() != 0 {
		t.Error("drag left an assignment behind")
	}
}

func TestScriptPinch(t *testing.T) {
	d, clk := newTestDevice(nil)
	r, err := LoadScript([]byte(`{"steps": [
		{"action": "pinch", "id": 1, "x": 400, "y": 200, "id2": 2, "x2": 400, "y2": 500},
		{"action": "touchmove", "id": 2, "x": 400, "y": 600},
		{"action": "touchup", "id": 1},
		{"action": "touchup", "id": 2}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	var maxDist float64
	f := NewMapFrame()
	for !r.Done() {
		r.Step(d)
		f.Clear()
		d.WriteFrame(f)
		clk.advance(time.Second / 60)
		if cd := f.Float(PathPinchCurrentDistance); cd > maxDist {
			maxDist = cd
		}
	}
	if maxDist != 400 {
		t.Errorf("max pinch distance = %v, want 400 after the spread", maxDist)
	}
	if d.ActiveJobs() != 0 {
		t.Error("pinch left assignments behind")
	}
}

func TestScriptWait(t *testing.T) {
	d, clk := newTestDevice(nil)
	r, err := LoadScript([]byte(`{"steps": [
		{"action": "wait", "frames": 5},
		{"action": "tap", "id": 1, "x": 10, "y": 10}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	_, ticks := runScript(t, d, clk, r)
	if ticks < 6 {
		t.Errorf("script finished in %d ticks, want at least 6 (5 waited)", ticks)
	}
}

func TestScriptUnknownTouchWarnsWithoutPanic(t *testing.T) {
	d, clk := newTestDevice(nil)
	r, err := LoadScript([]byte(`{"steps": [
		{"action": "touchmove", "id": 99, "x": 10, "y": 10},
		{"action": "touchup", "id": 99}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	runScript(t, d, clk, r)
	if d.ActiveJobs() != 0 {
		t.Error("unknown touches created assignments")
	}
}
