package touchscreen

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a gesture script.
type scriptStep struct {
	Action string  `json:"action"`
	ID     int64   `json:"id,omitempty"`
	ID2    int64   `json:"id2,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	X2     float64 `json:"x2,omitempty"`
	Y2     float64 `json:"y2,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// gestureScript is the top-level JSON structure.
type gestureScript struct {
	Steps []scriptStep `json:"steps"`
}

// dragState is an in-progress multi-frame drag expansion.
type dragState struct {
	id     int64
	fromX  float64
	fromY  float64
	toX    float64
	toY    float64
	frame  int
	frames int
}

// Script sequences touch events across ticks for automated gesture
// testing. Feed it to a Device by calling Step once per tick before
// WriteFrame.
//
// Supported actions: "touchdown" (id, x, y), "touchmove" (id, x, y),
// "touchup" (id), "tap" (id, x, y), "drag" (id, x, y, toX, toY, frames),
// "pinch" (id, x, y, id2, x2, y2), and "wait" (frames).
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool

	active map[int64]Touch
	drag   *dragState
}

// LoadScript parses a JSON gesture script.
func LoadScript(jsonData []byte) (*Script, error) {
	var script gestureScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	return &Script{
		steps:  script.Steps,
		active: make(map[int64]Touch),
	}, nil
}

// Done reports whether all steps have been executed.
func (r *Script) Done() bool {
	return r.done
}

// Step advances the script by one tick, enqueuing at most one event batch
// on the device.
func (r *Script) Step(d *Device) {
	if r.done {
		return
	}
	if r.drag != nil {
		r.stepDrag(d)
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "touchdown":
		r.down(d, Touch{ID: st.ID, X: st.X, Y: st.Y})
	case "touchmove":
		r.move(d, Touch{ID: st.ID, X: st.X, Y: st.Y})
	case "touchup":
		r.up(d, st.ID)
	case "tap":
		t := Touch{ID: st.ID, X: st.X, Y: st.Y}
		d.InjectStart(t)
		d.InjectEnd(t)
	case "drag":
		r.down(d, Touch{ID: st.ID, X: st.X, Y: st.Y})
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		r.drag = &dragState{
			id: st.ID, fromX: st.X, fromY: st.Y,
			toX: st.ToX, toY: st.ToY,
			frame: 1, frames: frames,
		}
	case "pinch":
		r.down(d, Touch{ID: st.ID, X: st.X, Y: st.Y})
		r.down(d, Touch{ID: st.ID2, X: st.X2, Y: st.Y2})
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	default:
		warnf("gesture script: unknown action %q", st.Action)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && r.drag == nil {
		r.done = true
	}
}

// stepDrag emits the next move (or the final lift) of an in-flight drag.
func (r *Script) stepDrag(d *Device) {
	dr := r.drag
	if dr.frame >= dr.frames-1 {
		r.active[dr.id] = Touch{ID: dr.id, X: dr.toX, Y: dr.toY}
		r.up(d, dr.id)
		r.drag = nil
		if r.cursor >= len(r.steps) && r.waitCount == 0 {
			r.done = true
		}
		return
	}
	t := float64(dr.frame) / float64(dr.frames-1)
	x := dr.fromX + (dr.toX-dr.fromX)*t
	y := dr.fromY + (dr.toY-dr.fromY)*t
	dr.frame++
	r.move(d, Touch{ID: dr.id, X: x, Y: y})
}

func (r *Script) down(d *Device, t Touch) {
	r.active[t.ID] = t
	d.Enqueue(TouchEvent{Kind: EventTouchStart, Changed: []Touch{t}, Active: r.activeTouches()})
}

func (r *Script) move(d *Device, t Touch) {
	if _, ok := r.active[t.ID]; !ok {
		warnf("gesture script: touchmove for unknown touch %d", t.ID)
		return
	}
	r.active[t.ID] = t
	d.Enqueue(TouchEvent{Kind: EventTouchMove, Active: r.activeTouches()})
}

func (r *Script) up(d *Device, id int64) {
	t, ok := r.active[id]
	if !ok {
		warnf("gesture script: touchup for unknown touch %d", id)
		return
	}
	delete(r.active, id)
	d.Enqueue(TouchEvent{Kind: EventTouchEnd, Changed: []Touch{t}, Active: r.activeTouches()})
}

func (r *Script) activeTouches() []Touch {
	out := make([]Touch, 0, len(r.active))
	for _, t := range r.active {
		out = append(out, t)
	}
	return out
}
