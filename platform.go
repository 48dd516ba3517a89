package touchscreen

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// TouchSource feeds Ebitengine touch input into a Device. Ebitengine
// exposes touches by polling, so Poll diffs the current touch set against
// the previous tick's to synthesize start, move, and end events.
//
// Call Poll once per tick, before Device.WriteFrame.
type TouchSource struct {
	device   *Device
	controls []Rect

	ids  []ebiten.TouchID
	prev map[ebiten.TouchID]Touch

	// scratch buffers reused across ticks
	started []Touch
	moved   []Touch
	ended   []Touch
	active  []Touch
}

// NewTouchSource binds a source to the device it feeds.
func NewTouchSource(d *Device) *TouchSource {
	return &TouchSource{
		device: d,
		prev:   make(map[ebiten.TouchID]Touch),
	}
}

// AddControlRegion marks a screen rectangle as a virtual on-screen control.
// Touches starting inside it are tagged TargetControl, so their moves are
// ignored by the resolver even when unassigned.
func (s *TouchSource) AddControlRegion(r Rect) {
	s.controls = append(s.controls, r)
}

// classify derives the target descriptor for a touch position.
func (s *TouchSource) classify(x, y float64) TargetKind {
	for _, r := range s.controls {
		if r.Contains(x, y) {
			return TargetControl
		}
	}
	if s.device.hit.HitTest(x, y) == SurfaceUI {
		return TargetUI
	}
	return TargetWorld
}

// Poll reads the current touch set and enqueues the events that describe
// the change since the previous tick: one start event for new touches, one
// move event (listing all active touches) when any position changed, and
// one end event for lifted touches, in that order.
func (s *TouchSource) Poll() {
	s.ids = ebiten.AppendTouchIDs(s.ids[:0])

	s.started = s.started[:0]
	s.moved = s.moved[:0]
	s.ended = s.ended[:0]
	s.active = s.active[:0]

	seen := make(map[ebiten.TouchID]bool, len(s.ids))
	for _, id := range s.ids {
		seen[id] = true
		x, y := ebiten.TouchPosition(id)
		fx, fy := float64(x), float64(y)

		if prev, ok := s.prev[id]; ok {
			// Keep the target classified at touch-start for the whole
			// lifetime of the touch.
			cur := Touch{ID: int64(id), X: fx, Y: fy, Target: prev.Target}
			if fx != prev.X || fy != prev.Y {
				s.moved = append(s.moved, cur)
			}
			s.active = append(s.active, cur)
			s.prev[id] = cur
		} else {
			t := Touch{ID: int64(id), X: fx, Y: fy, Target: s.classify(fx, fy)}
			s.started = append(s.started, t)
			s.active = append(s.active, t)
			s.prev[id] = t
		}
	}

	for id, t := range s.prev {
		if !seen[id] {
			s.ended = append(s.ended, t)
			delete(s.prev, id)
		}
	}

	if len(s.started) > 0 {
		s.device.Enqueue(TouchEvent{
			Kind:    EventTouchStart,
			Changed: append([]Touch(nil), s.started...),
			Active:  append([]Touch(nil), s.active...),
		})
	}
	if len(s.moved) > 0 {
		s.device.Enqueue(TouchEvent{
			Kind:   EventTouchMove,
			Active: append([]Touch(nil), s.active...),
		})
	}
	if len(s.ended) > 0 {
		s.device.Enqueue(TouchEvent{
			Kind:    EventTouchEnd,
			Changed: append([]Touch(nil), s.ended...),
		})
	}
}
