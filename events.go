package touchscreen

// EventKind identifies a platform touch event.
type EventKind uint8

const (
	// EventTouchStart carries newly landed touches in Changed.
	EventTouchStart EventKind = iota
	// EventTouchMove carries every active touch in Active.
	EventTouchMove
	// EventTouchEnd carries lifted touches in Changed.
	EventTouchEnd
	// EventTouchCancel is processed like EventTouchEnd.
	EventTouchCancel
)

// TouchEvent is one raw platform event. Start, end, and cancel events
// enumerate the touches that changed; move events enumerate all touches
// active at the time of the event.
type TouchEvent struct {
	Kind    EventKind
	Changed []Touch
	Active  []Touch
}

// Enqueue appends a platform event to the device's queue. Events are
// drained in arrival order, exactly once, on the next WriteFrame.
func (d *Device) Enqueue(ev TouchEvent) {
	d.queue = append(d.queue, ev)
}

// InjectStart queues a synthetic start event for the given touches.
func (d *Device) InjectStart(touches ...Touch) {
	d.Enqueue(TouchEvent{Kind: EventTouchStart, Changed: touches, Active: touches})
}

// InjectMove queues a synthetic move event. Pass every currently active
// touch, not just the ones that moved, to match platform semantics.
func (d *Device) InjectMove(touches ...Touch) {
	d.Enqueue(TouchEvent{Kind: EventTouchMove, Active: touches})
}

// InjectEnd queues a synthetic end event for the given touches.
func (d *Device) InjectEnd(touches ...Touch) {
	d.Enqueue(TouchEvent{Kind: EventTouchEnd, Changed: touches})
}

// InjectTap queues a start immediately followed by an end at the same
// position. Both events drain on the same tick, so the tap publishes on
// that tick's frame write.
func (d *Device) InjectTap(touch Touch) {
	d.InjectStart(touch)
	d.InjectEnd(touch)
}

// InjectDrag queues a start at (fromX, fromY), a series of interpolated
// move events, and an end at (toX, toY). All events drain on the same
// tick; the touch lifts before the frame write, so per-tick deltas are
// not observable this way. For multi-tick drags use a Script.
func (d *Device) InjectDrag(id int64, fromX, fromY, toX, toY float64, steps int) {
	if steps < 1 {
		steps = 1
	}
	d.InjectStart(Touch{ID: id, X: fromX, Y: fromY})
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		d.InjectMove(Touch{ID: id, X: fromX + (toX-fromX)*t, Y: fromY + (toY-fromY)*t})
	}
	d.InjectEnd(Touch{ID: id, X: toX, Y: toY})
}

// InjectPinch queues two start events in sequence. The first touch lands
// alone (and may be buffered); the second proves pinch intent, so after the
// next WriteFrame the pair holds the two pincher jobs.
func (d *Device) InjectPinch(a, b Touch) {
	d.InjectStart(a)
	d.Enqueue(TouchEvent{Kind: EventTouchStart, Changed: []Touch{b}, Active: []Touch{a, b}})
}
