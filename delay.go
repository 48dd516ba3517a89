package touchscreen

import "time"

// bufferedTouch holds the single pending first touch awaiting delayed
// classification, with the deadline at which it resolves on its own.
type bufferedTouch struct {
	touch    Touch
	deadline time.Time
}

// bufferOrStart is the entry point for platform start events. A lone first
// touch on empty world space is held back for the pinch delay so a second
// finger can still turn the pair into a pinch; everything else resolves
// immediately.
func (d *Device) bufferOrStart(touch Touch) {
	if d.buffered != nil {
		// A second touch proves pinch intent: the buffered touch becomes
		// the first pincher and the new touch resolves normally (it will
		// take the second pincher slot).
		held := d.buffered.touch
		d.cancelBuffered()
		d.startAsFirstPincher(held)
		d.touchStart(touch, false)
		return
	}

	if d.jobs.count() == 0 && d.shouldDelay(touch) {
		d.buffered = &bufferedTouch{
			touch:    touch,
			deadline: d.clock().Add(d.tuning.PinchDelay()),
		}
		return
	}

	d.touchStart(touch, false)
}

// shouldDelay decides whether a first touch needs the disambiguation delay.
// Touches on UI or on an interactable resolve immediately; only touches on
// empty world space are held back.
func (d *Device) shouldDelay(touch Touch) bool {
	return d.hit.HitTest(touch.X, touch.Y) == SurfaceNone
}

// flushBuffered resolves the buffered touch as an ordinary touch-start if
// its deadline has passed. Called once at the start of each tick, before
// the event queue is drained.
func (d *Device) flushBuffered(now time.Time) {
	if d.buffered == nil || now.Before(d.buffered.deadline) {
		return
	}
	held := d.buffered.touch
	d.cancelBuffered()
	d.touchStart(held, false)
}

// resolveBufferedFor commits the buffered touch early when a move or end
// event targets it. Reports whether the event's touch was the buffered one;
// the caller then re-dispatches the event. allowMove is set for end events
// so a quick tap can still move the cursor off an interactable.
func (d *Device) resolveBufferedFor(touch Touch, allowMove bool) bool {
	if d.buffered == nil || d.buffered.touch.ID != touch.ID {
		return false
	}
	held := d.buffered.touch
	d.cancelBuffered()
	d.touchStart(held, allowMove)
	return true
}

// cancelBuffered clears the buffer and its deadline. Idempotent; clearing
// before resolving guarantees a touch can never resolve twice.
func (d *Device) cancelBuffered() {
	d.buffered = nil
}
