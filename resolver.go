package touchscreen

import "time"

// pinchState tracks the scalar distance between the two pincher touches.
// delta accumulates intra-frame change and is zeroed at the start of each
// WriteFrame and again after being published.
type pinchState struct {
	initialDistance float64
	currentDistance float64
	delta           float64
}

// pendingTap tracks the high-water mark of simultaneous touches since the
// screen was last clear. When the last touch lifts within the tap window
// of startedAt, a tap of maxTouchCount fingers is scheduled.
type pendingTap struct {
	maxTouchCount int
	startedAt     time.Time
}

// touchStart resolves a job for a new touch. Job priority, first match wins:
// cursor move, camera move, second pincher. A touch that matches none is
// dropped with a warning. allowMoveToNonInteractable lets the cursor job win
// even when the touch does not land on an interactable (used when a buffered
// touch lifts as a tap).
func (d *Device) touchStart(touch Touch, allowMoveToNonInteractable bool) {
	if d.jobs.touchIsAssigned(touch.ID) {
		errorf("touch %d started but already holds a job", touch.ID)
		return
	}

	// Even a touch that ends up dropped counts toward the tap finger
	// count: taps are about fingers on the screen, not job slots.
	d.noteTouchStarted(touch.ID)

	switch {
	case !d.jobs.jobIsAssigned(JobFirstPincher) && !d.jobs.jobIsAssigned(JobCursorMove) &&
		(allowMoveToNonInteractable || d.canMoveCursor(touch)):
		a := d.jobs.assign(touch, JobCursorMove)
		a.cursorPose = d.projectPose(touch.X, touch.Y)
		// Suppress the grabbable signal for one frame so consumers see a
		// hover before a grab.
		a.isFirstFrame = true

	case !d.jobs.jobIsAssigned(JobFirstPincher) && !d.jobs.jobIsAssigned(JobCameraMove):
		d.jobs.assign(touch, JobCameraMove)

	case !d.jobs.jobIsAssigned(JobSecondPincher):
		first := d.jobs.findByJob(JobFirstPincher)
		if first == nil {
			// Promote the camera touch. One of the two must exist for the
			// earlier cases to have failed.
			first = d.jobs.findByJob(JobCameraMove)
			if first == nil {
				errorf("touch %d: second pincher with no first pincher or camera touch", touch.ID)
				return
			}
			first.job = JobFirstPincher
		}
		second := d.jobs.assign(touch, JobSecondPincher)
		dist := pincherDistance(first, second)
		d.pinch = pinchState{initialDistance: dist, currentDistance: dist}

	default:
		warnf("touch %d dropped: no job available", touch.ID)
	}
}

// canMoveCursor reports whether a touch qualifies for the cursor job on its
// own merits: it lands on an interactable or a grab is already in progress.
func (d *Device) canMoveCursor(touch Touch) bool {
	return d.hit.HitTest(touch.X, touch.Y) == SurfaceInteractable || d.hit.IsGrabbing()
}

// startAsFirstPincher commits a buffered touch directly to the first pincher
// job, bypassing the normal priority: a second touch has already proven
// pinch intent. Falls back to normal resolution if the job is taken.
func (d *Device) startAsFirstPincher(touch Touch) {
	if d.jobs.touchIsAssigned(touch.ID) {
		errorf("touch %d started but already holds a job", touch.ID)
		return
	}
	if d.jobs.jobIsAssigned(JobFirstPincher) {
		d.touchStart(touch, false)
		return
	}
	d.noteTouchStarted(touch.ID)
	d.jobs.assign(touch, JobFirstPincher)
}

// noteTouchStarted updates pending-tap bookkeeping when a platform touch
// lands: stamps the start time on the zero-to-nonzero transition and
// tracks the simultaneous-touch high-water mark. Counts touches dropped
// for lack of a job slot too.
func (d *Device) noteTouchStarted(touchID int64) {
	if d.touchIsDown(touchID) {
		return
	}
	if d.pendingTap.maxTouchCount == 0 {
		d.pendingTap.startedAt = d.clock()
	}
	d.down = append(d.down, touchID)
	if n := len(d.down); n > d.pendingTap.maxTouchCount {
		d.pendingTap.maxTouchCount = n
	}
}

// noteTouchEnded forgets a lifted touch. A no-op for identities that were
// never counted (an end with no matching start).
func (d *Device) noteTouchEnded(touchID int64) {
	for i, id := range d.down {
		if id == touchID {
			d.down = append(d.down[:i], d.down[i+1:]...)
			return
		}
	}
}

func (d *Device) touchIsDown(touchID int64) bool {
	for _, id := range d.down {
		if id == touchID {
			return true
		}
	}
	return false
}

// touchEnd releases a touch's job and reassigns the vacated slots. A lift
// with no assignment is a warning and a no-op; drains for buffered touches
// are handled before this is called.
func (d *Device) touchEnd(touch Touch) {
	d.noteTouchEnded(touch.ID)

	a := d.jobs.findByTouch(touch.ID)
	if a == nil {
		warnf("touch %d ended without a job", touch.ID)
		d.maybeEvaluateTap()
		return
	}

	switch a.job {
	case JobCursorMove, JobCameraMove:
		d.jobs.unassign(touch.ID, a.job)

	case JobFirstPincher:
		d.jobs.unassign(touch.ID, JobFirstPincher)
		d.pinch = pinchState{}
		if second := d.jobs.findByJob(JobSecondPincher); second != nil {
			if d.jobs.jobIsAssigned(JobCameraMove) {
				// A camera touch existed before the lift, so the survivor
				// stays a pincher. Coordinates carry over.
				second.job = JobFirstPincher
			} else {
				second.job = JobCameraMove
				second.delta = Vec2{}
			}
		}

	case JobSecondPincher:
		d.jobs.unassign(touch.ID, JobSecondPincher)
		d.pinch = pinchState{}
		if first := d.jobs.findByJob(JobFirstPincher); first != nil && !d.jobs.jobIsAssigned(JobCameraMove) {
			first.job = JobCameraMove
			first.delta = Vec2{}
		}
	}

	d.maybeEvaluateTap()
}

// maybeEvaluateTap fires tap evaluation once the screen is clear: no jobs
// held and no touches down. A dropped touch still resting on the screen
// defers the tap until it lifts.
func (d *Device) maybeEvaluateTap() {
	if d.jobs.count() == 0 && len(d.down) == 0 {
		d.evaluateTap()
	}
}

// evaluateTap runs when the last touch lifts: if the sequence peaked at one
// or more simultaneous touches and lifted within the tap window, schedule a
// tap of that finger count for the next frame write. Always resets the
// pending tap.
func (d *Device) evaluateTap() {
	elapsed := d.clock().Sub(d.pendingTap.startedAt)
	if d.pendingTap.maxTouchCount > 0 && elapsed <= d.tuning.TapWindow() {
		d.tapFingers = d.pendingTap.maxTouchCount
	}
	d.pendingTap = pendingTap{}
}

// touchMove applies a movement to the touch's job. Unassigned touches on
// virtual on-screen controls are expected and ignored; any other unassigned
// touch gets a warning.
func (d *Device) touchMove(touch Touch) {
	a := d.jobs.findByTouch(touch.ID)
	if a == nil {
		if touch.Target == TargetControl {
			return
		}
		warnf("touch %d moved without a job", touch.ID)
		return
	}

	switch a.job {
	case JobCursorMove:
		a.cursorPose = d.projectPose(touch.X, touch.Y)
		a.clientX = touch.X
		a.clientY = touch.Y

	case JobCameraMove:
		a.delta.X += touch.X - a.clientX
		a.delta.Y += touch.Y - a.clientY
		a.clientX = touch.X
		a.clientY = touch.Y

	case JobFirstPincher, JobSecondPincher:
		a.clientX = touch.X
		a.clientY = touch.Y
		first := d.jobs.findByJob(JobFirstPincher)
		second := d.jobs.findByJob(JobSecondPincher)
		if first != nil && second != nil {
			dist := pincherDistance(first, second)
			d.pinch.delta += dist - d.pinch.currentDistance
			d.pinch.currentDistance = dist
		}
	}
}

// pincherDistance returns the Euclidean distance between two pincher
// assignments' last-seen coordinates.
func pincherDistance(first, second *assignment) float64 {
	a := Touch{X: first.clientX, Y: first.clientY}
	b := Touch{X: second.clientX, Y: second.clientY}
	return a.distanceTo(b)
}
