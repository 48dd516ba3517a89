package touchscreen

import "time"

// Device resolves raw touch events into interaction jobs and publishes the
// resulting state to an output frame once per tick. All state is owned by
// the single logical thread that calls Enqueue and WriteFrame; nothing here
// is safe for concurrent use.
type Device struct {
	hit  HitTester
	proj PoseProjector

	tuning Tuning
	clock  func() time.Time

	screenW float64
	screenH float64

	queue    []TouchEvent
	jobs     assignmentTable
	pinch    pinchState
	buffered *bufferedTouch
	down     []int64 // touches currently on the screen, assigned or not

	pendingTap pendingTap
	tapFingers int // finger count scheduled for the next frame write, 0 = none

	debug bool
}

// NewDevice creates a Device with default tuning. The hit tester and pose
// projector are required collaborators; screenW and screenH are the screen
// dimensions in pixels used to normalize cursor coordinates (see
// SetScreenSize for resizes).
func NewDevice(hit HitTester, proj PoseProjector, screenW, screenH float64) *Device {
	return &Device{
		hit:     hit,
		proj:    proj,
		tuning:  DefaultTuning(),
		clock:   time.Now,
		screenW: screenW,
		screenH: screenH,
	}
}

// SetTuning replaces the device's timing and speed constants.
// Call before feeding events; changing the windows mid-gesture is allowed
// but only affects touches classified afterwards.
func (d *Device) SetTuning(t Tuning) {
	d.tuning = t
}

// SetScreenSize updates the screen dimensions used for cursor pose
// normalization. Call when the window or display surface resizes.
func (d *Device) SetScreenSize(w, h float64) {
	d.screenW = w
	d.screenH = h
}

// SetDebugMode enables per-tick stats logging to stderr.
func (d *Device) SetDebugMode(enabled bool) {
	d.debug = enabled
}

// ActiveJobs returns the number of touches currently holding a job.
func (d *Device) ActiveJobs() int {
	return d.jobs.count()
}

// JobFor returns the job held by a touch identity, or JobNone.
func (d *Device) JobFor(touchID int64) JobType {
	if a := d.jobs.findByTouch(touchID); a != nil {
		return a.job
	}
	return JobNone
}

// Reset drops all assignments, queued events, the buffered touch, and
// pending tap state. Pinch scalars are zeroed.
func (d *Device) Reset() {
	d.jobs.reset()
	d.queue = d.queue[:0]
	d.cancelBuffered()
	d.pinch = pinchState{}
	d.down = d.down[:0]
	d.pendingTap = pendingTap{}
	d.tapFingers = 0
}

// WriteFrame runs one tick: clears the per-frame deltas, flushes an expired
// buffered touch, drains all queued events in arrival order, and publishes
// the resulting state into f. Call exactly once per simulation tick.
func (d *Device) WriteFrame(f Frame) {
	now := d.clock()

	// Deltas report motion since the previous write, so clear carry-over
	// before new events are applied.
	d.pinch.delta = 0
	if cam := d.jobs.findByJob(JobCameraMove); cam != nil {
		cam.delta = Vec2{}
	}

	d.flushBuffered(now)

	drained := len(d.queue)
	d.drainEvents()

	if d.debug {
		d.debugLog(tickStats{events: drained, jobs: d.jobs.count()})
	}

	d.publish(f)
}

// drainEvents processes every queued event exactly once, then clears the
// queue. Move and end events targeting the buffered touch resolve it first
// and are then re-dispatched.
func (d *Device) drainEvents() {
	for _, ev := range d.queue {
		switch ev.Kind {
		case EventTouchStart:
			for _, t := range ev.Changed {
				d.bufferOrStart(t)
			}
		case EventTouchMove:
			for _, t := range ev.Active {
				d.resolveBufferedFor(t, false)
				d.touchMove(t)
			}
		case EventTouchEnd, EventTouchCancel:
			for _, t := range ev.Changed {
				d.resolveBufferedFor(t, true)
				d.touchEnd(t)
			}
		}
	}
	d.queue = d.queue[:0]
}

// publish serializes the current assignment state into the output frame.
func (d *Device) publish(f Frame) {
	cursor := d.jobs.findByJob(JobCursorMove)
	camera := d.jobs.findByJob(JobCameraMove)

	f.SetBool(PathIsTouching, cursor != nil || camera != nil)

	if cursor != nil {
		f.SetPose(PathCursorPose, cursor.cursorPose)
		hovering := d.hit.HitTest(cursor.clientX, cursor.clientY) == SurfaceInteractable
		f.SetBool(PathIsTouchingGrabbable, !cursor.isFirstFrame && (hovering || d.hit.IsGrabbing()))
		cursor.isFirstFrame = false
	}

	if camera != nil {
		f.SetVec2(PathCameraDelta, camera.delta)
	}

	f.SetFloat(PathPinchDelta, d.pinch.delta)
	f.SetFloat(PathPinchInitialDistance, d.pinch.initialDistance)
	f.SetFloat(PathPinchCurrentDistance, d.pinch.currentDistance)
	d.pinch.delta = 0

	if d.tapFingers > 0 {
		f.SetBool(TapPath(d.tapFingers), true)
		d.tapFingers = 0
	}
}

// projectPose converts screen coordinates to normalized device coordinates
// (x and y in [-1, 1], y up) and asks the projector for the cursor pose.
func (d *Device) projectPose(x, y float64) Pose {
	nx := (x/d.screenW)*2 - 1
	ny := -(y/d.screenH)*2 + 1
	return d.proj.PoseAt(nx, ny)
}
