// Package touchscreen resolves ambiguous multi-touch input into exclusive
// interaction jobs: moving a cursor, panning a camera, or pinching.
//
// Touches arrive and disappear in any order, so the core of the package is
// the assignment state machine: every active touch holds at most one job,
// every job is held by at most one touch, and jobs are promoted or demoted
// on the fly as fingers lift. A short buffering window disambiguates an
// incipient two-finger pinch from a one-finger tap or move. Taps are
// recognized by the number of simultaneous fingers involved.
//
// # Quick start
//
// Create a [Device] with the two collaborators it needs, a [HitTester]
// answering what lies under a screen coordinate and a [PoseProjector]
// turning normalized coordinates into a world-space cursor pose, then feed
// it events and write one frame per tick:
//
//	dev := touchscreen.NewDevice(hits, projector, 1280, 720)
//
//	// each tick:
//	source.Poll()          // or dev.Enqueue(...) / dev.InjectTap(...)
//	frame.Clear()
//	dev.WriteFrame(frame)
//
// The written frame carries the touching flag, cursor pose, camera pan
// delta, the three pinch scalars, and one-shot tap flags, keyed by the
// Path... constants.
//
// # Jobs
//
// Each touch is assigned one of four jobs on landing, by priority:
// [JobCursorMove] (touch on an interactable), [JobCameraMove] (anything
// else), or, once a camera or pincher touch exists, [JobSecondPincher],
// promoting the previous touch to [JobFirstPincher]. Fingers lifting
// reverse the promotions: a surviving pincher becomes the camera touch.
// Touches beyond the modeled roles are dropped with a warning.
//
// # Platform input
//
// [TouchSource] polls Ebitengine for real touches and synthesizes the
// start/move/end event stream. [Script] replays JSON gesture scripts for
// automated testing. Both feed the same queue that [Device.WriteFrame]
// drains exactly once per tick, so processing is deterministic and single
// threaded. The only timer is the pinch disambiguation delay, a deadline
// checked at the start of each tick.
//
// Camera consumers can wire a [CameraRig] to apply pan and pinch output to
// a [Camera] with gween-powered programmatic scrolling.
package touchscreen
