package touchscreen

import "math"

// Vec2 is a 2D vector used for positions, offsets, and deltas throughout
// the API.
type Vec2 struct {
	X, Y float64
}

// Vec3 is a 3D vector used for cursor pose origins and directions.
type Vec3 struct {
	X, Y, Z float64
}

// Pose is a ray in world space: where the cursor points from and in which
// direction. Produced by a PoseProjector from normalized screen coordinates.
type Pose struct {
	Origin    Vec3
	Direction Vec3
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// TargetKind describes what a touch landed on, as reported by the platform
// layer. It is carried on the Touch itself so move events for unassigned
// touches can be attributed without a hit test.
type TargetKind uint8

const (
	// TargetWorld is a touch on the rendered world (the default).
	TargetWorld TargetKind = iota
	// TargetUI is a touch on a 2D UI surface.
	TargetUI
	// TargetControl is a touch on a virtual on-screen control (for example a
	// software joystick) that handles its own input.
	TargetControl
)

// Touch is one platform touch point. The ID is stable for the lifetime of
// the touch; X and Y are screen coordinates in pixels.
type Touch struct {
	ID     int64
	X, Y   float64
	Target TargetKind
}

// distanceTo returns the Euclidean distance between two touch positions.
func (t Touch) distanceTo(other Touch) float64 {
	dx := other.X - t.X
	dy := other.Y - t.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Surface classifies what lies under a screen coordinate.
type Surface uint8

const (
	// SurfaceNone means the coordinate hits neither UI nor anything
	// interactable.
	SurfaceNone Surface = iota
	// SurfaceUI means the coordinate hits a 2D UI surface.
	SurfaceUI
	// SurfaceInteractable means the coordinate hits an interactable object
	// in the world.
	SurfaceInteractable
)

// HitTester answers what is currently under a screen coordinate and whether
// a grab is in progress. Implemented by the host application's picking
// layer; the Device does not care how the answer is produced.
type HitTester interface {
	HitTest(x, y float64) Surface
	IsGrabbing() bool
}

// PoseProjector converts normalized device coordinates (x and y in [-1, 1],
// y up) into a world-space cursor pose using the host's camera.
type PoseProjector interface {
	PoseAt(nx, ny float64) Pose
}

// JobType is the exclusive interaction role assigned to one touch. At any
// instant each job is held by at most one touch and each touch holds at
// most one job.
type JobType uint8

const (
	// JobNone marks an unassigned slot. Never stored in the table.
	JobNone JobType = iota
	// JobCursorMove moves the 3D cursor.
	JobCursorMove
	// JobCameraMove pans the camera.
	JobCameraMove
	// JobFirstPincher is the first of the two pinch touches.
	JobFirstPincher
	// JobSecondPincher is the second of the two pinch touches.
	JobSecondPincher
)

// String returns a short name for logging.
func (j JobType) String() string {
	switch j {
	case JobCursorMove:
		return "cursor-move"
	case JobCameraMove:
		return "camera-move"
	case JobFirstPincher:
		return "first-pincher"
	case JobSecondPincher:
		return "second-pincher"
	default:
		return "none"
	}
}
