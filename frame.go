package touchscreen

import "strconv"

// Output frame paths. Consumers read these semantic keys from whatever
// frame implementation the host uses.
const (
	PathIsTouching           = "device/touchscreen/isTouching"
	PathCursorPose           = "device/touchscreen/cursorPose"
	PathIsTouchingGrabbable  = "device/touchscreen/isTouchingGrabbable"
	PathCameraDelta          = "device/touchscreen/touchCameraDelta"
	PathPinchDelta           = "device/touchscreen/pinch/delta"
	PathPinchInitialDistance = "device/touchscreen/pinch/initialDistance"
	PathPinchCurrentDistance = "device/touchscreen/pinch/currentDistance"
)

// TapPath returns the output path for an n-fingered tap, e.g.
// "device/touchscreen/tap2".
func TapPath(n int) string {
	return "device/touchscreen/tap" + strconv.Itoa(n)
}

// Frame is the write-only sink the device publishes into once per tick.
// The device never reads values back.
type Frame interface {
	SetBool(path string, v bool)
	SetFloat(path string, v float64)
	SetVec2(path string, v Vec2)
	SetPose(path string, p Pose)
}

// MapFrame is a map-backed Frame for tests, tools, and simple consumers.
// The zero value is not usable; create with NewMapFrame.
type MapFrame struct {
	values map[string]any
}

// NewMapFrame returns an empty MapFrame.
func NewMapFrame() *MapFrame {
	return &MapFrame{values: make(map[string]any)}
}

// Clear removes all values. Call between ticks to model a fresh frame.
func (f *MapFrame) Clear() {
	clear(f.values)
}

// SetBool implements Frame.
func (f *MapFrame) SetBool(path string, v bool) { f.values[path] = v }

// SetFloat implements Frame.
func (f *MapFrame) SetFloat(path string, v float64) { f.values[path] = v }

// SetVec2 implements Frame.
func (f *MapFrame) SetVec2(path string, v Vec2) { f.values[path] = v }

// SetPose implements Frame.
func (f *MapFrame) SetPose(path string, p Pose) { f.values[path] = p }

// Bool returns the bool at path, or false if unset or a different type.
func (f *MapFrame) Bool(path string) bool {
	v, _ := f.values[path].(bool)
	return v
}

// Float returns the float at path, or 0 if unset or a different type.
func (f *MapFrame) Float(path string) float64 {
	v, _ := f.values[path].(float64)
	return v
}

// Vec2 returns the vector at path and whether it was set.
func (f *MapFrame) Vec2(path string) (Vec2, bool) {
	v, ok := f.values[path].(Vec2)
	return v, ok
}

// Pose returns the pose at path and whether it was set.
func (f *MapFrame) Pose(path string) (Pose, bool) {
	p, ok := f.values[path].(Pose)
	return p, ok
}

// Has reports whether any value was written at path.
func (f *MapFrame) Has(path string) bool {
	_, ok := f.values[path]
	return ok
}
