package touchscreen

import (
	"fmt"
	"os"
)

// warnf prints a recoverable protocol or capacity problem to stderr.
// Warned events are dropped; no state is mutated.
func warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[touchscreen] warning: "+format+"\n", args...)
}

// errorf prints a programmer error (a protocol violation that should be
// impossible with a well-behaved platform layer) to stderr. The offending
// operation is aborted; processing continues.
func errorf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[touchscreen] error: "+format+"\n", args...)
}

// tickStats holds per-tick metrics. Only populated when Device.debug is true.
type tickStats struct {
	events int
	jobs   int
}

// debugLog prints per-tick stats to stderr.
func (d *Device) debugLog(stats tickStats) {
	if !d.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[touchscreen] events: %d | jobs: %d | pinch: %.1f/%.1f (delta %.2f)\n",
		stats.events, stats.jobs,
		d.pinch.currentDistance, d.pinch.initialDistance, d.pinch.delta)
}
