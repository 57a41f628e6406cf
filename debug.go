package frontmap

import (
	"fmt"
	"os"
	"time"
)

// debugEnabled gates programmer-error assertions. Interaction and
// interpolation paths never rely on these for user-facing behavior.
var debugEnabled = false

// SetDebugChecks toggles package-wide invariant assertions (e.g. timeline
// ordering). Separate from per-scene stats logging.
func SetDebugChecks(enabled bool) { debugEnabled = enabled }

// panicDebugf panics with a descriptive message. Only reachable when debug
// checks are on.
func panicDebugf(format string, args ...any) {
	panic("frontmap debug: " + fmt.Sprintf(format, args...))
}

// frameStats holds per-frame render metrics. Populated only when
// Scene.debug is true.
type frameStats struct {
	renderTime  time.Duration
	objectCount int
	tileCount   int
}

// debugLog prints frame stats to stderr.
func (s *Scene) debugLog() {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[frontmap] render: %v | objects: %d | tiles cached: %d | day: %d | state: %d\n",
		s.stats.renderTime, s.stats.objectCount, s.stats.tileCount, s.day, s.State())
}
