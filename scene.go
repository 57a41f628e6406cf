package frontmap

// Scene is the stateful orchestrator: it owns the object list, the
// selection set, the day cursor, the viewport, the pointer interaction
// state machine, and the render pass. All mutation happens on the logical
// main thread; input callbacks and frame ticks never overlap, so there is
// no locking.
type Scene struct {
	// objects in insertion order; insertion order is z-order, back to
	// front. Soft-deleted objects keep their slot.
	objects []Object
	// selection references into objects, never owned copies.
	selection []Object
	// pending is a not-yet-committed object following the pointer.
	pending Object

	day      int
	viewport Viewport

	tiles    *TileCache
	timeMgr  *TimeManager
	playback *Playback

	onSelection func([]Object)

	// Interaction-transient state (see interaction.go).
	pointerDown bool
	panning     bool
	dragArmed   bool
	dragHandle  *GeoPoint
	downPos     ScreenPoint
	lastPos     ScreenPoint
	prevPos     ScreenPoint
	selectRect  *GeoRect
	shiftHeld   bool

	input inputState
	debug bool
	stats frameStats
}

// Default viewport: Moscow at zoom 4.
var defaultCenter = GeoPoint{Lng: 37.618423, Lat: 55.751244}

const defaultZoom = 4

// NewScene creates a scene with the given screen size in pixels.
func NewScene(width, height float64) *Scene {
	tm := NewTimeManager(UnitsDays)
	s := &Scene{
		viewport: NewViewport(defaultCenter, defaultZoom, width, height),
		timeMgr:  tm,
		playback: NewPlayback(tm, systemClock{}),
	}
	s.tiles = NewTileCache(nil)
	return s
}

// Viewport returns the current view state.
func (s *Scene) Viewport() Viewport { return s.viewport }

// SetViewport replaces the view state and refreshes the visible tile set.
func (s *Scene) SetViewport(v Viewport) {
	s.viewport = v
	s.tiles.RequestVisible(v)
}

// Resize updates the screen size.
func (s *Scene) Resize(width, height float64) {
	s.viewport = s.viewport.Resize(width, height)
	s.tiles.RequestVisible(s.viewport)
}

// Objects returns the scene's object list, including soft-deleted entries.
// The slice is the live backing store; callers must not reorder it.
func (s *Scene) Objects() []Object { return s.objects }

// SetObjects replaces the object list. Each object's day range is anchored
// at the current day cursor if unset.
func (s *Scene) SetObjects(objects []Object) {
	s.objects = objects
}

// Selection returns the currently selected objects.
func (s *Scene) Selection() []Object { return s.selection }

// SetSelectedObjectsListener registers a callback invoked with a copy of
// the selection after every selection change.
func (s *Scene) SetSelectedObjectsListener(fn func([]Object)) {
	s.onSelection = fn
}

// notifySelection recomputes editing flags and invokes the listener.
func (s *Scene) notifySelection() {
	for _, o := range s.objects {
		o.Base().Editing = false
	}
	for _, o := range s.selection {
		o.Base().Editing = true
	}
	if s.onSelection != nil {
		out := make([]Object, len(s.selection))
		copy(out, s.selection)
		s.onSelection(out)
	}
}

// AddObject begins pending placement: the object follows the pointer until
// the next primary-button click commits it into the object list with
// dayStart = dayEnd = the current day.
func (s *Scene) AddObject(o Object) {
	b := o.Base()
	b.DayStart = s.day
	b.DayEnd = s.day
	s.pending = o
}

// Pending returns the pending-placement object, or nil.
func (s *Scene) Pending() Object { return s.pending }

// Day returns the current day cursor.
func (s *Scene) Day() int { return s.day }

// MaxDay returns the highest recorded day.
func (s *Scene) MaxDay() int { return s.timeMgr.RangeLen }

// SetDay moves the day cursor, clamped to [0, MaxDay].
func (s *Scene) SetDay(day int) {
	if day < 0 {
		day = 0
	}
	if max := s.MaxDay(); day > max {
		day = max
	}
	s.day = day
}

// AdvanceDay increments the day counter and, for every non-deleted object,
// freezes the live state into the keyframe log and extends the object's day
// range to the new day. Edits made afterward affect only the new live day.
//
// Only valid with the cursor on the live day: advancing while scrubbed back
// would freeze keyframes with days past the objects' ranges. A violation is
// a programmer error surfaced only in debug builds.
func (s *Scene) AdvanceDay() {
	if debugEnabled && s.day != s.timeMgr.RangeLen {
		panicDebugf("scene: AdvanceDay at day %d, live day is %d", s.day, s.timeMgr.RangeLen)
	}
	s.timeMgr.RangeLen++
	s.timeMgr.AddDays(1)
	s.day++

	for _, o := range s.objects {
		b := o.Base()
		if b.Deleted {
			continue
		}
		b.History.append(Keyframe{Day: b.DayEnd, State: o.Clone()})
		b.DayEnd = s.day
	}
}

// TimeManager returns the scene's timeline date state.
func (s *Scene) TimeManager() *TimeManager { return s.timeMgr }

// SetTileFetcher installs the asynchronous tile source.
func (s *Scene) SetTileFetcher(f TileFetcher) {
	s.tiles.SetFetcher(f)
	s.tiles.RequestVisible(s.viewport)
}

// Tiles returns the basemap tile cache.
func (s *Scene) Tiles() *TileCache { return s.tiles }

// SetDebug toggles per-frame stats logging to stderr.
func (s *Scene) SetDebug(enabled bool) { s.debug = enabled }

// --- Playback delegation ---

// Play starts playback from day 0 through the maximum recorded day,
// chaining one transition per day.
func (s *Scene) Play() { s.playback.Play() }

// Pause suspends playback, remembering the pause instant.
func (s *Scene) Pause() { s.playback.Pause() }

// Resume continues a paused playback without jumping: the logical start
// time shifts by the paused duration.
func (s *Scene) Resume() { s.playback.Resume() }

// Stop cancels playback. Idempotent.
func (s *Scene) Stop() { s.playback.Stop() }

// Playback exposes the playback controller, mainly so hosts can adjust the
// per-day duration or inject a clock.
func (s *Scene) Playback() *Playback { return s.playback }

// Update advances the scene one logical frame: drains completed tile
// fetches, polls host input, and steps playback. Safe to call from
// ebiten.Game.Update.
func (s *Scene) Update() {
	s.tiles.Drain()
	s.pollInput()
	s.playback.Step()
}
