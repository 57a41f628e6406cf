package frontmap

// Pointer-driven interaction state machine. One pointer stream drives
// click-select, drag, pan, rectangle select, control-point drag, and
// pending-object placement. Every handler is plain state mutation: invalid
// or out-of-order events degrade to no-ops, never errors, so a malformed
// stream can't wedge future input handling.

// State reports what the pointer stream is currently doing. Derived, not
// stored: the transient flags are the source of truth.
func (s *Scene) State() InteractionState {
	switch {
	case s.selectRect != nil:
		return StateRectSelecting
	case s.panning:
		return StatePanning
	case s.pointerDown && s.dragArmed:
		return StateDraggingSelection
	case s.pending != nil:
		return StatePlacingPending
	default:
		return StateIdle
	}
}

// PointerDown feeds a button-press event into the state machine.
func (s *Scene) PointerDown(at ScreenPoint, button MouseButton) {
	s.pointerDown = true
	s.downPos = at
	s.lastPos = at
	s.prevPos = at

	if button == MouseButtonRight {
		geo := s.viewport.ScreenToGeo(at)
		s.selection = nil
		s.selectRect = &GeoRect{Start: geo, End: geo}
		return
	}

	// Press over an already-selected object arms a drag. For line kinds
	// remember the grabbed control point; whether the drag moves the
	// point or the whole object is decided per move sample. A press
	// elsewhere leaves the selection alone: deselection happens on the
	// click (release), so a pan can still carry the selection along.
	for _, o := range s.selection {
		if o.HitTest(s.viewport, at) {
			s.dragArmed = true
			if line, ok := AsLine(o); ok {
				s.dragHandle = line.NearestHandle(s.viewport, at)
			}
			return
		}
	}
}

// PointerMove feeds a motion event into the state machine.
func (s *Scene) PointerMove(at ScreenPoint) {
	geo := s.viewport.ScreenToGeo(at)
	prevGeo := s.viewport.ScreenToGeo(s.prevPos)
	geoDelta := geo.Sub(prevGeo)

	if !s.pointerDown {
		if s.pending != nil {
			s.pending.SetPosition(geo)
			b := s.pending.Base()
			b.DayStart = s.day
			b.DayEnd = s.day
		}
		s.lastPos = at
		return
	}

	// Active selection rectangle: track the far corner and re-test
	// containment live.
	if s.selectRect != nil {
		s.selectRect.End = geo
		s.selection = s.selection[:0]
		for _, o := range s.objects {
			if o.Base().Deleted {
				continue
			}
			if o.InRect(*s.selectRect) {
				s.selection = append(s.selection, o)
			}
		}
		s.notifySelection()
		s.prevPos = at
		s.lastPos = at
		return
	}

	// Armed drag: translate the selection by the geodetic delta since
	// the previous sample.
	if len(s.selection) > 0 && s.dragArmed {
		s.translateSelection(geoDelta)
		s.prevPos = at
		s.lastPos = at
		return
	}

	// Not yet panning: a first hit under the pointer grabs that object
	// and arms a drag instead of starting a pan.
	if !s.panning {
		for _, o := range s.objects {
			if o.Base().Deleted {
				continue
			}
			if o.HitTest(s.viewport, at) {
				s.dragArmed = true
				s.dragHandle = nil
				s.selection = []Object{o}
				s.notifySelection()
				s.prevPos = at
				s.lastPos = at
				return
			}
		}
	}

	// Otherwise: pan. The center moves by the inverse screen delta
	// through tile space, and selected objects ride along so the
	// selection tracks the view.
	s.panning = true
	var viewDelta GeoPoint
	s.viewport, viewDelta = s.viewport.Pan(at.Sub(s.lastPos))
	// Whole-object translation here, regardless of any captured control
	// point: riding the view must never deform a line.
	for _, o := range s.selection {
		o.Translate(viewDelta)
	}
	s.tiles.RequestVisible(s.viewport)
	s.prevPos = at
	s.lastPos = at
}

// translateSelection applies a geodetic delta to every selected object.
// When exactly one line-shaped object is selected and a control point was
// captured, only that point moves, unless shift forces whole-object
// translation.
func (s *Scene) translateSelection(delta GeoPoint) {
	for _, o := range s.selection {
		if _, ok := AsLine(o); ok {
			if len(s.selection) > 1 || s.shiftHeld {
				o.Translate(delta)
			} else if s.dragHandle != nil {
				*s.dragHandle = s.dragHandle.Add(delta)
			}
			continue
		}
		o.Translate(delta)
	}
}

// PointerUp feeds a button-release event into the state machine. A release
// within the click threshold of the press point is a click: it commits a
// pending object, or replaces the selection with the topmost hit.
func (s *Scene) PointerUp(at ScreenPoint, button MouseButton) {
	s.pointerDown = false
	s.panning = false
	s.dragArmed = false
	s.dragHandle = nil

	if button == MouseButtonRight {
		s.selectRect = nil
		return
	}

	if abs(at.X-s.downPos.X) >= clickThreshold || abs(at.Y-s.downPos.Y) >= clickThreshold {
		return
	}

	if s.pending != nil {
		s.objects = append(s.objects, s.pending)
		s.pending = nil
		return
	}

	// Topmost hit wins: insertion order is back to front.
	for i := len(s.objects) - 1; i >= 0; i-- {
		o := s.objects[i]
		if o.Base().Deleted {
			continue
		}
		if o.HitTest(s.viewport, at) {
			s.selection = []Object{o}
			s.notifySelection()
			return
		}
	}

	s.selection = nil
	s.notifySelection()
}

// Wheel feeds a scroll event: one zoom step per notch, anchored so the
// geodetic point under the cursor stays put.
func (s *Scene) Wheel(deltaY float64, at ScreenPoint) {
	if deltaY == 0 {
		return
	}
	step := 1
	if deltaY > 0 {
		step = -1
	}
	before := s.viewport.Zoom
	s.viewport = s.viewport.ZoomAt(step, at)
	if s.viewport.Zoom != before {
		s.tiles.RequestVisible(s.viewport)
	}
}

// Key identifies the keyboard inputs the state machine consumes.
type Key uint8

const (
	KeyShift  Key = iota // modifier: force whole-object line translation
	KeyDelete            // soft-delete the selection
)

// KeyDown feeds a key press.
func (s *Scene) KeyDown(key Key) {
	switch key {
	case KeyShift:
		s.shiftHeld = true
	case KeyDelete:
		for _, o := range s.selection {
			o.Base().Deleted = true
		}
		s.selection = nil
		s.notifySelection()
	}
}

// KeyUp feeds a key release.
func (s *Scene) KeyUp(key Key) {
	if key == KeyShift {
		s.shiftHeld = false
	}
}
