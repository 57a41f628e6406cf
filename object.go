package frontmap

import "github.com/google/uuid"

// Object is the closed variant over annotation kinds. Implementations live
// in this package only; the unexported marker method seals the set, so a
// type switch over the four kinds is exhaustive.
type Object interface {
	// Kind identifies the concrete variant.
	Kind() ObjectKind
	// Base returns the common attribute block.
	Base() *ObjectBase
	// SetPosition places the object so its anchor sits at p. Used while a
	// pending-placement object follows the pointer.
	SetPosition(p GeoPoint)
	// Translate moves the whole object by a geodetic delta.
	Translate(delta GeoPoint)
	// HitTest reports whether a screen point falls on the object's hit
	// region under the given viewport.
	HitTest(v Viewport, at ScreenPoint) bool
	// InRect reports whether the object's anchor geometry lies inside a
	// geodetic selection rectangle.
	InRect(r GeoRect) bool
	// Clone returns a deep copy of the object's current value with an
	// empty timeline. Clones serve as frozen keyframes.
	Clone() Object
	// lerpWith returns a new transient object blended between the
	// receiver and next by t. Returns nil when next is a different kind.
	lerpWith(next Object, t float64) Object

	sealedObject()
}

// ObjectBase holds the attributes every annotation kind shares.
type ObjectBase struct {
	ID       uuid.UUID
	Name     string
	Position GeoPoint
	Scale    float64
	Color    Color
	// Gray desaturates the object toward the grey palette: 0 = full
	// color, 1 = fully greyed.
	Gray float64
	// Deleted is the soft-delete flag. Deleted objects keep their slot in
	// the scene's object list so day indices stay valid; render,
	// hit-testing, and day advancement all skip them.
	Deleted bool
	// Editing marks the object as selected. Transient: recomputed from
	// the selection set on every render pass.
	Editing bool

	// Day range of existence, inclusive on both ends.
	DayStart, DayEnd int
	// History is the per-day keyframe log. The live day's state is the
	// object itself; History holds only frozen days.
	History Timeline
}

func newObjectBase(name string, pos GeoPoint, scale float64, c Color) ObjectBase {
	return ObjectBase{
		ID:       uuid.New(),
		Name:     name,
		Position: pos,
		Scale:    scale,
		Color:    c,
	}
}

// cloneBase copies the value fields for a keyframe snapshot. The history
// log and transient flags stay behind.
func (b *ObjectBase) cloneBase() ObjectBase {
	c := *b
	c.History = Timeline{}
	c.Editing = false
	return c
}

// lerpBase writes the blend of two snapshots' common fields into b.
func (b *ObjectBase) lerpBase(from, to *ObjectBase, t float64) {
	b.Position = from.Position.Lerp(to.Position, t)
	b.Scale = from.Scale + (to.Scale-from.Scale)*t
	b.Color = from.Color.Lerp(to.Color, t)
	b.Gray = from.Gray + (to.Gray-from.Gray)*t
}

// --- Point-like kinds ---

// markerScreenSize returns the pixel extent of a marker's hit and draw
// rectangle: proportional to the object scale with a floor tied to the
// viewport scale so markers stay grabbable when zoomed far out.
func markerScreenSize(b *ObjectBase, v Viewport) (w, h float64) {
	unit := b.Scale / v.Scale
	if floor := 0.03; unit < floor {
		unit = floor
	}
	return v.WorldSizeToScreen(unit*20, unit*10)
}

func markerHit(b *ObjectBase, v Viewport, at ScreenPoint) bool {
	p := v.GeoToScreen(b.Position)
	w, h := markerScreenSize(b, v)
	return at.X >= p.X-w/2 && at.X <= p.X+w/2 &&
		at.Y >= p.Y-h/2 && at.Y <= p.Y+h/2
}

// UnitMarker is a rectangular unit annotation anchored at a single
// geodetic position.
type UnitMarker struct {
	ObjectBase
}

// NewUnitMarker creates a unit marker at the given position.
func NewUnitMarker(name string, pos GeoPoint, scale float64, c Color) *UnitMarker {
	return &UnitMarker{ObjectBase: newObjectBase(name, pos, scale, c)}
}

func (m *UnitMarker) Kind() ObjectKind       { return KindUnitMarker }
func (m *UnitMarker) Base() *ObjectBase      { return &m.ObjectBase }
func (m *UnitMarker) SetPosition(p GeoPoint) { m.Position = p }
func (m *UnitMarker) Translate(d GeoPoint)   { m.Position = m.Position.Add(d) }

func (m *UnitMarker) HitTest(v Viewport, at ScreenPoint) bool {
	return markerHit(&m.ObjectBase, v, at)
}

func (m *UnitMarker) InRect(r GeoRect) bool { return r.Contains(m.Position) }

func (m *UnitMarker) Clone() Object {
	return &UnitMarker{ObjectBase: m.cloneBase()}
}

func (m *UnitMarker) lerpWith(next Object, t float64) Object {
	n, ok := next.(*UnitMarker)
	if !ok {
		return nil
	}
	out := &UnitMarker{ObjectBase: m.cloneBase()}
	out.lerpBase(&m.ObjectBase, &n.ObjectBase, t)
	return out
}

func (m *UnitMarker) sealedObject() {}

// BattleMarker is a point annotation marking an engagement. The decorative
// animated rendering lives outside this core; the marker carries the same
// interaction and timeline behavior as a unit marker.
type BattleMarker struct {
	ObjectBase
}

// NewBattleMarker creates a battle marker at the given position.
func NewBattleMarker(name string, pos GeoPoint, scale float64, c Color) *BattleMarker {
	return &BattleMarker{ObjectBase: newObjectBase(name, pos, scale, c)}
}

func (m *BattleMarker) Kind() ObjectKind       { return KindBattleMarker }
func (m *BattleMarker) Base() *ObjectBase      { return &m.ObjectBase }
func (m *BattleMarker) SetPosition(p GeoPoint) { m.Position = p }
func (m *BattleMarker) Translate(d GeoPoint)   { m.Position = m.Position.Add(d) }

func (m *BattleMarker) HitTest(v Viewport, at ScreenPoint) bool {
	return markerHit(&m.ObjectBase, v, at)
}

func (m *BattleMarker) InRect(r GeoRect) bool { return r.Contains(m.Position) }

func (m *BattleMarker) Clone() Object {
	return &BattleMarker{ObjectBase: m.cloneBase()}
}

func (m *BattleMarker) lerpWith(next Object, t float64) Object {
	n, ok := next.(*BattleMarker)
	if !ok {
		return nil
	}
	out := &BattleMarker{ObjectBase: m.cloneBase()}
	out.lerpBase(&m.ObjectBase, &n.ObjectBase, t)
	return out
}

func (m *BattleMarker) sealedObject() {}

// AsLine is the capability query for line-shaped kinds: it returns the
// control-polygon geometry for DefenseLine and BattleLine, and false for
// point-like kinds. Callers never probe for optional methods.
func AsLine(o Object) (*LineGeometry, bool) {
	switch l := o.(type) {
	case *DefenseLine:
		return &l.Line, true
	case *BattleLine:
		return &l.Line, true
	default:
		return nil, false
	}
}
