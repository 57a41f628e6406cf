package frontmap

// LineGeometry is the shared geometry of line-shaped kinds: a 4-point
// cubic Bezier control polygon plus a direction handle that picks which
// side decorations face.
type LineGeometry struct {
	// Points holds the Bezier control polygon: Points[0] and Points[3]
	// are the endpoints, Points[1] and Points[2] the inner controls.
	Points [4]GeoPoint
	// Direction is a fifth draggable handle. On placement it sits midway
	// between the endpoints.
	Direction GeoPoint
}

func newLineGeometry(points [4]GeoPoint) LineGeometry {
	return LineGeometry{
		Points:    points,
		Direction: points[0].Lerp(points[3], 0.5),
	}
}

// setPosition re-anchors the control polygon around p with the default
// placement spread, used while a pending line follows the pointer.
func (l *LineGeometry) setPosition(p GeoPoint) {
	for i := range l.Points {
		off := float64(i + 1)
		l.Points[i] = GeoPoint{p.Lng + off, p.Lat + off}
	}
	l.Direction = l.Points[0].Lerp(l.Points[3], 0.5)
}

// translate moves every control point and the direction handle.
func (l *LineGeometry) translate(d GeoPoint) {
	for i := range l.Points {
		l.Points[i] = l.Points[i].Add(d)
	}
	l.Direction = l.Direction.Add(d)
}

// handles returns pointers to all draggable points, direction handle last.
func (l *LineGeometry) handles() [5]*GeoPoint {
	return [5]*GeoPoint{&l.Points[0], &l.Points[1], &l.Points[2], &l.Points[3], &l.Direction}
}

// hitTest reports whether the screen point falls within the hit radius of
// any handle.
func (l *LineGeometry) hitTest(v Viewport, at ScreenPoint) bool {
	return l.NearestHandle(v, at) != nil
}

// NearestHandle returns a pointer to the first handle whose screen
// projection lies within the hit radius of the given point, or nil. The
// pointer aliases the live geometry so a control-point drag mutates the
// line directly.
func (l *LineGeometry) NearestHandle(v Viewport, at ScreenPoint) *GeoPoint {
	for _, h := range l.handles() {
		s := v.GeoToScreen(*h)
		if abs(s.X-at.X) < pointHitRadius && abs(s.Y-at.Y) < pointHitRadius {
			return h
		}
	}
	return nil
}

// inRect reports whether both endpoints lie inside the rectangle.
func (l *LineGeometry) inRect(r GeoRect) bool {
	return r.Contains(l.Points[0]) && r.Contains(l.Points[3])
}

// lerp blends two control polygons point-wise.
func (l *LineGeometry) lerp(from, to *LineGeometry, t float64) {
	for i := range l.Points {
		l.Points[i] = from.Points[i].Lerp(to.Points[i], t)
	}
	l.Direction = from.Direction.Lerp(to.Direction, t)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// bezierPoint evaluates the cubic Bezier through four screen points at t.
func bezierPoint(p1, p2, p3, p4 ScreenPoint, t float64) ScreenPoint {
	mt := 1 - t
	return ScreenPoint{
		X: mt*mt*mt*p1.X + 3*mt*mt*t*p2.X + 3*mt*t*t*p3.X + t*t*t*p4.X,
		Y: mt*mt*mt*p1.Y + 3*mt*mt*t*p2.Y + 3*mt*t*t*p3.Y + t*t*t*p4.Y,
	}
}

// bezierTangent evaluates the derivative of the cubic Bezier at t.
func bezierTangent(p1, p2, p3, p4 ScreenPoint, t float64) ScreenPoint {
	mt := 1 - t
	return ScreenPoint{
		X: 3*mt*mt*(p2.X-p1.X) + 6*mt*t*(p3.X-p2.X) + 3*t*t*(p4.X-p3.X),
		Y: 3*mt*mt*(p2.Y-p1.Y) + 6*mt*t*(p3.Y-p2.Y) + 3*t*t*(p4.Y-p3.Y),
	}
}

// bezierLength approximates the curve length by sampling line segments.
func bezierLength(p1, p2, p3, p4 ScreenPoint, steps int) float64 {
	length := 0.0
	prev := p1
	for i := 1; i <= steps; i++ {
		cur := bezierPoint(p1, p2, p3, p4, float64(i)/float64(steps))
		length += cur.Distance(prev)
		prev = cur
	}
	return length
}

// DefenseLine is a fortified line annotation. Its curve can render spikes
// on the side the direction handle indicates.
type DefenseLine struct {
	ObjectBase
	Line LineGeometry
	// Spiked toggles the tick marks along the curve.
	Spiked bool
}

// NewDefenseLine creates a defense line through the given control polygon.
func NewDefenseLine(name string, pos GeoPoint, scale float64, points [4]GeoPoint, c Color) *DefenseLine {
	return &DefenseLine{
		ObjectBase: newObjectBase(name, pos, scale, c),
		Line:       newLineGeometry(points),
	}
}

func (d *DefenseLine) Kind() ObjectKind  { return KindDefenseLine }
func (d *DefenseLine) Base() *ObjectBase { return &d.ObjectBase }

func (d *DefenseLine) SetPosition(p GeoPoint) {
	d.Position = p
	d.Line.setPosition(p)
}

func (d *DefenseLine) Translate(delta GeoPoint) {
	d.Position = d.Position.Add(delta)
	d.Line.translate(delta)
}

func (d *DefenseLine) HitTest(v Viewport, at ScreenPoint) bool {
	return d.Line.hitTest(v, at)
}

func (d *DefenseLine) InRect(r GeoRect) bool { return d.Line.inRect(r) }

func (d *DefenseLine) Clone() Object {
	return &DefenseLine{
		ObjectBase: d.cloneBase(),
		Line:       d.Line,
		Spiked:     d.Spiked,
	}
}

func (d *DefenseLine) lerpWith(next Object, t float64) Object {
	n, ok := next.(*DefenseLine)
	if !ok {
		return nil
	}
	out := &DefenseLine{ObjectBase: d.cloneBase(), Spiked: n.Spiked}
	out.lerpBase(&d.ObjectBase, &n.ObjectBase, t)
	out.Line.lerp(&d.Line, &n.Line, t)
	return out
}

func (d *DefenseLine) sealedObject() {}

// BattleLine is a contested front segment. GlowSide selects which side of
// the curve the host's overlay effects face; it is carried through blends
// unchanged rather than interpolated.
type BattleLine struct {
	ObjectBase
	Line     LineGeometry
	GlowSide float64
}

// NewBattleLine creates a battle line through the given control polygon.
func NewBattleLine(name string, pos GeoPoint, scale float64, points [4]GeoPoint, c Color) *BattleLine {
	return &BattleLine{
		ObjectBase: newObjectBase(name, pos, scale, c),
		Line:       newLineGeometry(points),
		GlowSide:   1,
	}
}

func (b *BattleLine) Kind() ObjectKind  { return KindBattleLine }
func (b *BattleLine) Base() *ObjectBase { return &b.ObjectBase }

func (b *BattleLine) SetPosition(p GeoPoint) {
	b.Position = p
	b.Line.setPosition(p)
}

func (b *BattleLine) Translate(delta GeoPoint) {
	b.Position = b.Position.Add(delta)
	b.Line.translate(delta)
}

func (b *BattleLine) HitTest(v Viewport, at ScreenPoint) bool {
	return b.Line.hitTest(v, at)
}

func (b *BattleLine) InRect(r GeoRect) bool { return b.Line.inRect(r) }

func (b *BattleLine) Clone() Object {
	return &BattleLine{
		ObjectBase: b.cloneBase(),
		Line:       b.Line,
		GlowSide:   b.GlowSide,
	}
}

func (b *BattleLine) lerpWith(next Object, t float64) Object {
	n, ok := next.(*BattleLine)
	if !ok {
		return nil
	}
	out := &BattleLine{ObjectBase: b.cloneBase(), GlowSide: n.GlowSide}
	out.lerpBase(&b.ObjectBase, &n.ObjectBase, t)
	out.Line.lerp(&b.Line, &n.Line, t)
	return out
}

func (b *BattleLine) sealedObject() {}
