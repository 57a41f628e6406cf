package frontmap

import "testing"

func lineGeom() LineGeometry {
	return newLineGeometry([4]GeoPoint{
		{Lng: 30, Lat: 50}, {Lng: 32, Lat: 52}, {Lng: 34, Lat: 52}, {Lng: 36, Lat: 50},
	})
}

func TestNewLineGeometryDirectionMidpoint(t *testing.T) {
	l := lineGeom()
	if !approxEqual(l.Direction.Lng, 33, 1e-12) || !approxEqual(l.Direction.Lat, 50, 1e-12) {
		t.Errorf("Direction = %v, want the endpoint midpoint", l.Direction)
	}
}

func TestLineTranslateMovesEveryHandle(t *testing.T) {
	l := lineGeom()
	l.translate(GeoPoint{Lng: 1, Lat: -2})
	if l.Points[0].Lng != 31 || l.Points[3].Lat != 48 {
		t.Errorf("points = %v", l.Points)
	}
	if l.Direction.Lng != 34 || l.Direction.Lat != 48 {
		t.Errorf("Direction = %v", l.Direction)
	}
}

func TestNearestHandleAliasesGeometry(t *testing.T) {
	v := NewViewport(GeoPoint{Lng: 33, Lat: 51}, 4, 800, 600)
	l := lineGeom()

	at := v.GeoToScreen(l.Points[2])
	h := l.NearestHandle(v, at)
	if h != &l.Points[2] {
		t.Fatal("wrong or missing handle")
	}
	// Writing through the pointer mutates the live geometry.
	*h = h.Add(GeoPoint{Lng: 0.5})
	if !approxEqual(l.Points[2].Lng, 34.5, 1e-12) {
		t.Error("mutation through the handle pointer was lost")
	}
}

func TestNearestHandleDirection(t *testing.T) {
	v := NewViewport(GeoPoint{Lng: 33, Lat: 51}, 4, 800, 600)
	l := lineGeom()
	at := v.GeoToScreen(l.Direction)
	if h := l.NearestHandle(v, at); h != &l.Direction {
		t.Error("direction handle not hit at its own position")
	}
}

func TestNearestHandleMiss(t *testing.T) {
	v := NewViewport(GeoPoint{Lng: 33, Lat: 51}, 4, 800, 600)
	l := lineGeom()
	if h := l.NearestHandle(v, ScreenPoint{X: 10, Y: 10}); h != nil {
		t.Errorf("handle hit far from the line: %v", h)
	}
}

func TestLineInRectNeedsBothEndpoints(t *testing.T) {
	l := lineGeom()
	both := GeoRect{Start: GeoPoint{Lng: 29, Lat: 49}, End: GeoPoint{Lng: 37, Lat: 53}}
	if !l.inRect(both) {
		t.Error("rect covering both endpoints missed")
	}
	one := GeoRect{Start: GeoPoint{Lng: 29, Lat: 49}, End: GeoPoint{Lng: 33, Lat: 53}}
	if l.inRect(one) {
		t.Error("rect covering one endpoint matched")
	}
}

func TestLineSetPositionReanchors(t *testing.T) {
	l := lineGeom()
	l.setPosition(GeoPoint{Lng: 10, Lat: 20})
	for i, p := range l.Points {
		off := float64(i + 1)
		if p.Lng != 10+off || p.Lat != 20+off {
			t.Errorf("Points[%d] = %v", i, p)
		}
	}
	want := l.Points[0].Lerp(l.Points[3], 0.5)
	if l.Direction != want {
		t.Errorf("Direction = %v, want %v", l.Direction, want)
	}
}

func TestBezierPointEndpointsAndMidpoint(t *testing.T) {
	p1 := ScreenPoint{X: 0, Y: 0}
	p2 := ScreenPoint{X: 0, Y: 100}
	p3 := ScreenPoint{X: 100, Y: 100}
	p4 := ScreenPoint{X: 100, Y: 0}

	if got := bezierPoint(p1, p2, p3, p4, 0); got != p1 {
		t.Errorf("t=0: %v", got)
	}
	if got := bezierPoint(p1, p2, p3, p4, 1); got != p4 {
		t.Errorf("t=1: %v", got)
	}
	mid := bezierPoint(p1, p2, p3, p4, 0.5)
	if !approxEqual(mid.X, 50, 1e-9) || !approxEqual(mid.Y, 75, 1e-9) {
		t.Errorf("t=0.5: %v, want (50, 75)", mid)
	}
}

func TestBezierTangentDirection(t *testing.T) {
	p1 := ScreenPoint{X: 0, Y: 0}
	p2 := ScreenPoint{X: 0, Y: 100}
	p3 := ScreenPoint{X: 100, Y: 100}
	p4 := ScreenPoint{X: 100, Y: 0}

	start := bezierTangent(p1, p2, p3, p4, 0)
	if start.X != 0 || start.Y <= 0 {
		t.Errorf("start tangent %v, want straight toward p2", start)
	}
	end := bezierTangent(p1, p2, p3, p4, 1)
	if end.X != 0 || end.Y >= 0 {
		t.Errorf("end tangent %v, want straight from p3", end)
	}
}

func TestBezierLengthStraightLine(t *testing.T) {
	// Control points on a straight segment: arc length equals the chord.
	p1 := ScreenPoint{X: 0, Y: 0}
	p2 := ScreenPoint{X: 10, Y: 0}
	p3 := ScreenPoint{X: 20, Y: 0}
	p4 := ScreenPoint{X: 30, Y: 0}
	if got := bezierLength(p1, p2, p3, p4, 100); !approxEqual(got, 30, 1e-9) {
		t.Errorf("length = %f, want 30", got)
	}
}
