package frontmap

import "math"

// The four coordinate spaces are distinct types so that a pixel offset can
// never be passed where a geodetic delta is expected. Conversions live in
// projection.go; arithmetic stays within a space.

// GeoPoint is a geodetic coordinate: longitude and latitude in degrees.
// Latitude increases northward.
type GeoPoint struct {
	Lng, Lat float64
}

// Add returns g translated by the geodetic delta d.
func (g GeoPoint) Add(d GeoPoint) GeoPoint {
	return GeoPoint{g.Lng + d.Lng, g.Lat + d.Lat}
}

// Sub returns the geodetic delta from o to g.
func (g GeoPoint) Sub(o GeoPoint) GeoPoint {
	return GeoPoint{g.Lng - o.Lng, g.Lat - o.Lat}
}

// Scale returns g with both components multiplied by s.
func (g GeoPoint) Scale(s float64) GeoPoint {
	return GeoPoint{g.Lng * s, g.Lat * s}
}

// Lerp linearly interpolates from g to target by t.
func (g GeoPoint) Lerp(target GeoPoint, t float64) GeoPoint {
	return GeoPoint{
		g.Lng + (target.Lng-g.Lng)*t,
		g.Lat + (target.Lat-g.Lat)*t,
	}
}

// Distance returns the Euclidean distance in degree units. Only meaningful
// for small deltas where the plane approximation holds.
func (g GeoPoint) Distance(o GeoPoint) float64 {
	dx := g.Lng - o.Lng
	dy := g.Lat - o.Lat
	return math.Sqrt(dx*dx + dy*dy)
}

// TilePoint is a fractional position in tile space at some zoom level:
// integer parts index a tile, fractional parts a position within it.
type TilePoint struct {
	X, Y float64
}

// ScreenPoint is a pixel position. Origin at the top-left, Y increases
// downward.
type ScreenPoint struct {
	X, Y float64
}

// Add returns s translated by d.
func (s ScreenPoint) Add(d ScreenPoint) ScreenPoint {
	return ScreenPoint{s.X + d.X, s.Y + d.Y}
}

// Sub returns the pixel delta from o to s.
func (s ScreenPoint) Sub(o ScreenPoint) ScreenPoint {
	return ScreenPoint{s.X - o.X, s.Y - o.Y}
}

// Scale returns s with both components multiplied by f.
func (s ScreenPoint) Scale(f float64) ScreenPoint {
	return ScreenPoint{s.X * f, s.Y * f}
}

// Lerp linearly interpolates from s to target by t.
func (s ScreenPoint) Lerp(target ScreenPoint, t float64) ScreenPoint {
	return ScreenPoint{
		s.X + (target.X-s.X)*t,
		s.Y + (target.Y-s.Y)*t,
	}
}

// Distance returns the Euclidean pixel distance between s and o.
func (s ScreenPoint) Distance(o ScreenPoint) float64 {
	dx := s.X - o.X
	dy := s.Y - o.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Normalize returns s scaled to unit length, or the zero point if s is zero.
func (s ScreenPoint) Normalize() ScreenPoint {
	length := math.Sqrt(s.X*s.X + s.Y*s.Y)
	if length == 0 {
		return ScreenPoint{}
	}
	return ScreenPoint{s.X / length, s.Y / length}
}

// Perpendicular returns s rotated 90 degrees counterclockwise in screen
// space (which appears clockwise on screen because Y points down).
func (s ScreenPoint) Perpendicular() ScreenPoint {
	return ScreenPoint{-s.Y, s.X}
}

// GeoRect is a rectangle in geodetic space spanned by two corner points in
// any order. Used for rectangle selection.
type GeoRect struct {
	Start, End GeoPoint
}

// Contains reports whether p lies within the rectangle's axis-aligned
// bounds. Points on the edge are inside.
func (r GeoRect) Contains(p GeoPoint) bool {
	minLng := math.Min(r.Start.Lng, r.End.Lng)
	maxLng := math.Max(r.Start.Lng, r.End.Lng)
	minLat := math.Min(r.Start.Lat, r.End.Lat)
	maxLat := math.Max(r.Start.Lat, r.End.Lat)
	return p.Lng >= minLng && p.Lng <= maxLng &&
		p.Lat >= minLat && p.Lat <= maxLat
}
