package frontmap

import "math"

// GeoToTile converts a geodetic coordinate to fractional tile coordinates at
// the given zoom level using the standard Web Mercator tile formulas.
func GeoToTile(g GeoPoint, zoom int) TilePoint {
	n := math.Exp2(float64(zoom))
	latRad := g.Lat * math.Pi / 180
	return TilePoint{
		X: (g.Lng + 180) / 360 * n,
		Y: (1 - math.Log(math.Tan(math.Pi/4+latRad/2))/math.Pi) / 2 * n,
	}
}

// TileToGeo is the algebraic inverse of GeoToTile.
func TileToGeo(t TilePoint, zoom int) GeoPoint {
	n := math.Exp2(float64(zoom))
	latRad := math.Atan(math.Sinh(math.Pi * (1 - 2*t.Y/n)))
	return GeoPoint{
		Lng: t.X/n*360 - 180,
		Lat: latRad * 180 / math.Pi,
	}
}

// calcScale returns the world-plane scale in pixels per degree of longitude
// for a zoom level: TileSize * 2^zoom spans the full 360 degrees.
func calcScale(zoom int) float64 {
	return TileSize * math.Exp2(float64(zoom)) / 360
}

// Viewport is the explicit view state: the geodetic coordinate at the screen
// center, the tile zoom level, the screen size in pixels, and the derived
// pixels-per-degree scale used by the affine world-plane path. It is a value
// type; interaction steps take a Viewport and return a new one, and the
// scene applies the result.
//
// Scale is always recomputed from Zoom. Mutate Zoom only through WithZoom or
// ZoomAt so the two cannot drift apart.
type Viewport struct {
	Center GeoPoint
	Zoom   int
	Width  float64
	Height float64
	Scale  float64
}

// NewViewport creates a viewport centered on the given coordinate. Zoom is
// clamped to the supported range.
func NewViewport(center GeoPoint, zoom int, width, height float64) Viewport {
	zoom = clampZoom(zoom)
	return Viewport{
		Center: center,
		Zoom:   zoom,
		Width:  width,
		Height: height,
		Scale:  calcScale(zoom),
	}
}

// WithZoom returns the viewport at the clamped zoom level, scale recomputed.
func (v Viewport) WithZoom(zoom int) Viewport {
	v.Zoom = clampZoom(zoom)
	v.Scale = calcScale(v.Zoom)
	return v
}

// Resize returns the viewport with a new screen size.
func (v Viewport) Resize(width, height float64) Viewport {
	v.Width = width
	v.Height = height
	return v
}

// GeoToScreen projects a geodetic coordinate to screen pixels through tile
// space. Screen Y grows downward while latitude grows upward; the tile
// formulas carry the inversion.
func (v Viewport) GeoToScreen(g GeoPoint) ScreenPoint {
	t := GeoToTile(g, v.Zoom)
	c := GeoToTile(v.Center, v.Zoom)
	return ScreenPoint{
		X: v.Width/2 + (t.X-c.X)*TileSize,
		Y: v.Height/2 + (t.Y-c.Y)*TileSize,
	}
}

// ScreenToGeo converts a screen pixel position to a geodetic coordinate.
func (v Viewport) ScreenToGeo(s ScreenPoint) GeoPoint {
	c := GeoToTile(v.Center, v.Zoom)
	t := TilePoint{
		X: c.X + (s.X-v.Width/2)/TileSize,
		Y: c.Y + (s.Y-v.Height/2)/TileSize,
	}
	return TileToGeo(t, v.Zoom)
}

// WorldToScreen maps the local world plane to screen pixels: longitude
// degrees linearly scaled, Y inverted. This affine path carries no geodesy
// and is used for size math and non-geo object geometry. It shares Center
// and Scale with the geodetic path so pan and zoom keep both consistent.
func (v Viewport) WorldToScreen(x, y float64) ScreenPoint {
	return ScreenPoint{
		X: (x-v.Center.Lng)*v.Scale + v.Width/2,
		Y: (v.Center.Lat-y)*v.Scale + v.Height/2,
	}
}

// ScreenToWorld is the inverse of WorldToScreen.
func (v Viewport) ScreenToWorld(s ScreenPoint) (x, y float64) {
	x = (s.X-v.Width/2)/v.Scale + v.Center.Lng
	y = v.Center.Lat - (s.Y-v.Height/2)/v.Scale
	return x, y
}

// WorldSizeToScreen converts a world-plane extent to pixels.
func (v Viewport) WorldSizeToScreen(w, h float64) (pw, ph float64) {
	return w * v.Scale, h * v.Scale
}

// ScreenDeltaToWorld converts a pixel delta to a world-plane delta,
// inverting the Y axis.
func (v Viewport) ScreenDeltaToWorld(d ScreenPoint) (dx, dy float64) {
	return d.X / v.Scale, -d.Y / v.Scale
}

// Pan shifts the viewport center by the inverse of a screen-pixel delta,
// going through tile space so vertical panning stays Mercator-correct at
// every latitude. It returns the new viewport and the geodetic delta the
// center moved by, which callers use to keep selected objects tracking the
// view.
func (v Viewport) Pan(delta ScreenPoint) (Viewport, GeoPoint) {
	c := GeoToTile(v.Center, v.Zoom)
	moved := TileToGeo(TilePoint{
		X: c.X - delta.X/TileSize,
		Y: c.Y - delta.Y/TileSize,
	}, v.Zoom)
	geoDelta := moved.Sub(v.Center)
	v.Center = moved
	return v, geoDelta
}

// ZoomAt changes zoom by steps (clamped) while keeping the geodetic
// coordinate under the cursor pixel invariant. A no-op at the clamp
// boundary.
func (v Viewport) ZoomAt(steps int, cursor ScreenPoint) Viewport {
	newZoom := clampZoom(v.Zoom + steps)
	if newZoom == v.Zoom {
		return v
	}
	anchor := v.ScreenToGeo(cursor)
	v = v.WithZoom(newZoom)
	after := v.ScreenToGeo(cursor)
	v.Center = v.Center.Add(anchor.Sub(after))
	return v
}
