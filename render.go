package frontmap

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Render pass. Composition order follows the scene model: basemap tiles,
// then object frames for the current day (recorded snapshots, or playback
// blends while a transition is active), then the pending-placement object,
// then selection overlays. A nil per-object frame means "invisible this
// frame" and is skipped silently.

var backgroundColor = color.NRGBA{R: 24, G: 26, B: 30, A: 255}

const bezierSegments = 32

// Draw renders one frame into the drawing surface. Safe to call from
// ebiten.Game.Draw.
func (s *Scene) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
		s.stats = frameStats{}
	}

	screen.Fill(backgroundColor)
	s.tiles.Draw(screen, s.viewport)

	for _, o := range s.objects {
		o.Base().Editing = false
	}
	for _, o := range s.selection {
		o.Base().Editing = true
	}

	if s.playback.Playing() {
		day, t := s.playback.Frame()
		for _, o := range s.objects {
			if o.Base().Deleted {
				continue
			}
			frame := LerpFrame(o, day, t)
			if frame == nil {
				continue
			}
			s.drawObject(screen, frame, false)
		}
	} else {
		for _, o := range s.objects {
			b := o.Base()
			if b.Deleted || s.day < b.DayStart || s.day > b.DayEnd {
				continue
			}
			st := stateAt(o, s.day)
			if st == nil {
				continue
			}
			s.drawObject(screen, st, b.Editing)
		}
	}

	if s.pending != nil {
		s.drawObject(screen, s.pending, false)
	}

	if s.selectRect != nil {
		s.drawSelectionRect(screen, *s.selectRect)
	}

	if s.debug {
		s.stats.renderTime = time.Since(t0)
		s.stats.tileCount = s.tiles.Len()
		s.debugLog()
	}
}

// drawObject dispatches on the closed kind set.
func (s *Scene) drawObject(dst *ebiten.Image, o Object, highlight bool) {
	s.stats.objectCount++
	switch obj := o.(type) {
	case *UnitMarker:
		s.drawMarker(dst, &obj.ObjectBase, highlight, true)
	case *BattleMarker:
		s.drawMarker(dst, &obj.ObjectBase, highlight, false)
	case *DefenseLine:
		s.drawLine(dst, &obj.ObjectBase, &obj.Line, highlight, obj.Spiked, obj.Scale)
	case *BattleLine:
		s.drawLine(dst, &obj.ObjectBase, &obj.Line, highlight, false, obj.Scale)
	}
}

// drawMarker renders a point-like annotation: a soft backing rectangle and
// a stroked outline, with crossed diagonals for unit markers.
func (s *Scene) drawMarker(dst *ebiten.Image, b *ObjectBase, highlight, crossed bool) {
	v := s.viewport
	p := v.GeoToScreen(b.Position)
	w, h := markerScreenSize(b, v)

	back := b.Color.Lerp(ColorWhite, 0.5).Lerp(ColorGreySoft, b.Gray).WithAlpha(b.Color.A)
	if highlight {
		back = ColorOrange.WithAlpha(b.Color.A)
	}
	vector.DrawFilledRect(dst,
		float32(p.X-w/2), float32(p.Y-h/2), float32(w), float32(h),
		back.NRGBA(), true)

	mixed := b.Color.Lerp(ColorGrey, b.Gray)
	lineW := float32(b.Scale * 2)
	vector.StrokeRect(dst,
		float32(p.X-w/2), float32(p.Y-h/2), float32(w), float32(h),
		lineW, mixed.NRGBA(), true)

	if crossed {
		x0, y0 := float32(p.X-w/2.2), float32(p.Y-h/2.2)
		x1, y1 := float32(p.X+w/2.2), float32(p.Y+h/2.2)
		vector.StrokeLine(dst, x0, y0, x1, y1, lineW, mixed.NRGBA(), true)
		vector.StrokeLine(dst, x0, y1, x1, y0, lineW, mixed.NRGBA(), true)
	}
}

// drawLine renders a line-shaped annotation: the Bezier curve, optional
// spikes on the direction-handle side, and control-point handles when
// selected.
func (s *Scene) drawLine(dst *ebiten.Image, b *ObjectBase, l *LineGeometry, highlight, spiked bool, scale float64) {
	v := s.viewport
	var sp [4]ScreenPoint
	for i, p := range l.Points {
		sp[i] = v.GeoToScreen(p)
	}

	mixed := b.Color.Lerp(ColorGrey, b.Gray)
	if highlight {
		mixed = ColorOrange.WithAlpha(b.Color.A)
	}
	lineW := float32(scale * 2)

	prev := sp[0]
	for i := 1; i <= bezierSegments; i++ {
		cur := bezierPoint(sp[0], sp[1], sp[2], sp[3], float64(i)/bezierSegments)
		vector.StrokeLine(dst,
			float32(prev.X), float32(prev.Y), float32(cur.X), float32(cur.Y),
			lineW, mixed.NRGBA(), true)
		prev = cur
	}

	if spiked {
		s.drawSpikes(dst, l, sp, mixed, scale)
	}

	if highlight {
		handle := color.NRGBA{R: 128, B: 128, A: 255}
		for _, p := range sp {
			vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), 5, handle, true)
		}
		dir := v.GeoToScreen(l.Direction)
		vector.DrawFilledCircle(dst, float32(dir.X), float32(dir.Y), 5,
			color.NRGBA{R: 255, B: 255, A: 255}, true)
	}
}

// drawSpikes draws evenly spaced tick marks along the curve, on the side
// of the chord the direction handle sits.
func (s *Scene) drawSpikes(dst *ebiten.Image, l *LineGeometry, sp [4]ScreenPoint, c Color, scale float64) {
	p1, p2, p3 := l.Points[0], l.Points[3], l.Direction
	cross := (p2.Lng-p1.Lng)*(p3.Lat-p1.Lat) - (p2.Lat-p1.Lat)*(p3.Lng-p1.Lng)

	spacing := 15 + scale*3
	length := 5 + scale*2
	curveLen := bezierLength(sp[0], sp[1], sp[2], sp[3], 100)
	spikes := max(1, int(curveLen/spacing))

	for i := 0; i <= spikes; i++ {
		t := float64(i) / float64(spikes)
		pt := bezierPoint(sp[0], sp[1], sp[2], sp[3], t)
		perp := bezierTangent(sp[0], sp[1], sp[2], sp[3], t).Perpendicular().Normalize()
		if cross <= 0 {
			perp = perp.Scale(-1)
		}
		tip := pt.Add(perp.Scale(length))
		vector.StrokeLine(dst,
			float32(pt.X), float32(pt.Y), float32(tip.X), float32(tip.Y),
			float32(scale*2), c.NRGBA(), true)
	}
}

// drawSelectionRect strokes the dashed rectangle overlay.
func (s *Scene) drawSelectionRect(dst *ebiten.Image, r GeoRect) {
	a := s.viewport.GeoToScreen(r.Start)
	b := s.viewport.GeoToScreen(r.End)
	red := color.NRGBA{R: 255, A: 255}
	c := ScreenPoint{X: b.X, Y: a.Y}
	d := ScreenPoint{X: a.X, Y: b.Y}
	strokeDashedLine(dst, a, c, red)
	strokeDashedLine(dst, c, b, red)
	strokeDashedLine(dst, b, d, red)
	strokeDashedLine(dst, d, a, red)
}

// strokeDashedLine draws 20px dashes with 20px gaps from a to b.
func strokeDashedLine(dst *ebiten.Image, a, b ScreenPoint, c color.NRGBA) {
	const dash, gap, width = 20.0, 20.0, 3.0
	total := a.Distance(b)
	if total == 0 {
		return
	}
	dir := b.Sub(a).Normalize()
	for off := 0.0; off < total; off += dash + gap {
		end := min(off+dash, total)
		p0 := a.Add(dir.Scale(off))
		p1 := a.Add(dir.Scale(end))
		vector.StrokeLine(dst,
			float32(p0.X), float32(p0.Y), float32(p1.X), float32(p1.Y),
			width, c, true)
	}
}
