package frontmap

import "github.com/hajimehoshi/ebiten/v2"

// Ebiten input bridge. Polls the host input devices once per Update and
// feeds edge-triggered events into the interaction state machine, which
// itself never touches ebiten.

type inputState struct {
	leftDown   bool
	rightDown  bool
	shiftDown  bool
	deleteDown bool
	cursor     ScreenPoint
	hasCursor  bool
}

// pollInput translates the current device state into pointer and key
// events. Called from Scene.Update.
func (s *Scene) pollInput() {
	x, y := ebiten.CursorPosition()
	pos := ScreenPoint{X: float64(x), Y: float64(y)}

	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)

	if left && !s.input.leftDown {
		s.PointerDown(pos, MouseButtonLeft)
	}
	if right && !s.input.rightDown {
		s.PointerDown(pos, MouseButtonRight)
	}

	if s.input.hasCursor && pos != s.input.cursor {
		s.PointerMove(pos)
	}

	if !left && s.input.leftDown {
		s.PointerUp(pos, MouseButtonLeft)
	}
	if !right && s.input.rightDown {
		s.PointerUp(pos, MouseButtonRight)
	}

	// Ebiten reports wheel-up as positive; the machine follows the
	// browser convention where negative deltaY zooms in.
	if _, wy := ebiten.Wheel(); wy != 0 {
		s.Wheel(-wy, pos)
	}

	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	if shift && !s.input.shiftDown {
		s.KeyDown(KeyShift)
	}
	if !shift && s.input.shiftDown {
		s.KeyUp(KeyShift)
	}

	del := ebiten.IsKeyPressed(ebiten.KeyDelete)
	if del && !s.input.deleteDown {
		s.KeyDown(KeyDelete)
	}

	s.input.leftDown = left
	s.input.rightDown = right
	s.input.shiftDown = shift
	s.input.deleteDown = del
	s.input.cursor = pos
	s.input.hasCursor = true
}
