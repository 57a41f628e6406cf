package frontmap

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in an interaction script.
type scriptStep struct {
	Action string  `json:"action"` // down, move, up, wheel, keydown, keyup, advanceday
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Button string  `json:"button,omitempty"` // left (default), right
	Key    string  `json:"key,omitempty"`    // shift, delete
	DeltaY float64 `json:"deltaY,omitempty"`
}

// Script is a replayable sequence of pointer and keyboard events. Scripts
// drive the interaction state machine deterministically in tests and make
// interaction bugs reproducible from a JSON transcript.
type Script struct {
	Steps []scriptStep `json:"steps"`
}

// LoadScript parses a JSON interaction script.
func LoadScript(data []byte) (*Script, error) {
	var sc Script
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse interaction script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse interaction script: no steps")
	}
	return &sc, nil
}

// Apply replays every step against the scene in order.
func (sc *Script) Apply(s *Scene) error {
	for i, step := range sc.Steps {
		pos := ScreenPoint{X: step.X, Y: step.Y}
		switch step.Action {
		case "down":
			s.PointerDown(pos, parseButton(step.Button))
		case "move":
			s.PointerMove(pos)
		case "up":
			s.PointerUp(pos, parseButton(step.Button))
		case "wheel":
			s.Wheel(step.DeltaY, pos)
		case "keydown", "keyup":
			key, err := parseKey(step.Key)
			if err != nil {
				return fmt.Errorf("step %d: %w", i, err)
			}
			if step.Action == "keydown" {
				s.KeyDown(key)
			} else {
				s.KeyUp(key)
			}
		case "advanceday":
			s.AdvanceDay()
		default:
			return fmt.Errorf("step %d: unknown action %q", i, step.Action)
		}
	}
	return nil
}

func parseButton(name string) MouseButton {
	if name == "right" {
		return MouseButtonRight
	}
	return MouseButtonLeft
}

func parseKey(name string) (Key, error) {
	switch name {
	case "shift":
		return KeyShift, nil
	case "delete":
		return KeyDelete, nil
	default:
		return 0, fmt.Errorf("unknown key %q", name)
	}
}
