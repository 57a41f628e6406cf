package frontmap

import "testing"

func TestScriptReplaySelectAndDelete(t *testing.T) {
	s := testScene()
	at := ScreenPoint{X: 400, Y: 300}
	m := markerAtScreen(s, "m", at)
	s.SetObjects([]Object{m})

	sc, err := LoadScript([]byte(`{"steps": [
		{"action": "down", "x": 400, "y": 300},
		{"action": "up", "x": 400, "y": 300},
		{"action": "keydown", "key": "delete"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	if err := sc.Apply(s); err != nil {
		t.Fatal(err)
	}

	if !m.Deleted {
		t.Error("replay did not delete the clicked marker")
	}
}

func TestScriptReplayRectSelect(t *testing.T) {
	s := testScene()
	m := markerAtScreen(s, "m", ScreenPoint{X: 400, Y: 300})
	s.SetObjects([]Object{m})

	sc, err := LoadScript([]byte(`{"steps": [
		{"action": "down", "x": 350, "y": 250, "button": "right"},
		{"action": "move", "x": 450, "y": 350},
		{"action": "up", "x": 450, "y": 350, "button": "right"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	if err := sc.Apply(s); err != nil {
		t.Fatal(err)
	}

	if len(s.Selection()) != 1 {
		t.Errorf("selection = %v", s.Selection())
	}
}

func TestScriptReplayWheelAndAdvance(t *testing.T) {
	s := testScene()
	sc, err := LoadScript([]byte(`{"steps": [
		{"action": "wheel", "x": 400, "y": 300, "deltaY": -1},
		{"action": "advanceday"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	if err := sc.Apply(s); err != nil {
		t.Fatal(err)
	}
	if s.Viewport().Zoom != defaultZoom+1 {
		t.Errorf("Zoom = %d", s.Viewport().Zoom)
	}
	if s.Day() != 1 {
		t.Errorf("Day = %d", s.Day())
	}
}

func TestLoadScriptRejectsEmpty(t *testing.T) {
	if _, err := LoadScript([]byte(`{"steps": []}`)); err == nil {
		t.Error("empty script accepted")
	}
	if _, err := LoadScript([]byte(`not json`)); err == nil {
		t.Error("malformed JSON accepted")
	}
}

func TestScriptUnknownActionFails(t *testing.T) {
	sc, err := LoadScript([]byte(`{"steps": [{"action": "teleport"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if err := sc.Apply(testScene()); err == nil {
		t.Error("unknown action applied without error")
	}
}

func TestScriptUnknownKeyFails(t *testing.T) {
	sc, err := LoadScript([]byte(`{"steps": [{"action": "keydown", "key": "escape"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if err := sc.Apply(testScene()); err == nil {
		t.Error("unknown key applied without error")
	}
}
