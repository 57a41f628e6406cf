package frontmap

import "testing"

func TestColorLerpRoundsRGB(t *testing.T) {
	got := ColorRed.Lerp(ColorBlue, 0.5)
	// 127.5 rounds up to 128 on both channels; alpha stays exact.
	if got.R != 128 || got.G != 0 || got.B != 128 {
		t.Errorf("Lerp = %+v", got)
	}
	if got.A != 1 {
		t.Errorf("A = %f, want 1", got.A)
	}
}

func TestColorLerpEndpoints(t *testing.T) {
	a := Color{R: 10, G: 20, B: 30, A: 0.25}
	b := Color{R: 200, G: 100, B: 50, A: 0.75}
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %+v, want %+v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %+v, want %+v", got, b)
	}
}

func TestColorLerpAlphaNotRounded(t *testing.T) {
	a := Color{R: 0, G: 0, B: 0, A: 0}
	b := Color{R: 0, G: 0, B: 0, A: 1}
	if got := a.Lerp(b, 0.3); !approxEqual(got.A, 0.3, 1e-12) {
		t.Errorf("A = %f, want 0.3", got.A)
	}
}

func TestColorWithAlpha(t *testing.T) {
	c := ColorOrange.WithAlpha(0.4)
	if c.A != 0.4 {
		t.Errorf("A = %f", c.A)
	}
	if c.R != ColorOrange.R || c.G != ColorOrange.G || c.B != ColorOrange.B {
		t.Error("WithAlpha changed RGB")
	}
	if ColorOrange.A != 1 {
		t.Error("WithAlpha mutated the receiver")
	}
}

func TestColorShiftHue(t *testing.T) {
	green := ColorRed.ShiftHue(120)
	if green.R != 0 || green.G != 255 || green.B != 0 {
		t.Errorf("red shifted 120 = %+v, want green", green)
	}
	blue := ColorRed.ShiftHue(-120)
	if blue.R != 0 || blue.G != 0 || blue.B != 255 {
		t.Errorf("red shifted -120 = %+v, want blue", blue)
	}
	same := ColorRed.ShiftHue(360)
	if same != ColorRed {
		t.Errorf("full rotation = %+v, want unchanged", same)
	}
}

func TestColorShiftHuePreservesAlpha(t *testing.T) {
	c := Color{R: 255, G: 0, B: 0, A: 0.6}.ShiftHue(90)
	if c.A != 0.6 {
		t.Errorf("A = %f, want 0.6", c.A)
	}
}

func TestColorNRGBAClamps(t *testing.T) {
	got := Color{R: 300, G: -5, B: 255, A: 1.5}.NRGBA()
	if got.R != 255 || got.G != 0 || got.B != 255 || got.A != 255 {
		t.Errorf("NRGBA = %+v", got)
	}
	got = Color{R: 128, G: 64, B: 32, A: 0.5}.NRGBA()
	if got.A != 127 {
		t.Errorf("A = %d, want 127", got.A)
	}
}
