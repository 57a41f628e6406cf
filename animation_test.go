package frontmap

import (
	"testing"
	"time"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestPlayback(rangeLen int) (*Playback, *fakeClock) {
	tm := NewTimeManager(UnitsDays)
	tm.RangeLen = rangeLen
	clock := newFakeClock()
	return NewPlayback(tm, clock), clock
}

func TestPlaybackProgress(t *testing.T) {
	p, clock := newTestPlayback(2)
	p.Play()
	if !p.Playing() {
		t.Fatal("not playing after Play")
	}

	day, tt, active := p.Step()
	if day != 0 || tt != 0 || !active {
		t.Fatalf("initial step = (%d, %f, %v)", day, tt, active)
	}

	clock.advance(500 * time.Millisecond)
	day, tt, _ = p.Step()
	if day != 0 || !approxEqual(tt, 0.5, 1e-3) {
		t.Errorf("halfway step = (%d, %f), want (0, 0.5)", day, tt)
	}
}

func TestPlaybackChainsDays(t *testing.T) {
	p, clock := newTestPlayback(2)
	p.Play()

	clock.advance(1100 * time.Millisecond)
	day, tt, active := p.Step()
	if day != 1 || tt != 0 || !active {
		t.Fatalf("after day 0 finished: (%d, %f, %v), want (1, 0, true)", day, tt, active)
	}

	clock.advance(1100 * time.Millisecond)
	day, _, _ = p.Step()
	if day != 2 {
		t.Fatalf("after day 1 finished: day = %d, want 2", day)
	}

	clock.advance(1100 * time.Millisecond)
	_, _, _ = p.Step()
	if p.Playing() {
		t.Error("still playing after the last day finished")
	}
}

func TestPlaybackOnCompleteFiresOnce(t *testing.T) {
	p, clock := newTestPlayback(0)
	fired := 0
	p.OnComplete = func() { fired++ }
	p.Play()

	clock.advance(1100 * time.Millisecond)
	p.Step()
	if fired != 1 {
		t.Fatalf("OnComplete fired %d times, want 1", fired)
	}
	clock.advance(time.Second)
	p.Step()
	if fired != 1 {
		t.Errorf("OnComplete fired again after playback stopped")
	}
}

func TestPlaybackPauseResume(t *testing.T) {
	p, clock := newTestPlayback(1)
	p.Play()

	clock.advance(300 * time.Millisecond)
	p.Step()
	p.Pause()
	if !p.Paused() || !p.Playing() {
		t.Fatal("pause flags wrong")
	}

	// Time passing while paused must not advance the transition.
	clock.advance(5 * time.Second)
	day, tt, active := p.Step()
	if day != 0 || !approxEqual(tt, 0.3, 1e-3) || !active {
		t.Fatalf("paused step = (%d, %f, %v)", day, tt, active)
	}

	p.Resume()
	clock.advance(100 * time.Millisecond)
	_, tt, _ = p.Step()
	if !approxEqual(tt, 0.4, 1e-3) {
		t.Errorf("t after resume = %f, want 0.4", tt)
	}
}

func TestPlaybackResumeWithoutPauseIsNoop(t *testing.T) {
	p, _ := newTestPlayback(1)
	p.Resume()
	if p.Playing() {
		t.Error("Resume started a stopped playback")
	}
}

func TestPlaybackStopIdempotent(t *testing.T) {
	p, clock := newTestPlayback(2)
	p.Play()
	clock.advance(400 * time.Millisecond)
	p.Step()

	p.Stop()
	p.Stop()
	if p.Playing() || p.Paused() {
		t.Error("flags set after Stop")
	}
	if _, tt := p.Frame(); tt != 0 {
		t.Errorf("t = %f after Stop, want 0", tt)
	}
}

func TestPlaybackPlayDaySingle(t *testing.T) {
	p, clock := newTestPlayback(5)
	p.PlayDay(3)

	day, _, _ := p.Step()
	if day != 3 {
		t.Fatalf("day = %d, want 3", day)
	}
	clock.advance(1100 * time.Millisecond)
	p.Step()
	if p.Playing() {
		t.Error("single-day playback chained into the next day")
	}
}

func TestPlaybackCustomDuration(t *testing.T) {
	p, clock := newTestPlayback(1)
	p.Duration = 2 * time.Second
	p.Play()

	clock.advance(time.Second)
	day, tt, _ := p.Step()
	if day != 0 || !approxEqual(tt, 0.5, 1e-3) {
		t.Errorf("step = (%d, %f), want (0, 0.5)", day, tt)
	}
}

func TestTimeManagerDates(t *testing.T) {
	tm := NewTimeManager(UnitsDays)
	tm.DateBinding = time.Date(2022, 2, 21, 0, 0, 0, 0, time.UTC)
	if got := tm.DateString(); got != "21.2.2022" {
		t.Errorf("DateString = %q", got)
	}
	tm.AddDays(10)
	if got := tm.DateString(); got != "3.3.2022" {
		t.Errorf("after AddDays(10): %q", got)
	}
}
