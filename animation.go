package frontmap

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Clock abstracts time so playback tests can advance simulated time
// deterministically instead of depending on real frame delivery.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// TimeUnits names the granularity of the scenario timeline.
type TimeUnits string

const (
	UnitsMonths TimeUnits = "months"
	UnitsDays   TimeUnits = "days"
	UnitsHours  TimeUnits = "hours"
)

// TimeManager tracks the scenario's day range and the calendar date bound
// to the day cursor, for hosts that display dates.
type TimeManager struct {
	Units       TimeUnits
	DateBinding time.Time
	// RangeLen is the highest recorded day index.
	RangeLen int
}

// NewTimeManager creates a time manager starting at the current date.
func NewTimeManager(units TimeUnits) *TimeManager {
	return &TimeManager{Units: units, DateBinding: time.Now()}
}

// AddDays shifts the bound calendar date.
func (tm *TimeManager) AddDays(days int) {
	tm.DateBinding = tm.DateBinding.AddDate(0, 0, days)
}

// DateString formats the bound date as day.month.year.
func (tm *TimeManager) DateString() string {
	return tm.DateBinding.Format("2.1.2006")
}

// defaultDayDuration is the length of one day transition during playback.
const defaultDayDuration = time.Second

// Playback sequences per-day transition animations: Play advances from day
// 0 to the maximum recorded day, chaining one sub-animation per day via
// completion, with no overlapping transitions. It is frame-driven: the
// scene calls Step once per display frame and renders the (day, t) pair
// Step reports.
type Playback struct {
	// Duration is the wall-clock length of one day transition.
	Duration time.Duration

	tm    *TimeManager
	clock Clock

	playing bool
	paused  bool
	day     int
	lastDay int

	startTime time.Time
	pauseTime time.Time
	tween     *gween.Tween
	t         float64

	// OnComplete fires once when the final day transition finishes.
	OnComplete func()
}

// NewPlayback creates a playback controller over the given day range.
func NewPlayback(tm *TimeManager, clock Clock) *Playback {
	if clock == nil {
		clock = systemClock{}
	}
	return &Playback{Duration: defaultDayDuration, tm: tm, clock: clock}
}

// SetClock replaces the time source. Intended for tests.
func (p *Playback) SetClock(clock Clock) { p.clock = clock }

// Playing reports whether a transition is active (paused counts as
// playing).
func (p *Playback) Playing() bool { return p.playing }

// Paused reports whether playback is suspended.
func (p *Playback) Paused() bool { return p.paused }

// Frame returns the current day and intra-day progress.
func (p *Playback) Frame() (day int, t float64) { return p.day, p.t }

// Play starts the day sequence from day 0 through the maximum recorded
// day. A running playback restarts.
func (p *Playback) Play() {
	p.lastDay = p.tm.RangeLen
	p.playDay(0)
}

// PlayDay starts a single day transition without chaining into the rest of
// the sequence beyond it.
func (p *Playback) PlayDay(day int) {
	p.lastDay = day
	p.playDay(day)
}

func (p *Playback) playDay(day int) {
	p.playing = true
	p.paused = false
	p.day = day
	p.t = 0
	p.startTime = p.clock.Now()
	p.tween = gween.New(0, 1, float32(p.Duration.Seconds()), ease.Linear)
}

// Step advances the transition to the current clock instant and returns
// the frame to render. When a day transition completes, the next day
// starts; after the last day, playback stops and OnComplete fires.
func (p *Playback) Step() (day int, t float64, active bool) {
	if !p.playing || p.paused {
		return p.day, p.t, p.playing
	}

	elapsed := p.clock.Now().Sub(p.startTime)
	value, done := p.tween.Set(float32(elapsed.Seconds()))
	p.t = float64(value)

	if done {
		if p.day < p.lastDay {
			p.playDay(p.day + 1)
		} else {
			p.playing = false
			if p.OnComplete != nil {
				p.OnComplete()
			}
		}
	}
	return p.day, p.t, p.playing || done
}

// Pause suspends playback, recording the pause instant so Resume can shift
// the logical start time and continue mid-transition without a jump.
func (p *Playback) Pause() {
	if p.playing && !p.paused {
		p.paused = true
		p.pauseTime = p.clock.Now()
	}
}

// Resume continues a paused playback. The elapsed-time origin moves
// forward by the paused duration.
func (p *Playback) Resume() {
	if !p.paused {
		return
	}
	p.startTime = p.startTime.Add(p.clock.Now().Sub(p.pauseTime))
	p.paused = false
	p.playing = true
}

// Stop cancels playback. Idempotent; already-scheduled tile fetches are
// unaffected and may still complete into the cache.
func (p *Playback) Stop() {
	p.playing = false
	p.paused = false
	p.t = 0
}
