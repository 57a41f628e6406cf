package frontmap

// Keyframe is a frozen snapshot of an object's field values recorded for a
// specific day. Snapshots are full-value clones with empty histories of
// their own.
type Keyframe struct {
	Day   int
	State Object
}

// Timeline is an append-only per-day keyframe log. Each object owns exactly
// one; logs are never shared between objects. The log holds only frozen
// days: the live (current) day's state is the owning object itself, so
// edits made during the current day need no write-through.
type Timeline struct {
	frames []Keyframe
}

// Len returns the number of frozen keyframes.
func (tl *Timeline) Len() int { return len(tl.frames) }

// append records a frozen keyframe. Days must arrive in strictly increasing
// order; a violation is a programmer error surfaced only in debug builds.
func (tl *Timeline) append(k Keyframe) {
	if debugEnabled && len(tl.frames) > 0 && k.Day <= tl.frames[len(tl.frames)-1].Day {
		panicDebugf("timeline: keyframe day %d not after %d", k.Day, tl.frames[len(tl.frames)-1].Day)
	}
	tl.frames = append(tl.frames, k)
}

// at returns the frozen keyframe state for a day, or nil when the day is
// not recorded.
func (tl *Timeline) at(day int) Object {
	if len(tl.frames) == 0 {
		return nil
	}
	i := day - tl.frames[0].Day
	if i < 0 || i >= len(tl.frames) || tl.frames[i].Day != day {
		return nil
	}
	return tl.frames[i].State
}

// stateAt resolves an object's state for a day within its life range: the
// object itself for the live day, a frozen keyframe otherwise. Returns nil
// for gaps.
func stateAt(o Object, day int) Object {
	b := o.Base()
	if day == b.DayEnd {
		return o
	}
	return b.History.at(day)
}

// LerpFrame maps (day, intra-day progress t in [0,1]) to the transient
// blended frame of an object, or nil when the object is not visible that
// day or its history is too short for the requested transition. The
// returned object is newly constructed every call; the live object is never
// mutated, so scrubbing is idempotent.
//
// Day dayStart fades the object in from zero alpha to its first recorded
// state. Day dayEnd blends toward the live state while fading out, unless
// the object has no frozen day yet, in which case there is no fade-out
// transition. Days in between blend the snapshots bracketing the day.
func LerpFrame(o Object, day int, t float64) Object {
	b := o.Base()
	switch {
	case day < b.DayStart || day > b.DayEnd:
		return nil

	case day == b.DayStart:
		first := stateAt(o, day)
		if first == nil {
			return nil
		}
		out := first.Clone()
		ob := out.Base()
		fb := first.Base()
		ob.Color = fb.Color.WithAlpha(0).Lerp(fb.Color, t)
		ob.Gray = b.Gray + (fb.Gray-b.Gray)*t
		return out

	case day == b.DayEnd:
		if b.History.Len() == 0 {
			// No frozen day yet: no fade-out transition to blend.
			return nil
		}
		from := stateAt(o, day-1)
		if from == nil {
			return nil
		}
		out := from.lerpWith(o, t)
		if out == nil {
			return nil
		}
		out.Base().Color = b.Color.WithAlpha(0).Lerp(b.Color, 1-t)
		return out

	default: // dayStart < day < dayEnd
		from := stateAt(o, day-1)
		to := stateAt(o, day)
		if from == nil || to == nil {
			return nil
		}
		return from.lerpWith(to, t)
	}
}
