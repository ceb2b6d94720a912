package ics

import (
	"errors"
	"sort"
	"time"

	"github.com/teambition/rrule-go"
)

const defaultMaxOccurrences = 500

// Occurrence is one concrete instance of a (possibly recurring) event.
type Occurrence struct {
	UID      string
	Summary  string
	Location string
	Activity string
	Start    time.Time
	End      time.Time
}

type ExpandResult struct {
	Occurrences []Occurrence
	// Truncated lists UIDs that hit the per-event cap.
	Truncated []string
	// BadRules lists UIDs whose RRULE could not be parsed.
	BadRules []string
}

// Expand turns parsed events into occurrences starting within [from, to],
// applying RRULE, EXDATE and RECURRENCE-ID overrides. Output is sorted by
// start then UID.
func Expand(events []ParsedEvent, from, to time.Time, maxPerEvent int) (ExpandResult, error) {
	var res ExpandResult
	if to.Before(from) {
		return res, errors.New("expand: range end before start")
	}
	if maxPerEvent <= 0 {
		maxPerEvent = defaultMaxOccurrences
	}

	base := map[string][]ParsedEvent{}
	overrides := map[string][]ParsedEvent{}
	var uids []string
	for _, ev := range events {
		if ev.IsOverride() {
			overrides[ev.UID] = append(overrides[ev.UID], ev)
			continue
		}
		if _, ok := base[ev.UID]; !ok {
			uids = append(uids, ev.UID)
		}
		base[ev.UID] = append(base[ev.UID], ev)
	}

	for _, uid := range uids {
		for _, ev := range base[uid] {
			if ev.RawRRule == "" {
				if occ, ok := single(ev, overrides[uid], from, to); ok {
					res.Occurrences = append(res.Occurrences, occ)
				}
				continue
			}
			occ, capped, err := recurring(ev, overrides[uid], from, to, maxPerEvent)
			if err != nil {
				res.BadRules = append(res.BadRules, uid)
				continue
			}
			if capped {
				res.Truncated = append(res.Truncated, uid)
			}
			res.Occurrences = append(res.Occurrences, occ...)
		}
	}

	sort.SliceStable(res.Occurrences, func(i, j int) bool {
		a, b := res.Occurrences[i], res.Occurrences[j]
		if !a.Start.Equal(b.Start) {
			return a.Start.Before(b.Start)
		}
		return a.UID < b.UID
	})
	return res, nil
}

func single(ev ParsedEvent, overrides []ParsedEvent, from, to time.Time) (Occurrence, bool) {
	start, end := ev.Start, ev.End
	if o, ok := overrideFor(overrides, start); ok {
		ev, start, end = o, o.Start, o.End
	}
	if start.Before(from) || start.After(to) {
		return Occurrence{}, false
	}
	return occurrence(ev, start, end), true
}

func recurring(ev ParsedEvent, overrides []ParsedEvent, from, to time.Time, maxPerEvent int) ([]Occurrence, bool, error) {
	r, err := rrule.StrToRRule(ev.RawRRule)
	if err != nil {
		return nil, false, err
	}
	r.DTStart(ev.Start)

	var set rrule.Set
	set.RRule(r)
	for _, ex := range ev.ExDates {
		set.ExDate(ex)
	}

	starts := set.Between(from, to, true)
	capped := false
	if len(starts) > maxPerEvent {
		starts = starts[:maxPerEvent]
		capped = true
	}

	dur := ev.End.Sub(ev.Start)
	out := make([]Occurrence, 0, len(starts))
	for _, s := range starts {
		s = s.UTC()
		inst, start, end := ev, s, s.Add(dur)
		if o, ok := overrideFor(overrides, s); ok {
			inst, start, end = o, o.Start, o.End
		}
		out = append(out, occurrence(inst, start, end))
	}
	return out, capped, nil
}

func overrideFor(overrides []ParsedEvent, start time.Time) (ParsedEvent, bool) {
	for _, o := range overrides {
		if o.Recurrence != nil && o.Recurrence.Equal(start) {
			return o, true
		}
	}
	return ParsedEvent{}, false
}

func occurrence(ev ParsedEvent, start, end time.Time) Occurrence {
	return Occurrence{
		UID:      ev.UID,
		Summary:  ev.Summary,
		Location: ev.Location,
		Activity: ev.Activity(),
		Start:    start.UTC(),
		End:      end.UTC(),
	}
}
