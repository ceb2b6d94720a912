package schedule

import (
	"testing"
	"time"
)

func span(startHour, startMin, endHour, endMin int) *Event {
	day := time.Date(2025, 12, 8, 0, 0, 0, 0, time.UTC)
	s := day.Add(time.Duration(startHour)*time.Hour + time.Duration(startMin)*time.Minute)
	e := day.Add(time.Duration(endHour)*time.Hour + time.Duration(endMin)*time.Minute)
	return &Event{StartTime: &s, EndTime: &e}
}

func TestEventOverlaps(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		a, b *Event
		want bool
	}{
		{"partial", span(14, 0, 15, 0), span(14, 30, 16, 0), true},
		{"contained", span(9, 0, 18, 0), span(12, 0, 13, 0), true},
		{"touching", span(14, 0, 15, 0), span(15, 0, 16, 0), false},
		{"disjoint", span(8, 0, 9, 0), span(10, 0, 11, 0), false},
		{"missing end", &Event{StartTime: span(14, 0, 15, 0).StartTime}, span(14, 0, 15, 0), false},
		{"nil", span(14, 0, 15, 0), nil, false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.a.Overlaps(tc.b); got != tc.want {
				t.Fatalf("a.Overlaps(b): got=%v want=%v", got, tc.want)
			}
			if tc.b != nil {
				if got := tc.b.Overlaps(tc.a); got != tc.want {
					t.Fatalf("b.Overlaps(a): got=%v want=%v", got, tc.want)
				}
			}
		})
	}
}

func TestEventAccessors(t *testing.T) {
	act, loc := " class ", " Library "
	ev := &Event{ActType: &act, Location: &loc}
	if ev.Activity() != "class" {
		t.Fatalf("Activity: %q", ev.Activity())
	}
	if ev.Place() != "Library" {
		t.Fatalf("Place: %q", ev.Place())
	}
	var nilEv *Event
	if nilEv.Activity() != "" || nilEv.Place() != "" {
		t.Fatalf("nil event accessors should be empty")
	}
}
