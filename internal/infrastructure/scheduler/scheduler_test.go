package scheduler

import (
	"context"
	"reflect"
	"testing"
	"time"
)

func TestParseWeeklySpec(t *testing.T) {
	t.Parallel()

	tests := map[string]WeeklySpec{
		"monday 03:00":  {Weekday: time.Monday, Hour: 3},
		" Mon  05:30 ":  {Weekday: time.Monday, Hour: 5, Minute: 30},
		"sunday 23:59":  {Weekday: time.Sunday, Hour: 23, Minute: 59},
		"Thursday 0:05": {Weekday: time.Thursday, Minute: 5},
	}
	for in, want := range tests {
		got, err := ParseWeeklySpec(in)
		if err != nil {
			t.Fatalf("ParseWeeklySpec(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseWeeklySpec(%q)=%+v want=%+v", in, got, want)
		}
	}

	for _, in := range []string{"", "monday", "funday 03:00", "monday 24:00", "monday 03:60", "monday 0300"} {
		if _, err := ParseWeeklySpec(in); err == nil {
			t.Fatalf("ParseWeeklySpec(%q) expected error", in)
		}
	}
}

func TestWeeklySpec_String(t *testing.T) {
	t.Parallel()

	spec := WeeklySpec{Weekday: time.Monday, Hour: 5, Minute: 0}
	if got := spec.String(); got != "monday 05:00" {
		t.Fatalf("unexpected spec string: got=%q want=%q", got, "monday 05:00")
	}
}

func TestScheduler_Register(t *testing.T) {
	t.Parallel()

	s, err := New(time.UTC, nil)
	if err != nil {
		t.Fatalf("new scheduler: %v", err)
	}
	defer func() {
		if err := s.Stop(); err != nil {
			t.Fatalf("stop scheduler: %v", err)
		}
	}()

	noop := func(context.Context) error { return nil }
	if err := s.Register(Job{Name: "roster-sync", Spec: WeeklySpec{Weekday: time.Monday, Hour: 3}, Run: noop}); err != nil {
		t.Fatalf("register roster job: %v", err)
	}
	if err := s.Register(Job{Name: "rankings-sync", Spec: WeeklySpec{Weekday: time.Monday, Hour: 5}, Run: noop}); err != nil {
		t.Fatalf("register rankings job: %v", err)
	}
	if err := s.Register(Job{Name: "", Run: noop}); err == nil {
		t.Fatalf("expected error for unnamed job")
	}
	if err := s.Register(Job{Name: "empty"}); err == nil {
		t.Fatalf("expected error for job without run function")
	}

	s.Start()
	got := s.JobNames()
	if !reflect.DeepEqual(got, []string{"rankings-sync", "roster-sync"}) {
		t.Fatalf("unexpected jobs: got=%v", got)
	}
}
