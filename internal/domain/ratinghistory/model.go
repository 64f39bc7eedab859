package ratinghistory

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

// Record is one appended rating observation. The store never deduplicates by date.
type Record struct {
	NormalizedName string
	Rating         float64
	RecordedAt     time.Time
}

func (r Record) Validate() error {
	if strings.TrimSpace(r.NormalizedName) == "" {
		return fmt.Errorf("rating history player name is required")
	}
	if r.RecordedAt.IsZero() {
		return fmt.Errorf("rating history recorded_at is required")
	}
	return nil
}

// FirstPerDay sorts records oldest first and keeps the earliest record of each UTC calendar day.
func FirstPerDay(records []Record) []Record {
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].RecordedAt.Before(sorted[j].RecordedAt)
	})

	out := make([]Record, 0, len(sorted))
	seen := make(map[string]struct{}, len(sorted))
	for _, item := range sorted {
		day := item.RecordedAt.UTC().Format(time.DateOnly)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		out = append(out, item)
	}
	return out
}

// Trend summarizes a series: Start is the oldest rating, Current the newest.
type Trend struct {
	Current float64
	Start   float64
	Diff    float64
}

// ComputeTrend expects an oldest-first series such as the output of FirstPerDay.
func ComputeTrend(series []Record) (Trend, bool) {
	if len(series) == 0 {
		return Trend{}, false
	}
	start := series[0].Rating
	current := series[len(series)-1].Rating
	return Trend{
		Current: current,
		Start:   start,
		Diff:    math.Round((current-start)*100) / 100,
	}, true
}
