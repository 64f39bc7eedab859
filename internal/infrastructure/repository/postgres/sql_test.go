package postgres

import (
	"database/sql"
	"reflect"
	"testing"

	"github.com/riskibarqy/paddle-roster/internal/domain/matchhistory"
	"github.com/riskibarqy/paddle-roster/internal/domain/syncrun"
)

func TestNullableFloatRoundTrip(t *testing.T) {
	t.Parallel()

	if got := floatPtr(nullableFloat(nil)); got != nil {
		t.Fatalf("expected nil rating, got %v", *got)
	}
	v := 41.25
	got := floatPtr(nullableFloat(&v))
	if got == nil || *got != v {
		t.Fatalf("unexpected rating: got=%v want=%v", got, v)
	}
	if floatPtr(sql.NullFloat64{Float64: 3, Valid: false}) != nil {
		t.Fatalf("invalid null float must map to nil")
	}
}

func TestTableColumns(t *testing.T) {
	t.Parallel()

	want := []string{"position", "normalized_name", "display_name", "rating", "clubs", "profile_url", "profile_image_url"}
	if !reflect.DeepEqual(rosterCanonicalColumns, want) {
		t.Fatalf("unexpected canonical columns: got=%v want=%v", rosterCanonicalColumns, want)
	}
	if !reflect.DeepEqual(clubColumns, []string{"league", "name", "division", "roster_url", "last_scraped_at"}) {
		t.Fatalf("unexpected club columns: %v", clubColumns)
	}
}

func TestJSONColumns(t *testing.T) {
	t.Parallel()

	before := 40.5
	matches := []matchhistory.MatchRecord{{
		Result:  matchhistory.ResultWin,
		Date:    "Jan 12",
		Players: []matchhistory.PlayerRating{{Name: "Jane Doe", Before: &before}},
		Sets:    []matchhistory.SetScore{{Home: 6, Away: 3}},
		Side:    matchhistory.SideHome,
	}}
	encoded, err := encodeJSON(matches)
	if err != nil {
		t.Fatalf("encode matches: %v", err)
	}

	var decoded []matchhistory.MatchRecord
	if err := decodeJSON(encoded, &decoded); err != nil {
		t.Fatalf("decode matches: %v", err)
	}
	if len(decoded) != 1 || decoded[0].Players[0].Before == nil || *decoded[0].Players[0].Before != before {
		t.Fatalf("unexpected decoded matches: %+v", decoded)
	}

	var summary syncrun.Summary
	if err := decodeJSON("  ", &summary); err != nil || summary.RunID != "" {
		t.Fatalf("blank column should decode to zero value: summary=%+v err=%v", summary, err)
	}
	if err := decodeJSON("{not json", &summary); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestStringArray(t *testing.T) {
	t.Parallel()

	got := stringArray([]string{" Winnetka ", "", "Glen View"})
	if !reflect.DeepEqual(got, []string{"Winnetka", "Glen View"}) {
		t.Fatalf("unexpected array: %v", got)
	}
	if got := stringArray(nil); got == nil || len(got) != 0 {
		t.Fatalf("nil input must give an empty non-nil slice")
	}
}
