package similarity

import "testing"

func TestScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		query     string
		candidate string
		want      int
	}{
		{name: "exact", query: "Bob Smith", candidate: "Bob Smith", want: 100},
		{name: "case and whitespace", query: " bob  SMITH", candidate: "Bob Smith", want: 100},
		{name: "substring", query: "Smith", candidate: "Bob Smith", want: 90},
		{name: "superstring", query: "Bob Smith Jr", candidate: "bob smith", want: 90},
		{name: "one edit", query: "Bob Smyth", candidate: "Bob Smith", want: 89},
		{name: "empty query", query: "", candidate: "Bob Smith", want: 0},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Score(tc.query, tc.candidate); got != tc.want {
				t.Fatalf("Score(%q,%q)=%d want=%d", tc.query, tc.candidate, got, tc.want)
			}
		})
	}
}

func TestScore_UnrelatedNameBelowThreshold(t *testing.T) {
	t.Parallel()

	if got := Score("Bob Smith", "Xavier Quintanilla"); got >= MatchThreshold {
		t.Fatalf("unrelated names should score below threshold: got=%d", got)
	}
}

func TestRank_StableOrder(t *testing.T) {
	t.Parallel()

	items := []string{"Ann Lee", "Bob Smith", "Bobby Smith", "bob smith"}
	ranked := Rank("Bob Smith", items, func(s string) string { return s })
	if len(ranked) != len(items) {
		t.Fatalf("unexpected length: got=%d want=%d", len(ranked), len(items))
	}
	if ranked[0].Item != "Bob Smith" || ranked[1].Item != "bob smith" {
		t.Fatalf("exact matches should lead in input order: %+v", ranked)
	}
	if ranked[len(ranked)-1].Item != "Ann Lee" {
		t.Fatalf("weakest match should be last: %+v", ranked)
	}
}
