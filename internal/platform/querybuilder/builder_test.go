package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("normalized_name", "display_name").
		From("canonical_roster").
		Where(Eq("normalized_name", "jane doe"), IsNull("deleted_at")).
		OrderBy("display_name").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT normalized_name, display_name FROM canonical_roster WHERE normalized_name = $1 AND deleted_at IS NULL ORDER BY display_name LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "jane doe" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_AnyCondition(t *testing.T) {
	query, args, err := Select("name").
		From("clubs").
		Where(Eq("league", "APTA Chicago"), Any("name", []string{"a", "b"})).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT name FROM clubs WHERE league = $1 AND name = ANY($2)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("rating_history").
		Columns("normalized_name", "rating").
		Values("jane doe", 41.5).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO rating_history (normalized_name, rating) VALUES ($1, $2) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "jane doe" || args[1] != 41.5 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_ExprCondition(t *testing.T) {
	query, args, err := Select("normalized_name").
		From("members").
		Where(Expr("(LOWER(home_club) = LOWER(?) OR LOWER(?) = ANY(other_clubs))", "Winnetka", "winnetka"), IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT normalized_name FROM members WHERE (LOWER(home_club) = LOWER($1) OR LOWER($2) = ANY(other_clubs)) AND deleted_at IS NULL"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "Winnetka" || args[1] != "winnetka" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_RejectsRaggedRow(t *testing.T) {
	_, _, err := InsertInto("clubs").Columns("league", "name").Values("APTA").ToSQL()
	if err == nil {
		t.Fatalf("expected error for row with missing values")
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("raw_roster_entries").ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}
	if query != "DELETE FROM raw_roster_entries" || len(args) != 0 {
		t.Fatalf("unexpected delete-all query: %s %+v", query, args)
	}

	query, args, err = DeleteFrom("match_history").Where(Eq("normalized_name", "jane doe")).ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}
	if query != "DELETE FROM match_history WHERE normalized_name = $1" || len(args) != 1 {
		t.Fatalf("unexpected delete query: %s %+v", query, args)
	}
}

type rosterRowFixture struct {
	Name     string  `db:"normalized_name"`
	Rating   float64 `db:"rating"`
	internal string
	Ignored  string `db:"-"`
}

func TestInsertModels_MultiRow(t *testing.T) {
	query, args, err := InsertModels("canonical_roster", []any{
		rosterRowFixture{Name: "a", Rating: 40},
		&rosterRowFixture{Name: "b", Rating: 41},
	}, "")
	if err != nil {
		t.Fatalf("build insert models: %v", err)
	}

	wantQuery := "INSERT INTO canonical_roster (normalized_name, rating) VALUES ($1, $2), ($3, $4)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 || args[2] != "b" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModels_RejectsEmpty(t *testing.T) {
	if _, _, err := InsertModels("t", nil, ""); err == nil {
		t.Fatalf("expected error for empty model list")
	}
}
