package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/paddle-roster/internal/domain/roster"
	qb "github.com/riskibarqy/paddle-roster/internal/platform/querybuilder"
)

type RosterRepository struct {
	db *sqlx.DB
}

func NewRosterRepository(db *sqlx.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

func (r *RosterRepository) ReplaceRawEntries(ctx context.Context, entries []roster.RawEntry) error {
	models := make([]any, 0, len(entries))
	for i, item := range entries {
		models = append(models, rosterRawEntryTableModel{
			Position:   i,
			PlayerName: strings.TrimSpace(item.PlayerName),
			Rating:     nullableFloat(item.Rating),
			ProfileURL: strings.TrimSpace(item.ProfileURL),
			ClubName:   strings.TrimSpace(item.ClubName),
		})
	}
	return replaceAll(ctx, r.db, "roster_raw_entries", models)
}

func (r *RosterRepository) ListRawEntries(ctx context.Context) ([]roster.RawEntry, error) {
	query, args, err := qb.Select(rosterRawEntryColumns...).From("roster_raw_entries").
		OrderBy("position").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select raw roster entries query: %w", err)
	}

	var rows []rosterRawEntryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select raw roster entries: %w", err)
	}

	out := make([]roster.RawEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, roster.RawEntry{
			PlayerName: row.PlayerName,
			Rating:     floatPtr(row.Rating),
			ProfileURL: row.ProfileURL,
			ClubName:   row.ClubName,
		})
	}
	return out, nil
}

// ReplaceCanonical skips rows with an empty or repeated normalized name, like the memory store.
func (r *RosterRepository) ReplaceCanonical(ctx context.Context, records []roster.CanonicalRecord) error {
	models := make([]any, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for _, item := range records {
		if item.NormalizedName == "" {
			continue
		}
		if _, dup := seen[item.NormalizedName]; dup {
			continue
		}
		seen[item.NormalizedName] = struct{}{}
		models = append(models, rosterCanonicalTableModel{
			Position:        len(models),
			NormalizedName:  item.NormalizedName,
			DisplayName:     item.DisplayName,
			Rating:          nullableFloat(item.Rating),
			Clubs:           pq.StringArray(stringArray(item.Clubs)),
			ProfileURL:      item.ProfileURL,
			ProfileImageURL: item.ProfileImageURL,
		})
	}
	return replaceAll(ctx, r.db, "roster_canonical", models)
}

func (r *RosterRepository) ListCanonical(ctx context.Context) ([]roster.CanonicalRecord, error) {
	query, args, err := qb.Select(rosterCanonicalColumns...).From("roster_canonical").
		OrderBy("position").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select canonical roster query: %w", err)
	}

	var rows []rosterCanonicalTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select canonical roster: %w", err)
	}

	out := make([]roster.CanonicalRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, canonicalFromRow(row))
	}
	return out, nil
}

func (r *RosterRepository) GetCanonical(ctx context.Context, normalizedName string) (roster.CanonicalRecord, bool, error) {
	query, args, err := qb.Select(rosterCanonicalColumns...).From("roster_canonical").
		Where(qb.Eq("normalized_name", normalizedName)).
		Limit(1).
		ToSQL()
	if err != nil {
		return roster.CanonicalRecord{}, false, fmt.Errorf("build get canonical record query: %w", err)
	}

	var row rosterCanonicalTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return roster.CanonicalRecord{}, false, nil
		}
		return roster.CanonicalRecord{}, false, fmt.Errorf("get canonical record: %w", err)
	}
	return canonicalFromRow(row), true, nil
}

func canonicalFromRow(row rosterCanonicalTableModel) roster.CanonicalRecord {
	return roster.CanonicalRecord{
		NormalizedName:  row.NormalizedName,
		DisplayName:     row.DisplayName,
		Rating:          floatPtr(row.Rating),
		Clubs:           []string(row.Clubs),
		ProfileURL:      row.ProfileURL,
		ProfileImageURL: row.ProfileImageURL,
	}
}
