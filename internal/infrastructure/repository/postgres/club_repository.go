package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/paddle-roster/internal/domain/club"
	"github.com/riskibarqy/paddle-roster/internal/domain/clubdirectory"
	qb "github.com/riskibarqy/paddle-roster/internal/platform/querybuilder"
)

type ClubRepository struct {
	db *sqlx.DB
}

func NewClubRepository(db *sqlx.DB) *ClubRepository {
	return &ClubRepository{db: db}
}

// UpsertClubs keys rows by (league, name). Invalid clubs are dropped and a repeated
// key inside one batch keeps the last occurrence.
func (r *ClubRepository) UpsertClubs(ctx context.Context, items []club.Club) error {
	order := make([]string, 0, len(items))
	byKey := make(map[string]clubTableModel, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			continue
		}
		key := item.Key()
		if _, ok := byKey[key]; !ok {
			order = append(order, key)
		}
		byKey[key] = clubTableModel{
			League:        strings.TrimSpace(item.League),
			Name:          strings.TrimSpace(item.Name),
			Division:      strings.TrimSpace(item.Division),
			RosterURL:     strings.TrimSpace(item.RosterURL),
			LastScrapedAt: item.LastScrapedAt.UTC(),
		}
	}
	if len(order) == 0 {
		return nil
	}

	models := make([]any, 0, len(order))
	for _, key := range order {
		models = append(models, byKey[key])
	}
	return insertChunked(ctx, r.db, "clubs", models, `ON CONFLICT (league, name)
DO UPDATE SET
    division = EXCLUDED.division,
    roster_url = EXCLUDED.roster_url,
    last_scraped_at = EXCLUDED.last_scraped_at,
    updated_at = NOW()`)
}

func (r *ClubRepository) ListClubs(ctx context.Context) ([]club.Club, error) {
	query, args, err := qb.Select(clubColumns...).From("clubs").
		OrderBy("league", "name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select clubs query: %w", err)
	}

	var rows []clubTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select clubs: %w", err)
	}

	out := make([]club.Club, 0, len(rows))
	for _, row := range rows {
		out = append(out, club.Club{
			Name:          row.Name,
			League:        row.League,
			Division:      row.Division,
			RosterURL:     row.RosterURL,
			LastScrapedAt: row.LastScrapedAt,
		})
	}
	return out, nil
}

type ClubDirectoryRepository struct {
	db *sqlx.DB
}

func NewClubDirectoryRepository(db *sqlx.DB) *ClubDirectoryRepository {
	return &ClubDirectoryRepository{db: db}
}

func (r *ClubDirectoryRepository) UpsertEntries(ctx context.Context, entries []clubdirectory.Entry) error {
	models := make([]any, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		name := strings.TrimSpace(entry.OfficialName)
		key := strings.ToLower(name)
		if name == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		models = append(models, clubDirectoryTableModel{
			OfficialName: name,
			Aliases:      pq.StringArray(stringArray(entry.Aliases)),
		})
	}
	if len(models) == 0 {
		return nil
	}

	return insertChunked(ctx, r.db, "club_directory", models, `ON CONFLICT (official_name)
DO UPDATE SET
    aliases = EXCLUDED.aliases,
    updated_at = NOW()`)
}

func (r *ClubDirectoryRepository) ListEntries(ctx context.Context) ([]clubdirectory.Entry, error) {
	query, args, err := qb.Select(clubDirectoryColumns...).From("club_directory").
		OrderBy("official_name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select club directory query: %w", err)
	}

	var rows []clubDirectoryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select club directory: %w", err)
	}

	out := make([]clubdirectory.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, clubdirectory.Entry{
			OfficialName: row.OfficialName,
			Aliases:      []string(row.Aliases),
		})
	}
	return out, nil
}
