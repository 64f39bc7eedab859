package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/paddle-roster/internal/domain/matchhistory"
	"github.com/riskibarqy/paddle-roster/internal/domain/partnerstats"
	qb "github.com/riskibarqy/paddle-roster/internal/platform/querybuilder"
)

type MatchHistoryRepository struct {
	db *sqlx.DB
}

func NewMatchHistoryRepository(db *sqlx.DB) *MatchHistoryRepository {
	return &MatchHistoryRepository{db: db}
}

func (r *MatchHistoryRepository) Get(ctx context.Context, normalizedName string) (matchhistory.Document, bool, error) {
	query, args, err := qb.Select(matchHistoryColumns...).From("match_histories").
		Where(qb.Eq("normalized_name", normalizedName)).
		ToSQL()
	if err != nil {
		return matchhistory.Document{}, false, fmt.Errorf("build get match history query: %w", err)
	}

	var row matchHistoryTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return matchhistory.Document{}, false, nil
		}
		return matchhistory.Document{}, false, fmt.Errorf("get match history player=%s: %w", normalizedName, err)
	}

	doc := matchhistory.Document{
		PlayerName:     row.PlayerName,
		NormalizedName: row.NormalizedName,
		Matches:        []matchhistory.MatchRecord{},
		ScrapedAt:      row.ScrapedAt,
	}
	if err := decodeJSON(row.Matches, &doc.Matches); err != nil {
		return matchhistory.Document{}, false, fmt.Errorf("match history player=%s: %w", normalizedName, err)
	}
	return doc, true, nil
}

func (r *MatchHistoryRepository) Replace(ctx context.Context, doc matchhistory.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	matches := doc.Matches
	if matches == nil {
		matches = []matchhistory.MatchRecord{}
	}
	encoded, err := encodeJSON(matches)
	if err != nil {
		return err
	}

	query, args, err := qb.InsertModel("match_histories", matchHistoryTableModel{
		NormalizedName: doc.NormalizedName,
		PlayerName:     doc.PlayerName,
		Matches:        encoded,
		ScrapedAt:      doc.ScrapedAt.UTC(),
	}, `ON CONFLICT (normalized_name)
DO UPDATE SET
    player_name = EXCLUDED.player_name,
    matches = EXCLUDED.matches,
    scraped_at = EXCLUDED.scraped_at`)
	if err != nil {
		return fmt.Errorf("build replace match history query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("replace match history player=%s: %w", doc.NormalizedName, err)
	}
	return nil
}

type PartnerStatsRepository struct {
	db *sqlx.DB
}

func NewPartnerStatsRepository(db *sqlx.DB) *PartnerStatsRepository {
	return &PartnerStatsRepository{db: db}
}

func (r *PartnerStatsRepository) Get(ctx context.Context, normalizedName string) (partnerstats.Document, bool, error) {
	query, args, err := qb.Select(partnerStatsColumns...).From("partner_stats").
		Where(qb.Eq("normalized_name", normalizedName)).
		ToSQL()
	if err != nil {
		return partnerstats.Document{}, false, fmt.Errorf("build get partner stats query: %w", err)
	}

	var row partnerStatsTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return partnerstats.Document{}, false, nil
		}
		return partnerstats.Document{}, false, fmt.Errorf("get partner stats player=%s: %w", normalizedName, err)
	}

	doc := partnerstats.Document{
		PlayerName:     row.PlayerName,
		NormalizedName: row.NormalizedName,
		Partners:       []partnerstats.Stat{},
		CalculatedAt:   row.CalculatedAt,
	}
	if err := decodeJSON(row.Partners, &doc.Partners); err != nil {
		return partnerstats.Document{}, false, fmt.Errorf("partner stats player=%s: %w", normalizedName, err)
	}
	return doc, true, nil
}

func (r *PartnerStatsRepository) Replace(ctx context.Context, doc partnerstats.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	partners := doc.Partners
	if partners == nil {
		partners = []partnerstats.Stat{}
	}
	encoded, err := encodeJSON(partners)
	if err != nil {
		return err
	}

	query, args, err := qb.InsertModel("partner_stats", partnerStatsTableModel{
		NormalizedName: doc.NormalizedName,
		PlayerName:     doc.PlayerName,
		Partners:       encoded,
		CalculatedAt:   doc.CalculatedAt.UTC(),
	}, `ON CONFLICT (normalized_name)
DO UPDATE SET
    player_name = EXCLUDED.player_name,
    partners = EXCLUDED.partners,
    calculated_at = EXCLUDED.calculated_at`)
	if err != nil {
		return fmt.Errorf("build replace partner stats query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("replace partner stats player=%s: %w", doc.NormalizedName, err)
	}
	return nil
}
