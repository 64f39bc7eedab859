package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/paddle-roster/internal/domain/member"
	qb "github.com/riskibarqy/paddle-roster/internal/platform/querybuilder"
)

// MemberRepository reads the registered member directory; rows are written by the account service.
type MemberRepository struct {
	db *sqlx.DB
}

func NewMemberRepository(db *sqlx.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

func (r *MemberRepository) ListMembers(ctx context.Context) ([]member.Member, error) {
	return r.list(ctx, "list members")
}

func (r *MemberRepository) ListByClub(ctx context.Context, club string) ([]member.Member, error) {
	club = strings.TrimSpace(club)
	if club == "" {
		return []member.Member{}, nil
	}
	return r.list(ctx, "list members by club",
		qb.Expr("(LOWER(home_club) = LOWER(?) OR LOWER(?) = ANY(SELECT LOWER(c) FROM UNNEST(other_clubs) AS c))", club, club),
	)
}

func (r *MemberRepository) ListByNormalizedNames(ctx context.Context, normalizedNames []string) ([]member.Member, error) {
	if len(normalizedNames) == 0 {
		return []member.Member{}, nil
	}
	return r.list(ctx, "list members by name", qb.Any("normalized_name", pq.Array(normalizedNames)))
}

func (r *MemberRepository) list(ctx context.Context, op string, conditions ...qb.Condition) ([]member.Member, error) {
	conditions = append(conditions, qb.IsNull("deleted_at"))
	query, args, err := qb.Select(memberColumns...).From("members").
		Where(conditions...).
		OrderBy("normalized_name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", op, err)
	}

	var rows []memberTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]member.Member, 0, len(rows))
	for _, row := range rows {
		out = append(out, member.Member{
			ID:              row.PublicID,
			Name:            row.Name,
			HomeClub:        row.HomeClub,
			OtherClubs:      []string(row.OtherClubs),
			Rating:          floatPtr(row.Rating),
			ProfileImageURL: row.ProfileImageURL,
		})
	}
	return out, nil
}
