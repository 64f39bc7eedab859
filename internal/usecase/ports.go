package usecase

import (
	"context"

	"github.com/riskibarqy/paddle-roster/internal/domain/club"
	"github.com/riskibarqy/paddle-roster/internal/domain/matchhistory"
	"github.com/riskibarqy/paddle-roster/internal/domain/roster"
)

// ScrapeSource is the upstream league site. Each call is one unit of work;
// errors wrap ErrFetchFailed or ErrParseFailed.
type ScrapeSource interface {
	DiscoverClubs(ctx context.Context) ([]club.Club, error)
	FetchRoster(ctx context.Context, item club.Club) ([]roster.RawEntry, error)
	FetchMatchHistory(ctx context.Context, subject, profileURL string) ([]matchhistory.MatchRecord, error)
}
