package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/paddle-roster/internal/domain/clubdirectory"
)

type ClubDirectoryService struct {
	repo clubdirectory.Repository
}

func NewClubDirectoryService(repo clubdirectory.Repository) *ClubDirectoryService {
	return &ClubDirectoryService{repo: repo}
}

// Seed upserts the static directory at process start.
func (s *ClubDirectoryService) Seed(ctx context.Context, entries []clubdirectory.Entry) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubDirectoryService.Seed")
	defer span.End()

	if s.repo == nil {
		return fmt.Errorf("%w: club directory repository is not configured", ErrDependencyUnavailable)
	}
	for _, entry := range entries {
		if err := entry.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	if err := s.repo.UpsertEntries(ctx, entries); err != nil {
		return fmt.Errorf("upsert club directory: %w", err)
	}
	return nil
}

func (s *ClubDirectoryService) ListEntries(ctx context.Context) ([]clubdirectory.Entry, error) {
	if s.repo == nil {
		return nil, fmt.Errorf("%w: club directory repository is not configured", ErrDependencyUnavailable)
	}
	entries, err := s.repo.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list club directory: %w", err)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].OfficialName < entries[j].OfficialName
	})
	return entries, nil
}
