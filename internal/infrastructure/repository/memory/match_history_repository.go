package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/paddle-roster/internal/domain/matchhistory"
	"github.com/riskibarqy/paddle-roster/internal/domain/partnerstats"
)

type MatchHistoryRepository struct {
	mu   sync.RWMutex
	docs map[string]matchhistory.Document
}

func NewMatchHistoryRepository() *MatchHistoryRepository {
	return &MatchHistoryRepository{docs: make(map[string]matchhistory.Document)}
}

func (r *MatchHistoryRepository) Get(_ context.Context, normalizedName string) (matchhistory.Document, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.docs[normalizedName]
	if !ok {
		return matchhistory.Document{}, false, nil
	}
	doc.Matches = append([]matchhistory.MatchRecord(nil), doc.Matches...)
	return doc, true, nil
}

func (r *MatchHistoryRepository) Replace(_ context.Context, doc matchhistory.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	doc.Matches = append([]matchhistory.MatchRecord(nil), doc.Matches...)

	r.mu.Lock()
	r.docs[doc.NormalizedName] = doc
	r.mu.Unlock()
	return nil
}

type PartnerStatsRepository struct {
	mu   sync.RWMutex
	docs map[string]partnerstats.Document
}

func NewPartnerStatsRepository() *PartnerStatsRepository {
	return &PartnerStatsRepository{docs: make(map[string]partnerstats.Document)}
}

func (r *PartnerStatsRepository) Get(_ context.Context, normalizedName string) (partnerstats.Document, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.docs[normalizedName]
	if !ok {
		return partnerstats.Document{}, false, nil
	}
	doc.Partners = append([]partnerstats.Stat(nil), doc.Partners...)
	return doc, true, nil
}

func (r *PartnerStatsRepository) Replace(_ context.Context, doc partnerstats.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	doc.Partners = append([]partnerstats.Stat(nil), doc.Partners...)

	r.mu.Lock()
	r.docs[doc.NormalizedName] = doc
	r.mu.Unlock()
	return nil
}
