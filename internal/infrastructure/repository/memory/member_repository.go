package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/paddle-roster/internal/domain/member"
)

type MemberRepository struct {
	mu      sync.RWMutex
	members []member.Member
}

func NewMemberRepository(members []member.Member) *MemberRepository {
	items := make([]member.Member, 0, len(members))
	items = append(items, members...)
	return &MemberRepository{members: items}
}

func (r *MemberRepository) ListMembers(_ context.Context) ([]member.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]member.Member, 0, len(r.members))
	out = append(out, r.members...)
	return out, nil
}

func (r *MemberRepository) ListByClub(_ context.Context, club string) ([]member.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]member.Member, 0)
	for _, item := range r.members {
		if item.BelongsTo(club) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *MemberRepository) ListByNormalizedNames(_ context.Context, normalizedNames []string) ([]member.Member, error) {
	wanted := make(map[string]struct{}, len(normalizedNames))
	for _, name := range normalizedNames {
		wanted[name] = struct{}{}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]member.Member, 0)
	for _, item := range r.members {
		if _, ok := wanted[item.NormalizedName()]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}
