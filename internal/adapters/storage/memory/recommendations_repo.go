package memory

import (
	"context"
	"sort"
	"sync"

	"pet-match-engine/internal/domain/matching"
)

type RecommendationRepo struct {
	mu     sync.RWMutex
	byUser map[string][]matching.Recommendation
}

func NewRecommendationRepo() *RecommendationRepo {
	return &RecommendationRepo{
		byUser: make(map[string][]matching.Recommendation),
	}
}

// ReplaceForUser descarta el set previo del usuario y guarda el nuevo.
// Atómico por usuario gracias al lock; nunca hay update parcial.
func (r *RecommendationRepo) ReplaceForUser(ctx context.Context, userID string, recs []matching.Recommendation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byUser[userID] = append([]matching.Recommendation(nil), recs...)
	return nil
}

func (r *RecommendationRepo) ListByUser(ctx context.Context, userID string) ([]matching.Recommendation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recs := r.byUser[userID]
	out := append([]matching.Recommendation(nil), recs...)

	// score desc, empates por pet id asc, igual que el ranking servido
	sort.Slice(out, func(i, j int) bool {
		if out[i].MatchScore != out[j].MatchScore {
			return out[i].MatchScore > out[j].MatchScore
		}
		return out[i].PetID < out[j].PetID
	})
	return out, nil
}
