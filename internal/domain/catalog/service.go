package catalog

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListAvailable(ctx context.Context) ([]Pet, error) {
	return s.repo.ListAvailable(ctx)
}

// TraitsByPets indexa los rasgos de un batch de candidatos.
// Batch vacío => mapa vacío sin tocar el repo.
func (s *Service) TraitsByPets(ctx context.Context, petIDs []int64) (map[int64][]Trait, error) {
	if len(petIDs) == 0 {
		return map[int64][]Trait{}, nil
	}
	return s.repo.TraitsByPets(ctx, petIDs)
}

func (s *Service) ListTraits(ctx context.Context) ([]Trait, error) {
	return s.repo.ListTraits(ctx)
}
