package memory

import (
	"context"
	"sort"
	"sync"

	"pet-match-engine/internal/domain/catalog"
)

type CatalogRepo struct {
	mu        sync.RWMutex
	pets      map[int64]catalog.Pet
	traits    map[int64]catalog.Trait
	petTraits map[int64][]int64 // pet id -> trait ids (orden de inserción)
}

// NewCatalogRepo crea un catálogo vacío; usar Seed* para cargar datos de dev/tests.
func NewCatalogRepo() *CatalogRepo {
	return &CatalogRepo{
		pets:      make(map[int64]catalog.Pet),
		traits:    make(map[int64]catalog.Trait),
		petTraits: make(map[int64][]int64),
	}
}

// SeedPet agrega o reemplaza una mascota con sus trait ids.
func (r *CatalogRepo) SeedPet(p catalog.Pet, traitIDs ...int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.pets[p.ID] = p
	r.petTraits[p.ID] = append([]int64(nil), traitIDs...)
}

// SeedTrait agrega o reemplaza una entrada del vocabulario.
func (r *CatalogRepo) SeedTrait(t catalog.Trait) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.traits[t.ID] = t
}

func (r *CatalogRepo) ListAvailable(ctx context.Context) ([]catalog.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]catalog.Pet, 0, len(r.pets))
	for _, p := range r.pets {
		if p.IsAdopted {
			continue
		}
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *CatalogRepo) TraitsByPets(ctx context.Context, petIDs []int64) (map[int64][]catalog.Trait, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[int64][]catalog.Trait, len(petIDs))
	for _, pid := range petIDs {
		ids, ok := r.petTraits[pid]
		if !ok {
			continue
		}
		ts := make([]catalog.Trait, 0, len(ids))
		for _, tid := range ids {
			// trait ids fuera del vocabulario simplemente no matchean
			if t, ok := r.traits[tid]; ok {
				ts = append(ts, t)
			}
		}
		if len(ts) > 0 {
			out[pid] = ts
		}
	}
	return out, nil
}

func (r *CatalogRepo) ListTraits(ctx context.Context) ([]catalog.Trait, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]catalog.Trait, 0, len(r.traits))
	for _, t := range r.traits {
		out = append(out, t)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
