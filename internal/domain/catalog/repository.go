package catalog

import "context"

// Repository es el puerto de solo-lectura hacia el catálogo de mascotas
// y el vocabulario de rasgos.
type Repository interface {
	// ListAvailable devuelve las mascotas con is_adopted=false, orden id asc.
	ListAvailable(ctx context.Context) ([]Pet, error)
	// TraitsByPets devuelve pet id -> rasgos para un batch de candidatos.
	TraitsByPets(ctx context.Context, petIDs []int64) (map[int64][]Trait, error)
	// ListTraits devuelve el vocabulario completo, orden id asc.
	ListTraits(ctx context.Context) ([]Trait, error)
}
