package matching

import "context"

// RecommendationRepository es el sink de recomendaciones persistidas.
// ReplaceForUser debe ser atómico por usuario: borrar el set anterior e
// insertar el nuevo en una sola transacción lógica.
type RecommendationRepository interface {
	ReplaceForUser(ctx context.Context, userID string, recs []Recommendation) error
	ListByUser(ctx context.Context, userID string) ([]Recommendation, error)
}
