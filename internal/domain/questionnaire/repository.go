package questionnaire

import "context"

// Repository es el puerto de solo-lectura hacia el store de cuestionarios.
// El motor nunca muta un cuestionario.
type Repository interface {
	GetByID(ctx context.Context, id string) (Questionnaire, error)
	// LatestByUser devuelve el último cuestionario enviado por el usuario.
	LatestByUser(ctx context.Context, userID string) (Questionnaire, error)
}
