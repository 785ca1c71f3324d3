package auth

import "context"

// AuthVerifier verifica un token y devuelve claims o error.
// La autenticación vive fuera de este servicio; acá solo el puerto.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
