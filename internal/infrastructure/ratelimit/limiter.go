// Package ratelimit limita peticiones por clave (normalmente la IP del cliente).
package ratelimit

import "context"

// Limiter decide si una petición identificada por key puede pasar.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
