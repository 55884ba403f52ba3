package kv

import "context"

// Store es el storage clave/valor asíncrono que consume el core.
// Get devuelve found=false (sin error) si la clave no existe.
// Ambas operaciones pueden fallar con un error propio de la implementación.
type Store interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}
