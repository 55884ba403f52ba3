package pets

import "context"

// FavoriteChecker expone el estado de favorito de una mascota.
// Se usa para evitar ciclos de imports entre módulos (pets <-> favorites).
type FavoriteChecker interface {
	IsFavorite(ctx context.Context, petID string) bool
}
