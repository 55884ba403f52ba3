package pets

import "context"

// Repository es el catálogo de mascotas. List devuelve el orden del catálogo.
type Repository interface {
	List(ctx context.Context) ([]Pet, error)
	GetByID(ctx context.Context, id string) (Pet, error)
}
