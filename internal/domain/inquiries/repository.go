package inquiries

import "context"

type Repository interface {
	Create(ctx context.Context, inq Inquiry) error
	// ListByPet devuelve las consultas de una mascota, más recientes primero.
	ListByPet(ctx context.Context, petID string) ([]Inquiry, error)
}
