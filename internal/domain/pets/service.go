package pets

import (
	"context"
	"errors"
	"strings"

	"pet-adoption/internal/metrics"
)

var (
	ErrNotFound = errors.New("pet not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
	}
}

// List devuelve el catálogo filtrado, en orden de catálogo.
func (s *Service) List(ctx context.Context, f Filter) ([]Pet, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := ApplyFilters(items, f)
	metrics.FilterResults.Observe(float64(len(out)))
	return out, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// ListByIDs resuelve ids (p.ej. favoritos) contra el catálogo.
// Respeta el orden del catálogo y omite ids que no existen.
func (s *Service) ListByIDs(ctx context.Context, ids []string) ([]Pet, error) {
	if len(ids) == 0 {
		return []Pet{}, nil
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	out := make([]Pet, 0, len(ids))
	for _, p := range items {
		if _, ok := wanted[p.ID]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}
