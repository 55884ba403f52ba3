package memory

import (
	"context"
	"sync"

	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/metrics"
)

// PetRepo es el catálogo en memoria. Replace permite recargarlo en caliente
// (ver catalog watcher); el orden del slice es el orden del catálogo.
type PetRepo struct {
	mu      sync.RWMutex
	ordered []pets.Pet
	byID    map[string]pets.Pet
}

func NewPetRepo(seed []pets.Pet) *PetRepo {
	r := &PetRepo{}
	r.Replace(seed)
	return r
}

// Replace cambia el catálogo completo de forma atómica.
func (r *PetRepo) Replace(items []pets.Pet) {
	ordered := make([]pets.Pet, len(items))
	copy(ordered, items)

	byID := make(map[string]pets.Pet, len(items))
	for _, p := range ordered {
		byID[p.ID] = p
	}

	r.mu.Lock()
	r.ordered = ordered
	r.byID = byID
	r.mu.Unlock()

	metrics.CatalogSize.Set(float64(len(ordered)))
}

func (r *PetRepo) List(ctx context.Context) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// copia: el caller puede filtrar/mutar sin tocar el catálogo
	out := make([]pets.Pet, len(r.ordered))
	copy(out, r.ordered)
	return out, nil
}

func (r *PetRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}
