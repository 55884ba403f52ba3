package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"pet-adoption/internal/domain/inquiries"
)

type inquiryRepo struct {
	mu   sync.RWMutex
	byID map[string]inquiries.Inquiry
}

func NewInquiryRepo() inquiries.Repository {
	return &inquiryRepo{
		byID: make(map[string]inquiries.Inquiry),
	}
}

func (r *inquiryRepo) Create(ctx context.Context, inq inquiries.Inquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if inq.ID == "" {
		return errors.New("inquiry id required")
	}
	if _, exists := r.byID[inq.ID]; exists {
		return errors.New("inquiry already exists")
	}

	r.byID[inq.ID] = inq
	return nil
}

func (r *inquiryRepo) ListByPet(ctx context.Context, petID string) ([]inquiries.Inquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]inquiries.Inquiry, 0)
	for _, inq := range r.byID {
		if inq.PetID == petID {
			out = append(out, inq)
		}
	}

	// Orden por created_at desc (más reciente primero); id desempata
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}
