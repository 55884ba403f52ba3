package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-adoption/internal/domain/pets"
)

func TestPetRepo_ListKeepsCatalogOrderAndCopies(t *testing.T) {
	repo := NewPetRepo([]pets.Pet{{ID: "2", Name: "B"}, {ID: "1", Name: "A"}})

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2", got[0].ID)

	got[0].Name = "mutated"
	again, _ := repo.List(context.Background())
	assert.Equal(t, "B", again[0].Name)
}

func TestPetRepo_Replace(t *testing.T) {
	repo := NewPetRepo([]pets.Pet{{ID: "1"}})
	repo.Replace([]pets.Pet{{ID: "9", Name: "Nine"}})

	_, err := repo.GetByID(context.Background(), "1")
	assert.ErrorIs(t, err, pets.ErrNotFound)

	p, err := repo.GetByID(context.Background(), "9")
	require.NoError(t, err)
	assert.Equal(t, "Nine", p.Name)
}
