package sqlstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-adoption/internal/adapters/storage/sqlstore"
	"pet-adoption/internal/domain/inquiries"
	"pet-adoption/internal/testutil"
)

func TestInquiriesRepo_CreateAndListByPet(t *testing.T) {
	repo := sqlstore.NewInquiriesRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	base := time.Date(2026, 5, 10, 9, 30, 0, 0, time.UTC)

	older := inquiries.Inquiry{
		ID: "a1", PetID: "1", ShelterName: "Happy Paws Rescue",
		Name: "Ana", Email: "ana@example.com", Message: "hello",
		CreatedAt: base,
	}
	newer := inquiries.Inquiry{
		ID: "a2", PetID: "1", ShelterName: "Happy Paws Rescue",
		Name: "Beto", Email: "beto@example.com", Phone: "555-0100", Message: "hi there",
		CreatedAt: base.Add(time.Hour),
	}
	other := inquiries.Inquiry{
		ID: "b1", PetID: "2", ShelterName: "City Shelter",
		Name: "Ana", Email: "ana@example.com", Message: "and this one?",
		CreatedAt: base,
	}
	for _, inq := range []inquiries.Inquiry{older, newer, other} {
		require.NoError(t, repo.Create(ctx, inq))
	}

	got, err := repo.ListByPet(ctx, "1")
	require.NoError(t, err)

	opt := cmpopts.EquateApproxTime(time.Millisecond)
	if diff := cmp.Diff([]inquiries.Inquiry{newer, older}, got, opt); diff != "" {
		t.Fatalf("ListByPet mismatch (-want +got):\n%s", diff)
	}
}

func TestInquiriesRepo_ListByPet_Empty(t *testing.T) {
	repo := sqlstore.NewInquiriesRepo(testutil.NewTestDB(t))

	got, err := repo.ListByPet(context.Background(), "nope")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestInquiriesRepo_DuplicateID(t *testing.T) {
	repo := sqlstore.NewInquiriesRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	inq := inquiries.Inquiry{ID: "dup", PetID: "1", Name: "A", Email: "a@b.c", Message: "m", CreatedAt: time.Now()}

	require.NoError(t, repo.Create(ctx, inq))
	assert.Error(t, repo.Create(ctx, inq))
}
