package inquiries

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-adoption/internal/domain/pets"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	items []Inquiry
	err   error
}

func (r *testRepo) Create(ctx context.Context, inq Inquiry) error {
	if r.err != nil {
		return r.err
	}
	r.items = append(r.items, inq)
	return nil
}

func (r *testRepo) ListByPet(ctx context.Context, petID string) ([]Inquiry, error) {
	out := make([]Inquiry, 0)
	for i := len(r.items) - 1; i >= 0; i-- {
		if r.items[i].PetID == petID {
			out = append(out, r.items[i])
		}
	}
	return out, nil
}

func testPet() pets.Pet {
	return pets.Pet{
		ID:   "1",
		Name: "Luna",
		Shelter: pets.Shelter{
			Name: "Happy Paws Rescue",
		},
	}
}

// -------------------------
// Tests
// -------------------------

func TestService_Submit_RecordsInquiry(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	inq, err := svc.Submit(context.Background(), testPet(), SubmitInput{
		Name:    "  Ana ",
		Email:   "ana@example.com",
		Message: "I'd love to meet Luna",
	})
	require.NoError(t, err)

	_, err = uuid.Parse(inq.ID)
	assert.NoError(t, err)
	assert.Equal(t, "1", inq.PetID)
	assert.Equal(t, "Happy Paws Rescue", inq.ShelterName)
	assert.Equal(t, "Ana", inq.Name)
	assert.Empty(t, inq.Phone)
	assert.Equal(t, fixed, inq.CreatedAt)
	require.Len(t, repo.items, 1)
	assert.Equal(t, inq, repo.items[0])
}

func TestService_Submit_RequiresFields(t *testing.T) {
	cases := map[string]SubmitInput{
		"missing name":    {Email: "a@b.c", Message: "hi"},
		"missing email":   {Name: "Ana", Message: "hi"},
		"missing message": {Name: "Ana", Email: "a@b.c"},
		"blank message":   {Name: "Ana", Email: "a@b.c", Message: "   "},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			repo := &testRepo{}
			_, err := NewService(repo).Submit(context.Background(), testPet(), in)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Empty(t, repo.items)
		})
	}
}

func TestService_Submit_EmailFormatNotValidated(t *testing.T) {
	_, err := NewService(&testRepo{}).Submit(context.Background(), testPet(), SubmitInput{
		Name: "Ana", Email: "not-an-email", Message: "hi",
	})
	assert.NoError(t, err)
}

func TestService_Submit_PropagatesRepoError(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewService(&testRepo{err: boom}).Submit(context.Background(), testPet(), SubmitInput{
		Name: "Ana", Email: "a@b.c", Message: "hi",
	})
	assert.ErrorIs(t, err, boom)
}

func TestService_ListByPet(t *testing.T) {
	svc := NewService(&testRepo{})
	ctx := context.Background()

	for _, msg := range []string{"first", "second"} {
		_, err := svc.Submit(ctx, testPet(), SubmitInput{Name: "Ana", Email: "a@b.c", Message: msg})
		require.NoError(t, err)
	}

	got, err := svc.ListByPet(ctx, "1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "second", got[0].Message)

	_, err = svc.ListByPet(ctx, " ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestConfirmation(t *testing.T) {
	msg := Confirmation(testPet())
	assert.True(t, strings.HasPrefix(msg, "Your message about Luna has been sent to Happy Paws Rescue."), msg)

	assert.Contains(t, Confirmation(pets.Pet{Name: "Max"}), "sent to the shelter")
}
