package inquiries

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/metrics"
)

var (
	ErrInvalidInput = errors.New("please fill in all required fields")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type SubmitInput struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// Submit registra una consulta para pet. Solo se chequea presencia de
// Name, Email y Message; el formato del email no se valida.
func (s *Service) Submit(ctx context.Context, pet pets.Pet, in SubmitInput) (Inquiry, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	message := strings.TrimSpace(in.Message)

	if strings.TrimSpace(pet.ID) == "" || name == "" || email == "" || message == "" {
		return Inquiry{}, ErrInvalidInput
	}

	inq := Inquiry{
		ID:          uuid.NewString(),
		PetID:       pet.ID,
		ShelterName: pet.Shelter.Name,
		Name:        name,
		Email:       email,
		Phone:       strings.TrimSpace(in.Phone),
		Message:     message,
		CreatedAt:   s.now().UTC(),
	}

	if err := s.repo.Create(ctx, inq); err != nil {
		return Inquiry{}, err
	}

	metrics.InquiriesSubmittedTotal.Inc()
	return inq, nil
}

func (s *Service) ListByPet(ctx context.Context, petID string) ([]Inquiry, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByPet(ctx, petID)
}

// Confirmation es el texto que se muestra después de enviar la consulta.
func Confirmation(pet pets.Pet) string {
	shelter := strings.TrimSpace(pet.Shelter.Name)
	if shelter == "" {
		shelter = "the shelter"
	}
	return fmt.Sprintf("Your message about %s has been sent to %s. They'll reach out to you soon to discuss the next steps in your adoption journey!", pet.Name, shelter)
}
