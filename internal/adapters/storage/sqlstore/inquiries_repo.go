package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"pet-adoption/internal/domain/inquiries"
)

type InquiriesRepo struct {
	db *sqlx.DB
}

func NewInquiriesRepo(db *sqlx.DB) *InquiriesRepo {
	return &InquiriesRepo{db: db}
}

type inquiryRow struct {
	ID          string    `db:"id"`
	PetID       string    `db:"pet_id"`
	ShelterName string    `db:"shelter_name"`
	Name        string    `db:"name"`
	Email       string    `db:"email"`
	Phone       string    `db:"phone"`
	Message     string    `db:"message"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r *InquiriesRepo) Create(ctx context.Context, inq inquiries.Inquiry) error {
	row := inquiryRow{
		ID:          inq.ID,
		PetID:       inq.PetID,
		ShelterName: inq.ShelterName,
		Name:        inq.Name,
		Email:       inq.Email,
		Phone:       inq.Phone,
		Message:     inq.Message,
		CreatedAt:   inq.CreatedAt.UTC(),
	}

	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO inquiries (
			id, pet_id, shelter_name,
			name, email, phone, message,
			created_at
		) VALUES (
			:id, :pet_id, :shelter_name,
			:name, :email, :phone, :message,
			:created_at
		)
	`, row)
	if err != nil {
		return fmt.Errorf("insert inquiry: %w", err)
	}
	return nil
}

func (r *InquiriesRepo) ListByPet(ctx context.Context, petID string) ([]inquiries.Inquiry, error) {
	var rows []inquiryRow
	err := r.db.SelectContext(ctx, &rows, r.db.Rebind(`
		SELECT id, pet_id, shelter_name, name, email, phone, message, created_at
		FROM inquiries
		WHERE pet_id = ?
		ORDER BY created_at DESC, id DESC
	`), petID)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}

	out := make([]inquiries.Inquiry, 0, len(rows))
	for _, row := range rows {
		out = append(out, inquiries.Inquiry{
			ID:          row.ID,
			PetID:       row.PetID,
			ShelterName: row.ShelterName,
			Name:        row.Name,
			Email:       row.Email,
			Phone:       row.Phone,
			Message:     row.Message,
			CreatedAt:   row.CreatedAt.UTC(),
		})
	}
	return out, nil
}
