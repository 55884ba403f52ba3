package inquiries

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"pet-adoption/internal/domain/pets"

	"github.com/go-chi/chi/v5"
)

// PetLookup evita depender del Service de pets completo.
type PetLookup interface {
	GetByID(ctx context.Context, id string) (pets.Pet, error)
}

func RegisterRoutes(r chi.Router, svc *Service, petLookup PetLookup) {
	r.Route("/pets/{petID}/inquiries", func(ir chi.Router) {
		ir.Post("/", submitInquiryHandler(svc, petLookup))
		ir.Get("/", listInquiriesHandler(svc, petLookup))
	})
}

type submitInquiryRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type inquiryResponse struct {
	ID          string    `json:"id"`
	PetID       string    `json:"pet_id"`
	ShelterName string    `json:"shelter_name"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
}

type submitInquiryResponse struct {
	Inquiry      inquiryResponse `json:"inquiry"`
	Confirmation string          `json:"confirmation"`
}

// submitInquiryHandler godoc
// @Summary Enviar consulta de adopción
// @Description Registra la consulta localmente. name, email y message son obligatorios.
// @Tags inquiries
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param body body submitInquiryRequest true "Datos de contacto"
// @Success 201 {object} submitInquiryResponse
// @Failure 400 {string} string "please fill in all required fields"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/inquiries [post]
func submitInquiryHandler(svc *Service, petLookup PetLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pet, ok := lookupPet(w, r, petLookup)
		if !ok {
			return
		}

		var req submitInquiryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		inq, err := svc.Submit(r.Context(), pet, SubmitInput{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Message: req.Message,
		})
		if err != nil {
			switch err {
			case ErrInvalidInput:
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, submitInquiryResponse{
			Inquiry:      toInquiryResponse(inq),
			Confirmation: Confirmation(pet),
		})
	}
}

// listInquiriesHandler godoc
// @Summary Consultas enviadas para una mascota
// @Tags inquiries
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {array} inquiryResponse
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/inquiries [get]
func listInquiriesHandler(svc *Service, petLookup PetLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pet, ok := lookupPet(w, r, petLookup)
		if !ok {
			return
		}

		items, err := svc.ListByPet(r.Context(), pet.ID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]inquiryResponse, 0, len(items))
		for _, inq := range items {
			out = append(out, toInquiryResponse(inq))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func lookupPet(w http.ResponseWriter, r *http.Request, petLookup PetLookup) (pets.Pet, bool) {
	pet, err := petLookup.GetByID(r.Context(), chi.URLParam(r, "petID"))
	if err != nil {
		if errors.Is(err, pets.ErrNotFound) {
			http.Error(w, "pet not found", http.StatusNotFound)
			return pets.Pet{}, false
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return pets.Pet{}, false
	}
	return pet, true
}

func toInquiryResponse(inq Inquiry) inquiryResponse {
	return inquiryResponse{
		ID:          inq.ID,
		PetID:       inq.PetID,
		ShelterName: inq.ShelterName,
		Name:        inq.Name,
		Email:       inq.Email,
		Phone:       inq.Phone,
		Message:     inq.Message,
		CreatedAt:   inq.CreatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
