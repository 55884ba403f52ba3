package inquiries

import "time"

// Inquiry es una consulta de adopción enviada desde el detalle de una mascota.
// Se registra localmente; no se envía a ningún refugio.
type Inquiry struct {
	ID          string
	PetID       string
	ShelterName string

	Name    string
	Email   string
	Phone   string // opcional
	Message string

	CreatedAt time.Time
}
