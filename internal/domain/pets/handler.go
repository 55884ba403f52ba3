package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, favs FavoriteChecker) {
	r.Route("/pets", func(pr chi.Router) {
		// Discover: catálogo filtrado por type/age/location
		pr.Get("/", listPetsHandler(svc))

		// Detalle de mascota + estado de favorito
		pr.Get("/{petID}", getPetHandler(svc, favs))
	})
}

type traitsResponse struct {
	GoodWithKids bool `json:"good_with_kids"`
	HouseTrained bool `json:"house_trained"`
	Vaccinated   bool `json:"vaccinated"`
}

type shelterResponse struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// PetResponse es la representación JSON de una mascota; la reusan otros módulos (favorites).
type PetResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Breed       string          `json:"breed"`
	Age         string          `json:"age"`
	AgeCategory AgeCategory     `json:"age_category"`
	Location    string          `json:"location"`
	Image       string          `json:"image"`
	Story       string          `json:"story"`
	Traits      traitsResponse  `json:"traits"`
	Shelter     shelterResponse `json:"shelter"`
}

type filterResponse struct {
	Type     string `json:"type"`
	Age      string `json:"age"`
	Location string `json:"location"`
}

type listPetsResponse struct {
	Count  int            `json:"count"`
	Filter filterResponse `json:"filter"`
	Pets   []PetResponse  `json:"pets"`
}

type petDetailResponse struct {
	PetResponse
	IsFavorite bool `json:"is_favorite"`
}

// listPetsHandler godoc
// @Summary Listar mascotas en adopción
// @Description Devuelve el catálogo filtrado. Los parámetros ausentes equivalen a "all" (type/age) o sin restricción (location).
// @Tags pets
// @Produce json
// @Param type query string false "Tipo de animal (dog, cat) o all"
// @Param age query string false "Categoría de edad (young, adult, senior) o all"
// @Param location query string false "Substring de ubicación, case-insensitive"
// @Success 200 {object} listPetsResponse
// @Failure 500 {string} string "internal error"
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f := ParseFilter(r.URL.Query())

		items, err := svc.List(r.Context(), f)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, listPetsResponse{
			Count: len(items),
			Filter: filterResponse{
				Type:     f.Type,
				Age:      f.Age,
				Location: f.Location,
			},
			Pets: ToPetResponses(items),
		})
	}
}

// getPetHandler godoc
// @Summary Detalle de mascota
// @Description Devuelve la mascota y si está marcada como favorita.
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} petDetailResponse
// @Failure 404 {string} string "pet not found"
// @Failure 500 {string} string "internal error"
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service, favs FavoriteChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")

		p, err := svc.GetByID(r.Context(), petID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "pet not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		resp := petDetailResponse{PetResponse: ToPetResponse(p)}
		if favs != nil {
			resp.IsFavorite = favs.IsFavorite(r.Context(), p.ID)
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// ParseFilter arma un Filter desde query params; lo que falta queda en el default.
// location va tal cual: " " es una restricción válida (ubicaciones con espacio).
func ParseFilter(q url.Values) Filter {
	f := DefaultFilter()
	if _, ok := q["type"]; ok {
		f.Type = strings.TrimSpace(q.Get("type"))
	}
	if _, ok := q["age"]; ok {
		f.Age = strings.TrimSpace(q.Get("age"))
	}
	f.Location = q.Get("location")
	return f
}

func ToPetResponse(p Pet) PetResponse {
	return PetResponse{
		ID:          p.ID,
		Name:        p.Name,
		Type:        p.Type,
		Breed:       p.Breed,
		Age:         p.Age,
		AgeCategory: p.AgeCategory,
		Location:    p.Location,
		Image:       p.Image,
		Story:       p.Story,
		Traits: traitsResponse{
			GoodWithKids: p.Traits.GoodWithKids,
			HouseTrained: p.Traits.HouseTrained,
			Vaccinated:   p.Traits.Vaccinated,
		},
		Shelter: shelterResponse{
			Name:    p.Shelter.Name,
			Address: p.Shelter.Address,
			Phone:   p.Shelter.Phone,
		},
	}
}

func ToPetResponses(items []Pet) []PetResponse {
	out := make([]PetResponse, 0, len(items))
	for _, p := range items {
		out = append(out, ToPetResponse(p))
	}
	return out
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
