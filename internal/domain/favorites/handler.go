package favorites

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pet-adoption/internal/domain/pets"

	"github.com/go-chi/chi/v5"
)

// PetCatalog resuelve los IDs guardados contra el catálogo actual.
type PetCatalog interface {
	ListByIDs(ctx context.Context, ids []string) ([]pets.Pet, error)
}

// keepAliveEvery mantiene viva la conexión SSE detrás de proxies.
var keepAliveEvery = 25 * time.Second

func RegisterRoutes(r chi.Router, svc *Service, catalog PetCatalog) {
	r.Route("/favorites", func(fr chi.Router) {
		fr.Get("/", listFavoritesHandler(svc, catalog))

		// Invalidación en vivo (Server-Sent Events)
		fr.Get("/stream", streamFavoritesHandler(svc))

		fr.Put("/{petID}", addFavoriteHandler(svc))
		fr.Delete("/{petID}", removeFavoriteHandler(svc))
		fr.Post("/{petID}/toggle", toggleFavoriteHandler(svc))
	})
}

type listFavoritesResponse struct {
	IDs   []string           `json:"ids"`
	Count int                `json:"count"`
	Pets  []pets.PetResponse `json:"pets"`
}

type favoriteStatusResponse struct {
	PetID      string `json:"pet_id"`
	IsFavorite bool   `json:"is_favorite"`
}

type changeEvent struct {
	Op       Op       `json:"op"`
	PetID    string   `json:"pet_id,omitempty"`
	Favorite bool     `json:"is_favorite"`
	IDs      []string `json:"ids"`
	Version  uint64   `json:"version"`
}

// listFavoritesHandler godoc
// @Summary Listar favoritos
// @Description IDs guardados en orden de inserción, más las mascotas del catálogo que todavía existen.
// @Tags favorites
// @Produce json
// @Success 200 {object} listFavoritesResponse
// @Failure 500 {string} string "internal error"
// @Router /favorites [get]
func listFavoritesHandler(svc *Service, catalog PetCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ids := svc.List(r.Context())

		items, err := catalog.ListByIDs(r.Context(), ids)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, listFavoritesResponse{
			IDs:   ids,
			Count: len(ids),
			Pets:  pets.ToPetResponses(items),
		})
	}
}

// addFavoriteHandler godoc
// @Summary Marcar como favorita
// @Tags favorites
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} favoriteStatusResponse
// @Router /favorites/{petID} [put]
func addFavoriteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := petIDParam(w, r)
		if !ok {
			return
		}
		svc.Add(r.Context(), petID)
		writeJSON(w, http.StatusOK, favoriteStatusResponse{
			PetID:      petID,
			IsFavorite: svc.IsFavorite(r.Context(), petID),
		})
	}
}

// removeFavoriteHandler godoc
// @Summary Quitar de favoritos
// @Tags favorites
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} favoriteStatusResponse
// @Router /favorites/{petID} [delete]
func removeFavoriteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := petIDParam(w, r)
		if !ok {
			return
		}
		svc.Remove(r.Context(), petID)
		writeJSON(w, http.StatusOK, favoriteStatusResponse{
			PetID:      petID,
			IsFavorite: svc.IsFavorite(r.Context(), petID),
		})
	}
}

// toggleFavoriteHandler godoc
// @Summary Alternar favorito
// @Description Invierte la membresía de forma atómica y devuelve el estado resultante.
// @Tags favorites
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} favoriteStatusResponse
// @Router /favorites/{petID}/toggle [post]
func toggleFavoriteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := petIDParam(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, favoriteStatusResponse{
			PetID:      petID,
			IsFavorite: svc.Toggle(r.Context(), petID),
		})
	}
}

// streamFavoritesHandler godoc
// @Summary Stream de cambios de favoritos
// @Description Server-Sent Events: un evento "snapshot" al conectar y un "change" por cada escritura.
// @Tags favorites
// @Produce text/event-stream
// @Success 200 {string} string "event stream"
// @Router /favorites/stream [get]
func streamFavoritesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "streaming unsupported", http.StatusInternalServerError)
			return
		}

		// buffer chico; si el cliente no consume, se descartan eventos (el
		// siguiente trae el snapshot completo igual)
		events := make(chan Change, 16)
		unsubscribe := svc.Subscribe(func(c Change) {
			select {
			case events <- c:
			default:
			}
		})
		defer unsubscribe()

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)

		if err := writeEvent(w, "snapshot", changeEvent{Op: OpList, IDs: svc.List(r.Context())}); err != nil {
			return
		}
		flusher.Flush()

		ticker := time.NewTicker(keepAliveEvery)
		defer ticker.Stop()

		for {
			select {
			case <-r.Context().Done():
				return
			case c := <-events:
				if err := writeEvent(w, "change", changeEvent{
					Op:       c.Op,
					PetID:    c.PetID,
					Favorite: c.Favorite,
					IDs:      c.IDs,
					Version:  c.Version,
				}); err != nil {
					return
				}
				flusher.Flush()
			case <-ticker.C:
				if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
					return
				}
				flusher.Flush()
			}
		}
	}
}

func writeEvent(w http.ResponseWriter, name string, v changeEvent) error {
	if v.IDs == nil {
		v.IDs = []string{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", name, b)
	return err
}

func petIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	petID := strings.TrimSpace(chi.URLParam(r, "petID"))
	if petID == "" {
		http.Error(w, "petID required", http.StatusBadRequest)
		return "", false
	}
	return petID, true
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
