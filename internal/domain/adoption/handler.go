package adoption

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"pet-care-platform/internal/domain/pets"
	"pet-care-platform/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service) {
	r.Route("/adoption/interests", func(ir chi.Router) {
		ir.Post("/", expressInterestHandler(svc, petsSvc))
		ir.Post("/{interestID}/status", updateInterestStatusHandler(svc, petsSvc))
	})

	r.Get("/me/adoption-interests", listMyInterestsHandler(svc))

	// El dueño ve los intereses por su mascota.
	r.Get("/pets/{petID}/adoption-interests", listPetInterestsHandler(svc, petsSvc))
}

type expressInterestRequest struct {
	PetID string `json:"pet_id"`
}

type updateInterestStatusRequest struct {
	Status string `json:"status"`
}

type interestResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	PetID     string    `json:"pet_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func expressInterestHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req expressInterestRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		ownerID, err := petsSvc.OwnerOf(r.Context(), req.PetID)
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		if ownerID == claims.UserID {
			http.Error(w, "cannot adopt your own pet", http.StatusBadRequest)
			return
		}

		i, err := svc.Express(r.Context(), claims.UserID, req.PetID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toInterestResponse(i))
	}
}

func listMyInterestsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByUser(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]interestResponse, 0, len(items))
		for _, i := range items {
			out = append(out, toInterestResponse(i))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func listPetInterestsHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		petID := chi.URLParam(r, "petID")
		ownerID, err := petsSvc.OwnerOf(r.Context(), petID)
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		if ownerID != claims.UserID {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		items, err := svc.ListByPet(r.Context(), petID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]interestResponse, 0, len(items))
		for _, i := range items {
			out = append(out, toInterestResponse(i))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// updateInterestStatusHandler: solo el dueño de la mascota decide.
// Si la mascota referenciada ya no existe, el interés queda huérfano
// y su status deja de ser editable.
func updateInterestStatusHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		interestID := chi.URLParam(r, "interestID")
		i, err := svc.GetByID(r.Context(), interestID)
		if err != nil {
			http.Error(w, "interest not found", http.StatusNotFound)
			return
		}

		ownerID, err := petsSvc.OwnerOf(r.Context(), i.PetID)
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		if ownerID != claims.UserID {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		var req updateInterestStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		updated, err := svc.UpdateStatus(r.Context(), interestID, Status(req.Status))
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "interest not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toInterestResponse(updated))
	}
}

func toInterestResponse(i Interest) interestResponse {
	return interestResponse{
		ID:        i.ID,
		UserID:    i.UserID,
		PetID:     i.PetID,
		Status:    string(i.Status),
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

// writeJSON duplicado a propósito por módulo (ver users/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
