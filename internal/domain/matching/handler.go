package matching

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"pet-care-platform/internal/middleware"
	"pet-care-platform/internal/ports/capabilities"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, caps capabilities.CapabilitiesResolver) {
	r.Get("/dating/candidates", listCandidatesHandler(svc, caps))
}

type candidatePetDTO struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`
	Name    string `json:"name"`
	Breed   string `json:"breed"`
	Age     int    `json:"age"`
	Type    string `json:"type"`
	Image   string `json:"image"`
	Bio     string `json:"bio"`

	CreatedAt time.Time `json:"created_at"`
}

type candidateResponse struct {
	Pet        candidatePetDTO `json:"pet"`
	DistanceKm *float64        `json:"distance_km,omitempty"`
}

func listCandidatesHandler(svc *Service, caps capabilities.CapabilitiesResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		allowed, err := caps.HasFeature(r.Context(), capabilities.CapabilityCheck{
			UserID:     claims.UserID,
			Capability: capabilities.CapPetsDating,
		})
		if err != nil || !allowed {
			http.Error(w, "plan does not include dating", http.StatusForbidden)
			return
		}

		items, err := svc.ListCandidates(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]candidateResponse, 0, len(items))
		for _, c := range items {
			out = append(out, candidateResponse{
				Pet: candidatePetDTO{
					ID:        c.Pet.ID,
					OwnerID:   c.Pet.OwnerID,
					Name:      c.Pet.Name,
					Breed:     c.Pet.Breed,
					Age:       c.Pet.Age,
					Type:      string(c.Pet.Type),
					Image:     c.Pet.Image,
					Bio:       c.Pet.Bio,
					CreatedAt: c.Pet.CreatedAt,
				},
				DistanceKm: c.DistanceKm,
			})
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// writeJSON duplicado a propósito por módulo (ver users/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
