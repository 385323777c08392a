package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"pet-care-platform/internal/middleware"
	"pet-care-platform/internal/ports/bio"
	"pet-care-platform/internal/ports/capabilities"

	"github.com/go-chi/chi/v5"
)

// MaxPetsBasic es el tope de mascotas sin la capability pets:unlimited.
const MaxPetsBasic = 2

func RegisterRoutes(r chi.Router, svc *Service, caps capabilities.CapabilitiesResolver, bioGen bio.Generator) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc, caps))
		pr.Get("/", listPetsHandler(svc))

		pr.Get("/{petID}", getPetHandler(svc))
		pr.Put("/{petID}", updatePetHandler(svc, caps))
		pr.Delete("/{petID}", deletePetHandler(svc))

		pr.Post("/{petID}/bio", generateBioHandler(svc, caps, bioGen))
	})

	// Vitrina de adopción: todas las mascotas menos las propias.
	r.Get("/adoption/pets", listAdoptionPetsHandler(svc))
}

type vaccineDTO struct {
	ID          string  `json:"id,omitempty"`
	Name        string  `json:"name"`
	Date        string  `json:"date"` // YYYY-MM-DD
	NextDueDate *string `json:"next_due_date,omitempty"`
}

type petRequest struct {
	Name               string       `json:"name"`
	Breed              string       `json:"breed"`
	Age                int          `json:"age"`
	Weight             float64      `json:"weight"`
	Type               string       `json:"type"`
	Image              string       `json:"image"`
	Bio                string       `json:"bio"`
	Vaccines           []vaccineDTO `json:"vaccines"`
	AvailableForDating bool         `json:"available_for_dating"`
}

type petResponse struct {
	ID                 string       `json:"id"`
	OwnerID            string       `json:"owner_id"`
	Name               string       `json:"name"`
	Breed              string       `json:"breed"`
	Age                int          `json:"age"`
	Weight             float64      `json:"weight"`
	Type               string       `json:"type"`
	Image              string       `json:"image"`
	Bio                string       `json:"bio"`
	Vaccines           []vaccineDTO `json:"vaccines"`
	AvailableForDating bool         `json:"available_for_dating"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

func createPetHandler(svc *Service, caps capabilities.CapabilitiesResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req petRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in, err := toCreateInput(req)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		// Tope de mascotas según plan.
		unlimited, _ := caps.HasFeature(r.Context(), capabilities.CapabilityCheck{
			UserID:     claims.UserID,
			Capability: capabilities.CapPetsUnlimited,
		})
		if !unlimited {
			existing, err := svc.ListByOwner(r.Context(), claims.UserID)
			if err != nil {
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			if len(existing) >= MaxPetsBasic {
				http.Error(w, "pet limit reached for current plan", http.StatusForbidden)
				return
			}
		}

		if in.AvailableForDating {
			if !hasCap(r, caps, claims.UserID, capabilities.CapPetsDating) {
				http.Error(w, "plan does not include dating", http.StatusForbidden)
				return
			}
		}

		p, err := svc.Create(r.Context(), claims.UserID, in)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByOwner(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getPetHandler(svc *Service) http.HandlerFunc {
	// Cualquier usuario autenticado puede ver un perfil (adopción/dating).
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func updatePetHandler(svc *Service, caps capabilities.CapabilitiesResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		petID := chi.URLParam(r, "petID")
		current, err := svc.GetByID(r.Context(), petID)
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		if current.OwnerID != claims.UserID {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		var req petRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in, err := toCreateInput(req)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		// Habilitar dating requiere plan start o premium.
		if in.AvailableForDating && !current.AvailableForDating {
			if !hasCap(r, caps, claims.UserID, capabilities.CapPetsDating) {
				http.Error(w, "plan does not include dating", http.StatusForbidden)
				return
			}
		}

		updated, err := svc.Update(r.Context(), petID, UpdateInput(in))
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "pet not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(updated))
	}
}

func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		petID := chi.URLParam(r, "petID")
		current, err := svc.GetByID(r.Context(), petID)
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		if current.OwnerID != claims.UserID {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		if err := svc.Delete(r.Context(), petID); err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "pet not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func listAdoptionPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListForAdoption(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

type generateBioRequest struct {
	Traits   string `json:"traits"`
	Language string `json:"language"`
}

type generateBioResponse struct {
	Bio string `json:"bio"`
}

// generateBioHandler devuelve un texto sugerido; no persiste nada.
// El generator nunca falla hacia afuera: ante upstream caído responde
// el texto de fallback.
func generateBioHandler(svc *Service, caps capabilities.CapabilitiesResolver, gen bio.Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		petID := chi.URLParam(r, "petID")
		p, err := svc.GetByID(r.Context(), petID)
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		if p.OwnerID != claims.UserID {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		if !hasCap(r, caps, claims.UserID, capabilities.CapBioGenerate) {
			http.Error(w, "plan does not include bio generation", http.StatusForbidden)
			return
		}

		var req generateBioRequest
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&req)
		}

		text, err := gen.Generate(r.Context(), bio.Request{
			Name:     p.Name,
			Breed:    p.Breed,
			Traits:   req.Traits,
			Language: req.Language,
		})
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, generateBioResponse{Bio: text})
	}
}

func hasCap(r *http.Request, caps capabilities.CapabilitiesResolver, userID, capability string) bool {
	ok, err := caps.HasFeature(r.Context(), capabilities.CapabilityCheck{
		UserID:     userID,
		Capability: capability,
	})
	return err == nil && ok
}

func toCreateInput(req petRequest) (CreateInput, error) {
	vaccines := make([]VaccineInput, 0, len(req.Vaccines))
	for _, v := range req.Vaccines {
		d, err := time.Parse("2006-01-02", v.Date)
		if err != nil {
			return CreateInput{}, errors.New("vaccine date must be YYYY-MM-DD")
		}
		var next *time.Time
		if v.NextDueDate != nil && strings.TrimSpace(*v.NextDueDate) != "" {
			n, err := time.Parse("2006-01-02", *v.NextDueDate)
			if err != nil {
				return CreateInput{}, errors.New("vaccine next_due_date must be YYYY-MM-DD")
			}
			next = &n
		}
		vaccines = append(vaccines, VaccineInput{
			Name:        v.Name,
			Date:        d,
			NextDueDate: next,
		})
	}

	return CreateInput{
		Name:               req.Name,
		Breed:              req.Breed,
		Age:                req.Age,
		Weight:             req.Weight,
		Type:               Type(req.Type),
		Image:              req.Image,
		Bio:                req.Bio,
		Vaccines:           vaccines,
		AvailableForDating: req.AvailableForDating,
	}, nil
}

func toPetResponse(p Pet) petResponse {
	vaccines := make([]vaccineDTO, 0, len(p.Vaccines))
	for _, v := range p.Vaccines {
		dto := vaccineDTO{
			ID:   v.ID,
			Name: v.Name,
			Date: v.Date.Format("2006-01-02"),
		}
		if v.NextDueDate != nil {
			s := v.NextDueDate.Format("2006-01-02")
			dto.NextDueDate = &s
		}
		vaccines = append(vaccines, dto)
	}

	return petResponse{
		ID:                 p.ID,
		OwnerID:            p.OwnerID,
		Name:               p.Name,
		Breed:              p.Breed,
		Age:                p.Age,
		Weight:             p.Weight,
		Type:               string(p.Type),
		Image:              p.Image,
		Bio:                p.Bio,
		Vaccines:           vaccines,
		AvailableForDating: p.AvailableForDating,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

// writeJSON duplicado a propósito por módulo (ver users/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
