package ongs

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"pet-care-platform/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/ongs", func(or chi.Router) {
		or.Post("/", registerOngHandler(svc))
		or.Get("/", listOngsHandler(svc))
		or.Get("/{ongID}", getOngHandler(svc))
		or.Put("/{ongID}", updateOngHandler(svc))
	})

	r.Get("/me/ongs", listMyOngsHandler(svc))
}

type ongRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Phone       string `json:"phone"`
	Image       string `json:"image"`
	PixKey      string `json:"pix_key"`
	BankInfo    string `json:"bank_info"`
}

type ongResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Phone       string    `json:"phone"`
	Image       string    `json:"image"`
	PixKey      string    `json:"pix_key,omitempty"`
	BankInfo    string    `json:"bank_info,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func registerOngHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req ongRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		o, err := svc.Register(r.Context(), claims.UserID, RegisterInput(req))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toOngResponse(o))
	}
}

func listOngsHandler(svc *Service) http.HandlerFunc {
	// El listado de ONGs es visible para cualquier usuario autenticado.
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListAll(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]ongResponse, 0, len(items))
		for _, o := range items {
			out = append(out, toOngResponse(o))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getOngHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		o, err := svc.GetByID(r.Context(), chi.URLParam(r, "ongID"))
		if err != nil {
			http.Error(w, "ong not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toOngResponse(o))
	}
}

func updateOngHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req ongRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		o, err := svc.Update(r.Context(), chi.URLParam(r, "ongID"), claims.UserID, RegisterInput(req))
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "ong not found", http.StatusNotFound)
			case errors.Is(err, ErrForbidden):
				http.Error(w, "forbidden", http.StatusForbidden)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toOngResponse(o))
	}
}

func listMyOngsHandler(svc *Service) http.HandlerFunc {
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

		out := make([]ongResponse, 0, len(items))
		for _, o := range items {
			out = append(out, toOngResponse(o))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func toOngResponse(o Ong) ongResponse {
	return ongResponse{
		ID:          o.ID,
		OwnerID:     o.OwnerID,
		Name:        o.Name,
		Description: o.Description,
		Location:    o.Location,
		Phone:       o.Phone,
		Image:       o.Image,
		PixKey:      o.PixKey,
		BankInfo:    o.BankInfo,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

// writeJSON duplicado a propósito por módulo (ver users/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
