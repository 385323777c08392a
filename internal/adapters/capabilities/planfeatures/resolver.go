package planfeatures

import (
	"context"
	"errors"
	"os"
	"strings"

	"pet-care-platform/internal/domain/users"
	"pet-care-platform/internal/ports/capabilities"
)

// Capacidades por plan. El plan basic no habilita ninguna.
var planCaps = map[users.Plan]map[string]bool{
	users.PlanStart: {
		capabilities.CapPetsDating: true,
	},
	users.PlanPremium: {
		capabilities.CapPetsDating:    true,
		capabilities.CapPetsUnlimited: true,
		capabilities.CapBioGenerate:   true,
	},
}

// Resolver resuelve capacidades a partir del plan guardado del usuario.
type Resolver struct {
	users    users.Repository
	allowAll bool
}

func NewResolver(repo users.Repository) *Resolver {
	return &Resolver{
		users:    repo,
		allowAll: strings.EqualFold(os.Getenv("ALLOW_ALL_CAPABILITIES"), "true"),
	}
}

func (r *Resolver) HasFeature(ctx context.Context, in capabilities.CapabilityCheck) (bool, error) {
	if r.allowAll {
		return true, nil
	}
	if strings.TrimSpace(in.UserID) == "" || strings.TrimSpace(in.Capability) == "" {
		return false, errors.New("user id and capability required")
	}

	u, err := r.users.GetByID(ctx, in.UserID)
	if err != nil {
		return false, err
	}

	return planCaps[u.Plan][in.Capability], nil
}
