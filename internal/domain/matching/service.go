package matching

import (
	"context"
	"math"
	"sort"
	"strings"

	"pet-care-platform/internal/domain/pets"
	"pet-care-platform/internal/domain/users"
)

// Candidate es una mascota disponible para dating, con la distancia
// al viewer cuando ambos lados tienen ubicación.
type Candidate struct {
	Pet        pets.Pet
	DistanceKm *float64
}

type Service struct {
	pets  pets.Repository
	users users.Repository
}

func NewService(petsRepo pets.Repository, usersRepo users.Repository) *Service {
	return &Service{
		pets:  petsRepo,
		users: usersRepo,
	}
}

// ListCandidates devuelve las mascotas con dating habilitado que no son
// del viewer. Si hay distancias, ordena por cercanía; las que no tienen
// van al final en orden de creación.
func (s *Service) ListCandidates(ctx context.Context, viewerID string) ([]Candidate, error) {
	viewerID = strings.TrimSpace(viewerID)

	var viewerLoc *users.LatLng
	if viewer, err := s.users.GetByID(ctx, viewerID); err == nil {
		viewerLoc = viewer.Location
	}

	all, err := s.pets.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	// Cache de ubicaciones de dueños para no reconsultar por mascota.
	ownerLocs := map[string]*users.LatLng{}

	out := make([]Candidate, 0)
	for _, p := range all {
		if !p.AvailableForDating {
			continue
		}
		if p.OwnerID == viewerID {
			continue
		}

		c := Candidate{Pet: p}
		if viewerLoc != nil {
			loc, seen := ownerLocs[p.OwnerID]
			if !seen {
				if owner, err := s.users.GetByID(ctx, p.OwnerID); err == nil {
					loc = owner.Location
				}
				ownerLocs[p.OwnerID] = loc
			}
			if loc != nil {
				d := haversineKm(*viewerLoc, *loc)
				c.DistanceKm = &d
			}
		}
		out = append(out, c)
	}

	sort.SliceStable(out, func(i, j int) bool {
		di, dj := out[i].DistanceKm, out[j].DistanceKm
		switch {
		case di != nil && dj != nil:
			return *di < *dj
		case di != nil:
			return true
		case dj != nil:
			return false
		default:
			return out[i].Pet.CreatedAt.Before(out[j].Pet.CreatedAt)
		}
	})

	return out, nil
}

const earthRadiusKm = 6371.0

func haversineKm(a, b users.LatLng) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}
