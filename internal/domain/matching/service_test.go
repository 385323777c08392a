package matching

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"pet-care-platform/internal/domain/pets"
	"pet-care-platform/internal/domain/users"
)

// -------------------------
// Test repos (in-memory)
// -------------------------

var errRepoNotFound = errors.New("repo: not found")

type testPetRepo struct {
	items []pets.Pet
}

func (r *testPetRepo) Create(ctx context.Context, p pets.Pet) error {
	r.items = append(r.items, p)
	return nil
}

func (r *testPetRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	for _, p := range r.items {
		if p.ID == id {
			return p, nil
		}
	}
	return pets.Pet{}, errRepoNotFound
}

func (r *testPetRepo) Update(ctx context.Context, p pets.Pet) error { return nil }
func (r *testPetRepo) Delete(ctx context.Context, id string) error  { return nil }

func (r *testPetRepo) ListByOwner(ctx context.Context, ownerID string) ([]pets.Pet, error) {
	out := make([]pets.Pet, 0)
	for _, p := range r.items {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *testPetRepo) ListAll(ctx context.Context) ([]pets.Pet, error) {
	return append([]pets.Pet(nil), r.items...), nil
}

type testUserRepo struct {
	byID map[string]users.User
}

func (r *testUserRepo) Create(ctx context.Context, u users.User) error { return nil }
func (r *testUserRepo) Update(ctx context.Context, u users.User) error { return nil }

func (r *testUserRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return users.User{}, errRepoNotFound
	}
	return u, nil
}

func (r *testUserRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	return users.User{}, errRepoNotFound
}

func datingPet(id, ownerID string, createdAt time.Time) pets.Pet {
	return pets.Pet{
		ID:                 id,
		OwnerID:            ownerID,
		Name:               id,
		Type:               pets.TypeDog,
		AvailableForDating: true,
		CreatedAt:          createdAt,
	}
}

// -------------------------
// Tests
// -------------------------

func TestListCandidates_FiltersOwnAndNonDating(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	petRepo := &testPetRepo{items: []pets.Pet{
		datingPet("mine", "viewer", base),
		datingPet("other", "u2", base),
		{ID: "off", OwnerID: "u3", Name: "off", Type: pets.TypeCat, CreatedAt: base},
	}}
	userRepo := &testUserRepo{byID: map[string]users.User{}}
	svc := NewService(petRepo, userRepo)

	out, err := svc.ListCandidates(context.Background(), "viewer")
	if err != nil {
		t.Fatalf("list candidates: %v", err)
	}
	if len(out) != 1 || out[0].Pet.ID != "other" {
		t.Fatalf("expected single candidate 'other', got %#v", out)
	}
	if out[0].DistanceKm != nil {
		t.Fatalf("no locations => no distance, got %v", *out[0].DistanceKm)
	}
}

func TestListCandidates_SortsByDistanceThenCreation(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	petRepo := &testPetRepo{items: []pets.Pet{
		datingPet("far", "owner-far", base),
		datingPet("near", "owner-near", base.Add(time.Hour)),
		datingPet("unknown-late", "owner-unknown", base.Add(2*time.Hour)),
		datingPet("unknown-early", "owner-unknown-2", base),
	}}

	// Viewer en São Paulo; owners a distancias crecientes.
	saoPaulo := &users.LatLng{Lat: -23.5505, Lng: -46.6333}
	campinas := &users.LatLng{Lat: -22.9099, Lng: -47.0626}
	rio := &users.LatLng{Lat: -22.9068, Lng: -43.1729}

	userRepo := &testUserRepo{byID: map[string]users.User{
		"viewer":     {ID: "viewer", Location: saoPaulo},
		"owner-far":  {ID: "owner-far", Location: rio},
		"owner-near": {ID: "owner-near", Location: campinas},
		// owners "unknown" sin registro o sin ubicación
	}}
	svc := NewService(petRepo, userRepo)

	out, err := svc.ListCandidates(context.Background(), "viewer")
	if err != nil {
		t.Fatalf("list candidates: %v", err)
	}
	if len(out) != 4 {
		t.Fatalf("expected 4 candidates, got %d", len(out))
	}

	order := []string{"near", "far", "unknown-early", "unknown-late"}
	for i, want := range order {
		if out[i].Pet.ID != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, out[i].Pet.ID)
		}
	}

	if out[0].DistanceKm == nil || out[1].DistanceKm == nil {
		t.Fatalf("located candidates should carry distances")
	}
	if *out[0].DistanceKm >= *out[1].DistanceKm {
		t.Fatalf("near (%f) should be closer than far (%f)", *out[0].DistanceKm, *out[1].DistanceKm)
	}
	if out[2].DistanceKm != nil || out[3].DistanceKm != nil {
		t.Fatalf("unlocated owners must not carry distances")
	}
}

func TestHaversineKm(t *testing.T) {
	saoPaulo := users.LatLng{Lat: -23.5505, Lng: -46.6333}
	rio := users.LatLng{Lat: -22.9068, Lng: -43.1729}

	d := haversineKm(saoPaulo, rio)
	// Distancia real ~357 km.
	if math.Abs(d-357) > 10 {
		t.Fatalf("expected ~357km São Paulo-Rio, got %f", d)
	}

	if z := haversineKm(saoPaulo, saoPaulo); z != 0 {
		t.Fatalf("same point should be 0km, got %f", z)
	}
}
