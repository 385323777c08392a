package pets

import (
	"context"
	"errors"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	byID map[string]Pet
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Pet{}}
}

func (r *testRepo) Create(ctx context.Context, p Pet) error {
	if p.ID == "" {
		return errors.New("repo: id required")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, errRepoNotFound
	}
	return p, nil
}

func (r *testRepo) Update(ctx context.Context, p Pet) error {
	if _, ok := r.byID[p.ID]; !ok {
		return errRepoNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return errRepoNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) ListByOwner(ctx context.Context, ownerID string) ([]Pet, error) {
	out := make([]Pet, 0)
	for _, p := range r.byID {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *testRepo) ListAll(ctx context.Context) ([]Pet, error) {
	out := make([]Pet, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}

type testPurger struct {
	purged []string
}

func (p *testPurger) DeleteByPet(ctx context.Context, petID string) error {
	p.purged = append(p.purged, petID)
	return nil
}

// -------------------------
// Tests
// -------------------------

func TestCreate_Validation(t *testing.T) {
	svc := NewService(newTestRepo(), nil)
	ctx := context.Background()

	cases := []struct {
		name string
		in   CreateInput
	}{
		{"empty name", CreateInput{Type: TypeDog}},
		{"bad type", CreateInput{Name: "Rex", Type: "fish"}},
		{"negative age", CreateInput{Name: "Rex", Type: TypeDog, Age: -1}},
		{"negative weight", CreateInput{Name: "Rex", Type: TypeDog, Weight: -0.5}},
	}
	for _, tc := range cases {
		if _, err := svc.Create(ctx, "u1", tc.in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}

	if _, err := svc.Create(ctx, "", CreateInput{Name: "Rex", Type: TypeDog}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty owner: expected ErrInvalidInput, got %v", err)
	}
}

func TestDelete_CascadesAppointments(t *testing.T) {
	repo := newTestRepo()
	purger := &testPurger{}
	svc := NewService(repo, purger)
	ctx := context.Background()

	p, err := svc.Create(ctx, "u1", CreateInput{Name: "Rex", Type: TypeDog})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := repo.GetByID(ctx, p.ID); err == nil {
		t.Fatalf("pet should be gone after delete")
	}
	if len(purger.purged) != 1 || purger.purged[0] != p.ID {
		t.Fatalf("delete should purge appointments for %s, got %#v", p.ID, purger.purged)
	}
}

func TestDelete_UnknownPetDoesNotPurge(t *testing.T) {
	purger := &testPurger{}
	svc := NewService(newTestRepo(), purger)

	if err := svc.Delete(context.Background(), "nope"); err == nil {
		t.Fatalf("expected error deleting unknown pet")
	}
	if len(purger.purged) != 0 {
		t.Fatalf("failed delete must not purge appointments")
	}
}

func TestListForAdoption_ExcludesViewerPets(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil)
	ctx := context.Background()

	mine, err := svc.Create(ctx, "u1", CreateInput{Name: "Rex", Type: TypeDog})
	if err != nil {
		t.Fatalf("create mine: %v", err)
	}
	other, err := svc.Create(ctx, "u2", CreateInput{Name: "Mia", Type: TypeCat})
	if err != nil {
		t.Fatalf("create other: %v", err)
	}

	items, err := svc.ListForAdoption(ctx, "u1")
	if err != nil {
		t.Fatalf("list for adoption: %v", err)
	}
	if len(items) != 1 || items[0].ID != other.ID {
		t.Fatalf("expected only %s, got %#v", other.ID, items)
	}
	for _, p := range items {
		if p.ID == mine.ID {
			t.Fatalf("own pet must not appear in adoption list")
		}
	}
}

func TestUpdate_MergeVaccinesKeepsIDs(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil)
	ctx := context.Background()

	shotDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	p, err := svc.Create(ctx, "u1", CreateInput{
		Name: "Rex",
		Type: TypeDog,
		Vaccines: []VaccineInput{
			{Name: "rabia", Date: shotDate},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	originalID := p.Vaccines[0].ID
	if originalID == "" {
		t.Fatalf("vaccine should get an id on create")
	}

	newDate := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	updated, err := svc.Update(ctx, p.ID, UpdateInput{
		Name: "Rex",
		Type: TypeDog,
		Vaccines: []VaccineInput{
			{Name: "rabia", Date: shotDate},
			{Name: "moquillo", Date: newDate},
		},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if len(updated.Vaccines) != 2 {
		t.Fatalf("expected 2 vaccines, got %d", len(updated.Vaccines))
	}
	if updated.Vaccines[0].ID != originalID {
		t.Fatalf("matching (name, date) must keep its id, got %q want %q", updated.Vaccines[0].ID, originalID)
	}
	if updated.Vaccines[1].ID == "" || updated.Vaccines[1].ID == originalID {
		t.Fatalf("new vaccine should get a fresh id")
	}
}

func TestUpdate_SkipsInvalidVaccineEntries(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil)
	ctx := context.Background()

	p, err := svc.Create(ctx, "u1", CreateInput{
		Name: "Rex",
		Type: TypeDog,
		Vaccines: []VaccineInput{
			{Name: "", Date: time.Now()},
			{Name: "rabia"}, // sin fecha
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(p.Vaccines) != 0 {
		t.Fatalf("invalid vaccine entries should be dropped, got %#v", p.Vaccines)
	}
}

func TestOwnerOf(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil)
	ctx := context.Background()

	p, err := svc.Create(ctx, "u1", CreateInput{Name: "Rex", Type: TypeDog})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	owner, err := svc.OwnerOf(ctx, p.ID)
	if err != nil {
		t.Fatalf("owner of: %v", err)
	}
	if owner != "u1" {
		t.Fatalf("expected owner u1, got %q", owner)
	}

	if _, err := svc.OwnerOf(ctx, "nope"); err == nil {
		t.Fatalf("expected error for unknown pet")
	}
}
