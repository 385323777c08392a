package ongs

import (
	"context"
	"errors"
	"testing"
)

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	byID map[string]Ong
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Ong{}}
}

func (r *testRepo) Create(ctx context.Context, o Ong) error {
	if o.ID == "" {
		return errors.New("repo: id required")
	}
	r.byID[o.ID] = o
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Ong, error) {
	o, ok := r.byID[id]
	if !ok {
		return Ong{}, errRepoNotFound
	}
	return o, nil
}

func (r *testRepo) Update(ctx context.Context, o Ong) error {
	if _, ok := r.byID[o.ID]; !ok {
		return errRepoNotFound
	}
	r.byID[o.ID] = o
	return nil
}

func (r *testRepo) ListAll(ctx context.Context) ([]Ong, error) {
	out := make([]Ong, 0, len(r.byID))
	for _, o := range r.byID {
		out = append(out, o)
	}
	return out, nil
}

func (r *testRepo) ListByOwner(ctx context.Context, ownerID string) ([]Ong, error) {
	out := make([]Ong, 0)
	for _, o := range r.byID {
		if o.OwnerID == ownerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func TestRegister_AllowsMissingOwner(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	o, err := svc.Register(ctx, "", RegisterInput{Name: "Patas Felizes", PixKey: "pix@local"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if o.OwnerID != "" {
		t.Fatalf("expected ownerless ong, got %q", o.OwnerID)
	}
	if o.PixKey != "pix@local" {
		t.Fatalf("expected pix key persisted, got %q", o.PixKey)
	}

	if _, err := svc.Register(ctx, "u1", RegisterInput{Name: "  "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank name: expected ErrInvalidInput, got %v", err)
	}
}

func TestUpdate_OnlyOwnerCanEdit(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	owned, err := svc.Register(ctx, "u1", RegisterInput{Name: "Amigos de Rua"})
	if err != nil {
		t.Fatalf("register owned: %v", err)
	}
	orphan, err := svc.Register(ctx, "", RegisterInput{Name: "Sin Dueño"})
	if err != nil {
		t.Fatalf("register orphan: %v", err)
	}

	if _, err := svc.Update(ctx, owned.ID, "u2", RegisterInput{Name: "Hackeada"}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("non-owner: expected ErrForbidden, got %v", err)
	}
	// Una ONG sin dueño no es editable, ni siquiera por quien la creó.
	if _, err := svc.Update(ctx, orphan.ID, "u1", RegisterInput{Name: "Nueva"}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("ownerless: expected ErrForbidden, got %v", err)
	}
	if _, err := svc.Update(ctx, "nope", "u1", RegisterInput{Name: "X"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown ong: expected ErrNotFound, got %v", err)
	}

	updated, err := svc.Update(ctx, owned.ID, "u1", RegisterInput{Name: "Amigos de Rua", BankInfo: "Banco 001"})
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if updated.BankInfo != "Banco 001" {
		t.Fatalf("expected bank info updated, got %q", updated.BankInfo)
	}
	if !updated.CreatedAt.Equal(owned.CreatedAt) {
		t.Fatalf("update must preserve CreatedAt")
	}
}
