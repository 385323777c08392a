package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"pet-care-platform/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	vaccines, err := marshalVaccines(p.Vaccines)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO pets (
			id, owner_id,
			name, breed, age, weight, type,
			image, bio, vaccines, available_for_dating,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
	`,
		p.ID,
		p.OwnerID,
		p.Name,
		p.Breed,
		p.Age,
		p.Weight,
		string(p.Type),
		p.Image,
		p.Bio,
		vaccines,
		p.AvailableForDating,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	vaccines, err := marshalVaccines(p.Vaccines)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			name = $2,
			breed = $3,
			age = $4,
			weight = $5,
			type = $6,
			image = $7,
			bio = $8,
			vaccines = $9,
			available_for_dating = $10,
			updated_at = $11
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		p.Breed,
		p.Age,
		p.Weight,
		string(p.Type),
		p.Image,
		p.Bio,
		vaccines,
		p.AvailableForDating,
		p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, petSelect+` WHERE id = $1`, id)

	p, err := scanPet(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return pets.Pet{}, ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) ListByOwner(ctx context.Context, ownerID string) ([]pets.Pet, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, petSelect+` WHERE owner_id = $1 ORDER BY created_at ASC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPets(rows)
}

func (r *PetsRepo) ListAll(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, petSelect+` ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPets(rows)
}

const petSelect = `
	SELECT
		id, owner_id,
		name, breed, age, weight, type,
		image, bio, vaccines, available_for_dating,
		created_at, updated_at
	FROM pets`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPet(row rowScanner) (pets.Pet, error) {
	var p pets.Pet
	var typ string
	var vaccines []byte

	if err := row.Scan(
		&p.ID,
		&p.OwnerID,
		&p.Name,
		&p.Breed,
		&p.Age,
		&p.Weight,
		&typ,
		&p.Image,
		&p.Bio,
		&vaccines,
		&p.AvailableForDating,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return pets.Pet{}, err
	}

	p.Type = pets.Type(typ)
	if len(vaccines) > 0 {
		if err := json.Unmarshal(vaccines, &p.Vaccines); err != nil {
			return pets.Pet{}, err
		}
	}
	if p.Vaccines == nil {
		p.Vaccines = []pets.Vaccine{}
	}
	return p, nil
}

func collectPets(rows *sql.Rows) ([]pets.Pet, error) {
	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// vaccines va como jsonb: es un registro embebido, no una tabla propia.
func marshalVaccines(v []pets.Vaccine) ([]byte, error) {
	if v == nil {
		v = []pets.Vaccine{}
	}
	return json.Marshal(v)
}
