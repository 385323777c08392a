package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pet-care-platform/internal/domain/adoption"
)

type InterestsRepo struct {
	db *sql.DB
}

func NewInterestsRepo(db *sql.DB) *InterestsRepo {
	return &InterestsRepo{db: db}
}

func (r *InterestsRepo) Create(ctx context.Context, i adoption.Interest) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO adoption_interests (
			id, user_id, pet_id, status,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6)
	`,
		i.ID,
		i.UserID,
		i.PetID,
		string(i.Status),
		i.CreatedAt,
		i.UpdatedAt,
	)
	return err
}

func (r *InterestsRepo) Update(ctx context.Context, i adoption.Interest) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE adoption_interests
		SET status = $2, updated_at = $3
		WHERE id = $1
	`,
		i.ID,
		string(i.Status),
		i.UpdatedAt,
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

func (r *InterestsRepo) GetByID(ctx context.Context, id string) (adoption.Interest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return adoption.Interest{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, interestSelect+` WHERE id = $1`, id)
	i, err := scanInterest(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return adoption.Interest{}, ErrNotFound
		}
		return adoption.Interest{}, err
	}
	return i, nil
}

func (r *InterestsRepo) ListByUser(ctx context.Context, userID string) ([]adoption.Interest, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, interestSelect+`
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectInterests(rows)
}

func (r *InterestsRepo) ListByPet(ctx context.Context, petID string) ([]adoption.Interest, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, interestSelect+`
		WHERE pet_id = $1
		ORDER BY created_at DESC
	`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectInterests(rows)
}

const interestSelect = `
	SELECT
		id, user_id, pet_id, status,
		created_at, updated_at
	FROM adoption_interests`

func scanInterest(row rowScanner) (adoption.Interest, error) {
	var i adoption.Interest
	var status string

	if err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.PetID,
		&status,
		&i.CreatedAt,
		&i.UpdatedAt,
	); err != nil {
		return adoption.Interest{}, err
	}

	i.Status = adoption.Status(status)
	return i, nil
}

func collectInterests(rows *sql.Rows) ([]adoption.Interest, error) {
	out := make([]adoption.Interest, 0)
	for rows.Next() {
		i, err := scanInterest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, rows.Err()
}
