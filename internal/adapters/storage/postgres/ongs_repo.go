package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pet-care-platform/internal/domain/ongs"
)

type OngsRepo struct {
	db *sql.DB
}

func NewOngsRepo(db *sql.DB) *OngsRepo {
	return &OngsRepo{db: db}
}

func (r *OngsRepo) Create(ctx context.Context, o ongs.Ong) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO ongs (
			id, owner_id,
			name, description, location, phone, image,
			pix_key, bank_info,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		o.ID,
		toNullString(o.OwnerID),
		o.Name,
		o.Description,
		o.Location,
		o.Phone,
		o.Image,
		o.PixKey,
		o.BankInfo,
		o.CreatedAt,
		o.UpdatedAt,
	)
	return err
}

func (r *OngsRepo) Update(ctx context.Context, o ongs.Ong) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE ongs
		SET
			name = $2,
			description = $3,
			location = $4,
			phone = $5,
			image = $6,
			pix_key = $7,
			bank_info = $8,
			updated_at = $9
		WHERE id = $1
	`,
		o.ID,
		o.Name,
		o.Description,
		o.Location,
		o.Phone,
		o.Image,
		o.PixKey,
		o.BankInfo,
		o.UpdatedAt,
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

func (r *OngsRepo) GetByID(ctx context.Context, id string) (ongs.Ong, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return ongs.Ong{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, ongSelect+` WHERE id = $1`, id)
	o, err := scanOng(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return ongs.Ong{}, ErrNotFound
		}
		return ongs.Ong{}, err
	}
	return o, nil
}

func (r *OngsRepo) ListAll(ctx context.Context) ([]ongs.Ong, error) {
	rows, err := r.db.QueryContext(ctx, ongSelect+` ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOngs(rows)
}

func (r *OngsRepo) ListByOwner(ctx context.Context, ownerID string) ([]ongs.Ong, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return []ongs.Ong{}, nil
	}

	rows, err := r.db.QueryContext(ctx, ongSelect+` WHERE owner_id = $1 ORDER BY created_at ASC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOngs(rows)
}

const ongSelect = `
	SELECT
		id, owner_id,
		name, description, location, phone, image,
		pix_key, bank_info,
		created_at, updated_at
	FROM ongs`

func scanOng(row rowScanner) (ongs.Ong, error) {
	var o ongs.Ong
	var owner sql.NullString

	if err := row.Scan(
		&o.ID,
		&owner,
		&o.Name,
		&o.Description,
		&o.Location,
		&o.Phone,
		&o.Image,
		&o.PixKey,
		&o.BankInfo,
		&o.CreatedAt,
		&o.UpdatedAt,
	); err != nil {
		return ongs.Ong{}, err
	}

	if owner.Valid {
		o.OwnerID = owner.String
	}
	return o, nil
}

func collectOngs(rows *sql.Rows) ([]ongs.Ong, error) {
	out := make([]ongs.Ong, 0)
	for rows.Next() {
		o, err := scanOng(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func toNullString(s string) sql.NullString {
	if strings.TrimSpace(s) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
