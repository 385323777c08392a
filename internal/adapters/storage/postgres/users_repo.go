package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"pet-care-platform/internal/domain/users"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	favorites, err := marshalFavorites(u.Favorites)
	if err != nil {
		return err
	}
	lat, lng := toNullLatLng(u.Location)

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO users (
			id, name, email, password_hash,
			phone, image, plan,
			lat, lng, favorites,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		u.ID,
		u.Name,
		u.Email,
		u.PasswordHash,
		u.Phone,
		u.Image,
		string(u.Plan),
		lat,
		lng,
		favorites,
		u.CreatedAt,
		u.UpdatedAt,
	)
	return err
}

func (r *UsersRepo) Update(ctx context.Context, u users.User) error {
	favorites, err := marshalFavorites(u.Favorites)
	if err != nil {
		return err
	}
	lat, lng := toNullLatLng(u.Location)

	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET
			name = $2,
			email = $3,
			password_hash = $4,
			phone = $5,
			image = $6,
			plan = $7,
			lat = $8,
			lng = $9,
			favorites = $10,
			updated_at = $11
		WHERE id = $1
	`,
		u.ID,
		u.Name,
		u.Email,
		u.PasswordHash,
		u.Phone,
		u.Image,
		string(u.Plan),
		lat,
		lng,
		favorites,
		u.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return users.ErrNotFound
	}
	return nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return users.User{}, users.ErrNotFound
	}
	row := r.db.QueryRowContext(ctx, userSelect+` WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	if email == "" {
		return users.User{}, users.ErrNotFound
	}
	// Match exacto case-sensitive; no se normaliza el email.
	row := r.db.QueryRowContext(ctx, userSelect+` WHERE email = $1`, email)
	return scanUser(row)
}

const userSelect = `
	SELECT
		id, name, email, password_hash,
		phone, image, plan,
		lat, lng, favorites,
		created_at, updated_at
	FROM users`

func scanUser(row rowScanner) (users.User, error) {
	var u users.User
	var plan string
	var lat, lng sql.NullFloat64
	var favorites []byte

	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Phone,
		&u.Image,
		&plan,
		&lat,
		&lng,
		&favorites,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, err
	}

	u.Plan = users.Plan(plan)
	if u.Plan == "" {
		u.Plan = users.PlanBasic
	}
	if lat.Valid && lng.Valid {
		u.Location = &users.LatLng{Lat: lat.Float64, Lng: lng.Float64}
	}
	if len(favorites) > 0 {
		if err := json.Unmarshal(favorites, &u.Favorites); err != nil {
			return users.User{}, err
		}
	}
	if u.Favorites == nil {
		u.Favorites = []string{}
	}
	return u, nil
}

func marshalFavorites(favs []string) ([]byte, error) {
	if favs == nil {
		favs = []string{}
	}
	return json.Marshal(favs)
}

func toNullLatLng(l *users.LatLng) (sql.NullFloat64, sql.NullFloat64) {
	if l == nil {
		return sql.NullFloat64{}, sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: l.Lat, Valid: true},
		sql.NullFloat64{Float64: l.Lng, Valid: true}
}
