package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pet-care-platform/internal/domain/appointments"
)

type AppointmentsRepo struct {
	db *sql.DB
}

func NewAppointmentsRepo(db *sql.DB) *AppointmentsRepo {
	return &AppointmentsRepo{db: db}
}

func (r *AppointmentsRepo) Create(ctx context.Context, a appointments.Appointment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO appointments (
			id, user_id, pet_id,
			provider_id, provider_name,
			date, time, status,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		a.ID,
		a.UserID,
		a.PetID,
		a.ProviderID,
		a.ProviderName,
		a.Date,
		a.Time,
		string(a.Status),
		a.CreatedAt,
		a.UpdatedAt,
	)
	return err
}

func (r *AppointmentsRepo) Update(ctx context.Context, a appointments.Appointment) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE appointments
		SET
			provider_id = $2,
			provider_name = $3,
			date = $4,
			time = $5,
			status = $6,
			updated_at = $7
		WHERE id = $1
	`,
		a.ID,
		a.ProviderID,
		a.ProviderName,
		a.Date,
		a.Time,
		string(a.Status),
		a.UpdatedAt,
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

func (r *AppointmentsRepo) GetByID(ctx context.Context, id string) (appointments.Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return appointments.Appointment{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, appointmentSelect+` WHERE id = $1`, id)
	a, err := scanAppointment(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return appointments.Appointment{}, ErrNotFound
		}
		return appointments.Appointment{}, err
	}
	return a, nil
}

func (r *AppointmentsRepo) ListByUser(ctx context.Context, userID string) ([]appointments.Appointment, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, appointmentSelect+`
		WHERE user_id = $1
		ORDER BY date ASC, time ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]appointments.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AppointmentsRepo) DeleteByPet(ctx context.Context, petID string) error {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return nil
	}
	// Cero filas borradas no es error: el cascade es idempotente.
	_, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE pet_id = $1`, petID)
	return err
}

const appointmentSelect = `
	SELECT
		id, user_id, pet_id,
		provider_id, provider_name,
		date, time, status,
		created_at, updated_at
	FROM appointments`

func scanAppointment(row rowScanner) (appointments.Appointment, error) {
	var a appointments.Appointment
	var status string

	if err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.PetID,
		&a.ProviderID,
		&a.ProviderName,
		&a.Date,
		&a.Time,
		&status,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return appointments.Appointment{}, err
	}

	a.Status = appointments.Status(status)
	return a, nil
}
