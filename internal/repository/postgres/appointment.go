package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jwalitptl/clinic-voice-api/internal/model"
	apperrors "github.com/jwalitptl/clinic-voice-api/pkg/errors"
)

func (r *appointmentRepository) Append(ctx context.Context, appointment *model.Appointment) error {
	query := `
		INSERT INTO appointments (
			id, doctor, date, start_min, end_min, patient, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		appointment.ID,
		appointment.Doctor,
		appointment.Date,
		appointment.Start,
		appointment.End,
		appointment.Patient,
		appointment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append appointment: %w", err)
	}
	return nil
}

func (r *appointmentRepository) ListAll(ctx context.Context) ([]*model.Appointment, error) {
	query := `
		SELECT id, doctor, date, start_min, end_min, patient, created_at
		FROM appointments
		ORDER BY created_at
	`
	appointments := []*model.Appointment{}
	if err := r.db.SelectContext(ctx, &appointments, query); err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) ListForDoctorDate(ctx context.Context, doctor, date string) ([]*model.Appointment, error) {
	query := `
		SELECT id, doctor, date, start_min, end_min, patient, created_at
		FROM appointments
		WHERE doctor = $1 AND date = $2
		ORDER BY start_min
	`
	appointments := []*model.Appointment{}
	if err := r.db.SelectContext(ctx, &appointments, query, doctor, date); err != nil {
		return nil, fmt.Errorf("failed to list appointments for %s on %s: %w", doctor, date, err)
	}
	return appointments, nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("appointment")
	}
	return nil
}

func (r *appointmentRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM appointments`); err != nil {
		return fmt.Errorf("failed to clear appointments: %w", err)
	}
	return nil
}

func (r *appointmentRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
