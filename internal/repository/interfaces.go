package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/jwalitptl/clinic-voice-api/internal/model"
)

// AppointmentRepository abstracts the append-only appointment store so the
// physical mechanism (JSON file, Postgres, a tempdir in tests) is swappable
// without touching the availability or booking logic.
type AppointmentRepository interface {
	// Append durably adds one appointment. The write must be visible to
	// every subsequent read (read-your-writes).
	Append(ctx context.Context, appointment *model.Appointment) error
	// ListAll returns every stored appointment in insertion order.
	ListAll(ctx context.Context) ([]*model.Appointment, error)
	// ListForDoctorDate returns the appointments for one doctor on one
	// calendar date (model.DateFormat).
	ListForDoctorDate(ctx context.Context, doctor, date string) ([]*model.Appointment, error)
	// Delete removes a single appointment by id.
	Delete(ctx context.Context, id uuid.UUID) error
	// Clear removes every appointment.
	Clear(ctx context.Context) error
	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error
}
