package postgres

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/jwalitptl/clinic-voice-api/internal/config"
	"github.com/jwalitptl/clinic-voice-api/internal/repository"
)

// NewDB opens a Postgres connection for deployments that outgrow the
// flat-file store.
func NewDB(cfg config.PostgresConfig) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return db, nil
}

// appointmentRepository expects the table:
//
//	CREATE TABLE appointments (
//	    id         UUID PRIMARY KEY,
//	    doctor     TEXT NOT NULL,
//	    date       TEXT NOT NULL,
//	    start_min  INT  NOT NULL,
//	    end_min    INT  NOT NULL,
//	    patient    TEXT NOT NULL,
//	    created_at TIMESTAMPTZ NOT NULL
//	);
type appointmentRepository struct {
	db *sqlx.DB
}

func NewAppointmentRepository(db *sqlx.DB) repository.AppointmentRepository {
	return &appointmentRepository{db: db}
}
