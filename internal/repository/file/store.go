package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/jwalitptl/clinic-voice-api/internal/model"
	"github.com/jwalitptl/clinic-voice-api/internal/repository"
	apperrors "github.com/jwalitptl/clinic-voice-api/pkg/errors"
)

// Store persists appointments as a single JSON array on disk. A missing
// file reads as an empty store. All writes go through one mutex and land
// via temp-file + rename, so two racing bookings serialize at the store
// even before the booking service's own lock.
type Store struct {
	mu   sync.Mutex
	path string
}

func NewStore(path string) (repository.AppointmentRepository, error) {
	if path == "" {
		return nil, fmt.Errorf("appointment store path is empty")
	}
	return &Store{path: path}, nil
}

func (s *Store) Append(ctx context.Context, appointment *model.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	appointments, err := s.load()
	if err != nil {
		return err
	}
	appointments = append(appointments, appointment)
	return s.save(appointments)
}

func (s *Store) ListAll(ctx context.Context) ([]*model.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) ListForDoctorDate(ctx context.Context, doctor, date string) ([]*model.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	appointments, err := s.load()
	if err != nil {
		return nil, err
	}

	matched := make([]*model.Appointment, 0)
	for _, apt := range appointments {
		if apt.Doctor == doctor && apt.Date == date {
			matched = append(matched, apt)
		}
	}
	return matched, nil
}

func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	appointments, err := s.load()
	if err != nil {
		return err
	}

	kept := appointments[:0]
	found := false
	for _, apt := range appointments {
		if apt.ID == id {
			found = true
			continue
		}
		kept = append(kept, apt)
	}
	if !found {
		return apperrors.NotFound("appointment")
	}
	return s.save(kept)
}

func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save([]*model.Appointment{})
}

func (s *Store) Ping(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.load()
	return err
}

func (s *Store) load() ([]*model.Appointment, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return []*model.Appointment{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read appointment store: %w", err)
	}

	var appointments []*model.Appointment
	if err := json.Unmarshal(data, &appointments); err != nil {
		return nil, fmt.Errorf("appointment store %s is corrupt: %w", s.path, err)
	}
	return appointments, nil
}

func (s *Store) save(appointments []*model.Appointment) error {
	data, err := json.MarshalIndent(appointments, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode appointments: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".appointments-*")
	if err != nil {
		return fmt.Errorf("failed to create temp store file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write appointment store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close appointment store: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace appointment store: %w", err)
	}
	return nil
}
