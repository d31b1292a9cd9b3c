package booking

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jwalitptl/clinic-voice-api/internal/model"
	"github.com/jwalitptl/clinic-voice-api/internal/repository"
	"github.com/jwalitptl/clinic-voice-api/internal/service/availability"
	apperrors "github.com/jwalitptl/clinic-voice-api/pkg/errors"
	"github.com/jwalitptl/clinic-voice-api/pkg/logger"
)

// Service records bookings. Every booking re-validates against the
// availability engine under one mutex, so two racing calls for the same
// slot cannot both observe it free: exactly one append wins.
type Service struct {
	mu    sync.Mutex
	avail *availability.Service
	repo  repository.AppointmentRepository
	log   *logger.Logger
	now   func() time.Time
}

func NewService(avail *availability.Service, repo repository.AppointmentRepository, log *logger.Logger) *Service {
	if log == nil {
		log = logger.NewLogger(nil)
	}
	return &Service{
		avail: avail,
		repo:  repo,
		log:   log,
		now:   time.Now,
	}
}

// Book validates the requested slot and appends the appointment. Error
// codes distinguish an unknown doctor, a non-working weekday, a slot that
// is not currently free and malformed input.
func (s *Service) Book(ctx context.Context, doctor string, date time.Time, start model.TimeOfDay, patient string) (*model.Appointment, error) {
	patient = strings.TrimSpace(patient)
	if patient == "" {
		return nil, apperrors.InvalidInput("patient name is required", nil)
	}
	if !start.Valid() {
		return nil, apperrors.InvalidInput(fmt.Sprintf("invalid slot time %s", start), nil)
	}
	if date.Before(model.Midnight(s.now())) {
		return nil, apperrors.InvalidInput(
			fmt.Sprintf("date %s is in the past", date.Format(model.DateFormat)), nil)
	}

	doc, ok := s.avail.Roster().Get(doctor)
	if !ok {
		return nil, apperrors.UnknownDoctor(doctor)
	}
	if !doc.WorksOn(date.Weekday()) {
		return nil, apperrors.DoctorNotWorking(doctor, date.Weekday().String())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	slots, err := s.avail.Slots(ctx, doctor, date)
	if err != nil {
		return nil, err
	}
	if !slotOpen(slots, start) {
		return nil, apperrors.SlotUnavailable(
			fmt.Sprintf("%s is not available at %s on %s", doctor, start, date.Format(model.DateFormat)))
	}

	appointment := &model.Appointment{
		ID:        uuid.New(),
		Doctor:    doctor,
		Date:      date.Format(model.DateFormat),
		Start:     start,
		End:       start.Add(s.avail.Template().SlotDuration),
		Patient:   patient,
		CreatedAt: s.now(),
	}
	if err := s.repo.Append(ctx, appointment); err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to record appointment: %w", err))
	}

	s.log.Info("appointment booked", logger.Fields{
		"doctor":  appointment.Doctor,
		"date":    appointment.Date,
		"slot":    appointment.Start.String(),
		"patient": appointment.Patient,
	})
	return appointment, nil
}

// Appointments returns every stored appointment.
func (s *Service) Appointments(ctx context.Context) ([]*model.Appointment, error) {
	appointments, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

// Cancel removes one appointment by id. Admin surface, not part of the
// webhook contract.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Delete(ctx, id)
}

// Clear removes every appointment. Admin surface.
func (s *Service) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Clear(ctx)
}

func slotOpen(slots []model.Slot, start model.TimeOfDay) bool {
	for _, slot := range slots {
		if slot.Start == start {
			return true
		}
	}
	return false
}
