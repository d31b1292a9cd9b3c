package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/jwalitptl/clinic-voice-api/internal/model"
	"github.com/jwalitptl/clinic-voice-api/internal/repository"
	apperrors "github.com/jwalitptl/clinic-voice-api/pkg/errors"
)

// Service computes bookable slots for a doctor on a date by expanding the
// working-hours template and removing the lunch blackout and already-booked
// intervals. It never writes; every call re-reads the store.
type Service struct {
	roster   *model.Roster
	template model.DaySchedule
	repo     repository.AppointmentRepository
}

func NewService(roster *model.Roster, template model.DaySchedule, repo repository.AppointmentRepository) *Service {
	return &Service{
		roster:   roster,
		template: template,
		repo:     repo,
	}
}

// Roster exposes the doctor directory for callers that validate requests.
func (s *Service) Roster() *model.Roster {
	return s.roster
}

// Template exposes the shared working-hours template.
func (s *Service) Template() model.DaySchedule {
	return s.template
}

// Slots returns the free slots for a doctor on a date, in chronological
// order. An unknown doctor is an error; a known doctor on a non-working
// weekday is an empty result, which is a valid business outcome.
func (s *Service) Slots(ctx context.Context, doctor string, date time.Time) ([]model.Slot, error) {
	doc, ok := s.roster.Get(doctor)
	if !ok {
		return nil, apperrors.UnknownDoctor(doctor)
	}

	if !doc.WorksOn(date.Weekday()) {
		return []model.Slot{}, nil
	}

	appointments, err := s.repo.ListForDoctorDate(ctx, doctor, date.Format(model.DateFormat))
	if err != nil {
		return nil, fmt.Errorf("failed to read booked slots: %w", err)
	}

	available := make([]model.Slot, 0)
	for _, slot := range s.expandTemplate() {
		if slot.Overlaps(s.template.LunchStart, s.template.LunchEnd) {
			continue
		}
		if conflicts(slot, appointments) {
			continue
		}
		available = append(available, slot)
	}
	return available, nil
}

// expandTemplate generates every fixed-length slot between opening and
// closing time. The closing boundary is exclusive: a slot that would end
// after closing is not generated.
func (s *Service) expandTemplate() []model.Slot {
	var slots []model.Slot
	for start := s.template.Start; start.Add(s.template.SlotDuration) <= s.template.End; start = start.Add(s.template.SlotDuration) {
		slots = append(slots, model.Slot{
			Start: start,
			End:   start.Add(s.template.SlotDuration),
		})
	}
	return slots
}

func conflicts(slot model.Slot, appointments []*model.Appointment) bool {
	for _, apt := range appointments {
		if slot.Overlaps(apt.Start, apt.End) {
			return true
		}
	}
	return false
}
