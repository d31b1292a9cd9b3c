package webhook

import (
	"fmt"
	"time"

	"github.com/jwalitptl/clinic-voice-api/internal/model"
)

// Spoken-sentence builders. The phrasing follows what the voice agent is
// prompted to expect, so changes here must stay conversational.

func (h *Handler) availabilityPhrase(doctor string, date time.Time, slots []model.Slot) string {
	day := date.Weekday().String()

	if doc, ok := h.avail.Roster().Get(doctor); ok && !doc.WorksOn(date.Weekday()) {
		return fmt.Sprintf("I'm sorry, %s is not in on %s. Would you like to try another day?", doctor, day)
	}
	if len(slots) == 0 {
		return fmt.Sprintf("I'm sorry, %s is fully booked on %s. Would you like to try another day?", doctor, day)
	}
	return fmt.Sprintf("%s is available on %s from %s to %s. What time would you like to book?",
		doctor, day, slots[0].Start, slots[len(slots)-1].Start)
}

func (h *Handler) confirmationPhrase(appointment *model.Appointment, date time.Time) string {
	return fmt.Sprintf("Perfect! I've booked your appointment with %s on %s at %s. Is there anything else I can help you with?",
		appointment.Doctor, formatDateOrdinal(date), appointment.Start)
}

// formatDateOrdinal renders a date as e.g. "4th Nov 2025".
func formatDateOrdinal(date time.Time) string {
	return fmt.Sprintf("%s %s %d", ordinal(date.Day()), date.Format("Jan"), date.Year())
}

func ordinal(n int) string {
	if n%100 >= 10 && n%100 <= 20 {
		return fmt.Sprintf("%dth", n)
	}
	switch n % 10 {
	case 1:
		return fmt.Sprintf("%dst", n)
	case 2:
		return fmt.Sprintf("%dnd", n)
	case 3:
		return fmt.Sprintf("%drd", n)
	default:
		return fmt.Sprintf("%dth", n)
	}
}
