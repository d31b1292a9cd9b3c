package model

import "fmt"

// DaySchedule is the working-hours template shared by all doctors: opening
// and closing times, one lunch blackout and a fixed slot length.
type DaySchedule struct {
	Start        TimeOfDay `json:"start_time"`
	End          TimeOfDay `json:"end_time"`
	LunchStart   TimeOfDay `json:"lunch_start"`
	LunchEnd     TimeOfDay `json:"lunch_end"`
	SlotDuration int       `json:"slot_duration_minutes"`
}

// Validate checks the template invariants at load time.
func (s DaySchedule) Validate() error {
	if !s.Start.Valid() || !s.End.Valid() || s.Start >= s.End {
		return fmt.Errorf("working hours %s-%s are invalid", s.Start, s.End)
	}
	if s.LunchStart >= s.LunchEnd {
		return fmt.Errorf("lunch %s-%s is invalid", s.LunchStart, s.LunchEnd)
	}
	if s.LunchStart < s.Start || s.LunchEnd > s.End {
		return fmt.Errorf("lunch %s-%s falls outside working hours %s-%s",
			s.LunchStart, s.LunchEnd, s.Start, s.End)
	}
	if s.SlotDuration <= 0 {
		return fmt.Errorf("slot duration must be positive, got %d", s.SlotDuration)
	}
	return nil
}

// Slot is a derived bookable interval, half-open [Start, End).
type Slot struct {
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
}

// Overlaps reports whether two half-open intervals intersect.
func (s Slot) Overlaps(start, end TimeOfDay) bool {
	return s.Start < end && start < s.End
}
