package model

import (
	"fmt"
	"time"
)

// Doctor is a roster entry: a name and the weekdays the doctor sees
// patients. The roster is loaded from configuration and never mutated
// at runtime.
type Doctor struct {
	Name string         `json:"name"`
	Days []time.Weekday `json:"-"`
}

// WorksOn reports whether the doctor is scheduled for the given weekday.
func (d Doctor) WorksOn(wd time.Weekday) bool {
	for _, day := range d.Days {
		if day == wd {
			return true
		}
	}
	return false
}

// DayNames returns the working days as strings, in roster order.
func (d Doctor) DayNames() []string {
	names := make([]string, 0, len(d.Days))
	for _, day := range d.Days {
		names = append(names, day.String())
	}
	return names
}

// Roster is the immutable doctor directory, keyed by name.
type Roster struct {
	byName map[string]Doctor
	names  []string
}

// NewRoster builds a roster and rejects duplicate doctor names, since the
// name is the booking key.
func NewRoster(doctors []Doctor) (*Roster, error) {
	r := &Roster{byName: make(map[string]Doctor, len(doctors))}
	for _, d := range doctors {
		if d.Name == "" {
			return nil, fmt.Errorf("doctor with empty name in roster")
		}
		if _, exists := r.byName[d.Name]; exists {
			return nil, fmt.Errorf("duplicate doctor %q in roster", d.Name)
		}
		r.byName[d.Name] = d
		r.names = append(r.names, d.Name)
	}
	return r, nil
}

// Get looks up a doctor by name.
func (r *Roster) Get(name string) (Doctor, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// Doctors returns all roster entries in configuration order.
func (r *Roster) Doctors() []Doctor {
	doctors := make([]Doctor, 0, len(r.names))
	for _, name := range r.names {
		doctors = append(doctors, r.byName[name])
	}
	return doctors
}
