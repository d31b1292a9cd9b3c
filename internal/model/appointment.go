package model

import (
	"time"

	"github.com/google/uuid"
)

// Appointment is one booked slot. Records are append-only: they are never
// mutated after creation.
type Appointment struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Doctor    string    `db:"doctor" json:"doctor"`
	Date      string    `db:"date" json:"date"`
	Start     TimeOfDay `db:"start_min" json:"start_time"`
	End       TimeOfDay `db:"end_min" json:"end_time"`
	Patient   string    `db:"patient" json:"patient"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// CheckAvailabilityRequest is the check_availability webhook payload. The
// caller supplies either an explicit date or a weekday name.
type CheckAvailabilityRequest struct {
	Doctor string `json:"doctor" binding:"required"`
	Date   string `json:"date"`
	Day    string `json:"day"`
}

// BookAppointmentRequest is the book_appointment webhook payload.
type BookAppointmentRequest struct {
	Doctor      string `json:"doctor" binding:"required"`
	Date        string `json:"date"`
	Day         string `json:"day"`
	Time        string `json:"time" binding:"required"`
	PatientName string `json:"patient_name" binding:"required"`
}

// AvailabilityResponse is returned by the check_availability webhook.
// Response carries the sentence the voice agent reads to the caller.
type AvailabilityResponse struct {
	Doctor    string   `json:"doctor"`
	Date      string   `json:"date"`
	Day       string   `json:"day"`
	Available []string `json:"available_slots"`
	Response  string   `json:"response"`
}

// BookingResponse is returned by the book_appointment webhook.
type BookingResponse struct {
	Status      string       `json:"status"`
	Appointment *Appointment `json:"appointment"`
	Response    string       `json:"response"`
}
