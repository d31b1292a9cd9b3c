package booking_test

import (
	"bytes"
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-voice-api/internal/model"
	"github.com/jwalitptl/clinic-voice-api/internal/repository"
	"github.com/jwalitptl/clinic-voice-api/internal/repository/file"
	"github.com/jwalitptl/clinic-voice-api/internal/service/availability"
	"github.com/jwalitptl/clinic-voice-api/internal/service/booking"
	apperrors "github.com/jwalitptl/clinic-voice-api/pkg/errors"
	"github.com/jwalitptl/clinic-voice-api/pkg/logger"
)

func newServices(t *testing.T) (*booking.Service, *availability.Service, repository.AppointmentRepository) {
	t.Helper()

	roster, err := model.NewRoster([]model.Doctor{
		{Name: "Dr. Nair", Days: []time.Weekday{time.Monday, time.Wednesday, time.Friday}},
	})
	require.NoError(t, err)

	template := model.DaySchedule{
		Start:        model.MustTimeOfDay("09:00"),
		End:          model.MustTimeOfDay("18:00"),
		LunchStart:   model.MustTimeOfDay("13:00"),
		LunchEnd:     model.MustTimeOfDay("14:00"),
		SlotDuration: 30,
	}

	repo, err := file.NewStore(filepath.Join(t.TempDir(), "appointments.json"))
	require.NoError(t, err)

	avail := availability.NewService(roster, template, repo)
	return booking.NewService(avail, repo, nil), avail, repo
}

func nextFriday() time.Time {
	return model.NextWeekday(time.Now(), time.Friday)
}

func TestBookConfirmsAndPersists(t *testing.T) {
	svc, avail, repo := newServices(t)
	ctx := context.Background()
	friday := nextFriday()

	apt, err := svc.Book(ctx, "Dr. Nair", friday, model.MustTimeOfDay("14:00"), "Asha Rao")
	require.NoError(t, err)

	assert.Equal(t, "Dr. Nair", apt.Doctor)
	assert.Equal(t, friday.Format(model.DateFormat), apt.Date)
	assert.Equal(t, "14:00", apt.Start.String())
	assert.Equal(t, "14:30", apt.End.String())
	assert.Equal(t, "Asha Rao", apt.Patient)
	assert.NotEqual(t, apt.ID.String(), "00000000-0000-0000-0000-000000000000")

	// Read-your-writes: the slot disappears from availability.
	slots, err := avail.Slots(ctx, "Dr. Nair", friday)
	require.NoError(t, err)
	assert.Len(t, slots, 15)
	for _, slot := range slots {
		assert.NotEqual(t, "14:00", slot.Start.String())
	}

	stored, err := repo.ListForDoctorDate(ctx, "Dr. Nair", apt.Date)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, apt.ID, stored[0].ID)
}

func TestBookSameSlotTwiceFails(t *testing.T) {
	svc, _, _ := newServices(t)
	ctx := context.Background()
	friday := nextFriday()

	_, err := svc.Book(ctx, "Dr. Nair", friday, model.MustTimeOfDay("10:00"), "Asha Rao")
	require.NoError(t, err)

	_, err = svc.Book(ctx, "Dr. Nair", friday, model.MustTimeOfDay("10:00"), "Vikram Shah")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrSlotUnavailable, apperrors.CodeOf(err))

	// A different slot the same day still books.
	_, err = svc.Book(ctx, "Dr. Nair", friday, model.MustTimeOfDay("10:30"), "Vikram Shah")
	assert.NoError(t, err)
}

func TestBookValidation(t *testing.T) {
	svc, _, _ := newServices(t)
	ctx := context.Background()
	friday := nextFriday()

	tests := []struct {
		name    string
		doctor  string
		date    time.Time
		start   model.TimeOfDay
		patient string
		code    apperrors.ErrorCode
	}{
		{"empty patient", "Dr. Nair", friday, model.MustTimeOfDay("10:00"), "", apperrors.ErrInvalidInput},
		{"whitespace patient", "Dr. Nair", friday, model.MustTimeOfDay("10:00"), "   ", apperrors.ErrInvalidInput},
		{"past date", "Dr. Nair", time.Now().AddDate(0, 0, -1), model.MustTimeOfDay("10:00"), "Asha Rao", apperrors.ErrInvalidInput},
		{"unknown doctor", "Dr. Who", friday, model.MustTimeOfDay("10:00"), "Asha Rao", apperrors.ErrUnknownDoctor},
		{"non-working weekday", "Dr. Nair", model.NextWeekday(time.Now(), time.Tuesday), model.MustTimeOfDay("10:00"), "Asha Rao", apperrors.ErrDoctorNotWorking},
		{"lunch slot", "Dr. Nair", friday, model.MustTimeOfDay("13:00"), "Asha Rao", apperrors.ErrSlotUnavailable},
		{"straddles lunch", "Dr. Nair", friday, model.MustTimeOfDay("13:30"), "Asha Rao", apperrors.ErrSlotUnavailable},
		{"before opening", "Dr. Nair", friday, model.MustTimeOfDay("08:30"), "Asha Rao", apperrors.ErrSlotUnavailable},
		{"at closing", "Dr. Nair", friday, model.MustTimeOfDay("18:00"), "Asha Rao", apperrors.ErrSlotUnavailable},
		{"would end after closing", "Dr. Nair", friday, model.MustTimeOfDay("17:45"), "Asha Rao", apperrors.ErrSlotUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Book(ctx, tt.doctor, tt.date, tt.start, tt.patient)
			require.Error(t, err)
			assert.Equal(t, tt.code, apperrors.CodeOf(err))
		})
	}
}

func TestBookWritesAuditLogWithFields(t *testing.T) {
	roster, err := model.NewRoster([]model.Doctor{
		{Name: "Dr. Nair", Days: []time.Weekday{time.Monday, time.Wednesday, time.Friday}},
	})
	require.NoError(t, err)

	template := model.DaySchedule{
		Start:        model.MustTimeOfDay("09:00"),
		End:          model.MustTimeOfDay("18:00"),
		LunchStart:   model.MustTimeOfDay("13:00"),
		LunchEnd:     model.MustTimeOfDay("14:00"),
		SlotDuration: 30,
	}

	repo, err := file.NewStore(filepath.Join(t.TempDir(), "appointments.json"))
	require.NoError(t, err)

	var buf bytes.Buffer
	log := logger.NewLogger(&logger.Config{
		Level:      logger.InfoLevel,
		TimeFormat: time.RFC3339,
		Output:     &buf,
	})

	avail := availability.NewService(roster, template, repo)
	svc := booking.NewService(avail, repo, log)

	_, err = svc.Book(context.Background(), "Dr. Nair", nextFriday(), model.MustTimeOfDay("14:00"), "Asha Rao")
	require.NoError(t, err)

	// The audit record must carry the booking fields, not just the message.
	out := buf.String()
	assert.Contains(t, out, "appointment booked")
	assert.Contains(t, out, "Dr. Nair")
	assert.Contains(t, out, "Asha Rao")
	assert.Contains(t, out, "slot=14:00")
	assert.Contains(t, out, "date="+nextFriday().Format(model.DateFormat))
}

func TestConcurrentBookingsOneWinner(t *testing.T) {
	svc, _, repo := newServices(t)
	ctx := context.Background()
	friday := nextFriday()
	start := model.MustTimeOfDay("11:00")

	const callers = 8
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Book(ctx, "Dr. Nair", friday, start, "Caller")
		}(i)
	}
	wg.Wait()

	won := 0
	for _, err := range errs {
		if err == nil {
			won++
		} else {
			assert.Equal(t, apperrors.ErrSlotUnavailable, apperrors.CodeOf(err))
		}
	}
	assert.Equal(t, 1, won, "exactly one concurrent booking must succeed")

	stored, err := repo.ListForDoctorDate(ctx, "Dr. Nair", friday.Format(model.DateFormat))
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestCancelAndClear(t *testing.T) {
	svc, avail, _ := newServices(t)
	ctx := context.Background()
	friday := nextFriday()

	apt, err := svc.Book(ctx, "Dr. Nair", friday, model.MustTimeOfDay("09:00"), "Asha Rao")
	require.NoError(t, err)
	_, err = svc.Book(ctx, "Dr. Nair", friday, model.MustTimeOfDay("09:30"), "Vikram Shah")
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, apt.ID))
	slots, err := avail.Slots(ctx, "Dr. Nair", friday)
	require.NoError(t, err)
	assert.Len(t, slots, 15)

	require.NoError(t, svc.Clear(ctx))
	slots, err = avail.Slots(ctx, "Dr. Nair", friday)
	require.NoError(t, err)
	assert.Len(t, slots, 16)

	all, err := svc.Appointments(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
