package file_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-voice-api/internal/model"
	"github.com/jwalitptl/clinic-voice-api/internal/repository"
	"github.com/jwalitptl/clinic-voice-api/internal/repository/file"
	apperrors "github.com/jwalitptl/clinic-voice-api/pkg/errors"
)

func newStore(t *testing.T) (repository.AppointmentRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "appointments.json")
	store, err := file.NewStore(path)
	require.NoError(t, err)
	return store, path
}

func appointment(doctor, date, start string) *model.Appointment {
	s := model.MustTimeOfDay(start)
	return &model.Appointment{
		ID:        uuid.New(),
		Doctor:    doctor,
		Date:      date,
		Start:     s,
		End:       s.Add(30),
		Patient:   "Asha Rao",
		CreatedAt: time.Now(),
	}
}

func TestMissingFileReadsEmpty(t *testing.T) {
	store, _ := newStore(t)

	all, err := store.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.NoError(t, store.Ping(context.Background()))
}

func TestAppendIsImmediatelyVisible(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	apt := appointment("Dr. Nair", "2026-09-04", "14:00")
	require.NoError(t, store.Append(ctx, apt))

	booked, err := store.ListForDoctorDate(ctx, "Dr. Nair", "2026-09-04")
	require.NoError(t, err)
	require.Len(t, booked, 1)
	assert.Equal(t, apt.ID, booked[0].ID)
	assert.Equal(t, "14:00", booked[0].Start.String())

	// Different doctor and different date both miss.
	other, err := store.ListForDoctorDate(ctx, "Dr. Mehta", "2026-09-04")
	require.NoError(t, err)
	assert.Empty(t, other)

	other, err = store.ListForDoctorDate(ctx, "Dr. Nair", "2026-09-05")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestAppendSurvivesReopen(t *testing.T) {
	store, path := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, appointment("Dr. Nair", "2026-09-04", "09:00")))
	require.NoError(t, store.Append(ctx, appointment("Dr. Nair", "2026-09-04", "09:30")))

	reopened, err := file.NewStore(path)
	require.NoError(t, err)

	all, err := reopened.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDelete(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	apt := appointment("Dr. Nair", "2026-09-04", "10:00")
	require.NoError(t, store.Append(ctx, apt))

	err := store.Delete(ctx, uuid.New())
	assert.Equal(t, apperrors.ErrNotFound, apperrors.CodeOf(err))

	require.NoError(t, store.Delete(ctx, apt.ID))
	all, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestClear(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, appointment("Dr. Nair", "2026-09-04", "10:00")))
	require.NoError(t, store.Append(ctx, appointment("Dr. Mehta", "2026-09-05", "11:00")))
	require.NoError(t, store.Clear(ctx))

	all, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
