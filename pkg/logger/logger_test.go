package logger_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jwalitptl/clinic-voice-api/pkg/logger"
)

func newBufferLogger() (*logger.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	log := logger.NewLogger(&logger.Config{
		Level:      logger.DebugLevel,
		TimeFormat: time.RFC3339,
		Output:     &buf,
	})
	return log, &buf
}

func TestInfoEmitsAllFields(t *testing.T) {
	log, buf := newBufferLogger()

	log.Info("appointment booked", logger.Fields{
		"doctor":  "Dr. Nair",
		"patient": "Asha Rao",
		"slot":    "14:00",
	})

	out := buf.String()
	assert.Contains(t, out, "appointment booked")
	assert.Contains(t, out, "doctor=")
	assert.Contains(t, out, "Dr. Nair")
	assert.Contains(t, out, "patient=")
	assert.Contains(t, out, "Asha Rao")
	assert.Contains(t, out, "slot=14:00")
}

func TestInfoWithoutFields(t *testing.T) {
	log, buf := newBufferLogger()

	log.Info("plain message")
	assert.Contains(t, buf.String(), "plain message")
}

func TestWithFields(t *testing.T) {
	log, buf := newBufferLogger()

	log.WithFields(logger.Fields{"store": "file"}).Warn("store slow")

	out := buf.String()
	assert.Contains(t, out, "store slow")
	assert.Contains(t, out, "store=file")
}

func TestErrorCarriesErrAndFields(t *testing.T) {
	log, buf := newBufferLogger()

	log.Error(errors.New("disk full"), "append failed", logger.Fields{"path": "appointments.json"})

	out := buf.String()
	assert.Contains(t, out, "append failed")
	assert.Contains(t, out, "disk full")
	assert.Contains(t, out, "path=appointments.json")
}
