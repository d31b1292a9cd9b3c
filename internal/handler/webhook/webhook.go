package webhook

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/jwalitptl/clinic-voice-api/internal/model"
	"github.com/jwalitptl/clinic-voice-api/internal/service/availability"
	"github.com/jwalitptl/clinic-voice-api/internal/service/booking"
	apperrors "github.com/jwalitptl/clinic-voice-api/pkg/errors"
	"github.com/jwalitptl/clinic-voice-api/pkg/httputil"
	"github.com/jwalitptl/clinic-voice-api/pkg/metrics"
)

// Handler serves the two webhook endpoints the voice platform calls. The
// "response" field in every payload is the sentence the agent speaks.
type Handler struct {
	avail   *availability.Service
	booking *booking.Service
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewHandler(avail *availability.Service, bookingSvc *booking.Service, m *metrics.Metrics) *Handler {
	return &Handler{
		avail:   avail,
		booking: bookingSvc,
		metrics: m,
		now:     time.Now,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	wh := r.Group("/webhook")
	{
		wh.POST("/check_availability", h.CheckAvailability)
		wh.POST("/book_appointment", h.BookAppointment)
	}
}

func (h *Handler) CheckAvailability(c *gin.Context) {
	var req model.CheckAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.countCheck(apperrors.ErrInvalidInput)
		httputil.RespondWithError(c, bindError(err))
		return
	}

	date, err := h.resolveDate(req.Date, req.Day)
	if err != nil {
		h.countCheck(apperrors.CodeOf(err))
		httputil.RespondWithError(c, err)
		return
	}

	slots, err := h.avail.Slots(c.Request.Context(), req.Doctor, date)
	if err != nil {
		h.countCheck(apperrors.CodeOf(err))
		httputil.RespondWithError(c, err)
		return
	}
	h.countCheck("ok")

	starts := make([]string, 0, len(slots))
	for _, slot := range slots {
		starts = append(starts, slot.Start.String())
	}

	httputil.RespondWithSuccess(c, model.AvailabilityResponse{
		Doctor:    req.Doctor,
		Date:      date.Format(model.DateFormat),
		Day:       date.Weekday().String(),
		Available: starts,
		Response:  h.availabilityPhrase(req.Doctor, date, slots),
	})
}

func (h *Handler) BookAppointment(c *gin.Context) {
	var req model.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.countBooking(apperrors.ErrInvalidInput)
		httputil.RespondWithError(c, bindError(err))
		return
	}

	date, err := h.resolveDate(req.Date, req.Day)
	if err != nil {
		h.countBooking(apperrors.CodeOf(err))
		httputil.RespondWithError(c, err)
		return
	}

	start, err := model.ParseTimeOfDay(req.Time)
	if err != nil {
		h.countBooking(apperrors.ErrInvalidInput)
		httputil.RespondWithError(c, apperrors.InvalidInput("time must be in 24-hour HH:MM format", err))
		return
	}

	appointment, err := h.booking.Book(c.Request.Context(), req.Doctor, date, start, req.PatientName)
	if err != nil {
		h.countBooking(apperrors.CodeOf(err))
		httputil.RespondWithError(c, err)
		return
	}
	h.countBooking("confirmed")

	httputil.RespondWithSuccess(c, model.BookingResponse{
		Status:      "confirmed",
		Appointment: appointment,
		Response:    h.confirmationPhrase(appointment, date),
	})
}

// resolveDate turns the request into a calendar date: an explicit date wins,
// a bare weekday name means its next occurrence counted from today.
func (h *Handler) resolveDate(dateStr, dayStr string) (time.Time, error) {
	if dateStr != "" {
		date, err := model.ParseDate(dateStr)
		if err != nil {
			return time.Time{}, apperrors.InvalidInput(err.Error(), nil)
		}
		return date, nil
	}
	if dayStr != "" {
		wd, err := model.ParseWeekday(dayStr)
		if err != nil {
			return time.Time{}, apperrors.InvalidInput(err.Error(), nil)
		}
		return model.NextWeekday(h.now(), wd), nil
	}
	return time.Time{}, apperrors.InvalidInput("a date or day is required", nil)
}

// bindError names the missing or malformed fields instead of echoing the
// binder's internal message.
func bindError(err error) error {
	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		fields := make([]string, 0, len(verr))
		for _, fe := range verr {
			fields = append(fields, strings.ToLower(fe.Field()))
		}
		return apperrors.InvalidInput(
			fmt.Sprintf("missing or invalid fields: %s", strings.Join(fields, ", ")), err)
	}
	return apperrors.InvalidInput("malformed request body", err)
}

func (h *Handler) countCheck(outcome apperrors.ErrorCode) {
	if h.metrics != nil {
		h.metrics.AvailabilityChecks.WithLabelValues(string(outcome)).Inc()
	}
}

func (h *Handler) countBooking(outcome apperrors.ErrorCode) {
	if h.metrics != nil {
		h.metrics.Bookings.WithLabelValues(string(outcome)).Inc()
	}
}
