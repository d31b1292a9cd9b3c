package appointment

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jwalitptl/clinic-voice-api/internal/service/booking"
	apperrors "github.com/jwalitptl/clinic-voice-api/pkg/errors"
	"github.com/jwalitptl/clinic-voice-api/pkg/httputil"
)

// Handler is the admin surface over the appointment store: listing and
// cleanup. Bookings only ever enter through the webhook.
type Handler struct {
	service *booking.Service
}

func NewHandler(service *booking.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	appointments := r.Group("/appointments")
	{
		appointments.GET("", h.ListAppointments)
		appointments.DELETE("/:id", h.DeleteAppointment)
		appointments.DELETE("", h.ClearAppointments)
	}
}

func (h *Handler) ListAppointments(c *gin.Context) {
	appointments, err := h.service.Appointments(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, appointments)
}

func (h *Handler) DeleteAppointment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.InvalidInput("invalid appointment ID", err))
		return
	}

	if err := h.service.Cancel(c.Request.Context(), id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, gin.H{"deleted": id})
}

func (h *Handler) ClearAppointments(c *gin.Context) {
	if err := h.service.Clear(c.Request.Context()); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, gin.H{"message": "all appointments cleared"})
}
