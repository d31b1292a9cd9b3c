package clinic

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-voice-api/internal/service/clinic"
	apperrors "github.com/jwalitptl/clinic-voice-api/pkg/errors"
	"github.com/jwalitptl/clinic-voice-api/pkg/httputil"
)

const serviceVersion = "1.0.0"

// Handler serves the static clinic information endpoints the voice agent
// reads before and during a call.
type Handler struct {
	service *clinic.Service
}

func NewHandler(service *clinic.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/", h.Root)
	r.GET("/today", h.Today)
	r.GET("/knowledge_base", h.KnowledgeBase)
	r.GET("/schedules", h.Schedules)
}

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "Clinic Voice Agent Backend",
		"version": serviceVersion,
	})
}

func (h *Handler) Today(c *gin.Context) {
	httputil.RespondWithSuccess(c, h.service.Today())
}

func (h *Handler) KnowledgeBase(c *gin.Context) {
	kb, err := h.service.KnowledgeBase()
	if err != nil {
		httputil.RespondWithError(c, apperrors.Internal(err))
		return
	}
	c.Data(http.StatusOK, "application/json", kb)
}

func (h *Handler) Schedules(c *gin.Context) {
	httputil.RespondWithSuccess(c, h.service.Schedules())
}
