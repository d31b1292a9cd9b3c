package router

import (
	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-voice-api/internal/middleware"
	"github.com/jwalitptl/clinic-voice-api/pkg/metrics"
)

// Handler registers its routes on a gin group.
type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

type Config struct {
	RateLimitRPS   float64
	RateLimitBurst int
	CORS           middleware.CORSConfig
}

type Router struct {
	engine       *gin.Engine
	webhookH     Handler
	appointmentH Handler
	clinicH      Handler
	healthH      Handler
	metrics      *metrics.Metrics
}

func NewRouter(
	config Config,
	m *metrics.Metrics,
	webhookH Handler,
	appointmentH Handler,
	clinicH Handler,
	healthH Handler,
) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Metrics(m),
		middleware.CORS(config.CORS),
	)

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		RPS:   config.RateLimitRPS,
		Burst: config.RateLimitBurst,
	})
	engine.Use(rateLimiter.RateLimit())

	return &Router{
		engine:       engine,
		webhookH:     webhookH,
		appointmentH: appointmentH,
		clinicH:      clinicH,
		healthH:      healthH,
		metrics:      m,
	}
}

func (r *Router) Setup() {
	root := r.engine.Group("")

	r.healthH.RegisterRoutes(root)
	r.clinicH.RegisterRoutes(root)
	r.appointmentH.RegisterRoutes(root)
	r.webhookH.RegisterRoutes(root)

	r.engine.GET("/metrics", r.metrics.Handler())
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
