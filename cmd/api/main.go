package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/clinic-voice-api/internal/config"
	appointmentHandler "github.com/jwalitptl/clinic-voice-api/internal/handler/appointment"
	clinicHandler "github.com/jwalitptl/clinic-voice-api/internal/handler/clinic"
	healthHandler "github.com/jwalitptl/clinic-voice-api/internal/handler/health"
	webhookHandler "github.com/jwalitptl/clinic-voice-api/internal/handler/webhook"
	"github.com/jwalitptl/clinic-voice-api/internal/middleware"
	"github.com/jwalitptl/clinic-voice-api/internal/repository"
	fileStore "github.com/jwalitptl/clinic-voice-api/internal/repository/file"
	"github.com/jwalitptl/clinic-voice-api/internal/repository/postgres"
	"github.com/jwalitptl/clinic-voice-api/internal/router"
	availabilityService "github.com/jwalitptl/clinic-voice-api/internal/service/availability"
	bookingService "github.com/jwalitptl/clinic-voice-api/internal/service/booking"
	clinicService "github.com/jwalitptl/clinic-voice-api/internal/service/clinic"
	"github.com/jwalitptl/clinic-voice-api/pkg/logger"
	"github.com/jwalitptl/clinic-voice-api/pkg/metrics"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	template, err := cfg.DaySchedule()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid schedule configuration")
	}

	roster, err := cfg.Roster()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid doctor roster")
	}

	repo, err := newAppointmentStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open appointment store")
	}

	appLogger := logger.NewLogger(nil)

	// Services
	availabilitySvc := availabilityService.NewService(roster, template, repo)
	bookingSvc := bookingService.NewService(availabilitySvc, repo, appLogger)
	clinicSvc := clinicService.NewService(
		cfg.KnowledgeBase.Path,
		cfg.KnowledgeBase.CacheTTL,
		roster,
		template,
	)

	// Handlers
	m := metrics.New()
	webhookH := webhookHandler.NewHandler(availabilitySvc, bookingSvc, m)
	appointmentH := appointmentHandler.NewHandler(bookingSvc)
	clinicH := clinicHandler.NewHandler(clinicSvc)
	healthH := healthHandler.NewHandler(repo)

	r := router.NewRouter(
		router.Config{
			RateLimitRPS:   cfg.RateLimit.RPS,
			RateLimitBurst: cfg.RateLimit.Burst,
			CORS:           middleware.DefaultCORSConfig(),
		},
		m,
		webhookH,
		appointmentH,
		clinicH,
		healthH,
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Str("store", cfg.Store.Driver).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}

func newAppointmentStore(cfg *config.Config) (repository.AppointmentRepository, error) {
	switch cfg.Store.Driver {
	case "", "file":
		return fileStore.NewStore(cfg.Store.File.Path)
	case "postgres":
		db, err := postgres.NewDB(cfg.Store.Postgres)
		if err != nil {
			return nil, err
		}
		return postgres.NewAppointmentRepository(db), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
