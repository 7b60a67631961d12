package server

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Nhat-School/F1-Demo/internal/config"
	"github.com/Nhat-School/F1-Demo/internal/metrics"
)

// Server is the HTTP server for the championship API.
type Server struct {
	httpServer *http.Server
	log        *logrus.Logger
}

// New creates the API server with all routes registered.
func New(cfg *config.Config, h *Handlers, log *logrus.Logger) *Server {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/teams", h.CreateTeam)
	mux.HandleFunc("GET /api/teams", h.ListTeams)
	mux.HandleFunc("GET /api/teams/{id}", h.GetTeam)
	mux.HandleFunc("PUT /api/teams/{id}", h.UpdateTeam)
	mux.HandleFunc("DELETE /api/teams/{id}", h.DeleteTeam)

	mux.HandleFunc("POST /api/racers", h.CreateRacer)
	mux.HandleFunc("GET /api/racers", h.ListRacers)
	mux.HandleFunc("GET /api/racers/{id}", h.GetRacer)
	mux.HandleFunc("PUT /api/racers/{id}", h.UpdateRacer)
	mux.HandleFunc("DELETE /api/racers/{id}", h.DeleteRacer)

	mux.HandleFunc("POST /api/races", h.CreateRace)
	mux.HandleFunc("GET /api/races", h.ListRaces)
	mux.HandleFunc("GET /api/races/{id}", h.GetRace)
	mux.HandleFunc("PUT /api/races/{id}", h.UpdateRace)
	mux.HandleFunc("DELETE /api/races/{id}", h.DeleteRace)

	mux.HandleFunc("POST /api/races/{id}/registrations", h.CreateRegistration)
	mux.HandleFunc("GET /api/races/{id}/registrations", h.ListRegistrations)
	mux.HandleFunc("DELETE /api/registrations/{id}", h.DeleteRegistration)

	mux.HandleFunc("POST /api/races/{id}/results", h.SubmitResults)
	mux.HandleFunc("GET /api/races/{id}/results", h.GetRaceResults)

	mux.HandleFunc("GET /api/standings", h.GetStandings)
	mux.HandleFunc("GET /api/standings/racers/{id}", h.GetRacerStanding)
	mux.HandleFunc("GET /api/standings/teams/{id}", h.GetTeamStanding)
	mux.HandleFunc("POST /api/standings/refresh", h.RefreshStandings)

	if cfg.Metrics.Enabled {
		path := cfg.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		mux.Handle("GET "+path, metrics.Handler())
	}

	var handler http.Handler = mux
	handler = RateLimitMiddleware(cfg.Server.RateLimitPerSecond, cfg.Server.RateLimitBurst)(handler)
	handler = LoggingMiddleware(log)(handler)

	return &Server{
		httpServer: &http.Server{
			Addr:         cfg.ListenAddr(),
			Handler:      handler,
			ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
			WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		log: log,
	}
}

// Run starts the HTTP server. It blocks until the context is cancelled or
// the listener fails.
func (s *Server) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)

	go func() {
		s.log.WithField("addr", s.httpServer.Addr).Info("API server starting")
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.log.Info("API server shutting down")
		return s.httpServer.Shutdown(shutdownCtx)
	}
}
