// Package server provides the REST API on top of the service layer.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"

	"github.com/lapwise/lapwise-go/log"
	"github.com/lapwise/lapwise-go/pkg/service"
)

type (
	Server struct {
		pool        *pgxpool.Pool
		apiKey      string
		corsOrigins []string
		l           *log.Logger

		seasons  *service.SeasonService
		profiles *service.ProfileService
		charts   *service.ChartService
	}
	Option func(*Server)
)

func NewServer(opts ...Option) *Server {
	ret := &Server{
		l: log.Default().Named("server"),
	}
	for _, opt := range opts {
		opt(ret)
	}
	ret.seasons = service.NewSeasonService(ret.pool)
	ret.profiles = service.NewProfileService(ret.pool)
	ret.charts = service.NewChartService(ret.seasons)
	return ret
}

func WithPool(pool *pgxpool.Pool) Option {
	return func(srv *Server) {
		srv.pool = pool
	}
}

func WithAPIKey(key string) Option {
	return func(srv *Server) {
		srv.apiKey = key
	}
}

func WithCORSOrigins(origins []string) Option {
	return func(srv *Server) {
		srv.corsOrigins = origins
	}
}

func WithLogger(l *log.Logger) Option {
	return func(srv *Server) {
		srv.l = l
	}
}

// Handler builds the complete route tree. Everything below /api requires
// the configured API key.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)
	r.Use(s.newCORS().Handler)

	r.Get("/", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Use(s.requireAPIKey)

		r.Route("/season-results", func(r chi.Router) {
			r.Get("/seasons", s.handleSeasons)
			r.Route("/{season}", func(r chi.Router) {
				r.Get("/", s.handleSeasonRounds)
				r.Get("/standings", s.handleStandings)
				r.Get("/points-progression", s.handlePointsProgression)
				r.Get("/points-progression/chart", s.handleProgressionChart)
				r.Route("/{round}", func(r chi.Router) {
					r.Get("/", s.handleRaceResults)
					r.Get("/sprint", s.handleSprintResults)
					r.Get("/lap-times", s.handleRaceLapTimes)
					r.Get("/sprint/lap-times", s.handleSprintLapTimes)
					r.Get("/lap-times/chart", s.handleLapChart)
					r.Get("/weather", s.handleWeather)
					r.Get("/race-control", s.handleRaceControl)
				})
			})
		})

		r.Route("/drivers/{code}", func(r chi.Router) {
			r.Get("/", s.handleDriverProfile)
			r.Get("/season-history", s.handleDriverSeasonHistory)
			r.Get("/race-history", s.handleDriverRaceHistory)
		})

		r.Route("/constructors/{name}", func(r chi.Router) {
			r.Get("/", s.handleConstructorProfile)
			r.Get("/season-history", s.handleConstructorSeasonHistory)
			r.Get("/race-history", s.handleConstructorRaceHistory)
		})
	})
	return r
}

func (s *Server) newCORS() *cors.Cors {
	if len(s.corsOrigins) == 0 {
		return cors.New(cors.Options{
			AllowedMethods: []string{http.MethodHead, http.MethodGet},
			AllowOriginFunc: func(origin string) bool {
				return true
			},
			AllowedHeaders: []string{"*"},
			MaxAge:         7200,
		})
	}
	return cors.New(cors.Options{
		AllowedMethods: []string{http.MethodHead, http.MethodGet},
		AllowedOrigins: s.corsOrigins,
		AllowedHeaders: []string{"*"},
		MaxAge:         7200,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
