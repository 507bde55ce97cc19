package api

import (
	"net/http"

	"dailies/internal/config"
	"dailies/internal/database"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type Server struct {
	config  *config.Config
	store   *database.Store
	logger  *zap.Logger
	metrics *Metrics
}

func NewServer(cfg *config.Config, store *database.Store, logger *zap.Logger) *Server {
	return &Server{
		config:  cfg,
		store:   store,
		logger:  logger,
		metrics: NewMetrics(),
	}
}

// Routes builds the HTTP handler. Path ids only match decimal digits; any
// other id falls through to the JSON 404.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(s.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.RequestLogger)
	r.Use(s.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.config.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Get("/health", s.HealthCheckHandler)
	r.Handle("/metrics", s.metrics.Handler())

	r.Post("/user", s.CreateUserHandler)
	r.Route("/user/{userId:[0-9]+}", func(r chi.Router) {
		r.Get("/", s.GetUserHandler)
		r.Put("/", s.UpdateUserHandler)
		r.Post("/habit", s.CreateHabitHandler)
		r.Put("/habit/{habitId:[0-9]+}", s.UpdateHabitHandler)
	})

	return r
}
