package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/goccy/go-json"

	"github.com/belphemur/choghadiya/internal/config"
	"github.com/belphemur/choghadiya/internal/logging"
)

// RouteRegistrar is implemented by every handler group
type RouteRegistrar interface {
	RegisterRoutes(r chi.Router)
}

// NewRouter builds the HTTP router with the shared middleware stack and
// registers every handler group on it.
func NewRouter(cfg *config.Config, registrars ...RouteRegistrar) *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(logging.RequestLogger(logging.GetLogger("http")))
	router.Use(middleware.Recoverer)

	corsOptions := cors.Options{
		AllowedOrigins: cfg.App.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Accept-Language", "Content-Type", "If-None-Match"},
		ExposedHeaders: []string{"ETag"},
		MaxAge:         300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(httprate.Limit(
		cfg.App.MaxRequestsPerSecond,
		time.Second,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(rateLimited),
	))

	for _, reg := range registrars {
		reg.RegisterRoutes(router)
	}

	return router
}

func rateLimited(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusTooManyRequests)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Code: ErrCodeRateLimited, Message: GetErrorMessage(ErrCodeRateLimited)})
}
