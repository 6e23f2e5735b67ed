package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"deltashare/internal/auth"
	"deltashare/internal/middleware"
)

// RouterConfig holds the middleware knobs for the HTTP router.
type RouterConfig struct {
	CORSAllowedOrigins []string
	RateLimitRPS       float64
	RateLimitBurst     int
}

// NewRouter assembles the chi router: request IDs, panic recovery, CORS,
// rate limiting, then the recipient-authenticated sharing routes.
func NewRouter(h *Handler, a *auth.Authenticator, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))
	if cfg.RateLimitRPS > 0 {
		r.Use(middleware.RateLimiter(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimitRPS,
			Burst:             cfg.RateLimitBurst,
		}))
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/shares", func(r chi.Router) {
		r.Use(middleware.Recipient(a))
		r.Get("/", h.ListShares)
		r.Get("/{share}", h.GetShare)
		r.Get("/{share}/schemas", h.ListSchemas)
		r.Get("/{share}/all-tables", h.ListTablesInShare)
		r.Get("/{share}/schemas/{schema}/tables", h.ListTablesInSchema)
		r.Get("/{share}/schemas/{schema}/tables/{table}/metadata", h.GetTable)
	})

	return r
}
