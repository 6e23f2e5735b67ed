// Package app wires the catalog backend, authenticator, and HTTP router
// from configuration. main() provides the config and logger; everything
// else is constructed here.
package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"deltashare/internal/api"
	"deltashare/internal/auth"
	"deltashare/internal/catalog/file"
	"deltashare/internal/config"
	"deltashare/internal/domain"
)

// Deps holds the external dependencies that main() must provide.
type Deps struct {
	Cfg    *config.Config
	Logger *slog.Logger
}

// App holds the fully-wired application.
type App struct {
	Catalog domain.Catalog
	Handler http.Handler
}

// New wires the file catalog, authenticator, and router from the provided
// deps. A catalog file that fails to load or validate is a startup error:
// the server never comes up serving a partial catalog.
func New(deps Deps) (*App, error) {
	cfg := deps.Cfg

	format, err := file.ParseFormat(cfg.CatalogFormat)
	if err != nil {
		return nil, fmt.Errorf("catalog format: %w", err)
	}
	catalog, err := file.New(file.NewConfig(cfg.CatalogPath).WithFormat(format), deps.Logger)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	authenticator, err := auth.New([]byte(cfg.JWTSecret), cfg.RequireAuth)
	if err != nil {
		return nil, fmt.Errorf("authenticator: %w", err)
	}

	handler := api.NewHandler(catalog, deps.Logger)
	router := api.NewRouter(handler, authenticator, api.RouterConfig{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitRPS:       cfg.RateLimitRPS,
		RateLimitBurst:     cfg.RateLimitBurst,
	})

	return &App{Catalog: catalog, Handler: router}, nil
}
