package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/phrazzld/geekshop-api/internal/api"
	apimw "github.com/phrazzld/geekshop-api/internal/api/middleware"
	"github.com/phrazzld/geekshop-api/internal/api/shared"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRouter creates the router with every middleware and route mounted.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(apimw.Trace(app.logger))
	r.Use(chimw.Recoverer)
	r.Use(apimw.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.config.Server.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{apimw.TraceIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	if limit := app.config.Server.RateLimitPerMinute; limit > 0 {
		r.Use(httprate.Limit(limit, time.Minute,
			httprate.WithKeyFuncs(httprate.KeyByIP),
			httprate.WithLimitHandler(apimw.RateLimitExceeded)))
	}
	r.Use(chimw.StripSlashes)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Resource not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Get("/health", app.health)
	r.Handle("/metrics", promhttp.Handler())

	authHandler := api.NewAuthHandler(app.users, app.jwtService, app.logger)
	authMiddleware := apimw.NewAuthMiddleware(app.jwtService)
	links := api.NewLinkHandler(app.links, app.logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", authHandler.RegisterRoutes)
		r.With(authMiddleware.Authenticate).Get("/users/me", authHandler.Me)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.RequireForWrites(app.config.Auth.RequireForWrites))

			r.Route("/universes", api.NewUniverseHandler(app.universes, app.logger).RegisterRoutes)
			r.Route("/authors", api.NewAuthorHandler(app.authors, app.logger).RegisterRoutes)
			r.Route("/characters", api.NewCharacterHandler(app.characters, app.logger).RegisterRoutes)
			r.Route("/comics", api.NewComicsHandler(app.comics, app.logger).RegisterRoutes)
			r.Route("/devices", api.NewDeviceHandler(app.devices, app.logger).RegisterRoutes)
			r.Route("/sweets", api.NewSweetHandler(app.sweets, app.logger).RegisterRoutes)
			r.Route("/toys", api.NewToyHandler(app.toys, app.logger).RegisterRoutes)
			r.Route("/comics_authors", links.RegisterComicsAuthorRoutes)
			r.Route("/comics_characters", links.RegisterComicsCharacterRoutes)
		})
	})

	return r
}

func (app *application) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		app.logger.Error("failed to write health check response", slog.Any("error", err))
	}
}
