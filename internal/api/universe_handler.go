package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/geekshop-api/internal/api/shared"
	"github.com/phrazzld/geekshop-api/internal/service"
)

// UniverseHandler serves /universes.
type UniverseHandler struct {
	universes service.UniverseService
	logger    *slog.Logger
}

// NewUniverseHandler creates a new UniverseHandler. It panics if logger is nil.
func NewUniverseHandler(universes service.UniverseService, logger *slog.Logger) *UniverseHandler {
	return &UniverseHandler{
		universes: universes,
		logger:    handlerLogger(logger, "universe_handler"),
	}
}

// RegisterRoutes mounts the universe routes on r.
func (h *UniverseHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Put("/", h.Update)
		r.Delete("/", h.Delete)
		r.Get("/characters", h.Characters)
		r.Get("/devices", h.Devices)
		r.Get("/toys", h.Toys)
	})
}

// List handles GET /universes.
func (h *UniverseHandler) List(w http.ResponseWriter, r *http.Request) {
	page, ok := pageParams(w, r)
	if !ok {
		return
	}
	universes, err := h.universes.List(r.Context(), page)
	respondList(w, r, universes, err, "Failed to list universes")
}

// Get handles GET /universes/{id}.
func (h *UniverseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	universe, err := h.universes.Get(r.Context(), id)
	respond(w, r, http.StatusOK, universe, err, "Failed to get universe")
}

// Create handles POST /universes.
func (h *UniverseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req UniverseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	universe := req.toDomain(0)
	if err := h.universes.Create(r.Context(), universe); err != nil {
		HandleAPIError(w, r, err, "Failed to create universe")
		return
	}

	requestLogger(r, h.logger).Info("universe created",
		slog.Int64("universe_id", universe.ID),
		slog.String("slug", universe.Slug))
	shared.RespondWithJSON(w, r, http.StatusCreated, universe)
}

// Update handles PUT /universes/{id}.
func (h *UniverseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req UniverseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	universe := req.toDomain(id)
	err := h.universes.Update(r.Context(), universe)
	respond(w, r, http.StatusOK, universe, err, "Failed to update universe")
}

// Delete handles DELETE /universes/{id}.
func (h *UniverseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.universes.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete universe")
		return
	}

	requestLogger(r, h.logger).Info("universe deleted", slog.Int64("universe_id", id))
	shared.RespondWithMessage(w, r, doneMessage)
}

// Characters handles GET /universes/{id}/characters.
func (h *UniverseHandler) Characters(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	characters, err := h.universes.Characters(r.Context(), id)
	respondList(w, r, characters, err, "Failed to list characters")
}

// Devices handles GET /universes/{id}/devices.
func (h *UniverseHandler) Devices(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	devices, err := h.universes.Devices(r.Context(), id)
	respondList(w, r, devices, err, "Failed to list devices")
}

// Toys handles GET /universes/{id}/toys.
func (h *UniverseHandler) Toys(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	toys, err := h.universes.Toys(r.Context(), id)
	respondList(w, r, toys, err, "Failed to list toys")
}
