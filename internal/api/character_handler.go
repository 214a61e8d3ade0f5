package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/geekshop-api/internal/api/shared"
	"github.com/phrazzld/geekshop-api/internal/service"
)

// CharacterHandler serves /characters.
type CharacterHandler struct {
	characters service.CharacterService
	logger     *slog.Logger
}

// NewCharacterHandler creates a new CharacterHandler. It panics if logger is nil.
func NewCharacterHandler(characters service.CharacterService, logger *slog.Logger) *CharacterHandler {
	return &CharacterHandler{
		characters: characters,
		logger:     handlerLogger(logger, "character_handler"),
	}
}

// RegisterRoutes mounts the character routes on r.
func (h *CharacterHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Put("/", h.Update)
		r.Delete("/", h.Delete)
		r.Get("/universe", h.Universe)
		r.Get("/author", h.Author)
		r.Get("/devices", h.Devices)
		r.Get("/sweets", h.Sweets)
		r.Get("/toys", h.Toys)
		r.Get("/comics", h.Comics)
	})
}

// List handles GET /characters.
func (h *CharacterHandler) List(w http.ResponseWriter, r *http.Request) {
	page, ok := pageParams(w, r)
	if !ok {
		return
	}
	characters, err := h.characters.List(r.Context(), page)
	respondList(w, r, characters, err, "Failed to list characters")
}

// Get handles GET /characters/{id}.
func (h *CharacterHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	character, err := h.characters.Get(r.Context(), id)
	respond(w, r, http.StatusOK, character, err, "Failed to get character")
}

// Create handles POST /characters.
func (h *CharacterHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CharacterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	character := req.toDomain(0)
	if err := h.characters.Create(r.Context(), character); err != nil {
		HandleAPIError(w, r, err, "Failed to create character")
		return
	}

	requestLogger(r, h.logger).Info("character created",
		slog.Int64("character_id", character.ID),
		slog.Int64("universe_id", character.UniverseID))
	shared.RespondWithJSON(w, r, http.StatusCreated, character)
}

// Update handles PUT /characters/{id}.
func (h *CharacterHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req CharacterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	character := req.toDomain(id)
	err := h.characters.Update(r.Context(), character)
	respond(w, r, http.StatusOK, character, err, "Failed to update character")
}

// Delete handles DELETE /characters/{id}.
func (h *CharacterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.characters.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete character")
		return
	}

	requestLogger(r, h.logger).Info("character deleted", slog.Int64("character_id", id))
	shared.RespondWithMessage(w, r, doneMessage)
}

// Universe handles GET /characters/{id}/universe.
func (h *CharacterHandler) Universe(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	universe, err := h.characters.Universe(r.Context(), id)
	respond(w, r, http.StatusOK, universe, err, "Failed to get universe")
}

// Author handles GET /characters/{id}/author.
func (h *CharacterHandler) Author(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	author, err := h.characters.Author(r.Context(), id)
	respond(w, r, http.StatusOK, author, err, "Failed to get author")
}

// Devices handles GET /characters/{id}/devices.
func (h *CharacterHandler) Devices(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	devices, err := h.characters.Devices(r.Context(), id)
	respondList(w, r, devices, err, "Failed to list devices")
}

// Sweets handles GET /characters/{id}/sweets.
func (h *CharacterHandler) Sweets(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	sweets, err := h.characters.Sweets(r.Context(), id)
	respondList(w, r, sweets, err, "Failed to list sweets")
}

// Toys handles GET /characters/{id}/toys.
func (h *CharacterHandler) Toys(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	toys, err := h.characters.Toys(r.Context(), id)
	respondList(w, r, toys, err, "Failed to list toys")
}

// Comics handles GET /characters/{id}/comics.
func (h *CharacterHandler) Comics(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	comics, err := h.characters.Comics(r.Context(), id)
	respondList(w, r, comics, err, "Failed to list comics")
}
