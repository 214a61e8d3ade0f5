package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/geekshop-api/internal/api/shared"
	"github.com/phrazzld/geekshop-api/internal/domain"
	"github.com/phrazzld/geekshop-api/internal/service"
)

// ComicsHandler serves /comics.
type ComicsHandler struct {
	comics service.ComicsService
	logger *slog.Logger
}

// NewComicsHandler creates a new ComicsHandler. It panics if logger is nil.
func NewComicsHandler(comics service.ComicsService, logger *slog.Logger) *ComicsHandler {
	return &ComicsHandler{
		comics: comics,
		logger: handlerLogger(logger, "comics_handler"),
	}
}

// RegisterRoutes mounts the comics routes on r.
func (h *ComicsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Put("/", h.Update)
		r.Delete("/", h.Delete)
		r.Get("/authors", h.Authors)
		r.Get("/characters", h.Characters)
	})
}

func comicsDetail(comics *domain.Comics) *domain.Comics {
	comics.AuthorIDs = listOrEmpty(comics.AuthorIDs)
	comics.CharacterIDs = listOrEmpty(comics.CharacterIDs)
	return comics
}

// List handles GET /comics.
func (h *ComicsHandler) List(w http.ResponseWriter, r *http.Request) {
	page, ok := pageParams(w, r)
	if !ok {
		return
	}
	comics, err := h.comics.List(r.Context(), page)
	respondList(w, r, comics, err, "Failed to list comics")
}

// Get handles GET /comics/{id}.
func (h *ComicsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	comics, err := h.comics.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get comics")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, comicsDetail(comics))
}

// Create handles POST /comics.
func (h *ComicsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ComicsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	comics := req.toDomain(0)
	if err := h.comics.Create(r.Context(), comics); err != nil {
		HandleAPIError(w, r, err, "Failed to create comics")
		return
	}

	requestLogger(r, h.logger).Info("comics created",
		slog.Int64("comics_id", comics.ID),
		slog.Int("authors", len(comics.AuthorIDs)),
		slog.Int("characters", len(comics.CharacterIDs)))
	shared.RespondWithJSON(w, r, http.StatusCreated, comicsDetail(comics))
}

// Update handles PUT /comics/{id}. Omitted link lists keep their links.
func (h *ComicsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req ComicsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	comics := req.toDomain(id)
	if err := h.comics.Update(r.Context(), comics); err != nil {
		HandleAPIError(w, r, err, "Failed to update comics")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, comicsDetail(comics))
}

// Delete handles DELETE /comics/{id}.
func (h *ComicsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.comics.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete comics")
		return
	}

	requestLogger(r, h.logger).Info("comics deleted", slog.Int64("comics_id", id))
	shared.RespondWithMessage(w, r, doneMessage)
}

// Authors handles GET /comics/{id}/authors.
func (h *ComicsHandler) Authors(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	authors, err := h.comics.Authors(r.Context(), id)
	respondList(w, r, authors, err, "Failed to list authors")
}

// Characters handles GET /comics/{id}/characters.
func (h *ComicsHandler) Characters(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	characters, err := h.comics.Characters(r.Context(), id)
	respondList(w, r, characters, err, "Failed to list characters")
}
