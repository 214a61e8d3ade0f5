package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/geekshop-api/internal/api/shared"
	"github.com/phrazzld/geekshop-api/internal/domain"
	"github.com/phrazzld/geekshop-api/internal/service"
)

// AuthorHandler serves /authors.
type AuthorHandler struct {
	authors service.AuthorService
	logger  *slog.Logger
}

// NewAuthorHandler creates a new AuthorHandler. It panics if logger is nil.
func NewAuthorHandler(authors service.AuthorService, logger *slog.Logger) *AuthorHandler {
	return &AuthorHandler{
		authors: authors,
		logger:  handlerLogger(logger, "author_handler"),
	}
}

// RegisterRoutes mounts the author routes on r.
func (h *AuthorHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Put("/", h.Update)
		r.Delete("/", h.Delete)
		r.Get("/characters", h.Characters)
		r.Get("/comics", h.Comics)
	})
}

// authorDetail makes sure the detail view always lists comics, even when empty.
func authorDetail(author *domain.Author) *domain.Author {
	author.ComicsIDs = listOrEmpty(author.ComicsIDs)
	return author
}

// List handles GET /authors. List entries carry no comics ids.
func (h *AuthorHandler) List(w http.ResponseWriter, r *http.Request) {
	page, ok := pageParams(w, r)
	if !ok {
		return
	}
	authors, err := h.authors.List(r.Context(), page)
	respondList(w, r, authors, err, "Failed to list authors")
}

// Get handles GET /authors/{id}.
func (h *AuthorHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	author, err := h.authors.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get author")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, authorDetail(author))
}

// Create handles POST /authors.
func (h *AuthorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req AuthorRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	author := req.toDomain(0)
	if err := h.authors.Create(r.Context(), author); err != nil {
		HandleAPIError(w, r, err, "Failed to create author")
		return
	}

	requestLogger(r, h.logger).Info("author created",
		slog.Int64("author_id", author.ID),
		slog.Int("comics", len(author.ComicsIDs)))
	shared.RespondWithJSON(w, r, http.StatusCreated, authorDetail(author))
}

// Update handles PUT /authors/{id}. Omitting comics keeps the current links;
// the response carries the links stored after the update.
func (h *AuthorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req AuthorRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	author := req.toDomain(id)
	if err := h.authors.Update(r.Context(), author); err != nil {
		HandleAPIError(w, r, err, "Failed to update author")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, authorDetail(author))
}

// Delete handles DELETE /authors/{id}.
func (h *AuthorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.authors.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete author")
		return
	}

	requestLogger(r, h.logger).Info("author deleted", slog.Int64("author_id", id))
	shared.RespondWithMessage(w, r, doneMessage)
}

// Characters handles GET /authors/{id}/characters.
func (h *AuthorHandler) Characters(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	characters, err := h.authors.Characters(r.Context(), id)
	respondList(w, r, characters, err, "Failed to list characters")
}

// Comics handles GET /authors/{id}/comics.
func (h *AuthorHandler) Comics(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	comics, err := h.authors.Comics(r.Context(), id)
	respondList(w, r, comics, err, "Failed to list comics")
}
