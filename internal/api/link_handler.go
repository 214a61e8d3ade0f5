package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/geekshop-api/internal/api/shared"
	"github.com/phrazzld/geekshop-api/internal/domain"
	"github.com/phrazzld/geekshop-api/internal/service"
)

// LinkHandler serves the join tables /comics_authors and /comics_characters.
type LinkHandler struct {
	links  service.LinkService
	logger *slog.Logger
}

// NewLinkHandler creates a new LinkHandler. It panics if logger is nil.
func NewLinkHandler(links service.LinkService, logger *slog.Logger) *LinkHandler {
	return &LinkHandler{links: links, logger: handlerLogger(logger, "link_handler")}
}

// RegisterComicsAuthorRoutes mounts the /comics_authors routes on r.
func (h *LinkHandler) RegisterComicsAuthorRoutes(r chi.Router) {
	r.Get("/", h.ListComicsAuthors)
	r.Post("/", h.LinkComicsAuthor)
	r.Delete("/{comics_id}/{author_id}", h.UnlinkComicsAuthor)
}

// RegisterComicsCharacterRoutes mounts the /comics_characters routes on r.
func (h *LinkHandler) RegisterComicsCharacterRoutes(r chi.Router) {
	r.Get("/", h.ListComicsCharacters)
	r.Post("/", h.LinkComicsCharacter)
	r.Route("/{comics_id}/{character_id}", func(r chi.Router) {
		r.Get("/", h.GetComicsCharacter)
		r.Put("/", h.UpdateComicsCharacter)
		r.Delete("/", h.UnlinkComicsCharacter)
	})
}

func comicsAuthorFromPath(w http.ResponseWriter, r *http.Request) (domain.ComicsAuthor, bool) {
	comicsID, ok := pathID(w, r, "comics_id")
	if !ok {
		return domain.ComicsAuthor{}, false
	}
	authorID, ok := pathID(w, r, "author_id")
	if !ok {
		return domain.ComicsAuthor{}, false
	}
	return domain.ComicsAuthor{ComicsID: comicsID, AuthorID: authorID}, true
}

func comicsCharacterFromPath(w http.ResponseWriter, r *http.Request) (domain.ComicsCharacter, bool) {
	comicsID, ok := pathID(w, r, "comics_id")
	if !ok {
		return domain.ComicsCharacter{}, false
	}
	characterID, ok := pathID(w, r, "character_id")
	if !ok {
		return domain.ComicsCharacter{}, false
	}
	return domain.ComicsCharacter{ComicsID: comicsID, CharacterID: characterID}, true
}

// ListComicsAuthors handles GET /comics_authors.
func (h *LinkHandler) ListComicsAuthors(w http.ResponseWriter, r *http.Request) {
	page, ok := pageParams(w, r)
	if !ok {
		return
	}
	links, err := h.links.ListComicsAuthors(r.Context(), page)
	respondList(w, r, links, err, "Failed to list comics authors")
}

// LinkComicsAuthor handles POST /comics_authors.
func (h *LinkHandler) LinkComicsAuthor(w http.ResponseWriter, r *http.Request) {
	var req ComicsAuthorRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	link := domain.ComicsAuthor{ComicsID: req.ComicsID, AuthorID: req.AuthorID}
	if err := h.links.LinkComicsAuthor(r.Context(), link); err != nil {
		HandleAPIError(w, r, err, "Failed to link author")
		return
	}

	requestLogger(r, h.logger).Info("author linked to comics",
		slog.Int64("comics_id", link.ComicsID),
		slog.Int64("author_id", link.AuthorID))
	shared.RespondWithJSON(w, r, http.StatusCreated, link)
}

// UnlinkComicsAuthor handles DELETE /comics_authors/{comics_id}/{author_id}.
func (h *LinkHandler) UnlinkComicsAuthor(w http.ResponseWriter, r *http.Request) {
	link, ok := comicsAuthorFromPath(w, r)
	if !ok {
		return
	}
	if err := h.links.UnlinkComicsAuthor(r.Context(), link); err != nil {
		HandleAPIError(w, r, err, "Failed to unlink author")
		return
	}
	shared.RespondWithMessage(w, r, doneMessage)
}

// ListComicsCharacters handles GET /comics_characters.
func (h *LinkHandler) ListComicsCharacters(w http.ResponseWriter, r *http.Request) {
	page, ok := pageParams(w, r)
	if !ok {
		return
	}
	links, err := h.links.ListComicsCharacters(r.Context(), page)
	respondList(w, r, links, err, "Failed to list comics characters")
}

// GetComicsCharacter handles GET /comics_characters/{comics_id}/{character_id}.
func (h *LinkHandler) GetComicsCharacter(w http.ResponseWriter, r *http.Request) {
	link, ok := comicsCharacterFromPath(w, r)
	if !ok {
		return
	}
	found, err := h.links.GetComicsCharacter(r.Context(), link)
	respond(w, r, http.StatusOK, found, err, "Failed to get comics character")
}

// LinkComicsCharacter handles POST /comics_characters.
func (h *LinkHandler) LinkComicsCharacter(w http.ResponseWriter, r *http.Request) {
	var req ComicsCharacterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	link := domain.ComicsCharacter{ComicsID: req.ComicsID, CharacterID: req.CharacterID}
	if err := h.links.LinkComicsCharacter(r.Context(), link); err != nil {
		HandleAPIError(w, r, err, "Failed to link character")
		return
	}

	requestLogger(r, h.logger).Info("character linked to comics",
		slog.Int64("comics_id", link.ComicsID),
		slog.Int64("character_id", link.CharacterID))
	shared.RespondWithJSON(w, r, http.StatusCreated, link)
}

// UpdateComicsCharacter handles PUT /comics_characters/{comics_id}/{character_id}:
// the link named by the path is re-pointed to the pair in the body.
func (h *LinkHandler) UpdateComicsCharacter(w http.ResponseWriter, r *http.Request) {
	from, ok := comicsCharacterFromPath(w, r)
	if !ok {
		return
	}
	var req ComicsCharacterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	to := domain.ComicsCharacter{ComicsID: req.ComicsID, CharacterID: req.CharacterID}
	err := h.links.UpdateComicsCharacter(r.Context(), from, to)
	respond(w, r, http.StatusOK, to, err, "Failed to update comics character")
}

// UnlinkComicsCharacter handles DELETE /comics_characters/{comics_id}/{character_id}.
func (h *LinkHandler) UnlinkComicsCharacter(w http.ResponseWriter, r *http.Request) {
	link, ok := comicsCharacterFromPath(w, r)
	if !ok {
		return
	}
	if err := h.links.UnlinkComicsCharacter(r.Context(), link); err != nil {
		HandleAPIError(w, r, err, "Failed to unlink character")
		return
	}
	shared.RespondWithMessage(w, r, doneMessage)
}
