package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/geekshop-api/internal/api/shared"
	"github.com/phrazzld/geekshop-api/internal/service"
)

// DeviceHandler serves /devices.
type DeviceHandler struct {
	devices service.DeviceService
	logger  *slog.Logger
}

// NewDeviceHandler creates a new DeviceHandler. It panics if logger is nil.
func NewDeviceHandler(devices service.DeviceService, logger *slog.Logger) *DeviceHandler {
	return &DeviceHandler{devices: devices, logger: handlerLogger(logger, "device_handler")}
}

// RegisterRoutes mounts the device routes on r.
func (h *DeviceHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Put("/", h.Update)
		r.Delete("/", h.Delete)
		r.Get("/universe", h.Universe)
		r.Get("/character", h.Character)
	})
}

// List handles GET /devices.
func (h *DeviceHandler) List(w http.ResponseWriter, r *http.Request) {
	page, ok := pageParams(w, r)
	if !ok {
		return
	}
	devices, err := h.devices.List(r.Context(), page)
	respondList(w, r, devices, err, "Failed to list devices")
}

// Get handles GET /devices/{id}.
func (h *DeviceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	device, err := h.devices.Get(r.Context(), id)
	respond(w, r, http.StatusOK, device, err, "Failed to get device")
}

// Create handles POST /devices.
func (h *DeviceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req DeviceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	device := req.toDomain(0)
	if err := h.devices.Create(r.Context(), device); err != nil {
		HandleAPIError(w, r, err, "Failed to create device")
		return
	}

	requestLogger(r, h.logger).Info("device created", slog.Int64("device_id", device.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, device)
}

// Update handles PUT /devices/{id}.
func (h *DeviceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req DeviceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	device := req.toDomain(id)
	err := h.devices.Update(r.Context(), device)
	respond(w, r, http.StatusOK, device, err, "Failed to update device")
}

// Delete handles DELETE /devices/{id}.
func (h *DeviceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.devices.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete device")
		return
	}

	requestLogger(r, h.logger).Info("device deleted", slog.Int64("device_id", id))
	shared.RespondWithMessage(w, r, doneMessage)
}

// Universe handles GET /devices/{id}/universe.
func (h *DeviceHandler) Universe(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	universe, err := h.devices.Universe(r.Context(), id)
	respond(w, r, http.StatusOK, universe, err, "Failed to get universe")
}

// Character handles GET /devices/{id}/character.
func (h *DeviceHandler) Character(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	character, err := h.devices.Character(r.Context(), id)
	respond(w, r, http.StatusOK, character, err, "Failed to get character")
}

// SweetHandler serves /sweets.
type SweetHandler struct {
	sweets service.SweetService
	logger *slog.Logger
}

// NewSweetHandler creates a new SweetHandler. It panics if logger is nil.
func NewSweetHandler(sweets service.SweetService, logger *slog.Logger) *SweetHandler {
	return &SweetHandler{sweets: sweets, logger: handlerLogger(logger, "sweet_handler")}
}

// RegisterRoutes mounts the sweet routes on r.
func (h *SweetHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Put("/", h.Update)
		r.Delete("/", h.Delete)
		r.Get("/universe", h.Universe)
		r.Get("/character", h.Character)
	})
}

// List handles GET /sweets.
func (h *SweetHandler) List(w http.ResponseWriter, r *http.Request) {
	page, ok := pageParams(w, r)
	if !ok {
		return
	}
	sweets, err := h.sweets.List(r.Context(), page)
	respondList(w, r, sweets, err, "Failed to list sweets")
}

// Get handles GET /sweets/{id}.
func (h *SweetHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	sweet, err := h.sweets.Get(r.Context(), id)
	respond(w, r, http.StatusOK, sweet, err, "Failed to get sweet")
}

// Create handles POST /sweets.
func (h *SweetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req SweetRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	sweet := req.toDomain(0)
	if err := h.sweets.Create(r.Context(), sweet); err != nil {
		HandleAPIError(w, r, err, "Failed to create sweet")
		return
	}

	requestLogger(r, h.logger).Info("sweet created", slog.Int64("sweet_id", sweet.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, sweet)
}

// Update handles PUT /sweets/{id}.
func (h *SweetHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req SweetRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	sweet := req.toDomain(id)
	err := h.sweets.Update(r.Context(), sweet)
	respond(w, r, http.StatusOK, sweet, err, "Failed to update sweet")
}

// Delete handles DELETE /sweets/{id}.
func (h *SweetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.sweets.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete sweet")
		return
	}

	requestLogger(r, h.logger).Info("sweet deleted", slog.Int64("sweet_id", id))
	shared.RespondWithMessage(w, r, doneMessage)
}

// Universe handles GET /sweets/{id}/universe: the universe of the sweet's character.
func (h *SweetHandler) Universe(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	universe, err := h.sweets.Universe(r.Context(), id)
	respond(w, r, http.StatusOK, universe, err, "Failed to get universe")
}

// Character handles GET /sweets/{id}/character.
func (h *SweetHandler) Character(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	character, err := h.sweets.Character(r.Context(), id)
	respond(w, r, http.StatusOK, character, err, "Failed to get character")
}

// ToyHandler serves /toys.
type ToyHandler struct {
	toys   service.ToyService
	logger *slog.Logger
}

// NewToyHandler creates a new ToyHandler. It panics if logger is nil.
func NewToyHandler(toys service.ToyService, logger *slog.Logger) *ToyHandler {
	return &ToyHandler{toys: toys, logger: handlerLogger(logger, "toy_handler")}
}

// RegisterRoutes mounts the toy routes on r.
func (h *ToyHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Put("/", h.Update)
		r.Delete("/", h.Delete)
		r.Get("/universe", h.Universe)
		r.Get("/character", h.Character)
	})
}

// List handles GET /toys.
func (h *ToyHandler) List(w http.ResponseWriter, r *http.Request) {
	page, ok := pageParams(w, r)
	if !ok {
		return
	}
	toys, err := h.toys.List(r.Context(), page)
	respondList(w, r, toys, err, "Failed to list toys")
}

// Get handles GET /toys/{id}.
func (h *ToyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	toy, err := h.toys.Get(r.Context(), id)
	respond(w, r, http.StatusOK, toy, err, "Failed to get toy")
}

// Create handles POST /toys.
func (h *ToyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ToyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	toy := req.toDomain(0)
	if err := h.toys.Create(r.Context(), toy); err != nil {
		HandleAPIError(w, r, err, "Failed to create toy")
		return
	}

	requestLogger(r, h.logger).Info("toy created", slog.Int64("toy_id", toy.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, toy)
}

// Update handles PUT /toys/{id}.
func (h *ToyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req ToyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	toy := req.toDomain(id)
	err := h.toys.Update(r.Context(), toy)
	respond(w, r, http.StatusOK, toy, err, "Failed to update toy")
}

// Delete handles DELETE /toys/{id}.
func (h *ToyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.toys.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete toy")
		return
	}

	requestLogger(r, h.logger).Info("toy deleted", slog.Int64("toy_id", id))
	shared.RespondWithMessage(w, r, doneMessage)
}

// Universe handles GET /toys/{id}/universe.
func (h *ToyHandler) Universe(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	universe, err := h.toys.Universe(r.Context(), id)
	respond(w, r, http.StatusOK, universe, err, "Failed to get universe")
}

// Character handles GET /toys/{id}/character.
func (h *ToyHandler) Character(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	character, err := h.toys.Character(r.Context(), id)
	respond(w, r, http.StatusOK, character, err, "Failed to get character")
}
