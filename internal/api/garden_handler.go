package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/garden-api/internal/api/shared"
	"github.com/phrazzld/garden-api/internal/domain"
	"github.com/phrazzld/garden-api/internal/platform/logger"
	"github.com/phrazzld/garden-api/internal/service"
)

// GardenHandler handles garden-related HTTP requests
type GardenHandler struct {
	gardenService service.GardenService
	logger        *slog.Logger
}

// NewGardenHandler creates a new GardenHandler
func NewGardenHandler(gardenService service.GardenService, logger *slog.Logger) *GardenHandler {
	if gardenService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("gardenService cannot be nil for GardenHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &GardenHandler{
		gardenService: gardenService,
		logger:        logger.With(slog.String("component", "garden_handler")),
	}
}

// CreateGarden handles POST /api/gardens requests.
// The authenticated user becomes the garden's first owner.
func (h *GardenHandler) CreateGarden(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	username, ok := shared.GetUsername(r.Context())
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	var req CreateGardenRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("invalid create garden body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	garden, err := h.gardenService.CreateGarden(r.Context(), username, req.Name, req.Description)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create garden")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, OwnedGardenResponse{Garden: garden})
}

// ListGardens handles GET /api/gardens requests.
func (h *GardenHandler) ListGardens(w http.ResponseWriter, r *http.Request) {
	username, ok := shared.GetUsername(r.Context())
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	gardens, err := h.gardenService.ListGardens(r.Context(), username)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list gardens")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, GardenListResponse{Gardens: gardens})
}

// GetGarden handles GET /api/gardens/{id} requests.
func (h *GardenHandler) GetGarden(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	username, id, ok := handleUsernameAndPathID(w, r, "id", log)
	if !ok {
		return
	}

	garden, err := h.gardenService.GetGarden(r.Context(), username, id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get garden")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, GardenDetailResponse{Garden: garden})
}

// UpdateGarden handles PATCH /api/gardens/{id} requests.
// The body is a JSON object holding any subset of name and description.
func (h *GardenHandler) UpdateGarden(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	username, id, ok := handleUsernameAndPathID(w, r, "id", log)
	if !ok {
		return
	}

	var patch domain.GardenUpdate
	if err := shared.DecodeJSON(r, &patch); err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			HandleAPIError(w, r, err, "")
			return
		}
		log.Debug("invalid update garden body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	garden, err := h.gardenService.UpdateGarden(r.Context(), username, id, patch)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update garden")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, GardenResponse{Garden: garden})
}

// DeleteGarden handles DELETE /api/gardens/{id} requests.
func (h *GardenHandler) DeleteGarden(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	username, id, ok := handleUsernameAndPathID(w, r, "id", log)
	if !ok {
		return
	}

	removed, err := h.gardenService.RemoveGarden(r.Context(), username, id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to delete garden")
		return
	}

	log.Info("garden deleted", slog.Int64("garden_id", removed.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, DeleteGardenResponse{Deleted: removed.ID})
}
