package api

import "github.com/phrazzld/garden-api/internal/domain"

// CreateGardenRequest defines the payload for POST /api/gardens.
type CreateGardenRequest struct {
	Name        string  `json:"name"        validate:"required,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

// OwnedGardenResponse wraps a garden summary, as returned by create.
type OwnedGardenResponse struct {
	Garden *domain.OwnedGarden `json:"garden"`
}

// GardenDetailResponse wraps a fully assembled garden.
type GardenDetailResponse struct {
	Garden *domain.GardenDetail `json:"garden"`
}

// GardenResponse wraps the stored garden row returned by a partial update.
type GardenResponse struct {
	Garden *domain.Garden `json:"garden"`
}

// GardenListResponse wraps a per-user garden listing.
type GardenListResponse struct {
	Gardens []domain.OwnedGarden `json:"gardens"`
}

// DeleteGardenResponse reports the id of a removed garden.
type DeleteGardenResponse struct {
	Deleted int64 `json:"deleted"`
}
