package filter

import (
	"cropai-modelhub/internal/api/v1/catalog"
	"cropai-modelhub/internal/models"
	"cropai-modelhub/internal/services"
)

type SetQueryRequest struct {
	// Pointer so an empty string (clear the search) passes "required".
	Query *string `json:"query" binding:"required"`
}

type SetCropRequest struct {
	Crop string `json:"crop" binding:"required"`
}

// StateResponse is the shared filter state as the listing renders it.
type StateResponse struct {
	Query   string              `json:"query"`
	Crop    models.CropType     `json:"crop"`
	Models  []catalog.ModelCard `json:"models"`
	Total   int                 `json:"total"`
	Loading bool                `json:"loading"`
	Version uint64              `json:"version"`
}

func NewStateResponse(s services.FilterSnapshot) StateResponse {
	return StateResponse{
		Query:   s.Query,
		Crop:    s.Crop,
		Models:  catalog.NewModelCards(s.Visible),
		Total:   s.Total,
		Loading: s.Loading,
		Version: s.Version,
	}
}
