package services

import (
	"testing"

	"cropai-modelhub/internal/catalog"
	"cropai-modelhub/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestComputeCatalogStats(t *testing.T) {
	stats := ComputeCatalogStats(catalog.Records())

	assert.Equal(t, 10, stats.AvailableModels)
	assert.Equal(t, int64(10009260), stats.TotalDownloads)
	assert.Equal(t, "10.0M", stats.TotalDownloadsDisplay)
	assert.InDelta(t, 73.67, stats.AverageAccuracy, 0.001)
	assert.Equal(t, "73.7%", stats.AverageAccuracyDisplay)
	assert.Equal(t, 17, stats.CropTypeCount)
	assert.Equal(t, "17+", stats.CropTypeCountDisplay)
}

func TestComputeCatalogStatsEmpty(t *testing.T) {
	stats := ComputeCatalogStats(nil)

	assert.Equal(t, 0, stats.AvailableModels)
	assert.Equal(t, "0", stats.TotalDownloadsDisplay)
	assert.Equal(t, "0.0%", stats.AverageAccuracyDisplay)
	assert.Equal(t, "17+", stats.CropTypeCountDisplay)
}

func TestComputeCatalogStatsManyCrops(t *testing.T) {
	var records []models.ModelRecord
	for i := 0; i < 20; i++ {
		records = append(records, models.ModelRecord{Crop: string(rune('A' + i)), Accuracy: 90, Downloads: 100})
	}

	stats := ComputeCatalogStats(records)
	assert.Equal(t, 20, stats.CropTypeCount)
	assert.Equal(t, "2.0K", stats.TotalDownloadsDisplay)
	assert.Equal(t, "90.0%", stats.AverageAccuracyDisplay)
}

func TestComputeCatalogStatsRoundsHalfUp(t *testing.T) {
	records := []models.ModelRecord{
		{Crop: "Maize", Accuracy: 92.0, Downloads: 1000000},
		{Crop: "Tomato", Accuracy: 92.5, Downloads: 1250000},
	}

	stats := ComputeCatalogStats(records)
	assert.Equal(t, "92.3%", stats.AverageAccuracyDisplay)
	assert.Equal(t, "2.3M", stats.TotalDownloadsDisplay)
}
