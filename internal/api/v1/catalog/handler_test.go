package catalog_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"cropai-modelhub/internal/api/v1/catalog"
	catalogdata "cropai-modelhub/internal/catalog"
	"cropai-modelhub/internal/models"
	"cropai-modelhub/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	catalog.RegisterRoutes(r.Group("/api/v1"), services.NewFilterEngine(catalogdata.Records()))
	return r
}

func get(t *testing.T, r *gin.Engine, path string, data interface{}) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)

	if data != nil && w.Code == http.StatusOK {
		resp := struct {
			Data interface{} `json:"data"`
		}{Data: data}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w
}

func cardIDs(cards []catalog.ModelCard) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.ID)
	}
	return out
}

func TestListModels(t *testing.T) {
	r := setupRouter()

	tests := []struct {
		name     string
		query    url.Values
		wantCode int
		wantIDs  []string
	}{
		{
			name:     "no filters returns everything",
			query:    url.Values{},
			wantCode: http.StatusOK,
			wantIDs: []string{
				"cropai-multi", "plantvillage-nuru", "plantdis-flutter", "plant‑diseases‑detector", "plantix",
				"agrio", "agphd-corn-diseases", "mobileplantvit", "automated‑hyperspectral", "plantpulse",
			},
		},
		{
			name:     "text query",
			query:    url.Values{"q": {"tomato"}},
			wantCode: http.StatusOK,
			wantIDs:  []string{"cropai-multi", "plantdis-flutter"},
		},
		{
			name:     "crop filter",
			query:    url.Values{"crop": {"Maize"}},
			wantCode: http.StatusOK,
			wantIDs:  []string{"agphd-corn-diseases"},
		},
		{
			name:     "crop without records",
			query:    url.Values{"crop": {"Tomato"}},
			wantCode: http.StatusOK,
			wantIDs:  []string{},
		},
		{
			name:     "unknown crop",
			query:    url.Values{"crop": {"Banana"}},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data catalog.ModelListResponse
			w := get(t, r, "/api/v1/models?"+tt.query.Encode(), &data)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode != http.StatusOK {
				return
			}
			assert.Equal(t, tt.wantIDs, cardIDs(data.Models))
			assert.Equal(t, len(tt.wantIDs), data.Total)
		})
	}
}

func TestGetModel(t *testing.T) {
	r := setupRouter()

	t.Run("found", func(t *testing.T) {
		var card catalog.ModelCard
		w := get(t, r, "/api/v1/models/cropai-multi", &card)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "cropai-multi", card.ID)
		assert.Equal(t, "810", card.DownloadsDisplay)
		assert.Equal(t, "v1.0.0", card.VersionDisplay)
		assert.Equal(t, "Jul 22, 2025", card.LastUpdatedDisplay)
		assert.True(t, card.AccuracyReported)
		require.Len(t, card.Badges, 5)
		assert.Equal(t, models.TagVerified, card.Badges[2].Tag)
		assert.Equal(t, "green-100", card.Badges[2].Background)
	})

	t.Run("download count abbreviated", func(t *testing.T) {
		var card catalog.ModelCard
		get(t, r, "/api/v1/models/plantdis-flutter", &card)
		assert.Equal(t, "1.2k", card.DownloadsDisplay)
	})

	t.Run("missing", func(t *testing.T) {
		w := get(t, r, "/api/v1/models/does-not-exist", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListCropsAndTags(t *testing.T) {
	r := setupRouter()

	var crops catalog.CropListResponse
	w := get(t, r, "/api/v1/crops", &crops)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.CropAll, crops.Crops[0])
	assert.Len(t, crops.Crops, len(models.CropTypes))
	assert.Contains(t, crops.SubmissionOptions, "Other (specify in description)")

	var tags []catalog.TagBadge
	w = get(t, r, "/api/v1/tags", &tags)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, tags, len(models.Tags))
	for _, b := range tags {
		assert.Equal(t, b.Tag.Style(), b.TagStyle)
	}
}

func TestGetStats(t *testing.T) {
	r := setupRouter()

	var stats services.CatalogStats
	w := get(t, r, "/api/v1/stats", &stats)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 10, stats.AvailableModels)
	assert.Equal(t, "10.0M", stats.TotalDownloadsDisplay)
	assert.Equal(t, "17+", stats.CropTypeCountDisplay)
}
