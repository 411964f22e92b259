package filter_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cropai-modelhub/internal/api/v1/filter"
	"cropai-modelhub/internal/catalog"
	"cropai-modelhub/internal/models"
	"cropai-modelhub/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter() (*gin.Engine, *services.FilterEngine) {
	gin.SetMode(gin.TestMode)
	engine := services.NewFilterEngine(catalog.Records())
	r := gin.New()
	filter.RegisterRoutes(r.Group("/api/v1"), engine)
	return r, engine
}

func do(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, filter.StateResponse) {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var resp struct {
		Data filter.StateResponse `json:"data"`
	}
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp.Data
}

func TestGetState(t *testing.T) {
	r, _ := setupRouter()

	w, state := do(t, r, http.MethodGet, "/api/v1/filter", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "", state.Query)
	assert.Equal(t, models.CropAll, state.Crop)
	assert.Equal(t, 10, state.Total)
	assert.False(t, state.Loading)
}

func TestSetQuery(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantCode  int
		wantTotal int
	}{
		{"matching query", `{"query":"tomato"}`, http.StatusOK, 2},
		{"empty query clears", `{"query":""}`, http.StatusOK, 10},
		{"no match", `{"query":"zzzzzz"}`, http.StatusOK, 0},
		{"missing field", `{}`, http.StatusBadRequest, 0},
		{"malformed body", `{"query":`, http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, engine := setupRouter()
			w, state := do(t, r, http.MethodPut, "/api/v1/filter/query", tt.body)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusOK {
				assert.Equal(t, tt.wantTotal, state.Total)
				assert.Equal(t, engine.Snapshot().Version, state.Version)
			}
		})
	}
}

func TestSetQueryLongAndUnicode(t *testing.T) {
	r, engine := setupRouter()
	query := strings.Repeat("tomato blight ", 500) + "<%>é\U0001F33D"
	body, err := json.Marshal(map[string]string{"query": query})
	require.NoError(t, err)

	w, state := do(t, r, http.MethodPut, "/api/v1/filter/query", string(body))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, query, state.Query)
	assert.Equal(t, query, engine.Snapshot().Query)
	assert.Equal(t, 0, state.Total)
}

func TestSetCrop(t *testing.T) {
	r, engine := setupRouter()

	w, state := do(t, r, http.MethodPut, "/api/v1/filter/crop", `{"crop":"Maize"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.CropMaize, state.Crop)
	require.Len(t, state.Models, 1)
	assert.Equal(t, "agphd-corn-diseases", state.Models[0].ID)

	w, _ = do(t, r, http.MethodPut, "/api/v1/filter/crop", `{"crop":"Banana"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, models.CropMaize, engine.Snapshot().Crop, "rejected crop leaves state unchanged")
}

func readEvent(t *testing.T, rd *bufio.Reader) (string, filter.StateResponse) {
	var name string
	var state filter.StateResponse
	for {
		line, err := rd.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\n")
		switch {
		case line == "":
			return name, state
		case strings.HasPrefix(line, "event:"):
			name = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(line, "data:")), &state))
		}
	}
}

func TestEvents(t *testing.T) {
	r, engine := setupRouter()
	srv := httptest.NewServer(r)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/v1/filter/events", nil)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/event-stream")

	rd := bufio.NewReader(resp.Body)
	name, first := readEvent(t, rd)
	assert.Equal(t, "snapshot", name)
	assert.Equal(t, 10, first.Total)

	engine.SetQuery("tomato")
	_, second := readEvent(t, rd)
	assert.Equal(t, "tomato", second.Query)
	assert.Equal(t, 2, second.Total)
	assert.Greater(t, second.Version, first.Version)

	engine.SetCrop(models.CropMaize)
	_, third := readEvent(t, rd)
	assert.Equal(t, models.CropMaize, third.Crop)
	assert.Equal(t, 0, third.Total)
}
