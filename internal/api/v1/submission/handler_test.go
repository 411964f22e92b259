package submission_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"cropai-modelhub/internal/api/v1/submission"
	"cropai-modelhub/internal/database"
	"cropai-modelhub/internal/models"
	"cropai-modelhub/internal/services"
	"cropai-modelhub/internal/store"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const validBody = `{
	"modelName": "LeafScan",
	"cropType": "Tomato",
	"description": "Detects early and late blight on tomato leaves.",
	"accuracy": "92.5%",
	"trainingDataSize": "12000",
	"email": "dev@example.org",
	"githubRepo": "https://github.com/example/leafscan"
}`

type blockingStore struct {
	mu      sync.Mutex
	calls   int
	err     error
	entered chan struct{}
	release chan struct{}
}

func (s *blockingStore) Append(_ context.Context, _ string, _ map[string]interface{}) (string, error) {
	if s.entered != nil {
		close(s.entered)
		<-s.release
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return "doc-1", nil
}

func setupTestRedis(t *testing.T) *redis.Client {
	mr, err := miniredis.Run()
	if err != nil {
		panic(err)
	}
	t.Cleanup(mr.Close)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func setupRouter(ds services.DocumentStore, rdb *redis.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	pipeline := services.NewSubmissionPipeline(ds, services.NewLogNotifier())
	submission.RegisterRoutes(r.Group("/api/v1"), pipeline, rdb, time.Minute)
	return r
}

func post(r *gin.Engine, clientID, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/submissions", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if clientID != "" {
		req.Header.Set("X-Client-ID", clientID)
	}
	r.ServeHTTP(w, req)
	return w
}

func notifications(t *testing.T, r *gin.Engine, clientID string) []services.Notification {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/notifications", nil)
	if clientID != "" {
		req.Header.Set("X-Client-ID", clientID)
	}
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data submission.NotificationListResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data.Notifications
}

func TestSubmit(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		storeErr    error
		wantCode    int
		wantMessage string
		wantWrites  int
	}{
		{
			name:        "valid draft",
			body:        validBody,
			wantCode:    http.StatusCreated,
			wantMessage: "Model submitted successfully!",
			wantWrites:  1,
		},
		{
			name:        "short model name",
			body:        `{"modelName":"AB"}`,
			wantCode:    http.StatusBadRequest,
			wantMessage: "Model name must be at least 3 characters.",
		},
		{
			name:        "empty draft",
			body:        `{}`,
			wantCode:    http.StatusBadRequest,
			wantMessage: "Model name must be at least 3 characters.",
		},
		{
			name:        "malformed json",
			body:        `{"modelName":`,
			wantCode:    http.StatusBadRequest,
			wantMessage: "Invalid request parameters",
		},
		{
			name:        "store failure",
			body:        validBody,
			storeErr:    errors.New("permission denied"),
			wantCode:    http.StatusBadGateway,
			wantMessage: "Submission failed. Try again.",
			wantWrites:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := &blockingStore{err: tt.storeErr}
			r := setupRouter(ds, nil)

			w := post(r, "", tt.body)

			assert.Equal(t, tt.wantCode, w.Code)
			var resp struct {
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantMessage, resp.Message)
			assert.Equal(t, tt.wantWrites, ds.calls)
		})
	}
}

func TestSubmitValidationErrorNamesField(t *testing.T) {
	r := setupRouter(&blockingStore{}, nil)

	var body map[string]string
	require.NoError(t, json.Unmarshal([]byte(validBody), &body))
	body["email"] = "not-an-email"
	raw, _ := json.Marshal(body)

	w := post(r, "", string(raw))

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp struct {
		Data services.ValidationError `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "email", resp.Data.Field)
	assert.Equal(t, "Please enter a valid email address.", resp.Data.Message)
}

func TestSubmitWhileInFlight(t *testing.T) {
	ds := &blockingStore{entered: make(chan struct{}), release: make(chan struct{})}
	r := setupRouter(ds, nil)

	first := make(chan *httptest.ResponseRecorder)
	go func() { first <- post(r, "client-a", validBody) }()
	<-ds.entered

	w := post(r, "client-a", validBody)
	assert.Equal(t, http.StatusConflict, w.Code)

	close(ds.release)
	assert.Equal(t, http.StatusCreated, (<-first).Code)
	assert.Equal(t, 1, ds.calls)

	// The guard is per client and lifts once the first write completes.
	ds.entered = nil
	assert.Equal(t, http.StatusCreated, post(r, "client-a", validBody).Code)
	assert.Equal(t, 2, ds.calls)
}

func TestNotifications(t *testing.T) {
	rdb := setupTestRedis(t)
	r := setupRouter(&blockingStore{}, rdb)

	require.Equal(t, http.StatusCreated, post(r, "client-a", validBody).Code)
	require.Equal(t, http.StatusBadRequest, post(r, "client-a", `{"modelName":"AB"}`).Code)
	require.Equal(t, http.StatusCreated, post(r, "client-b", validBody).Code)

	list := notifications(t, r, "client-a")
	require.Len(t, list, 2)
	assert.Equal(t, services.NotificationSuccess, list[0].Level)
	assert.Equal(t, "Model submitted successfully!", list[0].Message)
	assert.Equal(t, services.NotificationError, list[1].Level)
	assert.Equal(t, "Model name must be at least 3 characters.", list[1].Message)

	assert.Empty(t, notifications(t, r, "client-a"), "draining clears the queue")
	assert.Len(t, notifications(t, r, "client-b"), 1)
	assert.Empty(t, notifications(t, r, ""), "anonymous queue is separate")
}

func TestNotificationsWithoutRedis(t *testing.T) {
	r := setupRouter(&blockingStore{}, nil)
	require.Equal(t, http.StatusCreated, post(r, "", validBody).Code)
	assert.Empty(t, notifications(t, r, ""))
}

func TestSubmitPersistsToSQLStore(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	r := setupRouter(store.NewSQLStore(db), nil)
	w := post(r, "", validBody)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data submission.SubmitResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	var doc models.Document
	require.NoError(t, db.First(&doc, "id = ?", resp.Data.ID).Error)
	assert.Equal(t, models.SubmissionCollection, doc.Collection)
	assert.Equal(t, "LeafScan", doc.Fields["modelName"])
	assert.Equal(t, "https://github.com/example/leafscan", doc.Fields["githubRepo"])
	assert.False(t, doc.SubmittedAt.IsZero())
}
