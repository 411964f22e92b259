package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"cropai-modelhub/internal/models"
	"cropai-modelhub/pkg/logger"

	"go.uber.org/zap"
)

var (
	ErrModelNotFound = errors.New("model not found")
	ErrUnknownCrop   = errors.New("unknown crop type")
)

// ResolveCrop maps an external crop value onto the closed crop set. An empty
// value means every crop.
func ResolveCrop(s string) (models.CropType, error) {
	if s == "" {
		return models.CropAll, nil
	}
	c, ok := models.ParseCropType(s)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCrop, s)
	}
	return c, nil
}

// FilterCriteria is the current search intent.
type FilterCriteria struct {
	Query string          `json:"query"`
	Crop  models.CropType `json:"crop"`
}

// DefaultCriteria matches every record.
func DefaultCriteria() FilterCriteria {
	return FilterCriteria{Crop: models.CropAll}
}

// FilterSnapshot is an immutable view of the engine state. Callers must not
// modify the Visible slice.
type FilterSnapshot struct {
	Query   string               `json:"query"`
	Crop    models.CropType      `json:"crop"`
	Visible []models.ModelRecord `json:"models"`
	Total   int                  `json:"total"`
	Loading bool                 `json:"loading"`
	Version uint64               `json:"version"`
}

// FilterModels applies the crop and text predicates to records and returns
// the matching records in their original order. records is not modified.
func FilterModels(records []models.ModelRecord, criteria FilterCriteria) []models.ModelRecord {
	query := strings.ToLower(strings.TrimSpace(criteria.Query))
	byCrop := criteria.Crop != "" && !criteria.Crop.IsAll()

	out := make([]models.ModelRecord, 0, len(records))
	for _, r := range records {
		// Exact, case-sensitive match against the free-form crop label.
		if byCrop && r.Crop != string(criteria.Crop) {
			continue
		}
		if query != "" && !matchesQuery(r, query) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesQuery(r models.ModelRecord, query string) bool {
	for _, field := range []string{r.Title, r.Description, r.Crop, r.Author} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(string(tag)), query) {
			return true
		}
	}
	return false
}

// FilterEngine owns the record set and the process-wide filter criteria.
// Every mutation recomputes the visible subset before returning and then
// publishes the new snapshot to subscribers in version order.
type FilterEngine struct {
	mu       sync.RWMutex
	records  []models.ModelRecord
	criteria FilterCriteria
	visible  []models.ModelRecord
	loading  bool
	version  uint64

	// publishMu serializes subscriber delivery.
	publishMu   sync.Mutex
	subscribers map[int]func(FilterSnapshot)
	nextSub     int

	log *zap.Logger
}

func NewFilterEngine(records []models.ModelRecord) *FilterEngine {
	e := &FilterEngine{
		records:     append([]models.ModelRecord(nil), records...),
		criteria:    DefaultCriteria(),
		subscribers: make(map[int]func(FilterSnapshot)),
		log:         logger.Named("filter_engine"),
	}
	e.visible = FilterModels(e.records, e.criteria)
	return e
}

// Load replaces the record set. The loading flag is raised while the swap
// is published so consumers can show a transition state.
func (e *FilterEngine) Load(records []models.ModelRecord) {
	e.mutate(func() {
		e.loading = true
	})
	e.mutate(func() {
		e.records = append([]models.ModelRecord(nil), records...)
		e.loading = false
	})
	e.log.Info("Record set loaded", zap.Int("records", len(records)))
}

// SetQuery stores q verbatim and recomputes the visible subset.
func (e *FilterEngine) SetQuery(q string) FilterSnapshot {
	return e.mutate(func() {
		e.criteria.Query = q
	})
}

// SetCrop stores c and recomputes the visible subset. c is expected to come
// from models.CropTypes; the engine does not re-validate it.
func (e *FilterEngine) SetCrop(c models.CropType) FilterSnapshot {
	return e.mutate(func() {
		e.criteria.Crop = c
	})
}

func (e *FilterEngine) Snapshot() FilterSnapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.snapshotLocked()
}

// Search runs criteria against the record set without touching the shared
// criteria.
func (e *FilterEngine) Search(criteria FilterCriteria) []models.ModelRecord {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return FilterModels(e.records, criteria)
}

// Records returns the full record set in original order.
func (e *FilterEngine) Records() []models.ModelRecord {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]models.ModelRecord(nil), e.records...)
}

func (e *FilterEngine) FindByID(id string) (models.ModelRecord, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, r := range e.records {
		if r.ID == id {
			return r, nil
		}
	}
	return models.ModelRecord{}, ErrModelNotFound
}

// Subscribe registers fn to receive every snapshot published after this
// call. fn runs on the mutating goroutine and must not call back into the
// engine's setters. The returned function removes the subscription.
func (e *FilterEngine) Subscribe(fn func(FilterSnapshot)) func() {
	e.publishMu.Lock()
	id := e.nextSub
	e.nextSub++
	e.subscribers[id] = fn
	e.publishMu.Unlock()

	return func() {
		e.publishMu.Lock()
		delete(e.subscribers, id)
		e.publishMu.Unlock()
	}
}

func (e *FilterEngine) mutate(apply func()) FilterSnapshot {
	e.mu.Lock()
	apply()
	e.visible = FilterModels(e.records, e.criteria)
	e.version++
	snap := e.snapshotLocked()
	// Take the publish lock before releasing state so deliveries keep
	// version order.
	e.publishMu.Lock()
	e.mu.Unlock()

	for _, fn := range e.subscribers {
		fn(snap)
	}
	e.publishMu.Unlock()

	e.log.Debug("Filter recomputed",
		zap.String("query", snap.Query),
		zap.String("crop", string(snap.Crop)),
		zap.Int("visible", snap.Total),
		zap.Uint64("version", snap.Version))
	return snap
}

func (e *FilterEngine) snapshotLocked() FilterSnapshot {
	return FilterSnapshot{
		Query:   e.criteria.Query,
		Crop:    e.criteria.Crop,
		Visible: e.visible,
		Total:   len(e.visible),
		Loading: e.loading,
		Version: e.version,
	}
}
