package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"cropai-modelhub/internal/models"
	"cropai-modelhub/pkg/logger"

	"go.uber.org/zap"
)

const (
	SubmissionSuccessMessage = "Model submitted successfully!"
	SubmissionFailureMessage = "Submission failed. Try again."
)

var (
	ErrSubmissionInFlight = errors.New("a submission is already in flight")
	ErrSubmissionFailed   = errors.New("submission failed")
	ErrUnknownDraftField  = errors.New("unknown submission field")
)

// DocumentStore appends one document to a named collection and assigns the
// submission timestamp itself. It returns the new document id.
type DocumentStore interface {
	Append(ctx context.Context, collection string, fields map[string]interface{}) (string, error)
}

// Notifier surfaces transient messages to the user. Delivery is best effort.
type Notifier interface {
	Success(ctx context.Context, message string)
	Error(ctx context.Context, message string)
}

// SubmissionPipeline validates a draft and performs a single store write.
type SubmissionPipeline struct {
	store    DocumentStore
	notifier Notifier
	log      *zap.Logger
}

func NewSubmissionPipeline(store DocumentStore, notifier Notifier) *SubmissionPipeline {
	return &SubmissionPipeline{
		store:    store,
		notifier: notifier,
		log:      logger.Named("submission"),
	}
}

// WithNotifier returns a copy of the pipeline that reports to n.
func (p *SubmissionPipeline) WithNotifier(n Notifier) *SubmissionPipeline {
	cp := *p
	cp.notifier = n
	return &cp
}

// Submit validates draft and, if every check passes, writes it once. A
// validation failure returns a *ValidationError and makes no store call. A
// store failure returns an error wrapping ErrSubmissionFailed. Nothing is
// retried.
func (p *SubmissionPipeline) Submit(ctx context.Context, draft models.SubmissionDraft) (string, error) {
	if err := ValidateSubmission(draft); err != nil {
		p.reject(ctx, err)
		return "", err
	}
	return p.persist(ctx, draft)
}

func (p *SubmissionPipeline) reject(ctx context.Context, err error) {
	p.log.Info("Submission rejected", zap.Error(err))
	p.notifier.Error(ctx, err.Error())
}

func (p *SubmissionPipeline) persist(ctx context.Context, draft models.SubmissionDraft) (string, error) {
	// The write is not cancellable once dispatched.
	ctx = context.WithoutCancel(ctx)

	id, err := p.store.Append(ctx, models.SubmissionCollection, draft.Fields())
	if err != nil {
		p.log.Error("Submission write failed",
			zap.String("model_name", draft.ModelName),
			zap.Error(err))
		p.notifier.Error(ctx, SubmissionFailureMessage)
		return "", fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}

	p.log.Info("Submission stored",
		zap.String("id", id),
		zap.String("model_name", draft.ModelName),
		zap.String("crop_type", draft.CropType))
	p.notifier.Success(ctx, SubmissionSuccessMessage)
	return id, nil
}

// SubmissionState is the per-form submit state machine.
type SubmissionState int

const (
	SubmissionIdle SubmissionState = iota
	SubmissionInFlight
)

func (s SubmissionState) String() string {
	if s == SubmissionInFlight {
		return "in_flight"
	}
	return "idle"
}

// SubmissionForm owns a draft and its idle/in-flight state. The pipeline
// only ever sees a copy of the draft.
type SubmissionForm struct {
	mu       sync.Mutex
	draft    models.SubmissionDraft
	state    SubmissionState
	pipeline *SubmissionPipeline
}

func NewSubmissionForm(p *SubmissionPipeline) *SubmissionForm {
	return &SubmissionForm{pipeline: p}
}

func (f *SubmissionForm) Draft() models.SubmissionDraft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

func (f *SubmissionForm) InFlight() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state == SubmissionInFlight
}

func (f *SubmissionForm) State() SubmissionState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// SetField updates one draft field by its JSON name.
func (f *SubmissionForm) SetField(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch name {
	case "modelName":
		f.draft.ModelName = value
	case "cropType":
		f.draft.CropType = value
	case "description":
		f.draft.Description = value
	case "accuracy":
		f.draft.Accuracy = value
	case "trainingDataSize":
		f.draft.TrainingDataSize = value
	case "email":
		f.draft.Email = value
	case "githubRepo":
		f.draft.GithubRepo = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownDraftField, name)
	}
	return nil
}

// Submit sends the current draft. On success the draft is reset; on any
// failure it is left as entered so the user can retry.
func (f *SubmissionForm) Submit(ctx context.Context) (string, error) {
	f.mu.Lock()
	return f.submitLocked(ctx)
}

// SubmitDraft replaces the draft with d and submits it as one step, so a
// concurrent caller cannot swap the draft in between.
func (f *SubmissionForm) SubmitDraft(ctx context.Context, d models.SubmissionDraft) (string, error) {
	f.mu.Lock()
	if f.state == SubmissionInFlight {
		f.mu.Unlock()
		return "", ErrSubmissionInFlight
	}
	f.draft = d
	return f.submitLocked(ctx)
}

// submitLocked is entered with f.mu held and releases it.
func (f *SubmissionForm) submitLocked(ctx context.Context) (string, error) {
	if f.state == SubmissionInFlight {
		f.mu.Unlock()
		return "", ErrSubmissionInFlight
	}
	snapshot := f.draft
	if err := ValidateSubmission(snapshot); err != nil {
		f.mu.Unlock()
		f.pipeline.reject(ctx, err)
		return "", err
	}
	f.state = SubmissionInFlight
	f.mu.Unlock()

	id, err := f.pipeline.persist(ctx, snapshot)

	f.mu.Lock()
	f.state = SubmissionIdle
	if err == nil {
		f.draft = models.SubmissionDraft{}
	}
	f.mu.Unlock()
	return id, err
}
