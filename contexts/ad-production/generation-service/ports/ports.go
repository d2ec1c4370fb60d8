package ports

import (
	"context"
	"time"

	"adforge/contexts/ad-production/generation-service/domain/entities"
)

type SubmitRequest struct {
	Kind              entities.JobKind
	Prompt            string
	NegativePrompt    string
	ReferenceImageURL string
	DurationSeconds   int
}

type SubmittedTask struct {
	TaskID   string
	Provider string
	Model    string
}

type TaskState string

const (
	TaskStateRunning   TaskState = "running"
	TaskStateSucceeded TaskState = "succeeded"
	TaskStateFailed    TaskState = "failed"
)

type PollResult struct {
	State     TaskState
	ResultURL string
	Reason    string
}

// Provider is one media generation backend. Submit returns a task handle;
// Poll reports the task's current state. Providers never block for the full
// generation, the job manager owns the wait.
type Provider interface {
	Name() string
	Submit(ctx context.Context, req SubmitRequest) (SubmittedTask, error)
	Poll(ctx context.Context, taskID string) (PollResult, error)
}

// AssetStore persists a finished asset from the provider's ephemeral result
// URL and returns the durable URL the studio should record.
type AssetStore interface {
	Persist(ctx context.Context, kind entities.JobKind, assetID string, sourceURL string) (string, error)
}

type CompletionResult struct {
	AssetID      string
	Kind         entities.JobKind
	Succeeded    bool
	ResultURL    string
	Reason       string
	Attempts     int
	FallbackUsed bool
}

// ResultSink receives pipeline callbacks. TaskSubmitted fires once per
// provider attempt so the owning asset can be tied to the task handle before
// any webhook arrives; JobCompleted fires exactly once per job with the
// terminal outcome.
type ResultSink interface {
	TaskSubmitted(ctx context.Context, assetID string, task SubmittedTask) error
	JobCompleted(ctx context.Context, result CompletionResult) error
}

type Clock interface {
	Now() time.Time
}
