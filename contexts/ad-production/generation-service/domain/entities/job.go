package entities

import "time"

type JobKind string

const (
	JobKindImage JobKind = "image"
	JobKindVideo JobKind = "video"
)

type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusSubmitted JobStatus = "submitted"
	JobStatusGenerated JobStatus = "generated"
	JobStatusRejected  JobStatus = "rejected"
)

// GenerationJob is one provider-bound media request. AssetID names the
// studio record (keyframe or segment) the result belongs to; the job itself
// is transient and lives only inside the generation pipeline.
type GenerationJob struct {
	JobID             string
	AssetID           string
	Kind              JobKind
	Prompt            string
	NegativePrompt    string
	ReferenceImageURL string
	DurationSeconds   int

	Provider       string
	Model          string
	ProviderTaskID string
	Attempts       int
	FallbackUsed   bool

	Status    JobStatus
	ResultURL string
	Reason    string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (j GenerationJob) Terminal() bool {
	return j.Status == JobStatusGenerated || j.Status == JobStatusRejected
}
