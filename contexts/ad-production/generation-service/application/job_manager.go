package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"adforge/contexts/ad-production/generation-service/domain/entities"
	domainerrors "adforge/contexts/ad-production/generation-service/domain/errors"
	"adforge/contexts/ad-production/generation-service/ports"
)

// PollPolicy bounds the wait for one provider task. Interval grows by
// Multiplier after every poll up to Max; a task still running after
// MaxAttempts polls counts as failed.
type PollPolicy struct {
	Initial     time.Duration
	Multiplier  float64
	Max         time.Duration
	MaxAttempts int
}

func DefaultPollPolicy() PollPolicy {
	return PollPolicy{
		Initial:     2 * time.Second,
		Multiplier:  1.5,
		Max:         30 * time.Second,
		MaxAttempts: 60,
	}
}

// Manager drives generation jobs from enqueue to terminal outcome: submit to
// the primary provider, poll with backoff, on failure try the fallback
// provider once, then report the result through the sink. One pool per media
// kind bounds provider concurrency.
type Manager struct {
	Images *Pool
	Videos *Pool

	ImagePrimary  ports.Provider
	VideoPrimary  ports.Provider
	VideoFallback ports.Provider

	Assets ports.AssetStore
	Sink   ports.ResultSink
	Clock  ports.Clock
	Poll   PollPolicy
	Logger *slog.Logger
}

func (m *Manager) Start(ctx context.Context) {
	m.Images.Start(ctx)
	m.Videos.Start(ctx)
}

func (m *Manager) Close() {
	m.Images.Close()
	m.Videos.Close()
}

func (m *Manager) EnqueueImage(ctx context.Context, job entities.GenerationJob) error {
	job.Kind = entities.JobKindImage
	return m.enqueue(ctx, m.Images, job, m.ImagePrimary, nil)
}

func (m *Manager) EnqueueVideo(ctx context.Context, job entities.GenerationJob) error {
	job.Kind = entities.JobKindVideo
	return m.enqueue(ctx, m.Videos, job, m.VideoPrimary, m.VideoFallback)
}

func (m *Manager) enqueue(ctx context.Context, pool *Pool, job entities.GenerationJob, primary, fallback ports.Provider) error {
	if strings.TrimSpace(job.AssetID) == "" || strings.TrimSpace(job.Prompt) == "" {
		return fmt.Errorf("%w: asset id and prompt are required", domainerrors.ErrInvalidJob)
	}
	if primary == nil {
		return fmt.Errorf("%w: no provider configured for %s jobs", domainerrors.ErrInvalidJob, job.Kind)
	}
	job.JobID = uuid.NewString()
	job.Status = entities.JobStatusPending
	job.CreatedAt = m.now()
	if err := pool.Submit(ctx, func(runCtx context.Context) {
		m.run(runCtx, job, primary, fallback)
	}); err != nil {
		return err
	}
	ResolveLogger(m.Logger).Debug("generation job queued",
		"event", "generation_job_queued",
		"module", "ad-production/generation-service",
		"layer", "application",
		"job_id", job.JobID,
		"asset_id", job.AssetID,
		"kind", string(job.Kind),
	)
	return nil
}

func (m *Manager) run(ctx context.Context, job entities.GenerationJob, primary, fallback ports.Provider) {
	logger := ResolveLogger(m.Logger)

	resultURL, err := m.attempt(ctx, &job, primary)
	if err != nil && fallback != nil {
		logger.Warn("primary provider failed, trying fallback",
			"event", "generation_fallback_attempt",
			"module", "ad-production/generation-service",
			"layer", "application",
			"job_id", job.JobID,
			"asset_id", job.AssetID,
			"primary", primary.Name(),
			"fallback", fallback.Name(),
			"error", err.Error(),
		)
		job.FallbackUsed = true
		resultURL, err = m.attempt(ctx, &job, fallback)
	}

	job.UpdatedAt = m.now()
	if err != nil {
		job.Status = entities.JobStatusRejected
		job.Reason = err.Error()
	} else {
		job.Status = entities.JobStatusGenerated
		job.ResultURL = resultURL
	}

	completion := ports.CompletionResult{
		AssetID:      job.AssetID,
		Kind:         job.Kind,
		Succeeded:    job.Status == entities.JobStatusGenerated,
		ResultURL:    job.ResultURL,
		Reason:       job.Reason,
		Attempts:     job.Attempts,
		FallbackUsed: job.FallbackUsed,
	}
	if sinkErr := m.Sink.JobCompleted(ctx, completion); sinkErr != nil {
		logger.Error("generation completion delivery failed",
			"event", "generation_completion_delivery_failed",
			"module", "ad-production/generation-service",
			"layer", "application",
			"job_id", job.JobID,
			"asset_id", job.AssetID,
			"error", sinkErr.Error(),
		)
		return
	}
	logger.Info("generation job finished",
		"event", "generation_job_finished",
		"module", "ad-production/generation-service",
		"layer", "application",
		"job_id", job.JobID,
		"asset_id", job.AssetID,
		"kind", string(job.Kind),
		"status", string(job.Status),
		"attempts", job.Attempts,
		"fallback_used", job.FallbackUsed,
	)
}

// attempt runs one provider end to end: submit, record the task handle, poll
// until terminal, persist the asset.
func (m *Manager) attempt(ctx context.Context, job *entities.GenerationJob, provider ports.Provider) (string, error) {
	job.Attempts++
	task, err := provider.Submit(ctx, ports.SubmitRequest{
		Kind:              job.Kind,
		Prompt:            job.Prompt,
		NegativePrompt:    job.NegativePrompt,
		ReferenceImageURL: job.ReferenceImageURL,
		DurationSeconds:   job.DurationSeconds,
	})
	if err != nil {
		return "", fmt.Errorf("%w: submit to %s: %v", domainerrors.ErrGenerationFailed, provider.Name(), err)
	}
	job.Provider = task.Provider
	job.Model = task.Model
	job.ProviderTaskID = task.TaskID
	job.Status = entities.JobStatusSubmitted

	if err := m.Sink.TaskSubmitted(ctx, job.AssetID, task); err != nil {
		ResolveLogger(m.Logger).Warn("task handle delivery failed",
			"event", "generation_task_record_failed",
			"module", "ad-production/generation-service",
			"layer", "application",
			"job_id", job.JobID,
			"asset_id", job.AssetID,
			"task_id", task.TaskID,
			"error", err.Error(),
		)
	}

	result, err := m.await(ctx, provider, task.TaskID)
	if err != nil {
		return "", err
	}
	if m.Assets == nil {
		return result.ResultURL, nil
	}
	stored, err := m.Assets.Persist(ctx, job.Kind, job.AssetID, result.ResultURL)
	if err != nil {
		return "", fmt.Errorf("%w: persist asset: %v", domainerrors.ErrGenerationFailed, err)
	}
	return stored, nil
}

func (m *Manager) await(ctx context.Context, provider ports.Provider, taskID string) (ports.PollResult, error) {
	policy := m.Poll
	if policy.MaxAttempts <= 0 {
		policy = DefaultPollPolicy()
	}
	interval := policy.Initial
	for attempt := 0; attempt < policy.MaxAttempts; attempt++ {
		if err := sleepCtx(ctx, interval); err != nil {
			return ports.PollResult{}, fmt.Errorf("%w: %v", domainerrors.ErrGenerationFailed, err)
		}
		result, err := provider.Poll(ctx, taskID)
		if err != nil {
			return ports.PollResult{}, fmt.Errorf("%w: poll %s task %s: %v", domainerrors.ErrGenerationFailed, provider.Name(), taskID, err)
		}
		switch result.State {
		case ports.TaskStateSucceeded:
			return result, nil
		case ports.TaskStateFailed:
			reason := result.Reason
			if reason == "" {
				reason = "provider reported failure"
			}
			return ports.PollResult{}, fmt.Errorf("%w: %s task %s: %s", domainerrors.ErrGenerationFailed, provider.Name(), taskID, reason)
		}
		interval = time.Duration(float64(interval) * policy.Multiplier)
		if interval > policy.Max {
			interval = policy.Max
		}
	}
	return ports.PollResult{}, fmt.Errorf("%w: %s task %s still running after %d polls", domainerrors.ErrGenerationFailed, provider.Name(), taskID, policy.MaxAttempts)
}

func (m *Manager) now() time.Time {
	if m.Clock == nil {
		return time.Now().UTC()
	}
	return m.Clock.Now().UTC()
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
