package bootstrap

import (
	"context"
	"log/slog"

	"adforge/contexts/ad-production/campaign-studio/application/commands"
	studioports "adforge/contexts/ad-production/campaign-studio/ports"
	genapp "adforge/contexts/ad-production/generation-service/application"
	genentities "adforge/contexts/ad-production/generation-service/domain/entities"
	genports "adforge/contexts/ad-production/generation-service/ports"
)

// mediaGenerator hands studio media jobs to the generation service.
type mediaGenerator struct {
	manager *genapp.Manager
}

func NewMediaGenerator(manager *genapp.Manager) studioports.MediaGenerator {
	return mediaGenerator{manager: manager}
}

func (g mediaGenerator) EnqueueImage(ctx context.Context, job studioports.MediaJob) error {
	return g.manager.EnqueueImage(ctx, translateJob(job))
}

func (g mediaGenerator) EnqueueVideo(ctx context.Context, job studioports.MediaJob) error {
	return g.manager.EnqueueVideo(ctx, translateJob(job))
}

func translateJob(job studioports.MediaJob) genentities.GenerationJob {
	return genentities.GenerationJob{
		AssetID:           job.AssetID,
		Prompt:            job.Prompt,
		NegativePrompt:    job.NegativePrompt,
		ReferenceImageURL: job.ReferenceImageURL,
		DurationSeconds:   job.DurationSeconds,
	}
}

// fanoutSink forwards generation outcomes to every registered sink.
type fanoutSink []genports.ResultSink

func (f fanoutSink) TaskSubmitted(ctx context.Context, assetID string, task genports.SubmittedTask) error {
	var firstErr error
	for _, sink := range f {
		if err := sink.TaskSubmitted(ctx, assetID, task); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (f fanoutSink) JobCompleted(ctx context.Context, result genports.CompletionResult) error {
	var firstErr error
	for _, sink := range f {
		if err := sink.JobCompleted(ctx, result); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// StudioSink feeds generation outcomes back into the studio's task and
// completion commands. The use cases are bound after the studio module is
// built because the studio itself needs the media generator first.
type StudioSink struct {
	RecordTask commands.RecordGenerationTaskUseCase
	Complete   commands.CompleteGenerationUseCase
	Logger     *slog.Logger
}

func (s *StudioSink) Bind(record commands.RecordGenerationTaskUseCase, complete commands.CompleteGenerationUseCase) {
	s.RecordTask = record
	s.Complete = complete
}

func (s *StudioSink) TaskSubmitted(ctx context.Context, assetID string, task genports.SubmittedTask) error {
	err := s.RecordTask.Execute(ctx, commands.RecordGenerationTaskCommand{
		AssetID:        assetID,
		Provider:       task.Provider,
		Model:          task.Model,
		ProviderTaskID: task.TaskID,
	})
	if err != nil && s.Logger != nil {
		s.Logger.Warn("record task failed",
			slog.String("event", "generation_task_record_failed"),
			slog.String("asset_id", assetID),
			slog.String("error", err.Error()),
		)
	}
	return err
}

func (s *StudioSink) JobCompleted(ctx context.Context, result genports.CompletionResult) error {
	err := s.Complete.Execute(ctx, commands.CompleteGenerationCommand{
		AssetID:   result.AssetID,
		Succeeded: result.Succeeded,
		ResultURL: result.ResultURL,
	})
	if err != nil && s.Logger != nil {
		s.Logger.Warn("completion apply failed",
			slog.String("event", "generation_completion_failed"),
			slog.String("asset_id", result.AssetID),
			slog.String("error", err.Error()),
		)
	}
	return err
}
