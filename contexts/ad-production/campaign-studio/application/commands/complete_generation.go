package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	application "adforge/contexts/ad-production/campaign-studio/application"
	"adforge/contexts/ad-production/campaign-studio/domain/entities"
	domainerrors "adforge/contexts/ad-production/campaign-studio/domain/errors"
	"adforge/contexts/ad-production/campaign-studio/ports"
	contractsv1 "adforge/contracts/gen/events/v1"
	"adforge/internal/shared/events"
)

type RecordGenerationTaskCommand struct {
	AssetID        string
	Provider       string
	Model          string
	ProviderTaskID string
}

// RecordGenerationTaskUseCase pins a provider task handle onto the keyframe
// or segment it generates, so webhook and poll completions can find their
// way back. The asset id is authoritative; keyframes are tried first.
type RecordGenerationTaskUseCase struct {
	Keyframes ports.KeyframeRepository
	Segments  ports.SegmentRepository
	Clock     ports.Clock
	Logger    *slog.Logger
}

func (uc RecordGenerationTaskUseCase) Execute(ctx context.Context, cmd RecordGenerationTaskCommand) error {
	logger := application.ResolveLogger(uc.Logger)
	assetID := strings.TrimSpace(cmd.AssetID)
	now := uc.Clock.Now().UTC()

	keyframe, err := uc.Keyframes.GetKeyframe(ctx, assetID)
	if err == nil {
		keyframe.ProviderTaskID = cmd.ProviderTaskID
		keyframe.UpdatedAt = now
		if err := uc.Keyframes.UpdateKeyframe(ctx, keyframe); err != nil {
			return err
		}
		logger.Debug("generation task recorded",
			"event", "generation_task_recorded",
			"module", "ad-production/campaign-studio",
			"layer", "application",
			"asset_kind", "keyframe",
			"asset_id", assetID,
			"provider_task_id", cmd.ProviderTaskID,
		)
		return nil
	}
	if !errors.Is(err, domainerrors.ErrKeyframeNotFound) {
		return err
	}

	segment, err := uc.Segments.GetSegment(ctx, assetID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrSegmentNotFound) {
			return fmt.Errorf("%w: asset %s", domainerrors.ErrTaskNotFound, assetID)
		}
		return err
	}
	segment.Provider = cmd.Provider
	segment.Model = cmd.Model
	segment.ProviderTaskID = cmd.ProviderTaskID
	if segment.Status == entities.SegmentStatusQueued {
		segment.Status = entities.SegmentStatusGenerating
	}
	segment.UpdatedAt = now
	if err := uc.Segments.UpdateSegment(ctx, segment); err != nil {
		return err
	}
	logger.Debug("generation task recorded",
		"event", "generation_task_recorded",
		"module", "ad-production/campaign-studio",
		"layer", "application",
		"asset_kind", "segment",
		"asset_id", assetID,
		"provider_task_id", cmd.ProviderTaskID,
	)
	return nil
}

type CompleteGenerationCommand struct {
	AssetID   string
	Succeeded bool
	ResultURL string
}

// CompleteGenerationUseCase lands a finished generation job on its asset.
// Success moves generating -> generated with the result URL; failure moves
// it to rejected. An asset that already left generating is a no-op, so a
// late poll result cannot clobber a webhook completion.
type CompleteGenerationUseCase struct {
	Keyframes ports.KeyframeRepository
	Segments  ports.SegmentRepository
	Outbox    ports.OutboxWriter
	Logger    *slog.Logger
}

func (uc CompleteGenerationUseCase) Execute(ctx context.Context, cmd CompleteGenerationCommand) error {
	logger := application.ResolveLogger(uc.Logger)
	assetID := strings.TrimSpace(cmd.AssetID)

	keyframe, err := uc.Keyframes.GetKeyframe(ctx, assetID)
	if err == nil {
		return uc.completeKeyframe(ctx, logger, keyframe, cmd)
	}
	if !errors.Is(err, domainerrors.ErrKeyframeNotFound) {
		return err
	}

	segment, err := uc.Segments.GetSegment(ctx, assetID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrSegmentNotFound) {
			return fmt.Errorf("%w: asset %s", domainerrors.ErrTaskNotFound, assetID)
		}
		return err
	}
	return uc.completeSegment(ctx, logger, segment, cmd)
}

func (uc CompleteGenerationUseCase) completeKeyframe(ctx context.Context, logger *slog.Logger, keyframe entities.Keyframe, cmd CompleteGenerationCommand) error {
	to := entities.KeyframeStatusGenerated
	if !cmd.Succeeded {
		to = entities.KeyframeStatusRejected
	}
	err := uc.Keyframes.ResolveKeyframeTask(ctx, keyframe.KeyframeID, to, strings.TrimSpace(cmd.ResultURL))
	if errors.Is(err, domainerrors.ErrPreconditionFailed) {
		// Already resolved by an earlier completion.
		return nil
	}
	if err != nil {
		return err
	}
	uc.emitFinished(ctx, keyframe.CampaignID, "keyframe", keyframe.KeyframeID, cmd.Succeeded)
	logger.Info("keyframe generation finished",
		"event", "keyframe_generation_finished",
		"module", "ad-production/campaign-studio",
		"layer", "application",
		"campaign_id", keyframe.CampaignID,
		"keyframe_id", keyframe.KeyframeID,
		"succeeded", cmd.Succeeded,
	)
	return nil
}

func (uc CompleteGenerationUseCase) completeSegment(ctx context.Context, logger *slog.Logger, segment entities.VideoSegment, cmd CompleteGenerationCommand) error {
	to := entities.SegmentStatusGenerated
	if !cmd.Succeeded {
		to = entities.SegmentStatusRejected
	}
	err := uc.Segments.ResolveSegmentTask(ctx, segment.SegmentID, to, strings.TrimSpace(cmd.ResultURL))
	if errors.Is(err, domainerrors.ErrPreconditionFailed) {
		return nil
	}
	if err != nil {
		return err
	}
	uc.emitFinished(ctx, segment.CampaignID, "segment", segment.SegmentID, cmd.Succeeded)
	logger.Info("segment generation finished",
		"event", "segment_generation_finished",
		"module", "ad-production/campaign-studio",
		"layer", "application",
		"campaign_id", segment.CampaignID,
		"segment_id", segment.SegmentID,
		"succeeded", cmd.Succeeded,
	)
	return nil
}

func (uc CompleteGenerationUseCase) emitFinished(ctx context.Context, campaignID, kind, assetID string, succeeded bool) {
	if uc.Outbox == nil {
		return
	}
	_ = uc.Outbox.AppendOutbox(ctx, events.New(contractsv1.EventTypeGenerationTaskFinished, campaignID, map[string]any{
		"asset_kind": kind,
		"asset_id":   assetID,
		"succeeded":  succeeded,
	}))
}

type CompleteGenerationByTaskCommand struct {
	ProviderTaskID string

	// Status is the provider's verbatim status string. Only terminal
	// statuses resolve the asset; anything else is acknowledged and
	// ignored so providers can send progress callbacks freely.
	Status    string
	ResultURL string
}

// CompleteGenerationByTaskUseCase is the webhook entry point. It maps a
// provider task handle to its owning keyframe or segment and delegates to
// the asset-id completion path.
type CompleteGenerationByTaskUseCase struct {
	Keyframes ports.KeyframeRepository
	Segments  ports.SegmentRepository
	Complete  CompleteGenerationUseCase
	Logger    *slog.Logger
}

func (uc CompleteGenerationByTaskUseCase) Execute(ctx context.Context, cmd CompleteGenerationByTaskCommand) error {
	logger := application.ResolveLogger(uc.Logger)
	taskID := strings.TrimSpace(cmd.ProviderTaskID)
	if taskID == "" {
		return fmt.Errorf("%w: task id is required", domainerrors.ErrInvalidInput)
	}

	succeeded, terminal := terminalOutcome(cmd.Status)
	if !terminal {
		logger.Debug("non-terminal provider callback ignored",
			"event", "provider_callback_ignored",
			"module", "ad-production/campaign-studio",
			"layer", "application",
			"provider_task_id", taskID,
			"status", cmd.Status,
		)
		return nil
	}

	assetID := ""
	if keyframe, err := uc.Keyframes.FindKeyframeByTask(ctx, taskID); err == nil {
		assetID = keyframe.KeyframeID
	} else if !errors.Is(err, domainerrors.ErrKeyframeNotFound) {
		return err
	}
	if assetID == "" {
		segment, err := uc.Segments.FindSegmentByTask(ctx, taskID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrSegmentNotFound) {
				return fmt.Errorf("%w: provider task %s", domainerrors.ErrTaskNotFound, taskID)
			}
			return err
		}
		assetID = segment.SegmentID
	}

	return uc.Complete.Execute(ctx, CompleteGenerationCommand{
		AssetID:   assetID,
		Succeeded: succeeded,
		ResultURL: cmd.ResultURL,
	})
}

// terminalOutcome folds the provider status vocabulary into (succeeded,
// terminal). Freepik reports COMPLETED/FAILED, sora completed/failed;
// comparison is case-insensitive.
func terminalOutcome(status string) (succeeded, terminal bool) {
	switch strings.ToUpper(strings.TrimSpace(status)) {
	case "COMPLETED", "SUCCEEDED", "SUCCESS":
		return true, true
	case "FAILED", "ERROR", "CANCELLED":
		return false, true
	default:
		return false, false
	}
}
