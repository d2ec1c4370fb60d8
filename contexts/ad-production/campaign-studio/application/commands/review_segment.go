package commands

import (
	"context"
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

type ApproveSegmentCommand struct {
	CampaignID string
	SegmentID  string
}

// ApproveSegmentUseCase accepts a generated segment. Only generated
// segments can be approved; approval is idempotent.
type ApproveSegmentUseCase struct {
	Segments ports.SegmentRepository
	Outbox   ports.OutboxWriter
	Clock    ports.Clock
	Logger   *slog.Logger
}

func (uc ApproveSegmentUseCase) Execute(ctx context.Context, cmd ApproveSegmentCommand) (entities.VideoSegment, error) {
	logger := application.ResolveLogger(uc.Logger)
	segment, err := uc.Segments.GetSegment(ctx, strings.TrimSpace(cmd.SegmentID))
	if err != nil {
		return entities.VideoSegment{}, err
	}
	if segment.CampaignID != strings.TrimSpace(cmd.CampaignID) {
		return entities.VideoSegment{}, fmt.Errorf("%w: segment %s", domainerrors.ErrSegmentNotFound, cmd.SegmentID)
	}
	if segment.Status == entities.SegmentStatusApproved {
		return segment, nil
	}
	if segment.Status != entities.SegmentStatusGenerated {
		return entities.VideoSegment{}, fmt.Errorf("%w: segment %s is %s, only generated segments can be approved",
			domainerrors.ErrPreconditionFailed, segment.SegmentID, segment.Status)
	}

	segment.Status = entities.SegmentStatusApproved
	segment.UpdatedAt = uc.Clock.Now().UTC()
	if err := uc.Segments.UpdateSegment(ctx, segment); err != nil {
		return entities.VideoSegment{}, err
	}
	if uc.Outbox != nil {
		_ = uc.Outbox.AppendOutbox(ctx, events.New(contractsv1.EventTypeSegmentResolved, segment.CampaignID, map[string]string{
			"segment_id": segment.SegmentID,
			"status":     string(segment.Status),
		}))
	}

	logger.Info("video segment approved",
		"event", "video_segment_approved",
		"module", "ad-production/campaign-studio",
		"layer", "application",
		"campaign_id", segment.CampaignID,
		"segment_id", segment.SegmentID,
	)
	return segment, nil
}

type RegenerateSegmentCommand struct {
	CampaignID string
	SegmentID  string

	// PromptOverride replaces the stored video prompt for the retry.
	PromptOverride string
}

// RegenerateSegmentUseCase rejects the current take and queues a fresh
// generation attempt for the same transition.
type RegenerateSegmentUseCase struct {
	Segments ports.SegmentRepository
	Media    ports.MediaGenerator
	Clock    ports.Clock
	Logger   *slog.Logger
}

func (uc RegenerateSegmentUseCase) Execute(ctx context.Context, cmd RegenerateSegmentCommand) (entities.VideoSegment, error) {
	logger := application.ResolveLogger(uc.Logger)
	segment, err := uc.Segments.GetSegment(ctx, strings.TrimSpace(cmd.SegmentID))
	if err != nil {
		return entities.VideoSegment{}, err
	}
	if segment.CampaignID != strings.TrimSpace(cmd.CampaignID) {
		return entities.VideoSegment{}, fmt.Errorf("%w: segment %s", domainerrors.ErrSegmentNotFound, cmd.SegmentID)
	}
	if segment.Status == entities.SegmentStatusQueued || segment.Status == entities.SegmentStatusGenerating {
		return entities.VideoSegment{}, fmt.Errorf("%w: segment %s is already %s",
			domainerrors.ErrPreconditionFailed, segment.SegmentID, segment.Status)
	}

	if override := strings.TrimSpace(cmd.PromptOverride); override != "" {
		segment.VideoPrompt = override
	}
	segment.Status = entities.SegmentStatusQueued
	segment.VideoURL = ""
	segment.Provider = ""
	segment.Model = ""
	segment.ProviderTaskID = ""
	segment.UpdatedAt = uc.Clock.Now().UTC()
	if err := uc.Segments.UpdateSegment(ctx, segment); err != nil {
		return entities.VideoSegment{}, err
	}

	job := ports.MediaJob{
		AssetID:           segment.SegmentID,
		Prompt:            segment.VideoPrompt,
		ReferenceImageURL: segment.SourceKeyframeURL,
		DurationSeconds:   segment.DurationSeconds,
	}
	if err := uc.Media.EnqueueVideo(ctx, job); err != nil {
		return entities.VideoSegment{}, fmt.Errorf("%w: video enqueue: %v", domainerrors.ErrGenerationFailed, err)
	}

	logger.Info("video segment regeneration queued",
		"event", "video_segment_regenerate",
		"module", "ad-production/campaign-studio",
		"layer", "application",
		"campaign_id", segment.CampaignID,
		"segment_id", segment.SegmentID,
	)
	return segment, nil
}
