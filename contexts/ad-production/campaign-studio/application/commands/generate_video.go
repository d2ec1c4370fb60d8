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
)

type GenerateVideoCommand struct {
	CampaignID string
}

// GenerateVideoUseCase turns the approved storyboard into ten video
// segments, one per transition, and enqueues a video job for each. The
// segment animates from the transition's source keyframe; its duration is
// the section's allocation split across the section's two transitions.
type GenerateVideoUseCase struct {
	Campaigns ports.CampaignRepository
	Segments  ports.SegmentRepository
	Director  ports.CreativeDirector
	Media     ports.MediaGenerator
	Clock     ports.Clock
	IDGen     ports.IDGenerator
	Logger    *slog.Logger
}

func (uc GenerateVideoUseCase) Execute(ctx context.Context, cmd GenerateVideoCommand) ([]entities.VideoSegment, error) {
	logger := application.ResolveLogger(uc.Logger)
	campaign, err := uc.Campaigns.GetCampaign(ctx, strings.TrimSpace(cmd.CampaignID))
	if err != nil {
		return nil, err
	}
	if campaign.Phase != entities.PhaseGeneratingVideo {
		return nil, fmt.Errorf("%w: segments are generated during generating_video, campaign is in %s",
			domainerrors.ErrPhaseViolation, campaign.Phase)
	}
	if campaign.Storyboard == nil {
		return nil, fmt.Errorf("%w: video generation requires an assembled storyboard", domainerrors.ErrPreconditionFailed)
	}

	now := uc.Clock.Now().UTC()
	segments := make([]entities.VideoSegment, 0, len(campaign.Storyboard.Sections)*len(entities.TransitionDirections))
	for _, board := range campaign.Storyboard.Sections {
		sectionDuration := board.EndTime - board.StartTime
		for i, direction := range entities.TransitionDirections {
			transition := board.Transitions.StartToMiddle
			sourceURL := board.Keyframes.Start.ImageURL
			if direction == entities.TransitionMiddleToEnd {
				transition = board.Transitions.MiddleToEnd
				sourceURL = board.Keyframes.Middle.ImageURL
			}

			prompt, err := uc.Director.WriteVideoPrompt(ctx, ports.VideoPromptBrief{
				Section:        board.Section,
				Direction:      direction,
				TransitionText: transition.Text,
				Dialogue:       board.Dialogue,
				AdFormat:       campaign.AdFormat,
			})
			if err != nil {
				return nil, fmt.Errorf("%w: video prompt generation: %v", domainerrors.ErrGenerationFailed, err)
			}

			// First transition takes the rounding remainder so the two
			// halves always sum to the section allocation.
			duration := sectionDuration / len(entities.TransitionDirections)
			if i == 0 {
				duration = sectionDuration - duration
			}

			segmentID, err := uc.IDGen.NewID(ctx)
			if err != nil {
				return nil, err
			}
			segments = append(segments, entities.VideoSegment{
				SegmentID:         segmentID,
				CampaignID:        campaign.CampaignID,
				Section:           board.Section,
				Direction:         direction,
				VideoPrompt:       strings.TrimSpace(prompt),
				SourceKeyframeURL: sourceURL,
				DurationSeconds:   duration,
				Status:            entities.SegmentStatusQueued,
				CreatedAt:         now,
				UpdatedAt:         now,
			})
		}
	}
	if err := uc.Segments.CreateSegments(ctx, segments); err != nil {
		return nil, err
	}

	for _, segment := range segments {
		job := ports.MediaJob{
			AssetID:           segment.SegmentID,
			Prompt:            segment.VideoPrompt,
			ReferenceImageURL: segment.SourceKeyframeURL,
			DurationSeconds:   segment.DurationSeconds,
		}
		if err := uc.Media.EnqueueVideo(ctx, job); err != nil {
			return nil, fmt.Errorf("%w: video enqueue: %v", domainerrors.ErrGenerationFailed, err)
		}
	}

	logger.Info("video segments queued",
		"event", "video_segments_queued",
		"module", "ad-production/campaign-studio",
		"layer", "application",
		"campaign_id", campaign.CampaignID,
		"segments", len(segments),
	)
	return segments, nil
}
