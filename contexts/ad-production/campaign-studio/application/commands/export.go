package commands

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	application "adforge/contexts/ad-production/campaign-studio/application"
	"adforge/contexts/ad-production/campaign-studio/domain/entities"
	domainerrors "adforge/contexts/ad-production/campaign-studio/domain/errors"
	"adforge/contexts/ad-production/campaign-studio/ports"
	contractsv1 "adforge/contracts/gen/events/v1"
	"adforge/internal/shared/events"
)

type ExportCampaignCommand struct {
	CampaignID string
}

// ExportManifest lists the approved segments in playback order together
// with the timing the storyboard committed to.
type ExportManifest struct {
	CampaignID    string
	TotalDuration int
	Segments      []entities.VideoSegment
}

// ExportCampaignUseCase closes the pipeline: once every segment is approved
// the campaign moves to exported and the ordered segment list becomes the
// deliverable. Exporting an exported campaign returns the same manifest.
type ExportCampaignUseCase struct {
	Campaigns ports.CampaignRepository
	Segments  ports.SegmentRepository
	Outbox    ports.OutboxWriter
	Clock     ports.Clock
	Logger    *slog.Logger
}

func (uc ExportCampaignUseCase) Execute(ctx context.Context, cmd ExportCampaignCommand) (ExportManifest, error) {
	logger := application.ResolveLogger(uc.Logger)
	campaign, err := uc.Campaigns.GetCampaign(ctx, strings.TrimSpace(cmd.CampaignID))
	if err != nil {
		return ExportManifest{}, err
	}
	if campaign.Phase != entities.PhaseReviewing && campaign.Phase != entities.PhaseExported {
		return ExportManifest{}, fmt.Errorf("%w: export requires reviewing, campaign is in %s",
			domainerrors.ErrPhaseViolation, campaign.Phase)
	}

	segments, err := uc.Segments.ListSegmentsByCampaign(ctx, campaign.CampaignID)
	if err != nil {
		return ExportManifest{}, err
	}
	if len(segments) == 0 {
		return ExportManifest{}, fmt.Errorf("%w: nothing to export", domainerrors.ErrPreconditionFailed)
	}
	for _, segment := range segments {
		if segment.Status != entities.SegmentStatusApproved {
			return ExportManifest{}, fmt.Errorf("%w: export requires all segments approved, %s is %s",
				domainerrors.ErrPreconditionFailed, segment.SegmentID, segment.Status)
		}
	}
	sortSegmentsPlaybackOrder(segments)

	total := 0
	for _, segment := range segments {
		total += segment.DurationSeconds
	}

	if campaign.Phase != entities.PhaseExported {
		campaign.Phase = entities.PhaseExported
		campaign.UpdatedAt = uc.Clock.Now().UTC()
		if err := uc.Campaigns.UpdateCampaign(ctx, campaign); err != nil {
			return ExportManifest{}, err
		}
		if uc.Outbox != nil {
			_ = uc.Outbox.AppendOutbox(ctx, events.New(contractsv1.EventTypeCampaignPhaseChanged, campaign.CampaignID, map[string]string{
				"from": entities.PhaseReviewing.String(),
				"to":   entities.PhaseExported.String(),
			}))
		}
	}

	logger.Info("campaign exported",
		"event", "campaign_exported",
		"module", "ad-production/campaign-studio",
		"layer", "application",
		"campaign_id", campaign.CampaignID,
		"segments", len(segments),
		"total_duration", total,
	)
	return ExportManifest{
		CampaignID:    campaign.CampaignID,
		TotalDuration: total,
		Segments:      segments,
	}, nil
}

// sortSegmentsPlaybackOrder orders segments by canonical section order, then
// start_to_middle before middle_to_end within a section.
func sortSegmentsPlaybackOrder(segments []entities.VideoSegment) {
	rank := func(s entities.VideoSegment) int {
		sectionRank := len(entities.Sections)
		for i, section := range entities.Sections {
			if section == s.Section {
				sectionRank = i
				break
			}
		}
		directionRank := 0
		if s.Direction == entities.TransitionMiddleToEnd {
			directionRank = 1
		}
		return sectionRank*2 + directionRank
	}
	sort.SliceStable(segments, func(i, j int) bool {
		return rank(segments[i]) < rank(segments[j])
	})
}
