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

type AdvancePhaseCommand struct {
	CampaignID string
	Target     entities.Phase
}

// AdvancePhaseUseCase is the phase state machine. A transition succeeds only
// on a legal edge whose target-specific precondition holds; every violation
// fails with ErrPhaseViolation naming what is missing. Phase ordinals never
// decrease.
type AdvancePhaseUseCase struct {
	Campaigns ports.CampaignRepository
	Scripts   ports.ScriptRepository
	Keyframes ports.KeyframeRepository
	Segments  ports.SegmentRepository
	Outbox    ports.OutboxWriter

	// AutoApproveStoryboard lets operators run unattended pipelines where a
	// draft storyboard is good enough to enter video generation.
	AutoApproveStoryboard bool

	Clock  ports.Clock
	Logger *slog.Logger
}

func (uc AdvancePhaseUseCase) Execute(ctx context.Context, cmd AdvancePhaseCommand) (entities.Campaign, error) {
	logger := application.ResolveLogger(uc.Logger)
	campaign, err := uc.Campaigns.GetCampaign(ctx, strings.TrimSpace(cmd.CampaignID))
	if err != nil {
		return entities.Campaign{}, err
	}

	if !entities.ValidEdge(campaign.Phase, cmd.Target, campaign.SkipConsistency) {
		return entities.Campaign{}, fmt.Errorf("%w: cannot move from %s to %s",
			domainerrors.ErrPhaseViolation, campaign.Phase, cmd.Target)
	}
	if err := uc.checkPrecondition(ctx, campaign, cmd.Target); err != nil {
		return entities.Campaign{}, err
	}

	from := campaign.Phase
	campaign.Phase = cmd.Target
	campaign.UpdatedAt = uc.Clock.Now().UTC()
	if err := uc.Campaigns.UpdateCampaign(ctx, campaign); err != nil {
		return entities.Campaign{}, err
	}
	if uc.Outbox != nil {
		_ = uc.Outbox.AppendOutbox(ctx, events.New(contractsv1.EventTypeCampaignPhaseChanged, campaign.CampaignID, map[string]string{
			"from": from.String(),
			"to":   campaign.Phase.String(),
		}))
	}

	logger.Info("campaign phase advanced",
		"event", "campaign_phase_advanced",
		"module", "ad-production/campaign-studio",
		"layer", "application",
		"campaign_id", campaign.CampaignID,
		"from_phase", from.String(),
		"to_phase", campaign.Phase.String(),
	)
	return campaign, nil
}

func (uc AdvancePhaseUseCase) checkPrecondition(ctx context.Context, campaign entities.Campaign, target entities.Phase) error {
	switch target {
	case entities.PhaseConsistency:
		return uc.requireScriptsApproved(ctx, campaign.CampaignID)

	case entities.PhaseKeyframing:
		if err := uc.requireScriptsApproved(ctx, campaign.CampaignID); err != nil {
			return err
		}
		if campaign.ConsistencyLocked() || campaign.SkipConsistency {
			return nil
		}
		return fmt.Errorf("%w: keyframing requires a locked consistency spec or an explicit skip",
			domainerrors.ErrPhaseViolation)

	case entities.PhaseStoryboarding:
		selected, err := uc.Keyframes.CountSelectedKeyframes(ctx, campaign.CampaignID)
		if err != nil {
			return err
		}
		if selected < entities.SlotCount {
			return fmt.Errorf("%w: storyboarding requires all %d keyframe slots selected, have %d",
				domainerrors.ErrPhaseViolation, entities.SlotCount, selected)
		}
		return nil

	case entities.PhaseGeneratingVideo:
		if campaign.Storyboard == nil {
			return fmt.Errorf("%w: video generation requires an assembled storyboard", domainerrors.ErrPhaseViolation)
		}
		if campaign.Storyboard.Status != entities.StoryboardStatusApproved && !uc.AutoApproveStoryboard {
			return fmt.Errorf("%w: video generation requires an approved storyboard", domainerrors.ErrPhaseViolation)
		}
		return nil

	case entities.PhaseReviewing:
		segments, err := uc.Segments.ListSegmentsByCampaign(ctx, campaign.CampaignID)
		if err != nil {
			return err
		}
		if len(segments) == 0 {
			return fmt.Errorf("%w: reviewing requires generated video segments", domainerrors.ErrPhaseViolation)
		}
		for _, segment := range segments {
			if !segment.Terminal() {
				return fmt.Errorf("%w: reviewing requires all segments finished, %s is %s",
					domainerrors.ErrPhaseViolation, segment.SegmentID, segment.Status)
			}
		}
		return nil

	case entities.PhaseExported:
		segments, err := uc.Segments.ListSegmentsByCampaign(ctx, campaign.CampaignID)
		if err != nil {
			return err
		}
		for _, segment := range segments {
			if segment.Status != entities.SegmentStatusApproved {
				return fmt.Errorf("%w: export requires all segments approved, %s is %s",
					domainerrors.ErrPhaseViolation, segment.SegmentID, segment.Status)
			}
		}
		return nil

	default:
		return nil
	}
}

func (uc AdvancePhaseUseCase) requireScriptsApproved(ctx context.Context, campaignID string) error {
	scripts, err := uc.Scripts.ListScriptsByCampaign(ctx, campaignID)
	if err != nil {
		return err
	}
	if len(scripts) < len(entities.Sections) {
		return fmt.Errorf("%w: requires scripts for all %d sections, have %d",
			domainerrors.ErrPhaseViolation, len(entities.Sections), len(scripts))
	}
	for _, script := range scripts {
		if script.Status != entities.ScriptStatusApproved {
			return fmt.Errorf("%w: requires all scripts approved, %s is %s",
				domainerrors.ErrPhaseViolation, script.Section, script.Status)
		}
	}
	return nil
}
