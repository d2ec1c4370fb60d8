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

type AssembleStoryboardCommand struct {
	CampaignID string
}

// AssembleStoryboardUseCase folds the fifteen selected keyframes, the ten
// effective transition texts and the approved scripts into the ordered
// storyboard. Assembly is a pure read of prior decisions; it invents
// nothing, so re-running it on the same inputs yields the same board.
type AssembleStoryboardUseCase struct {
	Campaigns   ports.CampaignRepository
	Scripts     ports.ScriptRepository
	Keyframes   ports.KeyframeRepository
	Transitions ports.TransitionRepository
	Outbox      ports.OutboxWriter
	Clock       ports.Clock
	Logger      *slog.Logger
}

func (uc AssembleStoryboardUseCase) Execute(ctx context.Context, cmd AssembleStoryboardCommand) (entities.Storyboard, error) {
	logger := application.ResolveLogger(uc.Logger)
	campaign, err := uc.Campaigns.GetCampaign(ctx, strings.TrimSpace(cmd.CampaignID))
	if err != nil {
		return entities.Storyboard{}, err
	}
	if campaign.Phase != entities.PhaseStoryboarding {
		return entities.Storyboard{}, fmt.Errorf("%w: storyboards are assembled during storyboarding, campaign is in %s",
			domainerrors.ErrPhaseViolation, campaign.Phase)
	}
	selectedCount, err := uc.Keyframes.CountSelectedKeyframes(ctx, campaign.CampaignID)
	if err != nil {
		return entities.Storyboard{}, err
	}
	if selectedCount < entities.SlotCount {
		return entities.Storyboard{}, fmt.Errorf("%w: assembly requires %d selected keyframes, have %d",
			domainerrors.ErrPreconditionFailed, entities.SlotCount, selectedCount)
	}

	transitions, err := uc.Transitions.ListTransitionsByCampaign(ctx, campaign.CampaignID)
	if err != nil {
		return entities.Storyboard{}, err
	}
	transitionRef := func(section entities.Section, direction entities.TransitionDirection) (entities.TransitionRef, error) {
		for _, prompt := range transitions {
			if prompt.Section == section && prompt.Direction == direction {
				return entities.TransitionRef{PromptID: prompt.PromptID, Text: prompt.EffectiveText()}, nil
			}
		}
		return entities.TransitionRef{}, fmt.Errorf("%w: no %s transition for section %s",
			domainerrors.ErrPreconditionFailed, direction, section)
	}

	elapsed := 0
	sections := make([]entities.StoryboardSection, 0, len(entities.Sections))
	for _, section := range entities.Sections {
		keyframes, err := selectedSlotKeyframes(ctx, uc.Keyframes, campaign.CampaignID, section)
		if err != nil {
			return entities.Storyboard{}, err
		}
		startToMiddle, err := transitionRef(section, entities.TransitionStartToMiddle)
		if err != nil {
			return entities.Storyboard{}, err
		}
		middleToEnd, err := transitionRef(section, entities.TransitionMiddleToEnd)
		if err != nil {
			return entities.Storyboard{}, err
		}
		script, err := sectionScriptOf(ctx, uc.Scripts, campaign.CampaignID, section)
		if err != nil {
			return entities.Storyboard{}, err
		}

		duration := script.DurationSeconds
		if duration <= 0 {
			duration = campaign.DurationAllocation.For(section)
		}
		sections = append(sections, entities.StoryboardSection{
			Section:   section,
			StartTime: elapsed,
			EndTime:   elapsed + duration,
			Keyframes: keyframes,
			Transitions: entities.StoryboardTransitions{
				StartToMiddle: startToMiddle,
				MiddleToEnd:   middleToEnd,
			},
			Dialogue: script.CopyText,
		})
		elapsed += duration
	}

	storyboard := entities.Storyboard{
		Sections:      sections,
		TotalDuration: elapsed,
		Status:        entities.StoryboardStatusDraft,
	}
	campaign.Storyboard = &storyboard
	campaign.UpdatedAt = uc.Clock.Now().UTC()
	if err := uc.Campaigns.UpdateCampaign(ctx, campaign); err != nil {
		return entities.Storyboard{}, err
	}
	if uc.Outbox != nil {
		_ = uc.Outbox.AppendOutbox(ctx, events.New(contractsv1.EventTypeStoryboardAssembled, campaign.CampaignID, map[string]any{
			"total_duration": storyboard.TotalDuration,
			"sections":       len(storyboard.Sections),
		}))
	}

	logger.Info("storyboard assembled",
		"event", "storyboard_assembled",
		"module", "ad-production/campaign-studio",
		"layer", "application",
		"campaign_id", campaign.CampaignID,
		"total_duration", storyboard.TotalDuration,
	)
	return storyboard, nil
}

type ApproveStoryboardCommand struct {
	CampaignID string
}

// ApproveStoryboardUseCase marks the assembled board ready for video
// generation. Approval is idempotent.
type ApproveStoryboardUseCase struct {
	Campaigns ports.CampaignRepository
	Clock     ports.Clock
	Logger    *slog.Logger
}

func (uc ApproveStoryboardUseCase) Execute(ctx context.Context, cmd ApproveStoryboardCommand) (entities.Storyboard, error) {
	logger := application.ResolveLogger(uc.Logger)
	campaign, err := uc.Campaigns.GetCampaign(ctx, strings.TrimSpace(cmd.CampaignID))
	if err != nil {
		return entities.Storyboard{}, err
	}
	if campaign.Storyboard == nil {
		return entities.Storyboard{}, fmt.Errorf("%w: no storyboard to approve", domainerrors.ErrPreconditionFailed)
	}
	if campaign.Storyboard.Status == entities.StoryboardStatusApproved {
		return *campaign.Storyboard, nil
	}

	campaign.Storyboard.Status = entities.StoryboardStatusApproved
	campaign.UpdatedAt = uc.Clock.Now().UTC()
	if err := uc.Campaigns.UpdateCampaign(ctx, campaign); err != nil {
		return entities.Storyboard{}, err
	}

	logger.Info("storyboard approved",
		"event", "storyboard_approved",
		"module", "ad-production/campaign-studio",
		"layer", "application",
		"campaign_id", campaign.CampaignID,
	)
	return *campaign.Storyboard, nil
}
