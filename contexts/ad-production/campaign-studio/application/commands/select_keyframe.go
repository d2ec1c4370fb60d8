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

type SelectKeyframeCommand struct {
	CampaignID string
	KeyframeID string
}

// SelectKeyframeResult reports the winning keyframe and where the slot
// sequence goes next. Both next pointers nil means every slot is resolved.
type SelectKeyframeResult struct {
	Selected     entities.Keyframe
	NextSection  *entities.Section
	NextPosition *entities.Position
	Complete     bool
}

// SelectKeyframeUseCase arbitrates one slot's variant group. Only a
// generated variant can win; winning rejects the three siblings. Selecting
// a variant that is still generating fails with ErrPreconditionFailed.
type SelectKeyframeUseCase struct {
	Campaigns ports.CampaignRepository
	Keyframes ports.KeyframeRepository
	Outbox    ports.OutboxWriter
	Clock     ports.Clock
	Logger    *slog.Logger
}

func (uc SelectKeyframeUseCase) Execute(ctx context.Context, cmd SelectKeyframeCommand) (SelectKeyframeResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	campaign, err := uc.Campaigns.GetCampaign(ctx, strings.TrimSpace(cmd.CampaignID))
	if err != nil {
		return SelectKeyframeResult{}, err
	}
	if campaign.Phase != entities.PhaseKeyframing {
		return SelectKeyframeResult{}, fmt.Errorf("%w: keyframes are selected during keyframing, campaign is in %s",
			domainerrors.ErrPhaseViolation, campaign.Phase)
	}
	keyframe, err := uc.Keyframes.GetKeyframe(ctx, strings.TrimSpace(cmd.KeyframeID))
	if err != nil {
		return SelectKeyframeResult{}, err
	}
	if keyframe.CampaignID != campaign.CampaignID {
		return SelectKeyframeResult{}, fmt.Errorf("%w: keyframe %s", domainerrors.ErrKeyframeNotFound, cmd.KeyframeID)
	}
	if keyframe.Status != entities.KeyframeStatusGenerated {
		return SelectKeyframeResult{}, fmt.Errorf("%w: keyframe %s is %s, only generated variants can be selected",
			domainerrors.ErrPreconditionFailed, keyframe.KeyframeID, keyframe.Status)
	}

	variants, err := uc.Keyframes.ListKeyframesBySlot(ctx, campaign.CampaignID, keyframe.Section, keyframe.Position)
	if err != nil {
		return SelectKeyframeResult{}, err
	}
	now := uc.Clock.Now().UTC()
	for i := range variants {
		switch {
		case variants[i].KeyframeID == keyframe.KeyframeID:
			variants[i].Status = entities.KeyframeStatusSelected
			keyframe = variants[i]
		case variants[i].Status == entities.KeyframeStatusGenerated || variants[i].Status == entities.KeyframeStatusSelected:
			variants[i].Status = entities.KeyframeStatusRejected
		default:
			continue
		}
		variants[i].UpdatedAt = now
		if err := uc.Keyframes.UpdateKeyframe(ctx, variants[i]); err != nil {
			return SelectKeyframeResult{}, err
		}
	}

	nextSection, nextPosition := entities.NextSlot(keyframe.Section, keyframe.Position)
	result := SelectKeyframeResult{
		Selected:     keyframe,
		NextSection:  nextSection,
		NextPosition: nextPosition,
		Complete:     nextSection == nil && nextPosition == nil,
	}
	if result.NextSection == nil && result.NextPosition != nil {
		// Position advanced within the same section.
		section := keyframe.Section
		result.NextSection = &section
	}

	if uc.Outbox != nil {
		_ = uc.Outbox.AppendOutbox(ctx, events.New(contractsv1.EventTypeKeyframeResolved, campaign.CampaignID, map[string]any{
			"keyframe_id": keyframe.KeyframeID,
			"section":     string(keyframe.Section),
			"position":    string(keyframe.Position),
			"complete":    result.Complete,
		}))
	}

	logger.Info("keyframe selected",
		"event", "keyframe_selected",
		"module", "ad-production/campaign-studio",
		"layer", "application",
		"campaign_id", campaign.CampaignID,
		"keyframe_id", keyframe.KeyframeID,
		"section", string(keyframe.Section),
		"position", string(keyframe.Position),
		"complete", result.Complete,
	)
	return result, nil
}
