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

type GenerateKeyframesCommand struct {
	CampaignID string
	Section    entities.Section
	Position   entities.Position
}

// GenerateKeyframesUseCase drafts four prompt variants for one slot and
// enqueues an image job per variant. Slots are filled strictly in sequence;
// the previous slot must have a selected winner so its image can anchor
// continuity.
type GenerateKeyframesUseCase struct {
	Campaigns ports.CampaignRepository
	Scripts   ports.ScriptRepository
	Keyframes ports.KeyframeRepository
	Director  ports.CreativeDirector
	Media     ports.MediaGenerator
	Outbox    ports.OutboxWriter
	Clock     ports.Clock
	IDGen     ports.IDGenerator
	Logger    *slog.Logger
}

func (uc GenerateKeyframesUseCase) Execute(ctx context.Context, cmd GenerateKeyframesCommand) ([]entities.Keyframe, error) {
	logger := application.ResolveLogger(uc.Logger)
	if !entities.IsSupportedSection(cmd.Section) || !entities.IsSupportedPosition(cmd.Position) {
		return nil, fmt.Errorf("%w: unknown slot %s/%s", domainerrors.ErrInvalidInput, cmd.Section, cmd.Position)
	}
	campaign, err := uc.Campaigns.GetCampaign(ctx, strings.TrimSpace(cmd.CampaignID))
	if err != nil {
		return nil, err
	}
	if campaign.Phase != entities.PhaseKeyframing {
		return nil, fmt.Errorf("%w: keyframes are generated during keyframing, campaign is in %s",
			domainerrors.ErrPhaseViolation, campaign.Phase)
	}
	if !campaign.ConsistencyLocked() && !campaign.SkipConsistency {
		return nil, fmt.Errorf("%w: keyframing requires a locked consistency spec", domainerrors.ErrPreconditionFailed)
	}
	if err := uc.requirePreviousSelected(ctx, campaign.CampaignID, cmd.Section, cmd.Position); err != nil {
		return nil, err
	}

	script, err := sectionScriptOf(ctx, uc.Scripts, campaign.CampaignID, cmd.Section)
	if err != nil {
		return nil, err
	}
	referenceURL, err := application.ResolveContinuityReference(ctx, uc.Keyframes, campaign.CampaignID, cmd.Section, cmd.Position)
	if err != nil {
		return nil, err
	}

	drafts, err := uc.Director.WriteKeyframePrompts(ctx, ports.KeyframePromptBrief{
		Section:         cmd.Section,
		Position:        cmd.Position,
		AdFormat:        campaign.AdFormat,
		Script:          script,
		ConsistencySpec: campaign.ConsistencySpec,
		ReferenceURL:    referenceURL,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: keyframe prompt generation: %v", domainerrors.ErrGenerationFailed, err)
	}
	if len(drafts) != entities.KeyframeVariantCount {
		return nil, fmt.Errorf("%w: expected %d keyframe prompts, got %d",
			domainerrors.ErrGenerationFailed, entities.KeyframeVariantCount, len(drafts))
	}

	now := uc.Clock.Now().UTC()
	keyframes := make([]entities.Keyframe, 0, len(drafts))
	for i, draft := range drafts {
		keyframeID, err := uc.IDGen.NewID(ctx)
		if err != nil {
			return nil, err
		}
		keyframes = append(keyframes, entities.Keyframe{
			KeyframeID:     keyframeID,
			CampaignID:     campaign.CampaignID,
			Section:        cmd.Section,
			Position:       cmd.Position,
			VariantIndex:   i,
			PromptText:     strings.TrimSpace(draft.PromptText),
			NegativePrompt: strings.TrimSpace(draft.NegativePrompt),
			Status:         entities.KeyframeStatusGenerating,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}
	if err := uc.Keyframes.CreateKeyframes(ctx, keyframes); err != nil {
		return nil, err
	}

	for _, keyframe := range keyframes {
		job := ports.MediaJob{
			AssetID:           keyframe.KeyframeID,
			Prompt:            keyframe.PromptText,
			NegativePrompt:    keyframe.NegativePrompt,
			ReferenceImageURL: referenceURL,
		}
		if err := uc.Media.EnqueueImage(ctx, job); err != nil {
			return nil, fmt.Errorf("%w: image enqueue: %v", domainerrors.ErrGenerationFailed, err)
		}
	}
	if uc.Outbox != nil {
		_ = uc.Outbox.AppendOutbox(ctx, events.New(contractsv1.EventTypeKeyframeSlotRequested, campaign.CampaignID, map[string]any{
			"section":  string(cmd.Section),
			"position": string(cmd.Position),
			"variants": len(keyframes),
		}))
	}

	logger.Info("keyframe slot requested",
		"event", "keyframe_slot_requested",
		"module", "ad-production/campaign-studio",
		"layer", "application",
		"campaign_id", campaign.CampaignID,
		"section", string(cmd.Section),
		"position", string(cmd.Position),
		"variants", len(keyframes),
	)
	return keyframes, nil
}

func (uc GenerateKeyframesUseCase) requirePreviousSelected(ctx context.Context, campaignID string, section entities.Section, position entities.Position) error {
	prevSection, prevPosition, ok := entities.PreviousSlot(section, position)
	if !ok {
		return nil
	}
	_, found, err := uc.Keyframes.GetSelectedKeyframe(ctx, campaignID, prevSection, prevPosition)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: slot %s/%s requires a selected keyframe at %s/%s",
			domainerrors.ErrPreconditionFailed, section, position, prevSection, prevPosition)
	}
	return nil
}
