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

type GenerateScriptCommand struct {
	CampaignID string
}

// GenerateScriptUseCase drafts the five-section script from the selected
// hook. The hook section's copy is the selected hook text verbatim; the
// director fills in the rest. A rerun replaces all five drafts.
type GenerateScriptUseCase struct {
	Campaigns ports.CampaignRepository
	Offers    ports.OfferRepository
	Avatars   ports.AvatarRepository
	Hooks     ports.HookOptionRepository
	Scripts   ports.ScriptRepository
	Director  ports.CreativeDirector
	Clock     ports.Clock
	IDGen     ports.IDGenerator
	Logger    *slog.Logger
}

func (uc GenerateScriptUseCase) Execute(ctx context.Context, cmd GenerateScriptCommand) ([]entities.Script, error) {
	logger := application.ResolveLogger(uc.Logger)
	campaign, err := uc.Campaigns.GetCampaign(ctx, strings.TrimSpace(cmd.CampaignID))
	if err != nil {
		return nil, err
	}
	if campaign.Phase != entities.PhaseScripting {
		return nil, fmt.Errorf("%w: scripts are generated during scripting, campaign is in %s",
			domainerrors.ErrPhaseViolation, campaign.Phase)
	}

	selectedHook, err := uc.selectedHook(ctx, campaign.CampaignID)
	if err != nil {
		return nil, err
	}
	offer, err := uc.Offers.GetOffer(ctx, campaign.OfferID)
	if err != nil {
		return nil, err
	}
	avatar, err := uc.Avatars.GetAvatar(ctx, campaign.AvatarID)
	if err != nil {
		return nil, err
	}

	drafts, err := uc.Director.WriteScript(ctx, ports.ScriptBrief{
		Offer:            offer,
		Avatar:           avatar,
		AdFormat:         campaign.AdFormat,
		Durations:        campaign.DurationAllocation,
		SelectedHookText: selectedHook.Text,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: script generation: %v", domainerrors.ErrGenerationFailed, err)
	}

	bySection := make(map[entities.Section]ports.ScriptDraft, len(drafts))
	for _, draft := range drafts {
		bySection[draft.Section] = draft
	}

	now := uc.Clock.Now().UTC()
	scripts := make([]entities.Script, 0, len(entities.Sections))
	for _, section := range entities.Sections {
		draft, ok := bySection[section]
		if !ok {
			return nil, fmt.Errorf("%w: script generation returned no %s section",
				domainerrors.ErrGenerationFailed, section)
		}
		scriptID, err := uc.IDGen.NewID(ctx)
		if err != nil {
			return nil, err
		}
		copyText := strings.TrimSpace(draft.CopyText)
		if section == entities.SectionHook {
			copyText = selectedHook.Text
		}
		duration := draft.DurationSeconds
		if duration <= 0 {
			duration = campaign.DurationAllocation.For(section)
		}
		scripts = append(scripts, entities.Script{
			ScriptID:          scriptID,
			CampaignID:        campaign.CampaignID,
			Section:           section,
			CopyText:          copyText,
			VisualDescription: strings.TrimSpace(draft.VisualDescription),
			DurationSeconds:   duration,
			Status:            entities.ScriptStatusDraft,
			CreatedAt:         now,
			UpdatedAt:         now,
		})
	}
	if err := uc.Scripts.ReplaceScripts(ctx, campaign.CampaignID, scripts); err != nil {
		return nil, err
	}

	logger.Info("script generated",
		"event", "script_generated",
		"module", "ad-production/campaign-studio",
		"layer", "application",
		"campaign_id", campaign.CampaignID,
		"sections", len(scripts),
	)
	return scripts, nil
}

func (uc GenerateScriptUseCase) selectedHook(ctx context.Context, campaignID string) (entities.HookOption, error) {
	options, err := uc.Hooks.ListHookOptionsByCampaign(ctx, campaignID)
	if err != nil {
		return entities.HookOption{}, err
	}
	for _, option := range options {
		if option.Status == entities.HookOptionStatusSelected {
			return option, nil
		}
	}
	return entities.HookOption{}, fmt.Errorf("%w: script generation requires a selected hook",
		domainerrors.ErrPreconditionFailed)
}
