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

type GenerateHooksCommand struct {
	CampaignID string
}

// GenerateHooksUseCase asks the creative director for a batch of hook
// candidates and replaces any previous batch wholesale. Re-running it is a
// fresh draw, not an append.
type GenerateHooksUseCase struct {
	Campaigns ports.CampaignRepository
	Offers    ports.OfferRepository
	Avatars   ports.AvatarRepository
	Hooks     ports.HookOptionRepository
	Director  ports.CreativeDirector
	Clock     ports.Clock
	IDGen     ports.IDGenerator
	Logger    *slog.Logger
}

func (uc GenerateHooksUseCase) Execute(ctx context.Context, cmd GenerateHooksCommand) ([]entities.HookOption, error) {
	logger := application.ResolveLogger(uc.Logger)
	campaign, err := uc.Campaigns.GetCampaign(ctx, strings.TrimSpace(cmd.CampaignID))
	if err != nil {
		return nil, err
	}
	if campaign.Phase != entities.PhaseScripting {
		return nil, fmt.Errorf("%w: hooks are generated during scripting, campaign is in %s",
			domainerrors.ErrPhaseViolation, campaign.Phase)
	}
	offer, err := uc.Offers.GetOffer(ctx, campaign.OfferID)
	if err != nil {
		return nil, err
	}
	avatar, err := uc.Avatars.GetAvatar(ctx, campaign.AvatarID)
	if err != nil {
		return nil, err
	}

	drafts, err := uc.Director.WriteHookOptions(ctx, ports.HookBrief{
		Offer:    offer,
		Avatar:   avatar,
		AdFormat: campaign.AdFormat,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: hook generation: %v", domainerrors.ErrGenerationFailed, err)
	}
	if len(drafts) != entities.HookOptionCount {
		return nil, fmt.Errorf("%w: expected %d hook candidates, got %d",
			domainerrors.ErrGenerationFailed, entities.HookOptionCount, len(drafts))
	}

	now := uc.Clock.Now().UTC()
	options := make([]entities.HookOption, 0, len(drafts))
	for i, draft := range drafts {
		hookID, err := uc.IDGen.NewID(ctx)
		if err != nil {
			return nil, err
		}
		options = append(options, entities.HookOption{
			HookID:       hookID,
			CampaignID:   campaign.CampaignID,
			VariantIndex: i,
			Text:         strings.TrimSpace(draft.Text),
			StyleTag:     strings.TrimSpace(draft.StyleTag),
			Rationale:    strings.TrimSpace(draft.Rationale),
			Status:       entities.HookOptionStatusPending,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}
	if err := uc.Hooks.ReplaceHookOptions(ctx, campaign.CampaignID, options); err != nil {
		return nil, err
	}

	logger.Info("hook options generated",
		"event", "hook_options_generated",
		"module", "ad-production/campaign-studio",
		"layer", "application",
		"campaign_id", campaign.CampaignID,
		"count", len(options),
	)
	return options, nil
}
