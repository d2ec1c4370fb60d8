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

type SelectHookCommand struct {
	CampaignID string
	HookID     string
}

// SelectHookUseCase arbitrates the current hook batch: the chosen option
// becomes selected and every sibling in the batch becomes rejected, so at
// most one hook is ever selected per campaign.
type SelectHookUseCase struct {
	Campaigns ports.CampaignRepository
	Hooks     ports.HookOptionRepository
	Clock     ports.Clock
	Logger    *slog.Logger
}

func (uc SelectHookUseCase) Execute(ctx context.Context, cmd SelectHookCommand) (entities.HookOption, error) {
	logger := application.ResolveLogger(uc.Logger)
	campaign, err := uc.Campaigns.GetCampaign(ctx, strings.TrimSpace(cmd.CampaignID))
	if err != nil {
		return entities.HookOption{}, err
	}
	if campaign.Phase != entities.PhaseScripting {
		return entities.HookOption{}, fmt.Errorf("%w: hooks are selected during scripting, campaign is in %s",
			domainerrors.ErrPhaseViolation, campaign.Phase)
	}

	options, err := uc.Hooks.ListHookOptionsByCampaign(ctx, campaign.CampaignID)
	if err != nil {
		return entities.HookOption{}, err
	}
	var chosen *entities.HookOption
	now := uc.Clock.Now().UTC()
	for i := range options {
		if options[i].HookID == strings.TrimSpace(cmd.HookID) {
			options[i].Status = entities.HookOptionStatusSelected
			chosen = &options[i]
		} else {
			options[i].Status = entities.HookOptionStatusRejected
		}
		options[i].UpdatedAt = now
	}
	if chosen == nil {
		return entities.HookOption{}, fmt.Errorf("%w: hook option %s", domainerrors.ErrHookOptionNotFound, cmd.HookID)
	}
	if err := uc.Hooks.ReplaceHookOptions(ctx, campaign.CampaignID, options); err != nil {
		return entities.HookOption{}, err
	}

	campaign.UpdatedAt = now
	if err := uc.Campaigns.UpdateCampaign(ctx, campaign); err != nil {
		return entities.HookOption{}, err
	}

	logger.Info("hook option selected",
		"event", "hook_option_selected",
		"module", "ad-production/campaign-studio",
		"layer", "application",
		"campaign_id", campaign.CampaignID,
		"hook_id", chosen.HookID,
	)
	return *chosen, nil
}
