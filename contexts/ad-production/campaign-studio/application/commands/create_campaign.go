package commands

import (
	"context"
	"log/slog"
	"strings"

	application "adforge/contexts/ad-production/campaign-studio/application"
	"adforge/contexts/ad-production/campaign-studio/domain/entities"
	domainerrors "adforge/contexts/ad-production/campaign-studio/domain/errors"
	"adforge/contexts/ad-production/campaign-studio/ports"
)

type CreateCampaignCommand struct {
	OfferID         string
	AvatarID        string
	AdFormat        entities.AdFormat
	SkipConsistency bool
	Durations       *entities.DurationAllocation
}

type CreateCampaignUseCase struct {
	Campaigns ports.CampaignRepository
	Offers    ports.OfferRepository
	Avatars   ports.AvatarRepository
	Clock     ports.Clock
	IDGen     ports.IDGenerator
	Logger    *slog.Logger
}

func (uc CreateCampaignUseCase) Execute(ctx context.Context, cmd CreateCampaignCommand) (entities.Campaign, error) {
	logger := application.ResolveLogger(uc.Logger)
	if !entities.IsSupportedAdFormat(cmd.AdFormat) {
		return entities.Campaign{}, domainerrors.ErrInvalidInput
	}
	if _, err := uc.Offers.GetOffer(ctx, strings.TrimSpace(cmd.OfferID)); err != nil {
		return entities.Campaign{}, err
	}
	if _, err := uc.Avatars.GetAvatar(ctx, strings.TrimSpace(cmd.AvatarID)); err != nil {
		return entities.Campaign{}, err
	}

	durations := entities.DefaultDurationAllocation()
	if cmd.Durations != nil {
		if cmd.Durations.Total() <= 0 {
			return entities.Campaign{}, domainerrors.ErrInvalidInput
		}
		durations = *cmd.Durations
	}

	campaignID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.Campaign{}, err
	}
	now := uc.Clock.Now().UTC()
	campaign := entities.Campaign{
		CampaignID:         campaignID,
		OfferID:            strings.TrimSpace(cmd.OfferID),
		AvatarID:           strings.TrimSpace(cmd.AvatarID),
		AdFormat:           cmd.AdFormat,
		Phase:              entities.PhaseSetup,
		SkipConsistency:    cmd.SkipConsistency,
		DurationAllocation: durations,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.Campaigns.CreateCampaign(ctx, campaign); err != nil {
		return entities.Campaign{}, err
	}

	logger.Info("campaign created",
		"event", "campaign_created",
		"module", "ad-production/campaign-studio",
		"layer", "application",
		"campaign_id", campaign.CampaignID,
		"ad_format", string(campaign.AdFormat),
		"skip_consistency", campaign.SkipConsistency,
	)
	return campaign, nil
}
