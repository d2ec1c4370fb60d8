package queries

import (
	"context"
	"log/slog"

	"adforge/contexts/ad-production/campaign-studio/domain/entities"
	"adforge/contexts/ad-production/campaign-studio/ports"
)

type ListCampaignsUseCase struct {
	Campaigns ports.CampaignRepository
	Logger    *slog.Logger
}

func (u ListCampaignsUseCase) Execute(ctx context.Context) ([]entities.Campaign, error) {
	return u.Campaigns.ListCampaigns(ctx)
}
