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

type GenerateConsistencySpecCommand struct {
	CampaignID string
}

// GenerateConsistencySpecUseCase drafts the visual contract for the
// campaign's avatar and environment. Regenerating overwrites a draft spec;
// a locked spec is never touched again.
type GenerateConsistencySpecUseCase struct {
	Campaigns ports.CampaignRepository
	Avatars   ports.AvatarRepository
	Director  ports.CreativeDirector
	Clock     ports.Clock
	Logger    *slog.Logger
}

func (uc GenerateConsistencySpecUseCase) Execute(ctx context.Context, cmd GenerateConsistencySpecCommand) (entities.ConsistencySpec, error) {
	logger := application.ResolveLogger(uc.Logger)
	campaign, err := uc.Campaigns.GetCampaign(ctx, strings.TrimSpace(cmd.CampaignID))
	if err != nil {
		return entities.ConsistencySpec{}, err
	}
	if campaign.Phase != entities.PhaseConsistency {
		return entities.ConsistencySpec{}, fmt.Errorf("%w: consistency specs are drafted during consistency, campaign is in %s",
			domainerrors.ErrPhaseViolation, campaign.Phase)
	}
	if campaign.ConsistencyLocked() {
		return entities.ConsistencySpec{}, fmt.Errorf("%w: consistency spec is locked", domainerrors.ErrPreconditionFailed)
	}
	avatar, err := uc.Avatars.GetAvatar(ctx, campaign.AvatarID)
	if err != nil {
		return entities.ConsistencySpec{}, err
	}

	spec, err := uc.Director.DraftConsistencySpec(ctx, ports.ConsistencyBrief{
		Avatar:   avatar,
		AdFormat: campaign.AdFormat,
	})
	if err != nil {
		return entities.ConsistencySpec{}, fmt.Errorf("%w: consistency spec generation: %v",
			domainerrors.ErrGenerationFailed, err)
	}
	spec.Status = entities.SpecStatusDraft

	campaign.ConsistencySpec = &spec
	campaign.UpdatedAt = uc.Clock.Now().UTC()
	if err := uc.Campaigns.UpdateCampaign(ctx, campaign); err != nil {
		return entities.ConsistencySpec{}, err
	}

	logger.Info("consistency spec drafted",
		"event", "consistency_spec_drafted",
		"module", "ad-production/campaign-studio",
		"layer", "application",
		"campaign_id", campaign.CampaignID,
	)
	return spec, nil
}

type UpdateConsistencySpecCommand struct {
	CampaignID string
	Spec       entities.ConsistencySpec
}

// UpdateConsistencySpecUseCase applies manual edits to a draft spec before
// it locks.
type UpdateConsistencySpecUseCase struct {
	Campaigns ports.CampaignRepository
	Clock     ports.Clock
	Logger    *slog.Logger
}

func (uc UpdateConsistencySpecUseCase) Execute(ctx context.Context, cmd UpdateConsistencySpecCommand) (entities.ConsistencySpec, error) {
	logger := application.ResolveLogger(uc.Logger)
	campaign, err := uc.Campaigns.GetCampaign(ctx, strings.TrimSpace(cmd.CampaignID))
	if err != nil {
		return entities.ConsistencySpec{}, err
	}
	if campaign.ConsistencyLocked() {
		return entities.ConsistencySpec{}, fmt.Errorf("%w: consistency spec is locked", domainerrors.ErrPreconditionFailed)
	}
	spec := cmd.Spec
	spec.Status = entities.SpecStatusDraft
	campaign.ConsistencySpec = &spec
	campaign.UpdatedAt = uc.Clock.Now().UTC()
	if err := uc.Campaigns.UpdateCampaign(ctx, campaign); err != nil {
		return entities.ConsistencySpec{}, err
	}

	logger.Info("consistency spec updated",
		"event", "consistency_spec_updated",
		"module", "ad-production/campaign-studio",
		"layer", "application",
		"campaign_id", campaign.CampaignID,
	)
	return spec, nil
}

type LockConsistencySpecCommand struct {
	CampaignID string
}

// LockConsistencySpecUseCase makes the draft spec the campaign's permanent
// visual contract. Locking an already-locked spec is a no-op.
type LockConsistencySpecUseCase struct {
	Campaigns ports.CampaignRepository
	Clock     ports.Clock
	Logger    *slog.Logger
}

func (uc LockConsistencySpecUseCase) Execute(ctx context.Context, cmd LockConsistencySpecCommand) (entities.ConsistencySpec, error) {
	logger := application.ResolveLogger(uc.Logger)
	campaign, err := uc.Campaigns.GetCampaign(ctx, strings.TrimSpace(cmd.CampaignID))
	if err != nil {
		return entities.ConsistencySpec{}, err
	}
	if campaign.ConsistencySpec == nil {
		return entities.ConsistencySpec{}, fmt.Errorf("%w: no consistency spec to lock", domainerrors.ErrPreconditionFailed)
	}
	if campaign.ConsistencyLocked() {
		return *campaign.ConsistencySpec, nil
	}

	campaign.ConsistencySpec.Status = entities.SpecStatusLocked
	campaign.UpdatedAt = uc.Clock.Now().UTC()
	if err := uc.Campaigns.UpdateCampaign(ctx, campaign); err != nil {
		return entities.ConsistencySpec{}, err
	}

	logger.Info("consistency spec locked",
		"event", "consistency_spec_locked",
		"module", "ad-production/campaign-studio",
		"layer", "application",
		"campaign_id", campaign.CampaignID,
	)
	return *campaign.ConsistencySpec, nil
}
