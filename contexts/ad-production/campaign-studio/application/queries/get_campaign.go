package queries

import (
	"context"
	"log/slog"
	"strings"

	application "adforge/contexts/ad-production/campaign-studio/application"
	"adforge/contexts/ad-production/campaign-studio/domain/entities"
	domainerrors "adforge/contexts/ad-production/campaign-studio/domain/errors"
	"adforge/contexts/ad-production/campaign-studio/ports"
)

// GetCampaignStateQuery is the request model for the full campaign read.
type GetCampaignStateQuery struct {
	CampaignID string
}

// CampaignState is the campaign document with every child collection the
// pipeline has produced so far, in one read.
type CampaignState struct {
	Campaign    entities.Campaign
	HookOptions []entities.HookOption
	Scripts     []entities.Script
	Keyframes   []entities.Keyframe
	Transitions []entities.TransitionPrompt
	Segments    []entities.VideoSegment
}

type GetCampaignStateUseCase struct {
	Campaigns   ports.CampaignRepository
	Hooks       ports.HookOptionRepository
	Scripts     ports.ScriptRepository
	Keyframes   ports.KeyframeRepository
	Transitions ports.TransitionRepository
	Segments    ports.SegmentRepository
	Logger      *slog.Logger
}

func (u GetCampaignStateUseCase) Execute(ctx context.Context, query GetCampaignStateQuery) (CampaignState, error) {
	campaignID := strings.TrimSpace(query.CampaignID)
	if campaignID == "" {
		return CampaignState{}, domainerrors.ErrInvalidInput
	}
	logger := application.ResolveLogger(u.Logger)

	campaign, err := u.Campaigns.GetCampaign(ctx, campaignID)
	if err != nil {
		return CampaignState{}, err
	}
	hooks, err := u.Hooks.ListHookOptionsByCampaign(ctx, campaignID)
	if err != nil {
		return CampaignState{}, err
	}
	scripts, err := u.Scripts.ListScriptsByCampaign(ctx, campaignID)
	if err != nil {
		return CampaignState{}, err
	}
	keyframes, err := u.Keyframes.ListKeyframesByCampaign(ctx, campaignID)
	if err != nil {
		return CampaignState{}, err
	}
	transitions, err := u.Transitions.ListTransitionsByCampaign(ctx, campaignID)
	if err != nil {
		return CampaignState{}, err
	}
	segments, err := u.Segments.ListSegmentsByCampaign(ctx, campaignID)
	if err != nil {
		return CampaignState{}, err
	}

	logger.Debug("campaign state read",
		"event", "campaign_state_read",
		"module", "ad-production/campaign-studio",
		"layer", "application",
		"campaign_id", campaignID,
		"phase", campaign.Phase.String(),
	)
	return CampaignState{
		Campaign:    campaign,
		HookOptions: hooks,
		Scripts:     scripts,
		Keyframes:   keyframes,
		Transitions: transitions,
		Segments:    segments,
	}, nil
}
