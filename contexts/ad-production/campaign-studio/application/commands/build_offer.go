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

type BuildOfferCommand struct {
	ProductName        string
	ProductDescription string
	TargetAudience     string
	UserNotes          string
}

// BuildOfferUseCase asks the creative director for a value-equation
// breakdown and persists it. Always creates a new offer record.
type BuildOfferUseCase struct {
	Offers   ports.OfferRepository
	Director ports.CreativeDirector
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Logger   *slog.Logger
}

func (uc BuildOfferUseCase) Execute(ctx context.Context, cmd BuildOfferCommand) (entities.Offer, error) {
	logger := application.ResolveLogger(uc.Logger)
	if strings.TrimSpace(cmd.ProductName) == "" || strings.TrimSpace(cmd.ProductDescription) == "" {
		return entities.Offer{}, domainerrors.ErrInvalidInput
	}

	draft, err := uc.Director.BuildOffer(ctx, ports.OfferBrief{
		ProductName:        strings.TrimSpace(cmd.ProductName),
		ProductDescription: strings.TrimSpace(cmd.ProductDescription),
		TargetAudience:     strings.TrimSpace(cmd.TargetAudience),
		UserNotes:          strings.TrimSpace(cmd.UserNotes),
	})
	if err != nil {
		return entities.Offer{}, err
	}

	offerID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.Offer{}, err
	}
	now := uc.Clock.Now().UTC()
	draft.OfferID = offerID
	draft.CreatedAt = now
	draft.UpdatedAt = now
	if draft.ProductName == "" {
		draft.ProductName = strings.TrimSpace(cmd.ProductName)
	}
	if draft.Name == "" {
		draft.Name = draft.ProductName
	}
	if err := uc.Offers.CreateOffer(ctx, draft); err != nil {
		return entities.Offer{}, err
	}

	logger.Info("offer built",
		"event", "offer_built",
		"module", "ad-production/campaign-studio",
		"layer", "application",
		"offer_id", draft.OfferID,
		"product_name", draft.ProductName,
	)
	return draft, nil
}

type BuildAvatarCommand struct {
	OfferID           string
	TargetDescription string
	Industry          string
	UserNotes         string
}

// BuildAvatarUseCase researches the target customer for an offer. Always
// creates a new avatar record.
type BuildAvatarUseCase struct {
	Offers   ports.OfferRepository
	Avatars  ports.AvatarRepository
	Director ports.CreativeDirector
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Logger   *slog.Logger
}

func (uc BuildAvatarUseCase) Execute(ctx context.Context, cmd BuildAvatarCommand) (entities.Avatar, error) {
	logger := application.ResolveLogger(uc.Logger)
	offer, err := uc.Offers.GetOffer(ctx, strings.TrimSpace(cmd.OfferID))
	if err != nil {
		return entities.Avatar{}, err
	}

	draft, err := uc.Director.BuildAvatar(ctx, ports.AvatarBrief{
		Offer:             offer,
		TargetDescription: strings.TrimSpace(cmd.TargetDescription),
		Industry:          strings.TrimSpace(cmd.Industry),
		UserNotes:         strings.TrimSpace(cmd.UserNotes),
	})
	if err != nil {
		return entities.Avatar{}, err
	}

	avatarID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.Avatar{}, err
	}
	now := uc.Clock.Now().UTC()
	draft.AvatarID = avatarID
	draft.CreatedAt = now
	draft.UpdatedAt = now
	if err := uc.Avatars.CreateAvatar(ctx, draft); err != nil {
		return entities.Avatar{}, err
	}

	logger.Info("avatar built",
		"event", "avatar_built",
		"module", "ad-production/campaign-studio",
		"layer", "application",
		"avatar_id", draft.AvatarID,
		"offer_id", offer.OfferID,
	)
	return draft, nil
}
