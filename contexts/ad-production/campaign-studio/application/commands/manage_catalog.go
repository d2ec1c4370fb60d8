package commands

import (
	"context"
	"log/slog"
	"strings"

	"adforge/contexts/ad-production/campaign-studio/domain/entities"
	domainerrors "adforge/contexts/ad-production/campaign-studio/domain/errors"
	"adforge/contexts/ad-production/campaign-studio/ports"
)

// Manual CRUD over the offer/avatar catalog, for callers that bring their
// own research instead of going through the creative director.

type SaveOfferUseCase struct {
	Offers ports.OfferRepository
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

func (uc SaveOfferUseCase) Create(ctx context.Context, offer entities.Offer) (entities.Offer, error) {
	if strings.TrimSpace(offer.ProductName) == "" {
		return entities.Offer{}, domainerrors.ErrInvalidInput
	}
	offerID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.Offer{}, err
	}
	now := uc.Clock.Now().UTC()
	offer.OfferID = offerID
	offer.CreatedAt = now
	offer.UpdatedAt = now
	if offer.Name == "" {
		offer.Name = offer.ProductName
	}
	if err := uc.Offers.CreateOffer(ctx, offer); err != nil {
		return entities.Offer{}, err
	}
	return offer, nil
}

func (uc SaveOfferUseCase) Update(ctx context.Context, offer entities.Offer) (entities.Offer, error) {
	existing, err := uc.Offers.GetOffer(ctx, offer.OfferID)
	if err != nil {
		return entities.Offer{}, err
	}
	offer.CreatedAt = existing.CreatedAt
	offer.UpdatedAt = uc.Clock.Now().UTC()
	if err := uc.Offers.UpdateOffer(ctx, offer); err != nil {
		return entities.Offer{}, err
	}
	return offer, nil
}

func (uc SaveOfferUseCase) Delete(ctx context.Context, offerID string) error {
	return uc.Offers.DeleteOffer(ctx, strings.TrimSpace(offerID))
}

type SaveAvatarUseCase struct {
	Avatars ports.AvatarRepository
	Clock   ports.Clock
	IDGen   ports.IDGenerator
	Logger  *slog.Logger
}

func (uc SaveAvatarUseCase) Create(ctx context.Context, avatar entities.Avatar) (entities.Avatar, error) {
	if strings.TrimSpace(avatar.Name) == "" {
		return entities.Avatar{}, domainerrors.ErrInvalidInput
	}
	avatarID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.Avatar{}, err
	}
	now := uc.Clock.Now().UTC()
	avatar.AvatarID = avatarID
	avatar.CreatedAt = now
	avatar.UpdatedAt = now
	if err := uc.Avatars.CreateAvatar(ctx, avatar); err != nil {
		return entities.Avatar{}, err
	}
	return avatar, nil
}

func (uc SaveAvatarUseCase) Update(ctx context.Context, avatar entities.Avatar) (entities.Avatar, error) {
	existing, err := uc.Avatars.GetAvatar(ctx, avatar.AvatarID)
	if err != nil {
		return entities.Avatar{}, err
	}
	avatar.CreatedAt = existing.CreatedAt
	avatar.UpdatedAt = uc.Clock.Now().UTC()
	if err := uc.Avatars.UpdateAvatar(ctx, avatar); err != nil {
		return entities.Avatar{}, err
	}
	return avatar, nil
}

func (uc SaveAvatarUseCase) Delete(ctx context.Context, avatarID string) error {
	return uc.Avatars.DeleteAvatar(ctx, strings.TrimSpace(avatarID))
}
