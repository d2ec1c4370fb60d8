package queries

import (
	"context"
	"log/slog"
	"strings"

	"adforge/contexts/ad-production/campaign-studio/domain/entities"
	domainerrors "adforge/contexts/ad-production/campaign-studio/domain/errors"
	"adforge/contexts/ad-production/campaign-studio/ports"
)

type GetOfferUseCase struct {
	Offers ports.OfferRepository
	Logger *slog.Logger
}

func (u GetOfferUseCase) Execute(ctx context.Context, offerID string) (entities.Offer, error) {
	if strings.TrimSpace(offerID) == "" {
		return entities.Offer{}, domainerrors.ErrInvalidInput
	}
	return u.Offers.GetOffer(ctx, strings.TrimSpace(offerID))
}

type ListOffersUseCase struct {
	Offers ports.OfferRepository
	Logger *slog.Logger
}

func (u ListOffersUseCase) Execute(ctx context.Context) ([]entities.Offer, error) {
	return u.Offers.ListOffers(ctx)
}

type GetAvatarUseCase struct {
	Avatars ports.AvatarRepository
	Logger  *slog.Logger
}

func (u GetAvatarUseCase) Execute(ctx context.Context, avatarID string) (entities.Avatar, error) {
	if strings.TrimSpace(avatarID) == "" {
		return entities.Avatar{}, domainerrors.ErrInvalidInput
	}
	return u.Avatars.GetAvatar(ctx, strings.TrimSpace(avatarID))
}

type ListAvatarsUseCase struct {
	Avatars ports.AvatarRepository
	Logger  *slog.Logger
}

func (u ListAvatarsUseCase) Execute(ctx context.Context) ([]entities.Avatar, error) {
	return u.Avatars.ListAvatars(ctx)
}
