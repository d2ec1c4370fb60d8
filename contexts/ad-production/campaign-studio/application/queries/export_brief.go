package queries

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	application "adforge/contexts/ad-production/campaign-studio/application"
	domainerrors "adforge/contexts/ad-production/campaign-studio/domain/errors"
	"adforge/contexts/ad-production/campaign-studio/ports"
)

// RenderAvatarBriefUseCase renders an avatar's markdown research brief to
// HTML for download or embedding.
type RenderAvatarBriefUseCase struct {
	Avatars ports.AvatarRepository
	Logger  *slog.Logger
}

var briefMarkdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

func (u RenderAvatarBriefUseCase) Execute(ctx context.Context, avatarID string) (string, error) {
	logger := application.ResolveLogger(u.Logger)
	avatar, err := u.Avatars.GetAvatar(ctx, strings.TrimSpace(avatarID))
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(avatar.FullBriefMD) == "" {
		return "", fmt.Errorf("%w: avatar %s has no research brief", domainerrors.ErrPreconditionFailed, avatar.AvatarID)
	}

	var buf bytes.Buffer
	if err := briefMarkdown.Convert([]byte(avatar.FullBriefMD), &buf); err != nil {
		return "", fmt.Errorf("render avatar brief: %w", err)
	}

	logger.Debug("avatar brief rendered",
		"event", "avatar_brief_rendered",
		"module", "ad-production/campaign-studio",
		"layer", "application",
		"avatar_id", avatar.AvatarID,
	)
	return buf.String(), nil
}
