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

type UpdateScriptCommand struct {
	CampaignID        string
	ScriptID          string
	CopyText          *string
	VisualDescription *string
}

// UpdateScriptUseCase applies manual edits to a draft script section.
// Approved scripts are immutable.
type UpdateScriptUseCase struct {
	Scripts ports.ScriptRepository
	Clock   ports.Clock
	Logger  *slog.Logger
}

func (uc UpdateScriptUseCase) Execute(ctx context.Context, cmd UpdateScriptCommand) (entities.Script, error) {
	logger := application.ResolveLogger(uc.Logger)
	script, err := uc.Scripts.GetScript(ctx, strings.TrimSpace(cmd.ScriptID))
	if err != nil {
		return entities.Script{}, err
	}
	if script.CampaignID != strings.TrimSpace(cmd.CampaignID) {
		return entities.Script{}, fmt.Errorf("%w: script %s", domainerrors.ErrScriptNotFound, cmd.ScriptID)
	}
	if script.Status == entities.ScriptStatusApproved {
		return entities.Script{}, fmt.Errorf("%w: approved scripts cannot be edited", domainerrors.ErrPreconditionFailed)
	}
	if cmd.CopyText != nil {
		script.CopyText = strings.TrimSpace(*cmd.CopyText)
	}
	if cmd.VisualDescription != nil {
		script.VisualDescription = strings.TrimSpace(*cmd.VisualDescription)
	}
	script.UpdatedAt = uc.Clock.Now().UTC()
	if err := uc.Scripts.UpdateScript(ctx, script); err != nil {
		return entities.Script{}, err
	}

	logger.Info("script updated",
		"event", "script_updated",
		"module", "ad-production/campaign-studio",
		"layer", "application",
		"campaign_id", script.CampaignID,
		"script_id", script.ScriptID,
		"section", string(script.Section),
	)
	return script, nil
}

type ApproveScriptCommand struct {
	CampaignID string

	// ScriptID approves one section; empty approves every section.
	ScriptID string
}

// ApproveScriptUseCase moves draft scripts to approved. Approval is
// idempotent per section.
type ApproveScriptUseCase struct {
	Scripts ports.ScriptRepository
	Clock   ports.Clock
	Logger  *slog.Logger
}

func (uc ApproveScriptUseCase) Execute(ctx context.Context, cmd ApproveScriptCommand) ([]entities.Script, error) {
	logger := application.ResolveLogger(uc.Logger)
	campaignID := strings.TrimSpace(cmd.CampaignID)
	scripts, err := uc.Scripts.ListScriptsByCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if len(scripts) == 0 {
		return nil, fmt.Errorf("%w: campaign %s has no scripts", domainerrors.ErrScriptNotFound, campaignID)
	}

	scriptID := strings.TrimSpace(cmd.ScriptID)
	now := uc.Clock.Now().UTC()
	matched := scriptID == ""
	approved := make([]entities.Script, 0, len(scripts))
	for i := range scripts {
		if scriptID != "" && scripts[i].ScriptID != scriptID {
			continue
		}
		matched = true
		if scripts[i].Status != entities.ScriptStatusApproved {
			scripts[i].Status = entities.ScriptStatusApproved
			scripts[i].UpdatedAt = now
			if err := uc.Scripts.UpdateScript(ctx, scripts[i]); err != nil {
				return nil, err
			}
		}
		approved = append(approved, scripts[i])
	}
	if !matched {
		return nil, fmt.Errorf("%w: script %s", domainerrors.ErrScriptNotFound, scriptID)
	}

	logger.Info("script approved",
		"event", "script_approved",
		"module", "ad-production/campaign-studio",
		"layer", "application",
		"campaign_id", campaignID,
		"approved", len(approved),
	)
	return approved, nil
}
