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

type GenerateTransitionsCommand struct {
	CampaignID string
	Section    entities.Section
}

// GenerateTransitionsUseCase drafts the two motion prompts of one section
// from its three selected keyframes. Regenerating replaces the section's
// prompts but preserves nothing; user edits live on the prompt records and
// survive only until the next replace.
type GenerateTransitionsUseCase struct {
	Campaigns   ports.CampaignRepository
	Scripts     ports.ScriptRepository
	Keyframes   ports.KeyframeRepository
	Transitions ports.TransitionRepository
	Director    ports.CreativeDirector
	Clock       ports.Clock
	IDGen       ports.IDGenerator
	Logger      *slog.Logger
}

func (uc GenerateTransitionsUseCase) Execute(ctx context.Context, cmd GenerateTransitionsCommand) ([]entities.TransitionPrompt, error) {
	logger := application.ResolveLogger(uc.Logger)
	if !entities.IsSupportedSection(cmd.Section) {
		return nil, fmt.Errorf("%w: unknown section %s", domainerrors.ErrInvalidInput, cmd.Section)
	}
	campaign, err := uc.Campaigns.GetCampaign(ctx, strings.TrimSpace(cmd.CampaignID))
	if err != nil {
		return nil, err
	}

	selected, err := selectedSlotKeyframes(ctx, uc.Keyframes, campaign.CampaignID, cmd.Section)
	if err != nil {
		return nil, err
	}
	script, err := sectionScriptOf(ctx, uc.Scripts, campaign.CampaignID, cmd.Section)
	if err != nil {
		return nil, err
	}

	drafts, err := uc.Director.WriteTransitionPrompts(ctx, ports.TransitionBrief{
		Section:   cmd.Section,
		AdFormat:  campaign.AdFormat,
		Script:    script,
		Keyframes: selected,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: transition generation: %v", domainerrors.ErrGenerationFailed, err)
	}

	byDirection := make(map[entities.TransitionDirection]ports.TransitionDraft, len(drafts))
	for _, draft := range drafts {
		byDirection[draft.Direction] = draft
	}

	now := uc.Clock.Now().UTC()
	prompts := make([]entities.TransitionPrompt, 0, len(entities.TransitionDirections))
	for _, direction := range entities.TransitionDirections {
		draft, ok := byDirection[direction]
		if !ok {
			return nil, fmt.Errorf("%w: transition generation returned no %s prompt",
				domainerrors.ErrGenerationFailed, direction)
		}
		promptID, err := uc.IDGen.NewID(ctx)
		if err != nil {
			return nil, err
		}
		prompts = append(prompts, entities.TransitionPrompt{
			PromptID:   promptID,
			CampaignID: campaign.CampaignID,
			Section:    cmd.Section,
			Direction:  direction,
			PromptText: strings.TrimSpace(draft.PromptText),
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}
	if err := uc.Transitions.ReplaceTransitions(ctx, campaign.CampaignID, cmd.Section, prompts); err != nil {
		return nil, err
	}

	logger.Info("transition prompts generated",
		"event", "transition_prompts_generated",
		"module", "ad-production/campaign-studio",
		"layer", "application",
		"campaign_id", campaign.CampaignID,
		"section", string(cmd.Section),
	)
	return prompts, nil
}

type EditTransitionCommand struct {
	CampaignID string
	PromptID   string
	Text       string
}

// EditTransitionUseCase records a manual override of a transition prompt.
// The override wins over generated text everywhere downstream.
type EditTransitionUseCase struct {
	Transitions ports.TransitionRepository
	Clock       ports.Clock
	Logger      *slog.Logger
}

func (uc EditTransitionUseCase) Execute(ctx context.Context, cmd EditTransitionCommand) (entities.TransitionPrompt, error) {
	logger := application.ResolveLogger(uc.Logger)
	text := strings.TrimSpace(cmd.Text)
	if text == "" {
		return entities.TransitionPrompt{}, fmt.Errorf("%w: transition text is required", domainerrors.ErrInvalidInput)
	}
	prompt, err := uc.Transitions.GetTransition(ctx, strings.TrimSpace(cmd.PromptID))
	if err != nil {
		return entities.TransitionPrompt{}, err
	}
	if prompt.CampaignID != strings.TrimSpace(cmd.CampaignID) {
		return entities.TransitionPrompt{}, fmt.Errorf("%w: transition %s", domainerrors.ErrTransitionNotFound, cmd.PromptID)
	}

	prompt.UserEdited = true
	prompt.UserEditedText = text
	prompt.UpdatedAt = uc.Clock.Now().UTC()
	if err := uc.Transitions.UpdateTransition(ctx, prompt); err != nil {
		return entities.TransitionPrompt{}, err
	}

	logger.Info("transition prompt edited",
		"event", "transition_prompt_edited",
		"module", "ad-production/campaign-studio",
		"layer", "application",
		"campaign_id", prompt.CampaignID,
		"prompt_id", prompt.PromptID,
		"section", string(prompt.Section),
		"direction", string(prompt.Direction),
	)
	return prompt, nil
}

// selectedSlotKeyframes loads the three selected keyframes of a section,
// failing when any position is still unresolved.
func selectedSlotKeyframes(ctx context.Context, repo ports.KeyframeRepository, campaignID string, section entities.Section) (entities.StoryboardKeyframes, error) {
	var out entities.StoryboardKeyframes
	for _, position := range entities.Positions {
		keyframe, found, err := repo.GetSelectedKeyframe(ctx, campaignID, section, position)
		if err != nil {
			return entities.StoryboardKeyframes{}, err
		}
		if !found {
			return entities.StoryboardKeyframes{}, fmt.Errorf("%w: no selected keyframe at %s/%s",
				domainerrors.ErrPreconditionFailed, section, position)
		}
		ref := entities.KeyframeRef{KeyframeID: keyframe.KeyframeID, ImageURL: keyframe.ImageURL}
		switch position {
		case entities.PositionStart:
			out.Start = ref
		case entities.PositionMiddle:
			out.Middle = ref
		case entities.PositionEnd:
			out.End = ref
		}
	}
	return out, nil
}

func sectionScriptOf(ctx context.Context, repo ports.ScriptRepository, campaignID string, section entities.Section) (entities.Script, error) {
	scripts, err := repo.ListScriptsByCampaign(ctx, campaignID)
	if err != nil {
		return entities.Script{}, err
	}
	for _, script := range scripts {
		if script.Section == section {
			return script, nil
		}
	}
	return entities.Script{}, fmt.Errorf("%w: no script for section %s", domainerrors.ErrScriptNotFound, section)
}
