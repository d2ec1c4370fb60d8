package bootstrap

import (
	"context"

	"adforge/contexts/ad-production/campaign-studio/domain/entities"
	studioports "adforge/contexts/ad-production/campaign-studio/ports"
	creativeagents "adforge/contexts/ad-production/creative-agents"
	agents "adforge/contexts/ad-production/creative-agents/application"
)

// agentDirector satisfies the studio's creative director port by delegating
// each drafting step to the matching agent. It owns the translation between
// studio entities and agent inputs; identity and persistence stay with the
// studio.
type agentDirector struct {
	agents creativeagents.Module
}

func NewAgentDirector(module creativeagents.Module) studioports.CreativeDirector {
	return agentDirector{agents: module}
}

func (d agentDirector) BuildOffer(ctx context.Context, brief studioports.OfferBrief) (entities.Offer, error) {
	draft, err := d.agents.OfferBuilder.Execute(ctx, agents.OfferInput{
		ProductName:        brief.ProductName,
		ProductDescription: brief.ProductDescription,
		TargetAudience:     brief.TargetAudience,
		UserNotes:          brief.UserNotes,
	})
	if err != nil {
		return entities.Offer{}, err
	}
	return entities.Offer{
		Name:                draft.ProductName,
		ProductName:         draft.ProductName,
		DreamOutcome:        draft.DreamOutcome,
		PerceivedLikelihood: draft.PerceivedLikelihood,
		TimeDelay:           draft.TimeDelay,
		EffortSacrifice:     draft.EffortSacrifice,
		Summary:             draft.Summary,
		KeySellingPoints:    draft.KeySellingPoints,
	}, nil
}

func (d agentDirector) BuildAvatar(ctx context.Context, brief studioports.AvatarBrief) (entities.Avatar, error) {
	draft, err := d.agents.AvatarResearcher.Execute(ctx, agents.AvatarInput{
		OfferProductName:  brief.Offer.ProductName,
		OfferDreamOutcome: brief.Offer.DreamOutcome,
		TargetDescription: brief.TargetDescription,
		Industry:          brief.Industry,
		UserNotes:         brief.UserNotes,
	})
	if err != nil {
		return entities.Avatar{}, err
	}
	return entities.Avatar{
		Name: draft.Name,
		Demographics: entities.Demographics{
			Age:      draft.Demographics.Age,
			Income:   draft.Demographics.Income,
			Location: draft.Demographics.Location,
			JobTitle: draft.Demographics.JobTitle,
			Gender:   draft.Demographics.Gender,
		},
		Psychographics: entities.Psychographics{
			Values:    draft.Psychographics.Values,
			Fears:     draft.Psychographics.Fears,
			Worldview: draft.Psychographics.Worldview,
		},
		PainPoints:       draft.PainPoints,
		FailedSolutions:  draft.FailedSolutions,
		LanguagePatterns: draft.LanguagePatterns,
		Objections:       draft.Objections,
		TriggerEvents:    draft.TriggerEvents,
		Aspirations:      draft.Aspirations,
		FullBriefMD:      draft.FullBriefMD,
	}, nil
}

func (d agentDirector) WriteHookOptions(ctx context.Context, brief studioports.HookBrief) ([]studioports.HookDraft, error) {
	drafts, err := d.agents.HookWriter.Execute(ctx, agents.HookInput{
		OfferProductName:  brief.Offer.ProductName,
		OfferDreamOutcome: brief.Offer.DreamOutcome,
		KeySellingPoints:  brief.Offer.KeySellingPoints,
		AvatarName:        brief.Avatar.Name,
		PainPoints:        brief.Avatar.PainPoints,
		LanguagePatterns:  brief.Avatar.LanguagePatterns,
		AdFormat:          string(brief.AdFormat),
	})
	if err != nil {
		return nil, err
	}
	out := make([]studioports.HookDraft, 0, len(drafts))
	for _, draft := range drafts {
		out = append(out, studioports.HookDraft{
			Text:      draft.Text,
			StyleTag:  draft.StyleTag,
			Rationale: draft.Rationale,
		})
	}
	return out, nil
}

func (d agentDirector) WriteScript(ctx context.Context, brief studioports.ScriptBrief) ([]studioports.ScriptDraft, error) {
	durations := make(map[string]int, len(entities.Sections))
	for _, section := range entities.Sections {
		durations[string(section)] = brief.Durations.For(section)
	}
	drafts, err := d.agents.ScriptWriter.Execute(ctx, agents.ScriptInput{
		OfferProductName:    brief.Offer.ProductName,
		OfferDreamOutcome:   brief.Offer.DreamOutcome,
		PerceivedLikelihood: brief.Offer.PerceivedLikelihood,
		TimeDelay:           brief.Offer.TimeDelay,
		EffortSacrifice:     brief.Offer.EffortSacrifice,
		KeySellingPoints:    brief.Offer.KeySellingPoints,
		AvatarName:          brief.Avatar.Name,
		PainPoints:          brief.Avatar.PainPoints,
		FailedSolutions:     brief.Avatar.FailedSolutions,
		LanguagePatterns:    brief.Avatar.LanguagePatterns,
		TriggerEvents:       brief.Avatar.TriggerEvents,
		Objections:          brief.Avatar.Objections,
		AdFormat:            string(brief.AdFormat),
		Durations:           durations,
		SelectedHookText:    brief.SelectedHookText,
	})
	if err != nil {
		return nil, err
	}
	out := make([]studioports.ScriptDraft, 0, len(drafts))
	for _, draft := range drafts {
		out = append(out, studioports.ScriptDraft{
			Section:           entities.Section(draft.Section),
			CopyText:          draft.CopyText,
			VisualDescription: draft.VisualDescription,
			DurationSeconds:   draft.DurationSeconds,
		})
	}
	return out, nil
}

func (d agentDirector) DraftConsistencySpec(ctx context.Context, brief studioports.ConsistencyBrief) (entities.ConsistencySpec, error) {
	draft, err := d.agents.ConsistencyEnforcer.Execute(ctx, agents.ConsistencyInput{
		AvatarName: brief.Avatar.Name,
		Demographics: agents.AvatarDemographics{
			Age:      brief.Avatar.Demographics.Age,
			Income:   brief.Avatar.Demographics.Income,
			Location: brief.Avatar.Demographics.Location,
			JobTitle: brief.Avatar.Demographics.JobTitle,
			Gender:   brief.Avatar.Demographics.Gender,
		},
		Worldview: brief.Avatar.Psychographics.Worldview,
		AdFormat:  string(brief.AdFormat),
	})
	if err != nil {
		return entities.ConsistencySpec{}, err
	}
	return entities.ConsistencySpec{
		AvatarSpec: entities.AvatarSpec{
			Age:                    draft.AvatarSpec.Age,
			Gender:                 draft.AvatarSpec.Gender,
			HairColor:              draft.AvatarSpec.HairColor,
			HairStyle:              draft.AvatarSpec.HairStyle,
			SkinTone:               draft.AvatarSpec.SkinTone,
			Clothing:               draft.AvatarSpec.Clothing,
			DistinguishingFeatures: draft.AvatarSpec.DistinguishingFeatures,
			FullDescription:        draft.AvatarSpec.FullDescription,
		},
		EnvironmentSpec: entities.EnvironmentSpec{
			Location:        draft.EnvironmentSpec.Location,
			TimeOfDay:       draft.EnvironmentSpec.TimeOfDay,
			Lighting:        draft.EnvironmentSpec.Lighting,
			KeyProps:        draft.EnvironmentSpec.KeyProps,
			ColorScheme:     draft.EnvironmentSpec.ColorScheme,
			FullDescription: draft.EnvironmentSpec.FullDescription,
		},
		VisualStyle:  draft.VisualStyle,
		ColorPalette: draft.ColorPalette,
	}, nil
}

func (d agentDirector) WriteKeyframePrompts(ctx context.Context, brief studioports.KeyframePromptBrief) ([]studioports.KeyframePromptDraft, error) {
	input := agents.KeyframePromptInput{
		Section:           string(brief.Section),
		Position:          string(brief.Position),
		VisualDescription: brief.Script.VisualDescription,
		AdFormat:          string(brief.AdFormat),
		VariantCount:      entities.KeyframeVariantCount,
	}
	if brief.ConsistencySpec != nil {
		input.AvatarDescription = brief.ConsistencySpec.AvatarSpec.FullDescription
		input.EnvironmentContext = brief.ConsistencySpec.EnvironmentSpec.FullDescription
		input.VisualStyle = brief.ConsistencySpec.VisualStyle
	}
	drafts, err := d.agents.PromptEngineer.KeyframePrompts(ctx, input)
	if err != nil {
		return nil, err
	}
	out := make([]studioports.KeyframePromptDraft, 0, len(drafts))
	for i, draft := range drafts {
		out = append(out, studioports.KeyframePromptDraft{
			VariantIndex:   i,
			PromptText:     draft.PromptText,
			NegativePrompt: draft.NegativePrompt,
		})
	}
	return out, nil
}

func (d agentDirector) WriteTransitionPrompts(ctx context.Context, brief studioports.TransitionBrief) ([]studioports.TransitionDraft, error) {
	draft, err := d.agents.PromptEngineer.TransitionPrompts(ctx, agents.TransitionInput{
		Section:              string(brief.Section),
		AdFormat:             string(brief.AdFormat),
		StartKeyframePrompt:  brief.Keyframes.Start.ImageURL,
		MiddleKeyframePrompt: brief.Keyframes.Middle.ImageURL,
		EndKeyframePrompt:    brief.Keyframes.End.ImageURL,
		ScriptCopy:           brief.Script.CopyText,
	})
	if err != nil {
		return nil, err
	}
	return []studioports.TransitionDraft{
		{Direction: entities.TransitionStartToMiddle, PromptText: draft.StartToMiddle},
		{Direction: entities.TransitionMiddleToEnd, PromptText: draft.MiddleToEnd},
	}, nil
}

func (d agentDirector) WriteVideoPrompt(ctx context.Context, brief studioports.VideoPromptBrief) (string, error) {
	return d.agents.PromptEngineer.VideoPrompt(ctx, agents.VideoPromptInput{
		Section:         string(brief.Section),
		Transition:      string(brief.Direction),
		TransitionText:  brief.TransitionText,
		Dialogue:        brief.Dialogue,
		DurationSeconds: 5,
		AdFormat:        string(brief.AdFormat),
	})
}
