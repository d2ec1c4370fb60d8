package application_test

import (
	"context"
	"errors"
	"testing"

	creativeagents "adforge/contexts/ad-production/creative-agents"
	"adforge/contexts/ad-production/creative-agents/application"
	domainerrors "adforge/contexts/ad-production/creative-agents/domain/errors"
	"adforge/contexts/ad-production/creative-agents/ports"
)

// scriptedModel returns a fixed completion or error regardless of the prompt.
type scriptedModel struct {
	response string
	err      error
}

func (m scriptedModel) Complete(context.Context, ports.Prompt) (string, error) {
	return m.response, m.err
}

func TestStaticAgentsProduceSchemaCorrectDrafts(t *testing.T) {
	module := creativeagents.NewInMemoryModule(nil)
	ctx := context.Background()

	offer, err := module.OfferBuilder.Execute(ctx, application.OfferInput{ProductName: "SiteTrack Pro"})
	if err != nil {
		t.Fatalf("offer builder: %v", err)
	}
	if offer.ProductName != "SiteTrack Pro" {
		t.Fatalf("unexpected product name %q", offer.ProductName)
	}
	if offer.DreamOutcome == "" || offer.Summary == "" || len(offer.KeySellingPoints) == 0 {
		t.Fatal("offer draft is missing value-equation fields")
	}

	avatar, err := module.AvatarResearcher.Execute(ctx, application.AvatarInput{})
	if err != nil {
		t.Fatalf("avatar researcher: %v", err)
	}
	if avatar.Name == "" || len(avatar.PainPoints) == 0 || len(avatar.LanguagePatterns) == 0 {
		t.Fatal("avatar draft is missing research fields")
	}

	hooks, err := module.HookWriter.Execute(ctx, application.HookInput{AdFormat: "ugc"})
	if err != nil {
		t.Fatalf("hook writer: %v", err)
	}
	if len(hooks) != 4 {
		t.Fatalf("expected 4 hooks, got %d", len(hooks))
	}
	for i, hook := range hooks {
		if hook.Text == "" || hook.StyleTag == "" {
			t.Fatalf("hook %d is incomplete: %+v", i, hook)
		}
	}

	sections, err := module.ScriptWriter.Execute(ctx, application.ScriptInput{AdFormat: "ugc"})
	if err != nil {
		t.Fatalf("script writer: %v", err)
	}
	if len(sections) != 5 {
		t.Fatalf("expected 5 script sections, got %d", len(sections))
	}
	order := []string{"hook", "problem", "solution", "social_proof", "cta"}
	total := 0
	for i, section := range sections {
		if section.Section != order[i] {
			t.Fatalf("section %d is %q, want %q", i, section.Section, order[i])
		}
		total += section.DurationSeconds
	}
	if total != 60 {
		t.Fatalf("script durations sum to %d, want 60", total)
	}

	spec, err := module.ConsistencyEnforcer.Execute(ctx, application.ConsistencyInput{})
	if err != nil {
		t.Fatalf("consistency enforcer: %v", err)
	}
	if spec.AvatarSpec.FullDescription == "" || spec.EnvironmentSpec.FullDescription == "" || spec.VisualStyle == "" {
		t.Fatal("consistency draft is missing locked descriptions")
	}

	prompts, err := module.PromptEngineer.KeyframePrompts(ctx, application.KeyframePromptInput{
		Section:           "hook",
		Position:          "start",
		AvatarDescription: spec.AvatarSpec.FullDescription,
		VariantCount:      4,
	})
	if err != nil {
		t.Fatalf("keyframe prompts: %v", err)
	}
	if len(prompts) != 4 {
		t.Fatalf("expected 4 keyframe prompts, got %d", len(prompts))
	}
	for i, prompt := range prompts {
		if prompt.PromptText == "" || prompt.NegativePrompt == "" {
			t.Fatalf("keyframe prompt %d is incomplete", i)
		}
	}
}

func TestFencedCompletionStillDecodes(t *testing.T) {
	fenced := "```json\n{\"hooks\": [{\"text\": \"Stop scrolling.\", \"styleTag\": \"pattern_interrupt\", \"rationale\": \"direct\"}]}\n```"
	writer := application.HookWriter{Model: scriptedModel{response: fenced}}

	hooks, err := writer.Execute(context.Background(), application.HookInput{})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(hooks) != 1 || hooks[0].Text != "Stop scrolling." {
		t.Fatalf("unexpected hooks %+v", hooks)
	}
}

func TestModelErrorsSurfaceAsTypedErrors(t *testing.T) {
	down := application.OfferBuilder{Model: scriptedModel{err: errors.New("timeout")}}
	if _, err := down.Execute(context.Background(), application.OfferInput{}); !errors.Is(err, domainerrors.ErrModelUnavailable) {
		t.Fatalf("expected ErrModelUnavailable, got %v", err)
	}

	garbled := application.OfferBuilder{Model: scriptedModel{response: "sure, here is your offer:"}}
	if _, err := garbled.Execute(context.Background(), application.OfferInput{}); !errors.Is(err, domainerrors.ErrBadModelOutput) {
		t.Fatalf("expected ErrBadModelOutput, got %v", err)
	}
}
