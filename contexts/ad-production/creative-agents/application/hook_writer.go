package application

import (
	"context"
	"fmt"
	"log/slog"

	"adforge/contexts/ad-production/creative-agents/ports"
)

type HookInput struct {
	OfferProductName  string
	OfferDreamOutcome string
	KeySellingPoints  []string
	AvatarName        string
	PainPoints        []string
	LanguagePatterns  []string
	AdFormat          string
}

type HookDraft struct {
	Text      string `json:"text"`
	StyleTag  string `json:"styleTag"`
	Rationale string `json:"rationale"`
}

type hookDraftList struct {
	Hooks []HookDraft `json:"hooks"`
}

type HookWriter struct {
	Model  ports.TextModel
	Logger *slog.Logger
}

const hookWriterSystem = `You are an expert direct-response copywriter specializing in video ad hooks.
Respond with a single JSON object matching the requested schema, no prose.`

func (a HookWriter) Execute(ctx context.Context, input HookInput) ([]HookDraft, error) {
	user := fmt.Sprintf(`Write 4 DIFFERENT opening hooks for a 60-second %s video ad. Each hook is spoken in the first 3-5 seconds and must stop the scroll.

OFFER: %s - %s
KEY POINTS: %s

AVATAR: %s
PAIN POINTS: %s
THEIR LANGUAGE: %s

Each of the 4 hooks must take a different angle, for example: bold claim, provocative question, pattern interrupt, relatable confession.
- text: the spoken hook, using the avatar's own language
- styleTag: short label for the angle (e.g. "bold_claim", "question", "pattern_interrupt", "confession")
- rationale: one sentence on why this hook lands for this avatar

JSON schema: {"hooks": [{"text": string, "styleTag": string, "rationale": string}]}
Return exactly 4 hooks.`,
		input.AdFormat,
		input.OfferProductName, input.OfferDreamOutcome,
		joinList(input.KeySellingPoints, ", "),
		input.AvatarName,
		joinList(input.PainPoints, "; "),
		joinList(input.LanguagePatterns, "; "))

	var out hookDraftList
	if err := completeJSON(ctx, a.Model, ports.Prompt{
		Agent:  ports.AgentHookWriter,
		System: hookWriterSystem,
		User:   user,
	}, &out); err != nil {
		return nil, err
	}
	ResolveLogger(a.Logger).Debug("hooks drafted",
		"event", "hooks_drafted",
		"module", "ad-production/creative-agents",
		"layer", "application",
		"count", len(out.Hooks),
	)
	return out.Hooks, nil
}
