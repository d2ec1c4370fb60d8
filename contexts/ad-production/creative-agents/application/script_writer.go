package application

import (
	"context"
	"fmt"
	"log/slog"

	"adforge/contexts/ad-production/creative-agents/ports"
)

type ScriptInput struct {
	OfferProductName    string
	OfferDreamOutcome   string
	PerceivedLikelihood string
	TimeDelay           string
	EffortSacrifice     string
	KeySellingPoints    []string

	AvatarName       string
	PainPoints       []string
	FailedSolutions  []string
	LanguagePatterns []string
	TriggerEvents    []string
	Objections       []string

	AdFormat         string
	Durations        map[string]int
	SelectedHookText string
}

type SectionDraft struct {
	Section           string `json:"section"`
	CopyText          string `json:"copyText"`
	VisualDescription string `json:"visualDescription"`
	DurationSeconds   int    `json:"durationSeconds"`
}

type sectionDraftList struct {
	Sections []SectionDraft `json:"sections"`
}

type ScriptWriter struct {
	Model  ports.TextModel
	Logger *slog.Logger
}

const scriptWriterSystem = `You are an expert direct-response copywriter. Write a 60-second video ad script.
Respond with a single JSON object matching the requested schema, no prose.`

func (a ScriptWriter) Execute(ctx context.Context, input ScriptInput) ([]SectionDraft, error) {
	formatInstructions := "Story Movie Style: Third-person cinematic narrative. Scene-based storytelling with the avatar as protagonist. Polished, emotionally driven."
	if input.AdFormat == "ugc" {
		formatInstructions = "UGC Style: First-person, conversational, raw/authentic. Written as if the avatar is speaking directly to camera on their phone. Use their exact language patterns."
	}
	hookLine := "Bold attention-grabbing opening. Question or bold claim using avatar's language."
	if input.SelectedHookText != "" {
		hookLine = fmt.Sprintf("USE THIS EXACT HOOK: %q", input.SelectedHookText)
	}
	trigger := ""
	if len(input.TriggerEvents) > 0 {
		trigger = input.TriggerEvents[0]
	}
	user := fmt.Sprintf(`%s

OFFER:
- Product: %s
- Dream Outcome: %s
- Likelihood: %s
- Time Delay: %s
- Effort: %s
- Key Points: %s

AVATAR: %s
- Pain Points: %s
- Failed Solutions: %s
- Language: %s
- Trigger Event: %s
- Objections: %s

SECTIONS (write all 5):
1. Hook (%ds): %s
2. Problem (%ds): Dramatize their pain. Use trigger event. Make them feel seen.
3. Solution (%ds): Introduce product as the answer. Mechanism. Why it works when others didn't.
4. Social Proof (%ds): Testimonial/stat. Third-party validation. Specific, believable.
5. CTA (%ds): Clear action. Eliminate risk (free trial, no credit card). Urgency if natural.

For each section, provide:
- copyText: The actual spoken/on-screen words
- visualDescription: What the camera shows (scene, action, props, framing)
- durationSeconds: Exact seconds for this section

JSON schema: {"sections": [{"section": "hook"|"problem"|"solution"|"social_proof"|"cta", "copyText": string, "visualDescription": string, "durationSeconds": number}]}`,
		formatInstructions,
		input.OfferProductName, input.OfferDreamOutcome, input.PerceivedLikelihood, input.TimeDelay, input.EffortSacrifice,
		joinList(input.KeySellingPoints, ", "),
		input.AvatarName,
		joinList(input.PainPoints, "; "),
		joinList(input.FailedSolutions, "; "),
		joinList(input.LanguagePatterns, "; "),
		trigger,
		joinList(input.Objections, "; "),
		input.Durations["hook"], hookLine,
		input.Durations["problem"],
		input.Durations["solution"],
		input.Durations["social_proof"],
		input.Durations["cta"])

	var out sectionDraftList
	if err := completeJSON(ctx, a.Model, ports.Prompt{
		Agent:  ports.AgentScriptWriter,
		System: scriptWriterSystem,
		User:   user,
	}, &out); err != nil {
		return nil, err
	}
	ResolveLogger(a.Logger).Debug("script drafted",
		"event", "script_drafted",
		"module", "ad-production/creative-agents",
		"layer", "application",
		"sections", len(out.Sections),
	)
	return out.Sections, nil
}
