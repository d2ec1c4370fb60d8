package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"adforge/contexts/ad-production/creative-agents/ports"
)

type KeyframePromptInput struct {
	Section            string
	Position           string
	VisualDescription  string
	AvatarDescription  string
	EnvironmentContext string
	VisualStyle        string
	AdFormat           string
	PreviousPrompt     string
	VariantCount       int
}

type KeyframePromptDraft struct {
	PromptText     string `json:"promptText"`
	NegativePrompt string `json:"negativePrompt"`
	Style          string `json:"style"`
}

type keyframePromptList struct {
	Prompts []KeyframePromptDraft `json:"prompts"`
}

type TransitionInput struct {
	Section              string
	AdFormat             string
	StartKeyframePrompt  string
	MiddleKeyframePrompt string
	EndKeyframePrompt    string
	ScriptCopy           string
}

type TransitionDraft struct {
	StartToMiddle string `json:"startToMiddle"`
	MiddleToEnd   string `json:"middleToEnd"`
}

type VideoPromptInput struct {
	Section         string
	Transition      string
	TransitionText  string
	Dialogue        string
	DurationSeconds int
	AdFormat        string
}

type videoPromptDraft struct {
	MotionPrompt   string `json:"motionPrompt"`
	CameraMovement string `json:"cameraMovement"`
}

// PromptEngineer turns approved creative into provider-ready image and video
// prompts.
type PromptEngineer struct {
	Model  ports.TextModel
	Logger *slog.Logger
}

const keyframeEngineerSystem = `You are an expert image prompt engineer for AI video ad production.
Respond with a single JSON object matching the requested schema, no prose.`

func (a PromptEngineer) KeyframePrompts(ctx context.Context, input KeyframePromptInput) ([]KeyframePromptDraft, error) {
	count := input.VariantCount
	if count <= 0 {
		count = 4
	}
	positionNote := map[string]string{
		"start":  "opening frame",
		"middle": "midpoint/peak action",
		"end":    "closing/transitional frame",
	}[input.Position]
	contextNote := ""
	if input.PreviousPrompt != "" {
		contextNote = fmt.Sprintf("This follows from: %q. Maintain visual continuity.\n", input.PreviousPrompt)
	}
	user := fmt.Sprintf(`Generate %d DIFFERENT image prompt options for a keyframe.

SECTION: %s
POSITION: %s (%s)
VISUAL DESCRIPTION: %s
%s
LOCKED CHARACTER: %s
LOCKED ENVIRONMENT: %s
VISUAL STYLE: %s

Rules:
1. Each prompt must include the locked character description verbatim
2. Each prompt must match the environment and visual style
3. Each option should offer a DIFFERENT angle/framing/moment while capturing the same emotional beat
4. Include specific camera direction (wide shot, close-up, over-shoulder, etc.)
5. Include lighting and mood details
6. negativePrompt: artifacts, blur, text, watermarks, multiple people, cartoon

JSON schema: {"prompts": [{"promptText": string, "negativePrompt": string, "style": string}]}
Return exactly %d prompts.`,
		count,
		strings.ToUpper(input.Section),
		strings.ToUpper(input.Position), positionNote,
		input.VisualDescription,
		contextNote,
		input.AvatarDescription,
		input.EnvironmentContext,
		input.VisualStyle,
		count)

	var out keyframePromptList
	if err := completeJSON(ctx, a.Model, ports.Prompt{
		Agent:  ports.AgentKeyframeEngineer,
		System: keyframeEngineerSystem,
		User:   user,
	}, &out); err != nil {
		return nil, err
	}
	ResolveLogger(a.Logger).Debug("keyframe prompts drafted",
		"event", "keyframe_prompts_drafted",
		"module", "ad-production/creative-agents",
		"layer", "application",
		"section", input.Section,
		"position", input.Position,
		"count", len(out.Prompts),
	)
	return out.Prompts, nil
}

const transitionWriterSystem = `You are a cinematographer writing motion/transition descriptions for AI video generation.
Respond with a single JSON object matching the requested schema, no prose.`

func (a PromptEngineer) TransitionPrompts(ctx context.Context, input TransitionInput) (TransitionDraft, error) {
	motionStyle := "cinematic camera moves: push-in, dolly, crane, rack focus"
	if input.AdFormat == "ugc" {
		motionStyle = "handheld, naturalistic movement, zoom-in"
	}
	user := fmt.Sprintf(`Write two transition descriptions for the %s section.

MOTION STYLE: %s

START frame: %s
MIDDLE frame: %s
END frame: %s

SCRIPT/DIALOGUE: %s

For each transition, write a single sentence describing:
- The camera movement (type + direction + speed)
- Any subject action/change happening during the move
- The emotional/pacing intent

Examples:
- "Slow push-in from medium to close-up as character looks down at phone, frustration building"
- "Rapid rack focus from background chaos to foreground face, moment of realization"
- "Smooth crane up revealing full job site, golden light sweeping across frame"

JSON schema: {"startToMiddle": string, "middleToEnd": string}`,
		strings.ToUpper(input.Section),
		motionStyle,
		input.StartKeyframePrompt,
		input.MiddleKeyframePrompt,
		input.EndKeyframePrompt,
		input.ScriptCopy)

	var out TransitionDraft
	if err := completeJSON(ctx, a.Model, ports.Prompt{
		Agent:  ports.AgentTransitionWriter,
		System: transitionWriterSystem,
		User:   user,
	}, &out); err != nil {
		return TransitionDraft{}, err
	}
	return out, nil
}

const videoPromptSystem = `You are a video AI prompt engineer. Convert a transition description into an API-ready video generation prompt.
Respond with a single JSON object matching the requested schema, no prose.`

func (a PromptEngineer) VideoPrompt(ctx context.Context, input VideoPromptInput) (string, error) {
	user := fmt.Sprintf(`SECTION: %s
TRANSITION: %s
TRANSITION DESCRIPTION: %s
DIALOGUE: %s
DURATION: %d seconds
FORMAT: %s

Write a tight, specific video generation prompt optimized for image-to-video models.
Focus on: subject motion, camera movement, pacing, lighting changes.
Keep under 150 words. Be specific about motion direction and speed.

JSON schema: {"motionPrompt": string, "cameraMovement": string}`,
		input.Section,
		input.Transition,
		input.TransitionText,
		input.Dialogue,
		input.DurationSeconds,
		input.AdFormat)

	var out videoPromptDraft
	if err := completeJSON(ctx, a.Model, ports.Prompt{
		Agent:  ports.AgentVideoPromptEngineer,
		System: videoPromptSystem,
		User:   user,
	}, &out); err != nil {
		return "", err
	}
	return out.MotionPrompt, nil
}
