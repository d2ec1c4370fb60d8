package application

import (
	"context"
	"fmt"
	"log/slog"

	"adforge/contexts/ad-production/creative-agents/ports"
)

type ConsistencyInput struct {
	AvatarName         string
	Demographics       AvatarDemographics
	Worldview          string
	VisualDescriptions []string
	AdFormat           string
}

type AvatarSpecDraft struct {
	Age                    string `json:"age"`
	Gender                 string `json:"gender"`
	HairColor              string `json:"hairColor"`
	HairStyle              string `json:"hairStyle"`
	SkinTone               string `json:"skinTone"`
	Clothing               string `json:"clothing"`
	DistinguishingFeatures string `json:"distinguishingFeatures"`
	FullDescription        string `json:"fullDescription"`
}

type EnvironmentSpecDraft struct {
	Location        string   `json:"location"`
	TimeOfDay       string   `json:"timeOfDay"`
	Lighting        string   `json:"lighting"`
	KeyProps        []string `json:"keyProps"`
	ColorScheme     []string `json:"colorScheme"`
	FullDescription string   `json:"fullDescription"`
}

// ConsistencyDraft is the locked visual contract injected into every image
// prompt.
type ConsistencyDraft struct {
	AvatarSpec      AvatarSpecDraft      `json:"avatarSpec"`
	EnvironmentSpec EnvironmentSpecDraft `json:"environmentSpec"`
	VisualStyle     string               `json:"visualStyle"`
	ColorPalette    []string             `json:"colorPalette"`
}

type ConsistencyEnforcer struct {
	Model  ports.TextModel
	Logger *slog.Logger
}

const consistencyEnforcerSystem = `You are a visual consistency director for video production. Create locked visual specs.
Respond with a single JSON object matching the requested schema, no prose.`

func (a ConsistencyEnforcer) Execute(ctx context.Context, input ConsistencyInput) (ConsistencyDraft, error) {
	user := fmt.Sprintf(`AVATAR: %s
Demographics: age %s, gender %s, income %s, location %s, job %s
Psychographics worldview: %s

SCRIPT VISUAL DESCRIPTIONS:
%s

AD FORMAT: %s

Create precise, reusable visual specifications that will be injected into EVERY image prompt to ensure consistency:

avatarSpec.fullDescription: A single sentence usable verbatim in image prompts, e.g. "42-year-old stocky white male, short dark brown hair, weathered tan skin, wearing orange hi-vis vest and Carhartt work pants, steel-toed boots"

environmentSpec.fullDescription: Environment context sentence, e.g. "active residential construction site, golden hour natural light, steel framing background, sawdust and blueprints visible"

visualStyle: Photographic style, e.g. "cinematic 4K, shallow depth of field, golden hour warm tones, documentary-style handheld" or for UGC: "vertical 9:16, phone camera quality, natural indoor lighting, authentic and unpolished"

colorPalette: 4-5 hex colors that define the visual palette

JSON schema: {"avatarSpec": {"age": string, "gender": string, "hairColor": string, "hairStyle": string, "skinTone": string, "clothing": string, "distinguishingFeatures": string, "fullDescription": string}, "environmentSpec": {"location": string, "timeOfDay": string, "lighting": string, "keyProps": [string], "colorScheme": [string], "fullDescription": string}, "visualStyle": string, "colorPalette": [string]}`,
		input.AvatarName,
		input.Demographics.Age, input.Demographics.Gender, input.Demographics.Income, input.Demographics.Location, input.Demographics.JobTitle,
		input.Worldview,
		joinList(input.VisualDescriptions, "\n"),
		input.AdFormat)

	var draft ConsistencyDraft
	if err := completeJSON(ctx, a.Model, ports.Prompt{
		Agent:  ports.AgentConsistencyEnforcer,
		System: consistencyEnforcerSystem,
		User:   user,
	}, &draft); err != nil {
		return ConsistencyDraft{}, err
	}
	ResolveLogger(a.Logger).Debug("consistency spec drafted",
		"event", "consistency_spec_drafted",
		"module", "ad-production/creative-agents",
		"layer", "application",
	)
	return draft, nil
}
