package application

import (
	"context"
	"fmt"
	"log/slog"

	"adforge/contexts/ad-production/creative-agents/ports"
)

type AvatarInput struct {
	OfferProductName  string
	OfferDreamOutcome string
	TargetDescription string
	Industry          string
	UserNotes         string
}

type AvatarDemographics struct {
	Age      string `json:"age"`
	Income   string `json:"income"`
	Location string `json:"location"`
	JobTitle string `json:"jobTitle"`
	Gender   string `json:"gender"`
}

type AvatarPsychographics struct {
	Values    []string `json:"values"`
	Fears     []string `json:"fears"`
	Worldview string   `json:"worldview"`
}

// AvatarDraft is a full psychological customer profile.
type AvatarDraft struct {
	Name             string               `json:"name"`
	Demographics     AvatarDemographics   `json:"demographics"`
	Psychographics   AvatarPsychographics `json:"psychographics"`
	PainPoints       []string             `json:"painPoints"`
	FailedSolutions  []string             `json:"failedSolutions"`
	LanguagePatterns []string             `json:"languagePatterns"`
	Objections       []string             `json:"objections"`
	TriggerEvents    []string             `json:"triggerEvents"`
	Aspirations      []string             `json:"aspirations"`
	FullBriefMD      string               `json:"fullBriefMd"`
}

type AvatarResearcher struct {
	Model  ports.TextModel
	Logger *slog.Logger
}

const avatarResearcherSystem = `You are an expert customer research analyst. Create a psychological avatar brief.
Respond with a single JSON object matching the requested schema, no prose.`

func (a AvatarResearcher) Execute(ctx context.Context, input AvatarInput) (AvatarDraft, error) {
	notes := ""
	if input.UserNotes != "" {
		notes = "Notes: " + input.UserNotes + "\n"
	}
	user := fmt.Sprintf(`Offer: %s - %s
Target: %s
Industry: %s
%s
Create a comprehensive psychological avatar with:
- demographics: Specific age range, income bracket, location, job title, gender
- psychographics: Core values (3), deep fears (3), overall worldview sentence
- painPoints: 4-6 specific daily frustrations related to the offer's problem space
- failedSolutions: 3-5 things they've already tried that didn't work
- languagePatterns: 4-6 exact phrases they use to describe their problem
- objections: 3-5 reasons they'd hesitate to buy
- triggerEvents: 2-4 specific events that made their pain acute (loss, failure, embarrassment)
- aspirations: 3-5 what success looks like to them
- fullBriefMd: Complete markdown summary of the avatar (2-3 paragraphs)
- name: A first name for this persona (e.g. "Mike" or "Sarah")

JSON schema: {"name": string, "demographics": {"age": string, "income": string, "location": string, "jobTitle": string, "gender": string}, "psychographics": {"values": [string], "fears": [string], "worldview": string}, "painPoints": [string], "failedSolutions": [string], "languagePatterns": [string], "objections": [string], "triggerEvents": [string], "aspirations": [string], "fullBriefMd": string}`,
		input.OfferProductName, input.OfferDreamOutcome, input.TargetDescription, input.Industry, notes)

	var draft AvatarDraft
	if err := completeJSON(ctx, a.Model, ports.Prompt{
		Agent:  ports.AgentAvatarResearcher,
		System: avatarResearcherSystem,
		User:   user,
	}, &draft); err != nil {
		return AvatarDraft{}, err
	}
	ResolveLogger(a.Logger).Debug("avatar drafted",
		"event", "avatar_drafted",
		"module", "ad-production/creative-agents",
		"layer", "application",
		"persona", draft.Name,
	)
	return draft, nil
}
