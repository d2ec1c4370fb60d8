package application

import (
	"context"
	"fmt"
	"log/slog"

	"adforge/contexts/ad-production/creative-agents/ports"
)

type OfferInput struct {
	ProductName        string
	ProductDescription string
	TargetAudience     string
	UserNotes          string
}

// OfferDraft is the Hormozi value-equation breakdown of a product.
type OfferDraft struct {
	ProductName         string   `json:"productName"`
	DreamOutcome        string   `json:"dreamOutcome"`
	PerceivedLikelihood string   `json:"perceivedLikelihood"`
	TimeDelay           string   `json:"timeDelay"`
	EffortSacrifice     string   `json:"effortSacrifice"`
	Summary             string   `json:"summary"`
	KeySellingPoints    []string `json:"keySellingPoints"`
}

type OfferBuilder struct {
	Model  ports.TextModel
	Logger *slog.Logger
}

const offerBuilderSystem = `You are an expert direct-response marketer using the Hormozi Value Equation.
Respond with a single JSON object matching the requested schema, no prose.`

func (a OfferBuilder) Execute(ctx context.Context, input OfferInput) (OfferDraft, error) {
	notes := ""
	if input.UserNotes != "" {
		notes = "Additional Notes: " + input.UserNotes + "\n"
	}
	user := fmt.Sprintf(`Build a structured offer for:
Product: %s
Description: %s
Target Audience: %s
%s
For each field, be specific and compelling:
- dreamOutcome: The vivid, emotional result the customer desires
- perceivedLikelihood: Why they'll believe this actually works (proof, mechanism, trial)
- timeDelay: Exact timeline to first result and full ROI
- effortSacrifice: Minimal steps required, what they DON'T have to do
- summary: One punchy sentence combining all four
- keySellingPoints: 3-5 bullet points for ad copy

Make the value equation obvious: (High Dream x High Likelihood) / (Low Time x Low Effort) = Maximum Value

JSON schema: {"productName": string, "dreamOutcome": string, "perceivedLikelihood": string, "timeDelay": string, "effortSacrifice": string, "summary": string, "keySellingPoints": [string]}`,
		input.ProductName, input.ProductDescription, input.TargetAudience, notes)

	var draft OfferDraft
	if err := completeJSON(ctx, a.Model, ports.Prompt{
		Agent:  ports.AgentOfferBuilder,
		System: offerBuilderSystem,
		User:   user,
	}, &draft); err != nil {
		return OfferDraft{}, err
	}
	if draft.ProductName == "" {
		draft.ProductName = input.ProductName
	}
	ResolveLogger(a.Logger).Debug("offer drafted",
		"event", "offer_drafted",
		"module", "ad-production/creative-agents",
		"layer", "application",
		"product", draft.ProductName,
	)
	return draft, nil
}
