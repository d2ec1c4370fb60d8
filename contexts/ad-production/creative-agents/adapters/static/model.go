package static

import (
	"context"
	"fmt"

	"adforge/contexts/ad-production/creative-agents/ports"
)

// Model is a deterministic stand-in for a real language model. Every agent
// gets a fixed, schema-correct JSON completion, which makes the full
// pipeline runnable offline and in tests.
type Model struct{}

func NewModel() *Model {
	return &Model{}
}

func (m *Model) Complete(_ context.Context, prompt ports.Prompt) (string, error) {
	switch prompt.Agent {
	case ports.AgentOfferBuilder:
		return offerJSON, nil
	case ports.AgentAvatarResearcher:
		return avatarJSON, nil
	case ports.AgentHookWriter:
		return hooksJSON, nil
	case ports.AgentScriptWriter:
		return scriptJSON, nil
	case ports.AgentConsistencyEnforcer:
		return consistencyJSON, nil
	case ports.AgentKeyframeEngineer:
		return keyframesJSON, nil
	case ports.AgentTransitionWriter:
		return transitionsJSON, nil
	case ports.AgentVideoPromptEngineer:
		return videoPromptJSON, nil
	default:
		return "", fmt.Errorf("static model: unknown agent %q", prompt.Agent)
	}
}

const offerJSON = `{
  "productName": "SiteTrack Pro",
  "dreamOutcome": "Run every job site from one screen and leave work on time",
  "perceivedLikelihood": "Live GPS proof of every crew, trusted by 2,000 contractors",
  "timeDelay": "First full overview within one afternoon, payback in a month",
  "effortSacrifice": "Install the app, invite the crew, done - no training days",
  "summary": "Total job-site control in an afternoon, with zero training and proof on day one.",
  "keySellingPoints": ["Live crew map", "One-tap daily reports", "No training required", "Works on any phone"]
}`

const avatarJSON = `{
  "name": "Mike",
  "demographics": {"age": "38-50", "income": "$90k-$140k", "location": "US suburbs", "jobTitle": "General contractor", "gender": "male"},
  "psychographics": {"values": ["craftsmanship", "reliability", "family time"], "fears": ["losing a big client", "crew idle time", "looking out of touch"], "worldview": "Hard work should speak for itself, paperwork is the enemy."},
  "painPoints": ["Chasing crews by phone all day", "Paper timesheets that never add up", "Clients calling for updates he cannot give", "Evenings lost to admin"],
  "failedSolutions": ["Spreadsheets", "Group texts", "A bloated enterprise suite nobody opened"],
  "languagePatterns": ["I'm flying blind out there", "Where is my crew right now", "I didn't sign up to push paper"],
  "objections": ["My guys won't use an app", "Another monthly fee", "Setup will eat a week"],
  "triggerEvents": ["Lost a renovation contract over a missed deadline", "Crew sat idle half a day at the wrong site"],
  "aspirations": ["Leave the office by five", "Take on a second crew", "Win bigger commercial bids"],
  "fullBriefMd": "## Mike\n\nMike runs a small general-contracting outfit and spends his days chasing crews by phone. He has tried spreadsheets and group texts, and once paid for an enterprise suite nobody opened.\n\nWhat he wants is simple: know where every crew is without calling, and get his evenings back."
}`

const hooksJSON = `{
  "hooks": [
    {"text": "I fired my whiteboard and got my evenings back.", "styleTag": "confession", "rationale": "Relatable admission that mirrors the avatar's admin fatigue."},
    {"text": "Where is your crew right now? Exactly.", "styleTag": "question", "rationale": "Uses the avatar's own words to expose the blind spot."},
    {"text": "Paper timesheets cost this contractor a $40k job.", "styleTag": "bold_claim", "rationale": "Concrete loss tied to the trigger event."},
    {"text": "Stop running job sites from your truck.", "styleTag": "pattern_interrupt", "rationale": "Names the daily workaround and forbids it."}
  ]
}`

const scriptJSON = `{
  "sections": [
    {"section": "hook", "copyText": "Where is your crew right now? Exactly.", "visualDescription": "Tight close-up on a contractor's face lit by a phone screen in a dark truck cab.", "durationSeconds": 5},
    {"section": "problem", "copyText": "Three sites, one phone, and nobody picking up. Every day ends with paperwork instead of dinner.", "visualDescription": "Handheld shots of missed calls, paper timesheets on a dashboard, sun setting over an empty site.", "durationSeconds": 13},
    {"section": "solution", "copyText": "SiteTrack Pro puts every crew on one live map. Install it this afternoon, no training day needed.", "visualDescription": "Phone screen showing a live crew map, worker tapping one button to file a daily report.", "durationSeconds": 14},
    {"section": "social_proof", "copyText": "Two thousand contractors run their sites this way. Mike won two commercial bids the month he switched.", "visualDescription": "Quick cuts of finished projects, a five-star review card, a handshake at a job site.", "durationSeconds": 14},
    {"section": "cta", "copyText": "Try it free for thirty days, no card required. Your evenings are waiting.", "visualDescription": "Contractor locking the office at golden hour, app icon and URL on screen.", "durationSeconds": 14}
  ]
}`

const consistencyJSON = `{
  "avatarSpec": {"age": "45", "gender": "male", "hairColor": "dark brown", "hairStyle": "short, graying at temples", "skinTone": "weathered tan", "clothing": "orange hi-vis vest over gray henley, worn jeans", "distinguishingFeatures": "short beard, heavy work watch", "fullDescription": "45-year-old stocky male contractor, short graying dark brown hair, weathered tan skin, short beard, wearing an orange hi-vis vest over a gray henley and worn jeans"},
  "environmentSpec": {"location": "active residential construction site", "timeOfDay": "golden hour", "lighting": "warm natural sunlight with long shadows", "keyProps": ["steel framing", "blueprints", "pickup truck"], "colorScheme": ["#D98E32", "#4A5A6A", "#F2E3C6"], "fullDescription": "active residential construction site at golden hour, steel framing and blueprints visible, pickup truck in background"},
  "visualStyle": "cinematic 4K, shallow depth of field, golden hour warm tones, documentary-style handheld",
  "colorPalette": ["#D98E32", "#4A5A6A", "#F2E3C6", "#1E1E1E"]
}`

const keyframesJSON = `{
  "prompts": [
    {"promptText": "Wide shot, 45-year-old stocky male contractor, short graying dark brown hair, weathered tan skin, short beard, wearing an orange hi-vis vest over a gray henley and worn jeans, surveying an active residential construction site at golden hour, steel framing behind him, cinematic 4K, shallow depth of field", "negativePrompt": "artifacts, blur, text, watermarks, multiple people, cartoon", "style": "wide establishing"},
    {"promptText": "Close-up, 45-year-old stocky male contractor, short graying dark brown hair, weathered tan skin, short beard, wearing an orange hi-vis vest over a gray henley and worn jeans, studying his phone with furrowed brow, golden hour rim light, documentary-style handheld", "negativePrompt": "artifacts, blur, text, watermarks, multiple people, cartoon", "style": "close-up"},
    {"promptText": "Over-shoulder shot, 45-year-old stocky male contractor, short graying dark brown hair, weathered tan skin, short beard, wearing an orange hi-vis vest over a gray henley and worn jeans, looking across steel framing at an active residential construction site, warm long shadows, cinematic 4K", "negativePrompt": "artifacts, blur, text, watermarks, multiple people, cartoon", "style": "over-shoulder"},
    {"promptText": "Low-angle medium shot, 45-year-old stocky male contractor, short graying dark brown hair, weathered tan skin, short beard, wearing an orange hi-vis vest over a gray henley and worn jeans, blueprints under his arm at golden hour, pickup truck softly blurred behind, shallow depth of field", "negativePrompt": "artifacts, blur, text, watermarks, multiple people, cartoon", "style": "low-angle"}
  ]
}`

const transitionsJSON = `{
  "startToMiddle": "Slow push-in from medium to close-up as the contractor looks down at his phone, frustration building.",
  "middleToEnd": "Smooth crane up from the phone screen revealing the full job site, golden light sweeping across the frame."
}`

const videoPromptJSON = `{
  "motionPrompt": "Slow steady push-in on the contractor as he lifts his phone, handheld sway kept subtle, golden hour light warming across his face, background crew movement softly blurred, pacing calm and deliberate.",
  "cameraMovement": "push-in"
}`
