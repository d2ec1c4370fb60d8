package ports

import "context"

// Agent names ride along on every prompt so adapters can pick models or
// canned outputs per agent.
const (
	AgentOfferBuilder         = "offer-builder"
	AgentAvatarResearcher     = "avatar-researcher"
	AgentHookWriter           = "hook-writer"
	AgentScriptWriter         = "script-writer"
	AgentConsistencyEnforcer  = "consistency-enforcer"
	AgentKeyframeEngineer     = "keyframe-prompt-engineer"
	AgentTransitionWriter     = "transition-prompt-writer"
	AgentVideoPromptEngineer  = "video-prompt-engineer"
)

type Prompt struct {
	Agent  string
	System string
	User   string
	// ForceJSON asks the model for a strict JSON object response.
	ForceJSON bool
}

// TextModel is the language-model boundary for all agents.
type TextModel interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}
