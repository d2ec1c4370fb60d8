package entities

// Phase is the ordinal position in the nine-step production workflow.
// Phases only ever move forward.
type Phase int

const (
	PhaseSetup Phase = iota
	PhaseBrief
	PhaseScripting
	PhaseConsistency
	PhaseKeyframing
	PhaseStoryboarding
	PhaseGeneratingVideo
	PhaseReviewing
	PhaseExported
)

var phaseNames = map[Phase]string{
	PhaseSetup:           "setup",
	PhaseBrief:           "brief",
	PhaseScripting:       "scripting",
	PhaseConsistency:     "consistency",
	PhaseKeyframing:      "keyframing",
	PhaseStoryboarding:   "storyboarding",
	PhaseGeneratingVideo: "generating_video",
	PhaseReviewing:       "reviewing",
	PhaseExported:        "exported",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

func ParsePhase(value string) (Phase, bool) {
	for phase, name := range phaseNames {
		if name == value {
			return phase, true
		}
	}
	return PhaseSetup, false
}

// ValidEdge reports whether the workflow permits moving from one phase
// directly to another. The only legal moves are a single step forward, plus
// the explicit consistency bypass from scripting straight to keyframing when
// the campaign elected to skip the character lock.
func ValidEdge(from Phase, to Phase, skipConsistency bool) bool {
	if to == from+1 {
		return true
	}
	return skipConsistency && from == PhaseScripting && to == PhaseKeyframing
}
