package entities

// Section is one of the five fixed narrative beats of an ad, always in
// canonical order: hook, problem, solution, social_proof, cta.
type Section string

const (
	SectionHook        Section = "hook"
	SectionProblem     Section = "problem"
	SectionSolution    Section = "solution"
	SectionSocialProof Section = "social_proof"
	SectionCTA         Section = "cta"
)

// Sections lists the canonical order used for slot progression and
// storyboard assembly.
var Sections = []Section{SectionHook, SectionProblem, SectionSolution, SectionSocialProof, SectionCTA}

func IsSupportedSection(value Section) bool {
	return sectionIndex(value) >= 0
}

func sectionIndex(section Section) int {
	for i, s := range Sections {
		if s == section {
			return i
		}
	}
	return -1
}

// Position is one of three points in a section's visual arc.
type Position string

const (
	PositionStart  Position = "start"
	PositionMiddle Position = "middle"
	PositionEnd    Position = "end"
)

var Positions = []Position{PositionStart, PositionMiddle, PositionEnd}

func IsSupportedPosition(value Position) bool {
	switch value {
	case PositionStart, PositionMiddle, PositionEnd:
		return true
	default:
		return false
	}
}

// SlotCount is the number of keyframe slots a campaign must resolve before
// the storyboard can be assembled.
var SlotCount = len(Sections) * len(Positions)

// NextSlot computes the slot to generate after (section, position) resolves.
// Position advances start -> middle -> end within a section; resolving end
// moves to the start of the next canonical section. After cta/end both
// returns are nil, signalling the campaign is storyboard-ready.
func NextSlot(section Section, position Position) (*Section, *Position) {
	switch position {
	case PositionStart:
		next := PositionMiddle
		return nil, &next
	case PositionMiddle:
		next := PositionEnd
		return nil, &next
	case PositionEnd:
		idx := sectionIndex(section)
		if idx < 0 || idx+1 >= len(Sections) {
			return nil, nil
		}
		nextSection := Sections[idx+1]
		nextPosition := PositionStart
		return &nextSection, &nextPosition
	default:
		return nil, nil
	}
}

// PreviousSlot is the visually adjacent slot whose selected keyframe anchors
// continuity for (section, position). The first slot of the whole sequence
// has no predecessor.
func PreviousSlot(section Section, position Position) (Section, Position, bool) {
	switch position {
	case PositionMiddle:
		return section, PositionStart, true
	case PositionEnd:
		return section, PositionMiddle, true
	case PositionStart:
		idx := sectionIndex(section)
		if idx <= 0 {
			return "", "", false
		}
		return Sections[idx-1], PositionEnd, true
	default:
		return "", "", false
	}
}
