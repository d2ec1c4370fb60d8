package entities

type StoryboardStatus string

const (
	StoryboardStatusDraft    StoryboardStatus = "draft"
	StoryboardStatusApproved StoryboardStatus = "approved"
)

type KeyframeRef struct {
	KeyframeID string
	ImageURL   string
}

type TransitionRef struct {
	PromptID string
	Text     string
}

type StoryboardKeyframes struct {
	Start  KeyframeRef
	Middle KeyframeRef
	End    KeyframeRef
}

type StoryboardTransitions struct {
	StartToMiddle TransitionRef
	MiddleToEnd   TransitionRef
}

// StoryboardSection is one time-stamped beat of the assembled ad.
type StoryboardSection struct {
	Section     Section
	StartTime   int
	EndTime     int
	Keyframes   StoryboardKeyframes
	Transitions StoryboardTransitions
	Dialogue    string
	TextOverlay string
}

// Storyboard is the final ordered assembly of selected keyframes and
// transition texts. Built once all fifteen slots resolve; draft -> approved
// is monotonic.
type Storyboard struct {
	Sections      []StoryboardSection
	TotalDuration int
	Status        StoryboardStatus
}
