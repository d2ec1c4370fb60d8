package entities

import "time"

// TransitionDirection names the camera move between two positions of a
// section's visual arc.
type TransitionDirection string

const (
	TransitionStartToMiddle TransitionDirection = "start_to_middle"
	TransitionMiddleToEnd   TransitionDirection = "middle_to_end"
)

var TransitionDirections = []TransitionDirection{TransitionStartToMiddle, TransitionMiddleToEnd}

func IsSupportedTransition(value TransitionDirection) bool {
	switch value {
	case TransitionStartToMiddle, TransitionMiddleToEnd:
		return true
	default:
		return false
	}
}

// FromPosition is the slot a transition animates away from.
func (d TransitionDirection) FromPosition() Position {
	if d == TransitionMiddleToEnd {
		return PositionMiddle
	}
	return PositionStart
}

// ToPosition is the slot a transition animates into.
func (d TransitionDirection) ToPosition() Position {
	if d == TransitionMiddleToEnd {
		return PositionEnd
	}
	return PositionMiddle
}

// TransitionPrompt describes camera and subject motion between two
// keyframes. A user edit always takes precedence over the generated text.
type TransitionPrompt struct {
	PromptID       string
	CampaignID     string
	Section        Section
	Direction      TransitionDirection
	PromptText     string
	UserEdited     bool
	UserEditedText string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// EffectiveText is the text used for storyboard assembly and video prompts.
func (t TransitionPrompt) EffectiveText() string {
	if t.UserEdited && t.UserEditedText != "" {
		return t.UserEditedText
	}
	return t.PromptText
}
