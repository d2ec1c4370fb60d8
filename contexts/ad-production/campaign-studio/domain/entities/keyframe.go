package entities

import "time"

type KeyframeStatus string

const (
	KeyframeStatusGenerating KeyframeStatus = "generating"
	KeyframeStatusGenerated  KeyframeStatus = "generated"
	KeyframeStatusSelected   KeyframeStatus = "selected"
	KeyframeStatusRejected   KeyframeStatus = "rejected"
)

// KeyframeVariantCount is the number of candidates generated per slot.
const KeyframeVariantCount = 4

// Keyframe is one candidate still image for a (section, position) slot.
// At most one keyframe per slot is ever selected; selecting one rejects its
// three siblings atomically.
type Keyframe struct {
	KeyframeID     string
	CampaignID     string
	Section        Section
	Position       Position
	VariantIndex   int
	PromptText     string
	NegativePrompt string
	ImageURL       string
	ProviderTaskID string
	Status         KeyframeStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
