package entities

import "time"

type SegmentStatus string

const (
	SegmentStatusQueued     SegmentStatus = "queued"
	SegmentStatusGenerating SegmentStatus = "generating"
	SegmentStatusGenerated  SegmentStatus = "generated"
	SegmentStatusApproved   SegmentStatus = "approved"
	SegmentStatusRejected   SegmentStatus = "rejected"
)

// VideoSegment is one animated transition of the final ad. Status moves
// forward only; rejected is terminal and is never re-attempted without an
// explicit regenerate request.
type VideoSegment struct {
	SegmentID         string
	CampaignID        string
	Section           Section
	Direction         TransitionDirection
	VideoPrompt       string
	SourceKeyframeURL string
	VideoURL          string
	Provider          string
	Model             string
	ProviderTaskID    string
	DurationSeconds   int
	Status            SegmentStatus
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Terminal reports whether the segment needs no further generation work.
func (s VideoSegment) Terminal() bool {
	switch s.Status {
	case SegmentStatusGenerated, SegmentStatusApproved, SegmentStatusRejected:
		return true
	default:
		return false
	}
}
