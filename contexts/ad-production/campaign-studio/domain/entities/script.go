package entities

import "time"

type ScriptStatus string

const (
	ScriptStatusDraft    ScriptStatus = "draft"
	ScriptStatusApproved ScriptStatus = "approved"
)

// Script is the ad copy for one section. Scripts are created as a batch of
// five and only ever move draft -> approved.
type Script struct {
	ScriptID          string
	CampaignID        string
	Section           Section
	CopyText          string
	VisualDescription string
	DurationSeconds   int
	Status            ScriptStatus
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
