package entities

import "time"

type HookOptionStatus string

const (
	HookOptionStatusPending  HookOptionStatus = "pending"
	HookOptionStatusSelected HookOptionStatus = "selected"
	HookOptionStatusRejected HookOptionStatus = "rejected"
)

// HookOptionCount is the fixed size of a hook arbitration group.
const HookOptionCount = 4

// HookOption is one candidate opening line. Four candidates form an
// arbitration group; exactly one ends up selected, the rest rejected.
type HookOption struct {
	HookID       string
	CampaignID   string
	VariantIndex int
	Text         string
	StyleTag     string
	Rationale    string
	Status       HookOptionStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
