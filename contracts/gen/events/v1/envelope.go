package v1

import (
	"encoding/json"
	"time"
)

// Envelope is the canonical, versioned event envelope for cross-runtime use.
// This package is generated-contract-only and must stay backward compatible.
type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	OccurredAt    time.Time       `json:"occurred_at"`
	SourceService string          `json:"source_service"`
	TraceID       string          `json:"trace_id"`
	SchemaVersion int             `json:"schema_version"`
	CampaignID    string          `json:"campaign_id"`
	Data          json.RawMessage `json:"data"`
}

// Event types emitted by the ad-production pipeline.
const (
	EventTypeCampaignPhaseChanged   = "ad_production.campaign.phase_changed"
	EventTypeKeyframeSlotRequested  = "ad_production.keyframe.slot_requested"
	EventTypeKeyframeResolved       = "ad_production.keyframe.resolved"
	EventTypeGenerationTaskFinished = "ad_production.generation.task_finished"
	EventTypeStoryboardAssembled    = "ad_production.storyboard.assembled"
	EventTypeSegmentResolved        = "ad_production.segment.resolved"
)
