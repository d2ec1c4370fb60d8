package events

import (
	"encoding/json"
	"time"

	contractsv1 "adforge/contracts/gen/events/v1"

	"github.com/google/uuid"
)

// SourceService is stamped on every envelope produced by this process.
const SourceService = "adforge"

// New builds a versioned envelope around an arbitrary payload.
// Marshal failures degrade to an empty data document rather than dropping
// the event, so the outbox relay never stalls on a single bad payload.
func New(eventType string, campaignID string, payload any) contractsv1.Envelope {
	data, err := json.Marshal(payload)
	if err != nil {
		data = []byte(`{}`)
	}
	return contractsv1.Envelope{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		OccurredAt:    time.Now().UTC(),
		SourceService: SourceService,
		SchemaVersion: 1,
		CampaignID:    campaignID,
		Data:          data,
	}
}
