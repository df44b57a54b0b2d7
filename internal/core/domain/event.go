package domain

import (
	"time"

	"github.com/google/uuid"
)

// Routing keys for campaign events.
const (
	EventCampaignCancelled      = "campaign.cancelled"
	EventRecipientStatusChanged = "recipient.status_changed"
)

// EventMeta is the common header of every published event.
type EventMeta struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	TenantID   string    `json:"tenant_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Event is the envelope published to the event bus.
type Event struct {
	Meta EventMeta `json:"meta"`
	Data any       `json:"data"`
}

// NewEvent wraps data in an envelope with a fresh id.
func NewEvent(eventType string, tenantID uuid.UUID, data any) Event {
	meta := EventMeta{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
	}
	if tenantID != uuid.Nil {
		meta.TenantID = tenantID.String()
	}
	return Event{Meta: meta, Data: data}
}

// CampaignCancelled is published once a campaign reaches CANCELLED.
type CampaignCancelled struct {
	CampaignID     uuid.UUID `json:"campaign_id"`
	PreviousStatus string    `json:"previous_status"`
	CancelledCount int64     `json:"cancelled_count"`
	RejectedCount  int64     `json:"rejected_count"`
}

// RecipientStatusChanged is published for every genuine delivery transition.
type RecipientStatusChanged struct {
	CampaignID        uuid.UUID       `json:"campaign_id"`
	RecipientID       uuid.UUID       `json:"recipient_id"`
	ProviderMessageID string          `json:"provider_message_id"`
	PreviousStatus    RecipientStatus `json:"previous_status"`
	Status            RecipientStatus `json:"status"`
	ErrorMessage      *string         `json:"error_message,omitempty"`
}
