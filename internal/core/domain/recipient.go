package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RecipientStatus represents the delivery state of a single campaign addressee.
type RecipientStatus string

const (
	RecipientStatusPending   RecipientStatus = "PENDING"
	RecipientStatusSent      RecipientStatus = "SENT"
	RecipientStatusDelivered RecipientStatus = "DELIVERED"
	RecipientStatusFailed    RecipientStatus = "FAILED"
)

// Recipient is one addressee within a campaign.
// ProviderMessageID is set once a send attempt reached the provider and is
// never present on PENDING recipients.
type Recipient struct {
	ID                uuid.UUID       `json:"id"`
	CampaignID        uuid.UUID       `json:"campaign_id"`
	PhoneNumber       string          `json:"phone_number"`
	ProviderMessageID *string         `json:"provider_message_id,omitempty"`
	Status            RecipientStatus `json:"status"`
	ErrorMessage      *string         `json:"error_message,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// IsCancellable reports whether a provider-side cancel should be attempted.
func (r *Recipient) IsCancellable() bool {
	return r.Status == RecipientStatusSent &&
		r.ProviderMessageID != nil && *r.ProviderMessageID != ""
}

// CounterFor returns the campaign counter that a transition into status
// increments, and false for statuses that carry no counter.
func CounterFor(status RecipientStatus) (CampaignCounter, bool) {
	switch status {
	case RecipientStatusDelivered:
		return CounterDelivered, true
	case RecipientStatusFailed:
		return CounterFailed, true
	}
	return "", false
}

// DeliveryUpdate is a provider status callback normalized to recipient terms.
type DeliveryUpdate struct {
	ProviderMessageID string
	Status            RecipientStatus
	ErrorMessage      *string
}

// NormalizeProviderStatus maps a Twilio MessageStatus onto a recipient status.
// Only the four terminal signals are acted on; ok is false for anything else
// (queued, sending, sent, accepted, scheduled, canceled, ...).
func NormalizeProviderStatus(providerMessageID, providerStatus, errorCode string) (DeliveryUpdate, bool) {
	switch providerStatus {
	case "delivered", "read":
		return DeliveryUpdate{
			ProviderMessageID: providerMessageID,
			Status:            RecipientStatusDelivered,
		}, true
	case "failed", "undelivered":
		code := errorCode
		if code == "" {
			code = "unknown"
		}
		msg := fmt.Sprintf("%s: %s", providerStatus, code)
		return DeliveryUpdate{
			ProviderMessageID: providerMessageID,
			Status:            RecipientStatusFailed,
			ErrorMessage:      &msg,
		}, true
	}
	return DeliveryUpdate{}, false
}
