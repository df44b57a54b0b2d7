package domain

import (
	"time"

	"github.com/google/uuid"
)

// CampaignStatus represents the lifecycle state of an outbound campaign.
type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "DRAFT"
	CampaignStatusScheduled CampaignStatus = "SCHEDULED"
	CampaignStatusSending   CampaignStatus = "SENDING"
	CampaignStatusCancelled CampaignStatus = "CANCELLED"
	CampaignStatusCompleted CampaignStatus = "COMPLETED"
)

// CampaignCounter names one of the monotonically increasing campaign counters.
type CampaignCounter string

const (
	CounterDelivered CampaignCounter = "delivered_count"
	CounterFailed    CampaignCounter = "failed_count"
)

// Campaign is a batch of outbound WhatsApp messages sent on behalf of a restaurant.
type Campaign struct {
	ID              uuid.UUID      `json:"id"`
	TenantID        uuid.UUID      `json:"tenant_id"`
	Name            string         `json:"name"`
	Status          CampaignStatus `json:"status"`
	TotalRecipients int64          `json:"total_recipients"`
	SentCount       int64          `json:"sent_count"`
	DeliveredCount  int64          `json:"delivered_count"`
	FailedCount     int64          `json:"failed_count"`
	ScheduledAt     *time.Time     `json:"scheduled_at,omitempty"`
	CancelledAt     *time.Time     `json:"cancelled_at,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// IsCancellable reports whether the campaign may still be cancelled.
// Only campaigns with sends outstanding qualify.
func (c *Campaign) IsCancellable() bool {
	return c.Status == CampaignStatusScheduled || c.Status == CampaignStatusSending
}

// CancellableStatuses lists the statuses a cancellation may start from.
func CancellableStatuses() []CampaignStatus {
	return []CampaignStatus{CampaignStatusScheduled, CampaignStatusSending}
}
