package dto

import (
	"time"

	"restaurant-bot-dashboard/internal/core/domain"
)

// CancelCampaignResponse is the fixed-shape body for a successful cancellation.
type CancelCampaignResponse struct {
	Success        bool  `json:"success"`
	CancelledCount int64 `json:"cancelledCount"`
}

// TwilioStatusCallback is the form Twilio posts to the status callback URL.
// Only the fields the dashboard acts on are bound.
type TwilioStatusCallback struct {
	MessageSid    string `form:"MessageSid"`
	MessageStatus string `form:"MessageStatus"`
	ErrorCode     string `form:"ErrorCode"`
}

// WebhookAck is returned to the provider once a callback has been accepted.
type WebhookAck struct {
	OK bool `json:"ok"`
}

// CampaignResponse is the response body for a campaign read.
type CampaignResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Status          string  `json:"status"`
	TotalRecipients int64   `json:"total_recipients"`
	SentCount       int64   `json:"sent_count"`
	DeliveredCount  int64   `json:"delivered_count"`
	FailedCount     int64   `json:"failed_count"`
	ScheduledAt     *string `json:"scheduled_at,omitempty"`
	CancelledAt     *string `json:"cancelled_at,omitempty"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

// NewCampaignResponse converts a domain campaign to its API form.
func NewCampaignResponse(c *domain.Campaign) CampaignResponse {
	return CampaignResponse{
		ID:              c.ID.String(),
		Name:            c.Name,
		Status:          string(c.Status),
		TotalRecipients: c.TotalRecipients,
		SentCount:       c.SentCount,
		DeliveredCount:  c.DeliveredCount,
		FailedCount:     c.FailedCount,
		ScheduledAt:     formatTime(c.ScheduledAt),
		CancelledAt:     formatTime(c.CancelledAt),
		CreatedAt:       c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       c.UpdatedAt.Format(time.RFC3339),
	}
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
