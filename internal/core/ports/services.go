package ports

import (
	"context"
	"time"

	"restaurant-bot-dashboard/internal/core/domain"

	"github.com/google/uuid"
)

// MessagingGateway is the outbound messaging provider (Twilio WhatsApp).
type MessagingGateway interface {
	// Cancel asks the provider to cancel a scheduled or queued message.
	// It never returns an error; failures come back as a rejected result.
	Cancel(ctx context.Context, providerMessageID string) domain.CancelResult
}

// SignatureValidator verifies that a callback was signed by the provider.
type SignatureValidator interface {
	Validate(url string, params map[string]string, signature string) bool
}

// CallbackDeduper remembers the last delivery state applied per provider
// message, so an exact redelivery can skip the database. It tracks one state
// per message; a callback carrying a different state is never suppressed.
type CallbackDeduper interface {
	// Seen reports whether state is the last state recorded for messageID.
	Seen(ctx context.Context, messageID, state string) (bool, error)
	// Record stores state as the last applied state of messageID.
	Record(ctx context.Context, messageID, state string, ttl time.Duration) error
	// Forget clears the record of messageID if it still holds state.
	Forget(ctx context.Context, messageID, state string) error
}

// CampaignLock serializes cancellation sweeps of one campaign across instances.
type CampaignLock interface {
	// Acquire returns an owner token and true when the lock was taken.
	Acquire(ctx context.Context, campaignID uuid.UUID, ttl time.Duration) (string, bool, error)
	// Release drops the lock if token still owns it.
	Release(ctx context.Context, campaignID uuid.UUID, token string) error
}

// EventPublisher publishes campaign events to the event bus.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, event domain.Event) error
}

// TokenService handles dashboard bearer tokens.
type TokenService interface {
	Generate(tenantID uuid.UUID) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	TenantID uuid.UUID
}

// AuditService records operator actions.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}

// --- Service Ports (Business Logic) ---

// CampaignService orchestrates campaign cancellation and delivery reconciliation.
type CampaignService interface {
	CancelCampaign(ctx context.Context, tenantID, campaignID uuid.UUID) (*CancelSummary, error)
	ReconcileDeliveryStatus(ctx context.Context, cb DeliveryCallback) error
	GetCampaign(ctx context.Context, tenantID, campaignID uuid.UUID) (*domain.Campaign, error)
}

// CancelSummary reports what a cancellation sweep did.
type CancelSummary struct {
	CancelledCount int64
	RejectedCount  int64
}

// DeliveryCallback is the raw provider status callback.
type DeliveryCallback struct {
	MessageSid    string
	MessageStatus string
	ErrorCode     string
}
