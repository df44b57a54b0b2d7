package ports

import (
	"context"
	"time"

	"restaurant-bot-dashboard/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CampaignRepository defines persistence operations for campaigns.
// Methods accepting pgx.Tx run inside the caller's transaction.
type CampaignRepository interface {
	// GetByID returns the campaign only if it belongs to tenantID; nil, nil otherwise.
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Campaign, error)
	// MarkCancelled moves a SCHEDULED or SENDING campaign to CANCELLED.
	// It returns false when the campaign was no longer in a cancellable state.
	MarkCancelled(ctx context.Context, id uuid.UUID) (bool, error)
	// IncrementCounter atomically adds one to the named counter.
	IncrementCounter(ctx context.Context, tx pgx.Tx, id uuid.UUID, counter domain.CampaignCounter) error
}

// RecipientCursor is a keyset position in a campaign's recipient list
// (insertion order). The zero value starts from the beginning.
type RecipientCursor struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// After returns the cursor positioned just past r.
func (c RecipientCursor) After(r domain.Recipient) RecipientCursor {
	return RecipientCursor{CreatedAt: r.CreatedAt, ID: r.ID}
}

// RecipientRepository defines persistence operations for campaign recipients.
type RecipientRepository interface {
	// ListCancellable returns up to limit SENT recipients that carry a provider
	// message id, in insertion order, strictly after the cursor.
	ListCancellable(ctx context.Context, campaignID uuid.UUID, after RecipientCursor, limit int) ([]domain.Recipient, error)
	// GetByProviderMessageID returns nil, nil when the id is not tracked.
	GetByProviderMessageID(ctx context.Context, providerMessageID string) (*domain.Recipient, error)
	// GetByIDForUpdate locks the recipient row for the rest of tx.
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Recipient, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.RecipientStatus, errorMessage *string) error
}

// AuditRepository persists audit entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
