package postgres

import (
	"context"
	"errors"
	"fmt"

	"restaurant-bot-dashboard/internal/core/domain"
	"restaurant-bot-dashboard/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const recipientColumns = `id, campaign_id, phone_number, provider_message_id, status, error_message, created_at, updated_at`

// RecipientRepo implements ports.RecipientRepository.
type RecipientRepo struct {
	pool Pool
}

// NewRecipientRepo creates a new RecipientRepo.
func NewRecipientRepo(pool Pool) *RecipientRepo {
	return &RecipientRepo{pool: pool}
}

// ListCancellable pages through SENT recipients with a provider message id.
// Keyset pagination on (created_at, id) keeps pages stable while earlier
// rows change status underneath the sweep.
func (r *RecipientRepo) ListCancellable(ctx context.Context, campaignID uuid.UUID, after ports.RecipientCursor, limit int) ([]domain.Recipient, error) {
	query := `SELECT ` + recipientColumns + ` FROM campaign_recipients
		WHERE campaign_id = $1 AND status = $2
			AND provider_message_id IS NOT NULL AND provider_message_id <> ''
			AND (created_at, id) > ($3, $4)
		ORDER BY created_at, id
		LIMIT $5`

	rows, err := r.pool.Query(ctx, query, campaignID, domain.RecipientStatusSent, after.CreatedAt, after.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("list cancellable recipients: %w", err)
	}
	defer rows.Close()

	var recipients []domain.Recipient
	for rows.Next() {
		rc := domain.Recipient{}
		if err := rows.Scan(
			&rc.ID, &rc.CampaignID, &rc.PhoneNumber, &rc.ProviderMessageID,
			&rc.Status, &rc.ErrorMessage, &rc.CreatedAt, &rc.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan recipient row: %w", err)
		}
		recipients = append(recipients, rc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipient rows: %w", err)
	}
	return recipients, nil
}

// GetByProviderMessageID fetches the recipient a provider message belongs to.
func (r *RecipientRepo) GetByProviderMessageID(ctx context.Context, providerMessageID string) (*domain.Recipient, error) {
	query := `SELECT ` + recipientColumns + ` FROM campaign_recipients WHERE provider_message_id = $1`
	return scanRecipient(r.pool.QueryRow(ctx, query, providerMessageID), "get recipient by provider message id")
}

// GetByIDForUpdate fetches a recipient with pessimistic locking.
// This MUST be called within a transaction.
func (r *RecipientRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Recipient, error) {
	query := `SELECT ` + recipientColumns + ` FROM campaign_recipients WHERE id = $1 FOR UPDATE`
	return scanRecipient(tx.QueryRow(ctx, query, id), "get recipient for update")
}

// UpdateStatus writes a new delivery status within a transaction.
func (r *RecipientRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.RecipientStatus, errorMessage *string) error {
	query := `UPDATE campaign_recipients SET status = $1, error_message = $2, updated_at = NOW() WHERE id = $3`

	tag, err := tx.Exec(ctx, query, status, errorMessage, id)
	if err != nil {
		return fmt.Errorf("update recipient status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("recipient not found: %s", id)
	}
	return nil
}

func scanRecipient(row pgx.Row, op string) (*domain.Recipient, error) {
	rc := &domain.Recipient{}
	err := row.Scan(
		&rc.ID, &rc.CampaignID, &rc.PhoneNumber, &rc.ProviderMessageID,
		&rc.Status, &rc.ErrorMessage, &rc.CreatedAt, &rc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return rc, nil
}
