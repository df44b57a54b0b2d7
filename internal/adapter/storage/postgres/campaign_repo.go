package postgres

import (
	"context"
	"errors"
	"fmt"

	"restaurant-bot-dashboard/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const campaignColumns = `id, tenant_id, name, status, total_recipients, sent_count, delivered_count,
	failed_count, scheduled_at, cancelled_at, created_at, updated_at`

// CampaignRepo implements ports.CampaignRepository.
type CampaignRepo struct {
	pool Pool
}

// NewCampaignRepo creates a new CampaignRepo.
func NewCampaignRepo(pool Pool) *CampaignRepo {
	return &CampaignRepo{pool: pool}
}

// GetByID fetches a campaign scoped to its owning tenant.
// A campaign owned by another tenant is reported as missing.
func (r *CampaignRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE id = $1 AND tenant_id = $2`

	c := &domain.Campaign{}
	err := r.pool.QueryRow(ctx, query, id, tenantID).Scan(
		&c.ID, &c.TenantID, &c.Name, &c.Status, &c.TotalRecipients, &c.SentCount,
		&c.DeliveredCount, &c.FailedCount, &c.ScheduledAt, &c.CancelledAt,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get campaign by id: %w", err)
	}
	return c, nil
}

// MarkCancelled sets the campaign to CANCELLED only while it is still
// SCHEDULED or SENDING, so a concurrent sweep cannot cancel twice.
func (r *CampaignRepo) MarkCancelled(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `UPDATE campaigns SET status = $1, cancelled_at = NOW(), updated_at = NOW()
		WHERE id = $2 AND status = ANY($3)`

	tag, err := r.pool.Exec(ctx, query, domain.CampaignStatusCancelled, id, cancellableStatusArgs())
	if err != nil {
		return false, fmt.Errorf("mark campaign cancelled: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// IncrementCounter adds one to a delivery counter within a transaction.
func (r *CampaignRepo) IncrementCounter(ctx context.Context, tx pgx.Tx, id uuid.UUID, counter domain.CampaignCounter) error {
	column, err := counterColumn(counter)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`UPDATE campaigns SET %s = %s + 1, updated_at = NOW() WHERE id = $1`, column, column)

	tag, err := tx.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("increment campaign %s: %w", column, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("campaign not found: %s", id)
	}
	return nil
}

// counterColumn whitelists the columns that may be interpolated into SQL.
func counterColumn(counter domain.CampaignCounter) (string, error) {
	switch counter {
	case domain.CounterDelivered, domain.CounterFailed:
		return string(counter), nil
	}
	return "", fmt.Errorf("unknown campaign counter %q", counter)
}

func cancellableStatusArgs() []string {
	statuses := domain.CancellableStatuses()
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
