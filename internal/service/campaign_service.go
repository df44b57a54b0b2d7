package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"restaurant-bot-dashboard/internal/core/domain"
	"restaurant-bot-dashboard/internal/core/ports"
	"restaurant-bot-dashboard/pkg/apperror"
	"restaurant-bot-dashboard/pkg/logger"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// CampaignOptions tunes the cancellation sweep and callback handling.
type CampaignOptions struct {
	CancelConcurrency int
	CancelBatchSize   int
	CancelLockTTL     time.Duration
	DedupTTL          time.Duration
}

// CampaignServiceImpl implements ports.CampaignService.
type CampaignServiceImpl struct {
	campaigns  ports.CampaignRepository
	recipients ports.RecipientRepository
	gateway    ports.MessagingGateway
	lock       ports.CampaignLock
	dedup      ports.CallbackDeduper
	events     ports.EventPublisher
	transactor ports.DBTransactor
	opts       CampaignOptions
	log        zerolog.Logger
}

// NewCampaignService creates a new CampaignServiceImpl.
// If events is nil, no campaign events are published.
func NewCampaignService(
	campaigns ports.CampaignRepository,
	recipients ports.RecipientRepository,
	gateway ports.MessagingGateway,
	lock ports.CampaignLock,
	dedup ports.CallbackDeduper,
	events ports.EventPublisher,
	transactor ports.DBTransactor,
	opts CampaignOptions,
	log zerolog.Logger,
) *CampaignServiceImpl {
	if opts.CancelConcurrency < 1 {
		opts.CancelConcurrency = 1
	}
	if opts.CancelBatchSize < 1 {
		opts.CancelBatchSize = 500
	}
	return &CampaignServiceImpl{
		campaigns:  campaigns,
		recipients: recipients,
		gateway:    gateway,
		lock:       lock,
		dedup:      dedup,
		events:     events,
		transactor: transactor,
		opts:       opts,
		log:        logger.Component(log, "campaign"),
	}
}

// GetCampaign returns a campaign owned by tenantID.
func (s *CampaignServiceImpl) GetCampaign(ctx context.Context, tenantID, campaignID uuid.UUID) (*domain.Campaign, error) {
	campaign, err := s.campaigns.GetByID(ctx, tenantID, campaignID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get campaign: %w", err))
	}
	if campaign == nil {
		return nil, apperror.ErrCampaignNotFound()
	}
	return campaign, nil
}

// CancelCampaign asks the provider to cancel every outstanding message of the
// campaign and then moves the campaign to CANCELLED. Individual provider
// rejections never stop the sweep or the final status write.
func (s *CampaignServiceImpl) CancelCampaign(ctx context.Context, tenantID, campaignID uuid.UUID) (*ports.CancelSummary, error) {
	campaign, err := s.GetCampaign(ctx, tenantID, campaignID)
	if err != nil {
		return nil, err
	}
	if !campaign.IsCancellable() {
		return nil, apperror.ErrCampaignNotCancellable()
	}

	log := s.log.With().
		Str("campaign_id", campaignID.String()).
		Str("tenant_id", tenantID.String()).
		Logger()

	token, acquired, err := s.lock.Acquire(ctx, campaignID, s.opts.CancelLockTTL)
	switch {
	case err != nil:
		// Degraded mode: the conditional final update still prevents a double cancel.
		log.Warn().Err(err).Msg("cancel lock unavailable, proceeding without it")
	case !acquired:
		return nil, apperror.ErrCancellationInProgress()
	default:
		defer func() {
			if err := s.lock.Release(context.WithoutCancel(ctx), campaignID, token); err != nil {
				log.Warn().Err(err).Msg("failed to release cancel lock")
			}
		}()
	}

	summary := s.sweep(ctx, campaignID, log)

	// The status write must land even if the caller went away mid-sweep.
	ok, err := s.campaigns.MarkCancelled(context.WithoutCancel(ctx), campaignID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("mark campaign cancelled: %w", err))
	}
	if !ok {
		return nil, apperror.ErrCampaignNotCancellable()
	}

	log.Info().
		Int64("cancelled", summary.CancelledCount).
		Int64("rejected", summary.RejectedCount).
		Str("previous_status", string(campaign.Status)).
		Msg("Campaign cancelled")

	s.publish(ctx, domain.EventCampaignCancelled, domain.NewEvent(
		domain.EventCampaignCancelled, tenantID, domain.CampaignCancelled{
			CampaignID:     campaignID,
			PreviousStatus: string(campaign.Status),
			CancelledCount: summary.CancelledCount,
			RejectedCount:  summary.RejectedCount,
		},
	))

	return summary, nil
}

// sweep pages through cancellable recipients in insertion order and fans each
// page out to a bounded pool of gateway calls.
func (s *CampaignServiceImpl) sweep(ctx context.Context, campaignID uuid.UUID, log zerolog.Logger) *ports.CancelSummary {
	var cancelled, rejected atomic.Int64
	cursor := ports.RecipientCursor{}

	for {
		if err := ctx.Err(); err != nil {
			log.Warn().Err(err).Msg("cancel sweep interrupted, finalizing campaign")
			break
		}

		page, err := s.recipients.ListCancellable(ctx, campaignID, cursor, s.opts.CancelBatchSize)
		if err != nil {
			log.Error().Err(err).Msg("listing recipients failed, finalizing campaign")
			break
		}
		if len(page) == 0 {
			break
		}

		var g errgroup.Group
		g.SetLimit(s.opts.CancelConcurrency)
		for _, r := range page {
			if !r.IsCancellable() {
				continue
			}
			sid := *r.ProviderMessageID
			g.Go(func() error {
				res := s.gateway.Cancel(ctx, sid)
				if res.IsCancelled() {
					cancelled.Add(1)
					return nil
				}
				// Expected race: the message was usually delivered first.
				rejected.Add(1)
				log.Debug().
					Str("message_sid", sid).
					Int("provider_code", res.ProviderCode).
					Str("reason", res.Reason).
					Msg("Cancellation rejected, skipping")
				return nil
			})
		}
		_ = g.Wait()

		if len(page) < s.opts.CancelBatchSize {
			break
		}
		cursor = cursor.After(page[len(page)-1])
	}

	return &ports.CancelSummary{
		CancelledCount: cancelled.Load(),
		RejectedCount:  rejected.Load(),
	}
}

// ReconcileDeliveryStatus applies a provider delivery callback to the
// recipient it refers to. Unknown messages and non-terminal statuses are
// acknowledged without changes.
func (s *CampaignServiceImpl) ReconcileDeliveryStatus(ctx context.Context, cb ports.DeliveryCallback) error {
	if cb.MessageSid == "" || cb.MessageStatus == "" {
		return apperror.ErrMissingCallbackFields()
	}

	log := s.log.With().
		Str("message_sid", cb.MessageSid).
		Str("provider_status", cb.MessageStatus).
		Logger()

	update, ok := domain.NormalizeProviderStatus(cb.MessageSid, cb.MessageStatus, cb.ErrorCode)
	if !ok {
		log.Debug().Msg("Ignoring non-terminal provider status")
		return nil
	}

	seen, err := s.dedup.Seen(ctx, update.ProviderMessageID, deliveryState(update))
	switch {
	case err != nil:
		log.Warn().Err(err).Msg("callback dedup check failed, falling through to DB")
	case seen:
		log.Debug().Msg("Duplicate callback, skipping")
		return nil
	}

	return s.applyDeliveryUpdate(ctx, update, log)
}

// applyDeliveryUpdate locks the recipient row and writes the new status. The
// campaign counter is only incremented when the stored status really changes.
// The dedup record is written while the row lock is held, so records follow
// the order in which updates are applied.
func (s *CampaignServiceImpl) applyDeliveryUpdate(ctx context.Context, update domain.DeliveryUpdate, log zerolog.Logger) error {
	recipient, err := s.recipients.GetByProviderMessageID(ctx, update.ProviderMessageID)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("lookup recipient: %w", err))
	}
	if recipient == nil {
		log.Debug().Msg("Callback for untracked message")
		return nil
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	locked, err := s.recipients.GetByIDForUpdate(ctx, dbTx, recipient.ID)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("lock recipient: %w", err))
	}
	if locked == nil {
		return nil
	}

	statusChanged := locked.Status != update.Status
	if !statusChanged && sameMessage(locked.ErrorMessage, update.ErrorMessage) {
		log.Debug().Msg("Recipient already up to date")
		s.recordDelivery(ctx, update, log)
		return nil
	}

	if err := s.recipients.UpdateStatus(ctx, dbTx, locked.ID, update.Status, update.ErrorMessage); err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if statusChanged {
		if counter, ok := domain.CounterFor(update.Status); ok {
			if err := s.campaigns.IncrementCounter(ctx, dbTx, locked.CampaignID, counter); err != nil {
				return apperror.ErrDatabaseError(err)
			}
		}
	}

	recorded := s.recordDelivery(ctx, update, log)
	if err := dbTx.Commit(ctx); err != nil {
		if recorded {
			s.forgetDelivery(ctx, update, log)
		}
		return apperror.ErrDatabaseError(fmt.Errorf("commit: %w", err))
	}

	if statusChanged {
		log.Info().
			Str("recipient_id", locked.ID.String()).
			Str("campaign_id", locked.CampaignID.String()).
			Str("from", string(locked.Status)).
			Str("to", string(update.Status)).
			Msg("Recipient status reconciled")

		s.publish(ctx, domain.EventRecipientStatusChanged, domain.NewEvent(
			domain.EventRecipientStatusChanged, uuid.Nil, domain.RecipientStatusChanged{
				CampaignID:        locked.CampaignID,
				RecipientID:       locked.ID,
				ProviderMessageID: update.ProviderMessageID,
				PreviousStatus:    locked.Status,
				Status:            update.Status,
				ErrorMessage:      update.ErrorMessage,
			},
		))
	}
	return nil
}

// publish is best-effort; a broker outage never fails the operation.
func (s *CampaignServiceImpl) publish(ctx context.Context, key string, event domain.Event) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(context.WithoutCancel(ctx), key, event); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("failed to publish event")
	}
}

// recordDelivery notes update as the last applied state of its message.
// Failures only cost the fast path.
func (s *CampaignServiceImpl) recordDelivery(ctx context.Context, update domain.DeliveryUpdate, log zerolog.Logger) bool {
	err := s.dedup.Record(context.WithoutCancel(ctx), update.ProviderMessageID, deliveryState(update), s.opts.DedupTTL)
	if err != nil {
		log.Warn().Err(err).Msg("failed to record callback state")
		return false
	}
	return true
}

// forgetDelivery drops a record whose update did not commit so the
// provider's retry is processed instead of swallowed.
func (s *CampaignServiceImpl) forgetDelivery(ctx context.Context, update domain.DeliveryUpdate, log zerolog.Logger) {
	if err := s.dedup.Forget(context.WithoutCancel(ctx), update.ProviderMessageID, deliveryState(update)); err != nil {
		log.Warn().Err(err).Msg("failed to forget callback state")
	}
}

// deliveryState identifies the outcome a callback asks for.
func deliveryState(u domain.DeliveryUpdate) string {
	msg := ""
	if u.ErrorMessage != nil {
		msg = *u.ErrorMessage
	}
	return string(u.Status) + ":" + msg
}

func sameMessage(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
