package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"restaurant-bot-dashboard/internal/core/domain"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	published []amqp.Publishing
	keys      []string
	exchanges []string
	err       error
	closed    bool
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.exchanges = append(f.exchanges, exchange)
	f.keys = append(f.keys, key)
	f.published = append(f.published, msg)
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func newTestPublisher(ch *fakeChannel, openErr error, closed bool) *Publisher {
	return &Publisher{
		exchange: "restaurant.campaigns",
		openChannel: func() (channel, error) {
			if openErr != nil {
				return nil, openErr
			}
			return ch, nil
		},
		isClosed:  func() bool { return closed },
		closeConn: func() error { return nil },
		log:       zerolog.Nop(),
	}
}

func TestPublisher_Publish(t *testing.T) {
	ch := &fakeChannel{}
	p := newTestPublisher(ch, nil, false)
	campaignID := uuid.New()
	ev := domain.NewEvent(domain.EventCampaignCancelled, uuid.New(), domain.CampaignCancelled{
		CampaignID:     campaignID,
		PreviousStatus: "SENDING",
		CancelledCount: 2,
	})

	err := p.Publish(context.Background(), domain.EventCampaignCancelled, ev)
	require.NoError(t, err)

	require.Len(t, ch.published, 1)
	assert.Equal(t, "restaurant.campaigns", ch.exchanges[0])
	assert.Equal(t, "campaign.cancelled", ch.keys[0])
	assert.True(t, ch.closed, "channel is closed after publishing")

	msg := ch.published[0]
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, ev.Meta.ID, msg.MessageId)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(msg.Body, &decoded))
	data := decoded["data"].(map[string]any)
	assert.Equal(t, campaignID.String(), data["campaign_id"])
	assert.Equal(t, float64(2), data["cancelled_count"])
}

func TestPublisher_Publish_ChannelError(t *testing.T) {
	p := newTestPublisher(nil, errors.New("channel/connection is not open"), false)

	err := p.Publish(context.Background(), "campaign.cancelled", domain.NewEvent("campaign.cancelled", uuid.Nil, nil))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "opening rabbitmq channel")
}

func TestPublisher_Publish_BrokerError(t *testing.T) {
	ch := &fakeChannel{err: errors.New("NOT_FOUND - no exchange")}
	p := newTestPublisher(ch, nil, false)

	err := p.Publish(context.Background(), "recipient.status_changed", domain.NewEvent("recipient.status_changed", uuid.Nil, nil))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "publish recipient.status_changed")
	assert.True(t, ch.closed)
}

func TestPublisher_Ping(t *testing.T) {
	assert.NoError(t, newTestPublisher(nil, nil, false).Ping(context.Background()))
	assert.ErrorIs(t, newTestPublisher(nil, nil, true).Ping(context.Background()), ErrConnectionClosed)
	assert.Equal(t, "rabbitmq", newTestPublisher(nil, nil, false).Name())
}
