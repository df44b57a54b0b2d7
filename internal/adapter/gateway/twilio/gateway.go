// Package twilio adapts the Twilio REST API to the messaging ports.
package twilio

import (
	"context"
	"errors"
	"net/http"

	"restaurant-bot-dashboard/config"
	"restaurant-bot-dashboard/internal/core/domain"
	"restaurant-bot-dashboard/pkg/logger"

	"github.com/rs/zerolog"
	twilioapi "github.com/twilio/twilio-go"
	"github.com/twilio/twilio-go/client"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// statusCanceled is the provider-side status that cancels a queued or
// scheduled message.
const statusCanceled = "canceled"

// messageUpdater is the slice of the Twilio API used by the gateway.
type messageUpdater interface {
	UpdateMessage(sid string, params *openapi.UpdateMessageParams) (*openapi.ApiV2010Message, error)
}

// Gateway implements ports.MessagingGateway against Twilio.
type Gateway struct {
	api messageUpdater
	log zerolog.Logger
}

// NewGateway creates a Twilio gateway with a bounded HTTP client.
func NewGateway(cfg config.TwilioConfig, log zerolog.Logger) *Gateway {
	httpClient := &client.Client{
		Credentials: client.NewCredentials(cfg.AccountSID, cfg.AuthToken),
		HTTPClient:  &http.Client{Timeout: cfg.Timeout},
	}
	httpClient.SetAccountSid(cfg.AccountSID)

	rest := twilioapi.NewRestClientWithParams(twilioapi.ClientParams{Client: httpClient})
	return newGateway(rest.Api, log)
}

func newGateway(api messageUpdater, log zerolog.Logger) *Gateway {
	return &Gateway{api: api, log: logger.Component(log, "twilio")}
}

// Cancel asks Twilio to cancel a message. Every failure, including transport
// errors, is reported as a rejection so the sweep can move on.
func (g *Gateway) Cancel(ctx context.Context, providerMessageID string) domain.CancelResult {
	if err := ctx.Err(); err != nil {
		return domain.Rejected(0, err.Error())
	}

	params := &openapi.UpdateMessageParams{}
	params.SetStatus(statusCanceled)

	if _, err := g.api.UpdateMessage(providerMessageID, params); err != nil {
		var restErr *client.TwilioRestError
		if errors.As(err, &restErr) {
			g.log.Debug().
				Str("message_sid", providerMessageID).
				Int("code", restErr.Code).
				Str("reason", restErr.Message).
				Msg("Provider rejected cancellation")
			return domain.Rejected(restErr.Code, restErr.Message)
		}
		g.log.Warn().Err(err).Str("message_sid", providerMessageID).Msg("Cancellation request failed")
		return domain.Rejected(0, err.Error())
	}
	return domain.Cancelled()
}
