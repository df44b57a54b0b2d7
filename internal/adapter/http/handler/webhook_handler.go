package handler

import (
	"restaurant-bot-dashboard/internal/adapter/http/dto"
	"restaurant-bot-dashboard/internal/core/ports"
	"restaurant-bot-dashboard/pkg/apperror"
	"restaurant-bot-dashboard/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// WebhookHandler receives delivery status callbacks from the messaging provider.
type WebhookHandler struct {
	campaignSvc ports.CampaignService
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(campaignSvc ports.CampaignService) *WebhookHandler {
	return &WebhookHandler{campaignSvc: campaignSvc}
}

// TwilioStatus handles POST /api/v1/webhooks/twilio/status.
func (h *WebhookHandler) TwilioStatus(c *gin.Context) {
	var form dto.TwilioStatusCallback
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		response.Error(c, apperror.ErrMissingCallbackFields())
		return
	}

	err := h.campaignSvc.ReconcileDeliveryStatus(c.Request.Context(), ports.DeliveryCallback{
		MessageSid:    form.MessageSid,
		MessageStatus: form.MessageStatus,
		ErrorCode:     form.ErrorCode,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Raw(c, dto.WebhookAck{OK: true})
}
