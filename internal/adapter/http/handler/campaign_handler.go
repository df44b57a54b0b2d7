package handler

import (
	"restaurant-bot-dashboard/internal/adapter/http/dto"
	"restaurant-bot-dashboard/internal/adapter/http/middleware"
	"restaurant-bot-dashboard/internal/core/ports"
	"restaurant-bot-dashboard/pkg/apperror"
	"restaurant-bot-dashboard/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CampaignHandler handles operator campaign endpoints.
type CampaignHandler struct {
	campaignSvc ports.CampaignService
}

// NewCampaignHandler creates a new CampaignHandler.
func NewCampaignHandler(campaignSvc ports.CampaignService) *CampaignHandler {
	return &CampaignHandler{campaignSvc: campaignSvc}
}

// Cancel handles POST /api/v1/campaigns/:id/cancel.
func (h *CampaignHandler) Cancel(c *gin.Context) {
	tenantID, campaignID, ok := campaignParams(c)
	if !ok {
		return
	}

	summary, err := h.campaignSvc.CancelCampaign(c.Request.Context(), tenantID, campaignID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Raw(c, dto.CancelCampaignResponse{
		Success:        true,
		CancelledCount: summary.CancelledCount,
	})
}

// Get handles GET /api/v1/campaigns/:id.
func (h *CampaignHandler) Get(c *gin.Context) {
	tenantID, campaignID, ok := campaignParams(c)
	if !ok {
		return
	}

	campaign, err := h.campaignSvc.GetCampaign(c.Request.Context(), tenantID, campaignID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewCampaignResponse(campaign))
}

// campaignParams extracts the authenticated tenant and the campaign id path
// parameter. A malformed id cannot name an existing campaign and is reported
// as not found.
func campaignParams(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	tid, exists := c.Get(middleware.CtxTenantID)
	tenantID, ok := tid.(uuid.UUID)
	if !exists || !ok || tenantID == uuid.Nil {
		response.Error(c, apperror.ErrUnauthenticated())
		return uuid.Nil, uuid.Nil, false
	}

	campaignID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrCampaignNotFound())
		return uuid.Nil, uuid.Nil, false
	}
	return tenantID, campaignID, true
}
