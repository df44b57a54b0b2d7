package handler

import (
	"restaurant-bot-dashboard/internal/adapter/http/middleware"
	redisStore "restaurant-bot-dashboard/internal/adapter/storage/redis"
	"restaurant-bot-dashboard/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	CampaignSvc    ports.CampaignService
	TokenSvc       ports.TokenService
	SigValidator   ports.SignatureValidator   // nil = provider signatures not checked
	WebhookBaseURL string                     // public scheme+host used to rebuild signed URLs
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	AuditSvc       ports.AuditService         // nil = audit logging disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	rules := middleware.DefaultRateLimitRules()
	noop := func(c *gin.Context) { c.Next() }

	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return noop
		}
		rule, ok := rules[group]
		if !ok {
			return noop
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1")

	// --- Provider callbacks (optional signature check) ---
	webhookHandler := NewWebhookHandler(deps.CampaignSvc)
	sig := noop
	if deps.SigValidator != nil {
		sig = middleware.TwilioSignature(deps.SigValidator, deps.WebhookBaseURL, deps.Logger)
	}
	webhooks := v1.Group("/webhooks")
	{
		webhooks.POST("/twilio/status", sig, webhookHandler.TwilioStatus)
	}

	// --- JWT-authenticated routes (restaurant dashboard) ---
	campaignHandler := NewCampaignHandler(deps.CampaignSvc)
	campaigns := v1.Group("/campaigns", middleware.JWTAuth(deps.TokenSvc, deps.Logger))
	if deps.AuditSvc != nil {
		campaigns.Use(middleware.AuditLog(deps.AuditSvc))
	}
	{
		campaigns.GET("/:id", rl("campaigns_read"), campaignHandler.Get)
		campaigns.POST("/:id/cancel", rl("campaigns_cancel"), campaignHandler.Cancel)
	}

	return r
}
