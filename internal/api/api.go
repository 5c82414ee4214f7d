package api

import (
	"net/http"
	attributionHandler "rewards-server/internal/attribution/handler"
	authHandler "rewards-server/internal/auth/handler"
	campaignHandler "rewards-server/internal/campaign/handler"
	campaignProcessor "rewards-server/internal/campaign/processor"
	"rewards-server/internal/ratelimit"
	referralHandler "rewards-server/internal/referral/handler"
	rewardsHandler "rewards-server/internal/rewards/handler"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type API struct {
	router             *gin.RouterGroup
	authHandler        authHandler.Handler
	attributionHandler attributionHandler.Handler
	referralHandler    referralHandler.Handler
	campaignHandler    campaignHandler.Handler
	rewardsHandler     rewardsHandler.Handler
	rateLimiter        *ratelimit.Service
}

func New(
	router *gin.RouterGroup,
	authHandler authHandler.Handler,
	attributionHandler attributionHandler.Handler,
	referralHandler referralHandler.Handler,
	campaignHandler campaignHandler.Handler,
	rewardsHandler rewardsHandler.Handler,
	rateLimiter *ratelimit.Service,
) API {
	return API{
		router:             router,
		authHandler:        authHandler,
		attributionHandler: attributionHandler,
		referralHandler:    referralHandler,
		campaignHandler:    campaignHandler,
		rewardsHandler:     rewardsHandler,
		rateLimiter:        rateLimiter,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	a.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	merchantMiddleware := []gin.HandlerFunc{a.authHandler.HandleJWTMiddleware}
	if a.rateLimiter != nil {
		merchantMiddleware = append(merchantMiddleware, a.rateLimiter.Middleware())
	}

	merchantGroup := a.router.Group("/api/merchants/:merchant_id", merchantMiddleware...)
	{
		merchantGroup.POST("/touchpoints", a.attributionHandler.HandleRecordTouchpoint)
		merchantGroup.GET("/attribution/:identity_group_id", a.attributionHandler.HandleGetAttribution)

		merchantGroup.POST("/referrals", a.referralHandler.HandleRegisterReferral)
		merchantGroup.GET("/referrals/:identity_group_id", a.referralHandler.HandleGetReferralGraph)

		merchantGroup.POST("/purchases", a.rewardsHandler.HandleProcessPurchase)
		merchantGroup.POST("/purchases/:interaction_id/refund", a.rewardsHandler.HandleRefundPurchase)
		merchantGroup.POST("/interactions", a.rewardsHandler.HandleRecordInteraction)
		merchantGroup.GET("/interactions/:interaction_id/rewards", a.rewardsHandler.HandleListInteractionRewards)

		rulesGroup := merchantGroup.Group("/campaign-rules")
		rulesGroup.GET("", a.campaignHandler.HandleListCampaignRules)
		rulesGroup.POST("", a.campaignHandler.HandleCreateCampaignRule)
		rulesGroup.GET("/:rule_id", a.campaignHandler.HandleGetCampaignRule)
		rulesGroup.PATCH("/:rule_id", a.campaignHandler.HandleUpdateCampaignRule)
		rulesGroup.DELETE("/:rule_id", a.campaignHandler.HandleDeleteCampaignRule)
		rulesGroup.POST("/:rule_id/publish", a.campaignHandler.HandleTransition(campaignProcessor.ActionPublish))
		rulesGroup.POST("/:rule_id/pause", a.campaignHandler.HandleTransition(campaignProcessor.ActionPause))
		rulesGroup.POST("/:rule_id/resume", a.campaignHandler.HandleTransition(campaignProcessor.ActionResume))
		rulesGroup.POST("/:rule_id/archive", a.campaignHandler.HandleTransition(campaignProcessor.ActionArchive))
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
