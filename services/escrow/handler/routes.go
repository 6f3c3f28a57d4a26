package handler

import (
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/rekberid/rekber/internal/pkg/middleware"
	"github.com/rekberid/rekber/internal/pkg/models"
	"github.com/rekberid/rekber/services/escrow/handler/http"
	"github.com/rekberid/rekber/services/escrow/handler/nats"
)

// Handler coordinates all protocol handlers for the escrow service
type Handler struct {
	escrowHandler  *http.EscrowHandler
	disputeHandler *http.DisputeHandler
	walletHandler  *http.WalletHandler
	sweepHandler   *http.SweepHandler
	webhookHandler *http.WebhookHandler
	payoutHandler  *nats.PayoutHandler
	redisClient    *redis.Client
	cfg            *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	escrowHandler *http.EscrowHandler,
	disputeHandler *http.DisputeHandler,
	walletHandler *http.WalletHandler,
	sweepHandler *http.SweepHandler,
	webhookHandler *http.WebhookHandler,
	payoutHandler *nats.PayoutHandler,
	redisClient *redis.Client,
	cfg *models.Config,
) *Handler {
	return &Handler{
		escrowHandler:  escrowHandler,
		disputeHandler: disputeHandler,
		walletHandler:  walletHandler,
		sweepHandler:   sweepHandler,
		webhookHandler: webhookHandler,
		payoutHandler:  payoutHandler,
		redisClient:    redisClient,
		cfg:            cfg,
	}
}

// RegisterRoutes registers all HTTP routes and starts the NATS consumers.
// Admin and scheduler endpoints sit behind service API keys; buyer-facing
// endpoints that consume single-use material are rate limited per IP.
func (h *Handler) RegisterRoutes(e *echo.Echo) error {
	api := e.Group("/api/v1")

	adminAuth := middleware.ValidateAPIKey("admin-service")
	schedulerAuth := middleware.ValidateAPIKey("admin-service", "scheduler-service")
	buyerRateLimit := middleware.IPRateLimiter(10, time.Minute, h.redisClient)

	// Payment intake
	payments := api.Group("/payments")
	payments.POST("", h.escrowHandler.RecordPayment, buyerRateLimit)
	payments.GET("/:id", h.escrowHandler.GetTransaction)

	// Escrow lifecycle
	escrowGroup := api.Group("/escrow")
	escrowGroup.POST("/lock", h.escrowHandler.LockFunds)
	escrowGroup.GET("/holds/:id", h.escrowHandler.GetHold)
	escrowGroup.POST("/release", h.escrowHandler.ReleaseFunds, adminAuth)
	escrowGroup.POST("/refund", h.escrowHandler.RefundFunds, adminAuth)
	escrowGroup.POST("/confirm", h.escrowHandler.ConfirmDelivery, buyerRateLimit)
	escrowGroup.POST("/shipping-proof", h.escrowHandler.SubmitShippingProof)

	// Disputes
	disputes := api.Group("/disputes")
	disputes.POST("", h.disputeHandler.CreateDispute, buyerRateLimit)
	disputes.POST("/resolve", h.disputeHandler.ResolveDispute, adminAuth)

	// Auto release sweep, triggered by the external scheduler
	api.GET("/auto-release/sweep", h.sweepHandler.SweepAutoRelease, schedulerAuth)

	// Seller wallet, authenticated by JWT
	jwtAuth := middleware.JWTAuthMiddleware(h.cfg.JWT)
	wallet := api.Group("/wallet", jwtAuth)
	wallet.GET("", h.walletHandler.GetWallet)
	wallet.POST("/withdraw", h.walletHandler.Withdraw)

	// Signed gateway callbacks
	api.POST("/webhooks/payment", h.webhookHandler.HandlePaymentWebhook)

	return h.payoutHandler.InitConsumers()
}

// Shutdown drains the NATS consumers so in-flight payouts finish
func (h *Handler) Shutdown() {
	h.payoutHandler.Drain()
}
