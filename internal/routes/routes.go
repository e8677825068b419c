package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SparkleCleanOps/cleaning-ops/internal/audit"
	"github.com/SparkleCleanOps/cleaning-ops/internal/cache"
	"github.com/SparkleCleanOps/cleaning-ops/internal/config"
	"github.com/SparkleCleanOps/cleaning-ops/internal/handlers"
	infraRepo "github.com/SparkleCleanOps/cleaning-ops/internal/infra/repository"
	"github.com/SparkleCleanOps/cleaning-ops/internal/middleware"
	"github.com/SparkleCleanOps/cleaning-ops/internal/payments"
	"github.com/SparkleCleanOps/cleaning-ops/internal/pricing"
	"github.com/SparkleCleanOps/cleaning-ops/internal/storage"
	ucBilling "github.com/SparkleCleanOps/cleaning-ops/internal/usecase/billing"
	ucBooking "github.com/SparkleCleanOps/cleaning-ops/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	billingRepo := infraRepo.NewBillingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	pricingCfg := pricing.DefaultConfig()

	quotes, err := cache.New(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		log.Printf("quote cache disabled: %v", err)
	}

	photos := storage.New(storage.S3Config{
		Bucket:    cfg.S3Bucket,
		Region:    cfg.S3Region,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
	})

	gateway, err := payments.NewMercadoPagoGateway(cfg.MPAccessToken)
	if err != nil {
		log.Printf("payment gateway disabled: %v", err)
	}

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, pricingCfg, auditDispatcher)
	approveBookingUC := ucBooking.NewApproveBooking(bookingRepo, auditDispatcher)
	assignCrewUC := ucBooking.NewAssignCrew(bookingRepo, auditDispatcher)
	startBookingUC := ucBooking.NewStartBooking(bookingRepo, auditDispatcher)
	completeBookingUC := ucBooking.NewCompleteBooking(bookingRepo, auditDispatcher)
	cancelBookingUC := ucBooking.NewCancelBooking(bookingRepo, auditDispatcher)
	listBookingsUC := ucBooking.NewListBookings(bookingRepo)
	deleteBookingUC := ucBooking.NewDeleteBooking(bookingRepo, auditDispatcher)

	// ======================================================
	// USE CASES — BILLING
	// ======================================================
	createInvoiceUC := ucBilling.NewCreateInvoice(billingRepo, bookingRepo, auditDispatcher)
	issueInvoiceUC := ucBilling.NewIssueInvoice(billingRepo, auditDispatcher)
	markInvoicePaidUC := ucBilling.NewMarkInvoicePaid(billingRepo, cfg.PointsPerCrown, auditDispatcher)
	listInvoicesUC := ucBilling.NewListInvoices(billingRepo)
	flagOverdueUC := ucBilling.NewFlagOverdue(billingRepo)

	loyaltyOverviewUC := ucBilling.NewGetLoyaltyOverview(billingRepo)
	requestRedemptionUC := ucBilling.NewRequestRedemption(billingRepo, auditDispatcher)
	fulfillRedemptionUC := ucBilling.NewFulfillRedemption(billingRepo, auditDispatcher)
	cancelRedemptionUC := ucBilling.NewCancelRedemption(billingRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	clientHandler := handlers.NewClientHandler(db)

	publicHandler := handlers.NewPublicHandler(db, createBookingUC, pricingCfg, quotes)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		approveBookingUC,
		assignCrewUC,
		startBookingUC,
		completeBookingUC,
		cancelBookingUC,
		listBookingsUC,
		deleteBookingUC,
	)

	checklistHandler := handlers.NewChecklistHandler(db)
	photoHandler := handlers.NewPhotoHandler(db, photos)

	invoiceHandler := handlers.NewInvoiceHandler(
		db,
		createInvoiceUC,
		issueInvoiceUC,
		markInvoicePaidUC,
		listInvoicesUC,
		flagOverdueUC,
		gateway,
	)

	loyaltyHandler := handlers.NewLoyaltyHandler(
		loyaltyOverviewUC,
		requestRedemptionUC,
		fulfillRedemptionUC,
		cancelRedemptionUC,
	)

	webhookHandler := handlers.NewPaymentWebhookHandler(gateway, markInvoicePaidUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC API
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.POST("/quote", publicHandler.Quote)
			publicAPI.POST("/bookings", publicHandler.CreateBooking)
			publicAPI.GET("/bookings/:reference", publicHandler.TrackBooking)

			publicAPI.POST("/payments/webhook", webhookHandler.Notify)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.GET("/clients", clientHandler.List)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/bookings", bookingHandler.ListByDate)
			secured.GET("/bookings/month", bookingHandler.ListByMonth)
			secured.PATCH("/bookings/:id/approve", bookingHandler.Approve)
			secured.PATCH("/bookings/:id/assign", bookingHandler.Assign)
			secured.PATCH("/bookings/:id/start", bookingHandler.Start)
			secured.PATCH("/bookings/:id/complete", bookingHandler.Complete)
			secured.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)

			secured.GET("/bookings/:id/checklist", checklistHandler.ListRooms)
			secured.POST("/bookings/:id/checklist", checklistHandler.AddRoom)
			secured.PATCH("/checklist/:roomId/done", checklistHandler.MarkRoomDone)

			secured.GET("/bookings/:id/photos", photoHandler.List)
			secured.POST("/bookings/:id/photos", photoHandler.Upload)

			// ------------------------------
			// BILLING
			// ------------------------------
			secured.POST("/invoices", invoiceHandler.Create)
			secured.GET("/invoices", invoiceHandler.ListByClient)
			secured.PATCH("/invoices/:id/issue", invoiceHandler.Issue)
			secured.PATCH("/invoices/:id/pay", invoiceHandler.MarkPaid)
			secured.POST("/invoices/:id/payment", invoiceHandler.CreatePayment)

			secured.GET("/loyalty/:clientId", loyaltyHandler.Overview)
			secured.POST("/redemptions", loyaltyHandler.RequestRedemption)
			secured.PATCH("/redemptions/:id/fulfill", loyaltyHandler.FulfillRedemption)
			secured.PATCH("/redemptions/:id/cancel", loyaltyHandler.CancelRedemption)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole("admin"))
			{
				admin.DELETE("/bookings/:id", bookingHandler.Delete)
				admin.POST("/invoices/flag-overdue", invoiceHandler.FlagOverdue)
				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
