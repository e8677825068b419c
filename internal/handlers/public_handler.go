package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SparkleCleanOps/cleaning-ops/internal/cache"
	"github.com/SparkleCleanOps/cleaning-ops/internal/httperr"
	"github.com/SparkleCleanOps/cleaning-ops/internal/httpresp"
	"github.com/SparkleCleanOps/cleaning-ops/internal/models"
	"github.com/SparkleCleanOps/cleaning-ops/internal/pricing"
	"github.com/SparkleCleanOps/cleaning-ops/internal/timezone"
	ucBooking "github.com/SparkleCleanOps/cleaning-ops/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

// PublicHandler serves the unauthenticated surface: price quotes and
// web booking intake.
type PublicHandler struct {
	db         *gorm.DB
	createUC   *ucBooking.CreateBooking
	pricingCfg pricing.Config
	quotes     *cache.QuoteCache
}

func NewPublicHandler(
	db *gorm.DB,
	createUC *ucBooking.CreateBooking,
	pricingCfg pricing.Config,
	quotes *cache.QuoteCache,
) *PublicHandler {
	return &PublicHandler{
		db:         db,
		createUC:   createUC,
		pricingCfg: pricingCfg,
		quotes:     quotes,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type QuoteRequest struct {
	Category   string                   `json:"category" binding:"required"`
	Home       *pricing.HomeInput       `json:"home"`
	Office     *pricing.OfficeInput     `json:"office"`
	Window     *pricing.WindowInput     `json:"window"`
	Upholstery *pricing.UpholsteryInput `json:"upholstery"`
}

type QuoteResponse struct {
	Category string  `json:"category"`
	PriceMin float64 `json:"price_min"`
	PriceMax float64 `json:"price_max"`

	// Only present for window quotes.
	WindowCount *float64 `json:"window_count,omitempty"`
}

// ======================================================
// QUOTE
// ======================================================

func (h *PublicHandler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	resp := QuoteResponse{Category: req.Category}

	var (
		attributes any
		q          pricing.Quote
		err        error
	)

	switch pricing.Category(req.Category) {
	case pricing.CategoryHome:
		if req.Home == nil {
			httperr.BadRequest(c, httperr.CodeInvalidAttribute, "Missing home attributes.")
			return
		}
		attributes = req.Home
	case pricing.CategoryOffice:
		if req.Office == nil {
			httperr.BadRequest(c, httperr.CodeInvalidAttribute, "Missing office attributes.")
			return
		}
		attributes = req.Office
	case pricing.CategoryWindow:
		if req.Window == nil {
			httperr.BadRequest(c, httperr.CodeInvalidAttribute, "Missing window attributes.")
			return
		}
		attributes = req.Window
	case pricing.CategoryUpholstery:
		if req.Upholstery == nil {
			httperr.BadRequest(c, httperr.CodeInvalidAttribute, "Missing upholstery attributes.")
			return
		}
		attributes = req.Upholstery
	default:
		httperr.BadRequest(c, httperr.CodeInvalidAttribute, "Unknown service category.")
		return
	}

	ctx := c.Request.Context()

	key, keyErr := cache.Key(h.pricingCfg.Version, pricing.Category(req.Category), attributes)
	if keyErr == nil {
		if cached, ok := h.quotes.Get(ctx, key); ok {
			resp.PriceMin = cached.Min
			resp.PriceMax = cached.Max
			if req.Window != nil {
				count := req.Window.AreaM2
				resp.WindowCount = &count
			}
			httpresp.OK(c, resp)
			return
		}
	}

	switch pricing.Category(req.Category) {
	case pricing.CategoryHome:
		q, err = pricing.CalculateHome(h.pricingCfg, *req.Home)
	case pricing.CategoryOffice:
		q, err = pricing.CalculateOffice(h.pricingCfg, *req.Office)
	case pricing.CategoryWindow:
		var res pricing.WindowResult
		res, err = pricing.CalculateWindow(h.pricingCfg, *req.Window)
		if err == nil {
			q = res.Quote
			resp.WindowCount = &res.WindowCount
		}
	case pricing.CategoryUpholstery:
		q, err = pricing.CalculateUpholstery(h.pricingCfg, *req.Upholstery)
	}
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidAttribute, err.Error())
		return
	}

	if keyErr == nil {
		h.quotes.Set(ctx, key, q)
	}

	resp.PriceMin = q.Min
	resp.PriceMax = q.Max
	httpresp.OK(c, resp)
}

// ======================================================
// WEB INTAKE
// ======================================================

// CreateBooking takes a booking from the public website. It always lands
// pending; operators approve and schedule it later.
func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateInput{
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ClientEmail: req.ClientEmail,
		Category:    pricing.Category(req.Category),
		Home:        req.Home,
		Office:      req.Office,
		Window:      req.Window,
		Upholstery:  req.Upholstery,
		Notes:       req.Notes,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	details, _ := models.DecodeBookingDetails(b.Details)

	httpresp.Created(c, gin.H{
		"reference": b.Reference,
		"status":    b.Status,
		"quote": gin.H{
			"price_min": details.QuoteMin,
			"price_max": details.QuoteMax,
		},
	})
}

// ======================================================
// TRACKING
// ======================================================

// TrackBooking lets a client follow their booking by reference. The first
// view stamps ClientViewedAt.
func (h *PublicHandler) TrackBooking(c *gin.Context) {
	ref := c.Param("reference")

	var b models.Booking
	if err := h.db.Where("reference = ?", ref).First(&b).Error; err != nil {
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
		return
	}

	if b.ClientViewedAt == nil {
		now := timezone.Now()
		h.db.Model(&b).Update("client_viewed_at", now)
		b.ClientViewedAt = &now
	}

	details, _ := models.DecodeBookingDetails(b.Details)

	httpresp.OK(c, gin.H{
		"reference":    b.Reference,
		"status":       b.Status,
		"scheduled_at": b.ScheduledAt,
		"category":     details.Category,
		"quote": gin.H{
			"price_min": details.QuoteMin,
			"price_max": details.QuoteMax,
		},
	})
}
