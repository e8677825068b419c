package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SparkleCleanOps/cleaning-ops/internal/httperr"
	"github.com/SparkleCleanOps/cleaning-ops/internal/httpresp"
	"github.com/SparkleCleanOps/cleaning-ops/internal/middleware"
	"github.com/SparkleCleanOps/cleaning-ops/internal/models"
	"github.com/SparkleCleanOps/cleaning-ops/internal/pricing"
	"github.com/SparkleCleanOps/cleaning-ops/internal/timezone"
	ucBooking "github.com/SparkleCleanOps/cleaning-ops/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC   *ucBooking.CreateBooking
	approveUC  *ucBooking.ApproveBooking
	assignUC   *ucBooking.AssignCrew
	startUC    *ucBooking.StartBooking
	completeUC *ucBooking.CompleteBooking
	cancelUC   *ucBooking.CancelBooking
	listUC     *ucBooking.ListBookings
	deleteUC   *ucBooking.DeleteBooking
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	approveUC *ucBooking.ApproveBooking,
	assignUC *ucBooking.AssignCrew,
	startUC *ucBooking.StartBooking,
	completeUC *ucBooking.CompleteBooking,
	cancelUC *ucBooking.CancelBooking,
	listUC *ucBooking.ListBookings,
	deleteUC *ucBooking.DeleteBooking,
) *BookingHandler {
	return &BookingHandler{
		createUC:   createUC,
		approveUC:  approveUC,
		assignUC:   assignUC,
		startUC:    startUC,
		completeUC: completeUC,
		cancelUC:   cancelUC,
		listUC:     listUC,
		deleteUC:   deleteUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`

	Category   string                   `json:"category" binding:"required"`
	Home       *pricing.HomeInput       `json:"home"`
	Office     *pricing.OfficeInput     `json:"office"`
	Window     *pricing.WindowInput     `json:"window"`
	Upholstery *pricing.UpholsteryInput `json:"upholstery"`

	ScheduledAt *time.Time `json:"scheduled_at"`
	Approve     bool       `json:"approve"`

	Crew          []uint `json:"crew"`
	LeadCleanerID *uint  `json:"lead_cleaner_id"`

	Price *float64 `json:"price"`
	Notes string   `json:"notes"`
}

type ApproveBookingRequest struct {
	ScheduledAt *time.Time `json:"scheduled_at"`
}

type AssignCrewRequest struct {
	Crew          []uint `json:"crew" binding:"required"`
	LeadCleanerID *uint  `json:"lead_cleaner_id"`
}

// ======================================================
// HELPERS
// ======================================================

func bookingID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return 0, false
	}
	return uint(id), true
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateInput{
		ClientName:    req.ClientName,
		ClientPhone:   req.ClientPhone,
		ClientEmail:   req.ClientEmail,
		Category:      pricing.Category(req.Category),
		Home:          req.Home,
		Office:        req.Office,
		Window:        req.Window,
		Upholstery:    req.Upholstery,
		ScheduledAt:   req.ScheduledAt,
		Approve:       req.Approve,
		Crew:          req.Crew,
		LeadCleanerID: req.LeadCleanerID,
		Price:         req.Price,
		Notes:         req.Notes,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, b)
}

// ======================================================
// LIFECYCLE
// ======================================================

func (h *BookingHandler) Approve(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	operatorID := c.MustGet(middleware.ContextUserID).(uint)

	var req ApproveBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, err := h.approveUC.Execute(c.Request.Context(), operatorID, id, req.ScheduledAt)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, b)
}

func (h *BookingHandler) Assign(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	operatorID := c.MustGet(middleware.ContextUserID).(uint)

	var req AssignCrewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, err := h.assignUC.Execute(c.Request.Context(), operatorID, id, req.Crew, req.LeadCleanerID)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, b)
}

func (h *BookingHandler) Start(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	b, err := h.startUC.Execute(c.Request.Context(), actorID, id)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, b)
}

func (h *BookingHandler) Complete(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	b, err := h.completeUC.Execute(c.Request.Context(), actorID, id)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, b)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	operatorID := c.MustGet(middleware.ContextUserID).(uint)

	b, err := h.cancelUC.Execute(c.Request.Context(), operatorID, id)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, b)
}

func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	operatorID := c.MustGet(middleware.ContextUserID).(uint)

	if err := h.deleteUC.Execute(c.Request.Context(), operatorID, id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(204)
}

// ======================================================
// LISTS
// ======================================================

// ListByDate returns the caller's schedule for one day; admins may pass
// all=true for the whole team's.
func (h *BookingHandler) ListByDate(c *gin.Context) {
	memberID := c.MustGet(middleware.ContextUserID).(uint)
	role, _ := c.Get(middleware.ContextUserRole)

	if c.Query("all") == "true" && role == "admin" {
		memberID = 0
	}

	loc := timezone.Location(timezone.DefaultTimezone)
	date := timezone.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Expected date as YYYY-MM-DD.")
			return
		}
		date = parsed
	}

	bookings, err := h.listUC.ByDate(c.Request.Context(), memberID, date)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List[models.Booking](c, bookings)
}

func (h *BookingHandler) ListByMonth(c *gin.Context) {
	memberID := c.MustGet(middleware.ContextUserID).(uint)
	role, _ := c.Get(middleware.ContextUserRole)

	if c.Query("all") == "true" && role == "admin" {
		memberID = 0
	}

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		httperr.BadRequest(c, "invalid_year", "Expected year as a number.")
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Expected month 1-12.")
		return
	}

	loc := timezone.Location(timezone.DefaultTimezone)
	bookings, err := h.listUC.ByMonth(c.Request.Context(), memberID, year, time.Month(month), loc)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List[models.Booking](c, bookings)
}
