package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SparkleCleanOps/cleaning-ops/internal/httperr"
	"github.com/SparkleCleanOps/cleaning-ops/internal/httpresp"
	"github.com/SparkleCleanOps/cleaning-ops/internal/middleware"
	"github.com/SparkleCleanOps/cleaning-ops/internal/models"
	"github.com/SparkleCleanOps/cleaning-ops/internal/payments"
	ucBilling "github.com/SparkleCleanOps/cleaning-ops/internal/usecase/billing"
)

// ======================================================
// HANDLER
// ======================================================

type InvoiceHandler struct {
	db         *gorm.DB
	createUC   *ucBilling.CreateInvoice
	issueUC    *ucBilling.IssueInvoice
	markPaidUC *ucBilling.MarkInvoicePaid
	listUC     *ucBilling.ListInvoices
	overdueUC  *ucBilling.FlagOverdue
	gateway    *payments.MercadoPagoGateway
}

func NewInvoiceHandler(
	db *gorm.DB,
	createUC *ucBilling.CreateInvoice,
	issueUC *ucBilling.IssueInvoice,
	markPaidUC *ucBilling.MarkInvoicePaid,
	listUC *ucBilling.ListInvoices,
	overdueUC *ucBilling.FlagOverdue,
	gateway *payments.MercadoPagoGateway,
) *InvoiceHandler {
	return &InvoiceHandler{
		db:         db,
		createUC:   createUC,
		issueUC:    issueUC,
		markPaidUC: markPaidUC,
		listUC:     listUC,
		overdueUC:  overdueUC,
		gateway:    gateway,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateInvoiceRequest struct {
	BookingID uint `json:"booking_id" binding:"required"`
}

type CreatePaymentRequest struct {
	PayerEmail string `json:"payer_email" binding:"required,email"`
}

func invoiceID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid invoice id.")
		return 0, false
	}
	return uint(id), true
}

// ======================================================
// LIFECYCLE
// ======================================================

func (h *InvoiceHandler) Create(c *gin.Context) {
	operatorID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	inv, err := h.createUC.Execute(c.Request.Context(), operatorID, req.BookingID)
	if err != nil {
		if err == ucBilling.ErrBookingNotCompleted {
			httperr.Conflict(c, "booking_not_completed", "Only completed bookings can be invoiced.")
			return
		}
		writeError(c, err)
		return
	}
	httpresp.Created(c, inv)
}

func (h *InvoiceHandler) Issue(c *gin.Context) {
	id, ok := invoiceID(c)
	if !ok {
		return
	}
	operatorID := c.MustGet(middleware.ContextUserID).(uint)

	inv, err := h.issueUC.Execute(c.Request.Context(), operatorID, id)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, inv)
}

// MarkPaid records an out-of-band payment (cash, bank transfer).
func (h *InvoiceHandler) MarkPaid(c *gin.Context) {
	id, ok := invoiceID(c)
	if !ok {
		return
	}
	operatorID := c.MustGet(middleware.ContextUserID).(uint)

	res, err := h.markPaidUC.Execute(c.Request.Context(), operatorID, id)
	if err != nil {
		if err == ucBilling.ErrInvoiceNotFound {
			httperr.NotFound(c, "invoice_not_found", "Invoice not found.")
			return
		}
		writeError(c, err)
		return
	}
	httpresp.OK(c, res)
}

func (h *InvoiceHandler) ListByClient(c *gin.Context) {
	clientID, err := strconv.ParseUint(c.Query("client_id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_client_id", "Expected client_id as a number.")
		return
	}

	invoices, err := h.listUC.Execute(c.Request.Context(), uint(clientID))
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List[models.Invoice](c, invoices)
}

func (h *InvoiceHandler) FlagOverdue(c *gin.Context) {
	n, err := h.overdueUC.Execute(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, gin.H{"flagged": n})
}

// ======================================================
// ONLINE PAYMENT
// ======================================================

// CreatePayment registers the invoice with the payment provider; the
// webhook closes the loop once the provider approves it.
func (h *InvoiceHandler) CreatePayment(c *gin.Context) {
	id, ok := invoiceID(c)
	if !ok {
		return
	}

	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var inv models.Invoice
	if err := h.db.First(&inv, id).Error; err != nil {
		httperr.NotFound(c, "invoice_not_found", "Invoice not found.")
		return
	}
	if inv.Status != models.InvoiceStatusIssued && inv.Status != models.InvoiceStatusOverdue {
		httperr.Conflict(c, httperr.CodeIllegalTransition, "Only issued invoices can be paid online.")
		return
	}

	providerID, err := h.gateway.CreatePayment(c.Request.Context(), &inv, req.PayerEmail)
	if err != nil {
		if err == payments.ErrGatewayNotConfigured {
			httperr.Conflict(c, "payments_disabled", "Online payments are not configured.")
			return
		}
		httperr.Internal(c, "payment_failed", err.Error())
		return
	}

	httpresp.Created(c, gin.H{
		"invoice_id":          inv.ID,
		"provider_payment_id": providerID,
	})
}
