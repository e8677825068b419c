package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SparkleCleanOps/cleaning-ops/internal/payments"
	ucBilling "github.com/SparkleCleanOps/cleaning-ops/internal/usecase/billing"
)

// PaymentWebhookHandler receives provider notifications and settles the
// matching invoice. The provider retries on non-2xx, and MarkInvoicePaid
// is idempotent, so duplicated notifications are harmless.
type PaymentWebhookHandler struct {
	gateway    *payments.MercadoPagoGateway
	markPaidUC *ucBilling.MarkInvoicePaid
}

func NewPaymentWebhookHandler(
	gateway *payments.MercadoPagoGateway,
	markPaidUC *ucBilling.MarkInvoicePaid,
) *PaymentWebhookHandler {
	return &PaymentWebhookHandler{gateway: gateway, markPaidUC: markPaidUC}
}

type webhookNotification struct {
	Type string `json:"type"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

func (h *PaymentWebhookHandler) Notify(c *gin.Context) {
	var n webhookNotification
	if err := c.ShouldBindJSON(&n); err != nil {
		// Also accept the query-parameter form of the notification.
		n.Type = c.Query("type")
		n.Data.ID = c.Query("data.id")
	}

	if n.Type != "payment" || n.Data.ID == "" {
		c.Status(http.StatusOK)
		return
	}

	invoiceID, approved, err := h.gateway.LookupPayment(c.Request.Context(), n.Data.ID)
	if err != nil {
		log.Printf("[payment][webhook] lookup failed provider_payment_id=%s err=%v", n.Data.ID, err)
		c.Status(http.StatusInternalServerError)
		return
	}
	if !approved {
		c.Status(http.StatusOK)
		return
	}

	if _, err := h.markPaidUC.Execute(c.Request.Context(), 0, invoiceID); err != nil {
		log.Printf("[payment][webhook] settle failed invoice_id=%d err=%v", invoiceID, err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusOK)
}
