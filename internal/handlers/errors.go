package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/SparkleCleanOps/cleaning-ops/internal/httperr"
)

// writeError maps usecase errors onto the HTTP envelope. Workflow
// rejections keep their code; anything else is a 500.
func writeError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "internal_error", err.Error())
		return
	}

	switch code {
	case httperr.CodeNotLead:
		httperr.Forbidden(c, code, "Only the lead cleaner may do this.")
	case httperr.CodeChecklistIncomplete:
		httperr.Conflict(c, code, "The room checklist is not finished.")
	case httperr.CodeIllegalTransition:
		httperr.Conflict(c, code, "The record is not in a state that allows this.")
	case httperr.CodeInsufficientPoints:
		httperr.Conflict(c, code, "Not enough loyalty points.")
	case httperr.CodeInvoicePaid:
		httperr.Conflict(c, code, "A paid invoice references this booking.")
	case "booking_not_found":
		httperr.NotFound(c, code, "Booking not found.")
	default:
		httperr.BadRequest(c, code, "The request was rejected.")
	}
}
