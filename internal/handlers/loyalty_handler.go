package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SparkleCleanOps/cleaning-ops/internal/httperr"
	"github.com/SparkleCleanOps/cleaning-ops/internal/httpresp"
	"github.com/SparkleCleanOps/cleaning-ops/internal/middleware"
	ucBilling "github.com/SparkleCleanOps/cleaning-ops/internal/usecase/billing"
)

// ======================================================
// HANDLER
// ======================================================

type LoyaltyHandler struct {
	overviewUC *ucBilling.GetLoyaltyOverview
	requestUC  *ucBilling.RequestRedemption
	fulfillUC  *ucBilling.FulfillRedemption
	cancelUC   *ucBilling.CancelRedemption
}

func NewLoyaltyHandler(
	overviewUC *ucBilling.GetLoyaltyOverview,
	requestUC *ucBilling.RequestRedemption,
	fulfillUC *ucBilling.FulfillRedemption,
	cancelUC *ucBilling.CancelRedemption,
) *LoyaltyHandler {
	return &LoyaltyHandler{
		overviewUC: overviewUC,
		requestUC:  requestUC,
		fulfillUC:  fulfillUC,
		cancelUC:   cancelUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type RequestRedemptionRequest struct {
	ClientID   uint   `json:"client_id" binding:"required"`
	PrizeName  string `json:"prize_name" binding:"required"`
	PointsCost int    `json:"points_cost" binding:"required"`
}

func redemptionID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid redemption id.")
		return 0, false
	}
	return uint(id), true
}

// ======================================================
// HANDLERS
// ======================================================

func (h *LoyaltyHandler) Overview(c *gin.Context) {
	clientID, err := strconv.ParseUint(c.Param("clientId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_client_id", "Invalid client id.")
		return
	}

	overview, err := h.overviewUC.Execute(c.Request.Context(), uint(clientID))
	if err != nil {
		httperr.NotFound(c, "client_not_found", "Client not found.")
		return
	}
	httpresp.OK(c, overview)
}

func (h *LoyaltyHandler) RequestRedemption(c *gin.Context) {
	var req RequestRedemptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	r, err := h.requestUC.Execute(c.Request.Context(), req.ClientID, req.PrizeName, req.PointsCost)
	if err != nil {
		if err == ucBilling.ErrInvalidPointsCost {
			httperr.BadRequest(c, "invalid_points_cost", "Points cost must be positive.")
			return
		}
		writeError(c, err)
		return
	}
	httpresp.Created(c, r)
}

func (h *LoyaltyHandler) FulfillRedemption(c *gin.Context) {
	id, ok := redemptionID(c)
	if !ok {
		return
	}
	operatorID := c.MustGet(middleware.ContextUserID).(uint)

	r, err := h.fulfillUC.Execute(c.Request.Context(), operatorID, id)
	if err != nil {
		if err == ucBilling.ErrRedemptionNotFound {
			httperr.NotFound(c, "redemption_not_found", "Redemption request not found.")
			return
		}
		writeError(c, err)
		return
	}
	httpresp.OK(c, r)
}

func (h *LoyaltyHandler) CancelRedemption(c *gin.Context) {
	id, ok := redemptionID(c)
	if !ok {
		return
	}
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	r, err := h.cancelUC.Execute(c.Request.Context(), actorID, id)
	if err != nil {
		if err == ucBilling.ErrRedemptionNotFound {
			httperr.NotFound(c, "redemption_not_found", "Redemption request not found.")
			return
		}
		writeError(c, err)
		return
	}
	httpresp.OK(c, r)
}
