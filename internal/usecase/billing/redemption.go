package billing

import (
	"context"

	"github.com/SparkleCleanOps/cleaning-ops/internal/audit"
	domain "github.com/SparkleCleanOps/cleaning-ops/internal/domain/billing"
	"github.com/SparkleCleanOps/cleaning-ops/internal/httperr"
	"github.com/SparkleCleanOps/cleaning-ops/internal/models"
	"github.com/SparkleCleanOps/cleaning-ops/internal/timezone"
)

// =========================================================
// Usecase: request a prize redemption
// =========================================================

// RequestRedemption records a pending request without reserving points.
// The balance is only checked on fulfillment, so two pending requests may
// together exceed it; whichever is fulfilled first wins.
type RequestRedemption struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRequestRedemption(repo domain.Repository, audit *audit.Dispatcher) *RequestRedemption {
	return &RequestRedemption{repo: repo, audit: audit}
}

func (uc *RequestRedemption) Execute(
	ctx context.Context,
	clientID uint,
	prizeName string,
	pointsCost int,
) (*models.RedemptionRequest, error) {

	if pointsCost <= 0 {
		return nil, ErrInvalidPointsCost
	}
	if _, err := uc.repo.GetClient(ctx, clientID); err != nil {
		return nil, err
	}

	req := models.RedemptionRequest{
		ClientID:   clientID,
		PrizeName:  prizeName,
		PointsCost: pointsCost,
		Status:     models.RedemptionStatusPending,
	}
	if err := uc.repo.CreateRedemption(ctx, &req); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &clientID,
		Action:   "redemption_requested",
		Entity:   "redemption",
		EntityID: &req.ID,
		Metadata: map[string]any{"prize": prizeName, "points_cost": pointsCost},
	})

	return &req, nil
}

// =========================================================
// Usecase: fulfill a redemption
// =========================================================

type FulfillRedemption struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewFulfillRedemption(repo domain.Repository, audit *audit.Dispatcher) *FulfillRedemption {
	return &FulfillRedemption{repo: repo, audit: audit}
}

func (uc *FulfillRedemption) Execute(
	ctx context.Context,
	operatorID uint,
	redemptionID uint,
) (*models.RedemptionRequest, error) {

	var req *models.RedemptionRequest

	err := uc.repo.WithinTransaction(ctx, func(r domain.Repository) error {
		got, err := r.GetRedemption(ctx, redemptionID)
		if err != nil {
			return ErrRedemptionNotFound
		}
		req = got

		if req.Status != models.RedemptionStatusPending {
			return httperr.ErrBusiness(httperr.CodeIllegalTransition)
		}

		// The conditional debit is the only balance check; a request that
		// sat pending while the points were spent elsewhere fails here.
		debited, err := r.DebitLoyaltyAccount(ctx, req.ClientID, req.PointsCost)
		if err != nil {
			return err
		}
		if !debited {
			return httperr.ErrBusiness(httperr.CodeInsufficientPoints)
		}

		txn := models.LoyaltyTransaction{
			ClientID:    req.ClientID,
			Amount:      req.PointsCost,
			Type:        models.LoyaltyTxSpent,
			Description: "Redeemed: " + req.PrizeName,
		}
		if err := r.AppendLoyaltyTransaction(ctx, &txn); err != nil {
			return err
		}

		now := timezone.Now()
		req.Status = models.RedemptionStatusFulfilled
		req.ResolvedAt = &now
		return r.UpdateRedemption(ctx, req)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &operatorID,
		Action:   "redemption_fulfilled",
		Entity:   "redemption",
		EntityID: &req.ID,
		Metadata: map[string]any{"points_cost": req.PointsCost},
	})

	return req, nil
}

// =========================================================
// Usecase: cancel a redemption
// =========================================================

// CancelRedemption closes a pending request. Nothing was reserved, so the
// ledger is untouched.
type CancelRedemption struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelRedemption(repo domain.Repository, audit *audit.Dispatcher) *CancelRedemption {
	return &CancelRedemption{repo: repo, audit: audit}
}

func (uc *CancelRedemption) Execute(
	ctx context.Context,
	actorID uint,
	redemptionID uint,
) (*models.RedemptionRequest, error) {

	req, err := uc.repo.GetRedemption(ctx, redemptionID)
	if err != nil {
		return nil, ErrRedemptionNotFound
	}
	if req.Status != models.RedemptionStatusPending {
		return nil, httperr.ErrBusiness(httperr.CodeIllegalTransition)
	}

	now := timezone.Now()
	req.Status = models.RedemptionStatusCancelled
	req.ResolvedAt = &now

	if err := uc.repo.UpdateRedemption(ctx, req); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "redemption_cancelled",
		Entity:   "redemption",
		EntityID: &req.ID,
	})

	return req, nil
}

// =========================================================
// Usecase: loyalty balance and history
// =========================================================

type LoyaltyOverview struct {
	Account      *models.LoyaltyAccount      `json:"account"`
	Transactions []models.LoyaltyTransaction `json:"transactions"`
	Redemptions  []models.RedemptionRequest  `json:"redemptions"`
}

type GetLoyaltyOverview struct {
	repo domain.Repository
}

func NewGetLoyaltyOverview(repo domain.Repository) *GetLoyaltyOverview {
	return &GetLoyaltyOverview{repo: repo}
}

func (uc *GetLoyaltyOverview) Execute(ctx context.Context, clientID uint) (*LoyaltyOverview, error) {
	if _, err := uc.repo.GetClient(ctx, clientID); err != nil {
		return nil, err
	}

	// A client who never earned points simply has no account row yet.
	acct, err := uc.repo.GetLoyaltyAccount(ctx, clientID)
	if err != nil {
		acct = &models.LoyaltyAccount{ClientID: clientID}
	}

	txns, err := uc.repo.ListLoyaltyTransactions(ctx, clientID)
	if err != nil {
		return nil, err
	}

	reds, err := uc.repo.ListRedemptionsByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	return &LoyaltyOverview{Account: acct, Transactions: txns, Redemptions: reds}, nil
}
