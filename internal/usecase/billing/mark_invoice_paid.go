package billing

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/SparkleCleanOps/cleaning-ops/internal/audit"
	domain "github.com/SparkleCleanOps/cleaning-ops/internal/domain/billing"
	"github.com/SparkleCleanOps/cleaning-ops/internal/models"
)

var (
	ErrInvoiceNotFound    = errors.New("invoice not found")
	ErrRedemptionNotFound = errors.New("redemption request not found")
	ErrInvalidPointsCost  = errors.New("invalid points cost")
)

// MarkInvoicePaid flips an invoice to paid and credits loyalty points to
// the client, exactly once per invoice. The flip is an atomic conditional
// update; when it reports no rows affected the invoice was already paid
// and the whole crediting block is skipped (loyalty delta 0).
type MarkInvoicePaid struct {
	repo           domain.Repository
	pointsPerCrown float64
	audit          *audit.Dispatcher
}

func NewMarkInvoicePaid(
	repo domain.Repository,
	pointsPerCrown float64,
	audit *audit.Dispatcher,
) *MarkInvoicePaid {
	return &MarkInvoicePaid{
		repo:           repo,
		pointsPerCrown: pointsPerCrown,
		audit:          audit,
	}
}

type PaidResult struct {
	Invoice      *models.Invoice `json:"invoice"`
	LoyaltyDelta int             `json:"loyalty_delta"`
}

func (uc *MarkInvoicePaid) Execute(
	ctx context.Context,
	operatorID uint,
	invoiceID uint,
) (*PaidResult, error) {

	var result PaidResult

	// Flip and credit run in one transaction: a paid invoice with an
	// unchanged ledger is a defect, not an acceptable partial outcome.
	err := uc.repo.WithinTransaction(ctx, func(r domain.Repository) error {
		flipped, err := r.FlipInvoicePaid(ctx, invoiceID)
		if err != nil {
			return err
		}

		inv, err := r.GetInvoice(ctx, invoiceID)
		if err != nil {
			return ErrInvoiceNotFound
		}
		result.Invoice = inv

		if !flipped {
			// Re-save of an already-paid invoice: no side effects.
			return nil
		}

		points := int(math.Round(inv.Total * uc.pointsPerCrown))
		if points > 0 {
			if err := r.CreditLoyaltyAccount(ctx, inv.ClientID, points); err != nil {
				return err
			}
			txn := models.LoyaltyTransaction{
				ClientID:    inv.ClientID,
				Amount:      points,
				Type:        models.LoyaltyTxEarned,
				Description: fmt.Sprintf("Earned for invoice #%d (%.2f CZK)", inv.ID, inv.Total),
			}
			if err := r.AppendLoyaltyTransaction(ctx, &txn); err != nil {
				return err
			}
			result.LoyaltyDelta = points
		}

		// Lifetime crowns spent on services; distinct from the loyalty
		// ledger's points-spent counter despite the shared name.
		return r.AddClientServiceSpend(ctx, inv.ClientID, inv.Total)
	})
	if err != nil {
		return nil, err
	}

	if result.LoyaltyDelta > 0 {
		uc.audit.Dispatch(audit.Event{
			UserID:   &operatorID,
			Action:   "invoice_paid",
			Entity:   "invoice",
			EntityID: &invoiceID,
			Metadata: map[string]any{"loyalty_delta": result.LoyaltyDelta},
		})
	}

	return &result, nil
}
