package billing

import (
	"context"

	"github.com/SparkleCleanOps/cleaning-ops/internal/models"
)

// Repository is the persistence contract of the financial side-effect
// coordinator. WithinTransaction hands the usecase a repository view bound
// to a single transaction; the invoice flip and the loyalty crediting are
// one unit of work.
type Repository interface {
	WithinTransaction(ctx context.Context, fn func(Repository) error) error

	// -------- Invoice --------
	GetInvoice(ctx context.Context, invoiceID uint) (*models.Invoice, error)
	CreateInvoice(ctx context.Context, inv *models.Invoice) error
	UpdateInvoice(ctx context.Context, inv *models.Invoice) error
	ListInvoicesByClient(ctx context.Context, clientID uint) ([]models.Invoice, error)

	// LinkBookingInvoice stamps the invoice back-reference on the booking
	// row; paired with CreateInvoice inside one transaction.
	LinkBookingInvoice(ctx context.Context, bookingID uint, invoiceID uint) error

	// FlipInvoicePaid is the atomic idempotency guard: a single
	// conditional update that sets status=paid only when it isn't
	// already. Reports whether this call made the flip.
	FlipInvoicePaid(ctx context.Context, invoiceID uint) (bool, error)

	// FlagOverdueInvoices moves issued invoices past their due date to
	// overdue and reports how many were flagged.
	FlagOverdueInvoices(ctx context.Context) (int64, error)

	// -------- Client --------
	GetClient(ctx context.Context, clientID uint) (*models.Client, error)
	AddClientServiceSpend(ctx context.Context, clientID uint, amount float64) error

	// -------- Loyalty ledger --------
	GetLoyaltyAccount(ctx context.Context, clientID uint) (*models.LoyaltyAccount, error)
	CreditLoyaltyAccount(ctx context.Context, clientID uint, amount int) error

	// DebitLoyaltyAccount decrements the balance only when it covers the
	// amount (conditional update); reports whether it did.
	DebitLoyaltyAccount(ctx context.Context, clientID uint, amount int) (bool, error)

	AppendLoyaltyTransaction(ctx context.Context, txn *models.LoyaltyTransaction) error
	ListLoyaltyTransactions(ctx context.Context, clientID uint) ([]models.LoyaltyTransaction, error)

	// -------- Redemption --------
	CreateRedemption(ctx context.Context, r *models.RedemptionRequest) error
	GetRedemption(ctx context.Context, id uint) (*models.RedemptionRequest, error)
	UpdateRedemption(ctx context.Context, r *models.RedemptionRequest) error
	ListRedemptionsByClient(ctx context.Context, clientID uint) ([]models.RedemptionRequest, error)
}
