package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/SparkleCleanOps/cleaning-ops/internal/domain/billing"
	"github.com/SparkleCleanOps/cleaning-ops/internal/models"
)

type BillingGormRepository struct {
	db *gorm.DB
}

func NewBillingGormRepository(db *gorm.DB) *BillingGormRepository {
	return &BillingGormRepository{db: db}
}

func (r *BillingGormRepository) WithinTransaction(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BillingGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Invoice
// --------------------------------------------------

func (r *BillingGormRepository) GetInvoice(
	ctx context.Context,
	invoiceID uint,
) (*models.Invoice, error) {

	var inv models.Invoice
	if err := r.db.WithContext(ctx).First(&inv, invoiceID).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *BillingGormRepository) CreateInvoice(
	ctx context.Context,
	inv *models.Invoice,
) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *BillingGormRepository) UpdateInvoice(
	ctx context.Context,
	inv *models.Invoice,
) error {
	return r.db.WithContext(ctx).Save(inv).Error
}

func (r *BillingGormRepository) ListInvoicesByClient(
	ctx context.Context,
	clientID uint,
) ([]models.Invoice, error) {

	var invoices []models.Invoice
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *BillingGormRepository) LinkBookingInvoice(
	ctx context.Context,
	bookingID uint,
	invoiceID uint,
) error {

	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", bookingID).
		Update("invoice_id", invoiceID).Error
}

// FlipInvoicePaid relies on the affected-row count of a conditional
// UPDATE rather than a load-then-check, so concurrent callers cannot both
// observe the paid edge.
func (r *BillingGormRepository) FlipInvoicePaid(
	ctx context.Context,
	invoiceID uint,
) (bool, error) {

	now := time.Now()
	res := r.db.WithContext(ctx).
		Model(&models.Invoice{}).
		Where("id = ? AND status <> ?", invoiceID, models.InvoiceStatusPaid).
		Updates(map[string]any{
			"status":  models.InvoiceStatusPaid,
			"paid_at": now,
		})

	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected > 0, nil
}

func (r *BillingGormRepository) FlagOverdueInvoices(
	ctx context.Context,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Invoice{}).
		Where("status = ? AND due_date < ?", models.InvoiceStatusIssued, time.Now()).
		Update("status", models.InvoiceStatusOverdue)

	return res.RowsAffected, res.Error
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *BillingGormRepository) GetClient(
	ctx context.Context,
	clientID uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, clientID).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *BillingGormRepository) AddClientServiceSpend(
	ctx context.Context,
	clientID uint,
	amount float64,
) error {

	return r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", clientID).
		Update("total_spent", gorm.Expr("total_spent + ?", amount)).Error
}

// --------------------------------------------------
// Loyalty ledger
// --------------------------------------------------

func (r *BillingGormRepository) GetLoyaltyAccount(
	ctx context.Context,
	clientID uint,
) (*models.LoyaltyAccount, error) {

	var acc models.LoyaltyAccount
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		First(&acc).Error; err != nil {
		return nil, err
	}
	return &acc, nil
}

func (r *BillingGormRepository) CreditLoyaltyAccount(
	ctx context.Context,
	clientID uint,
	amount int,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.LoyaltyAccount{}).
		Where("client_id = ?", clientID).
		Updates(map[string]any{
			"current_credits": gorm.Expr("current_credits + ?", amount),
			"total_earned":    gorm.Expr("total_earned + ?", amount),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	acc := models.LoyaltyAccount{
		ClientID:       clientID,
		CurrentCredits: amount,
		TotalEarned:    amount,
		TotalSpent:     0,
	}
	return r.db.WithContext(ctx).Create(&acc).Error
}

func (r *BillingGormRepository) DebitLoyaltyAccount(
	ctx context.Context,
	clientID uint,
	amount int,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Model(&models.LoyaltyAccount{}).
		Where("client_id = ? AND current_credits >= ?", clientID, amount).
		Updates(map[string]any{
			"current_credits": gorm.Expr("current_credits - ?", amount),
			"total_spent":     gorm.Expr("total_spent + ?", amount),
		})

	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *BillingGormRepository) AppendLoyaltyTransaction(
	ctx context.Context,
	txn *models.LoyaltyTransaction,
) error {
	return r.db.WithContext(ctx).Create(txn).Error
}

func (r *BillingGormRepository) ListLoyaltyTransactions(
	ctx context.Context,
	clientID uint,
) ([]models.LoyaltyTransaction, error) {

	var txns []models.LoyaltyTransaction
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at ASC").
		Find(&txns).Error; err != nil {
		return nil, err
	}
	return txns, nil
}

// --------------------------------------------------
// Redemption
// --------------------------------------------------

func (r *BillingGormRepository) CreateRedemption(
	ctx context.Context,
	req *models.RedemptionRequest,
) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *BillingGormRepository) GetRedemption(
	ctx context.Context,
	id uint,
) (*models.RedemptionRequest, error) {

	var req models.RedemptionRequest
	if err := r.db.WithContext(ctx).First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *BillingGormRepository) UpdateRedemption(
	ctx context.Context,
	req *models.RedemptionRequest,
) error {
	return r.db.WithContext(ctx).Save(req).Error
}

func (r *BillingGormRepository) ListRedemptionsByClient(
	ctx context.Context,
	clientID uint,
) ([]models.RedemptionRequest, error) {

	var reqs []models.RedemptionRequest
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

// Compile-time check
var _ domain.Repository = (*BillingGormRepository)(nil)
