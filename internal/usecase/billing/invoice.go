package billing

import (
	"context"
	"errors"

	"github.com/SparkleCleanOps/cleaning-ops/internal/audit"
	domain "github.com/SparkleCleanOps/cleaning-ops/internal/domain/billing"
	bookingdomain "github.com/SparkleCleanOps/cleaning-ops/internal/domain/booking"
	"github.com/SparkleCleanOps/cleaning-ops/internal/httperr"
	"github.com/SparkleCleanOps/cleaning-ops/internal/models"
	"github.com/SparkleCleanOps/cleaning-ops/internal/timezone"
)

// Issued invoices fall due two weeks after issuing.
const invoiceDueDays = 14

var ErrBookingNotCompleted = errors.New("booking is not completed")

// =========================================================
// Usecase: create a draft invoice from a completed booking
// =========================================================

type CreateInvoice struct {
	repo     domain.Repository
	bookings bookingdomain.Repository
	audit    *audit.Dispatcher
}

func NewCreateInvoice(
	repo domain.Repository,
	bookings bookingdomain.Repository,
	audit *audit.Dispatcher,
) *CreateInvoice {
	return &CreateInvoice{repo: repo, bookings: bookings, audit: audit}
}

func (uc *CreateInvoice) Execute(
	ctx context.Context,
	operatorID uint,
	bookingID uint,
) (*models.Invoice, error) {

	b, err := uc.bookings.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status != string(bookingdomain.StatusCompleted) {
		return nil, ErrBookingNotCompleted
	}

	details, err := models.DecodeBookingDetails(b.Details)
	if err != nil {
		return nil, err
	}

	// Operator override wins; otherwise bill the midpoint of the quote.
	total := (details.QuoteMin + details.QuoteMax) / 2
	if details.Price != nil {
		total = *details.Price
	}

	inv := models.Invoice{
		ClientID:  b.ClientID,
		BookingID: &b.ID,
		Status:    models.InvoiceStatusDraft,
		Total:     total,
	}

	// Insert and back-reference as one unit of work; a failed link must
	// not leave an orphaned draft behind.
	err = uc.repo.WithinTransaction(ctx, func(r domain.Repository) error {
		if err := r.CreateInvoice(ctx, &inv); err != nil {
			return err
		}
		return r.LinkBookingInvoice(ctx, b.ID, inv.ID)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &operatorID,
		Action:   "invoice_created",
		Entity:   "invoice",
		EntityID: &inv.ID,
		Metadata: map[string]any{"booking_id": bookingID, "total": total},
	})

	return &inv, nil
}

// =========================================================
// Usecase: issue a draft invoice
// =========================================================

type IssueInvoice struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewIssueInvoice(repo domain.Repository, audit *audit.Dispatcher) *IssueInvoice {
	return &IssueInvoice{repo: repo, audit: audit}
}

func (uc *IssueInvoice) Execute(
	ctx context.Context,
	operatorID uint,
	invoiceID uint,
) (*models.Invoice, error) {

	inv, err := uc.repo.GetInvoice(ctx, invoiceID)
	if err != nil {
		return nil, ErrInvoiceNotFound
	}
	if inv.Status != models.InvoiceStatusDraft {
		return nil, httperr.ErrBusiness(httperr.CodeIllegalTransition)
	}

	now := timezone.Now()
	due := now.AddDate(0, 0, invoiceDueDays)

	inv.Status = models.InvoiceStatusIssued
	inv.IssuedAt = &now
	inv.DueDate = &due

	if err := uc.repo.UpdateInvoice(ctx, inv); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &operatorID,
		Action:   "invoice_issued",
		Entity:   "invoice",
		EntityID: &inv.ID,
	})

	return inv, nil
}

// =========================================================
// Usecase: flag overdue invoices
// =========================================================

type FlagOverdue struct {
	repo domain.Repository
}

func NewFlagOverdue(repo domain.Repository) *FlagOverdue {
	return &FlagOverdue{repo: repo}
}

func (uc *FlagOverdue) Execute(ctx context.Context) (int64, error) {
	return uc.repo.FlagOverdueInvoices(ctx)
}

// =========================================================
// Usecase: list a client's invoices
// =========================================================

type ListInvoices struct {
	repo domain.Repository
}

func NewListInvoices(repo domain.Repository) *ListInvoices {
	return &ListInvoices{repo: repo}
}

func (uc *ListInvoices) Execute(ctx context.Context, clientID uint) ([]models.Invoice, error) {
	return uc.repo.ListInvoicesByClient(ctx, clientID)
}
