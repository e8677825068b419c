package billing

import (
	"context"
	"errors"
	"time"

	domain "github.com/SparkleCleanOps/cleaning-ops/internal/domain/billing"
	bookingdomain "github.com/SparkleCleanOps/cleaning-ops/internal/domain/booking"
	"github.com/SparkleCleanOps/cleaning-ops/internal/models"
)

// fakeBillingRepo is an in-memory stand-in for the gorm repository. Its
// FlipInvoicePaid and DebitLoyaltyAccount mirror the conditional-update
// semantics of the real one.
type fakeBillingRepo struct {
	clients     map[uint]*models.Client
	invoices    map[uint]*models.Invoice
	accounts    map[uint]*models.LoyaltyAccount // keyed by client ID
	ledger      []models.LoyaltyTransaction
	redemptions map[uint]*models.RedemptionRequest

	// Booking rows live in the other fake; the link write crosses over
	// the way the SQL update crosses tables.
	bookings *fakeBookingRepo
	failLink bool

	nextID uint
}

func newFakeBillingRepo() *fakeBillingRepo {
	return &fakeBillingRepo{
		clients:     map[uint]*models.Client{},
		invoices:    map[uint]*models.Invoice{},
		accounts:    map[uint]*models.LoyaltyAccount{},
		redemptions: map[uint]*models.RedemptionRequest{},
	}
}

func (f *fakeBillingRepo) addClient() *models.Client {
	f.nextID++
	c := &models.Client{ID: f.nextID, Name: "Client"}
	f.clients[c.ID] = c
	return c
}

func (f *fakeBillingRepo) addInvoice(clientID uint, total float64, status string) *models.Invoice {
	f.nextID++
	inv := &models.Invoice{ID: f.nextID, ClientID: clientID, Total: total, Status: status}
	f.invoices[inv.ID] = inv
	return inv
}

func (f *fakeBillingRepo) addRedemption(clientID uint, cost int, status string) *models.RedemptionRequest {
	f.nextID++
	r := &models.RedemptionRequest{ID: f.nextID, ClientID: clientID, PointsCost: cost, Status: status}
	f.redemptions[r.ID] = r
	return r
}

// WithinTransaction snapshots the stores and restores them when fn fails,
// mirroring the rollback of the real repository.
func (f *fakeBillingRepo) WithinTransaction(_ context.Context, fn func(domain.Repository) error) error {
	snap := f.snapshot()
	if err := fn(f); err != nil {
		f.restore(snap)
		return err
	}
	return nil
}

type billingSnapshot struct {
	clients     map[uint]*models.Client
	invoices    map[uint]*models.Invoice
	accounts    map[uint]*models.LoyaltyAccount
	ledger      []models.LoyaltyTransaction
	redemptions map[uint]*models.RedemptionRequest
	nextID      uint
}

func (f *fakeBillingRepo) snapshot() billingSnapshot {
	s := billingSnapshot{
		clients:     map[uint]*models.Client{},
		invoices:    map[uint]*models.Invoice{},
		accounts:    map[uint]*models.LoyaltyAccount{},
		ledger:      append([]models.LoyaltyTransaction(nil), f.ledger...),
		redemptions: map[uint]*models.RedemptionRequest{},
		nextID:      f.nextID,
	}
	for id, c := range f.clients {
		cp := *c
		s.clients[id] = &cp
	}
	for id, inv := range f.invoices {
		cp := *inv
		s.invoices[id] = &cp
	}
	for id, acc := range f.accounts {
		cp := *acc
		s.accounts[id] = &cp
	}
	for id, r := range f.redemptions {
		cp := *r
		s.redemptions[id] = &cp
	}
	return s
}

func (f *fakeBillingRepo) restore(s billingSnapshot) {
	f.clients = s.clients
	f.invoices = s.invoices
	f.accounts = s.accounts
	f.ledger = s.ledger
	f.redemptions = s.redemptions
	f.nextID = s.nextID
}

func (f *fakeBillingRepo) GetInvoice(_ context.Context, id uint) (*models.Invoice, error) {
	inv, ok := f.invoices[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	cp := *inv
	return &cp, nil
}

func (f *fakeBillingRepo) CreateInvoice(_ context.Context, inv *models.Invoice) error {
	f.nextID++
	inv.ID = f.nextID
	cp := *inv
	f.invoices[inv.ID] = &cp
	return nil
}

func (f *fakeBillingRepo) UpdateInvoice(_ context.Context, inv *models.Invoice) error {
	cp := *inv
	f.invoices[inv.ID] = &cp
	return nil
}

func (f *fakeBillingRepo) ListInvoicesByClient(_ context.Context, clientID uint) ([]models.Invoice, error) {
	var out []models.Invoice
	for _, inv := range f.invoices {
		if inv.ClientID == clientID {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (f *fakeBillingRepo) LinkBookingInvoice(_ context.Context, bookingID, invoiceID uint) error {
	if f.failLink {
		return errors.New("link failed")
	}
	if f.bookings != nil {
		if b, ok := f.bookings.bookings[bookingID]; ok {
			id := invoiceID
			b.InvoiceID = &id
		}
	}
	return nil
}

func (f *fakeBillingRepo) FlipInvoicePaid(_ context.Context, id uint) (bool, error) {
	inv, ok := f.invoices[id]
	if !ok {
		return false, nil
	}
	if inv.Status == models.InvoiceStatusPaid {
		return false, nil
	}
	now := time.Now()
	inv.Status = models.InvoiceStatusPaid
	inv.PaidAt = &now
	return true, nil
}

func (f *fakeBillingRepo) FlagOverdueInvoices(_ context.Context) (int64, error) {
	var n int64
	now := time.Now()
	for _, inv := range f.invoices {
		if inv.Status == models.InvoiceStatusIssued && inv.DueDate != nil && inv.DueDate.Before(now) {
			inv.Status = models.InvoiceStatusOverdue
			n++
		}
	}
	return n, nil
}

func (f *fakeBillingRepo) GetClient(_ context.Context, id uint) (*models.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	cp := *c
	return &cp, nil
}

func (f *fakeBillingRepo) AddClientServiceSpend(_ context.Context, id uint, amount float64) error {
	if c, ok := f.clients[id]; ok {
		c.TotalSpent += amount
	}
	return nil
}

func (f *fakeBillingRepo) GetLoyaltyAccount(_ context.Context, clientID uint) (*models.LoyaltyAccount, error) {
	acc, ok := f.accounts[clientID]
	if !ok {
		return nil, errors.New("record not found")
	}
	cp := *acc
	return &cp, nil
}

func (f *fakeBillingRepo) CreditLoyaltyAccount(_ context.Context, clientID uint, amount int) error {
	acc, ok := f.accounts[clientID]
	if !ok {
		acc = &models.LoyaltyAccount{ClientID: clientID}
		f.accounts[clientID] = acc
	}
	acc.CurrentCredits += amount
	acc.TotalEarned += amount
	return nil
}

func (f *fakeBillingRepo) DebitLoyaltyAccount(_ context.Context, clientID uint, amount int) (bool, error) {
	acc, ok := f.accounts[clientID]
	if !ok || acc.CurrentCredits < amount {
		return false, nil
	}
	acc.CurrentCredits -= amount
	acc.TotalSpent += amount
	return true, nil
}

func (f *fakeBillingRepo) AppendLoyaltyTransaction(_ context.Context, txn *models.LoyaltyTransaction) error {
	f.nextID++
	txn.ID = f.nextID
	f.ledger = append(f.ledger, *txn)
	return nil
}

func (f *fakeBillingRepo) ListLoyaltyTransactions(_ context.Context, clientID uint) ([]models.LoyaltyTransaction, error) {
	var out []models.LoyaltyTransaction
	for _, txn := range f.ledger {
		if txn.ClientID == clientID {
			out = append(out, txn)
		}
	}
	return out, nil
}

func (f *fakeBillingRepo) CreateRedemption(_ context.Context, r *models.RedemptionRequest) error {
	f.nextID++
	r.ID = f.nextID
	cp := *r
	f.redemptions[r.ID] = &cp
	return nil
}

func (f *fakeBillingRepo) GetRedemption(_ context.Context, id uint) (*models.RedemptionRequest, error) {
	r, ok := f.redemptions[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	cp := *r
	return &cp, nil
}

func (f *fakeBillingRepo) UpdateRedemption(_ context.Context, r *models.RedemptionRequest) error {
	cp := *r
	f.redemptions[r.ID] = &cp
	return nil
}

func (f *fakeBillingRepo) ListRedemptionsByClient(_ context.Context, clientID uint) ([]models.RedemptionRequest, error) {
	var out []models.RedemptionRequest
	for _, r := range f.redemptions {
		if r.ClientID == clientID {
			out = append(out, *r)
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeBillingRepo)(nil)

// fakeBookingRepo covers just what the invoice usecases touch.
type fakeBookingRepo struct {
	bookings map[uint]*models.Booking
	updates  int
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[uint]*models.Booking{}}
}

func (f *fakeBookingRepo) GetOrCreateClient(context.Context, string, string, string) (*models.Client, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeBookingRepo) CreateBooking(context.Context, *models.Booking, []uint) error {
	return errors.New("not implemented")
}

func (f *fakeBookingRepo) GetBooking(_ context.Context, id uint) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBookingRepo) GetCrew(context.Context, uint) ([]uint, error) { return nil, nil }

func (f *fakeBookingRepo) ReplaceCrew(context.Context, uint, []uint) error { return nil }

func (f *fakeBookingRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	f.updates++
	cp := *b
	f.bookings[b.ID] = &cp
	return nil
}

func (f *fakeBookingRepo) AreAllRoomsCompleted(context.Context, uint) (bool, error) {
	return false, nil
}

func (f *fakeBookingRepo) HasPaidInvoice(context.Context, uint) (bool, error) { return false, nil }

func (f *fakeBookingRepo) DeleteBooking(context.Context, uint) error { return nil }

func (f *fakeBookingRepo) ListBookingsForDay(context.Context, uint, time.Time, time.Time) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) ListBookingsForPeriod(context.Context, uint, time.Time, time.Time) ([]models.Booking, error) {
	return nil, nil
}

var _ bookingdomain.Repository = (*fakeBookingRepo)(nil)
