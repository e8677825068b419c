package booking

import (
	"context"
	"errors"
	"time"

	"github.com/SparkleCleanOps/cleaning-ops/internal/models"
)

// fakeRepo is an in-memory stand-in for the gorm repository.
type fakeRepo struct {
	clients  map[uint]*models.Client
	bookings map[uint]*models.Booking
	crews    map[uint][]uint

	checklistDone map[uint]bool
	paidInvoice   map[uint]bool

	nextID  uint
	updates int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		clients:       map[uint]*models.Client{},
		bookings:      map[uint]*models.Booking{},
		crews:         map[uint][]uint{},
		checklistDone: map[uint]bool{},
		paidInvoice:   map[uint]bool{},
	}
}

func (f *fakeRepo) addBooking(b *models.Booking, crew []uint) *models.Booking {
	f.nextID++
	b.ID = f.nextID
	f.bookings[b.ID] = b
	f.crews[b.ID] = crew
	return b
}

func (f *fakeRepo) GetOrCreateClient(_ context.Context, name, phone, email string) (*models.Client, error) {
	for _, c := range f.clients {
		if c.Phone == phone {
			return c, nil
		}
	}
	f.nextID++
	c := &models.Client{ID: f.nextID, Name: name, Phone: phone, Email: email}
	f.clients[c.ID] = c
	return c, nil
}

func (f *fakeRepo) CreateBooking(_ context.Context, b *models.Booking, crew []uint) error {
	f.addBooking(b, crew)
	return nil
}

func (f *fakeRepo) GetBooking(_ context.Context, id uint) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	cp := *b
	return &cp, nil
}

func (f *fakeRepo) GetCrew(_ context.Context, id uint) ([]uint, error) {
	return f.crews[id], nil
}

func (f *fakeRepo) ReplaceCrew(_ context.Context, id uint, crew []uint) error {
	f.crews[id] = crew
	return nil
}

func (f *fakeRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	f.updates++
	cp := *b
	f.bookings[b.ID] = &cp
	return nil
}

func (f *fakeRepo) AreAllRoomsCompleted(_ context.Context, id uint) (bool, error) {
	return f.checklistDone[id], nil
}

func (f *fakeRepo) HasPaidInvoice(_ context.Context, id uint) (bool, error) {
	return f.paidInvoice[id], nil
}

func (f *fakeRepo) DeleteBooking(_ context.Context, id uint) error {
	delete(f.bookings, id)
	delete(f.crews, id)
	return nil
}

func (f *fakeRepo) ListBookingsForDay(_ context.Context, memberID uint, start, end time.Time) ([]models.Booking, error) {
	return f.listRange(memberID, start, end)
}

func (f *fakeRepo) ListBookingsForPeriod(_ context.Context, memberID uint, start, end time.Time) ([]models.Booking, error) {
	return f.listRange(memberID, start, end)
}

func (f *fakeRepo) listRange(memberID uint, start, end time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for id, b := range f.bookings {
		if b.ScheduledAt == nil || b.ScheduledAt.Before(start) || !b.ScheduledAt.Before(end) {
			continue
		}
		if memberID != 0 {
			member := false
			for _, m := range f.crews[id] {
				if m == memberID {
					member = true
					break
				}
			}
			if !member {
				continue
			}
		}
		out = append(out, *b)
	}
	return out, nil
}
