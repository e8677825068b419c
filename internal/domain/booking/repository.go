package booking

import (
	"context"
	"time"

	"github.com/SparkleCleanOps/cleaning-ops/internal/models"
)

type Repository interface {
	// -------- Client --------
	GetOrCreateClient(
		ctx context.Context,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	// -------- Booking (create) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
		crew []uint,
	) error

	// -------- Booking (state change) --------
	GetBooking(
		ctx context.Context,
		bookingID uint,
	) (*models.Booking, error)

	// GetCrew returns the crew member ids in assignment order.
	GetCrew(
		ctx context.Context,
		bookingID uint,
	) ([]uint, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// ReplaceCrew swaps the full ordered crew of a booking.
	ReplaceCrew(
		ctx context.Context,
		bookingID uint,
		crew []uint,
	) error

	// -------- Checklist (externally owned sub-resource) --------
	AreAllRoomsCompleted(
		ctx context.Context,
		bookingID uint,
	) (bool, error)

	// -------- Financial references --------
	HasPaidInvoice(
		ctx context.Context,
		bookingID uint,
	) (bool, error)

	DeleteBooking(
		ctx context.Context,
		bookingID uint,
	) error

	// -------- Schedule views --------
	ListBookingsForDay(
		ctx context.Context,
		memberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)

	ListBookingsForPeriod(
		ctx context.Context,
		memberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)
}
