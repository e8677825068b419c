package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/SparkleCleanOps/cleaning-ops/internal/domain/booking"
	"github.com/SparkleCleanOps/cleaning-ops/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *BookingGormRepository) GetOrCreateClient(
	ctx context.Context,
	name string,
	phone string,
	email string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&client).Error

	if err == nil {
		return &client, nil
	}

	client = models.Client{
		Name:  name,
		Phone: phone,
		Email: email,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
	crew []uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(b).Error; err != nil {
			return err
		}

		for i, memberID := range crew {
			assignment := models.BookingAssignment{
				BookingID:    b.ID,
				TeamMemberID: memberID,
				Position:     i,
			}
			if err := tx.Create(&assignment).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	bookingID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, bookingID).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) GetCrew(
	ctx context.Context,
	bookingID uint,
) ([]uint, error) {

	var assignments []models.BookingAssignment
	if err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("position ASC").
		Find(&assignments).Error; err != nil {
		return nil, err
	}

	crew := make([]uint, 0, len(assignments))
	for _, a := range assignments {
		crew = append(crew, a.TeamMemberID)
	}

	return crew, nil
}

func (r *BookingGormRepository) ReplaceCrew(
	ctx context.Context,
	bookingID uint,
	crew []uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("booking_id = ?", bookingID).
			Delete(&models.BookingAssignment{}).Error; err != nil {
			return err
		}

		for i, memberID := range crew {
			assignment := models.BookingAssignment{
				BookingID:    bookingID,
				TeamMemberID: memberID,
				Position:     i,
			}
			if err := tx.Create(&assignment).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// --------------------------------------------------
// Checklist
// --------------------------------------------------

func (r *BookingGormRepository) AreAllRoomsCompleted(
	ctx context.Context,
	bookingID uint,
) (bool, error) {

	var pending int64
	if err := r.db.WithContext(ctx).
		Model(&models.ChecklistRoom{}).
		Where("booking_id = ? AND done = ?", bookingID, false).
		Count(&pending).Error; err != nil {
		return false, err
	}

	return pending == 0, nil
}

// --------------------------------------------------
// Financial references / deletion
// --------------------------------------------------

func (r *BookingGormRepository) HasPaidInvoice(
	ctx context.Context,
	bookingID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Invoice{}).
		Where("booking_id = ? AND status = ?", bookingID, models.InvoiceStatusPaid).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	bookingID uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("booking_id = ?", bookingID).
			Delete(&models.BookingAssignment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("booking_id = ?", bookingID).
			Delete(&models.ChecklistRoom{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Booking{}, bookingID).Error
	})
}

// --------------------------------------------------
// Schedule views
// --------------------------------------------------

func (r *BookingGormRepository) ListBookingsForDay(
	ctx context.Context,
	memberID uint,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	return r.listForRange(ctx, memberID, start, end)
}

func (r *BookingGormRepository) ListBookingsForPeriod(
	ctx context.Context,
	memberID uint,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	return r.listForRange(ctx, memberID, start, end)
}

func (r *BookingGormRepository) listForRange(
	ctx context.Context,
	memberID uint,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	q := r.db.WithContext(ctx).
		Preload("Client").
		Where("scheduled_at >= ? AND scheduled_at < ?", start, end)

	if memberID != 0 {
		q = q.Where(
			"id IN (?)",
			r.db.Model(&models.BookingAssignment{}).
				Select("booking_id").
				Where("team_member_id = ?", memberID),
		)
	}

	if err := q.Order("scheduled_at ASC").Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
