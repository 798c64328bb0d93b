package persistence

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/booking"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/shared"
	"gorm.io/gorm"
)

// GormPaymentRepository implements booking.PaymentRepository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// FindByID finds a payment by its ID
func (r *GormPaymentRepository) FindByID(ctx context.Context, id uint) (*booking.Payment, error) {
	var payment booking.Payment
	if err := conn(ctx, r.db).First(&payment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// FindByBooking finds all payments for a booking, newest first
func (r *GormPaymentRepository) FindByBooking(ctx context.Context, bookingID uint) ([]booking.Payment, error) {
	var payments []booking.Payment
	if err := conn(ctx, r.db).
		Where("booking_id = ?", bookingID).
		Order("payment_date DESC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// SumCompletedByBooking totals completed payments for a booking
func (r *GormPaymentRepository) SumCompletedByBooking(ctx context.Context, bookingID uint) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	if err := conn(ctx, r.db).
		Model(&booking.Payment{}).
		Select("SUM(amount)").
		Where("booking_id = ? AND status = ?", bookingID, booking.PaymentStatusCompleted).
		Scan(&total).Error; err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

// FindByLease finds all payments linked to a lease, newest first
func (r *GormPaymentRepository) FindByLease(ctx context.Context, leaseID uint) ([]booking.Payment, error) {
	var payments []booking.Payment
	if err := conn(ctx, r.db).
		Where("lease_id = ?", leaseID).
		Order("payment_date DESC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// SumCompletedByLease totals completed payments for a lease
func (r *GormPaymentRepository) SumCompletedByLease(ctx context.Context, leaseID uint) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	if err := conn(ctx, r.db).
		Model(&booking.Payment{}).
		Select("SUM(amount)").
		Where("lease_id = ? AND status = ?", leaseID, booking.PaymentStatusCompleted).
		Scan(&total).Error; err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

// FindAll finds all payments matching the filter
func (r *GormPaymentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]booking.Payment, error) {
	var payments []booking.Payment
	query := r.applyFilter(conn(ctx, r.db).Model(&booking.Payment{}), filter)

	if err := query.Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// Save creates or updates a payment
func (r *GormPaymentRepository) Save(ctx context.Context, payment *booking.Payment) error {
	return conn(ctx, r.db).Save(payment).Error
}

// Delete deletes a payment
func (r *GormPaymentRepository) Delete(ctx context.Context, id uint) error {
	result := conn(ctx, r.db).Delete(&booking.Payment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts payments matching the filter
func (r *GormPaymentRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(conn(ctx, r.db).Model(&booking.Payment{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormPaymentRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, PaymentSortFields, "payment_date")
	return query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))
}

func (r *GormPaymentRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "booking_id":
			query = query.Where("booking_id = ?", value)
		case "lease_id":
			query = query.Where("lease_id = ?", value)
		case "status":
			query = query.Where("status = ?", value)
		case "payment_method":
			query = query.Where("payment_method = ?", value)
		case "payment_type":
			query = query.Where("payment_type = ?", value)
		case "date_from":
			query = query.Where("payment_date >= ?", value)
		case "date_to":
			query = query.Where("payment_date < ?", value)
		}
	}
	return query
}

var _ booking.PaymentRepository = (*GormPaymentRepository)(nil)
