package booking

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/shared"
)

// BookingRepository defines persistence operations for bookings
type BookingRepository interface {
	shared.Repository[Booking]
	FindByTenant(ctx context.Context, tenantID uint) ([]Booking, error)
}

// PaymentRepository defines persistence operations for payments
type PaymentRepository interface {
	shared.Repository[Payment]
	FindByBooking(ctx context.Context, bookingID uint) ([]Payment, error)
	FindByLease(ctx context.Context, leaseID uint) ([]Payment, error)
	// SumCompletedByBooking returns the total of completed payments for a booking
	SumCompletedByBooking(ctx context.Context, bookingID uint) (decimal.Decimal, error)
	// SumCompletedByLease returns the total of completed payments linked to a lease
	SumCompletedByLease(ctx context.Context, leaseID uint) (decimal.Decimal, error)
}
