package booking

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/booking"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/shared"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/tenancy"
)

// PaymentService manages the payment ledger and keeps each booking's
// payment status, and the standing of any linked lease, in sync with
// its completed payments.
type PaymentService struct {
	paymentRepo booking.PaymentRepository
	bookingRepo booking.BookingRepository
	leaseRepo   tenancy.LeaseRepository
	tx          shared.TransactionManager
	logger      *zap.Logger
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	paymentRepo booking.PaymentRepository,
	bookingRepo booking.BookingRepository,
	leaseRepo tenancy.LeaseRepository,
	tx shared.TransactionManager,
	logger *zap.Logger,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		bookingRepo: bookingRepo,
		leaseRepo:   leaseRepo,
		tx:          tx,
		logger:      logger,
	}
}

// Create records a payment and recomputes the booking's payment status
func (s *PaymentService) Create(ctx context.Context, input CreatePaymentInput) (*booking.Payment, error) {
	if _, err := s.bookingRepo.FindByID(ctx, input.BookingID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("VALIDATION_ERROR", "Booking does not exist")
		}
		return nil, err
	}
	if input.LeaseID != nil {
		if _, err := s.leaseRepo.FindByID(ctx, *input.LeaseID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("VALIDATION_ERROR", "Lease does not exist")
			}
			return nil, err
		}
	}

	payment, err := booking.NewPayment(input.BookingID, input.Amount, input.PaymentDate, booking.PaymentMethod(input.PaymentMethod))
	if err != nil {
		return nil, err
	}
	payment.LeaseID = input.LeaseID
	if input.PaymentType != "" {
		payment.PaymentType = input.PaymentType
	}
	if input.Status != "" {
		if err := payment.SetStatus(booking.PaymentStatus(input.Status)); err != nil {
			return nil, err
		}
	}
	payment.ReferenceNo = input.ReferenceNo
	payment.Notes = input.Notes

	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		if err := s.paymentRepo.Save(ctx, payment); err != nil {
			return err
		}
		return s.refreshStandings(ctx, payment.BookingID, payment.LeaseID)
	})
	if err != nil {
		s.logger.Error("Failed to create payment",
			zap.Uint("booking_id", input.BookingID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Payment recorded",
		zap.Uint("payment_id", payment.ID),
		zap.Uint("booking_id", payment.BookingID),
		zap.String("status", string(payment.Status)))
	return payment, nil
}

// Get returns a payment by ID
func (s *PaymentService) Get(ctx context.Context, id uint) (*booking.Payment, error) {
	return s.paymentRepo.FindByID(ctx, id)
}

// List returns a page of payments
func (s *PaymentService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[booking.Payment], error) {
	items, err := s.paymentRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.paymentRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// ListByBooking returns all payments against a booking
func (s *PaymentService) ListByBooking(ctx context.Context, bookingID uint) ([]booking.Payment, error) {
	if _, err := s.bookingRepo.FindByID(ctx, bookingID); err != nil {
		return nil, err
	}
	return s.paymentRepo.FindByBooking(ctx, bookingID)
}

// ListByLease returns all payments linked to a lease
func (s *PaymentService) ListByLease(ctx context.Context, leaseID uint) ([]booking.Payment, error) {
	return s.paymentRepo.FindByLease(ctx, leaseID)
}

// Update applies the given changes to a payment and recomputes the
// booking's payment status. Moving a payment away from completed can
// downgrade paid back to partial or unpaid.
func (s *PaymentService) Update(ctx context.Context, id uint, input UpdatePaymentInput) (*booking.Payment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Amount != nil {
		if input.Amount.IsNegative() || input.Amount.IsZero() {
			return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be greater than zero")
		}
		payment.Amount = *input.Amount
	}
	if input.PaymentDate != nil {
		payment.PaymentDate = *input.PaymentDate
	}
	if input.PaymentMethod != nil {
		method := booking.PaymentMethod(*input.PaymentMethod)
		if err := booking.ValidatePaymentMethod(method); err != nil {
			return nil, err
		}
		payment.PaymentMethod = method
	}
	if input.PaymentType != nil {
		payment.PaymentType = *input.PaymentType
	}
	if input.Status != nil {
		if err := payment.SetStatus(booking.PaymentStatus(*input.Status)); err != nil {
			return nil, err
		}
	}
	if input.ReferenceNo != nil {
		payment.ReferenceNo = *input.ReferenceNo
	}
	if input.Notes != nil {
		payment.Notes = *input.Notes
	}

	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		if err := s.paymentRepo.Save(ctx, payment); err != nil {
			return err
		}
		return s.refreshStandings(ctx, payment.BookingID, payment.LeaseID)
	})
	if err != nil {
		s.logger.Error("Failed to update payment", zap.Uint("payment_id", id), zap.Error(err))
		return nil, err
	}
	return payment, nil
}

// Delete removes a payment and recomputes the booking's payment status
func (s *PaymentService) Delete(ctx context.Context, id uint) error {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		if err := s.paymentRepo.Delete(ctx, id); err != nil {
			return err
		}
		return s.refreshStandings(ctx, payment.BookingID, payment.LeaseID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("Payment deleted", zap.Uint("payment_id", id), zap.Uint("booking_id", payment.BookingID))
	return nil
}

// Summary reports a lease's rent charge against its completed
// payments
func (s *PaymentService) Summary(ctx context.Context, leaseID uint) (*PaymentSummary, error) {
	lease, err := s.leaseRepo.FindByID(ctx, leaseID)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.FindByLease(ctx, leaseID)
	if err != nil {
		return nil, err
	}
	completed, err := s.paymentRepo.SumCompletedByLease(ctx, leaseID)
	if err != nil {
		return nil, err
	}

	outstanding := lease.RentAmount.Sub(completed)
	if outstanding.IsNegative() {
		outstanding = decimal.Zero
	}
	return &PaymentSummary{
		LeaseID:        lease.ID,
		RentAmount:     lease.RentAmount,
		CompletedTotal: completed,
		Outstanding:    outstanding,
		PaymentStatus:  lease.PaymentStatus,
		PaymentCount:   len(payments),
	}, nil
}

// refreshStandings re-derives the booking's payment status and, when
// the payment is linked to a lease, that lease's standing as well.
func (s *PaymentService) refreshStandings(ctx context.Context, bookingID uint, leaseID *uint) error {
	if err := s.refreshBookingStatus(ctx, bookingID); err != nil {
		return err
	}
	if leaseID == nil {
		return nil
	}
	return s.refreshLeaseStanding(ctx, *leaseID)
}

func (s *PaymentService) refreshBookingStatus(ctx context.Context, bookingID uint) error {
	entry, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return err
	}
	completed, err := s.paymentRepo.SumCompletedByBooking(ctx, bookingID)
	if err != nil {
		return err
	}
	previous := entry.PaymentStatus
	entry.DerivePaymentStatus(completed)
	if entry.PaymentStatus == previous {
		return nil
	}
	return s.bookingRepo.Save(ctx, entry)
}

func (s *PaymentService) refreshLeaseStanding(ctx context.Context, leaseID uint) error {
	lease, err := s.leaseRepo.FindByID(ctx, leaseID)
	if err != nil {
		return err
	}
	completed, err := s.paymentRepo.SumCompletedByLease(ctx, leaseID)
	if err != nil {
		return err
	}
	previous := lease.PaymentStatus
	lease.DerivePaymentStatus(completed)
	if lease.PaymentStatus == previous {
		return nil
	}
	return s.leaseRepo.Save(ctx, lease)
}
