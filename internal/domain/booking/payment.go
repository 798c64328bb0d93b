package booking

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/shared"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/tenancy"
)

// PaymentStatus represents the settlement status of a payment
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// PaymentMethod values mirror what the office accepts
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodUPI          PaymentMethod = "upi"
	PaymentMethodCheque       PaymentMethod = "cheque"
	PaymentMethodCard         PaymentMethod = "card"
)

// Payment is a ledger entry against a booking. Only completed payments
// count toward the booking's payment status. A rent payment may also
// point at the lease it settles, which keeps the lease's standing in
// sync too.
type Payment struct {
	shared.BaseEntity
	BookingID     uint            `gorm:"not null;index" json:"booking_id"`
	Booking       *Booking        `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
	LeaseID       *uint           `gorm:"index" json:"lease_id,omitempty"`
	Lease         *tenancy.Lease  `gorm:"foreignKey:LeaseID" json:"lease,omitempty"`
	Amount        decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"amount"`
	PaymentDate   time.Time       `gorm:"not null" json:"payment_date"`
	PaymentMethod PaymentMethod   `gorm:"type:varchar(20);not null;default:'cash'" json:"payment_method"`
	PaymentType   string          `gorm:"type:varchar(50);not null;default:'rent'" json:"payment_type"`
	Status        PaymentStatus   `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	ReferenceNo   string          `gorm:"type:varchar(100)" json:"reference_no"`
	Notes         string          `gorm:"type:text" json:"notes"`
}

// TableName returns the table name for GORM
func (Payment) TableName() string {
	return "booking_payments"
}

// NewPayment creates a payment entry
func NewPayment(bookingID uint, amount decimal.Decimal, date time.Time, method PaymentMethod) (*Payment, error) {
	if bookingID == 0 {
		return nil, shared.NewDomainError("INVALID_BOOKING", "Booking ID is required")
	}
	if amount.IsNegative() || amount.IsZero() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be greater than zero")
	}
	if date.IsZero() {
		date = time.Now()
	}
	if err := ValidatePaymentMethod(method); err != nil {
		return nil, err
	}

	return &Payment{
		BookingID:     bookingID,
		Amount:        amount,
		PaymentDate:   date,
		PaymentMethod: method,
		PaymentType:   "rent",
		Status:        PaymentStatusPending,
	}, nil
}

// IsCompleted reports whether this payment counts toward the
// booking's payment status
func (p *Payment) IsCompleted() bool {
	return p.Status == PaymentStatusCompleted
}

// SetStatus changes the settlement status
func (p *Payment) SetStatus(s PaymentStatus) error {
	if err := ValidatePaymentStatus(s); err != nil {
		return err
	}
	p.Status = s
	return nil
}

// ValidatePaymentStatus checks a payment status value
func ValidatePaymentStatus(s PaymentStatus) error {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusRefunded:
		return nil
	default:
		return shared.NewDomainError("INVALID_STATUS", "Invalid payment status")
	}
}

// ValidatePaymentMethod checks a payment method value
func ValidatePaymentMethod(m PaymentMethod) error {
	switch m {
	case PaymentMethodCash, PaymentMethodBankTransfer, PaymentMethodUPI, PaymentMethodCheque, PaymentMethodCard:
		return nil
	default:
		return shared.NewDomainError("INVALID_METHOD", "Invalid payment method")
	}
}
