package booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/tenancy"
)

// CreateBookingInput contains the fields for booking creation
type CreateBookingInput struct {
	TenantID    uint
	RoomID      uint
	PropertyID  uint
	CheckInDate time.Time
	Price       decimal.Decimal
	Notes       string
}

// UpdateBookingInput contains the mutable booking fields
type UpdateBookingInput struct {
	CheckInDate  *time.Time
	CheckOutDate *time.Time
	Price        *decimal.Decimal
	Status       *string
	Notes        *string
}

// CreatePaymentInput contains the fields for payment creation
type CreatePaymentInput struct {
	BookingID     uint
	LeaseID       *uint
	Amount        decimal.Decimal
	PaymentDate   time.Time
	PaymentMethod string
	PaymentType   string
	Status        string
	ReferenceNo   string
	Notes         string
}

// UpdatePaymentInput contains the mutable payment fields
type UpdatePaymentInput struct {
	Amount        *decimal.Decimal
	PaymentDate   *time.Time
	PaymentMethod *string
	PaymentType   *string
	Status        *string
	ReferenceNo   *string
	Notes         *string
}

// PaymentSummary reports a lease's charge against its completed
// payments
type PaymentSummary struct {
	LeaseID        uint                    `json:"lease_id"`
	RentAmount     decimal.Decimal         `json:"rent_amount"`
	CompletedTotal decimal.Decimal         `json:"completed_total"`
	Outstanding    decimal.Decimal         `json:"outstanding"`
	PaymentStatus  tenancy.PaymentStanding `json:"payment_status"`
	PaymentCount   int                     `json:"payment_count"`
}
