package booking

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/property"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/shared"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/tenancy"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// Booking represents a room reservation ahead of a lease
type Booking struct {
	shared.BaseEntity
	TenantID     uint               `gorm:"not null;index" json:"tenant_id"`
	Tenant       *tenancy.Tenant    `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	RoomID       uint               `gorm:"not null;index" json:"room_id"`
	Room         *property.Room     `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	PropertyID   uint               `gorm:"not null;index" json:"property_id"`
	Property     *property.Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
	BookingDate   time.Time               `gorm:"not null" json:"booking_date"`
	CheckInDate   time.Time               `gorm:"not null" json:"check_in_date"`
	CheckOutDate  *time.Time              `json:"check_out_date,omitempty"`
	Price         decimal.Decimal         `gorm:"type:numeric(10,2);not null;default:0" json:"price"`
	Status        BookingStatus           `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	PaymentStatus tenancy.PaymentStanding `gorm:"type:varchar(20);not null;default:'unpaid'" json:"payment_status"`
	Notes         string                  `gorm:"type:text" json:"notes"`
}

// TableName returns the table name for GORM
func (Booking) TableName() string {
	return "bookings"
}

// NewBooking creates a pending booking
func NewBooking(tenantID, roomID, propertyID uint, checkIn time.Time, price decimal.Decimal) (*Booking, error) {
	if tenantID == 0 {
		return nil, shared.NewDomainError("INVALID_TENANT", "Tenant ID is required")
	}
	if roomID == 0 {
		return nil, shared.NewDomainError("INVALID_ROOM", "Room ID is required")
	}
	if propertyID == 0 {
		return nil, shared.NewDomainError("INVALID_PROPERTY", "Property ID is required")
	}
	if checkIn.IsZero() {
		return nil, shared.NewDomainError("INVALID_CHECK_IN", "Check-in date is required")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	return &Booking{
		TenantID:      tenantID,
		RoomID:        roomID,
		PropertyID:    propertyID,
		BookingDate:   time.Now(),
		CheckInDate:   checkIn,
		Price:         price,
		Status:        BookingStatusPending,
		PaymentStatus: tenancy.PaymentStandingUnpaid,
	}, nil
}

// DerivePaymentStatus recomputes the booking's payment status from the
// total of its completed payments against the price.
func (b *Booking) DerivePaymentStatus(completedTotal decimal.Decimal) {
	switch {
	case completedTotal.IsZero() || completedTotal.IsNegative():
		b.PaymentStatus = tenancy.PaymentStandingUnpaid
	case completedTotal.GreaterThanOrEqual(b.Price):
		b.PaymentStatus = tenancy.PaymentStandingPaid
	default:
		b.PaymentStatus = tenancy.PaymentStandingPartial
	}
}

// Confirm moves a pending booking to confirmed
func (b *Booking) Confirm() error {
	if b.Status != BookingStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Only pending bookings can be confirmed")
	}
	b.Status = BookingStatusConfirmed
	return nil
}

// Cancel cancels a pending or confirmed booking
func (b *Booking) Cancel() error {
	if b.Status != BookingStatusPending && b.Status != BookingStatusConfirmed {
		return shared.NewDomainError("INVALID_STATE", "Only pending or confirmed bookings can be cancelled")
	}
	b.Status = BookingStatusCancelled
	return nil
}

// Complete closes out a confirmed booking
func (b *Booking) Complete(checkOut time.Time) error {
	if b.Status != BookingStatusConfirmed {
		return shared.NewDomainError("INVALID_STATE", "Only confirmed bookings can be completed")
	}
	b.Status = BookingStatusCompleted
	b.CheckOutDate = &checkOut
	return nil
}

// HoldsRoom reports whether the booking currently ties up its room
func (b *Booking) HoldsRoom() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}
