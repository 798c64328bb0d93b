package tenancy

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/property"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/shared"
)

// LeaseStatus represents the lifecycle status of a lease
type LeaseStatus string

const (
	LeaseStatusPending    LeaseStatus = "pending"
	LeaseStatusActive     LeaseStatus = "active"
	LeaseStatusExpired    LeaseStatus = "expired"
	LeaseStatusTerminated LeaseStatus = "terminated"
)

// PaymentStanding is derived from the lease's completed payments
type PaymentStanding string

const (
	PaymentStandingUnpaid  PaymentStanding = "unpaid"
	PaymentStandingPartial PaymentStanding = "partial"
	PaymentStandingPaid    PaymentStanding = "paid"
)

// Lease binds a tenant to a room for a period
type Lease struct {
	shared.BaseEntity
	TenantID        uint            `gorm:"not null;index" json:"tenant_id"`
	Tenant          *Tenant         `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	RoomID          uint            `gorm:"not null;index" json:"room_id"`
	Room            *property.Room  `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	LeaseStartDate  time.Time       `gorm:"not null" json:"lease_start_date"`
	LeaseEndDate    time.Time       `gorm:"not null" json:"lease_end_date"`
	RentAmount      decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"rent_amount"`
	SecurityDeposit decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"security_deposit"`
	PaymentDueDay   int             `gorm:"not null;default:1" json:"payment_due_day"`
	Status          LeaseStatus     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	PaymentStatus   PaymentStanding `gorm:"type:varchar(20);not null;default:'unpaid'" json:"payment_status"`
	Notes           string          `gorm:"type:text" json:"notes"`
}

// TableName returns the table name for GORM
func (Lease) TableName() string {
	return "tenant_leases"
}

// NewLease creates a lease. Status starts pending unless activated by
// the caller.
func NewLease(tenantID, roomID uint, start, end time.Time, rent decimal.Decimal) (*Lease, error) {
	if tenantID == 0 {
		return nil, shared.NewDomainError("INVALID_TENANT", "Tenant ID is required")
	}
	if roomID == 0 {
		return nil, shared.NewDomainError("INVALID_ROOM", "Room ID is required")
	}
	if start.IsZero() || end.IsZero() {
		return nil, shared.NewDomainError("INVALID_PERIOD", "Lease start and end dates are required")
	}
	if !end.After(start) {
		return nil, shared.NewDomainError("INVALID_PERIOD", "Lease end date must be after the start date")
	}
	if rent.IsNegative() || rent.IsZero() {
		return nil, shared.NewDomainError("INVALID_RENT", "Rent amount must be greater than zero")
	}

	return &Lease{
		TenantID:        tenantID,
		RoomID:          roomID,
		LeaseStartDate:  start,
		LeaseEndDate:    end,
		RentAmount:      rent,
		SecurityDeposit: decimal.Zero,
		PaymentDueDay:   1,
		Status:          LeaseStatusPending,
		PaymentStatus:   PaymentStandingUnpaid,
	}, nil
}

// IsEditable reports whether the lease may be updated or deleted.
// Only active leases whose end date is still in the future qualify.
func (l *Lease) IsEditable(now time.Time) bool {
	return l.Status == LeaseStatusActive && l.LeaseEndDate.After(now)
}

// Activate moves a pending lease to active
func (l *Lease) Activate() error {
	if l.Status != LeaseStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Only pending leases can be activated")
	}
	l.Status = LeaseStatusActive
	return nil
}

// Terminate ends the lease early
func (l *Lease) Terminate() error {
	if l.Status == LeaseStatusTerminated || l.Status == LeaseStatusExpired {
		return shared.NewDomainError("INVALID_STATE", "Lease is already closed")
	}
	l.Status = LeaseStatusTerminated
	return nil
}

// DerivePaymentStatus recomputes the standing from the sum of
// completed payments against the rent charge. The compare is exact.
func (l *Lease) DerivePaymentStatus(completedTotal decimal.Decimal) {
	switch {
	case completedTotal.IsZero() || completedTotal.IsNegative():
		l.PaymentStatus = PaymentStandingUnpaid
	case completedTotal.GreaterThanOrEqual(l.RentAmount):
		l.PaymentStatus = PaymentStandingPaid
	default:
		l.PaymentStatus = PaymentStandingPartial
	}
}

// ValidateStatus checks a lease status value
func ValidateStatus(s LeaseStatus) error {
	switch s {
	case LeaseStatusPending, LeaseStatusActive, LeaseStatusExpired, LeaseStatusTerminated:
		return nil
	default:
		return shared.NewDomainError("INVALID_STATUS", "Invalid lease status")
	}
}
