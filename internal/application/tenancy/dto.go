package tenancy

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/identity"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/tenancy"
)

// CreateTenantInput contains the fields for tenant creation
type CreateTenantInput struct {
	UserID                uint
	Phone                 string
	Occupation            string
	Company               string
	EmergencyContactName  string
	EmergencyContactPhone string
	IDProofType           string
	IDProofNumber         string
	MoveInDate            *time.Time
}

// UpdateTenantInput contains the mutable tenant fields
type UpdateTenantInput struct {
	Phone                 *string
	Occupation            *string
	Company               *string
	EmergencyContactName  *string
	EmergencyContactPhone *string
	IDProofType           *string
	IDProofNumber         *string
	MoveInDate            *time.Time
	MoveOutDate           *time.Time
	Status                *string
}

// CreateLeaseInput contains the fields for lease creation
type CreateLeaseInput struct {
	TenantID        uint
	RoomID          uint
	LeaseStartDate  time.Time
	LeaseEndDate    time.Time
	RentAmount      decimal.Decimal
	SecurityDeposit decimal.Decimal
	PaymentDueDay   int
	Status          string
	Notes           string
}

// UpdateLeaseInput contains the mutable lease fields. Tenant and room
// bindings are fixed for the life of a lease.
type UpdateLeaseInput struct {
	LeaseStartDate  *time.Time
	LeaseEndDate    *time.Time
	RentAmount      *decimal.Decimal
	SecurityDeposit *decimal.Decimal
	PaymentDueDay   *int
	Status          *string
	Notes           *string
}

// BulkAssignInput assigns several tenants to rooms in one shot
type BulkAssignInput struct {
	Assignments    []RoomAssignment
	LeaseStartDate time.Time
	LeaseEndDate   time.Time
	PaymentDueDay  int
}

// RoomAssignment pairs a tenant with a room for bulk assignment
type RoomAssignment struct {
	TenantID uint
	RoomID   uint
}

// BookTenantInput creates or reuses a user account plus tenant record
// and reserves a room with a pending lease, all in one operation.
type BookTenantInput struct {
	Name            string
	Email           string
	Phone           string
	RoomID          uint
	LeaseStartDate  time.Time
	LeaseEndDate    time.Time
	RentAmount      decimal.Decimal
	SecurityDeposit decimal.Decimal
}

// BookTenantResult reports the resolved user plus the created records.
// TemporaryPassword is only set when a new user account was created
// and is returned exactly once. The user's password hash never leaves
// the entity's JSON encoding.
type BookTenantResult struct {
	User              *identity.User  `json:"user"`
	Tenant            *tenancy.Tenant `json:"tenant"`
	Lease             *tenancy.Lease  `json:"lease"`
	UserCreated       bool            `json:"user_created"`
	TemporaryPassword string          `json:"temporary_password,omitempty"`
}
