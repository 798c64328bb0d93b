package tenancy

import (
	"time"

	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/shared"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/identity"
)

// TenantStatus represents the residency status of a tenant
type TenantStatus string

const (
	TenantStatusActive   TenantStatus = "active"
	TenantStatusNotice   TenantStatus = "notice"
	TenantStatusMovedOut TenantStatus = "moved_out"
)

// Tenant represents a person renting rooms. Each tenant is backed by a
// login account; the link is one-to-one on user_id.
type Tenant struct {
	shared.BaseEntity
	UserID                uint           `gorm:"not null;uniqueIndex" json:"user_id"`
	User                  *identity.User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Phone                 string         `gorm:"type:varchar(20)" json:"phone"`
	Occupation            string         `gorm:"type:varchar(100)" json:"occupation"`
	Company               string         `gorm:"type:varchar(200)" json:"company"`
	EmergencyContactName  string         `gorm:"type:varchar(100)" json:"emergency_contact_name"`
	EmergencyContactPhone string         `gorm:"type:varchar(20)" json:"emergency_contact_phone"`
	IDProofType           string         `gorm:"type:varchar(50)" json:"id_proof_type"`
	IDProofNumber         string         `gorm:"type:varchar(100)" json:"id_proof_number"`
	MoveInDate            *time.Time     `json:"move_in_date,omitempty"`
	MoveOutDate           *time.Time     `json:"move_out_date,omitempty"`
	Status                TenantStatus   `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	Leases                []Lease        `gorm:"foreignKey:TenantID" json:"leases,omitempty"`
}

// TableName returns the table name for GORM
func (Tenant) TableName() string {
	return "tenants"
}

// NewTenant creates a tenant record for a user account
func NewTenant(userID uint) (*Tenant, error) {
	if userID == 0 {
		return nil, shared.NewDomainError("INVALID_USER", "User ID is required")
	}
	return &Tenant{
		UserID: userID,
		Status: TenantStatusActive,
	}, nil
}

// MoveIn records the move-in date
func (t *Tenant) MoveIn(date time.Time) {
	t.MoveInDate = &date
	t.Status = TenantStatusActive
}

// MoveOut records the move-out date and closes the residency
func (t *Tenant) MoveOut(date time.Time) {
	t.MoveOutDate = &date
	t.Status = TenantStatusMovedOut
}
