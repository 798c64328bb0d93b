package property

import (
	"strings"

	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/shared"
)

// PropertyStatus represents the status of a property
type PropertyStatus string

const (
	PropertyStatusActive   PropertyStatus = "active"
	PropertyStatusInactive PropertyStatus = "inactive"
)

// Property represents a building managed by the company
type Property struct {
	shared.BaseEntity
	Name         string         `gorm:"type:varchar(200);not null" json:"name"`
	Address      string         `gorm:"type:text;not null" json:"address"`
	City         string         `gorm:"type:varchar(100);not null" json:"city"`
	State        string         `gorm:"type:varchar(100)" json:"state"`
	Country      string         `gorm:"type:varchar(100);default:'India'" json:"country"`
	Pincode      string         `gorm:"type:varchar(20)" json:"pincode"`
	ContactEmail string         `gorm:"type:varchar(200)" json:"contact_email"`
	ContactPhone string         `gorm:"type:varchar(20)" json:"contact_phone"`
	TotalRooms   int            `gorm:"not null;default:0" json:"total_rooms"`
	Status       PropertyStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
}

// TableName returns the table name for GORM
func (Property) TableName() string {
	return "properties"
}

// NewProperty creates a new property
func NewProperty(name, address, city string) (*Property, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Property name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Property name cannot exceed 200 characters")
	}
	if strings.TrimSpace(address) == "" {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Address cannot be empty")
	}
	if strings.TrimSpace(city) == "" {
		return nil, shared.NewDomainError("INVALID_CITY", "City cannot be empty")
	}

	return &Property{
		Name:    name,
		Address: address,
		City:    city,
		Country: "India",
		Status:  PropertyStatusActive,
	}, nil
}

// Activate marks the property active
func (p *Property) Activate() {
	p.Status = PropertyStatusActive
}

// Deactivate marks the property inactive
func (p *Property) Deactivate() {
	p.Status = PropertyStatusInactive
}

// IsActive returns true if the property is active
func (p *Property) IsActive() bool {
	return p.Status == PropertyStatusActive
}
