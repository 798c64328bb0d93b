package workforce

import (
	"strings"

	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/shared"
)

// VendorStatus represents the engagement status of a vendor
type VendorStatus string

const (
	VendorStatusActive      VendorStatus = "active"
	VendorStatusInactive    VendorStatus = "inactive"
	VendorStatusBlacklisted VendorStatus = "blacklisted"
)

// Vendor represents an external service provider
type Vendor struct {
	shared.BaseEntity
	CompanyName   string       `gorm:"type:varchar(200);not null" json:"company_name"`
	ContactPerson string       `gorm:"type:varchar(100)" json:"contact_person"`
	Email         string       `gorm:"type:varchar(200)" json:"email"`
	Phone         string       `gorm:"type:varchar(20)" json:"phone"`
	ServiceType   string       `gorm:"type:varchar(100);not null;index" json:"service_type"`
	Address       string       `gorm:"type:text" json:"address"`
	PaymentTerms  string       `gorm:"type:varchar(100)" json:"payment_terms"`
	Status        VendorStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	Notes         string       `gorm:"type:text" json:"notes"`
}

// TableName returns the table name for GORM
func (Vendor) TableName() string {
	return "vendors"
}

// NewVendor creates a vendor record
func NewVendor(companyName, serviceType string) (*Vendor, error) {
	if strings.TrimSpace(companyName) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Company name cannot be empty")
	}
	if strings.TrimSpace(serviceType) == "" {
		return nil, shared.NewDomainError("INVALID_SERVICE_TYPE", "Service type cannot be empty")
	}

	return &Vendor{
		CompanyName: companyName,
		ServiceType: serviceType,
		Status:      VendorStatusActive,
	}, nil
}

// Blacklist marks the vendor as not to be engaged
func (v *Vendor) Blacklist() {
	v.Status = VendorStatusBlacklisted
}
