package workforce

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/property"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/shared"
)

// PurchasePriority orders procurement requests
type PurchasePriority string

const (
	PurchasePriorityLow    PurchasePriority = "low"
	PurchasePriorityMedium PurchasePriority = "medium"
	PurchasePriorityHigh   PurchasePriority = "high"
	PurchasePriorityUrgent PurchasePriority = "urgent"
)

// PurchaseStatus represents the procurement status
type PurchaseStatus string

const (
	PurchaseStatusPending   PurchaseStatus = "pending"
	PurchaseStatusOrdered   PurchaseStatus = "ordered"
	PurchaseStatusReceived  PurchaseStatus = "received"
	PurchaseStatusCancelled PurchaseStatus = "cancelled"
)

// Purchase represents a procurement entry for a property
type Purchase struct {
	shared.BaseEntity
	PropertyID   uint               `gorm:"not null;index" json:"property_id"`
	Property     *property.Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
	VendorID     *uint              `gorm:"index" json:"vendor_id,omitempty"`
	Vendor       *Vendor            `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
	ItemName     string             `gorm:"type:varchar(200);not null" json:"item_name"`
	Category     string             `gorm:"type:varchar(100);not null;index" json:"category"`
	Quantity     int                `gorm:"not null;default:1" json:"quantity"`
	UnitPrice    decimal.Decimal    `gorm:"type:numeric(10,2);not null" json:"unit_price"`
	TotalAmount  decimal.Decimal    `gorm:"type:numeric(12,2);not null" json:"total_amount"`
	PurchaseDate time.Time          `gorm:"not null;index" json:"purchase_date"`
	Priority     PurchasePriority   `gorm:"type:varchar(20);not null;default:'medium'" json:"priority"`
	Status       PurchaseStatus     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Notes        string             `gorm:"type:text" json:"notes"`
}

// TableName returns the table name for GORM
func (Purchase) TableName() string {
	return "purchases"
}

// NewPurchase creates a purchase entry. The total is derived from
// quantity and unit price.
func NewPurchase(propertyID uint, itemName, category string, quantity int, unitPrice decimal.Decimal, date time.Time) (*Purchase, error) {
	if propertyID == 0 {
		return nil, shared.NewDomainError("INVALID_PROPERTY", "Property ID is required")
	}
	if strings.TrimSpace(itemName) == "" {
		return nil, shared.NewDomainError("INVALID_ITEM", "Item name cannot be empty")
	}
	if strings.TrimSpace(category) == "" {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Category cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be greater than zero")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}
	if date.IsZero() {
		date = time.Now()
	}

	return &Purchase{
		PropertyID:   propertyID,
		ItemName:     itemName,
		Category:     category,
		Quantity:     quantity,
		UnitPrice:    unitPrice,
		TotalAmount:  unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
		PurchaseDate: date,
		Priority:     PurchasePriorityMedium,
		Status:       PurchaseStatusPending,
	}, nil
}

// Reprice updates quantity and unit price, recomputing the total
func (p *Purchase) Reprice(quantity int, unitPrice decimal.Decimal) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be greater than zero")
	}
	if unitPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}
	p.Quantity = quantity
	p.UnitPrice = unitPrice
	p.TotalAmount = unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	return nil
}

// ValidatePriority checks a purchase priority value
func ValidatePriority(p PurchasePriority) error {
	switch p {
	case PurchasePriorityLow, PurchasePriorityMedium, PurchasePriorityHigh, PurchasePriorityUrgent:
		return nil
	default:
		return shared.NewDomainError("INVALID_PRIORITY", "Invalid purchase priority")
	}
}
