package workforce

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateEmployeeInput contains the fields for employee creation
type CreateEmployeeInput struct {
	Name        string
	Email       string
	Phone       string
	Designation string
	Department  string
	Salary      decimal.Decimal
	JoinDate    time.Time
	Properties  []PropertyAssignment
}

// UpdateEmployeeInput contains the mutable employee fields. A nil
// Properties slice leaves the assignments untouched.
type UpdateEmployeeInput struct {
	Name        *string
	Phone       *string
	Designation *string
	Department  *string
	Salary      *decimal.Decimal
	Status      *string
	Properties  []PropertyAssignment
}

// PropertyAssignment assigns an employee to a property
type PropertyAssignment struct {
	PropertyID uint
	IsPrimary  bool
}

// CreateVendorInput contains the fields for vendor creation
type CreateVendorInput struct {
	CompanyName   string
	ContactPerson string
	Email         string
	Phone         string
	ServiceType   string
	Address       string
	PaymentTerms  string
	Notes         string
}

// UpdateVendorInput contains the mutable vendor fields
type UpdateVendorInput struct {
	CompanyName   *string
	ContactPerson *string
	Email         *string
	Phone         *string
	ServiceType   *string
	Address       *string
	PaymentTerms  *string
	Status        *string
	Notes         *string
}

// CreatePurchaseInput contains the fields for purchase creation
type CreatePurchaseInput struct {
	PropertyID   uint
	VendorID     *uint
	ItemName     string
	Category     string
	Quantity     int
	UnitPrice    decimal.Decimal
	PurchaseDate time.Time
	Priority     string
	Notes        string
}

// UpdatePurchaseInput contains the mutable purchase fields. Changing
// quantity or unit price recomputes the total.
type UpdatePurchaseInput struct {
	VendorID     *uint
	ItemName     *string
	Category     *string
	Quantity     *int
	UnitPrice    *decimal.Decimal
	PurchaseDate *time.Time
	Priority     *string
	Status       *string
	Notes        *string
}
