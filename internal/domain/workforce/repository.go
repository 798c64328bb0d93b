package workforce

import (
	"context"

	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/shared"
)

// EmployeeRepository defines persistence operations for employees
type EmployeeRepository interface {
	shared.Repository[Employee]
	FindByEmail(ctx context.Context, email string) (*Employee, error)
	FindWithProperties(ctx context.Context, id uint) (*Employee, error)
}

// VendorRepository defines persistence operations for vendors
type VendorRepository interface {
	shared.Repository[Vendor]
}

// PurchaseRepository defines persistence operations for purchases
type PurchaseRepository interface {
	shared.Repository[Purchase]
}
