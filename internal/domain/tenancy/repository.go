package tenancy

import (
	"context"

	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/shared"
)

// TenantRepository defines persistence operations for tenants
type TenantRepository interface {
	shared.Repository[Tenant]
	FindByUserID(ctx context.Context, userID uint) (*Tenant, error)
	FindWithLeases(ctx context.Context, id uint) (*Tenant, error)
}

// LeaseRepository defines persistence operations for leases
type LeaseRepository interface {
	shared.Repository[Lease]
	FindByTenant(ctx context.Context, tenantID uint) ([]Lease, error)
	FindByRoom(ctx context.Context, roomID uint) ([]Lease, error)
}
