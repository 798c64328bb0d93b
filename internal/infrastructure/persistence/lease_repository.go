package persistence

import (
	"context"
	"errors"

	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/shared"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/tenancy"
	"gorm.io/gorm"
)

// GormLeaseRepository implements tenancy.LeaseRepository using GORM
type GormLeaseRepository struct {
	db *gorm.DB
}

// NewGormLeaseRepository creates a new GormLeaseRepository
func NewGormLeaseRepository(db *gorm.DB) *GormLeaseRepository {
	return &GormLeaseRepository{db: db}
}

// FindByID finds a lease by its ID
func (r *GormLeaseRepository) FindByID(ctx context.Context, id uint) (*tenancy.Lease, error) {
	var lease tenancy.Lease
	if err := conn(ctx, r.db).First(&lease, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &lease, nil
}

// FindByTenant finds all leases for a tenant, newest first
func (r *GormLeaseRepository) FindByTenant(ctx context.Context, tenantID uint) ([]tenancy.Lease, error) {
	var leases []tenancy.Lease
	if err := conn(ctx, r.db).
		Where("tenant_id = ?", tenantID).
		Order("lease_start_date DESC").
		Find(&leases).Error; err != nil {
		return nil, err
	}
	return leases, nil
}

// FindByRoom finds all leases for a room, newest first
func (r *GormLeaseRepository) FindByRoom(ctx context.Context, roomID uint) ([]tenancy.Lease, error) {
	var leases []tenancy.Lease
	if err := conn(ctx, r.db).
		Where("room_id = ?", roomID).
		Order("lease_start_date DESC").
		Find(&leases).Error; err != nil {
		return nil, err
	}
	return leases, nil
}

// FindAll finds all leases matching the filter
func (r *GormLeaseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]tenancy.Lease, error) {
	var leases []tenancy.Lease
	query := r.applyFilter(conn(ctx, r.db).Model(&tenancy.Lease{}), filter)

	if err := query.Find(&leases).Error; err != nil {
		return nil, err
	}
	return leases, nil
}

// Save creates or updates a lease
func (r *GormLeaseRepository) Save(ctx context.Context, lease *tenancy.Lease) error {
	return conn(ctx, r.db).Save(lease).Error
}

// Delete deletes a lease
func (r *GormLeaseRepository) Delete(ctx context.Context, id uint) error {
	result := conn(ctx, r.db).Delete(&tenancy.Lease{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts leases matching the filter
func (r *GormLeaseRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(conn(ctx, r.db).Model(&tenancy.Lease{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormLeaseRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, LeaseSortFields, "lease_start_date")
	return query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))
}

func (r *GormLeaseRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "tenant_id":
			query = query.Where("tenant_id = ?", value)
		case "room_id":
			query = query.Where("room_id = ?", value)
		case "status":
			query = query.Where("status = ?", value)
		case "payment_status":
			query = query.Where("payment_status = ?", value)
		}
	}
	return query
}

var _ tenancy.LeaseRepository = (*GormLeaseRepository)(nil)
