package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/shared"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/tenancy"
	"gorm.io/gorm"
)

// GormTenantRepository implements tenancy.TenantRepository using GORM
type GormTenantRepository struct {
	db *gorm.DB
}

// NewGormTenantRepository creates a new GormTenantRepository
func NewGormTenantRepository(db *gorm.DB) *GormTenantRepository {
	return &GormTenantRepository{db: db}
}

// FindByID finds a tenant by its ID, preloading the linked user
func (r *GormTenantRepository) FindByID(ctx context.Context, id uint) (*tenancy.Tenant, error) {
	var tenant tenancy.Tenant
	if err := conn(ctx, r.db).
		Preload("User").
		First(&tenant, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &tenant, nil
}

// FindByUserID finds a tenant by the linked user account
func (r *GormTenantRepository) FindByUserID(ctx context.Context, userID uint) (*tenancy.Tenant, error) {
	var tenant tenancy.Tenant
	if err := conn(ctx, r.db).
		Preload("User").
		Where("user_id = ?", userID).
		First(&tenant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &tenant, nil
}

// FindWithLeases finds a tenant with its lease history preloaded
func (r *GormTenantRepository) FindWithLeases(ctx context.Context, id uint) (*tenancy.Tenant, error) {
	var tenant tenancy.Tenant
	if err := conn(ctx, r.db).
		Preload("User").
		Preload("Leases", func(db *gorm.DB) *gorm.DB {
			return db.Order("lease_start_date DESC")
		}).
		First(&tenant, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &tenant, nil
}

// FindAll finds all tenants matching the filter
func (r *GormTenantRepository) FindAll(ctx context.Context, filter shared.Filter) ([]tenancy.Tenant, error) {
	var tenants []tenancy.Tenant
	query := r.applyFilter(conn(ctx, r.db).Model(&tenancy.Tenant{}).Preload("User"), filter)

	if err := query.Find(&tenants).Error; err != nil {
		return nil, err
	}
	return tenants, nil
}

// Save creates or updates a tenant
func (r *GormTenantRepository) Save(ctx context.Context, tenant *tenancy.Tenant) error {
	// Omit associations so a stale preloaded User is never written back
	return conn(ctx, r.db).Omit("User", "Leases").Save(tenant).Error
}

// Delete deletes a tenant
func (r *GormTenantRepository) Delete(ctx context.Context, id uint) error {
	result := conn(ctx, r.db).Delete(&tenancy.Tenant{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts tenants matching the filter
func (r *GormTenantRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(conn(ctx, r.db).Model(&tenancy.Tenant{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormTenantRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, TenantSortFields, "created_at")
	return query.Order("tenants." + orderBy + " " + ValidateSortOrder(filter.OrderDir))
}

func (r *GormTenantRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + strings.TrimSpace(filter.Search) + "%"
		query = query.
			Joins("JOIN users ON users.id = tenants.user_id").
			Where("users.name ILIKE ? OR users.email ILIKE ? OR tenants.phone ILIKE ?",
				searchPattern, searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("tenants.status = ?", value)
		case "user_id":
			query = query.Where("tenants.user_id = ?", value)
		}
	}

	return query
}

var _ tenancy.TenantRepository = (*GormTenantRepository)(nil)
