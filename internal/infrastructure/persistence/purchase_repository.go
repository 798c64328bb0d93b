package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/shared"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/workforce"
	"gorm.io/gorm"
)

// GormPurchaseRepository implements workforce.PurchaseRepository using GORM
type GormPurchaseRepository struct {
	db *gorm.DB
}

// NewGormPurchaseRepository creates a new GormPurchaseRepository
func NewGormPurchaseRepository(db *gorm.DB) *GormPurchaseRepository {
	return &GormPurchaseRepository{db: db}
}

// FindByID finds a purchase by its ID
func (r *GormPurchaseRepository) FindByID(ctx context.Context, id uint) (*workforce.Purchase, error) {
	var purchase workforce.Purchase
	if err := conn(ctx, r.db).First(&purchase, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &purchase, nil
}

// FindAll finds all purchases matching the filter
func (r *GormPurchaseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]workforce.Purchase, error) {
	var purchases []workforce.Purchase
	query := r.applyFilter(conn(ctx, r.db).Model(&workforce.Purchase{}), filter)

	if err := query.Find(&purchases).Error; err != nil {
		return nil, err
	}
	return purchases, nil
}

// Save creates or updates a purchase
func (r *GormPurchaseRepository) Save(ctx context.Context, purchase *workforce.Purchase) error {
	return conn(ctx, r.db).Save(purchase).Error
}

// Delete deletes a purchase
func (r *GormPurchaseRepository) Delete(ctx context.Context, id uint) error {
	result := conn(ctx, r.db).Delete(&workforce.Purchase{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts purchases matching the filter
func (r *GormPurchaseRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(conn(ctx, r.db).Model(&workforce.Purchase{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormPurchaseRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, PurchaseSortFields, "purchase_date")
	return query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))
}

func (r *GormPurchaseRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + strings.TrimSpace(filter.Search) + "%"
		query = query.Where("item_name ILIKE ?", searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "property_id":
			query = query.Where("property_id = ?", value)
		case "vendor_id":
			query = query.Where("vendor_id = ?", value)
		case "category":
			query = query.Where("category = ?", value)
		case "priority":
			query = query.Where("priority = ?", value)
		case "status":
			query = query.Where("status = ?", value)
		case "month":
			query = query.Where("EXTRACT(MONTH FROM purchase_date) = ?", value)
		case "year":
			query = query.Where("EXTRACT(YEAR FROM purchase_date) = ?", value)
		}
	}

	return query
}

var _ workforce.PurchaseRepository = (*GormPurchaseRepository)(nil)
