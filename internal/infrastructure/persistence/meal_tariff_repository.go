package persistence

import (
	"context"
	"errors"

	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/property"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/shared"
	"gorm.io/gorm"
)

// GormMealTariffRepository implements property.MealTariffRepository using GORM
type GormMealTariffRepository struct {
	db *gorm.DB
}

// NewGormMealTariffRepository creates a new GormMealTariffRepository
func NewGormMealTariffRepository(db *gorm.DB) *GormMealTariffRepository {
	return &GormMealTariffRepository{db: db}
}

// FindByID finds a meal tariff by its ID
func (r *GormMealTariffRepository) FindByID(ctx context.Context, id uint) (*property.MealTariff, error) {
	var tariff property.MealTariff
	if err := conn(ctx, r.db).First(&tariff, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &tariff, nil
}

// FindByProperty finds the meal tariff for a property
func (r *GormMealTariffRepository) FindByProperty(ctx context.Context, propertyID uint) (*property.MealTariff, error) {
	var tariff property.MealTariff
	if err := conn(ctx, r.db).
		Where("property_id = ?", propertyID).
		First(&tariff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &tariff, nil
}

// ExistsForProperty checks if a tariff already exists for a property
func (r *GormMealTariffRepository) ExistsForProperty(ctx context.Context, propertyID uint) (bool, error) {
	var count int64
	if err := conn(ctx, r.db).
		Model(&property.MealTariff{}).
		Where("property_id = ?", propertyID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindAll finds all tariffs matching the filter
func (r *GormMealTariffRepository) FindAll(ctx context.Context, filter shared.Filter) ([]property.MealTariff, error) {
	var tariffs []property.MealTariff
	query := conn(ctx, r.db).Model(&property.MealTariff{})

	for key, value := range filter.Filters {
		if key == "property_id" {
			query = query.Where("property_id = ?", value)
		}
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if err := query.Order("property_id ASC").Find(&tariffs).Error; err != nil {
		return nil, err
	}
	return tariffs, nil
}

// Save creates or updates a tariff
func (r *GormMealTariffRepository) Save(ctx context.Context, tariff *property.MealTariff) error {
	return conn(ctx, r.db).Save(tariff).Error
}

// Delete deletes a tariff
func (r *GormMealTariffRepository) Delete(ctx context.Context, id uint) error {
	result := conn(ctx, r.db).Delete(&property.MealTariff{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts tariffs matching the filter
func (r *GormMealTariffRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := conn(ctx, r.db).Model(&property.MealTariff{})
	for key, value := range filter.Filters {
		if key == "property_id" {
			query = query.Where("property_id = ?", value)
		}
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

var _ property.MealTariffRepository = (*GormMealTariffRepository)(nil)
