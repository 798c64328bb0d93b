package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/shared"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/workforce"
	"gorm.io/gorm"
)

// GormEmployeeRepository implements workforce.EmployeeRepository using GORM
type GormEmployeeRepository struct {
	db *gorm.DB
}

// NewGormEmployeeRepository creates a new GormEmployeeRepository
func NewGormEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

// FindByID finds an employee by its ID
func (r *GormEmployeeRepository) FindByID(ctx context.Context, id uint) (*workforce.Employee, error) {
	var employee workforce.Employee
	if err := conn(ctx, r.db).First(&employee, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &employee, nil
}

// FindByEmail finds an employee by email
func (r *GormEmployeeRepository) FindByEmail(ctx context.Context, email string) (*workforce.Employee, error) {
	var employee workforce.Employee
	if err := conn(ctx, r.db).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &employee, nil
}

// FindWithProperties finds an employee with property assignments preloaded
func (r *GormEmployeeRepository) FindWithProperties(ctx context.Context, id uint) (*workforce.Employee, error) {
	var employee workforce.Employee
	if err := conn(ctx, r.db).
		Preload("Properties").
		First(&employee, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &employee, nil
}

// FindAll finds all employees matching the filter
func (r *GormEmployeeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]workforce.Employee, error) {
	var employees []workforce.Employee
	query := r.applyFilter(conn(ctx, r.db).Model(&workforce.Employee{}).Preload("Properties"), filter)

	if err := query.Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

// Save creates or updates an employee with its property assignments
func (r *GormEmployeeRepository) Save(ctx context.Context, employee *workforce.Employee) error {
	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Properties").Save(employee).Error; err != nil {
			return err
		}
		if employee.Properties == nil {
			return nil
		}
		// Replace assignments wholesale so removals take effect
		if err := tx.Where("employee_id = ?", employee.ID).
			Delete(&workforce.EmployeeProperty{}).Error; err != nil {
			return err
		}
		if len(employee.Properties) == 0 {
			return nil
		}
		for i := range employee.Properties {
			employee.Properties[i].ID = 0
			employee.Properties[i].EmployeeID = employee.ID
		}
		return tx.Create(&employee.Properties).Error
	})
}

// Delete deletes an employee and its property assignments
func (r *GormEmployeeRepository) Delete(ctx context.Context, id uint) error {
	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("employee_id = ?", id).
			Delete(&workforce.EmployeeProperty{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&workforce.Employee{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Count counts employees matching the filter
func (r *GormEmployeeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(conn(ctx, r.db).Model(&workforce.Employee{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormEmployeeRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, EmployeeSortFields, "name")
	return query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))
}

func (r *GormEmployeeRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + strings.TrimSpace(filter.Search) + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ? OR designation ILIKE ?",
			searchPattern, searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "department":
			query = query.Where("department = ?", value)
		case "designation":
			query = query.Where("designation = ?", value)
		case "status":
			query = query.Where("status = ?", value)
		case "is_app_user":
			query = query.Where("is_app_user = ?", value)
		case "property_id":
			query = query.Where(
				"id IN (SELECT employee_id FROM employee_properties WHERE property_id = ?)", value)
		}
	}

	return query
}

var _ workforce.EmployeeRepository = (*GormEmployeeRepository)(nil)
