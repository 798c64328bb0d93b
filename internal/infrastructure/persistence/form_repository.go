package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/identity"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/shared"
	"gorm.io/gorm"
)

// GormFormRepository implements identity.FormRepository using GORM
type GormFormRepository struct {
	db *gorm.DB
}

// NewGormFormRepository creates a new GormFormRepository
func NewGormFormRepository(db *gorm.DB) *GormFormRepository {
	return &GormFormRepository{db: db}
}

// FindByID finds a form by its ID
func (r *GormFormRepository) FindByID(ctx context.Context, id uint) (*identity.FormMaster, error) {
	var form identity.FormMaster
	if err := conn(ctx, r.db).First(&form, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &form, nil
}

// FindByPageURL finds a form by its page URL
func (r *GormFormRepository) FindByPageURL(ctx context.Context, pageURL string) (*identity.FormMaster, error) {
	var form identity.FormMaster
	if err := conn(ctx, r.db).
		Where("page_url = ?", pageURL).
		First(&form).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &form, nil
}

// FindAll finds all forms matching the filter
func (r *GormFormRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.FormMaster, error) {
	var forms []identity.FormMaster
	query := conn(ctx, r.db).Model(&identity.FormMaster{})

	if filter.Search != "" {
		searchPattern := "%" + strings.TrimSpace(filter.Search) + "%"
		query = query.Where("form_name ILIKE ? OR menu_group ILIKE ?", searchPattern, searchPattern)
	}
	for key, value := range filter.Filters {
		switch key {
		case "is_active":
			query = query.Where("is_active = ?", value)
		case "menu_group":
			query = query.Where("menu_group = ?", value)
		}
	}

	// Menu ordering is stable regardless of filter
	if err := query.Order("menu_group ASC, sort_order ASC").Find(&forms).Error; err != nil {
		return nil, err
	}
	return forms, nil
}

// Save creates or updates a form
func (r *GormFormRepository) Save(ctx context.Context, form *identity.FormMaster) error {
	return conn(ctx, r.db).Save(form).Error
}

// Delete deletes a form
func (r *GormFormRepository) Delete(ctx context.Context, id uint) error {
	result := conn(ctx, r.db).Delete(&identity.FormMaster{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts forms matching the filter
func (r *GormFormRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := conn(ctx, r.db).Model(&identity.FormMaster{})
	for key, value := range filter.Filters {
		if key == "is_active" {
			query = query.Where("is_active = ?", value)
		}
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

var _ identity.FormRepository = (*GormFormRepository)(nil)

// GormUserFormRightRepository implements identity.UserFormRightRepository using GORM
type GormUserFormRightRepository struct {
	db *gorm.DB
}

// NewGormUserFormRightRepository creates a new GormUserFormRightRepository
func NewGormUserFormRightRepository(db *gorm.DB) *GormUserFormRightRepository {
	return &GormUserFormRightRepository{db: db}
}

// FindByUser finds all form rights for a user
func (r *GormUserFormRightRepository) FindByUser(ctx context.Context, userID uint) ([]identity.UserFormRight, error) {
	var rights []identity.UserFormRight
	if err := conn(ctx, r.db).
		Where("user_id = ?", userID).
		Order("form_id ASC").
		Find(&rights).Error; err != nil {
		return nil, err
	}
	return rights, nil
}

// FindByUserAndForm finds a single form right entry
func (r *GormUserFormRightRepository) FindByUserAndForm(ctx context.Context, userID, formID uint) (*identity.UserFormRight, error) {
	var right identity.UserFormRight
	if err := conn(ctx, r.db).
		Where("user_id = ? AND form_id = ?", userID, formID).
		First(&right).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &right, nil
}

// ReplaceForUser replaces all form rights for a user in a single transaction
func (r *GormUserFormRightRepository) ReplaceForUser(ctx context.Context, userID uint, rights []identity.UserFormRight) error {
	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).
			Delete(&identity.UserFormRight{}).Error; err != nil {
			return err
		}
		if len(rights) == 0 {
			return nil
		}
		for i := range rights {
			rights[i].UserID = userID
		}
		return tx.Create(&rights).Error
	})
}

// DeleteForUser removes all form rights for a user
func (r *GormUserFormRightRepository) DeleteForUser(ctx context.Context, userID uint) error {
	return conn(ctx, r.db).
		Where("user_id = ?", userID).
		Delete(&identity.UserFormRight{}).Error
}

var _ identity.UserFormRightRepository = (*GormUserFormRightRepository)(nil)
