package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/property"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRoomRepository implements property.RoomRepository using GORM
type GormRoomRepository struct {
	db *gorm.DB
}

// NewGormRoomRepository creates a new GormRoomRepository
func NewGormRoomRepository(db *gorm.DB) *GormRoomRepository {
	return &GormRoomRepository{db: db}
}

// FindByID finds a room by its ID
func (r *GormRoomRepository) FindByID(ctx context.Context, id uint) (*property.Room, error) {
	var room property.Room
	if err := conn(ctx, r.db).First(&room, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &room, nil
}

// FindByIDForUpdate finds a room by its ID with a row lock held until
// the surrounding transaction ends
func (r *GormRoomRepository) FindByIDForUpdate(ctx context.Context, id uint) (*property.Room, error) {
	var room property.Room
	if err := conn(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&room, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &room, nil
}

// FindByPropertyAndNo finds a room by property and room number
func (r *GormRoomRepository) FindByPropertyAndNo(ctx context.Context, propertyID uint, roomNo string) (*property.Room, error) {
	var room property.Room
	if err := conn(ctx, r.db).
		Where("property_id = ? AND room_no = ?", propertyID, roomNo).
		First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &room, nil
}

// FindByProperty finds all rooms belonging to a property
func (r *GormRoomRepository) FindByProperty(ctx context.Context, propertyID uint) ([]property.Room, error) {
	var rooms []property.Room
	if err := conn(ctx, r.db).
		Where("property_id = ?", propertyID).
		Order("room_no ASC").
		Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

// FindAll finds all rooms matching the filter
func (r *GormRoomRepository) FindAll(ctx context.Context, filter shared.Filter) ([]property.Room, error) {
	var rooms []property.Room
	query := r.applyFilter(conn(ctx, r.db).Model(&property.Room{}), filter)

	if err := query.Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

// Save creates or updates a room
func (r *GormRoomRepository) Save(ctx context.Context, room *property.Room) error {
	return conn(ctx, r.db).Save(room).Error
}

// Delete deletes a room
func (r *GormRoomRepository) Delete(ctx context.Context, id uint) error {
	result := conn(ctx, r.db).Delete(&property.Room{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts rooms matching the filter
func (r *GormRoomRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(conn(ctx, r.db).Model(&property.Room{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormRoomRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, RoomSortFields, "room_no")
	return query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))
}

func (r *GormRoomRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + strings.TrimSpace(filter.Search) + "%"
		query = query.Where("room_no ILIKE ? OR description ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "property_id":
			query = query.Where("property_id = ?", value)
		case "status":
			query = query.Where("status = ?", value)
		case "room_type":
			query = query.Where("room_type = ?", value)
		case "floor":
			query = query.Where("floor = ?", value)
		}
	}

	return query
}

var _ property.RoomRepository = (*GormRoomRepository)(nil)
