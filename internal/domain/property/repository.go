package property

import (
	"context"

	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/shared"
)

// PropertyRepository defines persistence operations for properties
type PropertyRepository interface {
	shared.Repository[Property]
}

// RoomRepository defines persistence operations for rooms
type RoomRepository interface {
	shared.Repository[Room]
	FindByPropertyAndNo(ctx context.Context, propertyID uint, roomNo string) (*Room, error)
	FindByProperty(ctx context.Context, propertyID uint) ([]Room, error)
	// FindByIDForUpdate locks the room row for the remainder of the
	// surrounding transaction. Callers mutating room status must use it
	// so concurrent requests cannot both read the same availability.
	FindByIDForUpdate(ctx context.Context, id uint) (*Room, error)
}

// MealTariffRepository defines persistence operations for meal tariffs
type MealTariffRepository interface {
	shared.Repository[MealTariff]
	FindByProperty(ctx context.Context, propertyID uint) (*MealTariff, error)
	ExistsForProperty(ctx context.Context, propertyID uint) (bool, error)
}
