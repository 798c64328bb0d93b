package property

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/property"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/shared"
)

// RoomService manages rooms and their status transitions
type RoomService struct {
	roomRepo     property.RoomRepository
	propertyRepo property.PropertyRepository
	logger       *zap.Logger
}

// NewRoomService creates a new room service
func NewRoomService(
	roomRepo property.RoomRepository,
	propertyRepo property.PropertyRepository,
	logger *zap.Logger,
) *RoomService {
	return &RoomService{
		roomRepo:     roomRepo,
		propertyRepo: propertyRepo,
		logger:       logger,
	}
}

// Create adds a room to a property. Room numbers are unique per property.
func (s *RoomService) Create(ctx context.Context, input CreateRoomInput) (*property.Room, error) {
	if _, err := s.propertyRepo.FindByID(ctx, input.PropertyID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("VALIDATION_ERROR", "Property does not exist")
		}
		return nil, err
	}

	existing, err := s.roomRepo.FindByPropertyAndNo(ctx, input.PropertyID, input.RoomNo)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("DUPLICATE_RESOURCE", "Room number already exists for this property")
	}

	room, err := property.NewRoom(input.PropertyID, input.RoomNo, property.RoomType(input.RoomType), input.Rent)
	if err != nil {
		return nil, err
	}
	room.Floor = input.Floor
	if input.Capacity > 0 {
		room.Capacity = input.Capacity
	}
	if !input.Deposit.IsZero() {
		if input.Deposit.IsNegative() {
			return nil, shared.NewDomainError("INVALID_DEPOSIT", "Deposit cannot be negative")
		}
		room.Deposit = input.Deposit
	}
	room.Description = input.Description
	room.Amenities = input.Amenities

	if err := s.roomRepo.Save(ctx, room); err != nil {
		s.logger.Error("Failed to create room",
			zap.Uint("property_id", input.PropertyID),
			zap.String("room_no", input.RoomNo),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("Room created",
		zap.Uint("room_id", room.ID),
		zap.Uint("property_id", room.PropertyID),
		zap.String("room_no", room.RoomNo))
	return room, nil
}

// Get returns a room by ID
func (s *RoomService) Get(ctx context.Context, id uint) (*property.Room, error) {
	return s.roomRepo.FindByID(ctx, id)
}

// List returns a page of rooms
func (s *RoomService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[property.Room], error) {
	items, err := s.roomRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.roomRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// ListByProperty returns all rooms of a property ordered by room number
func (s *RoomService) ListByProperty(ctx context.Context, propertyID uint) ([]property.Room, error) {
	return s.roomRepo.FindByProperty(ctx, propertyID)
}

// Update applies the given changes to a room. Status changes go through
// the room's transition rules.
func (s *RoomService) Update(ctx context.Context, id uint, input UpdateRoomInput) (*property.Room, error) {
	room, err := s.roomRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Floor != nil {
		room.Floor = *input.Floor
	}
	if input.RoomType != nil {
		room.RoomType = property.RoomType(*input.RoomType)
	}
	if input.Capacity != nil {
		if *input.Capacity <= 0 {
			return nil, shared.NewDomainError("INVALID_CAPACITY", "Capacity must be greater than zero")
		}
		room.Capacity = *input.Capacity
	}
	if input.Rent != nil {
		if input.Rent.IsNegative() || input.Rent.IsZero() {
			return nil, shared.NewDomainError("INVALID_RENT", "Rent must be greater than zero")
		}
		room.Rent = *input.Rent
	}
	if input.Deposit != nil {
		if input.Deposit.IsNegative() {
			return nil, shared.NewDomainError("INVALID_DEPOSIT", "Deposit cannot be negative")
		}
		room.Deposit = *input.Deposit
	}
	if input.Description != nil {
		room.Description = *input.Description
	}
	if input.Amenities != nil {
		room.Amenities = *input.Amenities
	}
	if input.Status != nil {
		if err := room.Transition(property.RoomStatus(*input.Status)); err != nil {
			return nil, err
		}
	}

	if err := s.roomRepo.Save(ctx, room); err != nil {
		s.logger.Error("Failed to update room", zap.Uint("room_id", id), zap.Error(err))
		return nil, err
	}
	return room, nil
}

// Delete removes a room. Rooms that are reserved or occupied cannot be
// deleted while a lease or booking holds them.
func (s *RoomService) Delete(ctx context.Context, id uint) error {
	room, err := s.roomRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if room.Status == property.RoomStatusReserved || room.Status == property.RoomStatusOccupied {
		return shared.NewDomainError("ROOM_IN_USE", "Room is held by a lease or booking and cannot be deleted")
	}

	if err := s.roomRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Room deleted", zap.Uint("room_id", id))
	return nil
}
