package property

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/property"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/shared"
)

// PropertyService manages the property portfolio
type PropertyService struct {
	propertyRepo property.PropertyRepository
	roomRepo     property.RoomRepository
	logger       *zap.Logger
}

// NewPropertyService creates a new property service
func NewPropertyService(
	propertyRepo property.PropertyRepository,
	roomRepo property.RoomRepository,
	logger *zap.Logger,
) *PropertyService {
	return &PropertyService{
		propertyRepo: propertyRepo,
		roomRepo:     roomRepo,
		logger:       logger,
	}
}

// Create registers a new property
func (s *PropertyService) Create(ctx context.Context, input CreatePropertyInput) (*property.Property, error) {
	prop, err := property.NewProperty(input.Name, input.Address, input.City)
	if err != nil {
		return nil, err
	}
	prop.State = input.State
	if input.Country != "" {
		prop.Country = input.Country
	}
	prop.Pincode = input.Pincode
	prop.ContactEmail = input.ContactEmail
	prop.ContactPhone = input.ContactPhone
	prop.TotalRooms = input.TotalRooms

	if err := s.propertyRepo.Save(ctx, prop); err != nil {
		s.logger.Error("Failed to create property", zap.String("name", input.Name), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Property created",
		zap.Uint("property_id", prop.ID),
		zap.String("name", prop.Name))
	return prop, nil
}

// Get returns a property by ID
func (s *PropertyService) Get(ctx context.Context, id uint) (*property.Property, error) {
	return s.propertyRepo.FindByID(ctx, id)
}

// List returns a page of properties
func (s *PropertyService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[property.Property], error) {
	items, err := s.propertyRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.propertyRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Update applies the given changes to a property
func (s *PropertyService) Update(ctx context.Context, id uint, input UpdatePropertyInput) (*property.Property, error) {
	prop, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		prop.Name = *input.Name
	}
	if input.Address != nil {
		prop.Address = *input.Address
	}
	if input.City != nil {
		prop.City = *input.City
	}
	if input.State != nil {
		prop.State = *input.State
	}
	if input.Country != nil {
		prop.Country = *input.Country
	}
	if input.Pincode != nil {
		prop.Pincode = *input.Pincode
	}
	if input.ContactEmail != nil {
		prop.ContactEmail = *input.ContactEmail
	}
	if input.ContactPhone != nil {
		prop.ContactPhone = *input.ContactPhone
	}
	if input.TotalRooms != nil {
		prop.TotalRooms = *input.TotalRooms
	}
	if input.Status != nil {
		switch property.PropertyStatus(*input.Status) {
		case property.PropertyStatusActive:
			prop.Activate()
		case property.PropertyStatusInactive:
			prop.Deactivate()
		default:
			return nil, shared.NewDomainError("INVALID_STATUS", "Invalid property status")
		}
	}

	if err := s.propertyRepo.Save(ctx, prop); err != nil {
		s.logger.Error("Failed to update property", zap.Uint("property_id", id), zap.Error(err))
		return nil, err
	}
	return prop, nil
}

// Delete removes a property. Properties with rooms cannot be deleted.
func (s *PropertyService) Delete(ctx context.Context, id uint) error {
	if _, err := s.propertyRepo.FindByID(ctx, id); err != nil {
		return err
	}

	rooms, err := s.roomRepo.FindByProperty(ctx, id)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return err
	}
	if len(rooms) > 0 {
		return shared.NewDomainError("PROPERTY_HAS_ROOMS", "Property still has rooms and cannot be deleted")
	}

	if err := s.propertyRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Property deleted", zap.Uint("property_id", id))
	return nil
}
