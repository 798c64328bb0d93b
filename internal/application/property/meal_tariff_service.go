package property

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/property"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/shared"
)

// MealTariffService manages per-property meal rate sheets
type MealTariffService struct {
	tariffRepo   property.MealTariffRepository
	propertyRepo property.PropertyRepository
	logger       *zap.Logger
}

// NewMealTariffService creates a new meal tariff service
func NewMealTariffService(
	tariffRepo property.MealTariffRepository,
	propertyRepo property.PropertyRepository,
	logger *zap.Logger,
) *MealTariffService {
	return &MealTariffService{
		tariffRepo:   tariffRepo,
		propertyRepo: propertyRepo,
		logger:       logger,
	}
}

// Create adds the tariff sheet for a property. A property can only have
// one sheet.
func (s *MealTariffService) Create(ctx context.Context, input MealTariffInput) (*property.MealTariff, error) {
	if _, err := s.propertyRepo.FindByID(ctx, input.PropertyID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("VALIDATION_ERROR", "Property does not exist")
		}
		return nil, err
	}

	exists, err := s.tariffRepo.ExistsForProperty(ctx, input.PropertyID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("DUPLICATE_RESOURCE", "Meal tariff already exists for this property")
	}

	tariff, err := property.NewMealTariff(input.PropertyID, input.EffectiveFrom)
	if err != nil {
		return nil, err
	}
	if err := tariff.SetRates(
		input.BreakfastVeg, input.BreakfastNonVeg,
		input.LunchVeg, input.LunchNonVeg,
		input.DinnerVeg, input.DinnerNonVeg,
	); err != nil {
		return nil, err
	}

	if err := s.tariffRepo.Save(ctx, tariff); err != nil {
		s.logger.Error("Failed to create meal tariff",
			zap.Uint("property_id", input.PropertyID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Meal tariff created",
		zap.Uint("tariff_id", tariff.ID),
		zap.Uint("property_id", tariff.PropertyID))
	return tariff, nil
}

// Get returns a tariff sheet by ID
func (s *MealTariffService) Get(ctx context.Context, id uint) (*property.MealTariff, error) {
	return s.tariffRepo.FindByID(ctx, id)
}

// GetByProperty returns the tariff sheet of a property
func (s *MealTariffService) GetByProperty(ctx context.Context, propertyID uint) (*property.MealTariff, error) {
	return s.tariffRepo.FindByProperty(ctx, propertyID)
}

// List returns a page of tariff sheets
func (s *MealTariffService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[property.MealTariff], error) {
	items, err := s.tariffRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.tariffRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Update replaces the rates and effective date of a tariff sheet
func (s *MealTariffService) Update(ctx context.Context, id uint, input MealTariffInput) (*property.MealTariff, error) {
	tariff, err := s.tariffRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := tariff.SetRates(
		input.BreakfastVeg, input.BreakfastNonVeg,
		input.LunchVeg, input.LunchNonVeg,
		input.DinnerVeg, input.DinnerNonVeg,
	); err != nil {
		return nil, err
	}
	if !input.EffectiveFrom.IsZero() {
		tariff.EffectiveFrom = input.EffectiveFrom
	}

	if err := s.tariffRepo.Save(ctx, tariff); err != nil {
		s.logger.Error("Failed to update meal tariff", zap.Uint("tariff_id", id), zap.Error(err))
		return nil, err
	}
	return tariff, nil
}

// Delete removes a tariff sheet
func (s *MealTariffService) Delete(ctx context.Context, id uint) error {
	if err := s.tariffRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Meal tariff deleted", zap.Uint("tariff_id", id))
	return nil
}
