package property

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/property"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/shared"
)

// MockMealTariffRepository is a mock implementation of property.MealTariffRepository
type MockMealTariffRepository struct {
	mock.Mock
}

func (m *MockMealTariffRepository) FindByID(ctx context.Context, id uint) (*property.MealTariff, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.MealTariff), args.Error(1)
}

func (m *MockMealTariffRepository) FindAll(ctx context.Context, filter shared.Filter) ([]property.MealTariff, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]property.MealTariff), args.Error(1)
}

func (m *MockMealTariffRepository) Save(ctx context.Context, tariff *property.MealTariff) error {
	args := m.Called(ctx, tariff)
	return args.Error(0)
}

func (m *MockMealTariffRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMealTariffRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMealTariffRepository) FindByProperty(ctx context.Context, propertyID uint) (*property.MealTariff, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.MealTariff), args.Error(1)
}

func (m *MockMealTariffRepository) ExistsForProperty(ctx context.Context, propertyID uint) (bool, error) {
	args := m.Called(ctx, propertyID)
	return args.Bool(0), args.Error(1)
}

func createMealTariffService(tariffRepo *MockMealTariffRepository, propertyRepo *MockPropertyRepository) *MealTariffService {
	return NewMealTariffService(tariffRepo, propertyRepo, zap.NewNop())
}

func TestMealTariffService_Create_Success(t *testing.T) {
	ctx := context.Background()
	tariffRepo := new(MockMealTariffRepository)
	propertyRepo := new(MockPropertyRepository)

	propertyRepo.On("FindByID", ctx, uint(1)).Return(createTestProperty(1), nil)
	tariffRepo.On("ExistsForProperty", ctx, uint(1)).Return(false, nil)
	tariffRepo.On("Save", ctx, mock.AnythingOfType("*property.MealTariff")).Return(nil)

	svc := createMealTariffService(tariffRepo, propertyRepo)
	tariff, err := svc.Create(ctx, MealTariffInput{
		PropertyID:      1,
		BreakfastVeg:    decimal.NewFromInt(40),
		BreakfastNonVeg: decimal.NewFromInt(60),
		LunchVeg:        decimal.NewFromInt(80),
		LunchNonVeg:     decimal.NewFromInt(110),
		DinnerVeg:       decimal.NewFromInt(80),
		DinnerNonVeg:    decimal.NewFromInt(110),
		EffectiveFrom:   time.Now(),
	})

	require.NoError(t, err)
	assert.True(t, tariff.LunchNonVeg.Equal(decimal.NewFromInt(110)))
	tariffRepo.AssertExpectations(t)
}

func TestMealTariffService_Create_OnePerProperty(t *testing.T) {
	ctx := context.Background()
	tariffRepo := new(MockMealTariffRepository)
	propertyRepo := new(MockPropertyRepository)

	propertyRepo.On("FindByID", ctx, uint(1)).Return(createTestProperty(1), nil)
	tariffRepo.On("ExistsForProperty", ctx, uint(1)).Return(true, nil)

	svc := createMealTariffService(tariffRepo, propertyRepo)
	_, err := svc.Create(ctx, MealTariffInput{PropertyID: 1, EffectiveFrom: time.Now()})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "DUPLICATE_RESOURCE", domainErr.Code)
	tariffRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestMealTariffService_Create_NegativeRate(t *testing.T) {
	ctx := context.Background()
	tariffRepo := new(MockMealTariffRepository)
	propertyRepo := new(MockPropertyRepository)

	propertyRepo.On("FindByID", ctx, uint(1)).Return(createTestProperty(1), nil)
	tariffRepo.On("ExistsForProperty", ctx, uint(1)).Return(false, nil)

	svc := createMealTariffService(tariffRepo, propertyRepo)
	_, err := svc.Create(ctx, MealTariffInput{
		PropertyID:    1,
		BreakfastVeg:  decimal.NewFromInt(-5),
		EffectiveFrom: time.Now(),
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_RATE", domainErr.Code)
}
