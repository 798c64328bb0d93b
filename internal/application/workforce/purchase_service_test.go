package workforce

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/shared"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/workforce"
)

// MockVendorRepository is a mock implementation of workforce.VendorRepository
type MockVendorRepository struct {
	mock.Mock
}

func (m *MockVendorRepository) FindByID(ctx context.Context, id uint) (*workforce.Vendor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workforce.Vendor), args.Error(1)
}

func (m *MockVendorRepository) FindAll(ctx context.Context, filter shared.Filter) ([]workforce.Vendor, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]workforce.Vendor), args.Error(1)
}

func (m *MockVendorRepository) Save(ctx context.Context, vendor *workforce.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

func (m *MockVendorRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVendorRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockPurchaseRepository is a mock implementation of workforce.PurchaseRepository
type MockPurchaseRepository struct {
	mock.Mock
}

func (m *MockPurchaseRepository) FindByID(ctx context.Context, id uint) (*workforce.Purchase, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workforce.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]workforce.Purchase, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]workforce.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) Save(ctx context.Context, purchase *workforce.Purchase) error {
	args := m.Called(ctx, purchase)
	return args.Error(0)
}

func (m *MockPurchaseRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPurchaseRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func createPurchaseService(
	purchaseRepo *MockPurchaseRepository,
	propertyRepo *MockPropertyRepository,
	vendorRepo *MockVendorRepository,
) *PurchaseService {
	return NewPurchaseService(purchaseRepo, propertyRepo, vendorRepo, zap.NewNop())
}

func TestPurchaseService_Create_DerivesTotal(t *testing.T) {
	ctx := context.Background()
	purchaseRepo := new(MockPurchaseRepository)
	propertyRepo := new(MockPropertyRepository)
	vendorRepo := new(MockVendorRepository)

	propertyRepo.On("FindByID", ctx, uint(1)).Return(createTestProperty(1), nil)
	purchaseRepo.On("Save", ctx, mock.AnythingOfType("*workforce.Purchase")).Return(nil)

	svc := createPurchaseService(purchaseRepo, propertyRepo, vendorRepo)
	purchase, err := svc.Create(ctx, CreatePurchaseInput{
		PropertyID:   1,
		ItemName:     "LED bulbs",
		Category:     "electrical",
		Quantity:     12,
		UnitPrice:    decimal.NewFromInt(150),
		PurchaseDate: time.Now(),
	})

	require.NoError(t, err)
	assert.True(t, purchase.TotalAmount.Equal(decimal.NewFromInt(1800)))
	assert.Equal(t, workforce.PurchasePriorityMedium, purchase.Priority)
}

func TestPurchaseService_Create_BlacklistedVendor(t *testing.T) {
	ctx := context.Background()
	purchaseRepo := new(MockPurchaseRepository)
	propertyRepo := new(MockPropertyRepository)
	vendorRepo := new(MockVendorRepository)

	vendor, err := workforce.NewVendor("Sharma Traders", "electrical")
	require.NoError(t, err)
	vendor.ID = 4
	vendor.Blacklist()
	vendorID := uint(4)

	propertyRepo.On("FindByID", ctx, uint(1)).Return(createTestProperty(1), nil)
	vendorRepo.On("FindByID", ctx, vendorID).Return(vendor, nil)

	svc := createPurchaseService(purchaseRepo, propertyRepo, vendorRepo)
	_, err = svc.Create(ctx, CreatePurchaseInput{
		PropertyID: 1,
		VendorID:   &vendorID,
		ItemName:   "LED bulbs",
		Category:   "electrical",
		Quantity:   12,
		UnitPrice:  decimal.NewFromInt(150),
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VENDOR_BLACKLISTED", domainErr.Code)
	purchaseRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestPurchaseService_Update_Reprices(t *testing.T) {
	ctx := context.Background()
	purchaseRepo := new(MockPurchaseRepository)
	propertyRepo := new(MockPropertyRepository)
	vendorRepo := new(MockVendorRepository)

	purchase, err := workforce.NewPurchase(1, "LED bulbs", "electrical", 12, decimal.NewFromInt(150), time.Now())
	require.NoError(t, err)
	purchase.ID = 6

	purchaseRepo.On("FindByID", ctx, uint(6)).Return(purchase, nil)
	purchaseRepo.On("Save", ctx, purchase).Return(nil)

	svc := createPurchaseService(purchaseRepo, propertyRepo, vendorRepo)
	quantity := 20
	updated, err := svc.Update(ctx, 6, UpdatePurchaseInput{Quantity: &quantity})

	require.NoError(t, err)
	assert.True(t, updated.TotalAmount.Equal(decimal.NewFromInt(3000)))
}

func TestPurchaseService_Update_InvalidPriority(t *testing.T) {
	ctx := context.Background()
	purchaseRepo := new(MockPurchaseRepository)
	propertyRepo := new(MockPropertyRepository)
	vendorRepo := new(MockVendorRepository)

	purchase, err := workforce.NewPurchase(1, "LED bulbs", "electrical", 12, decimal.NewFromInt(150), time.Now())
	require.NoError(t, err)
	purchase.ID = 6

	purchaseRepo.On("FindByID", ctx, uint(6)).Return(purchase, nil)

	svc := createPurchaseService(purchaseRepo, propertyRepo, vendorRepo)
	priority := "whenever"
	_, err = svc.Update(ctx, 6, UpdatePurchaseInput{Priority: &priority})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_PRIORITY", domainErr.Code)
}
