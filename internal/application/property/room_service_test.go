package property

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/property"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/shared"
)

// MockPropertyRepository is a mock implementation of property.PropertyRepository
type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) FindByID(ctx context.Context, id uint) (*property.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Property), args.Error(1)
}

func (m *MockPropertyRepository) FindAll(ctx context.Context, filter shared.Filter) ([]property.Property, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]property.Property), args.Error(1)
}

func (m *MockPropertyRepository) Save(ctx context.Context, prop *property.Property) error {
	args := m.Called(ctx, prop)
	return args.Error(0)
}

func (m *MockPropertyRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPropertyRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockRoomRepository is a mock implementation of property.RoomRepository
type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) FindByID(ctx context.Context, id uint) (*property.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Room), args.Error(1)
}

func (m *MockRoomRepository) FindByIDForUpdate(ctx context.Context, id uint) (*property.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Room), args.Error(1)
}

func (m *MockRoomRepository) FindAll(ctx context.Context, filter shared.Filter) ([]property.Room, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]property.Room), args.Error(1)
}

func (m *MockRoomRepository) Save(ctx context.Context, room *property.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRoomRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRoomRepository) FindByPropertyAndNo(ctx context.Context, propertyID uint, roomNo string) (*property.Room, error) {
	args := m.Called(ctx, propertyID, roomNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Room), args.Error(1)
}

func (m *MockRoomRepository) FindByProperty(ctx context.Context, propertyID uint) ([]property.Room, error) {
	args := m.Called(ctx, propertyID)
	return args.Get(0).([]property.Room), args.Error(1)
}

func createTestProperty(id uint) *property.Property {
	prop, _ := property.NewProperty("Arkedia Residency", "12 MG Road", "Bengaluru")
	prop.ID = id
	return prop
}

func createRoomService(roomRepo *MockRoomRepository, propertyRepo *MockPropertyRepository) *RoomService {
	return NewRoomService(roomRepo, propertyRepo, zap.NewNop())
}

func TestRoomService_Create_Success(t *testing.T) {
	ctx := context.Background()
	roomRepo := new(MockRoomRepository)
	propertyRepo := new(MockPropertyRepository)

	propertyRepo.On("FindByID", ctx, uint(1)).Return(createTestProperty(1), nil)
	roomRepo.On("FindByPropertyAndNo", ctx, uint(1), "101").Return(nil, shared.ErrNotFound)
	roomRepo.On("Save", ctx, mock.AnythingOfType("*property.Room")).Return(nil)

	svc := createRoomService(roomRepo, propertyRepo)
	room, err := svc.Create(ctx, CreateRoomInput{
		PropertyID: 1,
		RoomNo:     "101",
		RoomType:   "standard",
		Rent:       decimal.NewFromInt(8000),
	})

	require.NoError(t, err)
	assert.Equal(t, property.RoomStatusAvailable, room.Status)
	assert.Equal(t, 1, room.Capacity)
	roomRepo.AssertExpectations(t)
}

func TestRoomService_Create_DuplicateRoomNo(t *testing.T) {
	ctx := context.Background()
	roomRepo := new(MockRoomRepository)
	propertyRepo := new(MockPropertyRepository)

	existing, err := property.NewRoom(1, "101", property.RoomTypeStandard, decimal.NewFromInt(8000))
	require.NoError(t, err)

	propertyRepo.On("FindByID", ctx, uint(1)).Return(createTestProperty(1), nil)
	roomRepo.On("FindByPropertyAndNo", ctx, uint(1), "101").Return(existing, nil)

	svc := createRoomService(roomRepo, propertyRepo)
	_, err = svc.Create(ctx, CreateRoomInput{
		PropertyID: 1,
		RoomNo:     "101",
		RoomType:   "standard",
		Rent:       decimal.NewFromInt(8000),
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "DUPLICATE_RESOURCE", domainErr.Code)
	roomRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestRoomService_Create_UnknownProperty(t *testing.T) {
	ctx := context.Background()
	roomRepo := new(MockRoomRepository)
	propertyRepo := new(MockPropertyRepository)

	propertyRepo.On("FindByID", ctx, uint(9)).Return(nil, shared.ErrNotFound)

	svc := createRoomService(roomRepo, propertyRepo)
	_, err := svc.Create(ctx, CreateRoomInput{
		PropertyID: 9,
		RoomNo:     "101",
		RoomType:   "standard",
		Rent:       decimal.NewFromInt(8000),
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
}

func TestRoomService_Update_InvalidTransition(t *testing.T) {
	ctx := context.Background()
	roomRepo := new(MockRoomRepository)
	propertyRepo := new(MockPropertyRepository)

	room, err := property.NewRoom(1, "101", property.RoomTypeStandard, decimal.NewFromInt(8000))
	require.NoError(t, err)
	room.ID = 3
	require.NoError(t, room.Occupy())

	roomRepo.On("FindByID", ctx, uint(3)).Return(room, nil)

	svc := createRoomService(roomRepo, propertyRepo)
	status := "maintenance"
	_, err = svc.Update(ctx, 3, UpdateRoomInput{Status: &status})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
	roomRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestRoomService_Delete_OccupiedRoom(t *testing.T) {
	ctx := context.Background()
	roomRepo := new(MockRoomRepository)
	propertyRepo := new(MockPropertyRepository)

	room, err := property.NewRoom(1, "101", property.RoomTypeStandard, decimal.NewFromInt(8000))
	require.NoError(t, err)
	room.ID = 3
	require.NoError(t, room.Occupy())

	roomRepo.On("FindByID", ctx, uint(3)).Return(room, nil)

	svc := createRoomService(roomRepo, propertyRepo)
	err = svc.Delete(ctx, 3)

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ROOM_IN_USE", domainErr.Code)
	roomRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestPropertyService_Delete_WithRooms(t *testing.T) {
	ctx := context.Background()
	roomRepo := new(MockRoomRepository)
	propertyRepo := new(MockPropertyRepository)

	room, err := property.NewRoom(1, "101", property.RoomTypeStandard, decimal.NewFromInt(8000))
	require.NoError(t, err)

	propertyRepo.On("FindByID", ctx, uint(1)).Return(createTestProperty(1), nil)
	roomRepo.On("FindByProperty", ctx, uint(1)).Return([]property.Room{*room}, nil)

	svc := NewPropertyService(propertyRepo, roomRepo, zap.NewNop())
	err = svc.Delete(ctx, 1)

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "PROPERTY_HAS_ROOMS", domainErr.Code)
	propertyRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
