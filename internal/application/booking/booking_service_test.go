package booking

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/booking"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/property"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/shared"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/tenancy"
)

// MockBookingRepository is a mock implementation of booking.BookingRepository
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) FindByID(ctx context.Context, id uint) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindAll(ctx context.Context, filter shared.Filter) ([]booking.Booking, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) Save(ctx context.Context, entry *booking.Booking) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBookingRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) FindByTenant(ctx context.Context, tenantID uint) ([]booking.Booking, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]booking.Booking), args.Error(1)
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

// MockTenantRepository is a mock implementation of tenancy.TenantRepository
type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) FindByID(ctx context.Context, id uint) (*tenancy.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenancy.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindAll(ctx context.Context, filter shared.Filter) ([]tenancy.Tenant, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]tenancy.Tenant), args.Error(1)
}

func (m *MockTenantRepository) Save(ctx context.Context, tenant *tenancy.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

func (m *MockTenantRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTenantRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTenantRepository) FindByUserID(ctx context.Context, userID uint) (*tenancy.Tenant, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenancy.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindWithLeases(ctx context.Context, id uint) (*tenancy.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenancy.Tenant), args.Error(1)
}

func createTestRoom(id uint) *property.Room {
	room, _ := property.NewRoom(1, "201", property.RoomTypeStandard, decimal.NewFromInt(9000))
	room.ID = id
	return room
}

func createTestTenant(id uint) *tenancy.Tenant {
	tenant, _ := tenancy.NewTenant(id)
	tenant.ID = id
	return tenant
}

func createBookingService(
	bookingRepo *MockBookingRepository,
	roomRepo *MockRoomRepository,
	tenantRepo *MockTenantRepository,
) *BookingService {
	return NewBookingService(bookingRepo, roomRepo, tenantRepo, fakeTxManager{}, zap.NewNop())
}

func TestBookingService_Create_ReservesRoom(t *testing.T) {
	ctx := context.Background()
	bookingRepo := new(MockBookingRepository)
	roomRepo := new(MockRoomRepository)
	tenantRepo := new(MockTenantRepository)
	room := createTestRoom(2)

	tenantRepo.On("FindByID", ctx, uint(1)).Return(createTestTenant(1), nil)
	roomRepo.On("FindByIDForUpdate", ctx, uint(2)).Return(room, nil)
	bookingRepo.On("Save", ctx, mock.AnythingOfType("*booking.Booking")).Return(nil)
	roomRepo.On("Save", ctx, room).Return(nil)

	svc := createBookingService(bookingRepo, roomRepo, tenantRepo)
	entry, err := svc.Create(ctx, CreateBookingInput{
		TenantID:    1,
		RoomID:      2,
		PropertyID:  1,
		CheckInDate: time.Now().AddDate(0, 0, 7),
		Price:       decimal.NewFromInt(2000),
	})

	require.NoError(t, err)
	assert.Equal(t, booking.BookingStatusPending, entry.Status)
	assert.Equal(t, property.RoomStatusReserved, room.Status)
	roomRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestBookingService_Create_RoomNotBookable(t *testing.T) {
	ctx := context.Background()
	bookingRepo := new(MockBookingRepository)
	roomRepo := new(MockRoomRepository)
	tenantRepo := new(MockTenantRepository)
	room := createTestRoom(2)
	require.NoError(t, room.Occupy())

	tenantRepo.On("FindByID", ctx, uint(1)).Return(createTestTenant(1), nil)
	roomRepo.On("FindByIDForUpdate", ctx, uint(2)).Return(room, nil)

	svc := createBookingService(bookingRepo, roomRepo, tenantRepo)
	_, err := svc.Create(ctx, CreateBookingInput{
		TenantID:    1,
		RoomID:      2,
		PropertyID:  1,
		CheckInDate: time.Now().AddDate(0, 0, 7),
	})

	require.ErrorIs(t, err, shared.ErrRoomUnavailable)
	bookingRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestBookingService_Create_WrongProperty(t *testing.T) {
	ctx := context.Background()
	bookingRepo := new(MockBookingRepository)
	roomRepo := new(MockRoomRepository)
	tenantRepo := new(MockTenantRepository)
	room := createTestRoom(2)

	tenantRepo.On("FindByID", ctx, uint(1)).Return(createTestTenant(1), nil)
	roomRepo.On("FindByIDForUpdate", ctx, uint(2)).Return(room, nil)

	svc := createBookingService(bookingRepo, roomRepo, tenantRepo)
	_, err := svc.Create(ctx, CreateBookingInput{
		TenantID:    1,
		RoomID:      2,
		PropertyID:  42,
		CheckInDate: time.Now().AddDate(0, 0, 7),
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
}

func TestBookingService_Update_ConfirmOccupiesRoom(t *testing.T) {
	ctx := context.Background()
	bookingRepo := new(MockBookingRepository)
	roomRepo := new(MockRoomRepository)
	tenantRepo := new(MockTenantRepository)

	room := createTestRoom(2)
	require.NoError(t, room.Reserve())
	entry, err := booking.NewBooking(1, 2, 1, time.Now().AddDate(0, 0, 7), decimal.NewFromInt(2000))
	require.NoError(t, err)
	entry.ID = 4

	bookingRepo.On("FindByID", ctx, uint(4)).Return(entry, nil)
	bookingRepo.On("Save", ctx, entry).Return(nil)
	roomRepo.On("FindByIDForUpdate", ctx, uint(2)).Return(room, nil)
	roomRepo.On("Save", ctx, room).Return(nil)

	svc := createBookingService(bookingRepo, roomRepo, tenantRepo)
	status := "confirmed"
	updated, err := svc.Update(ctx, 4, UpdateBookingInput{Status: &status})

	require.NoError(t, err)
	assert.Equal(t, booking.BookingStatusConfirmed, updated.Status)
	assert.Equal(t, property.RoomStatusOccupied, room.Status)
}

func TestBookingService_Update_CancelReleasesRoom(t *testing.T) {
	ctx := context.Background()
	bookingRepo := new(MockBookingRepository)
	roomRepo := new(MockRoomRepository)
	tenantRepo := new(MockTenantRepository)

	room := createTestRoom(2)
	require.NoError(t, room.Reserve())
	entry, err := booking.NewBooking(1, 2, 1, time.Now().AddDate(0, 0, 7), decimal.NewFromInt(2000))
	require.NoError(t, err)
	entry.ID = 4

	bookingRepo.On("FindByID", ctx, uint(4)).Return(entry, nil)
	bookingRepo.On("Save", ctx, entry).Return(nil)
	roomRepo.On("FindByIDForUpdate", ctx, uint(2)).Return(room, nil)
	roomRepo.On("Save", ctx, room).Return(nil)

	svc := createBookingService(bookingRepo, roomRepo, tenantRepo)
	status := "cancelled"
	updated, err := svc.Update(ctx, 4, UpdateBookingInput{Status: &status})

	require.NoError(t, err)
	assert.Equal(t, booking.BookingStatusCancelled, updated.Status)
	assert.Equal(t, property.RoomStatusAvailable, room.Status)
}

func TestBookingService_Update_CompletedCannotCancel(t *testing.T) {
	ctx := context.Background()
	bookingRepo := new(MockBookingRepository)
	roomRepo := new(MockRoomRepository)
	tenantRepo := new(MockTenantRepository)

	entry, err := booking.NewBooking(1, 2, 1, time.Now().AddDate(0, 0, 7), decimal.NewFromInt(2000))
	require.NoError(t, err)
	entry.ID = 4
	require.NoError(t, entry.Confirm())
	require.NoError(t, entry.Complete(time.Now()))

	bookingRepo.On("FindByID", ctx, uint(4)).Return(entry, nil)

	svc := createBookingService(bookingRepo, roomRepo, tenantRepo)
	status := "cancelled"
	_, err = svc.Update(ctx, 4, UpdateBookingInput{Status: &status})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
}

func TestBookingService_Delete_ReleasesHeldRoom(t *testing.T) {
	ctx := context.Background()
	bookingRepo := new(MockBookingRepository)
	roomRepo := new(MockRoomRepository)
	tenantRepo := new(MockTenantRepository)

	room := createTestRoom(2)
	require.NoError(t, room.Reserve())
	entry, err := booking.NewBooking(1, 2, 1, time.Now().AddDate(0, 0, 7), decimal.NewFromInt(2000))
	require.NoError(t, err)
	entry.ID = 4

	bookingRepo.On("FindByID", ctx, uint(4)).Return(entry, nil)
	bookingRepo.On("Delete", ctx, uint(4)).Return(nil)
	roomRepo.On("FindByIDForUpdate", ctx, uint(2)).Return(room, nil)
	roomRepo.On("Save", ctx, room).Return(nil)

	svc := createBookingService(bookingRepo, roomRepo, tenantRepo)
	require.NoError(t, svc.Delete(ctx, 4))
	assert.Equal(t, property.RoomStatusAvailable, room.Status)
}

func TestBookingService_Delete_ClosedBookingLeavesRoom(t *testing.T) {
	ctx := context.Background()
	bookingRepo := new(MockBookingRepository)
	roomRepo := new(MockRoomRepository)
	tenantRepo := new(MockTenantRepository)

	entry, err := booking.NewBooking(1, 2, 1, time.Now().AddDate(0, 0, 7), decimal.NewFromInt(2000))
	require.NoError(t, err)
	entry.ID = 4
	require.NoError(t, entry.Cancel())

	bookingRepo.On("FindByID", ctx, uint(4)).Return(entry, nil)
	bookingRepo.On("Delete", ctx, uint(4)).Return(nil)

	svc := createBookingService(bookingRepo, roomRepo, tenantRepo)
	require.NoError(t, svc.Delete(ctx, 4))
	roomRepo.AssertNotCalled(t, "FindByIDForUpdate", mock.Anything, mock.Anything)
}
