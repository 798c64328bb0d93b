package tenancy

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/identity"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/property"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/shared"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/tenancy"
)

// MockLeaseRepository is a mock implementation of tenancy.LeaseRepository
type MockLeaseRepository struct {
	mock.Mock
}

func (m *MockLeaseRepository) FindByID(ctx context.Context, id uint) (*tenancy.Lease, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenancy.Lease), args.Error(1)
}

func (m *MockLeaseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]tenancy.Lease, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]tenancy.Lease), args.Error(1)
}

func (m *MockLeaseRepository) Save(ctx context.Context, lease *tenancy.Lease) error {
	args := m.Called(ctx, lease)
	return args.Error(0)
}

func (m *MockLeaseRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLeaseRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLeaseRepository) FindByTenant(ctx context.Context, tenantID uint) ([]tenancy.Lease, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]tenancy.Lease), args.Error(1)
}

func (m *MockLeaseRepository) FindByRoom(ctx context.Context, roomID uint) ([]tenancy.Lease, error) {
	args := m.Called(ctx, roomID)
	return args.Get(0).([]tenancy.Lease), args.Error(1)
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

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.User, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// fakeTxManager runs the callback directly without a database
type fakeTxManager struct{}

func (fakeTxManager) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func createTestTenant(id uint) *tenancy.Tenant {
	tenant, _ := tenancy.NewTenant(id)
	tenant.ID = id
	return tenant
}

func createTestRoom(id uint) *property.Room {
	room, _ := property.NewRoom(1, "101", property.RoomTypeStandard, decimal.NewFromInt(8000))
	room.ID = id
	return room
}

func createLeaseService(
	leaseRepo *MockLeaseRepository,
	tenantRepo *MockTenantRepository,
	roomRepo *MockRoomRepository,
	userRepo *MockUserRepository,
) *LeaseService {
	return NewLeaseService(leaseRepo, tenantRepo, roomRepo, userRepo, fakeTxManager{}, zap.NewNop())
}

func leasePeriod() (time.Time, time.Time) {
	start := time.Now().AddDate(0, 0, 1)
	return start, start.AddDate(1, 0, 0)
}

func TestLeaseService_Create_OccupiesRoom(t *testing.T) {
	ctx := context.Background()
	leaseRepo := new(MockLeaseRepository)
	tenantRepo := new(MockTenantRepository)
	roomRepo := new(MockRoomRepository)
	userRepo := new(MockUserRepository)

	tenant := createTestTenant(1)
	room := createTestRoom(2)
	start, end := leasePeriod()

	tenantRepo.On("FindByID", ctx, uint(1)).Return(tenant, nil)
	roomRepo.On("FindByIDForUpdate", ctx, uint(2)).Return(room, nil)
	leaseRepo.On("Save", ctx, mock.AnythingOfType("*tenancy.Lease")).Return(nil)
	roomRepo.On("Save", ctx, room).Return(nil)

	svc := createLeaseService(leaseRepo, tenantRepo, roomRepo, userRepo)
	lease, err := svc.Create(ctx, CreateLeaseInput{
		TenantID:       1,
		RoomID:         2,
		LeaseStartDate: start,
		LeaseEndDate:   end,
		RentAmount:     decimal.NewFromInt(8000),
	})

	require.NoError(t, err)
	assert.Equal(t, tenancy.LeaseStatusActive, lease.Status)
	assert.Equal(t, property.RoomStatusOccupied, room.Status)
	leaseRepo.AssertExpectations(t)
	roomRepo.AssertExpectations(t)
}

func TestLeaseService_Create_PendingReservesRoom(t *testing.T) {
	ctx := context.Background()
	leaseRepo := new(MockLeaseRepository)
	tenantRepo := new(MockTenantRepository)
	roomRepo := new(MockRoomRepository)
	userRepo := new(MockUserRepository)

	tenant := createTestTenant(1)
	room := createTestRoom(2)
	start, end := leasePeriod()

	tenantRepo.On("FindByID", ctx, uint(1)).Return(tenant, nil)
	roomRepo.On("FindByIDForUpdate", ctx, uint(2)).Return(room, nil)
	leaseRepo.On("Save", ctx, mock.AnythingOfType("*tenancy.Lease")).Return(nil)
	roomRepo.On("Save", ctx, room).Return(nil)

	svc := createLeaseService(leaseRepo, tenantRepo, roomRepo, userRepo)
	lease, err := svc.Create(ctx, CreateLeaseInput{
		TenantID:       1,
		RoomID:         2,
		LeaseStartDate: start,
		LeaseEndDate:   end,
		RentAmount:     decimal.NewFromInt(8000),
		Status:         "pending",
	})

	require.NoError(t, err)
	assert.Equal(t, tenancy.LeaseStatusPending, lease.Status)
	assert.Equal(t, property.RoomStatusReserved, room.Status)
}

func TestLeaseService_Create_RoomUnavailable(t *testing.T) {
	ctx := context.Background()
	leaseRepo := new(MockLeaseRepository)
	tenantRepo := new(MockTenantRepository)
	roomRepo := new(MockRoomRepository)
	userRepo := new(MockUserRepository)

	tenant := createTestTenant(1)
	room := createTestRoom(2)
	require.NoError(t, room.Occupy())
	start, end := leasePeriod()

	tenantRepo.On("FindByID", ctx, uint(1)).Return(tenant, nil)
	roomRepo.On("FindByIDForUpdate", ctx, uint(2)).Return(room, nil)

	svc := createLeaseService(leaseRepo, tenantRepo, roomRepo, userRepo)
	_, err := svc.Create(ctx, CreateLeaseInput{
		TenantID:       1,
		RoomID:         2,
		LeaseStartDate: start,
		LeaseEndDate:   end,
		RentAmount:     decimal.NewFromInt(8000),
	})

	require.ErrorIs(t, err, shared.ErrRoomUnavailable)
	leaseRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestLeaseService_Update_NotEditable(t *testing.T) {
	ctx := context.Background()
	leaseRepo := new(MockLeaseRepository)
	tenantRepo := new(MockTenantRepository)
	roomRepo := new(MockRoomRepository)
	userRepo := new(MockUserRepository)

	start, end := leasePeriod()
	lease, err := tenancy.NewLease(1, 2, start, end, decimal.NewFromInt(8000))
	require.NoError(t, err)
	lease.ID = 7
	// Pending leases are not editable

	leaseRepo.On("FindByID", ctx, uint(7)).Return(lease, nil)

	svc := createLeaseService(leaseRepo, tenantRepo, roomRepo, userRepo)
	notes := "updated"
	_, err = svc.Update(ctx, 7, UpdateLeaseInput{Notes: &notes})

	require.ErrorIs(t, err, shared.ErrLeaseNotEditable)
	leaseRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestLeaseService_Update_TerminateReleasesRoom(t *testing.T) {
	ctx := context.Background()
	leaseRepo := new(MockLeaseRepository)
	tenantRepo := new(MockTenantRepository)
	roomRepo := new(MockRoomRepository)
	userRepo := new(MockUserRepository)

	start, end := leasePeriod()
	lease, err := tenancy.NewLease(1, 2, start, end, decimal.NewFromInt(8000))
	require.NoError(t, err)
	lease.ID = 7
	require.NoError(t, lease.Activate())

	room := createTestRoom(2)
	require.NoError(t, room.Occupy())

	leaseRepo.On("FindByID", ctx, uint(7)).Return(lease, nil)
	leaseRepo.On("Save", ctx, lease).Return(nil)
	roomRepo.On("FindByIDForUpdate", ctx, uint(2)).Return(room, nil)
	roomRepo.On("Save", ctx, room).Return(nil)

	svc := createLeaseService(leaseRepo, tenantRepo, roomRepo, userRepo)
	status := "terminated"
	updated, err := svc.Update(ctx, 7, UpdateLeaseInput{Status: &status})

	require.NoError(t, err)
	assert.Equal(t, tenancy.LeaseStatusTerminated, updated.Status)
	assert.Equal(t, property.RoomStatusAvailable, room.Status)
}

func TestLeaseService_Delete_ReleasesRoom(t *testing.T) {
	ctx := context.Background()
	leaseRepo := new(MockLeaseRepository)
	tenantRepo := new(MockTenantRepository)
	roomRepo := new(MockRoomRepository)
	userRepo := new(MockUserRepository)

	start, end := leasePeriod()
	lease, err := tenancy.NewLease(1, 2, start, end, decimal.NewFromInt(8000))
	require.NoError(t, err)
	lease.ID = 7
	require.NoError(t, lease.Activate())

	room := createTestRoom(2)
	require.NoError(t, room.Occupy())

	leaseRepo.On("FindByID", ctx, uint(7)).Return(lease, nil)
	leaseRepo.On("Delete", ctx, uint(7)).Return(nil)
	roomRepo.On("FindByIDForUpdate", ctx, uint(2)).Return(room, nil)
	roomRepo.On("Save", ctx, room).Return(nil)

	svc := createLeaseService(leaseRepo, tenantRepo, roomRepo, userRepo)
	require.NoError(t, svc.Delete(ctx, 7))
	assert.Equal(t, property.RoomStatusAvailable, room.Status)
}

func TestLeaseService_BulkAssign_AllOrNothing(t *testing.T) {
	ctx := context.Background()
	leaseRepo := new(MockLeaseRepository)
	tenantRepo := new(MockTenantRepository)
	roomRepo := new(MockRoomRepository)
	userRepo := new(MockUserRepository)

	start, end := leasePeriod()
	availableRoom := createTestRoom(2)
	occupiedRoom := createTestRoom(3)
	require.NoError(t, occupiedRoom.Occupy())

	tenantRepo.On("FindByID", ctx, uint(1)).Return(createTestTenant(1), nil)
	tenantRepo.On("FindByID", ctx, uint(4)).Return(createTestTenant(4), nil)
	roomRepo.On("FindByIDForUpdate", ctx, uint(2)).Return(availableRoom, nil)
	roomRepo.On("FindByIDForUpdate", ctx, uint(3)).Return(occupiedRoom, nil)

	svc := createLeaseService(leaseRepo, tenantRepo, roomRepo, userRepo)
	_, err := svc.BulkAssign(ctx, BulkAssignInput{
		Assignments: []RoomAssignment{
			{TenantID: 1, RoomID: 2},
			{TenantID: 4, RoomID: 3},
		},
		LeaseStartDate: start,
		LeaseEndDate:   end,
	})

	require.ErrorIs(t, err, shared.ErrRoomUnavailable)
	leaseRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	roomRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestLeaseService_BulkAssign_Success(t *testing.T) {
	ctx := context.Background()
	leaseRepo := new(MockLeaseRepository)
	tenantRepo := new(MockTenantRepository)
	roomRepo := new(MockRoomRepository)
	userRepo := new(MockUserRepository)

	start, end := leasePeriod()
	roomA := createTestRoom(2)
	roomB := createTestRoom(3)

	tenantRepo.On("FindByID", ctx, uint(1)).Return(createTestTenant(1), nil)
	tenantRepo.On("FindByID", ctx, uint(4)).Return(createTestTenant(4), nil)
	roomRepo.On("FindByIDForUpdate", ctx, uint(2)).Return(roomA, nil)
	roomRepo.On("FindByIDForUpdate", ctx, uint(3)).Return(roomB, nil)
	leaseRepo.On("Save", ctx, mock.AnythingOfType("*tenancy.Lease")).Return(nil)
	roomRepo.On("Save", ctx, mock.AnythingOfType("*property.Room")).Return(nil)

	svc := createLeaseService(leaseRepo, tenantRepo, roomRepo, userRepo)
	leases, err := svc.BulkAssign(ctx, BulkAssignInput{
		Assignments: []RoomAssignment{
			{TenantID: 1, RoomID: 2},
			{TenantID: 4, RoomID: 3},
		},
		LeaseStartDate: start,
		LeaseEndDate:   end,
	})

	require.NoError(t, err)
	require.Len(t, leases, 2)
	assert.Equal(t, tenancy.LeaseStatusActive, leases[0].Status)
	assert.Equal(t, property.RoomStatusOccupied, roomA.Status)
	assert.Equal(t, property.RoomStatusOccupied, roomB.Status)
}

func TestLeaseService_BookTenant_NewUser(t *testing.T) {
	ctx := context.Background()
	leaseRepo := new(MockLeaseRepository)
	tenantRepo := new(MockTenantRepository)
	roomRepo := new(MockRoomRepository)
	userRepo := new(MockUserRepository)

	start, end := leasePeriod()
	room := createTestRoom(2)

	userRepo.On("FindByEmail", ctx, "new@example.com").Return(nil, shared.ErrNotFound)
	userRepo.On("Save", ctx, mock.AnythingOfType("*identity.User")).
		Run(func(args mock.Arguments) { args.Get(1).(*identity.User).ID = 10 }).
		Return(nil)
	tenantRepo.On("FindByUserID", ctx, uint(10)).Return(nil, shared.ErrNotFound)
	tenantRepo.On("Save", ctx, mock.AnythingOfType("*tenancy.Tenant")).
		Run(func(args mock.Arguments) { args.Get(1).(*tenancy.Tenant).ID = 20 }).
		Return(nil)
	roomRepo.On("FindByIDForUpdate", ctx, uint(2)).Return(room, nil)
	leaseRepo.On("Save", ctx, mock.AnythingOfType("*tenancy.Lease")).Return(nil)
	roomRepo.On("Save", ctx, room).Return(nil)

	svc := createLeaseService(leaseRepo, tenantRepo, roomRepo, userRepo)
	result, err := svc.BookTenant(ctx, BookTenantInput{
		Name:           "New Tenant",
		Email:          "new@example.com",
		RoomID:         2,
		LeaseStartDate: start,
		LeaseEndDate:   end,
	})

	require.NoError(t, err)
	assert.True(t, result.UserCreated)
	assert.NotEmpty(t, result.TemporaryPassword)
	require.NotNil(t, result.User)
	assert.Equal(t, uint(10), result.User.ID)
	assert.Equal(t, "new@example.com", result.User.Email)
	assert.Equal(t, tenancy.LeaseStatusPending, result.Lease.Status)
	assert.Equal(t, property.RoomStatusReserved, room.Status)
	// Rent falls back to the room's rate when none is given
	assert.True(t, result.Lease.RentAmount.Equal(room.Rent))
}

func TestLeaseService_BookTenant_ExistingUserNoPassword(t *testing.T) {
	ctx := context.Background()
	leaseRepo := new(MockLeaseRepository)
	tenantRepo := new(MockTenantRepository)
	roomRepo := new(MockRoomRepository)
	userRepo := new(MockUserRepository)

	start, end := leasePeriod()
	room := createTestRoom(2)
	user, err := identity.NewUser("Known", "known@example.com", "hash", identity.RoleTenant)
	require.NoError(t, err)
	user.ID = 10

	userRepo.On("FindByEmail", ctx, "known@example.com").Return(user, nil)
	tenantRepo.On("FindByUserID", ctx, uint(10)).Return(createTestTenant(20), nil)
	roomRepo.On("FindByIDForUpdate", ctx, uint(2)).Return(room, nil)
	leaseRepo.On("Save", ctx, mock.AnythingOfType("*tenancy.Lease")).Return(nil)
	roomRepo.On("Save", ctx, room).Return(nil)

	svc := createLeaseService(leaseRepo, tenantRepo, roomRepo, userRepo)
	result, err := svc.BookTenant(ctx, BookTenantInput{
		Name:           "Known",
		Email:          "known@example.com",
		RoomID:         2,
		LeaseStartDate: start,
		LeaseEndDate:   end,
	})

	require.NoError(t, err)
	assert.False(t, result.UserCreated)
	assert.Empty(t, result.TemporaryPassword)
	require.NotNil(t, result.User)
	assert.Equal(t, uint(10), result.User.ID)
	userRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestLeaseService_BookTenant_SecondBookingFails(t *testing.T) {
	ctx := context.Background()
	leaseRepo := new(MockLeaseRepository)
	tenantRepo := new(MockTenantRepository)
	roomRepo := new(MockRoomRepository)
	userRepo := new(MockUserRepository)

	start, end := leasePeriod()
	room := createTestRoom(2)
	require.NoError(t, room.Reserve())

	user, err := identity.NewUser("Other", "other@example.com", "hash", identity.RoleTenant)
	require.NoError(t, err)
	user.ID = 11

	userRepo.On("FindByEmail", ctx, "other@example.com").Return(user, nil)
	tenantRepo.On("FindByUserID", ctx, uint(11)).Return(createTestTenant(21), nil)
	roomRepo.On("FindByIDForUpdate", ctx, uint(2)).Return(room, nil)

	svc := createLeaseService(leaseRepo, tenantRepo, roomRepo, userRepo)
	_, err = svc.BookTenant(ctx, BookTenantInput{
		Name:           "Other",
		Email:          "other@example.com",
		RoomID:         2,
		LeaseStartDate: start,
		LeaseEndDate:   end,
	})

	require.ErrorIs(t, err, shared.ErrRoomUnavailable)
	leaseRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
