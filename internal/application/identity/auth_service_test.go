package identity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/identity"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/shared"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/workforce"
	"github.com/shubhendumishra2009/arkedia-homes/internal/infrastructure/auth"
	"github.com/shubhendumishra2009/arkedia-homes/internal/infrastructure/config"
)

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

// MockFormRepository is a mock implementation of identity.FormRepository
type MockFormRepository struct {
	mock.Mock
}

func (m *MockFormRepository) FindByID(ctx context.Context, id uint) (*identity.FormMaster, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.FormMaster), args.Error(1)
}

func (m *MockFormRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.FormMaster, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]identity.FormMaster), args.Error(1)
}

func (m *MockFormRepository) Save(ctx context.Context, form *identity.FormMaster) error {
	args := m.Called(ctx, form)
	return args.Error(0)
}

func (m *MockFormRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFormRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFormRepository) FindByPageURL(ctx context.Context, pageURL string) (*identity.FormMaster, error) {
	args := m.Called(ctx, pageURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.FormMaster), args.Error(1)
}

// MockUserFormRightRepository is a mock implementation of identity.UserFormRightRepository
type MockUserFormRightRepository struct {
	mock.Mock
}

func (m *MockUserFormRightRepository) FindByUser(ctx context.Context, userID uint) ([]identity.UserFormRight, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]identity.UserFormRight), args.Error(1)
}

func (m *MockUserFormRightRepository) FindByUserAndForm(ctx context.Context, userID, formID uint) (*identity.UserFormRight, error) {
	args := m.Called(ctx, userID, formID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.UserFormRight), args.Error(1)
}

func (m *MockUserFormRightRepository) ReplaceForUser(ctx context.Context, userID uint, rights []identity.UserFormRight) error {
	args := m.Called(ctx, userID, rights)
	return args.Error(0)
}

func (m *MockUserFormRightRepository) DeleteForUser(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockEmployeeRepository is a mock implementation of workforce.EmployeeRepository
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) FindByID(ctx context.Context, id uint) (*workforce.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workforce.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]workforce.Employee, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]workforce.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) Save(ctx context.Context, employee *workforce.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEmployeeRepository) FindByEmail(ctx context.Context, email string) (*workforce.Employee, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workforce.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindWithProperties(ctx context.Context, id uint) (*workforce.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workforce.Employee), args.Error(1)
}

// fakeTxManager runs the callback directly without a database
type fakeTxManager struct{}

func (fakeTxManager) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func createTestUser(t *testing.T, email string) *identity.User {
	t.Helper()
	hash, err := auth.HashPassword("Password123")
	require.NoError(t, err)
	user, err := identity.NewUser("Ravi Kumar", email, hash, identity.RoleTenant)
	require.NoError(t, err)
	user.ID = 1
	return user
}

func createAuthService(userRepo *MockUserRepository) *AuthService {
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-32-characters-long",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
		Issuer:                 "test-issuer",
	})
	return NewAuthService(userRepo, jwtService, auth.NewInMemoryTokenBlacklist(), zap.NewNop())
}

func TestAuthService_Register_Success(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)

	userRepo.On("ExistsByEmail", ctx, "ravi@example.com").Return(false, nil)
	userRepo.On("Save", ctx, mock.AnythingOfType("*identity.User")).Return(nil)

	svc := createAuthService(userRepo)
	result, err := svc.Register(ctx, RegisterInput{
		Name:     "Ravi Kumar",
		Email:    "ravi@example.com",
		Password: "Password123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, "ravi@example.com", result.User.Email)
	assert.Equal(t, "tenant", result.User.Role)
	userRepo.AssertExpectations(t)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)

	userRepo.On("ExistsByEmail", ctx, "ravi@example.com").Return(true, nil)

	svc := createAuthService(userRepo)
	_, err := svc.Register(ctx, RegisterInput{
		Name:     "Ravi Kumar",
		Email:    "ravi@example.com",
		Password: "Password123",
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "DUPLICATE_RESOURCE", domainErr.Code)
	userRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestAuthService_Register_AdminRoleCoerced(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)

	userRepo.On("ExistsByEmail", ctx, "ravi@example.com").Return(false, nil)
	userRepo.On("Save", ctx, mock.AnythingOfType("*identity.User")).Return(nil)

	svc := createAuthService(userRepo)
	result, err := svc.Register(ctx, RegisterInput{
		Name:     "Ravi Kumar",
		Email:    "ravi@example.com",
		Password: "Password123",
		Role:     "admin",
	})

	require.NoError(t, err)
	assert.Equal(t, "tenant", result.User.Role)
}

func TestAuthService_Login_Success(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	user := createTestUser(t, "ravi@example.com")

	userRepo.On("FindByEmail", ctx, "ravi@example.com").Return(user, nil)
	userRepo.On("Save", ctx, user).Return(nil)

	svc := createAuthService(userRepo)
	result, err := svc.Login(ctx, LoginInput{
		Email:    "ravi@example.com",
		Password: "Password123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.Equal(t, "Bearer", result.TokenType)
	assert.NotNil(t, user.LastLogin)
	userRepo.AssertExpectations(t)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	user := createTestUser(t, "ravi@example.com")

	userRepo.On("FindByEmail", ctx, "ravi@example.com").Return(user, nil)

	svc := createAuthService(userRepo)
	_, err := svc.Login(ctx, LoginInput{
		Email:    "ravi@example.com",
		Password: "wrong",
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)

	userRepo.On("FindByEmail", ctx, "nobody@example.com").Return(nil, shared.ErrNotFound)

	svc := createAuthService(userRepo)
	_, err := svc.Login(ctx, LoginInput{
		Email:    "nobody@example.com",
		Password: "Password123",
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
}

func TestAuthService_Login_DeactivatedAccount(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	user := createTestUser(t, "ravi@example.com")
	user.Deactivate()

	userRepo.On("FindByEmail", ctx, "ravi@example.com").Return(user, nil)

	svc := createAuthService(userRepo)
	_, err := svc.Login(ctx, LoginInput{
		Email:    "ravi@example.com",
		Password: "Password123",
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "FORBIDDEN", domainErr.Code)
}

func TestAuthService_RefreshToken_Success(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	user := createTestUser(t, "ravi@example.com")

	userRepo.On("FindByEmail", ctx, "ravi@example.com").Return(user, nil)
	userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	userRepo.On("Save", ctx, user).Return(nil)

	svc := createAuthService(userRepo)
	login, err := svc.Login(ctx, LoginInput{Email: "ravi@example.com", Password: "Password123"})
	require.NoError(t, err)

	result, err := svc.RefreshToken(ctx, RefreshTokenInput{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
}

func TestAuthService_RefreshToken_Invalid(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)

	svc := createAuthService(userRepo)
	_, err := svc.RefreshToken(ctx, RefreshTokenInput{RefreshToken: "not-a-token"})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
}

func TestAuthService_ChangePassword_Success(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	user := createTestUser(t, "ravi@example.com")

	userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	userRepo.On("Save", ctx, user).Return(nil)

	svc := createAuthService(userRepo)
	err := svc.ChangePassword(ctx, ChangePasswordInput{
		UserID:      user.ID,
		OldPassword: "Password123",
		NewPassword: "NewPassword456",
	})

	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(user.Password, "NewPassword456"))
}

func TestAuthService_ChangePassword_WrongOldPassword(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	user := createTestUser(t, "ravi@example.com")

	userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

	svc := createAuthService(userRepo)
	err := svc.ChangePassword(ctx, ChangePasswordInput{
		UserID:      user.ID,
		OldPassword: "wrong",
		NewPassword: "NewPassword456",
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
	userRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestAuthService_ChangePassword_TooShort(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	user := createTestUser(t, "ravi@example.com")

	userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

	svc := createAuthService(userRepo)
	err := svc.ChangePassword(ctx, ChangePasswordInput{
		UserID:      user.ID,
		OldPassword: "Password123",
		NewPassword: "short",
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
}
