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
)

func createUserService(
	userRepo *MockUserRepository,
	formRepo *MockFormRepository,
	rightsRepo *MockUserFormRightRepository,
	employeeRepo *MockEmployeeRepository,
) *UserService {
	return NewUserService(userRepo, formRepo, rightsRepo, employeeRepo, fakeTxManager{}, zap.NewNop())
}

func TestUserService_Create_GeneratesTemporaryPassword(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	formRepo := new(MockFormRepository)
	rightsRepo := new(MockUserFormRightRepository)
	employeeRepo := new(MockEmployeeRepository)

	userRepo.On("ExistsByEmail", ctx, "priya@example.com").Return(false, nil)
	userRepo.On("Save", ctx, mock.AnythingOfType("*identity.User")).Return(nil)

	svc := createUserService(userRepo, formRepo, rightsRepo, employeeRepo)
	result, err := svc.Create(ctx, CreateUserInput{
		Name:  "Priya Sharma",
		Email: "priya@example.com",
		Role:  "manager",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.TemporaryPassword)
	assert.GreaterOrEqual(t, len(result.TemporaryPassword), 8)
	assert.Equal(t, "manager", result.User.Role)
	userRepo.AssertExpectations(t)
}

func TestUserService_Create_KeepsSuppliedPassword(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	formRepo := new(MockFormRepository)
	rightsRepo := new(MockUserFormRightRepository)
	employeeRepo := new(MockEmployeeRepository)

	var saved *identity.User
	userRepo.On("ExistsByEmail", ctx, "priya@example.com").Return(false, nil)
	userRepo.On("Save", ctx, mock.AnythingOfType("*identity.User")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*identity.User) }).
		Return(nil)

	svc := createUserService(userRepo, formRepo, rightsRepo, employeeRepo)
	result, err := svc.Create(ctx, CreateUserInput{
		Name:     "Priya Sharma",
		Email:    "priya@example.com",
		Password: "Chosen123",
	})

	require.NoError(t, err)
	assert.Empty(t, result.TemporaryPassword)
	require.NotNil(t, saved)
	assert.True(t, auth.CheckPassword(saved.Password, "Chosen123"))
}

func TestUserService_Create_AdminGetsFullRights(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	formRepo := new(MockFormRepository)
	rightsRepo := new(MockUserFormRightRepository)
	employeeRepo := new(MockEmployeeRepository)

	form, err := identity.NewFormMaster("Tenants", "/tenants", "Operations", 1)
	require.NoError(t, err)
	form.ID = 3

	userRepo.On("ExistsByEmail", ctx, "admin@example.com").Return(false, nil)
	userRepo.On("Save", ctx, mock.AnythingOfType("*identity.User")).Return(nil)
	formRepo.On("FindAll", ctx, mock.AnythingOfType("shared.Filter")).Return([]identity.FormMaster{*form}, nil)
	rightsRepo.On("ReplaceForUser", ctx, mock.AnythingOfType("uint"), mock.MatchedBy(func(rights []identity.UserFormRight) bool {
		return len(rights) == 1 && rights[0].FormID == 3 &&
			rights[0].HasAddRight && rights[0].HasUpdateRight && rights[0].HasDeleteRight
	})).Return(nil)

	svc := createUserService(userRepo, formRepo, rightsRepo, employeeRepo)
	_, err = svc.Create(ctx, CreateUserInput{
		Name:     "Admin",
		Email:    "admin@example.com",
		Password: "Admin12345",
		Role:     "admin",
	})

	require.NoError(t, err)
	rightsRepo.AssertExpectations(t)
}

func TestUserService_Create_LinkedEmployeeMarkedAppUser(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	formRepo := new(MockFormRepository)
	rightsRepo := new(MockUserFormRightRepository)
	employeeRepo := new(MockEmployeeRepository)

	employee, err := workforce.NewEmployee("Arun", "arun@example.com", time.Now())
	require.NoError(t, err)
	employee.ID = 9
	employeeID := uint(9)

	userRepo.On("ExistsByEmail", ctx, "arun@example.com").Return(false, nil)
	userRepo.On("Save", ctx, mock.AnythingOfType("*identity.User")).Return(nil)
	employeeRepo.On("FindByID", ctx, employeeID).Return(employee, nil)
	employeeRepo.On("Save", ctx, employee).Return(nil)

	svc := createUserService(userRepo, formRepo, rightsRepo, employeeRepo)
	_, err = svc.Create(ctx, CreateUserInput{
		Name:       "Arun",
		Email:      "arun@example.com",
		Password:   "Staff12345",
		Role:       "employee",
		EmployeeID: &employeeID,
	})

	require.NoError(t, err)
	assert.True(t, employee.IsAppUser)
	employeeRepo.AssertExpectations(t)
}

func TestUserService_Create_MissingLinkedEmployee(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	formRepo := new(MockFormRepository)
	rightsRepo := new(MockUserFormRightRepository)
	employeeRepo := new(MockEmployeeRepository)

	employeeID := uint(99)
	userRepo.On("ExistsByEmail", ctx, "arun@example.com").Return(false, nil)
	userRepo.On("Save", ctx, mock.AnythingOfType("*identity.User")).Return(nil)
	employeeRepo.On("FindByID", ctx, employeeID).Return(nil, shared.ErrNotFound)

	svc := createUserService(userRepo, formRepo, rightsRepo, employeeRepo)
	_, err := svc.Create(ctx, CreateUserInput{
		Name:       "Arun",
		Email:      "arun@example.com",
		Password:   "Staff12345",
		Role:       "employee",
		EmployeeID: &employeeID,
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
}

func TestUserService_Delete_RemovesRightsFirst(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	formRepo := new(MockFormRepository)
	rightsRepo := new(MockUserFormRightRepository)
	employeeRepo := new(MockEmployeeRepository)

	userID := uint(5)
	rightsRepo.On("DeleteForUser", ctx, userID).Return(nil)
	userRepo.On("Delete", ctx, userID).Return(nil)

	svc := createUserService(userRepo, formRepo, rightsRepo, employeeRepo)
	err := svc.Delete(ctx, userID)

	require.NoError(t, err)
	rightsRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}
