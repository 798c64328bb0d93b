package identity

import (
	"context"
	"errors"

	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/identity"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/shared"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/workforce"
	"github.com/shubhendumishra2009/arkedia-homes/internal/infrastructure/auth"
	"go.uber.org/zap"
)

const temporaryPasswordLength = 10

// UserService handles admin user management
type UserService struct {
	userRepo     identity.UserRepository
	formRepo     identity.FormRepository
	rightsRepo   identity.UserFormRightRepository
	employeeRepo workforce.EmployeeRepository
	tx           shared.TransactionManager
	logger       *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(
	userRepo identity.UserRepository,
	formRepo identity.FormRepository,
	rightsRepo identity.UserFormRightRepository,
	employeeRepo workforce.EmployeeRepository,
	tx shared.TransactionManager,
	logger *zap.Logger,
) *UserService {
	return &UserService{
		userRepo:     userRepo,
		formRepo:     formRepo,
		rightsRepo:   rightsRepo,
		employeeRepo: employeeRepo,
		tx:           tx,
		logger:       logger,
	}
}

// Create creates a user account on a person's behalf. When no password
// is supplied a random temporary one is generated and returned once.
// Admin accounts receive full rights on every active form; accounts
// linked to an employee flag that employee as an app user.
func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*CreateUserResult, error) {
	email := identity.NormalizeEmail(input.Email)
	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("DUPLICATE_RESOURCE", "An account with this email already exists")
	}

	role := identity.Role(input.Role)
	if role == "" {
		role = identity.RoleTenant
	}
	if err := identity.ValidateRole(role); err != nil {
		return nil, err
	}

	password := input.Password
	generated := ""
	if password == "" {
		password, err = auth.GenerateTemporaryPassword(temporaryPasswordLength)
		if err != nil {
			s.logger.Error("Failed to generate temporary password", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create user")
		}
		generated = password
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create user")
	}

	user, err := identity.NewUser(input.Name, email, hash, role)
	if err != nil {
		return nil, err
	}
	user.Phone = input.Phone
	if input.EmployeeID != nil {
		user.LinkEmployee(*input.EmployeeID)
	}

	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		if err := s.userRepo.Save(ctx, user); err != nil {
			return err
		}
		if user.IsAdmin() {
			if err := s.grantFullRights(ctx, user.ID); err != nil {
				return err
			}
		}
		if user.EmployeeID != nil {
			employee, err := s.employeeRepo.FindByID(ctx, *user.EmployeeID)
			if err != nil {
				return shared.NewDomainError("VALIDATION_ERROR", "Linked employee does not exist")
			}
			employee.MarkAppUser()
			if err := s.employeeRepo.Save(ctx, employee); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("User created",
		zap.Uint("user_id", user.ID),
		zap.String("role", string(user.Role)),
		zap.Bool("generated_password", generated != ""))

	return &CreateUserResult{
		User:              NewUserInfo(user),
		TemporaryPassword: generated,
	}, nil
}

// Get returns a user by ID
func (s *UserService) Get(ctx context.Context, id uint) (*identity.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

// List returns users matching the filter with pagination
func (s *UserService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[identity.User], error) {
	users, err := s.userRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.userRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	result := shared.NewPaginated(users, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Update applies the mutable user fields
func (s *UserService) Update(ctx context.Context, id uint, input UpdateUserInput) (*identity.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Role != nil {
		role := identity.Role(*input.Role)
		if err := identity.ValidateRole(role); err != nil {
			return nil, err
		}
		user.Role = role
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SetStatus activates or deactivates an account
func (s *UserService) SetStatus(ctx context.Context, id uint, active bool) (*identity.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if active {
		user.Activate()
	} else {
		user.Deactivate()
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Info("User status changed",
		zap.Uint("user_id", id), zap.Bool("is_active", active))
	return user, nil
}

// Delete removes an account and its form rights
func (s *UserService) Delete(ctx context.Context, id uint) error {
	return s.tx.InTx(ctx, func(ctx context.Context) error {
		if err := s.rightsRepo.DeleteForUser(ctx, id); err != nil {
			return err
		}
		if err := s.userRepo.Delete(ctx, id); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.ErrNotFound
			}
			return err
		}
		s.logger.Info("User deleted", zap.Uint("user_id", id))
		return nil
	})
}

func (s *UserService) grantFullRights(ctx context.Context, userID uint) error {
	filter := shared.DefaultFilter()
	filter.Page = 0 // all forms
	filter.Filters["is_active"] = true
	forms, err := s.formRepo.FindAll(ctx, filter)
	if err != nil {
		return err
	}
	rights := make([]identity.UserFormRight, 0, len(forms))
	for _, form := range forms {
		rights = append(rights, *identity.FullRights(userID, form.ID))
	}
	return s.rightsRepo.ReplaceForUser(ctx, userID, rights)
}
