package workforce

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/property"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/shared"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/workforce"
)

// EmployeeService manages staff records and property assignments
type EmployeeService struct {
	employeeRepo workforce.EmployeeRepository
	propertyRepo property.PropertyRepository
	logger       *zap.Logger
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(
	employeeRepo workforce.EmployeeRepository,
	propertyRepo property.PropertyRepository,
	logger *zap.Logger,
) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
		propertyRepo: propertyRepo,
		logger:       logger,
	}
}

// Create registers an employee. Emails are unique across staff.
func (s *EmployeeService) Create(ctx context.Context, input CreateEmployeeInput) (*workforce.Employee, error) {
	existing, err := s.employeeRepo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("DUPLICATE_RESOURCE", "An employee with this email already exists")
	}

	employee, err := workforce.NewEmployee(input.Name, input.Email, input.JoinDate)
	if err != nil {
		return nil, err
	}
	employee.Phone = input.Phone
	employee.Designation = input.Designation
	employee.Department = input.Department
	if err := employee.SetSalary(input.Salary); err != nil {
		return nil, err
	}
	if len(input.Properties) > 0 {
		assignments, err := s.buildAssignments(ctx, input.Properties)
		if err != nil {
			return nil, err
		}
		if err := employee.AssignProperties(assignments); err != nil {
			return nil, err
		}
	}

	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		s.logger.Error("Failed to create employee", zap.String("email", input.Email), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Employee created",
		zap.Uint("employee_id", employee.ID),
		zap.String("email", employee.Email))
	return employee, nil
}

// Get returns an employee by ID
func (s *EmployeeService) Get(ctx context.Context, id uint) (*workforce.Employee, error) {
	return s.employeeRepo.FindByID(ctx, id)
}

// GetWithProperties returns an employee with property assignments
func (s *EmployeeService) GetWithProperties(ctx context.Context, id uint) (*workforce.Employee, error) {
	return s.employeeRepo.FindWithProperties(ctx, id)
}

// List returns a page of employees
func (s *EmployeeService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[workforce.Employee], error) {
	items, err := s.employeeRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.employeeRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Update applies the given changes to an employee. Passing a non-nil
// Properties slice replaces the assignments wholesale.
func (s *EmployeeService) Update(ctx context.Context, id uint, input UpdateEmployeeInput) (*workforce.Employee, error) {
	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		employee.Name = *input.Name
	}
	if input.Phone != nil {
		employee.Phone = *input.Phone
	}
	if input.Designation != nil {
		employee.Designation = *input.Designation
	}
	if input.Department != nil {
		employee.Department = *input.Department
	}
	if input.Salary != nil {
		if err := employee.SetSalary(*input.Salary); err != nil {
			return nil, err
		}
	}
	if input.Status != nil {
		switch workforce.EmployeeStatus(*input.Status) {
		case workforce.EmployeeStatusActive, workforce.EmployeeStatusOnLeave, workforce.EmployeeStatusInactive:
			employee.Status = workforce.EmployeeStatus(*input.Status)
		default:
			return nil, shared.NewDomainError("INVALID_STATUS", "Invalid employee status")
		}
	}
	if input.Properties != nil {
		assignments, err := s.buildAssignments(ctx, input.Properties)
		if err != nil {
			return nil, err
		}
		if err := employee.AssignProperties(assignments); err != nil {
			return nil, err
		}
	}

	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		s.logger.Error("Failed to update employee", zap.Uint("employee_id", id), zap.Error(err))
		return nil, err
	}
	return employee, nil
}

// Delete removes an employee and their property assignments
func (s *EmployeeService) Delete(ctx context.Context, id uint) error {
	if _, err := s.employeeRepo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Employee deleted", zap.Uint("employee_id", id))
	return nil
}

func (s *EmployeeService) buildAssignments(ctx context.Context, in []PropertyAssignment) ([]workforce.EmployeeProperty, error) {
	assignments := make([]workforce.EmployeeProperty, 0, len(in))
	for _, a := range in {
		if _, err := s.propertyRepo.FindByID(ctx, a.PropertyID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("VALIDATION_ERROR", "Assigned property does not exist")
			}
			return nil, err
		}
		assignments = append(assignments, workforce.EmployeeProperty{
			PropertyID: a.PropertyID,
			IsPrimary:  a.IsPrimary,
		})
	}
	return assignments, nil
}
