package workforce

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/property"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/shared"
)

// EmployeeStatus represents the employment status
type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "active"
	EmployeeStatusOnLeave  EmployeeStatus = "on_leave"
	EmployeeStatusInactive EmployeeStatus = "inactive"
)

// Employee represents a staff member
type Employee struct {
	shared.BaseEntity
	Name        string             `gorm:"type:varchar(100);not null" json:"name"`
	Email       string             `gorm:"type:varchar(200);not null;uniqueIndex" json:"email"`
	Phone       string             `gorm:"type:varchar(20)" json:"phone"`
	Designation string             `gorm:"type:varchar(100)" json:"designation"`
	Department  string             `gorm:"type:varchar(100)" json:"department"`
	Salary      decimal.Decimal    `gorm:"type:numeric(10,2);not null;default:0" json:"salary"`
	JoinDate    time.Time          `gorm:"not null" json:"join_date"`
	Status      EmployeeStatus     `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	IsAppUser   bool               `gorm:"not null;default:false" json:"is_app_user"`
	Properties  []EmployeeProperty `gorm:"foreignKey:EmployeeID" json:"properties,omitempty"`
}

// TableName returns the table name for GORM
func (Employee) TableName() string {
	return "employees"
}

// EmployeeProperty assigns an employee to a property. One assignment
// per employee can be flagged primary.
type EmployeeProperty struct {
	shared.BaseEntity
	EmployeeID uint               `gorm:"not null;uniqueIndex:idx_employee_property,priority:1" json:"employee_id"`
	PropertyID uint               `gorm:"not null;uniqueIndex:idx_employee_property,priority:2" json:"property_id"`
	Property   *property.Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
	IsPrimary  bool               `gorm:"not null;default:false" json:"is_primary"`
}

// TableName returns the table name for GORM
func (EmployeeProperty) TableName() string {
	return "employee_properties"
}

// NewEmployee creates an employee record
func NewEmployee(name, email string, joinDate time.Time) (*Employee, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Employee name cannot be empty")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Employee email is invalid")
	}
	if joinDate.IsZero() {
		joinDate = time.Now()
	}

	return &Employee{
		Name:     name,
		Email:    email,
		JoinDate: joinDate,
		Salary:   decimal.Zero,
		Status:   EmployeeStatusActive,
	}, nil
}

// SetSalary updates the salary; negative values are rejected
func (e *Employee) SetSalary(salary decimal.Decimal) error {
	if salary.IsNegative() {
		return shared.NewDomainError("INVALID_SALARY", "Salary cannot be negative")
	}
	e.Salary = salary
	return nil
}

// AssignProperties replaces the employee's property assignments.
// At most one assignment may be primary.
func (e *Employee) AssignProperties(assignments []EmployeeProperty) error {
	primaries := 0
	seen := make(map[uint]bool, len(assignments))
	for i := range assignments {
		a := &assignments[i]
		if a.PropertyID == 0 {
			return shared.NewDomainError("INVALID_PROPERTY", "Property ID is required")
		}
		if seen[a.PropertyID] {
			return shared.NewDomainError("DUPLICATE_RESOURCE", "Property assigned more than once")
		}
		seen[a.PropertyID] = true
		a.EmployeeID = e.ID
		if a.IsPrimary {
			primaries++
		}
	}
	if primaries > 1 {
		return shared.NewDomainError("INVALID_INPUT", "Only one property assignment can be primary")
	}
	e.Properties = assignments
	return nil
}

// MarkAppUser flags that a login account exists for this employee
func (e *Employee) MarkAppUser() {
	e.IsAppUser = true
}
