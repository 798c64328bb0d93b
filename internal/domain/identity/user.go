package identity

import (
	"strings"
	"time"

	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/shared"
)

// Role represents a user's role in the system
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
	RoleTenant   Role = "tenant"
)

// User represents a login account
type User struct {
	shared.BaseEntity
	Name       string     `gorm:"type:varchar(100);not null" json:"name"`
	Email      string     `gorm:"type:varchar(200);not null;uniqueIndex" json:"email"`
	Password   string     `gorm:"type:varchar(100);not null" json:"-"`
	Role       Role       `gorm:"type:varchar(20);not null;default:'tenant'" json:"role"`
	Phone      string     `gorm:"type:varchar(20)" json:"phone"`
	IsActive   bool       `gorm:"not null;default:true" json:"is_active"`
	LastLogin  *time.Time `json:"last_login,omitempty"`
	EmployeeID *uint      `gorm:"index" json:"employee_id,omitempty"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new user. The password must already be hashed.
func NewUser(name, email, hashedPassword string, role Role) (*User, error) {
	if err := validateUserName(name); err != nil {
		return nil, err
	}
	email = NormalizeEmail(email)
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if hashedPassword == "" {
		return nil, shared.NewDomainError("INVALID_PASSWORD", "Password hash cannot be empty")
	}
	if err := ValidateRole(role); err != nil {
		return nil, err
	}

	return &User{
		Name:     name,
		Email:    email,
		Password: hashedPassword,
		Role:     role,
		IsActive: true,
	}, nil
}

// RecordLogin stores the time of a successful login
func (u *User) RecordLogin() {
	now := time.Now()
	u.LastLogin = &now
}

// ChangePassword replaces the stored password hash
func (u *User) ChangePassword(hashedPassword string) error {
	if hashedPassword == "" {
		return shared.NewDomainError("INVALID_PASSWORD", "Password hash cannot be empty")
	}
	u.Password = hashedPassword
	return nil
}

// Activate enables the account
func (u *User) Activate() {
	u.IsActive = true
}

// Deactivate disables the account; the user can no longer log in
func (u *User) Deactivate() {
	u.IsActive = false
}

// IsAdmin returns true for admin accounts
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// LinkEmployee associates the account with an employee record
func (u *User) LinkEmployee(employeeID uint) {
	u.EmployeeID = &employeeID
}

// NormalizeEmail lowercases and trims an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateRole checks that the role is one of the known roles
func ValidateRole(r Role) error {
	switch r {
	case RoleAdmin, RoleManager, RoleEmployee, RoleTenant:
		return nil
	default:
		return shared.NewDomainError("INVALID_ROLE", "Invalid user role")
	}
}

// ValidateEmail checks the basic shape of an email address
func ValidateEmail(email string) error {
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 || !strings.Contains(email[at:], ".") {
		return shared.NewDomainError("INVALID_EMAIL", "Email format is invalid")
	}
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	return nil
}

func validateUserName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 100 characters")
	}
	return nil
}
