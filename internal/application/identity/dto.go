package identity

import (
	"time"

	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/identity"
)

// RegisterInput contains the input for self-registration
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Phone    string
}

// LoginInput contains the input for user login
type LoginInput struct {
	Email    string
	Password string
}

// AuthResult contains tokens plus the authenticated user
type AuthResult struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
	User                  UserInfo  `json:"user"`
}

// UserInfo contains user details returned by auth endpoints
type UserInfo struct {
	ID        uint       `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	Phone     string     `json:"phone"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login"`
}

// NewUserInfo maps a domain user to the auth view
func NewUserInfo(u *identity.User) UserInfo {
	return UserInfo{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Phone:     u.Phone,
		IsActive:  u.IsActive,
		LastLogin: u.LastLogin,
	}
}

// RefreshTokenInput contains the input for token refresh
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenResult contains the result of a token refresh
type RefreshTokenResult struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
}

// LogoutInput contains the input for user logout
type LogoutInput struct {
	UserID   uint
	TokenJTI string
	TokenTTL time.Duration
}

// ChangePasswordInput contains the input for password change
type ChangePasswordInput struct {
	UserID      uint
	OldPassword string
	NewPassword string
}

// CreateUserInput contains the input for admin user creation
type CreateUserInput struct {
	Name       string
	Email      string
	Password   string // optional; a temporary one is generated when empty
	Role       string
	Phone      string
	EmployeeID *uint
}

// CreateUserResult carries the created user and the generated password,
// if one was generated. The password is only returned here.
type CreateUserResult struct {
	User              UserInfo `json:"user"`
	TemporaryPassword string   `json:"temporary_password,omitempty"`
}

// UpdateUserInput contains the mutable user fields
type UpdateUserInput struct {
	Name  *string
	Phone *string
	Role  *string
}

// FormRightInput is one form-right entry in a bulk replace
type FormRightInput struct {
	FormID         uint
	HasAddRight    bool
	HasUpdateRight bool
	HasDeleteRight bool
}

// PermissionCheck is the result of a page-level permission lookup
type PermissionCheck struct {
	HasAccess      bool `json:"has_access"`
	HasAddRight    bool `json:"has_add_right"`
	HasUpdateRight bool `json:"has_update_right"`
	HasDeleteRight bool `json:"has_delete_right"`
}
