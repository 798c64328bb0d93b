package identity

import (
	"context"

	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/shared"
)

// UserRepository defines persistence operations for users
type UserRepository interface {
	shared.Repository[User]
	FindByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// FormRepository defines persistence operations for form entries
type FormRepository interface {
	shared.Repository[FormMaster]
	FindByPageURL(ctx context.Context, pageURL string) (*FormMaster, error)
}

// UserFormRightRepository defines persistence operations for user form rights
type UserFormRightRepository interface {
	FindByUser(ctx context.Context, userID uint) ([]UserFormRight, error)
	FindByUserAndForm(ctx context.Context, userID, formID uint) (*UserFormRight, error)
	ReplaceForUser(ctx context.Context, userID uint, rights []UserFormRight) error
	DeleteForUser(ctx context.Context, userID uint) error
}
