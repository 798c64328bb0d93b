package identity

import (
	"strings"

	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/shared"
)

// FormMaster describes a screen in the application that access rights
// can be granted against.
type FormMaster struct {
	shared.BaseEntity
	FormName  string `gorm:"type:varchar(100);not null" json:"form_name"`
	PageURL   string `gorm:"type:varchar(200);not null;uniqueIndex" json:"page_url"`
	MenuGroup string `gorm:"type:varchar(100)" json:"menu_group"`
	SortOrder int    `gorm:"not null;default:0" json:"sort_order"`
	IsActive  bool   `gorm:"not null;default:true" json:"is_active"`
}

// TableName returns the table name for GORM
func (FormMaster) TableName() string {
	return "form_master"
}

// NewFormMaster creates a new form entry
func NewFormMaster(formName, pageURL, menuGroup string, sortOrder int) (*FormMaster, error) {
	if strings.TrimSpace(formName) == "" {
		return nil, shared.NewDomainError("INVALID_FORM_NAME", "Form name cannot be empty")
	}
	pageURL = strings.TrimSpace(pageURL)
	if pageURL == "" || !strings.HasPrefix(pageURL, "/") {
		return nil, shared.NewDomainError("INVALID_PAGE_URL", "Page URL must start with /")
	}

	return &FormMaster{
		FormName:  formName,
		PageURL:   pageURL,
		MenuGroup: menuGroup,
		SortOrder: sortOrder,
		IsActive:  true,
	}, nil
}

// UserFormRight grants a user add/update/delete rights on a form.
// Read access is implied by the existence of the row.
type UserFormRight struct {
	shared.BaseEntity
	UserID         uint        `gorm:"not null;uniqueIndex:idx_user_form,priority:1" json:"user_id"`
	FormID         uint        `gorm:"not null;uniqueIndex:idx_user_form,priority:2" json:"form_id"`
	Form           *FormMaster `gorm:"foreignKey:FormID" json:"form,omitempty"`
	HasAddRight    bool        `gorm:"not null;default:false" json:"has_add_right"`
	HasUpdateRight bool        `gorm:"not null;default:false" json:"has_update_right"`
	HasDeleteRight bool        `gorm:"not null;default:false" json:"has_delete_right"`
}

// TableName returns the table name for GORM
func (UserFormRight) TableName() string {
	return "user_form_rights"
}

// NewUserFormRight creates a right entry for a user on a form
func NewUserFormRight(userID, formID uint, add, update, del bool) (*UserFormRight, error) {
	if userID == 0 {
		return nil, shared.NewDomainError("INVALID_USER", "User ID is required")
	}
	if formID == 0 {
		return nil, shared.NewDomainError("INVALID_FORM", "Form ID is required")
	}
	return &UserFormRight{
		UserID:         userID,
		FormID:         formID,
		HasAddRight:    add,
		HasUpdateRight: update,
		HasDeleteRight: del,
	}, nil
}

// FullRights returns a right entry with every permission granted
func FullRights(userID, formID uint) *UserFormRight {
	return &UserFormRight{
		UserID:         userID,
		FormID:         formID,
		HasAddRight:    true,
		HasUpdateRight: true,
		HasDeleteRight: true,
	}
}
