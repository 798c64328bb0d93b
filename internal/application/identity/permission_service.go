package identity

import (
	"context"
	"errors"

	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/identity"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/shared"
	"go.uber.org/zap"
)

// PermissionService manages the form catalog and per-user form rights
type PermissionService struct {
	formRepo   identity.FormRepository
	rightsRepo identity.UserFormRightRepository
	userRepo   identity.UserRepository
	logger     *zap.Logger
}

// NewPermissionService creates a new permission service
func NewPermissionService(
	formRepo identity.FormRepository,
	rightsRepo identity.UserFormRightRepository,
	userRepo identity.UserRepository,
	logger *zap.Logger,
) *PermissionService {
	return &PermissionService{
		formRepo:   formRepo,
		rightsRepo: rightsRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// ListForms returns the form catalog
func (s *PermissionService) ListForms(ctx context.Context, filter shared.Filter) ([]identity.FormMaster, error) {
	return s.formRepo.FindAll(ctx, filter)
}

// CreateForm registers a new screen in the form catalog
func (s *PermissionService) CreateForm(ctx context.Context, formName, pageURL, menuGroup string, sortOrder int) (*identity.FormMaster, error) {
	if _, err := s.formRepo.FindByPageURL(ctx, pageURL); err == nil {
		return nil, shared.NewDomainError("DUPLICATE_RESOURCE", "A form with this page URL already exists")
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	form, err := identity.NewFormMaster(formName, pageURL, menuGroup, sortOrder)
	if err != nil {
		return nil, err
	}
	if err := s.formRepo.Save(ctx, form); err != nil {
		return nil, err
	}
	s.logger.Info("Form registered", zap.String("page_url", pageURL))
	return form, nil
}

// GetUserRights returns all form rights held by a user
func (s *PermissionService) GetUserRights(ctx context.Context, userID uint) ([]identity.UserFormRight, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.rightsRepo.FindByUser(ctx, userID)
}

// ReplaceUserRights replaces a user's form rights wholesale
func (s *PermissionService) ReplaceUserRights(ctx context.Context, userID uint, inputs []FormRightInput) error {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return err
	}

	rights := make([]identity.UserFormRight, 0, len(inputs))
	for _, in := range inputs {
		right, err := identity.NewUserFormRight(userID, in.FormID, in.HasAddRight, in.HasUpdateRight, in.HasDeleteRight)
		if err != nil {
			return err
		}
		rights = append(rights, *right)
	}

	if err := s.rightsRepo.ReplaceForUser(ctx, userID, rights); err != nil {
		return err
	}
	s.logger.Info("User form rights replaced",
		zap.Uint("user_id", userID), zap.Int("rights", len(rights)))
	return nil
}

// CheckAccess resolves a user's rights on a page. Admins implicitly
// hold every right; for others access requires a rights row.
func (s *PermissionService) CheckAccess(ctx context.Context, userID uint, pageURL string) (*PermissionCheck, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.IsAdmin() {
		return &PermissionCheck{HasAccess: true, HasAddRight: true, HasUpdateRight: true, HasDeleteRight: true}, nil
	}

	form, err := s.formRepo.FindByPageURL(ctx, pageURL)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return &PermissionCheck{}, nil
		}
		return nil, err
	}

	right, err := s.rightsRepo.FindByUserAndForm(ctx, userID, form.ID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return &PermissionCheck{}, nil
		}
		return nil, err
	}

	return &PermissionCheck{
		HasAccess:      true,
		HasAddRight:    right.HasAddRight,
		HasUpdateRight: right.HasUpdateRight,
		HasDeleteRight: right.HasDeleteRight,
	}, nil
}
