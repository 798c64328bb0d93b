package tenancy

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/identity"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/shared"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/tenancy"
)

// TenantService manages tenant records
type TenantService struct {
	tenantRepo tenancy.TenantRepository
	userRepo   identity.UserRepository
	logger     *zap.Logger
}

// NewTenantService creates a new tenant service
func NewTenantService(
	tenantRepo tenancy.TenantRepository,
	userRepo identity.UserRepository,
	logger *zap.Logger,
) *TenantService {
	return &TenantService{
		tenantRepo: tenantRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// Create registers a tenant record for an existing user account. A
// user can back at most one tenant.
func (s *TenantService) Create(ctx context.Context, input CreateTenantInput) (*tenancy.Tenant, error) {
	if _, err := s.userRepo.FindByID(ctx, input.UserID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("VALIDATION_ERROR", "User account does not exist")
		}
		return nil, err
	}

	existing, err := s.tenantRepo.FindByUserID(ctx, input.UserID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("DUPLICATE_RESOURCE", "A tenant record already exists for this user")
	}

	tenant, err := tenancy.NewTenant(input.UserID)
	if err != nil {
		return nil, err
	}
	tenant.Phone = input.Phone
	tenant.Occupation = input.Occupation
	tenant.Company = input.Company
	tenant.EmergencyContactName = input.EmergencyContactName
	tenant.EmergencyContactPhone = input.EmergencyContactPhone
	tenant.IDProofType = input.IDProofType
	tenant.IDProofNumber = input.IDProofNumber
	if input.MoveInDate != nil {
		tenant.MoveIn(*input.MoveInDate)
	}

	if err := s.tenantRepo.Save(ctx, tenant); err != nil {
		s.logger.Error("Failed to create tenant", zap.Uint("user_id", input.UserID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Tenant created",
		zap.Uint("tenant_id", tenant.ID),
		zap.Uint("user_id", tenant.UserID))
	return tenant, nil
}

// Get returns a tenant by ID
func (s *TenantService) Get(ctx context.Context, id uint) (*tenancy.Tenant, error) {
	return s.tenantRepo.FindByID(ctx, id)
}

// GetWithLeases returns a tenant with its lease history, newest first
func (s *TenantService) GetWithLeases(ctx context.Context, id uint) (*tenancy.Tenant, error) {
	return s.tenantRepo.FindWithLeases(ctx, id)
}

// GetByUserID returns the tenant record backing a user account
func (s *TenantService) GetByUserID(ctx context.Context, userID uint) (*tenancy.Tenant, error) {
	return s.tenantRepo.FindByUserID(ctx, userID)
}

// List returns a page of tenants
func (s *TenantService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[tenancy.Tenant], error) {
	items, err := s.tenantRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.tenantRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Update applies the given changes to a tenant
func (s *TenantService) Update(ctx context.Context, id uint, input UpdateTenantInput) (*tenancy.Tenant, error) {
	tenant, err := s.tenantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Phone != nil {
		tenant.Phone = *input.Phone
	}
	if input.Occupation != nil {
		tenant.Occupation = *input.Occupation
	}
	if input.Company != nil {
		tenant.Company = *input.Company
	}
	if input.EmergencyContactName != nil {
		tenant.EmergencyContactName = *input.EmergencyContactName
	}
	if input.EmergencyContactPhone != nil {
		tenant.EmergencyContactPhone = *input.EmergencyContactPhone
	}
	if input.IDProofType != nil {
		tenant.IDProofType = *input.IDProofType
	}
	if input.IDProofNumber != nil {
		tenant.IDProofNumber = *input.IDProofNumber
	}
	if input.MoveInDate != nil {
		tenant.MoveIn(*input.MoveInDate)
	}
	if input.MoveOutDate != nil {
		tenant.MoveOut(*input.MoveOutDate)
	}
	if input.Status != nil {
		switch tenancy.TenantStatus(*input.Status) {
		case tenancy.TenantStatusActive, tenancy.TenantStatusNotice, tenancy.TenantStatusMovedOut:
			tenant.Status = tenancy.TenantStatus(*input.Status)
		default:
			return nil, shared.NewDomainError("INVALID_STATUS", "Invalid tenant status")
		}
	}

	if err := s.tenantRepo.Save(ctx, tenant); err != nil {
		s.logger.Error("Failed to update tenant", zap.Uint("tenant_id", id), zap.Error(err))
		return nil, err
	}
	return tenant, nil
}

// Delete removes a tenant. Tenants with an active lease cannot be
// deleted.
func (s *TenantService) Delete(ctx context.Context, id uint) error {
	tenant, err := s.tenantRepo.FindWithLeases(ctx, id)
	if err != nil {
		return err
	}
	for _, lease := range tenant.Leases {
		if lease.Status == tenancy.LeaseStatusActive || lease.Status == tenancy.LeaseStatusPending {
			return shared.NewDomainError("TENANT_HAS_LEASES", "Tenant has an open lease and cannot be deleted")
		}
	}

	if err := s.tenantRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Tenant deleted", zap.Uint("tenant_id", id))
	return nil
}
