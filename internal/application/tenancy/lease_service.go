package tenancy

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/identity"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/property"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/shared"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/tenancy"
	"github.com/shubhendumishra2009/arkedia-homes/internal/infrastructure/auth"
)

const temporaryPasswordLength = 10

// LeaseService manages leases and the room status changes they imply
type LeaseService struct {
	leaseRepo  tenancy.LeaseRepository
	tenantRepo tenancy.TenantRepository
	roomRepo   property.RoomRepository
	userRepo   identity.UserRepository
	tx         shared.TransactionManager
	logger     *zap.Logger
	now        func() time.Time
}

// NewLeaseService creates a new lease service
func NewLeaseService(
	leaseRepo tenancy.LeaseRepository,
	tenantRepo tenancy.TenantRepository,
	roomRepo property.RoomRepository,
	userRepo identity.UserRepository,
	tx shared.TransactionManager,
	logger *zap.Logger,
) *LeaseService {
	return &LeaseService{
		leaseRepo:  leaseRepo,
		tenantRepo: tenantRepo,
		roomRepo:   roomRepo,
		userRepo:   userRepo,
		tx:         tx,
		logger:     logger,
		now:        time.Now,
	}
}

// Create opens a lease on an available room. Active leases occupy the
// room immediately; pending leases reserve it.
func (s *LeaseService) Create(ctx context.Context, input CreateLeaseInput) (*tenancy.Lease, error) {
	if _, err := s.tenantRepo.FindByID(ctx, input.TenantID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("VALIDATION_ERROR", "Tenant does not exist")
		}
		return nil, err
	}

	lease, err := tenancy.NewLease(input.TenantID, input.RoomID, input.LeaseStartDate, input.LeaseEndDate, input.RentAmount)
	if err != nil {
		return nil, err
	}
	if input.SecurityDeposit.IsNegative() {
		return nil, shared.NewDomainError("INVALID_DEPOSIT", "Security deposit cannot be negative")
	}
	lease.SecurityDeposit = input.SecurityDeposit
	if input.PaymentDueDay > 0 {
		if input.PaymentDueDay > 28 {
			return nil, shared.NewDomainError("INVALID_DUE_DAY", "Payment due day must be between 1 and 28")
		}
		lease.PaymentDueDay = input.PaymentDueDay
	}
	lease.Notes = input.Notes

	status := tenancy.LeaseStatusActive
	if input.Status != "" {
		status = tenancy.LeaseStatus(input.Status)
		if err := tenancy.ValidateStatus(status); err != nil {
			return nil, err
		}
	}
	if status == tenancy.LeaseStatusActive {
		if err := lease.Activate(); err != nil {
			return nil, err
		}
	} else {
		lease.Status = status
	}

	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		room, err := s.roomRepo.FindByIDForUpdate(ctx, input.RoomID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.NewDomainError("VALIDATION_ERROR", "Room does not exist")
			}
			return err
		}
		if !room.IsAvailable() {
			return shared.ErrRoomUnavailable
		}
		switch lease.Status {
		case tenancy.LeaseStatusActive:
			if err := room.Occupy(); err != nil {
				return err
			}
		case tenancy.LeaseStatusPending:
			if err := room.Reserve(); err != nil {
				return err
			}
		}
		if err := s.leaseRepo.Save(ctx, lease); err != nil {
			return err
		}
		return s.roomRepo.Save(ctx, room)
	})
	if err != nil {
		s.logger.Warn("Lease creation failed",
			zap.Uint("tenant_id", input.TenantID),
			zap.Uint("room_id", input.RoomID),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("Lease created",
		zap.Uint("lease_id", lease.ID),
		zap.Uint("tenant_id", lease.TenantID),
		zap.Uint("room_id", lease.RoomID),
		zap.String("status", string(lease.Status)))
	return lease, nil
}

// Get returns a lease by ID
func (s *LeaseService) Get(ctx context.Context, id uint) (*tenancy.Lease, error) {
	return s.leaseRepo.FindByID(ctx, id)
}

// List returns a page of leases
func (s *LeaseService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[tenancy.Lease], error) {
	items, err := s.leaseRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.leaseRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// ListByTenant returns a tenant's leases, newest first
func (s *LeaseService) ListByTenant(ctx context.Context, tenantID uint) ([]tenancy.Lease, error) {
	return s.leaseRepo.FindByTenant(ctx, tenantID)
}

// Update applies the given changes to a lease. Only active leases that
// have not ended can be updated; the tenant and room bindings never
// change. Terminating a lease releases its room.
func (s *LeaseService) Update(ctx context.Context, id uint, input UpdateLeaseInput) (*tenancy.Lease, error) {
	lease, err := s.leaseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !lease.IsEditable(s.now()) {
		return nil, shared.ErrLeaseNotEditable
	}

	if input.LeaseStartDate != nil {
		lease.LeaseStartDate = *input.LeaseStartDate
	}
	if input.LeaseEndDate != nil {
		lease.LeaseEndDate = *input.LeaseEndDate
	}
	if !lease.LeaseEndDate.After(lease.LeaseStartDate) {
		return nil, shared.NewDomainError("INVALID_PERIOD", "Lease end date must be after the start date")
	}
	if input.RentAmount != nil {
		if input.RentAmount.IsNegative() || input.RentAmount.IsZero() {
			return nil, shared.NewDomainError("INVALID_RENT", "Rent amount must be greater than zero")
		}
		lease.RentAmount = *input.RentAmount
	}
	if input.SecurityDeposit != nil {
		if input.SecurityDeposit.IsNegative() {
			return nil, shared.NewDomainError("INVALID_DEPOSIT", "Security deposit cannot be negative")
		}
		lease.SecurityDeposit = *input.SecurityDeposit
	}
	if input.PaymentDueDay != nil {
		if *input.PaymentDueDay < 1 || *input.PaymentDueDay > 28 {
			return nil, shared.NewDomainError("INVALID_DUE_DAY", "Payment due day must be between 1 and 28")
		}
		lease.PaymentDueDay = *input.PaymentDueDay
	}
	if input.Notes != nil {
		lease.Notes = *input.Notes
	}

	closing := false
	if input.Status != nil {
		target := tenancy.LeaseStatus(*input.Status)
		if err := tenancy.ValidateStatus(target); err != nil {
			return nil, err
		}
		switch target {
		case tenancy.LeaseStatusTerminated:
			if err := lease.Terminate(); err != nil {
				return nil, err
			}
			closing = true
		case tenancy.LeaseStatusExpired:
			lease.Status = tenancy.LeaseStatusExpired
			closing = true
		case tenancy.LeaseStatusActive:
		default:
			return nil, shared.NewDomainError("INVALID_STATE", "An active lease can only be terminated or expired")
		}
	}

	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		if err := s.leaseRepo.Save(ctx, lease); err != nil {
			return err
		}
		if closing {
			return s.releaseRoom(ctx, lease.RoomID)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to update lease", zap.Uint("lease_id", id), zap.Error(err))
		return nil, err
	}
	return lease, nil
}

// Delete removes a lease and frees its room. The same editability rule
// as Update applies.
func (s *LeaseService) Delete(ctx context.Context, id uint) error {
	lease, err := s.leaseRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !lease.IsEditable(s.now()) {
		return shared.ErrLeaseNotEditable
	}

	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		if err := s.leaseRepo.Delete(ctx, id); err != nil {
			return err
		}
		return s.releaseRoom(ctx, lease.RoomID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("Lease deleted", zap.Uint("lease_id", id), zap.Uint("room_id", lease.RoomID))
	return nil
}

// BulkAssign creates active leases for several tenant/room pairs at
// once. Every room is checked up front; one unavailable room fails the
// whole request and nothing is written.
func (s *LeaseService) BulkAssign(ctx context.Context, input BulkAssignInput) ([]tenancy.Lease, error) {
	if len(input.Assignments) == 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "At least one assignment is required")
	}

	var leases []tenancy.Lease
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		rooms := make([]*property.Room, 0, len(input.Assignments))
		for _, a := range input.Assignments {
			if _, err := s.tenantRepo.FindByID(ctx, a.TenantID); err != nil {
				if errors.Is(err, shared.ErrNotFound) {
					return shared.NewDomainError("VALIDATION_ERROR", "Tenant does not exist")
				}
				return err
			}
			room, err := s.roomRepo.FindByIDForUpdate(ctx, a.RoomID)
			if err != nil {
				if errors.Is(err, shared.ErrNotFound) {
					return shared.NewDomainError("VALIDATION_ERROR", "Room does not exist")
				}
				return err
			}
			if !room.IsAvailable() {
				return shared.ErrRoomUnavailable
			}
			rooms = append(rooms, room)
		}

		for i, a := range input.Assignments {
			room := rooms[i]
			lease, err := tenancy.NewLease(a.TenantID, a.RoomID, input.LeaseStartDate, input.LeaseEndDate, room.Rent)
			if err != nil {
				return err
			}
			if input.PaymentDueDay > 0 {
				lease.PaymentDueDay = input.PaymentDueDay
			}
			if err := lease.Activate(); err != nil {
				return err
			}
			if err := room.Occupy(); err != nil {
				return err
			}
			if err := s.leaseRepo.Save(ctx, lease); err != nil {
				return err
			}
			if err := s.roomRepo.Save(ctx, room); err != nil {
				return err
			}
			leases = append(leases, *lease)
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("Bulk assignment failed",
			zap.Int("assignments", len(input.Assignments)),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("Bulk assignment completed", zap.Int("leases", len(leases)))
	return leases, nil
}

// BookTenant reserves a room for a prospective tenant. The user
// account and tenant record are created on the fly when the email is
// unknown; the lease starts pending and the room is reserved.
func (s *LeaseService) BookTenant(ctx context.Context, input BookTenantInput) (*BookTenantResult, error) {
	result := &BookTenantResult{}

	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.FindByEmail(ctx, input.Email)
		if err != nil {
			if !errors.Is(err, shared.ErrNotFound) {
				return err
			}
			tempPassword, err := auth.GenerateTemporaryPassword(temporaryPasswordLength)
			if err != nil {
				return err
			}
			hash, err := auth.HashPassword(tempPassword)
			if err != nil {
				return err
			}
			user, err = identity.NewUser(input.Name, input.Email, hash, identity.RoleTenant)
			if err != nil {
				return err
			}
			user.Phone = input.Phone
			if err := s.userRepo.Save(ctx, user); err != nil {
				return err
			}
			result.UserCreated = true
			result.TemporaryPassword = tempPassword
		}
		result.User = user

		tenant, err := s.tenantRepo.FindByUserID(ctx, user.ID)
		if err != nil {
			if !errors.Is(err, shared.ErrNotFound) {
				return err
			}
			tenant, err = tenancy.NewTenant(user.ID)
			if err != nil {
				return err
			}
			tenant.Phone = input.Phone
			if err := s.tenantRepo.Save(ctx, tenant); err != nil {
				return err
			}
		}
		result.Tenant = tenant

		room, err := s.roomRepo.FindByIDForUpdate(ctx, input.RoomID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.NewDomainError("VALIDATION_ERROR", "Room does not exist")
			}
			return err
		}
		if !room.IsAvailable() {
			return shared.ErrRoomUnavailable
		}

		rent := input.RentAmount
		if rent.IsZero() {
			rent = room.Rent
		}
		lease, err := tenancy.NewLease(tenant.ID, room.ID, input.LeaseStartDate, input.LeaseEndDate, rent)
		if err != nil {
			return err
		}
		if input.SecurityDeposit.IsNegative() {
			return shared.NewDomainError("INVALID_DEPOSIT", "Security deposit cannot be negative")
		}
		lease.SecurityDeposit = input.SecurityDeposit

		if err := room.Reserve(); err != nil {
			return err
		}
		if err := s.leaseRepo.Save(ctx, lease); err != nil {
			return err
		}
		if err := s.roomRepo.Save(ctx, room); err != nil {
			return err
		}
		result.Lease = lease
		return nil
	})
	if err != nil {
		s.logger.Warn("Tenant booking failed",
			zap.String("email", input.Email),
			zap.Uint("room_id", input.RoomID),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("Tenant booked",
		zap.Uint("tenant_id", result.Tenant.ID),
		zap.Uint("lease_id", result.Lease.ID),
		zap.Bool("user_created", result.UserCreated))
	return result, nil
}

func (s *LeaseService) releaseRoom(ctx context.Context, roomID uint) error {
	room, err := s.roomRepo.FindByIDForUpdate(ctx, roomID)
	if err != nil {
		return err
	}
	if err := room.Release(); err != nil {
		return err
	}
	return s.roomRepo.Save(ctx, room)
}
