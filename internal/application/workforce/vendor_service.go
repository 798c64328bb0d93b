package workforce

import (
	"context"

	"go.uber.org/zap"

	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/shared"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/workforce"
)

// VendorService manages external service providers
type VendorService struct {
	vendorRepo workforce.VendorRepository
	logger     *zap.Logger
}

// NewVendorService creates a new vendor service
func NewVendorService(vendorRepo workforce.VendorRepository, logger *zap.Logger) *VendorService {
	return &VendorService{
		vendorRepo: vendorRepo,
		logger:     logger,
	}
}

// Create registers a vendor
func (s *VendorService) Create(ctx context.Context, input CreateVendorInput) (*workforce.Vendor, error) {
	vendor, err := workforce.NewVendor(input.CompanyName, input.ServiceType)
	if err != nil {
		return nil, err
	}
	vendor.ContactPerson = input.ContactPerson
	vendor.Email = input.Email
	vendor.Phone = input.Phone
	vendor.Address = input.Address
	vendor.PaymentTerms = input.PaymentTerms
	vendor.Notes = input.Notes

	if err := s.vendorRepo.Save(ctx, vendor); err != nil {
		s.logger.Error("Failed to create vendor", zap.String("company", input.CompanyName), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Vendor created",
		zap.Uint("vendor_id", vendor.ID),
		zap.String("company", vendor.CompanyName))
	return vendor, nil
}

// Get returns a vendor by ID
func (s *VendorService) Get(ctx context.Context, id uint) (*workforce.Vendor, error) {
	return s.vendorRepo.FindByID(ctx, id)
}

// List returns a page of vendors
func (s *VendorService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[workforce.Vendor], error) {
	items, err := s.vendorRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.vendorRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Update applies the given changes to a vendor
func (s *VendorService) Update(ctx context.Context, id uint, input UpdateVendorInput) (*workforce.Vendor, error) {
	vendor, err := s.vendorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.CompanyName != nil {
		vendor.CompanyName = *input.CompanyName
	}
	if input.ContactPerson != nil {
		vendor.ContactPerson = *input.ContactPerson
	}
	if input.Email != nil {
		vendor.Email = *input.Email
	}
	if input.Phone != nil {
		vendor.Phone = *input.Phone
	}
	if input.ServiceType != nil {
		vendor.ServiceType = *input.ServiceType
	}
	if input.Address != nil {
		vendor.Address = *input.Address
	}
	if input.PaymentTerms != nil {
		vendor.PaymentTerms = *input.PaymentTerms
	}
	if input.Status != nil {
		switch workforce.VendorStatus(*input.Status) {
		case workforce.VendorStatusBlacklisted:
			vendor.Blacklist()
		case workforce.VendorStatusActive, workforce.VendorStatusInactive:
			vendor.Status = workforce.VendorStatus(*input.Status)
		default:
			return nil, shared.NewDomainError("INVALID_STATUS", "Invalid vendor status")
		}
	}
	if input.Notes != nil {
		vendor.Notes = *input.Notes
	}

	if err := s.vendorRepo.Save(ctx, vendor); err != nil {
		s.logger.Error("Failed to update vendor", zap.Uint("vendor_id", id), zap.Error(err))
		return nil, err
	}
	return vendor, nil
}

// Delete removes a vendor
func (s *VendorService) Delete(ctx context.Context, id uint) error {
	if err := s.vendorRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Vendor deleted", zap.Uint("vendor_id", id))
	return nil
}
