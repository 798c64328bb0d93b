package workforce

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/property"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/shared"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/workforce"
)

// PurchaseService manages procurement entries
type PurchaseService struct {
	purchaseRepo workforce.PurchaseRepository
	propertyRepo property.PropertyRepository
	vendorRepo   workforce.VendorRepository
	logger       *zap.Logger
}

// NewPurchaseService creates a new purchase service
func NewPurchaseService(
	purchaseRepo workforce.PurchaseRepository,
	propertyRepo property.PropertyRepository,
	vendorRepo workforce.VendorRepository,
	logger *zap.Logger,
) *PurchaseService {
	return &PurchaseService{
		purchaseRepo: purchaseRepo,
		propertyRepo: propertyRepo,
		vendorRepo:   vendorRepo,
		logger:       logger,
	}
}

// Create records a purchase for a property
func (s *PurchaseService) Create(ctx context.Context, input CreatePurchaseInput) (*workforce.Purchase, error) {
	if _, err := s.propertyRepo.FindByID(ctx, input.PropertyID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("VALIDATION_ERROR", "Property does not exist")
		}
		return nil, err
	}
	if input.VendorID != nil {
		if err := s.checkVendor(ctx, *input.VendorID); err != nil {
			return nil, err
		}
	}

	purchase, err := workforce.NewPurchase(input.PropertyID, input.ItemName, input.Category, input.Quantity, input.UnitPrice, input.PurchaseDate)
	if err != nil {
		return nil, err
	}
	purchase.VendorID = input.VendorID
	if input.Priority != "" {
		priority := workforce.PurchasePriority(input.Priority)
		if err := workforce.ValidatePriority(priority); err != nil {
			return nil, err
		}
		purchase.Priority = priority
	}
	purchase.Notes = input.Notes

	if err := s.purchaseRepo.Save(ctx, purchase); err != nil {
		s.logger.Error("Failed to create purchase",
			zap.Uint("property_id", input.PropertyID),
			zap.String("item", input.ItemName),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("Purchase recorded",
		zap.Uint("purchase_id", purchase.ID),
		zap.Uint("property_id", purchase.PropertyID),
		zap.String("item", purchase.ItemName))
	return purchase, nil
}

// Get returns a purchase by ID
func (s *PurchaseService) Get(ctx context.Context, id uint) (*workforce.Purchase, error) {
	return s.purchaseRepo.FindByID(ctx, id)
}

// List returns a page of purchases
func (s *PurchaseService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[workforce.Purchase], error) {
	items, err := s.purchaseRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.purchaseRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Update applies the given changes to a purchase. Quantity and price
// changes recompute the total.
func (s *PurchaseService) Update(ctx context.Context, id uint, input UpdatePurchaseInput) (*workforce.Purchase, error) {
	purchase, err := s.purchaseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.VendorID != nil {
		if err := s.checkVendor(ctx, *input.VendorID); err != nil {
			return nil, err
		}
		purchase.VendorID = input.VendorID
	}
	if input.ItemName != nil {
		purchase.ItemName = *input.ItemName
	}
	if input.Category != nil {
		purchase.Category = *input.Category
	}
	if input.Quantity != nil || input.UnitPrice != nil {
		quantity := purchase.Quantity
		unitPrice := purchase.UnitPrice
		if input.Quantity != nil {
			quantity = *input.Quantity
		}
		if input.UnitPrice != nil {
			unitPrice = *input.UnitPrice
		}
		if err := purchase.Reprice(quantity, unitPrice); err != nil {
			return nil, err
		}
	}
	if input.PurchaseDate != nil {
		purchase.PurchaseDate = *input.PurchaseDate
	}
	if input.Priority != nil {
		priority := workforce.PurchasePriority(*input.Priority)
		if err := workforce.ValidatePriority(priority); err != nil {
			return nil, err
		}
		purchase.Priority = priority
	}
	if input.Status != nil {
		switch workforce.PurchaseStatus(*input.Status) {
		case workforce.PurchaseStatusPending, workforce.PurchaseStatusOrdered,
			workforce.PurchaseStatusReceived, workforce.PurchaseStatusCancelled:
			purchase.Status = workforce.PurchaseStatus(*input.Status)
		default:
			return nil, shared.NewDomainError("INVALID_STATUS", "Invalid purchase status")
		}
	}
	if input.Notes != nil {
		purchase.Notes = *input.Notes
	}

	if err := s.purchaseRepo.Save(ctx, purchase); err != nil {
		s.logger.Error("Failed to update purchase", zap.Uint("purchase_id", id), zap.Error(err))
		return nil, err
	}
	return purchase, nil
}

// Delete removes a purchase
func (s *PurchaseService) Delete(ctx context.Context, id uint) error {
	if err := s.purchaseRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Purchase deleted", zap.Uint("purchase_id", id))
	return nil
}

func (s *PurchaseService) checkVendor(ctx context.Context, vendorID uint) error {
	vendor, err := s.vendorRepo.FindByID(ctx, vendorID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("VALIDATION_ERROR", "Vendor does not exist")
		}
		return err
	}
	if vendor.Status == workforce.VendorStatusBlacklisted {
		return shared.NewDomainError("VENDOR_BLACKLISTED", "Vendor is blacklisted and cannot be used")
	}
	return nil
}
