package booking

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/booking"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/property"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/shared"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/tenancy"
)

// BookingService manages bookings and the room holds they create
type BookingService struct {
	bookingRepo booking.BookingRepository
	roomRepo    property.RoomRepository
	tenantRepo  tenancy.TenantRepository
	tx          shared.TransactionManager
	logger      *zap.Logger
}

// NewBookingService creates a new booking service
func NewBookingService(
	bookingRepo booking.BookingRepository,
	roomRepo property.RoomRepository,
	tenantRepo tenancy.TenantRepository,
	tx shared.TransactionManager,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		tenantRepo:  tenantRepo,
		tx:          tx,
		logger:      logger,
	}
}

// Create opens a pending booking and reserves the room
func (s *BookingService) Create(ctx context.Context, input CreateBookingInput) (*booking.Booking, error) {
	if _, err := s.tenantRepo.FindByID(ctx, input.TenantID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("VALIDATION_ERROR", "Tenant does not exist")
		}
		return nil, err
	}

	entry, err := booking.NewBooking(input.TenantID, input.RoomID, input.PropertyID, input.CheckInDate, input.Price)
	if err != nil {
		return nil, err
	}
	entry.Notes = input.Notes

	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		room, err := s.roomRepo.FindByIDForUpdate(ctx, input.RoomID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.NewDomainError("VALIDATION_ERROR", "Room does not exist")
			}
			return err
		}
		if room.PropertyID != input.PropertyID {
			return shared.NewDomainError("VALIDATION_ERROR", "Room does not belong to the given property")
		}
		if !room.IsBookable() {
			return shared.ErrRoomUnavailable
		}
		if err := room.Reserve(); err != nil {
			return err
		}
		if err := s.bookingRepo.Save(ctx, entry); err != nil {
			return err
		}
		return s.roomRepo.Save(ctx, room)
	})
	if err != nil {
		s.logger.Warn("Booking creation failed",
			zap.Uint("tenant_id", input.TenantID),
			zap.Uint("room_id", input.RoomID),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("Booking created",
		zap.Uint("booking_id", entry.ID),
		zap.Uint("tenant_id", entry.TenantID),
		zap.Uint("room_id", entry.RoomID))
	return entry, nil
}

// Get returns a booking by ID
func (s *BookingService) Get(ctx context.Context, id uint) (*booking.Booking, error) {
	return s.bookingRepo.FindByID(ctx, id)
}

// List returns a page of bookings
func (s *BookingService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[booking.Booking], error) {
	items, err := s.bookingRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.bookingRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// ListByTenant returns a tenant's bookings, newest first
func (s *BookingService) ListByTenant(ctx context.Context, tenantID uint) ([]booking.Booking, error) {
	return s.bookingRepo.FindByTenant(ctx, tenantID)
}

// Update applies the given changes to a booking. Confirming occupies
// the room, cancelling releases it, completing frees it at check-out.
func (s *BookingService) Update(ctx context.Context, id uint, input UpdateBookingInput) (*booking.Booking, error) {
	entry, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.CheckInDate != nil {
		entry.CheckInDate = *input.CheckInDate
	}
	if input.Price != nil {
		if input.Price.IsNegative() {
			return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
		}
		entry.Price = *input.Price
	}
	if input.Notes != nil {
		entry.Notes = *input.Notes
	}

	var roomChange func(*property.Room) error
	if input.Status != nil {
		switch booking.BookingStatus(*input.Status) {
		case booking.BookingStatusConfirmed:
			if err := entry.Confirm(); err != nil {
				return nil, err
			}
			roomChange = (*property.Room).Occupy
		case booking.BookingStatusCancelled:
			if err := entry.Cancel(); err != nil {
				return nil, err
			}
			roomChange = (*property.Room).Release
		case booking.BookingStatusCompleted:
			checkOut := entry.CheckInDate
			if input.CheckOutDate != nil {
				checkOut = *input.CheckOutDate
			}
			if err := entry.Complete(checkOut); err != nil {
				return nil, err
			}
			roomChange = (*property.Room).Release
		case booking.BookingStatusPending:
			return nil, shared.NewDomainError("INVALID_STATE", "A booking cannot go back to pending")
		default:
			return nil, shared.NewDomainError("INVALID_STATUS", "Invalid booking status")
		}
	} else if input.CheckOutDate != nil {
		entry.CheckOutDate = input.CheckOutDate
	}

	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		if err := s.bookingRepo.Save(ctx, entry); err != nil {
			return err
		}
		if roomChange == nil {
			return nil
		}
		room, err := s.roomRepo.FindByIDForUpdate(ctx, entry.RoomID)
		if err != nil {
			return err
		}
		if err := roomChange(room); err != nil {
			return err
		}
		return s.roomRepo.Save(ctx, room)
	})
	if err != nil {
		s.logger.Error("Failed to update booking", zap.Uint("booking_id", id), zap.Error(err))
		return nil, err
	}
	return entry, nil
}

// Delete removes a booking. A booking that still holds its room
// releases it on the way out.
func (s *BookingService) Delete(ctx context.Context, id uint) error {
	entry, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		if err := s.bookingRepo.Delete(ctx, id); err != nil {
			return err
		}
		if !entry.HoldsRoom() {
			return nil
		}
		room, err := s.roomRepo.FindByIDForUpdate(ctx, entry.RoomID)
		if err != nil {
			return err
		}
		if err := room.Release(); err != nil {
			return err
		}
		return s.roomRepo.Save(ctx, room)
	})
	if err != nil {
		return err
	}

	s.logger.Info("Booking deleted", zap.Uint("booking_id", id), zap.Uint("room_id", entry.RoomID))
	return nil
}
