package handler

import (
	"github.com/gin-gonic/gin"

	bookingapp "github.com/shubhendumishra2009/arkedia-homes/internal/application/booking"
	"github.com/shubhendumishra2009/arkedia-homes/internal/interfaces/http/dto"
)

// BookingHandler handles room booking endpoints
type BookingHandler struct {
	BaseHandler
	bookingService *bookingapp.BookingService
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(bookingService *bookingapp.BookingService) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
	}
}

// CreateBookingRequest represents a request to create a booking
type CreateBookingRequest struct {
	TenantID    uint    `json:"tenant_id" binding:"required"`
	RoomID      uint    `json:"room_id" binding:"required"`
	PropertyID  uint    `json:"property_id" binding:"required"`
	CheckInDate string  `json:"check_in_date" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Notes       string  `json:"notes" binding:"max=1000"`
}

// UpdateBookingRequest represents a request to update a booking
type UpdateBookingRequest struct {
	CheckInDate  *string  `json:"check_in_date"`
	CheckOutDate *string  `json:"check_out_date"`
	Price        *float64 `json:"price" binding:"omitempty,gt=0"`
	Status       *string  `json:"status" binding:"omitempty,oneof=confirmed cancelled completed"`
	Notes        *string  `json:"notes" binding:"omitempty,max=1000"`
}

// Create creates a new booking and reserves the room
func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	checkIn, err := parseDate(req.CheckInDate)
	if err != nil {
		h.BadRequest(c, "Invalid check_in_date")
		return
	}

	entry, err := h.bookingService.Create(c.Request.Context(), bookingapp.CreateBookingInput{
		TenantID:    req.TenantID,
		RoomID:      req.RoomID,
		PropertyID:  req.PropertyID,
		CheckInDate: checkIn,
		Price:       toDecimal(req.Price),
		Notes:       req.Notes,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, entry)
}

// GetByID retrieves a booking by ID
func (h *BookingHandler) GetByID(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid booking ID")
		return
	}

	entry, err := h.bookingService.Get(c.Request.Context(), uri.ID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, entry)
}

// List returns a paginated list of bookings
func (h *BookingHandler) List(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	filterValue(c, &filter, "status", "status")
	filterValue(c, &filter, "tenant_id", "tenant_id")
	filterValue(c, &filter, "property_id", "property_id")

	bookings, err := h.bookingService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, bookings.Items, bookings.Total, bookings.Page, bookings.PageSize)
}

// ListByTenant returns all bookings of one tenant
func (h *BookingHandler) ListByTenant(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	bookings, err := h.bookingService.ListByTenant(c.Request.Context(), uri.ID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, bookings)
}

// Update modifies a booking, moving its room through the matching state
func (h *BookingHandler) Update(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid booking ID")
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	checkIn, err := parseDatePtr(req.CheckInDate)
	if err != nil {
		h.BadRequest(c, "Invalid check_in_date")
		return
	}
	checkOut, err := parseDatePtr(req.CheckOutDate)
	if err != nil {
		h.BadRequest(c, "Invalid check_out_date")
		return
	}

	input := bookingapp.UpdateBookingInput{
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Status:       req.Status,
		Notes:        req.Notes,
	}
	if req.Price != nil {
		input.Price = toDecimalPtr(*req.Price)
	}

	entry, err := h.bookingService.Update(c.Request.Context(), uri.ID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, entry)
}

// Delete removes a booking, releasing its room when still held
func (h *BookingHandler) Delete(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid booking ID")
		return
	}

	if err := h.bookingService.Delete(c.Request.Context(), uri.ID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
