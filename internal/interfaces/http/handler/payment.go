package handler

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	bookingapp "github.com/shubhendumishra2009/arkedia-homes/internal/application/booking"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/shared"
	"github.com/shubhendumishra2009/arkedia-homes/internal/interfaces/http/dto"
)

// PaymentHandler handles booking payment endpoints
type PaymentHandler struct {
	BaseHandler
	paymentService *bookingapp.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService *bookingapp.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// CreatePaymentRequest represents a request to record a payment
type CreatePaymentRequest struct {
	BookingID     uint    `json:"booking_id" binding:"required"`
	LeaseID       *uint   `json:"lease_id" binding:"omitempty,gt=0"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	PaymentDate   string  `json:"payment_date" binding:"required"`
	PaymentMethod string  `json:"payment_method" binding:"required,oneof=cash bank_transfer upi cheque card"`
	PaymentType   string  `json:"payment_type" binding:"omitempty,oneof=rent deposit meal other"`
	Status        string  `json:"status" binding:"omitempty,oneof=pending completed failed refunded"`
	ReferenceNo   string  `json:"reference_no" binding:"max=100"`
	Notes         string  `json:"notes" binding:"max=1000"`
}

// UpdatePaymentRequest represents a request to update a payment
type UpdatePaymentRequest struct {
	Amount        *float64 `json:"amount" binding:"omitempty,gt=0"`
	PaymentDate   *string  `json:"payment_date"`
	PaymentMethod *string  `json:"payment_method" binding:"omitempty,oneof=cash bank_transfer upi cheque card"`
	PaymentType   *string  `json:"payment_type" binding:"omitempty,oneof=rent deposit meal other"`
	Status        *string  `json:"status" binding:"omitempty,oneof=pending completed failed refunded"`
	ReferenceNo   *string  `json:"reference_no" binding:"omitempty,max=100"`
	Notes         *string  `json:"notes" binding:"omitempty,max=1000"`
}

// applyMonthFilter narrows the list to one calendar month or year
// using the month and year query parameters.
func applyMonthFilter(c *gin.Context, filter *shared.Filter) error {
	yearStr := c.Query("year")
	monthStr := c.Query("month")
	if yearStr == "" && monthStr == "" {
		return nil
	}
	if yearStr == "" {
		return errors.New("year is required when filtering by month")
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 1900 || year > 9999 {
		return errors.New("invalid year")
	}

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)
	if monthStr != "" {
		month, err := strconv.Atoi(monthStr)
		if err != nil || month < 1 || month > 12 {
			return errors.New("invalid month")
		}
		from = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		to = from.AddDate(0, 1, 0)
	}

	filter.Filters["date_from"] = from
	filter.Filters["date_to"] = to
	return nil
}

// Create records a payment against a booking
func (h *PaymentHandler) Create(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	paymentDate, err := parseDate(req.PaymentDate)
	if err != nil {
		h.BadRequest(c, "Invalid payment_date")
		return
	}

	payment, err := h.paymentService.Create(c.Request.Context(), bookingapp.CreatePaymentInput{
		BookingID:     req.BookingID,
		LeaseID:       req.LeaseID,
		Amount:        toDecimal(req.Amount),
		PaymentDate:   paymentDate,
		PaymentMethod: req.PaymentMethod,
		PaymentType:   req.PaymentType,
		Status:        req.Status,
		ReferenceNo:   req.ReferenceNo,
		Notes:         req.Notes,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, payment)
}

// GetByID retrieves a payment by ID
func (h *PaymentHandler) GetByID(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid payment ID")
		return
	}

	payment, err := h.paymentService.Get(c.Request.Context(), uri.ID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, payment)
}

// List returns a paginated list of payments
func (h *PaymentHandler) List(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	filterValue(c, &filter, "status", "status")
	filterValue(c, &filter, "payment_method", "payment_method")
	filterValue(c, &filter, "booking_id", "booking_id")
	filterValue(c, &filter, "lease_id", "lease_id")
	if err := applyMonthFilter(c, &filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	payments, err := h.paymentService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, payments.Items, payments.Total, payments.Page, payments.PageSize)
}

// ListByBooking returns all payments recorded against one booking
func (h *PaymentHandler) ListByBooking(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid booking ID")
		return
	}

	payments, err := h.paymentService.ListByBooking(c.Request.Context(), uri.ID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, payments)
}

// ListByLease returns all payments linked to one lease
func (h *PaymentHandler) ListByLease(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid lease ID")
		return
	}

	payments, err := h.paymentService.ListByLease(c.Request.Context(), uri.ID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, payments)
}

// Update modifies a payment and recomputes the booking's payment
// status
func (h *PaymentHandler) Update(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid payment ID")
		return
	}

	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	paymentDate, err := parseDatePtr(req.PaymentDate)
	if err != nil {
		h.BadRequest(c, "Invalid payment_date")
		return
	}

	input := bookingapp.UpdatePaymentInput{
		PaymentDate:   paymentDate,
		PaymentMethod: req.PaymentMethod,
		PaymentType:   req.PaymentType,
		Status:        req.Status,
		ReferenceNo:   req.ReferenceNo,
		Notes:         req.Notes,
	}
	if req.Amount != nil {
		input.Amount = toDecimalPtr(*req.Amount)
	}

	payment, err := h.paymentService.Update(c.Request.Context(), uri.ID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, payment)
}

// Delete removes a payment and recomputes the booking's payment
// status
func (h *PaymentHandler) Delete(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid payment ID")
		return
	}

	if err := h.paymentService.Delete(c.Request.Context(), uri.ID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
