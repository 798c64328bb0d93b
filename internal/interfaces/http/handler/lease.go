package handler

import (
	"github.com/gin-gonic/gin"

	bookingapp "github.com/shubhendumishra2009/arkedia-homes/internal/application/booking"
	tenancyapp "github.com/shubhendumishra2009/arkedia-homes/internal/application/tenancy"
	"github.com/shubhendumishra2009/arkedia-homes/internal/interfaces/http/dto"
)

// LeaseHandler handles lease endpoints
type LeaseHandler struct {
	BaseHandler
	leaseService   *tenancyapp.LeaseService
	paymentService *bookingapp.PaymentService
}

// NewLeaseHandler creates a new LeaseHandler
func NewLeaseHandler(leaseService *tenancyapp.LeaseService, paymentService *bookingapp.PaymentService) *LeaseHandler {
	return &LeaseHandler{
		leaseService:   leaseService,
		paymentService: paymentService,
	}
}

// CreateLeaseRequest represents a request to create a lease
type CreateLeaseRequest struct {
	TenantID        uint     `json:"tenant_id" binding:"required"`
	RoomID          uint     `json:"room_id" binding:"required"`
	LeaseStartDate  string   `json:"lease_start_date" binding:"required"`
	LeaseEndDate    string   `json:"lease_end_date" binding:"required"`
	RentAmount      float64  `json:"rent_amount" binding:"required,gt=0"`
	SecurityDeposit *float64 `json:"security_deposit" binding:"omitempty,gte=0"`
	PaymentDueDay   int      `json:"payment_due_day" binding:"omitempty,min=1,max=28"`
	Status          string   `json:"status" binding:"omitempty,oneof=active pending"`
	Notes           string   `json:"notes" binding:"max=1000"`
}

// UpdateLeaseRequest represents a request to update a lease
type UpdateLeaseRequest struct {
	LeaseStartDate  *string  `json:"lease_start_date"`
	LeaseEndDate    *string  `json:"lease_end_date"`
	RentAmount      *float64 `json:"rent_amount" binding:"omitempty,gt=0"`
	SecurityDeposit *float64 `json:"security_deposit" binding:"omitempty,gte=0"`
	PaymentDueDay   *int     `json:"payment_due_day" binding:"omitempty,min=1,max=28"`
	Status          *string  `json:"status" binding:"omitempty,oneof=active terminated expired"`
	Notes           *string  `json:"notes" binding:"omitempty,max=1000"`
}

// BulkAssignRequest assigns several tenants to rooms in one shot
type BulkAssignRequest struct {
	Assignments []struct {
		TenantID uint `json:"tenant_id" binding:"required"`
		RoomID   uint `json:"room_id" binding:"required"`
	} `json:"assignments" binding:"required,dive"`
	LeaseStartDate string `json:"lease_start_date" binding:"required"`
	LeaseEndDate   string `json:"lease_end_date" binding:"required"`
	PaymentDueDay  int    `json:"payment_due_day" binding:"omitempty,min=1,max=28"`
}

// Create creates a new lease and claims the room
func (h *LeaseHandler) Create(c *gin.Context) {
	var req CreateLeaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	start, err := parseDate(req.LeaseStartDate)
	if err != nil {
		h.BadRequest(c, "Invalid lease_start_date")
		return
	}
	end, err := parseDate(req.LeaseEndDate)
	if err != nil {
		h.BadRequest(c, "Invalid lease_end_date")
		return
	}

	input := tenancyapp.CreateLeaseInput{
		TenantID:       req.TenantID,
		RoomID:         req.RoomID,
		LeaseStartDate: start,
		LeaseEndDate:   end,
		RentAmount:     toDecimal(req.RentAmount),
		PaymentDueDay:  req.PaymentDueDay,
		Status:         req.Status,
		Notes:          req.Notes,
	}
	if req.SecurityDeposit != nil {
		input.SecurityDeposit = toDecimal(*req.SecurityDeposit)
	}

	lease, err := h.leaseService.Create(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, lease)
}

// GetByID retrieves a lease by ID
func (h *LeaseHandler) GetByID(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid lease ID")
		return
	}

	lease, err := h.leaseService.Get(c.Request.Context(), uri.ID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, lease)
}

// List returns a paginated list of leases
func (h *LeaseHandler) List(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	filterValue(c, &filter, "status", "status")
	filterValue(c, &filter, "tenant_id", "tenant_id")
	filterValue(c, &filter, "room_id", "room_id")
	filterValue(c, &filter, "payment_status", "payment_status")

	leases, err := h.leaseService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, leases.Items, leases.Total, leases.Page, leases.PageSize)
}

// Update modifies an editable lease
func (h *LeaseHandler) Update(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid lease ID")
		return
	}

	var req UpdateLeaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	start, err := parseDatePtr(req.LeaseStartDate)
	if err != nil {
		h.BadRequest(c, "Invalid lease_start_date")
		return
	}
	end, err := parseDatePtr(req.LeaseEndDate)
	if err != nil {
		h.BadRequest(c, "Invalid lease_end_date")
		return
	}

	input := tenancyapp.UpdateLeaseInput{
		LeaseStartDate: start,
		LeaseEndDate:   end,
		PaymentDueDay:  req.PaymentDueDay,
		Status:         req.Status,
		Notes:          req.Notes,
	}
	if req.RentAmount != nil {
		input.RentAmount = toDecimalPtr(*req.RentAmount)
	}
	if req.SecurityDeposit != nil {
		input.SecurityDeposit = toDecimalPtr(*req.SecurityDeposit)
	}

	lease, err := h.leaseService.Update(c.Request.Context(), uri.ID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, lease)
}

// Delete removes an editable lease and frees its room
func (h *LeaseHandler) Delete(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid lease ID")
		return
	}

	if err := h.leaseService.Delete(c.Request.Context(), uri.ID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// BulkAssign creates active leases for several tenant-room pairs at once
func (h *LeaseHandler) BulkAssign(c *gin.Context) {
	var req BulkAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	start, err := parseDate(req.LeaseStartDate)
	if err != nil {
		h.BadRequest(c, "Invalid lease_start_date")
		return
	}
	end, err := parseDate(req.LeaseEndDate)
	if err != nil {
		h.BadRequest(c, "Invalid lease_end_date")
		return
	}

	input := tenancyapp.BulkAssignInput{
		LeaseStartDate: start,
		LeaseEndDate:   end,
		PaymentDueDay:  req.PaymentDueDay,
	}
	for _, a := range req.Assignments {
		input.Assignments = append(input.Assignments, tenancyapp.RoomAssignment{
			TenantID: a.TenantID,
			RoomID:   a.RoomID,
		})
	}

	leases, err := h.leaseService.BulkAssign(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, leases)
}

// PaymentSummary reports a lease's charge against its completed payments
func (h *LeaseHandler) PaymentSummary(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid lease ID")
		return
	}

	summary, err := h.paymentService.Summary(c.Request.Context(), uri.ID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summary)
}
