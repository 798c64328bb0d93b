package handler

import (
	"github.com/gin-gonic/gin"

	tenancyapp "github.com/shubhendumishra2009/arkedia-homes/internal/application/tenancy"
	"github.com/shubhendumishra2009/arkedia-homes/internal/interfaces/http/dto"
)

// TenantHandler handles tenant endpoints
type TenantHandler struct {
	BaseHandler
	tenantService *tenancyapp.TenantService
	leaseService  *tenancyapp.LeaseService
}

// NewTenantHandler creates a new TenantHandler
func NewTenantHandler(tenantService *tenancyapp.TenantService, leaseService *tenancyapp.LeaseService) *TenantHandler {
	return &TenantHandler{
		tenantService: tenantService,
		leaseService:  leaseService,
	}
}

// CreateTenantRequest represents a request to create a tenant profile
type CreateTenantRequest struct {
	UserID                uint    `json:"user_id" binding:"required"`
	Phone                 string  `json:"phone" binding:"max=20"`
	Occupation            string  `json:"occupation" binding:"max=100"`
	Company               string  `json:"company" binding:"max=200"`
	EmergencyContactName  string  `json:"emergency_contact_name" binding:"max=100"`
	EmergencyContactPhone string  `json:"emergency_contact_phone" binding:"max=20"`
	IDProofType           string  `json:"id_proof_type" binding:"max=50"`
	IDProofNumber         string  `json:"id_proof_number" binding:"max=100"`
	MoveInDate            *string `json:"move_in_date"`
}

// UpdateTenantRequest represents a request to update a tenant profile
type UpdateTenantRequest struct {
	Phone                 *string `json:"phone" binding:"omitempty,max=20"`
	Occupation            *string `json:"occupation" binding:"omitempty,max=100"`
	Company               *string `json:"company" binding:"omitempty,max=200"`
	EmergencyContactName  *string `json:"emergency_contact_name" binding:"omitempty,max=100"`
	EmergencyContactPhone *string `json:"emergency_contact_phone" binding:"omitempty,max=20"`
	IDProofType           *string `json:"id_proof_type" binding:"omitempty,max=50"`
	IDProofNumber         *string `json:"id_proof_number" binding:"omitempty,max=100"`
	MoveInDate            *string `json:"move_in_date"`
	MoveOutDate           *string `json:"move_out_date"`
	Status                *string `json:"status" binding:"omitempty,oneof=active notice moved_out"`
}

// BookTenantRequest books a room for a prospective tenant, creating the
// user account and tenant profile on the fly when needed
type BookTenantRequest struct {
	Name            string   `json:"name" binding:"required,min=1,max=100"`
	Email           string   `json:"email" binding:"required,email,max=200"`
	Phone           string   `json:"phone" binding:"max=20"`
	RoomID          uint     `json:"room_id" binding:"required"`
	LeaseStartDate  string   `json:"lease_start_date" binding:"required"`
	LeaseEndDate    string   `json:"lease_end_date" binding:"required"`
	RentAmount      *float64 `json:"rent_amount" binding:"omitempty,gt=0"`
	SecurityDeposit *float64 `json:"security_deposit" binding:"omitempty,gte=0"`
}

// Create creates a new tenant profile for an existing user
func (h *TenantHandler) Create(c *gin.Context) {
	var req CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	moveIn, err := parseDatePtr(req.MoveInDate)
	if err != nil {
		h.BadRequest(c, "Invalid move_in_date")
		return
	}

	tenant, err := h.tenantService.Create(c.Request.Context(), tenancyapp.CreateTenantInput{
		UserID:                req.UserID,
		Phone:                 req.Phone,
		Occupation:            req.Occupation,
		Company:               req.Company,
		EmergencyContactName:  req.EmergencyContactName,
		EmergencyContactPhone: req.EmergencyContactPhone,
		IDProofType:           req.IDProofType,
		IDProofNumber:         req.IDProofNumber,
		MoveInDate:            moveIn,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, tenant)
}

// GetByID retrieves a tenant by ID
func (h *TenantHandler) GetByID(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	tenant, err := h.tenantService.Get(c.Request.Context(), uri.ID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, tenant)
}

// GetLeases returns a tenant's leases
func (h *TenantHandler) GetLeases(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	leases, err := h.leaseService.ListByTenant(c.Request.Context(), uri.ID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, leases)
}

// List returns a paginated list of tenants
func (h *TenantHandler) List(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	filterValue(c, &filter, "status", "status")

	tenants, err := h.tenantService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, tenants.Items, tenants.Total, tenants.Page, tenants.PageSize)
}

// Update modifies a tenant profile
func (h *TenantHandler) Update(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	moveIn, err := parseDatePtr(req.MoveInDate)
	if err != nil {
		h.BadRequest(c, "Invalid move_in_date")
		return
	}
	moveOut, err := parseDatePtr(req.MoveOutDate)
	if err != nil {
		h.BadRequest(c, "Invalid move_out_date")
		return
	}

	tenant, err := h.tenantService.Update(c.Request.Context(), uri.ID, tenancyapp.UpdateTenantInput{
		Phone:                 req.Phone,
		Occupation:            req.Occupation,
		Company:               req.Company,
		EmergencyContactName:  req.EmergencyContactName,
		EmergencyContactPhone: req.EmergencyContactPhone,
		IDProofType:           req.IDProofType,
		IDProofNumber:         req.IDProofNumber,
		MoveInDate:            moveIn,
		MoveOutDate:           moveOut,
		Status:                req.Status,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, tenant)
}

// Delete removes a tenant without active or pending leases
func (h *TenantHandler) Delete(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	if err := h.tenantService.Delete(c.Request.Context(), uri.ID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Book reserves a room for a prospective tenant in one operation
func (h *TenantHandler) Book(c *gin.Context) {
	var req BookTenantRequest
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

	input := tenancyapp.BookTenantInput{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		RoomID:         req.RoomID,
		LeaseStartDate: start,
		LeaseEndDate:   end,
	}
	if req.RentAmount != nil {
		input.RentAmount = toDecimal(*req.RentAmount)
	}
	if req.SecurityDeposit != nil {
		input.SecurityDeposit = toDecimal(*req.SecurityDeposit)
	}

	result, err := h.leaseService.BookTenant(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}
