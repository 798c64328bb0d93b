package handler

import (
	"github.com/gin-gonic/gin"

	workforceapp "github.com/shubhendumishra2009/arkedia-homes/internal/application/workforce"
	"github.com/shubhendumishra2009/arkedia-homes/internal/interfaces/http/dto"
)

// VendorHandler handles vendor endpoints
type VendorHandler struct {
	BaseHandler
	vendorService *workforceapp.VendorService
}

// NewVendorHandler creates a new VendorHandler
func NewVendorHandler(vendorService *workforceapp.VendorService) *VendorHandler {
	return &VendorHandler{
		vendorService: vendorService,
	}
}

// CreateVendorRequest represents a request to create a vendor
type CreateVendorRequest struct {
	CompanyName   string `json:"company_name" binding:"required,max=150"`
	ContactPerson string `json:"contact_person" binding:"max=100"`
	Email         string `json:"email" binding:"omitempty,email"`
	Phone         string `json:"phone" binding:"max=20"`
	ServiceType   string `json:"service_type" binding:"max=100"`
	Address       string `json:"address" binding:"max=500"`
	PaymentTerms  string `json:"payment_terms" binding:"max=200"`
	Notes         string `json:"notes" binding:"max=1000"`
}

// UpdateVendorRequest represents a request to update a vendor
type UpdateVendorRequest struct {
	CompanyName   *string `json:"company_name" binding:"omitempty,max=150"`
	ContactPerson *string `json:"contact_person" binding:"omitempty,max=100"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Phone         *string `json:"phone" binding:"omitempty,max=20"`
	ServiceType   *string `json:"service_type" binding:"omitempty,max=100"`
	Address       *string `json:"address" binding:"omitempty,max=500"`
	PaymentTerms  *string `json:"payment_terms" binding:"omitempty,max=200"`
	Status        *string `json:"status" binding:"omitempty,oneof=active inactive blacklisted"`
	Notes         *string `json:"notes" binding:"omitempty,max=1000"`
}

// Create creates a vendor
func (h *VendorHandler) Create(c *gin.Context) {
	var req CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	vendor, err := h.vendorService.Create(c.Request.Context(), workforceapp.CreateVendorInput{
		CompanyName:   req.CompanyName,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		ServiceType:   req.ServiceType,
		Address:       req.Address,
		PaymentTerms:  req.PaymentTerms,
		Notes:         req.Notes,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, vendor)
}

// GetByID retrieves a vendor by ID
func (h *VendorHandler) GetByID(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid vendor ID")
		return
	}

	vendor, err := h.vendorService.Get(c.Request.Context(), uri.ID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, vendor)
}

// List returns a paginated list of vendors
func (h *VendorHandler) List(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	filterValue(c, &filter, "status", "status")
	filterValue(c, &filter, "service_type", "service_type")

	vendors, err := h.vendorService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, vendors.Items, vendors.Total, vendors.Page, vendors.PageSize)
}

// Update modifies a vendor
func (h *VendorHandler) Update(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid vendor ID")
		return
	}

	var req UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	vendor, err := h.vendorService.Update(c.Request.Context(), uri.ID, workforceapp.UpdateVendorInput{
		CompanyName:   req.CompanyName,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		ServiceType:   req.ServiceType,
		Address:       req.Address,
		PaymentTerms:  req.PaymentTerms,
		Status:        req.Status,
		Notes:         req.Notes,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, vendor)
}

// Delete removes a vendor
func (h *VendorHandler) Delete(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid vendor ID")
		return
	}

	if err := h.vendorService.Delete(c.Request.Context(), uri.ID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
