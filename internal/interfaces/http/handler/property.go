package handler

import (
	"github.com/gin-gonic/gin"

	propertyapp "github.com/shubhendumishra2009/arkedia-homes/internal/application/property"
	"github.com/shubhendumishra2009/arkedia-homes/internal/interfaces/http/dto"
)

// PropertyHandler handles property endpoints
type PropertyHandler struct {
	BaseHandler
	propertyService *propertyapp.PropertyService
}

// NewPropertyHandler creates a new PropertyHandler
func NewPropertyHandler(propertyService *propertyapp.PropertyService) *PropertyHandler {
	return &PropertyHandler{
		propertyService: propertyService,
	}
}

// CreatePropertyRequest represents a request to create a property
type CreatePropertyRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=200"`
	Address      string `json:"address" binding:"required,max=500"`
	City         string `json:"city" binding:"required,max=100"`
	State        string `json:"state" binding:"max=100"`
	Country      string `json:"country" binding:"max=100"`
	Pincode      string `json:"pincode" binding:"max=20"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email,max=200"`
	ContactPhone string `json:"contact_phone" binding:"max=20"`
	TotalRooms   int    `json:"total_rooms" binding:"omitempty,min=0"`
}

// UpdatePropertyRequest represents a request to update a property
type UpdatePropertyRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=1,max=200"`
	Address      *string `json:"address" binding:"omitempty,max=500"`
	City         *string `json:"city" binding:"omitempty,max=100"`
	State        *string `json:"state" binding:"omitempty,max=100"`
	Country      *string `json:"country" binding:"omitempty,max=100"`
	Pincode      *string `json:"pincode" binding:"omitempty,max=20"`
	ContactEmail *string `json:"contact_email" binding:"omitempty,email,max=200"`
	ContactPhone *string `json:"contact_phone" binding:"omitempty,max=20"`
	TotalRooms   *int    `json:"total_rooms" binding:"omitempty,min=0"`
	Status       *string `json:"status" binding:"omitempty,oneof=active inactive"`
}

// Create creates a new property
func (h *PropertyHandler) Create(c *gin.Context) {
	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	prop, err := h.propertyService.Create(c.Request.Context(), propertyapp.CreatePropertyInput{
		Name:         req.Name,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		Country:      req.Country,
		Pincode:      req.Pincode,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		TotalRooms:   req.TotalRooms,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, prop)
}

// GetByID retrieves a property by ID
func (h *PropertyHandler) GetByID(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid property ID")
		return
	}

	prop, err := h.propertyService.Get(c.Request.Context(), uri.ID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, prop)
}

// List returns a paginated list of properties
func (h *PropertyHandler) List(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	filterValue(c, &filter, "city", "city")
	filterValue(c, &filter, "state", "state")
	filterValue(c, &filter, "status", "status")

	props, err := h.propertyService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, props.Items, props.Total, props.Page, props.PageSize)
}

// Update modifies a property's mutable fields
func (h *PropertyHandler) Update(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid property ID")
		return
	}

	var req UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	prop, err := h.propertyService.Update(c.Request.Context(), uri.ID, propertyapp.UpdatePropertyInput{
		Name:         req.Name,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		Country:      req.Country,
		Pincode:      req.Pincode,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		TotalRooms:   req.TotalRooms,
		Status:       req.Status,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, prop)
}

// Delete removes a property without rooms
func (h *PropertyHandler) Delete(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid property ID")
		return
	}

	if err := h.propertyService.Delete(c.Request.Context(), uri.ID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
