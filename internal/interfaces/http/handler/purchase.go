package handler

import (
	"github.com/gin-gonic/gin"

	workforceapp "github.com/shubhendumishra2009/arkedia-homes/internal/application/workforce"
	"github.com/shubhendumishra2009/arkedia-homes/internal/interfaces/http/dto"
)

// PurchaseHandler handles purchase endpoints
type PurchaseHandler struct {
	BaseHandler
	purchaseService *workforceapp.PurchaseService
}

// NewPurchaseHandler creates a new PurchaseHandler
func NewPurchaseHandler(purchaseService *workforceapp.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseService: purchaseService,
	}
}

// CreatePurchaseRequest represents a request to record a purchase
type CreatePurchaseRequest struct {
	PropertyID   uint    `json:"property_id" binding:"required"`
	VendorID     *uint   `json:"vendor_id"`
	ItemName     string  `json:"item_name" binding:"required,max=200"`
	Category     string  `json:"category" binding:"max=100"`
	Quantity     int     `json:"quantity" binding:"required,gt=0"`
	UnitPrice    float64 `json:"unit_price" binding:"required,gt=0"`
	PurchaseDate string  `json:"purchase_date" binding:"required"`
	Priority     string  `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Notes        string  `json:"notes" binding:"max=1000"`
}

// UpdatePurchaseRequest represents a request to update a purchase
type UpdatePurchaseRequest struct {
	VendorID     *uint    `json:"vendor_id"`
	ItemName     *string  `json:"item_name" binding:"omitempty,max=200"`
	Category     *string  `json:"category" binding:"omitempty,max=100"`
	Quantity     *int     `json:"quantity" binding:"omitempty,gt=0"`
	UnitPrice    *float64 `json:"unit_price" binding:"omitempty,gt=0"`
	PurchaseDate *string  `json:"purchase_date"`
	Priority     *string  `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Status       *string  `json:"status" binding:"omitempty,oneof=pending ordered received cancelled"`
	Notes        *string  `json:"notes" binding:"omitempty,max=1000"`
}

// Create records a purchase
func (h *PurchaseHandler) Create(c *gin.Context) {
	var req CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	purchaseDate, err := parseDate(req.PurchaseDate)
	if err != nil {
		h.BadRequest(c, "Invalid purchase_date")
		return
	}

	purchase, err := h.purchaseService.Create(c.Request.Context(), workforceapp.CreatePurchaseInput{
		PropertyID:   req.PropertyID,
		VendorID:     req.VendorID,
		ItemName:     req.ItemName,
		Category:     req.Category,
		Quantity:     req.Quantity,
		UnitPrice:    toDecimal(req.UnitPrice),
		PurchaseDate: purchaseDate,
		Priority:     req.Priority,
		Notes:        req.Notes,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, purchase)
}

// GetByID retrieves a purchase by ID
func (h *PurchaseHandler) GetByID(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid purchase ID")
		return
	}

	purchase, err := h.purchaseService.Get(c.Request.Context(), uri.ID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, purchase)
}

// List returns a paginated list of purchases
func (h *PurchaseHandler) List(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	filterValue(c, &filter, "status", "status")
	filterValue(c, &filter, "priority", "priority")
	filterValue(c, &filter, "property_id", "property_id")
	filterValue(c, &filter, "vendor_id", "vendor_id")
	filterValue(c, &filter, "category", "category")
	filterValue(c, &filter, "month", "month")
	filterValue(c, &filter, "year", "year")

	purchases, err := h.purchaseService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, purchases.Items, purchases.Total, purchases.Page, purchases.PageSize)
}

// Update modifies a purchase. Quantity and unit price changes reprice
// the total.
func (h *PurchaseHandler) Update(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid purchase ID")
		return
	}

	var req UpdatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	purchaseDate, err := parseDatePtr(req.PurchaseDate)
	if err != nil {
		h.BadRequest(c, "Invalid purchase_date")
		return
	}

	input := workforceapp.UpdatePurchaseInput{
		VendorID:     req.VendorID,
		ItemName:     req.ItemName,
		Category:     req.Category,
		Quantity:     req.Quantity,
		PurchaseDate: purchaseDate,
		Priority:     req.Priority,
		Status:       req.Status,
		Notes:        req.Notes,
	}
	if req.UnitPrice != nil {
		input.UnitPrice = toDecimalPtr(*req.UnitPrice)
	}

	purchase, err := h.purchaseService.Update(c.Request.Context(), uri.ID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, purchase)
}

// Delete removes a purchase
func (h *PurchaseHandler) Delete(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid purchase ID")
		return
	}

	if err := h.purchaseService.Delete(c.Request.Context(), uri.ID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
