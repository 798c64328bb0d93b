package handler

import (
	"github.com/gin-gonic/gin"

	propertyapp "github.com/shubhendumishra2009/arkedia-homes/internal/application/property"
	"github.com/shubhendumishra2009/arkedia-homes/internal/interfaces/http/dto"
)

// MealTariffHandler handles meal tariff endpoints
type MealTariffHandler struct {
	BaseHandler
	tariffService *propertyapp.MealTariffService
}

// NewMealTariffHandler creates a new MealTariffHandler
func NewMealTariffHandler(tariffService *propertyapp.MealTariffService) *MealTariffHandler {
	return &MealTariffHandler{
		tariffService: tariffService,
	}
}

// MealTariffRequest carries the per-meal rates for a property
type MealTariffRequest struct {
	PropertyID      uint    `json:"property_id" binding:"required"`
	BreakfastVeg    float64 `json:"breakfast_veg" binding:"gte=0"`
	BreakfastNonVeg float64 `json:"breakfast_non_veg" binding:"gte=0"`
	LunchVeg        float64 `json:"lunch_veg" binding:"gte=0"`
	LunchNonVeg     float64 `json:"lunch_non_veg" binding:"gte=0"`
	DinnerVeg       float64 `json:"dinner_veg" binding:"gte=0"`
	DinnerNonVeg    float64 `json:"dinner_non_veg" binding:"gte=0"`
	EffectiveFrom   string  `json:"effective_from"`
}

func (r MealTariffRequest) toInput() (propertyapp.MealTariffInput, error) {
	input := propertyapp.MealTariffInput{
		PropertyID:      r.PropertyID,
		BreakfastVeg:    toDecimal(r.BreakfastVeg),
		BreakfastNonVeg: toDecimal(r.BreakfastNonVeg),
		LunchVeg:        toDecimal(r.LunchVeg),
		LunchNonVeg:     toDecimal(r.LunchNonVeg),
		DinnerVeg:       toDecimal(r.DinnerVeg),
		DinnerNonVeg:    toDecimal(r.DinnerNonVeg),
	}
	if r.EffectiveFrom != "" {
		t, err := parseDate(r.EffectiveFrom)
		if err != nil {
			return input, err
		}
		input.EffectiveFrom = t
	}
	return input, nil
}

// Create registers the meal tariff for a property
func (h *MealTariffHandler) Create(c *gin.Context) {
	var req MealTariffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input, err := req.toInput()
	if err != nil {
		h.BadRequest(c, "Invalid effective_from date")
		return
	}

	tariff, err := h.tariffService.Create(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, tariff)
}

// GetByID retrieves a meal tariff by ID
func (h *MealTariffHandler) GetByID(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid meal tariff ID")
		return
	}

	tariff, err := h.tariffService.Get(c.Request.Context(), uri.ID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, tariff)
}

// GetByProperty retrieves the meal tariff of one property
func (h *MealTariffHandler) GetByProperty(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid property ID")
		return
	}

	tariff, err := h.tariffService.GetByProperty(c.Request.Context(), uri.ID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, tariff)
}

// List returns a paginated list of meal tariffs
func (h *MealTariffHandler) List(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	tariffs, err := h.tariffService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, tariffs.Items, tariffs.Total, tariffs.Page, tariffs.PageSize)
}

// Update replaces a meal tariff's rates
func (h *MealTariffHandler) Update(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid meal tariff ID")
		return
	}

	var req MealTariffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input, err := req.toInput()
	if err != nil {
		h.BadRequest(c, "Invalid effective_from date")
		return
	}

	tariff, err := h.tariffService.Update(c.Request.Context(), uri.ID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, tariff)
}

// Delete removes a meal tariff
func (h *MealTariffHandler) Delete(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid meal tariff ID")
		return
	}

	if err := h.tariffService.Delete(c.Request.Context(), uri.ID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
