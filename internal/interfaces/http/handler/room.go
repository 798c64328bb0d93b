package handler

import (
	"github.com/gin-gonic/gin"

	propertyapp "github.com/shubhendumishra2009/arkedia-homes/internal/application/property"
	"github.com/shubhendumishra2009/arkedia-homes/internal/interfaces/http/dto"
)

// RoomHandler handles room endpoints
type RoomHandler struct {
	BaseHandler
	roomService *propertyapp.RoomService
}

// NewRoomHandler creates a new RoomHandler
func NewRoomHandler(roomService *propertyapp.RoomService) *RoomHandler {
	return &RoomHandler{
		roomService: roomService,
	}
}

// CreateRoomRequest represents a request to create a room
type CreateRoomRequest struct {
	PropertyID  uint     `json:"property_id" binding:"required"`
	RoomNo      string   `json:"room_no" binding:"required,min=1,max=20"`
	Floor       int      `json:"floor"`
	RoomType    string   `json:"room_type" binding:"omitempty,oneof=standard deluxe suite"`
	Capacity    int      `json:"capacity" binding:"omitempty,min=1"`
	Rent        float64  `json:"rent" binding:"required,gt=0"`
	Deposit     *float64 `json:"deposit" binding:"omitempty,gte=0"`
	Description string   `json:"description" binding:"max=1000"`
	Amenities   string   `json:"amenities" binding:"max=1000"`
}

// UpdateRoomRequest represents a request to update a room
type UpdateRoomRequest struct {
	Floor       *int     `json:"floor"`
	RoomType    *string  `json:"room_type" binding:"omitempty,oneof=standard deluxe suite"`
	Capacity    *int     `json:"capacity" binding:"omitempty,min=1"`
	Rent        *float64 `json:"rent" binding:"omitempty,gt=0"`
	Deposit     *float64 `json:"deposit" binding:"omitempty,gte=0"`
	Description *string  `json:"description" binding:"omitempty,max=1000"`
	Amenities   *string  `json:"amenities" binding:"omitempty,max=1000"`
	Status      *string  `json:"status" binding:"omitempty,oneof=available reserved occupied maintenance"`
}

// Create creates a new room under a property
func (h *RoomHandler) Create(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := propertyapp.CreateRoomInput{
		PropertyID:  req.PropertyID,
		RoomNo:      req.RoomNo,
		Floor:       req.Floor,
		RoomType:    req.RoomType,
		Capacity:    req.Capacity,
		Rent:        toDecimal(req.Rent),
		Description: req.Description,
		Amenities:   req.Amenities,
	}
	if req.Deposit != nil {
		input.Deposit = toDecimal(*req.Deposit)
	}

	room, err := h.roomService.Create(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, room)
}

// GetByID retrieves a room by ID
func (h *RoomHandler) GetByID(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid room ID")
		return
	}

	room, err := h.roomService.Get(c.Request.Context(), uri.ID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, room)
}

// List returns a paginated list of rooms
func (h *RoomHandler) List(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	filterValue(c, &filter, "status", "status")
	filterValue(c, &filter, "room_type", "room_type")
	filterValue(c, &filter, "property_id", "property_id")

	rooms, err := h.roomService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, rooms.Items, rooms.Total, rooms.Page, rooms.PageSize)
}

// ListByProperty returns all rooms of one property
func (h *RoomHandler) ListByProperty(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid property ID")
		return
	}

	rooms, err := h.roomService.ListByProperty(c.Request.Context(), uri.ID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, rooms)
}

// Update modifies a room's mutable fields
func (h *RoomHandler) Update(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid room ID")
		return
	}

	var req UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := propertyapp.UpdateRoomInput{
		Floor:       req.Floor,
		RoomType:    req.RoomType,
		Capacity:    req.Capacity,
		Description: req.Description,
		Amenities:   req.Amenities,
		Status:      req.Status,
	}
	if req.Rent != nil {
		input.Rent = toDecimalPtr(*req.Rent)
	}
	if req.Deposit != nil {
		input.Deposit = toDecimalPtr(*req.Deposit)
	}

	room, err := h.roomService.Update(c.Request.Context(), uri.ID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, room)
}

// Delete removes a room that is not reserved or occupied
func (h *RoomHandler) Delete(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid room ID")
		return
	}

	if err := h.roomService.Delete(c.Request.Context(), uri.ID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
