package property

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/shared"
)

// RoomStatus represents the occupancy status of a room
type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "available"
	RoomStatusReserved    RoomStatus = "reserved"
	RoomStatusOccupied    RoomStatus = "occupied"
	RoomStatusMaintenance RoomStatus = "maintenance"
)

// RoomType represents the category of a room
type RoomType string

const (
	RoomTypeStandard RoomType = "standard"
	RoomTypeDeluxe   RoomType = "deluxe"
	RoomTypeSuite    RoomType = "suite"
)

// roomTransitions is the single source of truth for allowed status
// changes. Every lease and booking path goes through Transition rather
// than assigning status strings directly.
var roomTransitions = map[RoomStatus][]RoomStatus{
	RoomStatusAvailable:   {RoomStatusReserved, RoomStatusOccupied, RoomStatusMaintenance},
	RoomStatusReserved:    {RoomStatusOccupied, RoomStatusAvailable},
	RoomStatusOccupied:    {RoomStatusAvailable},
	RoomStatusMaintenance: {RoomStatusAvailable},
}

// Room represents a rentable unit within a property
type Room struct {
	shared.BaseEntity
	PropertyID  uint            `gorm:"not null;uniqueIndex:idx_property_room,priority:1" json:"property_id"`
	Property    *Property       `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
	RoomNo      string          `gorm:"type:varchar(20);not null;uniqueIndex:idx_property_room,priority:2" json:"room_no"`
	Floor       int             `gorm:"not null;default:0" json:"floor"`
	RoomType    RoomType        `gorm:"type:varchar(20);not null;default:'standard'" json:"room_type"`
	Capacity    int             `gorm:"not null;default:1" json:"capacity"`
	Rent        decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"rent"`
	Deposit     decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"deposit"`
	Description string          `gorm:"type:text" json:"description"`
	Amenities   string          `gorm:"type:text" json:"amenities"`
	Status      RoomStatus      `gorm:"type:varchar(20);not null;default:'available'" json:"status"`
}

// TableName returns the table name for GORM
func (Room) TableName() string {
	return "rooms"
}

// NewRoom creates a new room in available state
func NewRoom(propertyID uint, roomNo string, roomType RoomType, rent decimal.Decimal) (*Room, error) {
	if propertyID == 0 {
		return nil, shared.NewDomainError("INVALID_PROPERTY", "Property ID is required")
	}
	if strings.TrimSpace(roomNo) == "" {
		return nil, shared.NewDomainError("INVALID_ROOM_NO", "Room number cannot be empty")
	}
	if err := validateRoomType(roomType); err != nil {
		return nil, err
	}
	if rent.IsNegative() || rent.IsZero() {
		return nil, shared.NewDomainError("INVALID_RENT", "Rent must be greater than zero")
	}

	return &Room{
		PropertyID: propertyID,
		RoomNo:     roomNo,
		RoomType:   roomType,
		Capacity:   1,
		Rent:       rent,
		Deposit:    decimal.Zero,
		Status:     RoomStatusAvailable,
	}, nil
}

// Transition moves the room to the target status, enforcing the
// allowed transition table.
func (r *Room) Transition(target RoomStatus) error {
	if err := validateRoomStatus(target); err != nil {
		return err
	}
	if r.Status == target {
		return nil
	}
	for _, allowed := range roomTransitions[r.Status] {
		if allowed == target {
			r.Status = target
			return nil
		}
	}
	return shared.NewDomainError("INVALID_STATE",
		"Room cannot change from "+string(r.Status)+" to "+string(target))
}

// Reserve marks the room held for a pending lease or booking
func (r *Room) Reserve() error {
	if r.Status != RoomStatusAvailable && r.Status != RoomStatusReserved {
		return shared.ErrRoomUnavailable
	}
	return r.Transition(RoomStatusReserved)
}

// Occupy marks the room as occupied by an active lease or confirmed booking
func (r *Room) Occupy() error {
	if r.Status != RoomStatusAvailable && r.Status != RoomStatusReserved {
		return shared.ErrRoomUnavailable
	}
	return r.Transition(RoomStatusOccupied)
}

// Release frees the room back to available
func (r *Room) Release() error {
	return r.Transition(RoomStatusAvailable)
}

// StartMaintenance takes an available room out of service
func (r *Room) StartMaintenance() error {
	return r.Transition(RoomStatusMaintenance)
}

// IsAvailable returns true if the room can take a new lease
func (r *Room) IsAvailable() bool {
	return r.Status == RoomStatusAvailable
}

// IsBookable returns true if the room can take a new booking
func (r *Room) IsBookable() bool {
	return r.Status == RoomStatusAvailable || r.Status == RoomStatusReserved
}

func validateRoomType(t RoomType) error {
	switch t {
	case RoomTypeStandard, RoomTypeDeluxe, RoomTypeSuite:
		return nil
	default:
		return shared.NewDomainError("INVALID_ROOM_TYPE", "Invalid room type")
	}
}

func validateRoomStatus(s RoomStatus) error {
	switch s {
	case RoomStatusAvailable, RoomStatusReserved, RoomStatusOccupied, RoomStatusMaintenance:
		return nil
	default:
		return shared.NewDomainError("INVALID_STATUS", "Invalid room status")
	}
}
