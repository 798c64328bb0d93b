package property

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePropertyInput contains the fields for property creation
type CreatePropertyInput struct {
	Name         string
	Address      string
	City         string
	State        string
	Country      string
	Pincode      string
	ContactEmail string
	ContactPhone string
	TotalRooms   int
}

// UpdatePropertyInput contains the mutable property fields
type UpdatePropertyInput struct {
	Name         *string
	Address      *string
	City         *string
	State        *string
	Country      *string
	Pincode      *string
	ContactEmail *string
	ContactPhone *string
	TotalRooms   *int
	Status       *string
}

// CreateRoomInput contains the fields for room creation
type CreateRoomInput struct {
	PropertyID  uint
	RoomNo      string
	Floor       int
	RoomType    string
	Capacity    int
	Rent        decimal.Decimal
	Deposit     decimal.Decimal
	Description string
	Amenities   string
}

// UpdateRoomInput contains the mutable room fields
type UpdateRoomInput struct {
	Floor       *int
	RoomType    *string
	Capacity    *int
	Rent        *decimal.Decimal
	Deposit     *decimal.Decimal
	Description *string
	Amenities   *string
	Status      *string
}

// MealTariffInput contains the per-meal rates for a property
type MealTariffInput struct {
	PropertyID      uint
	BreakfastVeg    decimal.Decimal
	BreakfastNonVeg decimal.Decimal
	LunchVeg        decimal.Decimal
	LunchNonVeg     decimal.Decimal
	DinnerVeg       decimal.Decimal
	DinnerNonVeg    decimal.Decimal
	EffectiveFrom   time.Time
}
