package property

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/shared"
)

// MealTariff holds the per-meal rates for a property. A property has
// at most one tariff sheet.
type MealTariff struct {
	shared.BaseEntity
	PropertyID      uint            `gorm:"not null;uniqueIndex" json:"property_id"`
	Property        *Property       `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
	BreakfastVeg    decimal.Decimal `gorm:"type:numeric(8,2);not null;default:0" json:"breakfast_veg"`
	BreakfastNonVeg decimal.Decimal `gorm:"type:numeric(8,2);not null;default:0" json:"breakfast_nonveg"`
	LunchVeg        decimal.Decimal `gorm:"type:numeric(8,2);not null;default:0" json:"lunch_veg"`
	LunchNonVeg     decimal.Decimal `gorm:"type:numeric(8,2);not null;default:0" json:"lunch_nonveg"`
	DinnerVeg       decimal.Decimal `gorm:"type:numeric(8,2);not null;default:0" json:"dinner_veg"`
	DinnerNonVeg    decimal.Decimal `gorm:"type:numeric(8,2);not null;default:0" json:"dinner_nonveg"`
	EffectiveFrom   time.Time       `gorm:"not null" json:"effective_from"`
}

// TableName returns the table name for GORM
func (MealTariff) TableName() string {
	return "meal_tariff_master"
}

// NewMealTariff creates the tariff sheet for a property
func NewMealTariff(propertyID uint, effectiveFrom time.Time) (*MealTariff, error) {
	if propertyID == 0 {
		return nil, shared.NewDomainError("INVALID_PROPERTY", "Property ID is required")
	}
	if effectiveFrom.IsZero() {
		effectiveFrom = time.Now()
	}
	return &MealTariff{
		PropertyID:    propertyID,
		EffectiveFrom: effectiveFrom,
	}, nil
}

// SetRates replaces all meal rates. Negative rates are rejected.
func (m *MealTariff) SetRates(breakfastVeg, breakfastNonVeg, lunchVeg, lunchNonVeg, dinnerVeg, dinnerNonVeg decimal.Decimal) error {
	for _, rate := range []decimal.Decimal{breakfastVeg, breakfastNonVeg, lunchVeg, lunchNonVeg, dinnerVeg, dinnerNonVeg} {
		if rate.IsNegative() {
			return shared.NewDomainError("INVALID_RATE", "Meal rates cannot be negative")
		}
	}
	m.BreakfastVeg = breakfastVeg
	m.BreakfastNonVeg = breakfastNonVeg
	m.LunchVeg = lunchVeg
	m.LunchNonVeg = lunchNonVeg
	m.DinnerVeg = dinnerVeg
	m.DinnerNonVeg = dinnerNonVeg
	return nil
}
