package pricing

import (
	"errors"
	"fmt"
	"math"
)

// ===============================
// Shared types
// ===============================

// ErrInvalidAttribute rejects out-of-enum or negative inputs. In-range
// values, including zero, never error.
var ErrInvalidAttribute = errors.New("invalid attribute")

func invalidAttr(field string, value any) error {
	return fmt.Errorf("%w: %s=%v", ErrInvalidAttribute, field, value)
}

// Quote is a non-binding price range in crowns, Min <= Max.
type Quote struct {
	Min float64 `json:"price_min"`
	Max float64 `json:"price_max"`
}

type Category string

const (
	CategoryHome       Category = "home"
	CategoryOffice     Category = "office"
	CategoryWindow     Category = "window"
	CategoryUpholstery Category = "upholstery"
)

// Dirtiness tiers. Extreme is only valid for office cleaning.
type Dirtiness string

const (
	DirtinessLow     Dirtiness = "low"
	DirtinessMedium  Dirtiness = "medium"
	DirtinessHigh    Dirtiness = "high"
	DirtinessExtreme Dirtiness = "extreme"
)

// Frequency tiers. Home and office use different subsets; the two
// rule-sets are independent and stay separate.
type Frequency string

const (
	FrequencyOneOff   Frequency = "one_off"
	FrequencyDaily    Frequency = "daily"
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
)

type SpaceType string

const (
	SpaceOffice     SpaceType = "office"
	SpaceShop       SpaceType = "shop"
	SpaceWarehouse  SpaceType = "warehouse"
	SpaceProduction SpaceType = "production"
)

type ObjectType string

const (
	ObjectResidential ObjectType = "residential"
	ObjectCommercial  ObjectType = "commercial"
)

// band turns a midpoint into a symmetric quote range. Bounds are rounded
// to whole crowns.
func band(mid, fraction float64) Quote {
	return Quote{
		Min: math.Round(mid * (1 - fraction)),
		Max: math.Round(mid * (1 + fraction)),
	}
}
