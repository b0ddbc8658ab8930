package catalog

import (
	"strings"

	"github.com/flowstock/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PricingStrategy selects how a variant's price is derived from the base price
type PricingStrategy string

const (
	PricingFixed         PricingStrategy = "fixed"
	PricingSizeAdjusted  PricingStrategy = "size_adjusted"
	PricingColorAdjusted PricingStrategy = "color_adjusted"
)

// ParsePricingStrategy parses and validates a pricing strategy tag
func ParsePricingStrategy(s string) (PricingStrategy, error) {
	switch PricingStrategy(s) {
	case PricingFixed, PricingSizeAdjusted, PricingColorAdjusted:
		return PricingStrategy(s), nil
	default:
		return "", shared.NewDomainError("INVALID_PRICING_STRATEGY",
			"Pricing strategy must be 'fixed', 'size_adjusted' or 'color_adjusted', got '"+s+"'")
	}
}

// PriceCalculator derives a variant price from the base price and the
// combination being generated
type PriceCalculator interface {
	Strategy() PricingStrategy
	Price(basePrice decimal.Decimal, combo Combination) decimal.Decimal
}

// PriceCalculatorFor returns the calculator for a strategy
func PriceCalculatorFor(strategy PricingStrategy) (PriceCalculator, error) {
	switch strategy {
	case PricingFixed:
		return fixedPricing{}, nil
	case PricingSizeAdjusted:
		return sizeAdjustedPricing{}, nil
	case PricingColorAdjusted:
		return colorAdjustedPricing{}, nil
	default:
		return nil, shared.NewDomainError("INVALID_PRICING_STRATEGY",
			"Unknown pricing strategy '"+string(strategy)+"'")
	}
}

// fixedPricing passes the base price through unchanged
type fixedPricing struct{}

func (fixedPricing) Strategy() PricingStrategy { return PricingFixed }

func (fixedPricing) Price(basePrice decimal.Decimal, _ Combination) decimal.Decimal {
	return basePrice
}

// sizeAdjustedPricing adds a step surcharge keyed on the value of the
// option named "Size" (matched case-insensitively). Unknown sizes and
// combinations without a Size option get no surcharge.
type sizeAdjustedPricing struct{}

var sizeSurcharges = map[string]decimal.Decimal{
	"S":  decimal.Zero,
	"M":  decimal.NewFromInt(10),
	"L":  decimal.NewFromInt(20),
	"XL": decimal.NewFromInt(30),
}

func (sizeAdjustedPricing) Strategy() PricingStrategy { return PricingSizeAdjusted }

func (sizeAdjustedPricing) Price(basePrice decimal.Decimal, combo Combination) decimal.Decimal {
	value, ok := comboValue(combo, "Size")
	if !ok {
		return basePrice
	}
	surcharge, ok := sizeSurcharges[strings.ToUpper(value)]
	if !ok {
		return basePrice
	}
	return basePrice.Add(surcharge)
}

// colorAdjustedPricing adds a flat surcharge for premium finishes on the
// option named "Color" (matched case-insensitively). Other colors and
// combinations without a Color option get no surcharge.
type colorAdjustedPricing struct{}

var colorSurcharge = decimal.NewFromInt(15)

var premiumColors = map[string]struct{}{
	"GOLD":     {},
	"SILVER":   {},
	"METALLIC": {},
}

func (colorAdjustedPricing) Strategy() PricingStrategy { return PricingColorAdjusted }

func (colorAdjustedPricing) Price(basePrice decimal.Decimal, combo Combination) decimal.Decimal {
	value, ok := comboValue(combo, "Color")
	if !ok {
		return basePrice
	}
	if _, premium := premiumColors[strings.ToUpper(value)]; !premium {
		return basePrice
	}
	return basePrice.Add(colorSurcharge)
}

// comboValue finds the selected value for the named option, case-insensitively
func comboValue(combo Combination, optionName string) (string, bool) {
	for _, sel := range combo {
		if strings.EqualFold(sel.OptionName, optionName) {
			return sel.Value, true
		}
	}
	return "", false
}
