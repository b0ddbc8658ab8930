package catalog

import (
	"fmt"
	"strings"

	"github.com/flowstock/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// MaxCombinations caps a single generation request. The expansion is
// rejected before anything is written when the Cartesian product would
// exceed this count.
const MaxCombinations = 500

// SelectedValue is one chosen option value inside a combination
type SelectedValue struct {
	OptionID   uuid.UUID
	OptionName string
	ValueID    uuid.UUID
	Value      string
}

// Combination is one element of the Cartesian product: exactly one
// selected value per requested option, in request order.
type Combination []SelectedValue

// OptionSelection pairs an option with the subset of its values chosen
// for generation. Values keep the product's configured display order.
type OptionSelection struct {
	Option *VariantOption
	Values []VariantOptionValue
}

// ExpandCombinations builds the Cartesian product of the selected value
// sets, one combination per selection, in selection order. It fails with
// a capacity error when the product would exceed MaxCombinations.
func ExpandCombinations(selections []OptionSelection) ([]Combination, error) {
	if len(selections) == 0 {
		return nil, shared.NewDomainError("INVALID_SELECTION", "At least one option with selected values is required")
	}

	total := 1
	for _, sel := range selections {
		if len(sel.Values) == 0 {
			return nil, shared.NewDomainError("INVALID_SELECTION", "Option '"+sel.Option.Name+"' has no selected values")
		}
		total *= len(sel.Values)
		if total > MaxCombinations {
			return nil, shared.NewDomainError("GENERATION_LIMIT_EXCEEDED",
				fmt.Sprintf("Combination count exceeds the generation limit of %d", MaxCombinations))
		}
	}

	combos := make([]Combination, 0, total)
	current := make(Combination, len(selections))

	var expand func(depth int)
	expand = func(depth int) {
		if depth == len(selections) {
			combo := make(Combination, len(current))
			copy(combo, current)
			combos = append(combos, combo)
			return
		}
		sel := selections[depth]
		for _, v := range sel.Values {
			current[depth] = SelectedValue{
				OptionID:   sel.Option.ID,
				OptionName: sel.Option.Name,
				ValueID:    v.ID,
				Value:      v.Value,
			}
			expand(depth + 1)
		}
	}
	expand(0)

	return combos, nil
}

// DeriveSKU derives the SKU for one combination. With a template, each
// {OptionName} placeholder is replaced by the upper-cased selected value
// for that option. Without one, the SKU defaults to the upper-cased
// product name with spaces removed, followed by each upper-cased value
// in combination order.
func DeriveSKU(productName, template string, combo Combination) string {
	if template != "" {
		sku := template
		for _, sel := range combo {
			placeholder := "{" + sel.OptionName + "}"
			sku = strings.ReplaceAll(sku, placeholder, strings.ToUpper(sel.Value))
		}
		return sku
	}

	parts := make([]string, 0, len(combo)+1)
	parts = append(parts, strings.ToUpper(strings.ReplaceAll(productName, " ", "")))
	for _, sel := range combo {
		parts = append(parts, strings.ToUpper(sel.Value))
	}
	return strings.Join(parts, "-")
}
