package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSelections(t *testing.T, axes map[string][]string, order []string) []OptionSelection {
	t.Helper()
	product, err := NewProductMaster("Test Product", "")
	require.NoError(t, err)

	selections := make([]OptionSelection, 0, len(order))
	for _, name := range order {
		option, err := product.AddOption(name, axes[name])
		require.NoError(t, err)
		selections = append(selections, OptionSelection{Option: option, Values: option.Values})
	}
	return selections
}

func TestExpandCombinations(t *testing.T) {
	t.Run("produces full cartesian product in order", func(t *testing.T) {
		selections := buildSelections(t, map[string][]string{
			"Size":  {"S", "M"},
			"Color": {"Red", "Blue", "Green"},
		}, []string{"Size", "Color"})

		combos, err := ExpandCombinations(selections)
		require.NoError(t, err)
		require.Len(t, combos, 6)

		// Last selection axis varies fastest.
		assert.Equal(t, "S", combos[0][0].Value)
		assert.Equal(t, "Red", combos[0][1].Value)
		assert.Equal(t, "S", combos[2][0].Value)
		assert.Equal(t, "Green", combos[2][1].Value)
		assert.Equal(t, "M", combos[5][0].Value)
		assert.Equal(t, "Green", combos[5][1].Value)

		for _, combo := range combos {
			require.Len(t, combo, 2)
			assert.Equal(t, "Size", combo[0].OptionName)
			assert.Equal(t, "Color", combo[1].OptionName)
		}
	})

	t.Run("single option yields one combination per value", func(t *testing.T) {
		selections := buildSelections(t, map[string][]string{"Size": {"S", "M", "L"}}, []string{"Size"})
		combos, err := ExpandCombinations(selections)
		require.NoError(t, err)
		assert.Len(t, combos, 3)
	})

	t.Run("accepts exactly the limit", func(t *testing.T) {
		values := make([]string, 500)
		for i := range values {
			values[i] = fmt.Sprintf("V%03d", i)
		}
		selections := buildSelections(t, map[string][]string{"Variant": values}, []string{"Variant"})
		combos, err := ExpandCombinations(selections)
		require.NoError(t, err)
		assert.Len(t, combos, 500)
	})

	t.Run("rejects one over the limit before expanding", func(t *testing.T) {
		values := make([]string, 501)
		for i := range values {
			values[i] = fmt.Sprintf("V%03d", i)
		}
		selections := buildSelections(t, map[string][]string{"Variant": values}, []string{"Variant"})
		_, err := ExpandCombinations(selections)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "generation limit")
	})

	t.Run("rejects empty selection list", func(t *testing.T) {
		_, err := ExpandCombinations(nil)
		assert.Error(t, err)
	})

	t.Run("rejects option with no values", func(t *testing.T) {
		selections := buildSelections(t, map[string][]string{"Size": {"S"}}, []string{"Size"})
		selections[0].Values = nil
		_, err := ExpandCombinations(selections)
		assert.Error(t, err)
	})
}

func TestDeriveSKU(t *testing.T) {
	combo := testCombination()

	t.Run("template placeholders replaced with upper-cased values", func(t *testing.T) {
		assert.Equal(t, "M-RED", DeriveSKU("T-Shirt", "{Size}-{Color}", combo))
	})

	t.Run("template keeps unknown placeholders verbatim", func(t *testing.T) {
		assert.Equal(t, "M-{Material}", DeriveSKU("T-Shirt", "{Size}-{Material}", combo))
	})

	t.Run("default sku from product name and values", func(t *testing.T) {
		assert.Equal(t, "BASICTEE-M-RED", DeriveSKU("Basic Tee", "", combo))
	})
}
