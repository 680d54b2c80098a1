// Package nutrition computes the derived nutrient values of recipe line
// items. It is pure computation over already-loaded entities: validation
// happens before it and persistence after it.
package nutrition

import (
	"github.com/shopspring/decimal"

	"github.com/ikormushev/manjabook/pkg/model"
)

// Vector is the ordered set of eight nutrient fields shared by products
// (per 100 base units) and line items (absolute amounts).
type Vector struct {
	Calories      decimal.Decimal
	Protein       decimal.Decimal
	Carbohydrates decimal.Decimal
	Sugars        decimal.Decimal
	Fats          decimal.Decimal
	SaturatedFats decimal.Decimal
	Salt          decimal.Decimal
	Fibre         decimal.Decimal
}

// Each field carries its own rounding scale so the calculator never
// special-cases fields by name. Salt is tracked at 3 decimals, the rest at 2.
type fieldSpec struct {
	scale int32
	get   func(*Vector) *decimal.Decimal
}

var fields = []fieldSpec{
	{2, func(v *Vector) *decimal.Decimal { return &v.Calories }},
	{2, func(v *Vector) *decimal.Decimal { return &v.Protein }},
	{2, func(v *Vector) *decimal.Decimal { return &v.Carbohydrates }},
	{2, func(v *Vector) *decimal.Decimal { return &v.Sugars }},
	{2, func(v *Vector) *decimal.Decimal { return &v.Fats }},
	{2, func(v *Vector) *decimal.Decimal { return &v.SaturatedFats }},
	{3, func(v *Vector) *decimal.Decimal { return &v.Salt }},
	{2, func(v *Vector) *decimal.Decimal { return &v.Fibre }},
}

// baseAmount is the denominator of every product nutrient profile.
var baseAmount = decimal.NewFromInt(100)

// ComputeLineNutrients scales a product's per-100 profile to one line item.
// For each field the quantity is first converted into hundreds of base units
// and rounded half-up at the field's scale, then multiplied by the per-100
// value and rounded again at the same scale. Rounding at each step, not once
// at the end, is what recipe totals later reproduce.
func ComputeLineNutrients(per100 Vector, quantity, rate decimal.Decimal) Vector {
	converted := rate.Mul(quantity).Div(baseAmount)

	var out Vector

	for _, f := range fields {
		normalized := converted.Round(f.scale)
		*f.get(&out) = normalized.Mul(*f.get(&per100)).Round(f.scale)
	}

	return out
}

// NormalizedQuantity is a line item's quantity in hundreds of base units,
// rounded half-up at the general 2-decimal tier.
func NormalizedQuantity(quantity, rate decimal.Decimal) decimal.Decimal {
	return rate.Mul(quantity).Div(baseAmount).Round(2)
}

// ComputeRecipeTotals sums the already-rounded nutrient vectors of a recipe's
// current line items. No rounding is re-applied; the empty set yields the
// zero vector. Totals are never persisted, so they cannot go stale.
func ComputeRecipeTotals(lines []model.RecipeProduct) Vector {
	var total Vector

	for index := range lines {
		line := VectorFromLine(&lines[index])

		for _, f := range fields {
			*f.get(&total) = f.get(&total).Add(*f.get(&line))
		}
	}

	return total
}

// VectorFromProduct reads a product's per-100 nutrient profile.
func VectorFromProduct(product *model.Product) Vector {
	return Vector{
		Calories:      product.Calories,
		Protein:       product.Protein,
		Carbohydrates: product.Carbohydrates,
		Sugars:        product.Sugars,
		Fats:          product.Fats,
		SaturatedFats: product.SaturatedFats,
		Salt:          product.Salt,
		Fibre:         product.Fibre,
	}
}

// VectorFromLine reads a line item's persisted nutrient columns.
func VectorFromLine(line *model.RecipeProduct) Vector {
	return Vector{
		Calories:      line.Calories,
		Protein:       line.Protein,
		Carbohydrates: line.Carbohydrates,
		Sugars:        line.Sugars,
		Fats:          line.Fats,
		SaturatedFats: line.SaturatedFats,
		Salt:          line.Salt,
		Fibre:         line.Fibre,
	}
}

// ApplyToLine writes a computed vector onto a line item's derived columns.
func ApplyToLine(vector Vector, line *model.RecipeProduct) {
	line.Calories = vector.Calories
	line.Protein = vector.Protein
	line.Carbohydrates = vector.Carbohydrates
	line.Sugars = vector.Sugars
	line.Fats = vector.Fats
	line.SaturatedFats = vector.SaturatedFats
	line.Salt = vector.Salt
	line.Fibre = vector.Fibre
}
