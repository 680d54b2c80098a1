package nutrition_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ikormushev/manjabook/pkg/model"
	"github.com/ikormushev/manjabook/pkg/nutrition"
)

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func TestComputeLineNutrients_ScalesPer100Profile(t *testing.T) {
	per100 := nutrition.Vector{
		Calories:      dec("200"),
		Protein:       dec("10.5"),
		Carbohydrates: dec("30"),
		Sugars:        dec("5.25"),
		Fats:          dec("8"),
		SaturatedFats: dec("2.5"),
		Salt:          dec("1.5"),
		Fibre:         dec("3"),
	}

	// 150g at rate 1.000 -> 1.50 hundreds of grams
	result := nutrition.ComputeLineNutrients(per100, dec("150"), dec("1.000"))

	assert.True(t, dec("300.00").Equal(result.Calories), "calories: %s", result.Calories)
	assert.True(t, dec("15.75").Equal(result.Protein), "protein: %s", result.Protein)
	assert.True(t, dec("45.00").Equal(result.Carbohydrates), "carbohydrates: %s", result.Carbohydrates)
	assert.True(t, dec("7.88").Equal(result.Sugars), "sugars: %s", result.Sugars)
	assert.True(t, dec("12.00").Equal(result.Fats), "fats: %s", result.Fats)
	assert.True(t, dec("3.75").Equal(result.SaturatedFats), "saturated fats: %s", result.SaturatedFats)
	assert.True(t, dec("2.25").Equal(result.Salt), "salt: %s", result.Salt)
	assert.True(t, dec("4.50").Equal(result.Fibre), "fibre: %s", result.Fibre)
}

func TestComputeLineNutrients_RoundsNormalizedQuantityHalfUp(t *testing.T) {
	per100 := nutrition.Vector{Calories: dec("200")}

	// 0.5 * 33 / 100 = 0.165, half-up at 2 decimals -> 0.17, not 0.165
	result := nutrition.ComputeLineNutrients(per100, dec("33"), dec("0.5"))

	assert.True(t, dec("34.00").Equal(result.Calories), "calories: %s", result.Calories)
}

func TestComputeLineNutrients_SaltKeepsThreeDecimals(t *testing.T) {
	per100 := nutrition.Vector{Salt: dec("2.345")}

	result := nutrition.ComputeLineNutrients(per100, dec("100"), dec("1.000"))

	assert.True(t, dec("2.345").Equal(result.Salt), "salt: %s", result.Salt)
}

func TestComputeLineNutrients_SaltNormalizesAtThreeDecimals(t *testing.T) {
	per100 := nutrition.Vector{Calories: dec("200"), Salt: dec("1.000")}

	// 0.165 rounds to 0.17 at the 2-decimal tier but stays 0.165 for salt.
	result := nutrition.ComputeLineNutrients(per100, dec("33"), dec("0.5"))

	assert.True(t, dec("34.00").Equal(result.Calories), "calories: %s", result.Calories)
	assert.True(t, dec("0.165").Equal(result.Salt), "salt: %s", result.Salt)
}

func TestComputeLineNutrients_RoundsEachFieldHalfUp(t *testing.T) {
	tests := []struct {
		name     string
		per100   string
		quantity string
		rate     string
		want     string
	}{
		{name: "exact product", per100: "100", quantity: "50", rate: "1.000", want: "50.00"},
		{name: "half rounds up", per100: "4.45", quantity: "50", rate: "1.000", want: "2.23"},
		{name: "below half rounds down", per100: "4.44", quantity: "50", rate: "1.000", want: "2.22"},
		{name: "large rate", per100: "12.5", quantity: "3", rate: "250.000", want: "93.75"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			per100 := nutrition.Vector{Protein: dec(test.per100)}

			result := nutrition.ComputeLineNutrients(per100, dec(test.quantity), dec(test.rate))

			assert.True(t, dec(test.want).Equal(result.Protein), "protein: %s", result.Protein)
		})
	}
}

func TestComputeLineNutrients_IsDeterministic(t *testing.T) {
	per100 := nutrition.Vector{Calories: dec("123.45"), Salt: dec("0.987")}

	first := nutrition.ComputeLineNutrients(per100, dec("73"), dec("14.787"))
	second := nutrition.ComputeLineNutrients(per100, dec("73"), dec("14.787"))

	assert.Equal(t, first, second)
}

func TestComputeLineNutrients_ZeroQuantityYieldsZeroVector(t *testing.T) {
	per100 := nutrition.Vector{
		Calories: dec("200"), Protein: dec("10"), Salt: dec("2.5"), Fibre: dec("3"),
	}

	result := nutrition.ComputeLineNutrients(per100, dec("0"), dec("1.000"))

	assertZeroVector(t, result)
}

func TestComputeLineNutrients_ZeroRateYieldsZeroVector(t *testing.T) {
	per100 := nutrition.Vector{Calories: dec("200"), Salt: dec("2.5")}

	result := nutrition.ComputeLineNutrients(per100, dec("150"), dec("0"))

	assertZeroVector(t, result)
}

func TestNormalizedQuantity(t *testing.T) {
	assert.True(t, dec("1.50").Equal(nutrition.NormalizedQuantity(dec("150"), dec("1.000"))))
	assert.True(t, dec("0.17").Equal(nutrition.NormalizedQuantity(dec("33"), dec("0.5"))))
	assert.True(t, dec("0.00").Equal(nutrition.NormalizedQuantity(dec("0"), dec("1.000"))))
}

func TestComputeRecipeTotals_EmptySetIsZero(t *testing.T) {
	assertZeroVector(t, nutrition.ComputeRecipeTotals(nil))
	assertZeroVector(t, nutrition.ComputeRecipeTotals([]model.RecipeProduct{}))
}

func TestComputeRecipeTotals_SumsPersistedLineVectors(t *testing.T) {
	// Totals sum the stored, already-rounded columns; they never recompute
	// from raw products.
	lines := []model.RecipeProduct{
		{
			Calories: dec("300.00"), Protein: dec("15.75"), Carbohydrates: dec("45.00"),
			Sugars: dec("7.88"), Fats: dec("12.00"), SaturatedFats: dec("3.75"),
			Salt: dec("2.250"), Fibre: dec("4.50"),
		},
		{
			Calories: dec("34.00"), Protein: dec("1.79"), Carbohydrates: dec("5.10"),
			Sugars: dec("0.89"), Fats: dec("1.36"), SaturatedFats: dec("0.43"),
			Salt: dec("0.255"), Fibre: dec("0.51"),
		},
	}

	total := nutrition.ComputeRecipeTotals(lines)

	assert.True(t, dec("334.00").Equal(total.Calories), "calories: %s", total.Calories)
	assert.True(t, dec("17.54").Equal(total.Protein), "protein: %s", total.Protein)
	assert.True(t, dec("50.10").Equal(total.Carbohydrates), "carbohydrates: %s", total.Carbohydrates)
	assert.True(t, dec("8.77").Equal(total.Sugars), "sugars: %s", total.Sugars)
	assert.True(t, dec("13.36").Equal(total.Fats), "fats: %s", total.Fats)
	assert.True(t, dec("4.18").Equal(total.SaturatedFats), "saturated fats: %s", total.SaturatedFats)
	assert.True(t, dec("2.505").Equal(total.Salt), "salt: %s", total.Salt)
	assert.True(t, dec("5.01").Equal(total.Fibre), "fibre: %s", total.Fibre)
}

func TestComputeRecipeTotals_MatchesLineComputation(t *testing.T) {
	per100 := nutrition.Vector{Calories: dec("123"), Salt: dec("1.111")}

	var lines []model.RecipeProduct

	for _, quantity := range []string{"33", "150", "7"} {
		line := model.RecipeProduct{}
		nutrition.ApplyToLine(nutrition.ComputeLineNutrients(per100, dec(quantity), dec("0.5")), &line)
		lines = append(lines, line)
	}

	total := nutrition.ComputeRecipeTotals(lines)

	// round(0.17*123)=20.91, round(0.75*123)=92.25, round(0.04*123)=4.92
	assert.True(t, dec("118.08").Equal(total.Calories), "calories: %s", total.Calories)
	// salt normalizes at 3 decimals: 0.165, 0.750, 0.035
	// round3(0.165*1.111)=0.183, round3(0.750*1.111)=0.833, round3(0.035*1.111)=0.039
	assert.True(t, dec("1.055").Equal(total.Salt), "salt: %s", total.Salt)
}

func TestVectorRoundTripThroughLine(t *testing.T) {
	vector := nutrition.Vector{
		Calories: dec("300.00"), Protein: dec("15.75"), Carbohydrates: dec("45.00"),
		Sugars: dec("7.88"), Fats: dec("12.00"), SaturatedFats: dec("3.75"),
		Salt: dec("2.250"), Fibre: dec("4.50"),
	}

	line := model.RecipeProduct{}
	nutrition.ApplyToLine(vector, &line)

	require.Equal(t, vector, nutrition.VectorFromLine(&line))
}

func assertZeroVector(t *testing.T, vector nutrition.Vector) {
	t.Helper()

	assert.True(t, vector.Calories.IsZero(), "calories: %s", vector.Calories)
	assert.True(t, vector.Protein.IsZero(), "protein: %s", vector.Protein)
	assert.True(t, vector.Carbohydrates.IsZero(), "carbohydrates: %s", vector.Carbohydrates)
	assert.True(t, vector.Sugars.IsZero(), "sugars: %s", vector.Sugars)
	assert.True(t, vector.Fats.IsZero(), "fats: %s", vector.Fats)
	assert.True(t, vector.SaturatedFats.IsZero(), "saturated fats: %s", vector.SaturatedFats)
	assert.True(t, vector.Salt.IsZero(), "salt: %s", vector.Salt)
	assert.True(t, vector.Fibre.IsZero(), "fibre: %s", vector.Fibre)
}
