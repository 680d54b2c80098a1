package server

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Overnight Oats", "overnight-oats"},
		{"Mom's Banitsa!", "mom-s-banitsa"},
		{"  Spaced   Out  ", "spaced-out"},
		{"100% Rye Bread", "100-rye-bread"},
		{"", ""},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, slugify(test.name), "slugify(%q)", test.name)
	}
}

func TestProductCreateRequest_ValidateNutrients(t *testing.T) {
	request := productCreateRequest{
		Calories: decimal.RequireFromString("389"),
		Salt:     decimal.RequireFromString("0.002"),
	}
	assert.Empty(t, request.validateNutrients())

	request.Calories = decimal.RequireFromString("1000.01")
	request.Fibre = decimal.RequireFromString("51")

	problems := request.validateNutrients()
	assert.Len(t, problems, 2)
	assert.Contains(t, problems, "calories")
	assert.Contains(t, problems, "fibre")
}

func TestProductCreateRequest_RejectsNegativeNutrients(t *testing.T) {
	request := productCreateRequest{
		Protein: decimal.RequireFromString("-1"),
	}

	problems := request.validateNutrients()
	assert.Contains(t, problems, "protein")
}
