package offweb

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ikormushev/manjabook/pkg/model"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"14.5 g", "14.5"},
		{"539 kcal", "539"},
		{"0.82 g", "0.82"},
		{"1,2 g", "1.2"},
		{"", "0"},
		{"N/A", "0"},
		{"traces", "0"},
	}

	for _, test := range tests {
		assert.True(t, parseAmount(test.value).Equal(decimal.RequireFromString(test.want)),
			"parseAmount(%q)", test.value)
	}
}

func TestSaltFromSodium(t *testing.T) {
	salt := saltFromSodium(decimal.RequireFromString("0.4"))
	assert.True(t, salt.Equal(decimal.RequireFromString("1")))

	salt = saltFromSodium(decimal.RequireFromString("0.123"))
	assert.True(t, salt.Equal(decimal.RequireFromString("0.308")))
}

func TestBasisFromServingSize(t *testing.T) {
	assert.Equal(t, model.BasisGrams, basisFromServingSize("100 g"))
	assert.Equal(t, model.BasisMilliliters, basisFromServingSize("250 ml"))
	assert.Equal(t, model.BasisMilliliters, basisFromServingSize("100ML"))
	assert.Equal(t, model.BasisGrams, basisFromServingSize(""))
}

func TestFirstBrand(t *testing.T) {
	assert.Equal(t, "Nestle", firstBrand("Nestle, Nestle Bulgaria"))
	assert.Equal(t, "Basic", firstBrand("Basic"))
	assert.Equal(t, "", firstBrand(""))
}
