package repository

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.openly.dev/pointy"

	"github.com/ikormushev/manjabook/pkg/model"
)

func line(id uint, productID uint, quantity string, unitID uint, customUnitID *uint) model.RecipeProduct {
	recipeLine := model.RecipeProduct{
		ProductID:    productID,
		Quantity:     decimal.RequireFromString(quantity),
		UnitID:       unitID,
		CustomUnitID: customUnitID,
	}
	recipeLine.ID = id

	return recipeLine
}

func TestMatchLine(t *testing.T) {
	existing := []model.RecipeProduct{
		line(1, 10, "150", 3, nil),
		line(2, 10, "150", 3, pointy.Uint(5)),
		line(3, 11, "20.5", 4, nil),
	}

	tests := []struct {
		name  string
		input RecipeLineInput
		want  *uint
	}{
		{
			name:  "matches on product, unit and quantity",
			input: RecipeLineInput{ProductID: 10, Quantity: decimal.RequireFromString("150"), UnitID: 3},
			want:  pointy.Uint(1),
		},
		{
			name:  "matches quantity regardless of representation",
			input: RecipeLineInput{ProductID: 11, Quantity: decimal.RequireFromString("20.50"), UnitID: 4},
			want:  pointy.Uint(3),
		},
		{
			name:  "custom unit distinguishes lines",
			input: RecipeLineInput{ProductID: 10, Quantity: decimal.RequireFromString("150"), UnitID: 3, CustomUnitID: pointy.Uint(5)},
			want:  pointy.Uint(2),
		},
		{
			name:  "different custom unit does not match",
			input: RecipeLineInput{ProductID: 10, Quantity: decimal.RequireFromString("150"), UnitID: 3, CustomUnitID: pointy.Uint(6)},
			want:  nil,
		},
		{
			name:  "different quantity does not match",
			input: RecipeLineInput{ProductID: 10, Quantity: decimal.RequireFromString("151"), UnitID: 3},
			want:  nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			matched := matchLine(existing, test.input)
			if test.want == nil {
				assert.Nil(t, matched)

				return
			}

			require.NotNil(t, matched)
			assert.Equal(t, *test.want, matched.ID)
		})
	}
}

func TestWrapLineError_MapsNumericOverflow(t *testing.T) {
	recipeLine := line(1, 10, "9000", 4, nil)
	recipeLine.Product = model.Product{Name: "Flour"}
	recipeLine.Unit = model.Unit{Name: "Kilogram"}

	wrapped := wrapLineError(&pgconn.PgError{Code: "22003"}, &recipeLine)

	var overflow *PrecisionOverflowError
	require.ErrorAs(t, wrapped, &overflow)
	assert.Equal(t, "Flour", overflow.Product)
	assert.Equal(t, "Kilogram", overflow.Unit)
	assert.Equal(t, "product Flour - quantity 9000 too large for the specified unit - Kilogram", wrapped.Error())
}

func TestWrapLineError_PassesThroughOtherErrors(t *testing.T) {
	recipeLine := line(1, 10, "10", 4, nil)

	cause := errors.New("connection reset")
	wrapped := wrapLineError(cause, &recipeLine)

	assert.Equal(t, cause, wrapped)

	var overflow *PrecisionOverflowError
	assert.False(t, errors.As(wrapped, &overflow))
}
