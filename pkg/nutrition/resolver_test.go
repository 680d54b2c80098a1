package nutrition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/ikormushev/manjabook/pkg/model"
	"github.com/ikormushev/manjabook/pkg/nutrition"
)

func TestResolveRate_ReturnsUnitRate(t *testing.T) {
	unit := model.Unit{Name: "cup", ConvertToBaseRate: dec("250.000")}

	rate := nutrition.ResolveRate(&unit, nil)

	assert.True(t, dec("250.000").Equal(rate), "rate: %s", rate)
}

func TestResolveRate_CustomRateWins(t *testing.T) {
	unit := model.Unit{Model: gorm.Model{ID: 1}, Name: "cup", ConvertToBaseRate: dec("250.000")}
	custom := model.CustomUnit{UnitID: 1, CustomConvertToBaseRate: dec("300.00")}

	rate := nutrition.ResolveRate(&unit, &custom)

	assert.True(t, dec("300.00").Equal(rate), "rate: %s", rate)
}

func TestResolveRate_CustomRateWinsAcrossUnits(t *testing.T) {
	// Deliberately permissive: the custom unit was created for a different
	// unit, and its rate still wins. Whether the pairing should be validated
	// is an open modelling question; the resolver does not enforce it.
	unit := model.Unit{Model: gorm.Model{ID: 1}, Name: "cup", ConvertToBaseRate: dec("250.000")}
	custom := model.CustomUnit{UnitID: 2, CustomConvertToBaseRate: dec("15.00")}

	rate := nutrition.ResolveRate(&unit, &custom)

	assert.True(t, dec("15.00").Equal(rate), "rate: %s", rate)
}
