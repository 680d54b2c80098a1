package repository_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/ikormushev/manjabook/pkg/model"
	"github.com/ikormushev/manjabook/pkg/repository"
)

type UnitTestSuite struct {
	RepositorySuite
}

func TestUnitTestSuite(t *testing.T) {
	suite.Run(t, new(UnitTestSuite))
}

func unitRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "abbreviation", "base_unit", "convert_to_base_rate", "is_customizable"})
}

func (suite *UnitTestSuite) TestAddUnit_AddsUnit() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`^INSERT INTO "units"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uint(1)))
	suite.mock.ExpectCommit()

	unit := model.Unit{
		Name:              "Tablespoon",
		Abbreviation:      "tbsp",
		BaseUnit:          "g",
		ConvertToBaseRate: decimal.RequireFromString("15"),
		IsCustomizable:    true,
	}
	result, err := suite.repository.AddUnit(context.Background(), unit)
	suite.Require().NoError(err)
	suite.Equal(uint(1), result.ID)
	suite.Equal("Tablespoon", result.Name)
}

func (suite *UnitTestSuite) TestGetUnits_OrdersByName() {
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "units"`).
		WillReturnRows(unitRows().
			AddRow(uint(2), "Grams", "g", "g", "1", false).
			AddRow(uint(1), "Tablespoon", "tbsp", "g", "15", true))

	units, err := suite.repository.GetUnits(context.Background())
	suite.Require().NoError(err)
	suite.Len(units, 2)
	suite.Equal("Grams", units[0].Name)
	suite.False(units[0].IsCustomizable)
	suite.Equal("Tablespoon", units[1].Name)
	suite.True(units[1].ConvertToBaseRate.Equal(decimal.RequireFromString("15")))
}

func (suite *UnitTestSuite) TestGetOrCreateCustomUnit_CreatesNewPair() {
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "units"`).
		WithArgs(uint(3), 1).
		WillReturnRows(unitRows().AddRow(uint(3), "Tablespoon", "tbsp", "g", "15", true))

	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`^INSERT INTO "custom_units" (.+) ON CONFLICT DO NOTHING RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uint(7)))
	suite.mock.ExpectCommit()

	customUnit, err := suite.repository.GetOrCreateCustomUnit(context.Background(), 3, decimal.RequireFromString("12.5"))
	suite.Require().NoError(err)
	suite.Equal(uint(7), customUnit.ID)
	suite.Equal(uint(3), customUnit.UnitID)
	suite.Equal("Tablespoon", customUnit.Unit.Name)
	suite.True(customUnit.CustomConvertToBaseRate.Equal(decimal.RequireFromString("12.5")))
}

func (suite *UnitTestSuite) TestGetOrCreateCustomUnit_ReturnsExistingPair() {
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "units"`).
		WithArgs(uint(3), 1).
		WillReturnRows(unitRows().AddRow(uint(3), "Tablespoon", "tbsp", "g", "15", true))

	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`^INSERT INTO "custom_units" (.+) ON CONFLICT DO NOTHING RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	suite.mock.ExpectCommit()

	suite.mock.ExpectQuery(`^SELECT (.+) FROM "custom_units" WHERE \(unit_id (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "unit_id", "custom_convert_to_base_rate"}).
			AddRow(uint(4), uint(3), "12.5"))

	customUnit, err := suite.repository.GetOrCreateCustomUnit(context.Background(), 3, decimal.RequireFromString("12.5"))
	suite.Require().NoError(err)
	suite.Equal(uint(4), customUnit.ID)
	suite.True(customUnit.CustomConvertToBaseRate.Equal(decimal.RequireFromString("12.5")))
}

func (suite *UnitTestSuite) TestGetOrCreateCustomUnit_RejectsFixedUnit() {
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "units"`).
		WithArgs(uint(2), 1).
		WillReturnRows(unitRows().AddRow(uint(2), "Grams", "g", "g", "1", false))

	customUnit, err := suite.repository.GetOrCreateCustomUnit(context.Background(), 2, decimal.RequireFromString("5"))
	suite.Require().ErrorIs(err, repository.ErrUnitNotCustomizable)
	suite.Nil(customUnit)
}
