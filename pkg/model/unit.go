package model

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Unit struct {
	gorm.Model
	Name              string
	Abbreviation      string
	BaseUnit          MeasurementBasis `gorm:"type:varchar(2);default:g"`
	ConvertToBaseRate decimal.Decimal  `gorm:"type:decimal(7,3)"`
	IsCustomizable    bool
}

// CustomUnit is an alternate conversion rate for a customizable Unit. A
// (unit, rate) pair is unique; requests for the same pair collapse onto one
// row via get-or-create.
type CustomUnit struct {
	gorm.Model
	UnitID                  uint            `gorm:"uniqueIndex:idx_custom_unit_rate"`
	CustomConvertToBaseRate decimal.Decimal `gorm:"type:decimal(6,2);uniqueIndex:idx_custom_unit_rate"`

	Unit Unit `gorm:"foreignKey:UnitID;constraint:OnDelete:CASCADE;"`
}
