package model

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MeasurementBasis is the unit a product's nutrient profile is expressed
// per 100 of.
type MeasurementBasis string

const (
	BasisGrams       MeasurementBasis = "g"
	BasisMilliliters MeasurementBasis = "ml"
)

type Shop struct {
	gorm.Model
	Name string
}

// Product nutrient values are always relative to 100 units of NutritionPer,
// never absolute.
type Product struct {
	gorm.Model
	Name         string
	Brand        string           `gorm:"default:Basic"`
	NutritionPer MeasurementBasis `gorm:"type:varchar(2);default:g"`

	Calories      decimal.Decimal `gorm:"type:decimal(5,2)"`
	Protein       decimal.Decimal `gorm:"type:decimal(5,2)"`
	Carbohydrates decimal.Decimal `gorm:"type:decimal(5,2)"`
	Sugars        decimal.Decimal `gorm:"type:decimal(5,2)"`
	Fats          decimal.Decimal `gorm:"type:decimal(5,2)"`
	SaturatedFats decimal.Decimal `gorm:"type:decimal(5,2)"`
	Salt          decimal.Decimal `gorm:"type:decimal(5,3)"`
	Fibre         decimal.Decimal `gorm:"type:decimal(4,2)"`

	Shops []Shop `gorm:"many2many:product_shops;"`
}
