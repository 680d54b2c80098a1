package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Recipe struct {
	gorm.Model
	Name             string
	Slug             string `gorm:"index"`
	QuickDescription string
	Portions         int16 `gorm:"default:1"`
	TimeToCook       int16
	TimeToPrepare    int16
	Preparation      string `gorm:"type:text"`
	ImageURL         string

	// A recipe survives its creator's account removal.
	CreatedByID *uint `gorm:"constraint:OnDelete:SET NULL;"`
	CreatedBy   *Profile

	RecipeProducts []RecipeProduct `gorm:"constraint:OnDelete:CASCADE;"`
}

// RecipeProduct associates one recipe with one product at a given quantity
// and unit. The eight nutrient columns are derived: absolute amounts for this
// line, recomputed whenever quantity, unit, custom unit or product changes.
type RecipeProduct struct {
	gorm.Model
	RecipeID  uint `gorm:"constraint:OnDelete:CASCADE;"`
	ProductID uint

	Quantity     decimal.Decimal `gorm:"type:decimal(6,2)"`
	UnitID       uint
	CustomUnitID *uint `gorm:"constraint:OnDelete:SET NULL;"`

	Calories      decimal.Decimal `gorm:"type:decimal(6,2)"`
	Protein       decimal.Decimal `gorm:"type:decimal(6,2)"`
	Carbohydrates decimal.Decimal `gorm:"type:decimal(6,2)"`
	Sugars        decimal.Decimal `gorm:"type:decimal(6,2)"`
	Fats          decimal.Decimal `gorm:"type:decimal(6,2)"`
	SaturatedFats decimal.Decimal `gorm:"type:decimal(6,2)"`
	Salt          decimal.Decimal `gorm:"type:decimal(6,3)"`
	Fibre         decimal.Decimal `gorm:"type:decimal(6,2)"`

	Product    Product
	Unit       Unit
	CustomUnit *CustomUnit
}

type RecipesCollection struct {
	gorm.Model
	Name      string
	ImageURL  string
	IsPrivate bool

	CreatedByID uint
	CreatedBy   Profile `gorm:"foreignKey:CreatedByID;constraint:OnDelete:CASCADE;"`

	Recipes []Recipe `gorm:"many2many:collection_recipes;"`
}

// SavedRecipesCollection is a bookmark. UserID holds the saver's profile ID,
// the same key collections carry in CreatedByID.
type SavedRecipesCollection struct {
	gorm.Model
	UserID              uint `gorm:"uniqueIndex:idx_saved_user_collection"`
	RecipesCollectionID uint `gorm:"uniqueIndex:idx_saved_user_collection"`
	SavedAt             time.Time

	RecipesCollection RecipesCollection `gorm:"constraint:OnDelete:CASCADE;"`
}
