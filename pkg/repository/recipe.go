package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ikormushev/manjabook/pkg/model"
	"github.com/ikormushev/manjabook/pkg/nutrition"
)

type RecipeRepository interface {
	AddRecipe(ctx context.Context, recipe model.Recipe, lines []RecipeLineInput) (*model.Recipe, error)
	UpdateRecipe(ctx context.Context, recipeID uint, recipe model.Recipe, lines []RecipeLineInput) (*model.Recipe, error)
	GetRecipeByID(ctx context.Context, recipeID uint) (*model.Recipe, error)
	GetRecipes(ctx context.Context, search string) ([]*model.Recipe, error)
	GetRecipeLineItems(ctx context.Context) ([]*model.RecipeProduct, error)
	DeleteRecipe(ctx context.Context, recipeID uint) error
}

// RecipeLineInput identifies one incoming line item of a recipe write.
type RecipeLineInput struct {
	ProductID    uint
	Quantity     decimal.Decimal
	UnitID       uint
	CustomUnitID *uint
}

// PrecisionOverflowError reports a computed nutrient value that does not fit
// its fixed-precision column, naming the offending line so the caller can
// build a user-facing message.
type PrecisionOverflowError struct {
	Product  string
	Quantity decimal.Decimal
	Unit     string
	cause    error
}

func (e *PrecisionOverflowError) Error() string {
	return fmt.Sprintf("product %s - quantity %s too large for the specified unit - %s", e.Product, e.Quantity, e.Unit)
}

func (e *PrecisionOverflowError) Unwrap() error {
	return e.cause
}

// pgNumericValueOutOfRange is the class 22 code postgres raises when a value
// exceeds a numeric column's declared precision.
const pgNumericValueOutOfRange = "22003"

func (r *Repository) AddRecipe(ctx context.Context, recipe model.Recipe, lines []RecipeLineInput) (*model.Recipe, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Create(&recipe); result.Error != nil {
			return result.Error
		}

		for _, input := range lines {
			line := newLineFromInput(recipe.ID, input)

			if err := r.deriveLineNutrients(tx, &line); err != nil {
				return err
			}

			if result := tx.Omit(clause.Associations).Create(&line); result.Error != nil {
				return wrapLineError(result.Error, &line)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetRecipeByID(ctx, recipe.ID)
}

// UpdateRecipe replaces a recipe's full line-item set. Incoming lines are
// matched against existing rows by natural key (product, unit, custom unit,
// quantity): matches are re-saved in place, the rest are created, and rows
// absent from the incoming set are deleted. Every kept or new line has its
// nutrient vector recomputed before persisting.
func (r *Repository) UpdateRecipe(ctx context.Context, recipeID uint, updated model.Recipe, lines []RecipeLineInput) (*model.Recipe, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipe model.Recipe

		if result := tx.First(&recipe, recipeID); result.Error != nil {
			return result.Error
		}

		recipe.Name = updated.Name
		recipe.Slug = updated.Slug
		recipe.QuickDescription = updated.QuickDescription
		recipe.Portions = updated.Portions
		recipe.TimeToCook = updated.TimeToCook
		recipe.TimeToPrepare = updated.TimeToPrepare
		recipe.Preparation = updated.Preparation

		if result := tx.Save(&recipe); result.Error != nil {
			return result.Error
		}

		var existing []model.RecipeProduct

		if result := tx.Where("recipe_id = ?", recipeID).Find(&existing); result.Error != nil {
			return result.Error
		}

		kept := make(map[uint]struct{}, len(lines))

		for _, input := range lines {
			line := matchLine(existing, input)
			if line == nil {
				created := newLineFromInput(recipeID, input)
				line = &created
			}

			if err := r.deriveLineNutrients(tx, line); err != nil {
				return err
			}

			if result := tx.Omit(clause.Associations).Save(line); result.Error != nil {
				return wrapLineError(result.Error, line)
			}

			kept[line.ID] = struct{}{}
		}

		var prune []uint

		for index := range existing {
			if _, found := kept[existing[index].ID]; !found {
				prune = append(prune, existing[index].ID)
			}
		}

		if len(prune) > 0 {
			if result := tx.Delete(&model.RecipeProduct{}, prune); result.Error != nil {
				return result.Error
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetRecipeByID(ctx, recipeID)
}

func (r *Repository) GetRecipeByID(ctx context.Context, recipeID uint) (*model.Recipe, error) {
	var recipe model.Recipe

	result := r.DB.WithContext(ctx).
		Preload("CreatedBy").
		Preload("CreatedBy.User").
		Preload("RecipeProducts").
		Preload("RecipeProducts.Product").
		Preload("RecipeProducts.Unit").
		Preload("RecipeProducts.CustomUnit").
		First(&recipe, recipeID)
	if result.Error != nil {
		return nil, result.Error
	}

	return &recipe, nil
}

func (r *Repository) GetRecipes(ctx context.Context, search string) ([]*model.Recipe, error) {
	var recipes []*model.Recipe

	query := r.DB.WithContext(ctx).
		Preload("CreatedBy").
		Preload("CreatedBy.User").
		Preload("RecipeProducts")
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	if result := query.Find(&recipes); result.Error != nil {
		return nil, result.Error
	}

	return recipes, nil
}

func (r *Repository) GetRecipeLineItems(ctx context.Context) ([]*model.RecipeProduct, error) {
	var lines []*model.RecipeProduct

	result := r.DB.WithContext(ctx).
		Preload("Product").
		Preload("Unit").
		Preload("CustomUnit").
		Find(&lines)
	if result.Error != nil {
		return nil, result.Error
	}

	return lines, nil
}

func (r *Repository) DeleteRecipe(ctx context.Context, recipeID uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Where("recipe_id = ?", recipeID).Delete(&model.RecipeProduct{}); result.Error != nil {
			return result.Error
		}

		result := tx.Delete(&model.Recipe{}, recipeID)

		return result.Error
	})
}

// deriveLineNutrients loads the line's product and units, resolves the
// conversion rate and writes the computed nutrient vector onto the line. This
// is the only place line nutrients are established; no background job
// re-checks them.
func (r *Repository) deriveLineNutrients(tx *gorm.DB, line *model.RecipeProduct) error {
	var product model.Product

	if result := tx.First(&product, line.ProductID); result.Error != nil {
		return result.Error
	}

	var unit model.Unit

	if result := tx.First(&unit, line.UnitID); result.Error != nil {
		return result.Error
	}

	var customUnit *model.CustomUnit

	if line.CustomUnitID != nil {
		customUnit = &model.CustomUnit{}
		if result := tx.First(customUnit, *line.CustomUnitID); result.Error != nil {
			return result.Error
		}
	}

	rate := nutrition.ResolveRate(&unit, customUnit)
	vector := nutrition.ComputeLineNutrients(nutrition.VectorFromProduct(&product), line.Quantity, rate)
	nutrition.ApplyToLine(vector, line)

	line.Product = product
	line.Unit = unit
	line.CustomUnit = customUnit

	return nil
}

func newLineFromInput(recipeID uint, input RecipeLineInput) model.RecipeProduct {
	return model.RecipeProduct{
		RecipeID:     recipeID,
		ProductID:    input.ProductID,
		Quantity:     input.Quantity,
		UnitID:       input.UnitID,
		CustomUnitID: input.CustomUnitID,
	}
}

func matchLine(existing []model.RecipeProduct, input RecipeLineInput) *model.RecipeProduct {
	for index := range existing {
		line := &existing[index]

		if line.ProductID != input.ProductID || line.UnitID != input.UnitID {
			continue
		}

		if !line.Quantity.Equal(input.Quantity) {
			continue
		}

		if (line.CustomUnitID == nil) != (input.CustomUnitID == nil) {
			continue
		}

		if line.CustomUnitID != nil && *line.CustomUnitID != *input.CustomUnitID {
			continue
		}

		return line
	}

	return nil
}

func wrapLineError(err error, line *model.RecipeProduct) error {
	var pgErr *pgconn.PgError

	if errors.As(err, &pgErr) && pgErr.Code == pgNumericValueOutOfRange {
		return &PrecisionOverflowError{
			Product:  line.Product.Name,
			Quantity: line.Quantity,
			Unit:     line.Unit.Name,
			cause:    err,
		}
	}

	return err
}
