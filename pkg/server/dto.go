package server

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ikormushev/manjabook/pkg/model"
	"github.com/ikormushev/manjabook/pkg/nutrition"
)

type NutrientsResponse struct {
	Calories      decimal.Decimal `json:"calories"`
	Protein       decimal.Decimal `json:"protein"`
	Carbohydrates decimal.Decimal `json:"carbohydrates"`
	Sugars        decimal.Decimal `json:"sugars"`
	Fats          decimal.Decimal `json:"fats"`
	SaturatedFats decimal.Decimal `json:"saturated_fats"`
	Salt          decimal.Decimal `json:"salt"`
	Fibre         decimal.Decimal `json:"fibre"`
}

type ShopResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type ProductResponse struct {
	ID           uint           `json:"id"`
	Name         string         `json:"name"`
	Brand        string         `json:"brand"`
	NutritionPer string         `json:"nutrition_per"`
	ShoppedFrom  []ShopResponse `json:"shopped_from"`
	NutrientsResponse
}

type UnitResponse struct {
	ID                uint            `json:"id"`
	Name              string          `json:"name"`
	Abbreviation      string          `json:"abbreviation"`
	BaseUnit          string          `json:"base_unit"`
	ConvertToBaseRate decimal.Decimal `json:"convert_to_base_rate"`
	IsCustomizable    bool            `json:"is_customizable"`
}

type CustomUnitResponse struct {
	ID                      uint            `json:"id"`
	Unit                    UnitResponse    `json:"unit"`
	CustomConvertToBaseRate decimal.Decimal `json:"custom_convert_to_base_rate"`
}

type RecipeProductResponse struct {
	ID         uint                `json:"id"`
	Product    ProductResponse     `json:"product"`
	Quantity   decimal.Decimal     `json:"quantity"`
	Unit       UnitResponse        `json:"unit"`
	CustomUnit *CustomUnitResponse `json:"custom_unit"`
	NutrientsResponse
}

type ProfileResponse struct {
	UserID     uint   `json:"user_id"`
	Username   string `json:"username"`
	PictureURL string `json:"picture_url"`
}

type RecipeResponse struct {
	ID               uint               `json:"id"`
	Name             string             `json:"name"`
	Slug             string             `json:"slug"`
	QuickDescription string             `json:"quick_description"`
	TimeToCook       int16              `json:"time_to_cook"`
	TimeToPrepare    int16              `json:"time_to_prepare"`
	ImageURL         string             `json:"image"`
	CreatedBy        *ProfileResponse   `json:"created_by"`
	TotalNutrients   *NutrientsResponse `json:"total_nutrients,omitempty"`
}

type RecipeDetailResponse struct {
	RecipeResponse
	Portions    int16                   `json:"portions"`
	Products    []RecipeProductResponse `json:"products"`
	Preparation string                  `json:"preparation"`
	CreatedAt   time.Time               `json:"created_at"`
	IsOwner     bool                    `json:"is_owner"`
}

type CollectionResponse struct {
	ID        uint             `json:"id"`
	Name      string           `json:"name"`
	ImageURL  string           `json:"image"`
	IsPrivate bool             `json:"is_private"`
	CreatedBy *ProfileResponse `json:"created_by"`
	Recipes   []RecipeResponse `json:"recipes"`
	CreatedAt time.Time        `json:"created_at"`
}

type SavedCollectionResponse struct {
	ID         uint               `json:"id"`
	Collection CollectionResponse `json:"recipes_collection"`
	SavedAt    time.Time          `json:"saved_at"`
}

func nutrientsFromVector(vector nutrition.Vector) NutrientsResponse {
	return NutrientsResponse{
		Calories:      vector.Calories,
		Protein:       vector.Protein,
		Carbohydrates: vector.Carbohydrates,
		Sugars:        vector.Sugars,
		Fats:          vector.Fats,
		SaturatedFats: vector.SaturatedFats,
		Salt:          vector.Salt,
		Fibre:         vector.Fibre,
	}
}

func ShopFromModel(shop *model.Shop) ShopResponse {
	return ShopResponse{ID: shop.ID, Name: shop.Name}
}

func ProductFromModel(product *model.Product) ProductResponse {
	shops := make([]ShopResponse, 0, len(product.Shops))
	for index := range product.Shops {
		shops = append(shops, ShopFromModel(&product.Shops[index]))
	}

	return ProductResponse{
		ID:                product.ID,
		Name:              product.Name,
		Brand:             product.Brand,
		NutritionPer:      string(product.NutritionPer),
		ShoppedFrom:       shops,
		NutrientsResponse: nutrientsFromVector(nutrition.VectorFromProduct(product)),
	}
}

func UnitFromModel(unit *model.Unit) UnitResponse {
	return UnitResponse{
		ID:                unit.ID,
		Name:              unit.Name,
		Abbreviation:      unit.Abbreviation,
		BaseUnit:          string(unit.BaseUnit),
		ConvertToBaseRate: unit.ConvertToBaseRate,
		IsCustomizable:    unit.IsCustomizable,
	}
}

func CustomUnitFromModel(customUnit *model.CustomUnit) CustomUnitResponse {
	return CustomUnitResponse{
		ID:                      customUnit.ID,
		Unit:                    UnitFromModel(&customUnit.Unit),
		CustomConvertToBaseRate: customUnit.CustomConvertToBaseRate,
	}
}

func RecipeProductFromModel(line *model.RecipeProduct) RecipeProductResponse {
	response := RecipeProductResponse{
		ID:                line.ID,
		Product:           ProductFromModel(&line.Product),
		Quantity:          line.Quantity,
		Unit:              UnitFromModel(&line.Unit),
		NutrientsResponse: nutrientsFromVector(nutrition.VectorFromLine(line)),
	}

	if line.CustomUnit != nil {
		customUnit := CustomUnitFromModel(line.CustomUnit)
		response.CustomUnit = &customUnit
	}

	return response
}

func ProfileFromModel(profile *model.Profile) *ProfileResponse {
	if profile == nil {
		return nil
	}

	response := ProfileResponse{UserID: profile.UserID, PictureURL: profile.PictureURL}
	if profile.User != nil {
		response.Username = profile.User.Username
	}

	return &response
}

func RecipeFromModel(recipe *model.Recipe) RecipeResponse {
	response := RecipeResponse{
		ID:               recipe.ID,
		Name:             recipe.Name,
		Slug:             recipe.Slug,
		QuickDescription: recipe.QuickDescription,
		TimeToCook:       recipe.TimeToCook,
		TimeToPrepare:    recipe.TimeToPrepare,
		ImageURL:         recipe.ImageURL,
	}

	response.CreatedBy = ProfileFromModel(recipe.CreatedBy)

	// Aggregate nutrients are never stored; every response recomputes them
	// from the current line items.
	totals := nutrientsFromVector(nutrition.ComputeRecipeTotals(recipe.RecipeProducts))
	response.TotalNutrients = &totals

	return response
}

func RecipeDetailFromModel(recipe *model.Recipe, isOwner bool) RecipeDetailResponse {
	products := make([]RecipeProductResponse, 0, len(recipe.RecipeProducts))
	for index := range recipe.RecipeProducts {
		products = append(products, RecipeProductFromModel(&recipe.RecipeProducts[index]))
	}

	return RecipeDetailResponse{
		RecipeResponse: RecipeFromModel(recipe),
		Portions:       recipe.Portions,
		Products:       products,
		Preparation:    recipe.Preparation,
		CreatedAt:      recipe.CreatedAt,
		IsOwner:        isOwner,
	}
}

func CollectionFromModel(collection *model.RecipesCollection) CollectionResponse {
	recipes := make([]RecipeResponse, 0, len(collection.Recipes))
	for index := range collection.Recipes {
		recipes = append(recipes, RecipeFromModel(&collection.Recipes[index]))
	}

	return CollectionResponse{
		ID:        collection.ID,
		Name:      collection.Name,
		ImageURL:  collection.ImageURL,
		IsPrivate: collection.IsPrivate,
		CreatedBy: ProfileFromModel(&collection.CreatedBy),
		Recipes:   recipes,
		CreatedAt: collection.CreatedAt,
	}
}

func SavedCollectionFromModel(saved *model.SavedRecipesCollection) SavedCollectionResponse {
	return SavedCollectionResponse{
		ID:         saved.ID,
		Collection: CollectionFromModel(&saved.RecipesCollection),
		SavedAt:    saved.SavedAt,
	}
}
