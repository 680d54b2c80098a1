package server

import (
	"errors"
	"net/http"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ikormushev/manjabook/pkg/auth"
	"github.com/ikormushev/manjabook/pkg/model"
	"github.com/ikormushev/manjabook/pkg/repository"
)

type RecipeServer struct {
	repository repository.RecipeRepository
	auth       *auth.Manager
	logger     *zap.Logger
}

func NewRecipeServer(repository repository.RecipeRepository, authManager *auth.Manager, logger *zap.Logger) *RecipeServer {
	return &RecipeServer{repository: repository, auth: authManager, logger: logger}
}

func (r *RecipeServer) RegisterRoutes(api *gin.RouterGroup) {
	recipes := api.Group("/recipes")
	recipes.GET("", r.ListRecipes)
	recipes.GET("/:id", r.auth.OptionalAuth(), r.GetRecipe)
	recipes.POST("", r.auth.RequireAuth(), r.CreateRecipe)
	recipes.PUT("/:id", r.auth.RequireAuth(), r.UpdateRecipe)
	recipes.DELETE("/:id", r.auth.RequireAuth(), r.DeleteRecipe)

	api.GET("/recipes-products", r.ListRecipeLineItems)
}

type recipeLineRequest struct {
	ProductID    uint            `binding:"required"        json:"product"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitID       uint            `binding:"required"        json:"unit"`
	CustomUnitID *uint           `json:"custom_unit"`
}

type recipeRequest struct {
	Name             string              `binding:"required"            json:"name"`
	QuickDescription string              `json:"quick_description"`
	Portions         int16               `binding:"required,min=1"      json:"portions"`
	TimeToCook       int16               `binding:"min=0"               json:"time_to_cook"`
	TimeToPrepare    int16               `binding:"min=0"               json:"time_to_prepare"`
	Preparation      string              `json:"preparation"`
	ImageURL         string              `json:"image"`
	Products         []recipeLineRequest `binding:"required,min=1,dive" json:"products"`
}

func (request *recipeRequest) toModel() model.Recipe {
	return model.Recipe{
		Name:             request.Name,
		Slug:             slugify(request.Name),
		QuickDescription: request.QuickDescription,
		Portions:         request.Portions,
		TimeToCook:       request.TimeToCook,
		TimeToPrepare:    request.TimeToPrepare,
		Preparation:      request.Preparation,
		ImageURL:         request.ImageURL,
	}
}

func (request *recipeRequest) lineInputs() []repository.RecipeLineInput {
	lines := make([]repository.RecipeLineInput, 0, len(request.Products))
	for _, line := range request.Products {
		lines = append(lines, repository.RecipeLineInput{
			ProductID:    line.ProductID,
			Quantity:     line.Quantity,
			UnitID:       line.UnitID,
			CustomUnitID: line.CustomUnitID,
		})
	}

	return lines
}

func (r *RecipeServer) ListRecipes(ginCtx *gin.Context) {
	recipes, err := r.repository.GetRecipes(ginCtx.Request.Context(), ginCtx.Query("search"))
	if err != nil {
		ginCtx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	responses := make([]RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		responses = append(responses, RecipeFromModel(recipe))
	}

	ginCtx.JSON(http.StatusOK, responses)
}

func (r *RecipeServer) ListRecipeLineItems(ginCtx *gin.Context) {
	lines, err := r.repository.GetRecipeLineItems(ginCtx.Request.Context())
	if err != nil {
		ginCtx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	responses := make([]RecipeProductResponse, 0, len(lines))
	for _, line := range lines {
		responses = append(responses, RecipeProductFromModel(line))
	}

	ginCtx.JSON(http.StatusOK, responses)
}

func (r *RecipeServer) GetRecipe(ginCtx *gin.Context) {
	recipeID, err := parseIDParam(ginCtx)
	if err != nil {
		return
	}

	recipe, err := r.repository.GetRecipeByID(ginCtx.Request.Context(), recipeID)
	if err != nil {
		notFoundOrInternal(ginCtx, err)

		return
	}

	ginCtx.JSON(http.StatusOK, RecipeDetailFromModel(recipe, r.ownsRecipe(ginCtx, recipe)))
}

func (r *RecipeServer) CreateRecipe(ginCtx *gin.Context) {
	user, ok := auth.UserFromContext(ginCtx)
	if !ok {
		ginCtx.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})

		return
	}

	var request recipeRequest

	if err := ginCtx.ShouldBindJSON(&request); err != nil {
		ginCtx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	if err := validateLineQuantities(ginCtx, request.Products); err != nil {
		return
	}

	recipe := request.toModel()
	recipe.CreatedByID = &user.Profile.ID

	created, err := r.repository.AddRecipe(ginCtx.Request.Context(), recipe, request.lineInputs())
	if err != nil {
		r.writeRecipeError(ginCtx, err)

		return
	}

	ginCtx.JSON(http.StatusCreated, RecipeDetailFromModel(created, true))
}

func (r *RecipeServer) UpdateRecipe(ginCtx *gin.Context) {
	recipeID, err := parseIDParam(ginCtx)
	if err != nil {
		return
	}

	recipe, err := r.repository.GetRecipeByID(ginCtx.Request.Context(), recipeID)
	if err != nil {
		notFoundOrInternal(ginCtx, err)

		return
	}

	if !r.ownsRecipe(ginCtx, recipe) {
		ginCtx.JSON(http.StatusForbidden, gin.H{"error": "only the creator can modify this recipe"})

		return
	}

	var request recipeRequest

	if err := ginCtx.ShouldBindJSON(&request); err != nil {
		ginCtx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	if err := validateLineQuantities(ginCtx, request.Products); err != nil {
		return
	}

	updated, err := r.repository.UpdateRecipe(ginCtx.Request.Context(), recipeID, request.toModel(), request.lineInputs())
	if err != nil {
		r.writeRecipeError(ginCtx, err)

		return
	}

	ginCtx.JSON(http.StatusOK, RecipeDetailFromModel(updated, true))
}

func (r *RecipeServer) DeleteRecipe(ginCtx *gin.Context) {
	recipeID, err := parseIDParam(ginCtx)
	if err != nil {
		return
	}

	recipe, err := r.repository.GetRecipeByID(ginCtx.Request.Context(), recipeID)
	if err != nil {
		notFoundOrInternal(ginCtx, err)

		return
	}

	if !r.ownsRecipe(ginCtx, recipe) {
		ginCtx.JSON(http.StatusForbidden, gin.H{"error": "only the creator can delete this recipe"})

		return
	}

	if err := r.repository.DeleteRecipe(ginCtx.Request.Context(), recipeID); err != nil {
		ginCtx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	ginCtx.Status(http.StatusNoContent)
}

func (r *RecipeServer) ownsRecipe(ginCtx *gin.Context, recipe *model.Recipe) bool {
	user, ok := auth.UserFromContext(ginCtx)
	if !ok || recipe.CreatedByID == nil {
		return false
	}

	return *recipe.CreatedByID == user.Profile.ID
}

func (r *RecipeServer) writeRecipeError(ginCtx *gin.Context, err error) {
	var overflow *repository.PrecisionOverflowError
	if errors.As(err, &overflow) {
		ginCtx.JSON(http.StatusBadRequest, gin.H{"error": overflow.Error()})

		return
	}

	notFoundOrInternal(ginCtx, err)
}

func validateLineQuantities(ginCtx *gin.Context, lines []recipeLineRequest) error {
	for _, line := range lines {
		if line.Quantity.LessThanOrEqual(decimal.Zero) {
			err := errors.New("quantity must be greater than zero")
			ginCtx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

			return err
		}
	}

	return nil
}

// slugify lowercases the name and collapses anything that is not a letter
// or digit into single hyphens.
func slugify(name string) string {
	var builder strings.Builder

	lastHyphen := true
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			builder.WriteRune(r)

			lastHyphen = false
		case !lastHyphen:
			builder.WriteRune('-')

			lastHyphen = true
		}
	}

	return strings.TrimSuffix(builder.String(), "-")
}
