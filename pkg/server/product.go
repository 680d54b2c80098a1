package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ikormushev/manjabook/configs"
	"github.com/ikormushev/manjabook/pkg/auth"
	"github.com/ikormushev/manjabook/pkg/integrations"
	"github.com/ikormushev/manjabook/pkg/model"
	"github.com/ikormushev/manjabook/pkg/repository"
)

type ProductServer struct {
	repository *repository.Repository
	auth       *auth.Manager
	logger     *zap.Logger
	config     *configs.Config
}

func NewProductServer(repository *repository.Repository, authManager *auth.Manager, logger *zap.Logger, config *configs.Config) *ProductServer {
	return &ProductServer{repository: repository, auth: authManager, logger: logger, config: config}
}

func (p *ProductServer) RegisterRoutes(api *gin.RouterGroup) {
	products := api.Group("/products")
	products.GET("", p.ListProducts)
	products.GET("/:id", p.GetProduct)
	products.GET("/import", p.auth.RequireAuth(), p.ImportProducts)
	products.POST("", p.auth.RequireAuth(), p.CreateProduct)

	shops := api.Group("/shops")
	shops.GET("", p.ListShops)
	shops.POST("", p.auth.RequireAuth(), p.CreateShop)
}

type productCreateRequest struct {
	Name         string `binding:"required,min=3,max=30" json:"name"`
	Brand        string `binding:"max=30"                json:"brand"`
	NutritionPer string `binding:"required,oneof=g ml"   json:"nutrition_per"`
	ShoppedFrom  []uint `json:"shopped_from"`

	Calories      decimal.Decimal `json:"calories"`
	Protein       decimal.Decimal `json:"protein"`
	Carbohydrates decimal.Decimal `json:"carbohydrates"`
	Sugars        decimal.Decimal `json:"sugars"`
	Fats          decimal.Decimal `json:"fats"`
	SaturatedFats decimal.Decimal `json:"saturated_fats"`
	Salt          decimal.Decimal `json:"salt"`
	Fibre         decimal.Decimal `json:"fibre"`
}

// Nutrient bounds per 100 units of the measurement basis.
var nutrientBounds = []struct {
	name string
	max  string
	get  func(*productCreateRequest) decimal.Decimal
}{
	{"calories", "1000", func(r *productCreateRequest) decimal.Decimal { return r.Calories }},
	{"protein", "250", func(r *productCreateRequest) decimal.Decimal { return r.Protein }},
	{"carbohydrates", "250", func(r *productCreateRequest) decimal.Decimal { return r.Carbohydrates }},
	{"sugars", "250", func(r *productCreateRequest) decimal.Decimal { return r.Sugars }},
	{"fats", "111.11", func(r *productCreateRequest) decimal.Decimal { return r.Fats }},
	{"saturated_fats", "111.11", func(r *productCreateRequest) decimal.Decimal { return r.SaturatedFats }},
	{"salt", "100", func(r *productCreateRequest) decimal.Decimal { return r.Salt }},
	{"fibre", "50", func(r *productCreateRequest) decimal.Decimal { return r.Fibre }},
}

func (request *productCreateRequest) validateNutrients() map[string]string {
	fieldErrors := make(map[string]string)

	for _, bound := range nutrientBounds {
		value := bound.get(request)
		maximum := decimal.RequireFromString(bound.max)

		if value.IsNegative() || value.GreaterThan(maximum) {
			fieldErrors[bound.name] = "must be between 0 and " + bound.max
		}
	}

	if len(fieldErrors) == 0 {
		return nil
	}

	return fieldErrors
}

func (p *ProductServer) CreateProduct(ginCtx *gin.Context) {
	var request productCreateRequest

	if err := ginCtx.ShouldBindJSON(&request); err != nil {
		ginCtx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	if fieldErrors := request.validateNutrients(); fieldErrors != nil {
		ginCtx.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrors})

		return
	}

	product := model.Product{
		Name:          request.Name,
		Brand:         request.Brand,
		NutritionPer:  model.MeasurementBasis(request.NutritionPer),
		Calories:      request.Calories,
		Protein:       request.Protein,
		Carbohydrates: request.Carbohydrates,
		Sugars:        request.Sugars,
		Fats:          request.Fats,
		SaturatedFats: request.SaturatedFats,
		Salt:          request.Salt,
		Fibre:         request.Fibre,
	}

	if product.Brand == "" {
		product.Brand = "Basic"
	}

	created, err := p.repository.AddProduct(ginCtx.Request.Context(), product, request.ShoppedFrom)
	if err != nil {
		ginCtx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	ginCtx.JSON(http.StatusCreated, ProductFromModel(created))
}

func (p *ProductServer) ListProducts(ginCtx *gin.Context) {
	products, err := p.repository.GetProducts(ginCtx.Request.Context(), ginCtx.Query("search"))
	if err != nil {
		ginCtx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	responses := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		responses = append(responses, ProductFromModel(product))
	}

	ginCtx.JSON(http.StatusOK, responses)
}

func (p *ProductServer) GetProduct(ginCtx *gin.Context) {
	productID, err := parseIDParam(ginCtx)
	if err != nil {
		return
	}

	product, err := p.repository.GetProductByID(ginCtx.Request.Context(), productID)
	if err != nil {
		notFoundOrInternal(ginCtx, err)

		return
	}

	ginCtx.JSON(http.StatusOK, ProductFromModel(product))
}

// ImportProducts queries the configured external integrations for product
// candidates. Nothing is persisted; the client reviews and submits a normal
// create.
func (p *ProductServer) ImportProducts(ginCtx *gin.Context) {
	query := ginCtx.Query("query")
	if query == "" {
		ginCtx.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})

		return
	}

	var candidates []ProductResponse

	for _, name := range p.config.Integrations.Product {
		integration := integrations.GetIntegration(name, p.logger)
		if integration == nil {
			continue
		}

		found, err := integration.FindProduct(query)
		if err != nil {
			p.logger.Error("failed product search", zap.String("integration", name), zap.Error(err))

			continue
		}

		for index := range found {
			candidates = append(candidates, ProductFromModel(&found[index]))
		}
	}

	ginCtx.JSON(http.StatusOK, candidates)
}

type shopCreateRequest struct {
	Name string `binding:"required,min=1,max=20" json:"name"`
}

func (p *ProductServer) CreateShop(ginCtx *gin.Context) {
	var request shopCreateRequest

	if err := ginCtx.ShouldBindJSON(&request); err != nil {
		ginCtx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	shop, err := p.repository.AddShop(ginCtx.Request.Context(), request.Name)
	if err != nil {
		ginCtx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	ginCtx.JSON(http.StatusCreated, ShopFromModel(shop))
}

func (p *ProductServer) ListShops(ginCtx *gin.Context) {
	shops, err := p.repository.GetShops(ginCtx.Request.Context())
	if err != nil {
		ginCtx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	responses := make([]ShopResponse, 0, len(shops))
	for _, shop := range shops {
		responses = append(responses, ShopFromModel(shop))
	}

	ginCtx.JSON(http.StatusOK, responses)
}
