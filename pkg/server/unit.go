package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ikormushev/manjabook/pkg/auth"
	"github.com/ikormushev/manjabook/pkg/model"
	"github.com/ikormushev/manjabook/pkg/repository"
)

type UnitServer struct {
	repository *repository.Repository
	auth       *auth.Manager
	logger     *zap.Logger
}

func NewUnitServer(repository *repository.Repository, authManager *auth.Manager, logger *zap.Logger) *UnitServer {
	return &UnitServer{repository: repository, auth: authManager, logger: logger}
}

func (u *UnitServer) RegisterRoutes(api *gin.RouterGroup) {
	units := api.Group("/units")
	units.GET("", u.ListUnits)
	units.GET("/:id", u.GetUnit)
	units.POST("", u.auth.RequireAuth(), u.CreateUnit)

	customUnits := api.Group("/custom-units")
	customUnits.GET("", u.ListCustomUnits)
	customUnits.GET("/:id", u.GetCustomUnit)
	customUnits.POST("", u.auth.RequireAuth(), u.CreateCustomUnit)
}

func (u *UnitServer) ListUnits(ginCtx *gin.Context) {
	units, err := u.repository.GetUnits(ginCtx.Request.Context())
	if err != nil {
		ginCtx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	responses := make([]UnitResponse, 0, len(units))
	for _, unit := range units {
		responses = append(responses, UnitFromModel(unit))
	}

	ginCtx.JSON(http.StatusOK, responses)
}

func (u *UnitServer) GetUnit(ginCtx *gin.Context) {
	unitID, err := parseIDParam(ginCtx)
	if err != nil {
		return
	}

	unit, err := u.repository.GetUnitByID(ginCtx.Request.Context(), unitID)
	if err != nil {
		notFoundOrInternal(ginCtx, err)

		return
	}

	ginCtx.JSON(http.StatusOK, UnitFromModel(unit))
}

func (u *UnitServer) ListCustomUnits(ginCtx *gin.Context) {
	customUnits, err := u.repository.GetCustomUnits(ginCtx.Request.Context())
	if err != nil {
		ginCtx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	responses := make([]CustomUnitResponse, 0, len(customUnits))
	for _, customUnit := range customUnits {
		responses = append(responses, CustomUnitFromModel(customUnit))
	}

	ginCtx.JSON(http.StatusOK, responses)
}

func (u *UnitServer) GetCustomUnit(ginCtx *gin.Context) {
	customUnitID, err := parseIDParam(ginCtx)
	if err != nil {
		return
	}

	customUnit, err := u.repository.GetCustomUnitByID(ginCtx.Request.Context(), customUnitID)
	if err != nil {
		notFoundOrInternal(ginCtx, err)

		return
	}

	ginCtx.JSON(http.StatusOK, CustomUnitFromModel(customUnit))
}

type unitCreateRequest struct {
	Name              string          `binding:"required" json:"name"`
	Abbreviation      string          `binding:"required" json:"abbreviation"`
	BaseUnit          string          `binding:"required,oneof=g ml" json:"base_unit"`
	ConvertToBaseRate decimal.Decimal `json:"convert_to_base_rate"`
	IsCustomizable    bool            `json:"is_customizable"`
}

func (u *UnitServer) CreateUnit(ginCtx *gin.Context) {
	var request unitCreateRequest

	if err := ginCtx.ShouldBindJSON(&request); err != nil {
		ginCtx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	if !request.ConvertToBaseRate.IsPositive() {
		ginCtx.JSON(http.StatusBadRequest, gin.H{"error": "base rate must be greater than zero"})

		return
	}

	unit, err := u.repository.AddUnit(ginCtx.Request.Context(), model.Unit{
		Name:              request.Name,
		Abbreviation:      request.Abbreviation,
		BaseUnit:          model.MeasurementBasis(request.BaseUnit),
		ConvertToBaseRate: request.ConvertToBaseRate,
		IsCustomizable:    request.IsCustomizable,
	})
	if err != nil {
		ginCtx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	ginCtx.JSON(http.StatusCreated, UnitFromModel(unit))
}

type customUnitCreateRequest struct {
	UnitID                  uint            `binding:"required" json:"unit"`
	CustomConvertToBaseRate decimal.Decimal `json:"custom_convert_to_base_rate"`
}

// CreateCustomUnit is get-or-create: requesting an existing (unit, rate)
// pair returns the existing row.
func (u *UnitServer) CreateCustomUnit(ginCtx *gin.Context) {
	var request customUnitCreateRequest

	if err := ginCtx.ShouldBindJSON(&request); err != nil {
		ginCtx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	if request.CustomConvertToBaseRate.LessThan(decimal.RequireFromString("0.01")) {
		ginCtx.JSON(http.StatusBadRequest, gin.H{"error": "base rate must be at least 0.01"})

		return
	}

	customUnit, err := u.repository.GetOrCreateCustomUnit(ginCtx.Request.Context(), request.UnitID, request.CustomConvertToBaseRate)
	if err != nil {
		if errors.Is(err, repository.ErrUnitNotCustomizable) {
			ginCtx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

			return
		}

		notFoundOrInternal(ginCtx, err)

		return
	}

	ginCtx.JSON(http.StatusCreated, CustomUnitFromModel(customUnit))
}
