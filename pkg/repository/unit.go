package repository

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm/clause"

	"github.com/ikormushev/manjabook/pkg/model"
)

var ErrUnitNotCustomizable = errors.New("unit is not customizable")

func (r *Repository) AddUnit(ctx context.Context, unit model.Unit) (*model.Unit, error) {
	if result := r.DB.WithContext(ctx).Create(&unit); result.Error != nil {
		return nil, result.Error
	}

	return &unit, nil
}

func (r *Repository) GetUnits(ctx context.Context) ([]*model.Unit, error) {
	var units []*model.Unit

	if result := r.DB.WithContext(ctx).Order("name").Find(&units); result.Error != nil {
		return nil, result.Error
	}

	return units, nil
}

func (r *Repository) GetUnitByID(ctx context.Context, unitID uint) (*model.Unit, error) {
	var unit model.Unit

	result := r.DB.WithContext(ctx).First(&unit, unitID)
	if result.Error != nil {
		return nil, result.Error
	}

	return &unit, nil
}

func (r *Repository) GetCustomUnits(ctx context.Context) ([]*model.CustomUnit, error) {
	var customUnits []*model.CustomUnit

	if result := r.DB.WithContext(ctx).Joins("Unit").Find(&customUnits); result.Error != nil {
		return nil, result.Error
	}

	return customUnits, nil
}

func (r *Repository) GetCustomUnitByID(ctx context.Context, customUnitID uint) (*model.CustomUnit, error) {
	var customUnit model.CustomUnit

	result := r.DB.WithContext(ctx).Joins("Unit").First(&customUnit, customUnitID)
	if result.Error != nil {
		return nil, result.Error
	}

	return &customUnit, nil
}

// GetOrCreateCustomUnit is an idempotent upsert keyed on (unit, rate). A
// concurrent creation of the same pair lands on the unique index and is
// treated as "already exists, return existing".
func (r *Repository) GetOrCreateCustomUnit(ctx context.Context, unitID uint, rate decimal.Decimal) (*model.CustomUnit, error) {
	unit, err := r.GetUnitByID(ctx, unitID)
	if err != nil {
		return nil, err
	}

	if !unit.IsCustomizable {
		return nil, ErrUnitNotCustomizable
	}

	customUnit := model.CustomUnit{UnitID: unitID, CustomConvertToBaseRate: rate}
	if result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&customUnit); result.Error != nil {
		return nil, result.Error
	}

	if customUnit.ID == 0 {
		result := r.DB.WithContext(ctx).
			Where("unit_id = ? AND custom_convert_to_base_rate = ?", unitID, rate).
			First(&customUnit)
		if result.Error != nil {
			return nil, result.Error
		}
	}

	customUnit.Unit = *unit

	return &customUnit, nil
}
