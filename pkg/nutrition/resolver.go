package nutrition

import (
	"github.com/shopspring/decimal"

	"github.com/ikormushev/manjabook/pkg/model"
)

// ResolveRate returns the conversion rate for a line item. A custom unit's
// rate always takes precedence when one is set, without checking that it was
// created for the line's declared unit. Both rates are strictly positive;
// a missing unit is a referential failure caught at the persistence boundary,
// not here.
func ResolveRate(unit *model.Unit, customUnit *model.CustomUnit) decimal.Decimal {
	if customUnit != nil {
		return customUnit.CustomConvertToBaseRate
	}

	return unit.ConvertToBaseRate
}
