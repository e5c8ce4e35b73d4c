package pricing

import (
	"github.com/shopspring/decimal"
	"github.com/simaogato/recipecost-backend/internal/domain"
)

// BaseUnit is the canonical unit of a unit family
type BaseUnit string

const (
	BaseUnitGram       BaseUnit = "g"
	BaseUnitMilliliter BaseUnit = "ml"
	BaseUnitCount      BaseUnit = "unit"
	BaseUnitUnknown    BaseUnit = ""
)

// UnitFactor is one row of the default base quantity table
type UnitFactor struct {
	Base   BaseUnit
	Factor decimal.Decimal // Base units contained in ONE purchase unit
}

// DefaultBaseQuantities maps a normalized unit symbol to its base unit and the number of
// base units in one purchase unit. It is also the default purchase quantity table used when
// an ingredient has no explicit purchase quantity.
//
// Countable units default to a lot of 30. The origin of that number is unknown; it is
// kept as-is until product confirms the intended batch size.
var DefaultBaseQuantities = map[string]UnitFactor{
	// Mass -> gram
	"kg":  {Base: BaseUnitGram, Factor: decimal.NewFromInt(1000)},
	"hg":  {Base: BaseUnitGram, Factor: decimal.NewFromInt(100)},
	"dag": {Base: BaseUnitGram, Factor: decimal.NewFromInt(10)},
	"g":   {Base: BaseUnitGram, Factor: decimal.NewFromInt(1)},
	"dg":  {Base: BaseUnitGram, Factor: decimal.New(1, -1)},
	"cg":  {Base: BaseUnitGram, Factor: decimal.New(1, -2)},
	"mg":  {Base: BaseUnitGram, Factor: decimal.New(1, -3)},

	// Volume -> milliliter
	"kl":  {Base: BaseUnitMilliliter, Factor: decimal.NewFromInt(1000000)},
	"hl":  {Base: BaseUnitMilliliter, Factor: decimal.NewFromInt(100000)},
	"dal": {Base: BaseUnitMilliliter, Factor: decimal.NewFromInt(10000)},
	"l":   {Base: BaseUnitMilliliter, Factor: decimal.NewFromInt(1000)},
	"dl":  {Base: BaseUnitMilliliter, Factor: decimal.NewFromInt(100)},
	"cl":  {Base: BaseUnitMilliliter, Factor: decimal.NewFromInt(10)},
	"ml":  {Base: BaseUnitMilliliter, Factor: decimal.NewFromInt(1)},

	// Countable -> unit
	"un":       {Base: BaseUnitCount, Factor: decimal.NewFromInt(30)},
	"unidade":  {Base: BaseUnitCount, Factor: decimal.NewFromInt(30)},
	"unidades": {Base: BaseUnitCount, Factor: decimal.NewFromInt(30)},
}

// BaseUnitFactor returns the multiplier converting one purchase unit into its base unit.
// Unknown symbols return 1. The symbol is normalized (trimmed, lower-cased) first.
func BaseUnitFactor(symbol string) decimal.Decimal {
	if row, ok := DefaultBaseQuantities[domain.NormalizeUnit(symbol)]; ok {
		return row.Factor
	}
	return decimal.NewFromInt(1)
}

// BaseUnitOf returns the base unit of the symbol's family, or BaseUnitUnknown
func BaseUnitOf(symbol string) BaseUnit {
	if row, ok := DefaultBaseQuantities[domain.NormalizeUnit(symbol)]; ok {
		return row.Base
	}
	return BaseUnitUnknown
}

// BaseQuantity converts a purchase quantity into base units.
// A zero or negative quantity means "not recorded" and yields the unit's default quantity.
func BaseQuantity(purchaseQty decimal.Decimal, symbol string) decimal.Decimal {
	factor := BaseUnitFactor(symbol)
	if !purchaseQty.IsPositive() {
		return factor
	}
	return purchaseQty.Mul(factor)
}
