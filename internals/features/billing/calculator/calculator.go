// Package calculator holds the pure fee and unit arithmetic of a bill.
package calculator

import (
	"github.com/shopspring/decimal"

	"rentku_backend/internals/constants"
)

// Fees is the fixed set of fee components of a bill. A nil fee counts as 0.
type Fees struct {
	Rental      *decimal.Decimal
	Electricity *decimal.Decimal
	Water       *decimal.Decimal
	Service     *decimal.Decimal
	Ground      *decimal.Decimal
	CarParking  *decimal.Decimal
	Wifi        *decimal.Decimal
	Fine        *decimal.Decimal
}

func (f Fees) all() []*decimal.Decimal {
	return []*decimal.Decimal{
		f.Rental, f.Electricity, f.Water, f.Service,
		f.Ground, f.CarParking, f.Wifi, f.Fine,
	}
}

// CalculateTotalAmount sums every present fee.
func CalculateTotalAmount(f Fees) decimal.Decimal {
	total := decimal.Zero
	for _, v := range f.all() {
		if v != nil {
			total = total.Add(*v)
		}
	}
	return total
}

// Units is the approximated consumption of a bill.
type Units struct {
	Electricity decimal.Decimal
	Water       decimal.Decimal
}

// DeriveUnitsFromFees divides each fee by its per-unit rate, rounded to
// two decimals (8000 / 300 = 26.67).
func DeriveUnitsFromFees(electricityFee, waterFee decimal.Decimal) Units {
	return Units{
		Electricity: electricityFee.Div(constants.ElectricityRate).Round(constants.UnitsPrecision),
		Water:       waterFee.Div(constants.WaterRate).Round(constants.UnitsPrecision),
	}
}

// Ptr is a helper for building Fees literals.
func Ptr(d decimal.Decimal) *decimal.Decimal {
	return &d
}
