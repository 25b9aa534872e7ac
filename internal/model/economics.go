package model

import "github.com/shopspring/decimal"

// YearlyEconomic is one year of the 20-year economic projection.
type YearlyEconomic struct {
	Year int // 1..20

	ArbitrageRevenue   decimal.Decimal
	PeakShavingRevenue decimal.Decimal
	OperatingCost      decimal.Decimal
	NetProfit          decimal.Decimal
	CumulativeProfit   decimal.Decimal
}

// TariffStats summarizes a set of TOU prices: the spread feeds directly
// into the annual arbitrage calculation.
type TariffStats struct {
	Min    decimal.Decimal
	Max    decimal.Decimal
	Mean   decimal.Decimal
	Spread decimal.Decimal
}
