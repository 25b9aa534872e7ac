package sizing

import (
	"github.com/shopspring/decimal"

	"station-sizing/internal/model"
)

// ComputeTariffStats summarizes a TOU tariff's price spread, used directly
// by the annual arbitrage formula.
func ComputeTariffStats(tous []model.TouPeriod) model.TariffStats {
	if len(tous) == 0 {
		return model.TariffStats{}
	}

	min := tous[0].Price
	max := tous[0].Price
	sum := decimal.Zero
	for _, t := range tous {
		if t.Price.LessThan(min) {
			min = t.Price
		}
		if t.Price.GreaterThan(max) {
			max = t.Price
		}
		sum = sum.Add(t.Price)
	}
	mean := sum.DivRound(decimal.NewFromInt(int64(len(tous))), 4)

	return model.TariffStats{
		Min:    min,
		Max:    max,
		Mean:   mean,
		Spread: max.Sub(min),
	}
}
