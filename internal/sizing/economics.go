package sizing

import (
	"github.com/shopspring/decimal"

	"station-sizing/internal/config"
	"station-sizing/internal/model"
)

// annualDecayPercent is the yearly ESS capacity fade assumed by the
// projection.
var annualDecayPercent = decimal.NewFromInt(2)

// ProjectEconomics runs a year-by-year projection of arbitrage revenue,
// peak-shaving subsidy, O&M cost, and cumulative profit under exponential
// capacity decay and linear cost inflation.
func ProjectEconomics(
	capacityKwh decimal.Decimal,
	tariff model.TariffStats,
	request model.Request,
	consts config.Constants,
) []model.YearlyEconomic {
	years := request.ProjectionYears
	if years <= 0 {
		years = 20
	}

	decayFactor := decimal.NewFromInt(1).Sub(annualDecayPercent.DivRound(oneHundred, 8))
	dailyCycles := decimal.NewFromInt(int64(request.ChargeMode.DailyCycles()))
	initialInvestment := capacityKwh.Mul(consts.EssUnitCostPerKwh)

	out := make([]model.YearlyEconomic, years)
	cumulative := decimal.Zero
	decayPower := decimal.NewFromInt(1)

	for y := 1; y <= years; y++ {
		if y > 1 {
			decayPower = decayPower.Mul(decayFactor)
		}
		effectiveCapacity := capacityKwh.Mul(decayPower)

		arbitrage := effectiveCapacity.Mul(tariff.Spread).Mul(dailyCycles).Mul(decimal.NewFromInt(365)).Round(2)

		peakShaving := decimal.Zero
		if request.EnablePeakShaving {
			peakShaving = effectiveCapacity.Mul(request.SubsidyPerKwh).Mul(decimal.NewFromInt(365)).Round(2)
		}

		inflation := decimal.NewFromInt(1).Add(consts.OandMInflation.Mul(decimal.NewFromInt(int64(y - 1))))
		cost := initialInvestment.Mul(consts.OandMRatio).Mul(inflation).Round(2)

		net := arbitrage.Add(peakShaving).Sub(cost).Round(2)
		cumulative = cumulative.Add(net).Round(2)

		out[y-1] = model.YearlyEconomic{
			Year:               y,
			ArbitrageRevenue:   arbitrage,
			PeakShavingRevenue: peakShaving,
			OperatingCost:      cost,
			NetProfit:          net,
			CumulativeProfit:   cumulative,
		}
	}

	return out
}
