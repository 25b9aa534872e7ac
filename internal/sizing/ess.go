package sizing

import (
	"github.com/shopspring/decimal"

	"station-sizing/internal/config"
	"station-sizing/internal/model"
	"station-sizing/internal/sizingerr"
)

// SelectTransformerKva picks the smallest standard size at or above
// peakLoadKw, or the largest available size if the load exceeds every
// entry (attaching a warning rather than failing).
func SelectTransformerKva(peakLoadKw decimal.Decimal, standardSizes []decimal.Decimal) (decimal.Decimal, bool) {
	if len(standardSizes) == 0 {
		return decimal.Zero, false
	}
	largest := standardSizes[0]
	for _, size := range standardSizes {
		if size.GreaterThan(largest) {
			largest = size
		}
	}
	best := decimal.Zero
	found := false
	for _, size := range standardSizes {
		if size.GreaterThanOrEqual(peakLoadKw) {
			if !found || size.LessThan(best) {
				best = size
				found = true
			}
		}
	}
	if found {
		return best, true
	}
	return largest, false
}

// SelectEssModel rounds a power/capacity requirement to standard modules:
// for each candidate model, units = max(ceil(reqP/P_m), ceil(reqC/C_m))
// with units >= 1; picks the model needing the fewest units, tie-broken
// by smallest total capacity.
func SelectEssModel(requiredPowerKw, requiredCapacityKwh decimal.Decimal, models []model.EssModel) (model.EssModel, int, bool) {
	var best model.EssModel
	bestUnits := 0
	bestCapacity := decimal.Zero
	found := false

	for _, m := range models {
		if m.PowerKw.Sign() <= 0 || m.CapacityKwh.Sign() <= 0 {
			continue
		}
		unitsByPower := ceilDiv(requiredPowerKw, m.PowerKw)
		unitsByCapacity := ceilDiv(requiredCapacityKwh, m.CapacityKwh)
		units := unitsByPower
		if unitsByCapacity > units {
			units = unitsByCapacity
		}
		if units < 1 {
			units = 1
		}
		totalCapacity := m.CapacityKwh.Mul(decimal.NewFromInt(int64(units)))

		if !found || units < bestUnits || (units == bestUnits && totalCapacity.LessThan(bestCapacity)) {
			best = m
			bestUnits = units
			bestCapacity = totalCapacity
			found = true
		}
	}

	return best, bestUnits, found
}

// ceilDiv returns ceil(numerator/denominator) as an int, for positive
// decimal operands.
func ceilDiv(numerator, denominator decimal.Decimal) int {
	if denominator.Sign() <= 0 {
		return 1
	}
	if numerator.Sign() <= 0 {
		return 0
	}
	quotient := numerator.DivRound(denominator, 10)
	whole := quotient.Truncate(0)
	if quotient.GreaterThan(whole) {
		whole = whole.Add(decimal.NewFromInt(1))
	}
	return int(whole.IntPart())
}

// ComputeEssSizing runs the sizing pipeline end-to-end: transformer
// selection, ESS power and capacity requirement, and module rounding.
func ComputeEssSizing(station model.StationConfig, peakLoadKw decimal.Decimal, chargeMode model.ChargeMode, tables config.Tables, consts config.Constants) (model.EssSizing, []string, error) {
	var warnings []string

	transformerKva := station.TransformerKva
	if !station.TransformerSet {
		sizes, err := tables.TransformersFor(station.Country)
		if err != nil {
			return model.EssSizing{}, warnings, sizingerr.Newf(sizingerr.Unexpected, "station.country", "%v", err)
		}
		selected, exact := SelectTransformerKva(peakLoadKw, sizes)
		transformerKva = selected
		if !exact {
			warnings = append(warnings, "peak load exceeds every standard transformer size; using the largest available")
		}
	}

	essMaxPowerKw := peakLoadKw.Mul(consts.EmpiricalCoefficient).Round(2)
	essRatedPowerKw := essMaxPowerKw.Sub(station.PvPeakPowerKw)
	if essRatedPowerKw.Sign() < 0 {
		essRatedPowerKw = decimal.Zero
	}
	essCapacityKwh := essRatedPowerKw.Mul(chargeMode.DurationHours())

	models, err := tables.EssModelsFor(station.Country)
	if err != nil {
		return model.EssSizing{}, warnings, sizingerr.Newf(sizingerr.Unexpected, "station.country", "%v", err)
	}
	chosen, units, found := SelectEssModel(essRatedPowerKw, essCapacityKwh, models)
	if !found {
		return model.EssSizing{}, warnings, sizingerr.Newf(sizingerr.MissingInput, "station.country", "no ESS models configured for country %q", station.Country)
	}

	sizing := model.EssSizing{
		CalculatedPowerKw:     essRatedPowerKw,
		CalculatedCapacityKwh: essCapacityKwh,
		ModelPowerKw:          chosen.PowerKw,
		ModelCapacityKwh:      chosen.CapacityKwh,
		Units:                 units,
		RatedPowerKw:          chosen.PowerKw.Mul(decimal.NewFromInt(int64(units))),
		CapacityKwh:           chosen.CapacityKwh.Mul(decimal.NewFromInt(int64(units))),
		TransformerKva:        transformerKva,
	}

	if sizing.RatedPowerKw.GreaterThan(transformerKva) {
		excess := sizing.RatedPowerKw.Sub(transformerKva)
		warnings = append(warnings, "ess rated power exceeds the transformer capacity by "+excess.String()+" kW")
	}

	return sizing, warnings, nil
}
