package sizing

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"station-sizing/internal/config"
	"station-sizing/internal/model"
)

// ChargeableSlotSet unions the slot sets of the given ranges into a
// deduplicated, ascending-sorted slice.
func ChargeableSlotSet(ranges []model.TimeRange) ([]int, error) {
	seen := make(map[int]struct{})
	for _, r := range ranges {
		slots, err := ExpandRange(r)
		if err != nil {
			return nil, err
		}
		for _, s := range slots {
			seen[s] = struct{}{}
		}
	}
	out := make([]int, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Ints(out)
	return out, nil
}

func allSlots() []int {
	out := make([]int, model.SlotsPerDay)
	for i := range out {
		out[i] = i
	}
	return out
}

// maxRangeMinSoc returns the largest minSoc target declared across ranges,
// used as the single daily V1G charge target.
func maxRangeMinSoc(ranges []model.TimeRange) decimal.Decimal {
	max := decimal.Zero
	for _, r := range ranges {
		if r.MinSoc.GreaterThan(max) {
			max = r.MinSoc
		}
	}
	return max
}

// ComputeWeek runs the weekly aggregator: one day curve per weekday
// (V1G-only or V1G+V2G), the max-envelope curve, and the weekly/daily
// aggregates.
func ComputeWeek(project model.Project, consts config.Constants) (model.WeekCurves, []string, []string, error) {
	var steps, warnings []string
	steps = append(steps, "resolving TOU price curve")

	prices, anyUnmatched, err := PriceCurve(project.Tous)
	if err != nil {
		return model.WeekCurves{}, steps, warnings, err
	}
	if anyUnmatched {
		warnings = append(warnings, "TOU tariff does not cover every slot; uncovered slots priced at the tariff's mean")
	}

	fleet := project.Fleet
	v2gVehicles := fleet.TotalV2GPiles()
	if v2gVehicles > fleet.VehicleCount {
		v2gVehicles = fleet.VehicleCount
	}
	v1gVehicles := fleet.VehicleCount - v2gVehicles

	v1gPower := TotalChargingPowerKw(fleet.V1GOnlyPiles(), v1gVehicles, consts)
	v2gPower := TotalChargingPowerKw(fleet.V2GPiles, v2gVehicles, consts)

	steps = append(steps, fmt.Sprintf("v1g vehicles=%d at %s kW, v2g vehicles=%d at %s kW",
		v1gVehicles, v1gPower.String(), v2gVehicles, v2gPower.String()))

	var week model.WeekCurves
	week.PeakPowerKw = decimal.Zero
	week.PeakDischargePowerKw = decimal.Zero
	if v2gVehicles > 0 {
		week.PeakDischargePowerKw = v2gPower.Mul(consts.V2GDischargeDerate).Neg()
	}

	for wd := model.Monday; wd <= model.Sunday; wd++ {
		day := project.Schedule.Day(wd)

		var slots []int
		var ranges []model.TimeRange
		var target decimal.Decimal

		switch {
		case !fleet.EnableTimeControl:
			slots = allSlots()
			ranges = day.ChargeableRanges
			target = fleet.BatteryKwh
		case !day.Operating:
			slots = nil
		default:
			ranges = day.ChargeableRanges
			slots, err = ChargeableSlotSet(ranges)
			if err != nil {
				return model.WeekCurves{}, steps, warnings, err
			}
			target = maxRangeMinSoc(ranges).DivRound(oneHundred, 8).Mul(fleet.BatteryKwh)
		}

		demand := target.Mul(decimal.NewFromInt(int64(v1gVehicles)))
		base := DispatchV1GDay(slots, prices, demand, v1gPower)

		var arbitrage decimal.Decimal
		curve := base
		if v2gVehicles > 0 && len(ranges) > 0 {
			curve, arbitrage, err = DispatchV2GDay(ranges, prices, fleet.BatteryKwh, v2gVehicles, v2gPower, consts.V2GDischargeDerate, base)
			if err != nil {
				return model.WeekCurves{}, steps, warnings, err
			}
		}

		week.Days[wd] = model.DayCurve{
			Weekday:        wd,
			Label:          model.WeekdayNames[wd],
			Slots:          curve,
			DailyArbitrage: arbitrage,
		}
	}

	for i := 0; i < model.SlotsPerDay; i++ {
		week.Envelope[i].TimeSlot = SlotToTime(i)
		maxCharge := decimal.Zero
		minDischarge := decimal.Zero
		for _, day := range week.Days {
			if day.Slots[i].ChargePowerKw.GreaterThan(maxCharge) {
				maxCharge = day.Slots[i].ChargePowerKw
			}
			if day.Slots[i].DischargePowerKw.LessThan(minDischarge) {
				minDischarge = day.Slots[i].DischargePowerKw
			}
		}
		week.Envelope[i].ChargePowerKw = maxCharge
		week.Envelope[i].DischargePowerKw = minDischarge
		if maxCharge.GreaterThan(week.PeakPowerKw) {
			week.PeakPowerKw = maxCharge
		}
	}

	for i, day := range week.Days {
		dailyEnergy := day.Slots.TotalChargeEnergyKwh()
		if dailyEnergy.GreaterThan(week.DailyMaxEnergyKwh) {
			week.DailyMaxEnergyKwh = dailyEnergy
		}
		// MaxDailyArbitrage can be legitimately negative (scenario 5), so
		// seed it from the first day rather than comparing against a
		// zero-value default.
		if i == 0 || day.DailyArbitrage.GreaterThan(week.MaxDailyArbitrage) {
			week.MaxDailyArbitrage = day.DailyArbitrage
		}
		week.WeeklyArbitrageSum = week.WeeklyArbitrageSum.Add(day.DailyArbitrage)
	}

	steps = append(steps, "aggregated weekly envelope and arbitrage")
	return week, steps, warnings, nil
}
