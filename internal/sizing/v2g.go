package sizing

import (
	"sort"

	"github.com/shopspring/decimal"

	"station-sizing/internal/model"
)

var oneHundred = decimal.NewFromInt(100)

// DispatchV2GDay runs the per-range SOC-tracking scheduler on top of an
// already-computed V1G base curve. Ranges are visited in start-slot order;
// the vehicle is assumed to arrive at the day's first range already at
// the SOC it departed the day's last range at (steady-state assumption).
// Discharge headroom is served at the range's most-expensive slots;
// charge deficit is served at its cheapest slots. V1G charge contributions
// already present in base are preserved and added to.
func DispatchV2GDay(
	ranges []model.TimeRange,
	prices [model.SlotsPerDay]decimal.Decimal,
	batteryKwh decimal.Decimal,
	v2gVehicles int,
	v2gChargePowerKw decimal.Decimal,
	derate decimal.Decimal,
	base model.SlotCurve,
) (model.SlotCurve, decimal.Decimal, error) {
	curve := base
	if v2gVehicles <= 0 || len(ranges) == 0 || v2gChargePowerKw.Sign() <= 0 {
		return curve, decimal.Zero, nil
	}

	sorted, err := sortRangesByStart(ranges)
	if err != nil {
		return curve, decimal.Zero, err
	}

	v2gDischargePowerKw := v2gChargePowerKw.Mul(derate)
	eMaxDischarge := MaxEnergyPerSlotKwh(v2gDischargePowerKw)
	eMaxCharge := MaxEnergyPerSlotKwh(v2gChargePowerKw)
	vehiclesDec := decimal.NewFromInt(int64(v2gVehicles))

	socInit := sorted[len(sorted)-1].MinSoc
	var totalDischargeRevenue, totalChargeCost decimal.Decimal

	for _, r := range sorted {
		socA, socT := socInit, r.MinSoc
		slots, err := ExpandRange(r)
		if err != nil {
			return curve, decimal.Zero, err
		}
		cands := slotsWithPrices(slots, prices)

		switch {
		case socA.GreaterThan(socT):
			headroom := socA.Sub(socT).DivRound(oneHundred, 8).Mul(batteryKwh).Mul(vehiclesDec)
			sort.SliceStable(cands, func(i, j int) bool { return cands[i].price.GreaterThan(cands[j].price) })
			remaining := headroom
			for _, cand := range cands {
				if remaining.Sign() <= 0 {
					break
				}
				e := remaining
				if e.GreaterThan(eMaxDischarge) {
					e = eMaxDischarge
				}
				curve[cand.index].DischargePowerKw = curve[cand.index].DischargePowerKw.Sub(v2gDischargePowerKw)
				curve[cand.index].DischargeEnergyKwh = curve[cand.index].DischargeEnergyKwh.Sub(e)
				totalDischargeRevenue = totalDischargeRevenue.Add(e.Mul(prices[cand.index]))
				remaining = remaining.Sub(e)
			}
		case socA.LessThan(socT):
			deficit := socT.Sub(socA).DivRound(oneHundred, 8).Mul(batteryKwh).Mul(vehiclesDec)
			sort.SliceStable(cands, func(i, j int) bool { return cands[i].price.LessThan(cands[j].price) })
			remaining := deficit
			for _, cand := range cands {
				if remaining.Sign() <= 0 {
					break
				}
				e := remaining
				if e.GreaterThan(eMaxCharge) {
					e = eMaxCharge
				}
				curve[cand.index].ChargePowerKw = curve[cand.index].ChargePowerKw.Add(v2gChargePowerKw)
				curve[cand.index].ChargeEnergyKwh = curve[cand.index].ChargeEnergyKwh.Add(e)
				totalChargeCost = totalChargeCost.Add(e.Mul(prices[cand.index]))
				remaining = remaining.Sub(e)
			}
		}

		socInit = socT
	}

	return curve, totalDischargeRevenue.Sub(totalChargeCost), nil
}

func sortRangesByStart(ranges []model.TimeRange) ([]model.TimeRange, error) {
	type indexed struct {
		r    model.TimeRange
		slot int
	}
	items := make([]indexed, len(ranges))
	for i, r := range ranges {
		slot, err := TimeToSlot(r.Start)
		if err != nil {
			return nil, err
		}
		items[i] = indexed{r: r, slot: slot}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].slot < items[j].slot })
	out := make([]model.TimeRange, len(items))
	for i, it := range items {
		out[i] = it.r
	}
	return out, nil
}

func slotsWithPrices(slots []int, prices [model.SlotsPerDay]decimal.Decimal) []priceSlot {
	out := make([]priceSlot, len(slots))
	for i, s := range slots {
		out[i] = priceSlot{index: s, price: prices[s]}
	}
	return out
}
