package sizing

import (
	"sort"

	"github.com/shopspring/decimal"

	"station-sizing/internal/model"
)

// slotIntervalHours is the fraction of an hour a single 15-minute slot covers.
var slotIntervalHours = decimal.NewFromFloat(0.25)

// MaxEnergyPerSlotKwh returns the most energy a charger of the given
// rated power can deliver in one 15-minute slot.
func MaxEnergyPerSlotKwh(pileTotalPowerKw decimal.Decimal) decimal.Decimal {
	return pileTotalPowerKw.Mul(slotIntervalHours)
}

// priceSlot pairs a slot index with its TOU price, for the greedy
// cheapest-first sort in DispatchV1GDay.
type priceSlot struct {
	index int
	price decimal.Decimal
}

// DispatchV1GDay runs the greedy day scheduler: it fills chargeable
// slots cheapest-first with up to E_max per slot until energyDemandKwh is
// exhausted (or the chargeable slots run out). The returned curve has
// chargeEnergy summing to min(energyDemandKwh, E_max*len(chargeableSlots))
// and is non-zero only at chargeable slots.
func DispatchV1GDay(chargeableSlots []int, prices [model.SlotsPerDay]decimal.Decimal, energyDemandKwh, pileTotalPowerKw decimal.Decimal) model.SlotCurve {
	var curve model.SlotCurve
	for i := range curve {
		curve[i].TimeSlot = SlotToTime(i)
	}
	if len(chargeableSlots) == 0 || energyDemandKwh.Sign() <= 0 || pileTotalPowerKw.Sign() <= 0 {
		return curve
	}

	candidates := make([]priceSlot, len(chargeableSlots))
	for i, slot := range chargeableSlots {
		candidates[i] = priceSlot{index: slot, price: prices[slot]}
	}
	// Stable sort preserves ascending-slot-index order among equal
	// prices, for a deterministic tiebreak.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].price.LessThan(candidates[j].price)
	})

	eMax := MaxEnergyPerSlotKwh(pileTotalPowerKw)
	remaining := energyDemandKwh

	for _, cand := range candidates {
		if remaining.Sign() <= 0 {
			break
		}
		e := remaining
		if e.GreaterThan(eMax) {
			e = eMax
		}
		curve[cand.index].ChargePowerKw = pileTotalPowerKw
		curve[cand.index].ChargeEnergyKwh = e
		remaining = remaining.Sub(e)
	}

	return curve
}
