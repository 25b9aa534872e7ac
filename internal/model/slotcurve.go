package model

import "github.com/shopspring/decimal"

// SlotPoint is one 15-minute sample of a day curve.
//
// ChargePowerKw/DischargePowerKw are rated instantaneous power during the
// slot (the charger/discharger is "on" at this rating for some or all of
// the slot); ChargeEnergyKwh/DischargeEnergyKwh are the actual integrated
// energy delivered in that slot, which may be less than rated power *
// 0.25h for a partially filled slot. A slot may carry both V1G and V2G
// charge (additive). V2G charge and V2G discharge never share a slot, but
// V1G charge can land in a slot where V2G discharges.
type SlotPoint struct {
	TimeSlot string // "HH:MM", zero-padded

	ChargePowerKw    decimal.Decimal // >= 0
	DischargePowerKw decimal.Decimal // <= 0

	ChargeEnergyKwh    decimal.Decimal // >= 0
	DischargeEnergyKwh decimal.Decimal // <= 0
}

// SlotCurve is a full day of 96 slot points, indexed 0..95 at 15-minute
// steps starting at 00:00.
type SlotCurve [SlotsPerDay]SlotPoint

// TotalChargeEnergyKwh sums ChargeEnergyKwh across the day.
func (c SlotCurve) TotalChargeEnergyKwh() decimal.Decimal {
	sum := decimal.Zero
	for _, p := range c {
		sum = sum.Add(p.ChargeEnergyKwh)
	}
	return sum
}

// TotalDischargeEnergyKwh sums DischargeEnergyKwh (<=0) across the day.
func (c SlotCurve) TotalDischargeEnergyKwh() decimal.Decimal {
	sum := decimal.Zero
	for _, p := range c {
		sum = sum.Add(p.DischargeEnergyKwh)
	}
	return sum
}

// PeakChargePowerKw returns the maximum ChargePowerKw across the day.
func (c SlotCurve) PeakChargePowerKw() decimal.Decimal {
	peak := decimal.Zero
	for _, p := range c {
		if p.ChargePowerKw.GreaterThan(peak) {
			peak = p.ChargePowerKw
		}
	}
	return peak
}

// DayCurve is one weekday's dispatch curve plus that day's arbitrage
// revenue (0 for V1G-only days).
type DayCurve struct {
	Weekday       Weekday
	Label         string
	Slots         SlotCurve
	DailyArbitrage decimal.Decimal
}

// WeekCurves is the output of the weekly aggregator: one curve per
// weekday in Mon..Sun order (idle for non-operating days), plus the
// slot-wise envelope and summary statistics.
type WeekCurves struct {
	Days [7]DayCurve

	// Envelope[i].ChargePowerKw is the max across days of that slot's
	// charge power; Envelope[i].DischargePowerKw is the min (most
	// negative) across days. Envelope energy fields are left zero; the
	// envelope represents worst-case instantaneous demand, not an
	// integrated energy total.
	Envelope SlotCurve

	// PeakPowerKw is the max charge power across the envelope.
	PeakPowerKw decimal.Decimal

	// PeakDischargePowerKw is the V2G pile-side rated discharge capability,
	// not derived from the envelope.
	PeakDischargePowerKw decimal.Decimal

	// DailyMaxEnergyKwh is the max, over days, of that day's total charge
	// energy.
	DailyMaxEnergyKwh decimal.Decimal

	MaxDailyArbitrage  decimal.Decimal
	WeeklyArbitrageSum decimal.Decimal
}
