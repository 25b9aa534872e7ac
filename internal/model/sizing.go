package model

import "github.com/shopspring/decimal"

// EssModel is one entry of a country's standard ESS module catalogue.
type EssModel struct {
	PowerKw    decimal.Decimal
	CapacityKwh decimal.Decimal
}

// ChargeMode selects the assumed daily duty cycle for ESS capacity sizing
// and for the economics projection's daily-cycle count.
type ChargeMode string

const (
	// ChargeModeOne is "one charge, one discharge" per day (2h duration).
	ChargeModeOne ChargeMode = "one"
	// ChargeModeTwo is "two charges, two discharges" per day (4h duration).
	ChargeModeTwo ChargeMode = "two"
)

// DurationHours returns the ESS sizing duration for this charge mode.
func (m ChargeMode) DurationHours() decimal.Decimal {
	if m == ChargeModeTwo {
		return decimal.NewFromInt(4)
	}
	return decimal.NewFromInt(2)
}

// DailyCycles returns the number of charge/discharge cycles per day used
// by the economics projection.
func (m ChargeMode) DailyCycles() int {
	if m == ChargeModeTwo {
		return 2
	}
	return 1
}

// EssSizing is the recommended stationary storage system, both the raw
// (pre-rounding) requirement and the selected standard module count.
type EssSizing struct {
	// CalculatedPowerKw / CalculatedCapacityKwh are the sizing requirement
	// before rounding to a standard module.
	CalculatedPowerKw    decimal.Decimal
	CalculatedCapacityKwh decimal.Decimal

	// ModelPowerKw / ModelCapacityKwh describe the chosen standard module;
	// Units is how many of that module are required.
	ModelPowerKw    decimal.Decimal
	ModelCapacityKwh decimal.Decimal
	Units           int

	// RatedPowerKw / CapacityKwh are the actual installed totals
	// (ModelPowerKw*Units, ModelCapacityKwh*Units).
	RatedPowerKw decimal.Decimal
	CapacityKwh  decimal.Decimal

	TransformerKva decimal.Decimal
}
