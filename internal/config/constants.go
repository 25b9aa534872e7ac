package config

import "github.com/shopspring/decimal"

// Constants holds the tunable empirical coefficients used across the
// sizing pipeline. They are grouped into one struct (rather than
// package-level vars) so a
// caller can override a subset for backtesting against a different
// jurisdiction's standard practice without touching the core algorithms.
type Constants struct {
	// Pile rated power, keyed by pile class.
	SlowPileKw      decimal.Decimal
	FastPileKw      decimal.Decimal
	UltraFastPileKw decimal.Decimal

	// FallbackPileKw is used as the total charging power when a fleet
	// declares no piles in any class.
	FallbackPileKw decimal.Decimal

	// EmpiricalCoefficient discounts the naive sum of nameplate pile power
	// down to an expected coincident demand.
	EmpiricalCoefficient decimal.Decimal

	// V2GDischargeDerate accounts for round-trip and inverter losses on
	// the vehicle-to-grid path.
	V2GDischargeDerate decimal.Decimal

	// EssUnitCostPerKwh and the O&M ratio/inflation drive the economics
	// projection's annual cost line.
	EssUnitCostPerKwh decimal.Decimal
	OandMRatio        decimal.Decimal
	OandMInflation    decimal.Decimal

	// PileSuggestionRatioFast/Slow/Ultra are the per-class fractions of a
	// fleet's vehicle count that ComputeV2G returns as its suggested V2G
	// pile configuration on every call. They
	// need not sum to exactly 1 and together should sum to >= 1.
	PileSuggestionRatioFast  decimal.Decimal
	PileSuggestionRatioSlow  decimal.Decimal
	PileSuggestionRatioUltra decimal.Decimal
}

// DefaultConstants returns the built-in empirical coefficients.
func DefaultConstants() Constants {
	return Constants{
		SlowPileKw:      dec("7"),
		FastPileKw:      dec("120"),
		UltraFastPileKw: dec("350"),
		FallbackPileKw:  dec("7"),

		EmpiricalCoefficient: dec("0.8"),
		V2GDischargeDerate:   dec("0.85"),

		EssUnitCostPerKwh: dec("1500"),
		OandMRatio:        dec("0.02"),
		OandMInflation:    dec("0.02"),

		PileSuggestionRatioFast:  dec("0.1"),
		PileSuggestionRatioSlow:  dec("0.3"),
		PileSuggestionRatioUltra: dec("0.05"),
	}
}
