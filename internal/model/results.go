package model

// LoadCurveResult is the output of computeLoadCurve: the weekly
// dispatch curves plus a human-readable trace.
type LoadCurveResult struct {
	CalculationID string
	Week          WeekCurves
	Steps         []string
	Warnings      []string
}

// SizingResult is the output of computeSizing: the weekly V1G load
// curves, the recommended ESS/transformer sizing, and the 20-year
// economic projection.
type SizingResult struct {
	CalculationID string

	Week WeekCurves
	Ess  EssSizing
	Tariff TariffStats
	Years []YearlyEconomic

	Steps    []string
	Warnings []string
}

// V2GResult is the output of computeV2G: the weekly V1G+V2G dispatch
// curves, weekly/daily arbitrage, and a suggested pile configuration.
type V2GResult struct {
	CalculationID string

	Week WeekCurves

	SuggestedPiles PileCounts

	Steps    []string
	Warnings []string
}
