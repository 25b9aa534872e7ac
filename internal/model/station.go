package model

import "github.com/shopspring/decimal"

// Country codes recognized by the standard module tables (config.Tables).
const (
	CountryCN = "CN"
	CountryJP = "JP"
	CountryUK = "UK"
)

// StationConfig describes the fixed electrical environment of a charging
// station: its PV generation asset and grid connection.
type StationConfig struct {
	// PvPeakPowerKw is the installed photovoltaic capacity, >= 0.
	PvPeakPowerKw decimal.Decimal

	// TransformerKva is a user-specified transformer nameplate rating.
	// When TransformerSet is false, sizing auto-selects a transformer from
	// the country's standard size table instead.
	TransformerKva decimal.Decimal
	TransformerSet bool

	// Country selects the standard transformer/ESS module tables.
	Country string
}
