package model

import "github.com/shopspring/decimal"

// PileCounts tallies charging piles (or a subset of them, e.g. the
// V2G-capable piles) by power class.
type PileCounts struct {
	Fast     int
	Slow     int
	UltraFast int
}

// Total returns the sum of all three pile classes.
func (c PileCounts) Total() int {
	return c.Fast + c.Slow + c.UltraFast
}

// FleetConfig describes the vehicle fleet and pile inventory of a station.
type FleetConfig struct {
	VehicleCount      int
	BatteryKwh        decimal.Decimal
	EnableTimeControl bool

	Piles PileCounts

	// V2GPiles is the subset of Piles that are bidirectional. Each class
	// must be <= the corresponding Piles count.
	V2GPiles PileCounts
}

// TotalV2GPiles returns the number of V2G-capable piles across all classes.
func (f FleetConfig) TotalV2GPiles() int {
	return f.V2GPiles.Total()
}

// V1GOnlyPiles returns the pile counts with the V2G-capable piles removed,
// used to size the V1G-only share of the fleet.
func (f FleetConfig) V1GOnlyPiles() PileCounts {
	return PileCounts{
		Fast:      f.Piles.Fast - f.V2GPiles.Fast,
		Slow:      f.Piles.Slow - f.V2GPiles.Slow,
		UltraFast: f.Piles.UltraFast - f.V2GPiles.UltraFast,
	}
}
