package model

import "github.com/shopspring/decimal"

// SlotsPerDay is the number of fixed 15-minute slots in a day.
const SlotsPerDay = 96

// SlotIntervalMinutes is the wall-clock width of one slot.
const SlotIntervalMinutes = 15

// TimeRange is a wall-clock window expressed as "HH:MM" boundaries.
// If Start > End the range wraps past midnight (e.g. "22:00"-"02:00").
type TimeRange struct {
	Start string
	End   string

	// MinSoc is the departure/arrival state-of-charge target for this
	// range, as a percentage in [0,100]. Only meaningful for chargeable
	// ranges used by the V2G scheduler; V1G-only ranges ignore it.
	MinSoc decimal.Decimal
}
