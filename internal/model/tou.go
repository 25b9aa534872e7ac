package model

import "github.com/shopspring/decimal"

// TouPeriodType names the four standard time-of-use bands.
type TouPeriodType string

const (
	TouPeak   TouPeriodType = "peak"
	TouHigh   TouPeriodType = "high"
	TouNormal TouPeriodType = "normal"
	TouValley TouPeriodType = "valley"
)

// TouPeriod is one band of a time-of-use electricity tariff: a price that
// applies during one or more (possibly wrapping) time-of-day ranges.
// TimeRanges are not required to be mutually non-overlapping; PriceForSlot
// resolves ties by taking the first matching period in list order,
// mirroring the tariff's authoring order.
type TouPeriod struct {
	PeriodType TouPeriodType
	TimeRanges []TimeRange
	Price      decimal.Decimal
}
