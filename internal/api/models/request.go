package models

import "github.com/shopspring/decimal"

// SizingRequest is the request body for POST /api/v1/sizing.
type SizingRequest struct {
	Station StationConfig  `json:"station" binding:"required"`
	Fleet   FleetConfig    `json:"fleet" binding:"required"`
	Options CalcOptions    `json:"options,omitempty"`
	Tous    []TouPeriod    `json:"tous" binding:"required"`
	Days    []DaySchedule  `json:"days,omitempty"`
}

// V2GRequest is the request body for POST /api/v1/v2g.
type V2GRequest struct {
	Station StationConfig `json:"station" binding:"required"`
	Fleet   FleetConfig   `json:"fleet" binding:"required"`
	Tous    []TouPeriod   `json:"tous" binding:"required"`
	Days    []DaySchedule `json:"days,omitempty"`
}

// V2GCompareRequest is the request body for POST /api/v1/v2g/compare: a
// shared base station/fleet/tariff, sized once per named variation.
type V2GCompareRequest struct {
	Station    StationConfig  `json:"station" binding:"required"`
	Fleet      FleetConfig    `json:"fleet" binding:"required"`
	Tous       []TouPeriod    `json:"tous" binding:"required"`
	Days       []DaySchedule  `json:"days,omitempty"`
	Variations []V2GVariation `json:"variations" binding:"required"`
}

// V2GVariation is one named override of a V2GCompareRequest's base station
// and fleet. Only non-zero fields are applied; anything left zero falls
// through to the base value (config.MergeStation / config.MergeFleet).
type V2GVariation struct {
	Label   string        `json:"label" binding:"required"`
	Station StationConfig `json:"station,omitempty"`
	Fleet   FleetConfig   `json:"fleet,omitempty"`
}

// StationConfig is the wire shape of model.StationConfig.
type StationConfig struct {
	PvPeakPowerKw  decimal.Decimal `json:"pv_peak_power_kw"`
	TransformerKva decimal.Decimal `json:"transformer_kva,omitempty"`
	Country        string          `json:"country" binding:"required"`
}

// FleetConfig is the wire shape of model.FleetConfig.
type FleetConfig struct {
	VehicleCount      int         `json:"vehicle_count"`
	BatteryKwh        decimal.Decimal `json:"battery_kwh"`
	EnableTimeControl bool        `json:"enable_time_control"`
	Piles             PileCounts  `json:"piles"`
	V2GPiles          PileCounts  `json:"v2g_piles,omitempty"`
}

// PileCounts is the wire shape of model.PileCounts.
type PileCounts struct {
	Fast      int `json:"fast"`
	Slow      int `json:"slow"`
	UltraFast int `json:"ultra_fast"`
}

// TimeRange is the wire shape of model.TimeRange.
type TimeRange struct {
	Start  string          `json:"start" binding:"required"`
	End    string          `json:"end" binding:"required"`
	MinSoc decimal.Decimal `json:"min_soc,omitempty"`
}

// TouPeriod is the wire shape of model.TouPeriod.
type TouPeriod struct {
	PeriodType string          `json:"period_type"`
	Price      decimal.Decimal `json:"price" binding:"required"`
	TimeRanges []TimeRange     `json:"time_ranges" binding:"required"`
}

// DaySchedule is the wire shape of model.DaySchedule, keyed by weekday
// name ("mon".."sun") at the array position it belongs to.
type DaySchedule struct {
	Day              string      `json:"day" binding:"required"`
	Operating        bool        `json:"operating"`
	ChargeableRanges []TimeRange `json:"chargeable_ranges,omitempty"`
}

// CalcOptions carries the sizing-specific request knobs (model.Request
// minus the fields already implied by Station/Fleet).
type CalcOptions struct {
	ChargeMode        string          `json:"charge_mode,omitempty"` // "one" or "two"; default "one"
	EnablePeakShaving bool            `json:"enable_peak_shaving,omitempty"`
	SubsidyPerKwh     decimal.Decimal `json:"subsidy_per_kwh,omitempty"`
	ProjectionYears   int             `json:"projection_years,omitempty"` // default 20
}
