package model

import "github.com/shopspring/decimal"

// Project bundles the canonical inputs to the sizing/V2G core: a station's
// PV/transformer config, its vehicle fleet and pile inventory, the weekly
// charging schedule, and the TOU tariff that prices every slot.
type Project struct {
	Station  StationConfig
	Fleet    FleetConfig
	Schedule WeeklySchedule
	Tous     []TouPeriod

	Request Request
}

// Request carries the orchestrator-level knobs that are not properties of
// the station itself: the assumed ESS duty cycle, peak-shaving subsidy
// participation, and projection horizon.
type Request struct {
	ChargeMode        ChargeMode
	EnablePeakShaving bool
	SubsidyPerKwh     decimal.Decimal
	ProjectionYears   int
}
