package models

import (
	"github.com/shopspring/decimal"

	"station-sizing/internal/model"
)

// SlotPoint is the wire shape of model.SlotPoint.
type SlotPoint struct {
	TimeSlot           string          `json:"time_slot"`
	Action             string          `json:"action"`
	ChargePowerKw      decimal.Decimal `json:"charge_power_kw"`
	DischargePowerKw   decimal.Decimal `json:"discharge_power_kw"`
	ChargeEnergyKwh    decimal.Decimal `json:"charge_energy_kwh"`
	DischargeEnergyKwh decimal.Decimal `json:"discharge_energy_kwh"`
}

// DayCurve is the wire shape of model.DayCurve.
type DayCurve struct {
	Weekday        string          `json:"weekday"`
	Slots          []SlotPoint     `json:"slots"`
	DailyArbitrage decimal.Decimal `json:"daily_arbitrage"`
}

// WeekCurves is the wire shape of model.WeekCurves.
type WeekCurves struct {
	Days                 []DayCurve      `json:"days"`
	Envelope             []SlotPoint     `json:"envelope"`
	PeakPowerKw          decimal.Decimal `json:"peak_power_kw"`
	PeakDischargePowerKw decimal.Decimal `json:"peak_discharge_power_kw"`
	DailyMaxEnergyKwh    decimal.Decimal `json:"daily_max_energy_kwh"`
	MaxDailyArbitrage    decimal.Decimal `json:"max_daily_arbitrage"`
	WeeklyArbitrageSum   decimal.Decimal `json:"weekly_arbitrage_sum"`
}

func fromModelSlotCurve(c model.SlotCurve) []SlotPoint {
	out := make([]SlotPoint, len(c))
	for i, p := range c {
		out[i] = SlotPoint{
			TimeSlot:           p.TimeSlot,
			Action:             string(model.ActionForSlot(p)),
			ChargePowerKw:      p.ChargePowerKw,
			DischargePowerKw:   p.DischargePowerKw,
			ChargeEnergyKwh:    p.ChargeEnergyKwh,
			DischargeEnergyKwh: p.DischargeEnergyKwh,
		}
	}
	return out
}

// FromModelWeekCurves converts a model.WeekCurves into its wire shape.
func FromModelWeekCurves(w model.WeekCurves) WeekCurves {
	return fromModelWeek(w)
}

func fromModelWeek(w model.WeekCurves) WeekCurves {
	days := make([]DayCurve, len(w.Days))
	for i, d := range w.Days {
		days[i] = DayCurve{
			Weekday:        d.Label,
			Slots:          fromModelSlotCurve(d.Slots),
			DailyArbitrage: d.DailyArbitrage,
		}
	}
	return WeekCurves{
		Days:                 days,
		Envelope:             fromModelSlotCurve(w.Envelope),
		PeakPowerKw:          w.PeakPowerKw,
		PeakDischargePowerKw: w.PeakDischargePowerKw,
		DailyMaxEnergyKwh:    w.DailyMaxEnergyKwh,
		MaxDailyArbitrage:    w.MaxDailyArbitrage,
		WeeklyArbitrageSum:   w.WeeklyArbitrageSum,
	}
}

// EssSizing is the wire shape of model.EssSizing.
type EssSizing struct {
	CalculatedPowerKw     decimal.Decimal `json:"calculated_power_kw"`
	CalculatedCapacityKwh decimal.Decimal `json:"calculated_capacity_kwh"`
	ModelPowerKw          decimal.Decimal `json:"model_power_kw"`
	ModelCapacityKwh      decimal.Decimal `json:"model_capacity_kwh"`
	Units                 int             `json:"units"`
	RatedPowerKw          decimal.Decimal `json:"rated_power_kw"`
	CapacityKwh           decimal.Decimal `json:"capacity_kwh"`
	TransformerKva        decimal.Decimal `json:"transformer_kva"`
}

func fromModelEssSizing(e model.EssSizing) EssSizing {
	return EssSizing{
		CalculatedPowerKw:     e.CalculatedPowerKw,
		CalculatedCapacityKwh: e.CalculatedCapacityKwh,
		ModelPowerKw:          e.ModelPowerKw,
		ModelCapacityKwh:      e.ModelCapacityKwh,
		Units:                 e.Units,
		RatedPowerKw:          e.RatedPowerKw,
		CapacityKwh:           e.CapacityKwh,
		TransformerKva:        e.TransformerKva,
	}
}

// TariffStats is the wire shape of model.TariffStats.
type TariffStats struct {
	Min    decimal.Decimal `json:"min"`
	Max    decimal.Decimal `json:"max"`
	Mean   decimal.Decimal `json:"mean"`
	Spread decimal.Decimal `json:"spread"`
}

func fromModelTariffStats(t model.TariffStats) TariffStats {
	return TariffStats{Min: t.Min, Max: t.Max, Mean: t.Mean, Spread: t.Spread}
}

// YearlyEconomic is the wire shape of model.YearlyEconomic.
type YearlyEconomic struct {
	Year               int             `json:"year"`
	ArbitrageRevenue   decimal.Decimal `json:"arbitrage_revenue"`
	PeakShavingRevenue decimal.Decimal `json:"peak_shaving_revenue"`
	OperatingCost      decimal.Decimal `json:"operating_cost"`
	NetProfit          decimal.Decimal `json:"net_profit"`
	CumulativeProfit   decimal.Decimal `json:"cumulative_profit"`
}

func fromModelYears(years []model.YearlyEconomic) []YearlyEconomic {
	out := make([]YearlyEconomic, len(years))
	for i, y := range years {
		out[i] = YearlyEconomic{
			Year:               y.Year,
			ArbitrageRevenue:   y.ArbitrageRevenue,
			PeakShavingRevenue: y.PeakShavingRevenue,
			OperatingCost:      y.OperatingCost,
			NetProfit:          y.NetProfit,
			CumulativeProfit:   y.CumulativeProfit,
		}
	}
	return out
}

// SizingResponse is the response body for POST /api/v1/sizing.
type SizingResponse struct {
	CalculationID string          `json:"calculation_id"`
	Week          WeekCurves      `json:"week"`
	Ess           EssSizing       `json:"ess"`
	Tariff        TariffStats     `json:"tariff"`
	Years         []YearlyEconomic `json:"years"`
	Steps         []string        `json:"steps,omitempty"`
	Warnings      []string        `json:"warnings,omitempty"`
}

// FromModelSizingResult converts a model.SizingResult into its wire shape.
func FromModelSizingResult(r model.SizingResult) SizingResponse {
	return SizingResponse{
		CalculationID: r.CalculationID,
		Week:          fromModelWeek(r.Week),
		Ess:           fromModelEssSizing(r.Ess),
		Tariff:        fromModelTariffStats(r.Tariff),
		Years:         fromModelYears(r.Years),
		Steps:         r.Steps,
		Warnings:      r.Warnings,
	}
}

// V2GResponse is the response body for POST /api/v1/v2g.
type V2GResponse struct {
	CalculationID  string     `json:"calculation_id"`
	Week           WeekCurves `json:"week"`
	SuggestedPiles PileCounts `json:"suggested_piles"`
	Steps          []string   `json:"steps,omitempty"`
	Warnings       []string   `json:"warnings,omitempty"`
}

// FromModelV2GResult converts a model.V2GResult into its wire shape.
func FromModelV2GResult(r model.V2GResult) V2GResponse {
	return V2GResponse{
		CalculationID: r.CalculationID,
		Week:          fromModelWeek(r.Week),
		SuggestedPiles: PileCounts{
			Fast:      r.SuggestedPiles.Fast,
			Slow:      r.SuggestedPiles.Slow,
			UltraFast: r.SuggestedPiles.UltraFast,
		},
		Steps:    r.Steps,
		Warnings: r.Warnings,
	}
}

// V2GCompareResult is one variation's result within a V2GCompareResponse.
type V2GCompareResult struct {
	Label  string     `json:"label"`
	Result V2GResponse `json:"result"`
}

// V2GCompareResponse is the response body for POST /api/v1/v2g/compare.
type V2GCompareResponse struct {
	Results []V2GCompareResult `json:"results"`
}

// LoadCurveResponse is the response body for POST /api/v1/load-curve.
type LoadCurveResponse struct {
	CalculationID string     `json:"calculation_id"`
	Week          WeekCurves `json:"week"`
	Steps         []string   `json:"steps,omitempty"`
	Warnings      []string   `json:"warnings,omitempty"`
}

// FromModelLoadCurveResult converts a model.LoadCurveResult into its wire
// shape.
func FromModelLoadCurveResult(r model.LoadCurveResult) LoadCurveResponse {
	return LoadCurveResponse{
		CalculationID: r.CalculationID,
		Week:          fromModelWeek(r.Week),
		Steps:         r.Steps,
		Warnings:      r.Warnings,
	}
}

// CountryInfo describes one supported country's standard module tables.
type CountryInfo struct {
	Code               string `json:"code"`
	TransformerOptions int    `json:"transformer_options"`
	EssModelOptions    int    `json:"ess_model_options"`
}

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// Ranking is one entry of a project cumulative-profit ranking.
type Ranking struct {
	Rank             int             `json:"rank"`
	ProjectID        string          `json:"project_id"`
	CumulativeProfit decimal.Decimal `json:"cumulative_profit"`
}

// RankResponse is the response body for GET /api/v1/rank.
type RankResponse struct {
	Rankings []Ranking `json:"rankings"`
}
