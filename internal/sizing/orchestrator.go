package sizing

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"station-sizing/internal/config"
	"station-sizing/internal/model"
	"station-sizing/internal/sizingerr"
)

func newCalculationID() string {
	return uuid.NewString()
}

func validateProject(p model.Project) error {
	if p.Station.Country == "" {
		return sizingerr.Newf(sizingerr.MissingInput, "station.country", "station config is required")
	}
	if len(p.Tous) == 0 {
		return sizingerr.Newf(sizingerr.MissingInput, "tous", "TOU tariff is required")
	}
	return nil
}

// ComputeLoadCurve runs operation 1 of the external interface: the weekly
// dispatch curves, with no sizing or economics attached.
func ComputeLoadCurve(project model.Project, tables config.Tables, consts config.Constants) (model.LoadCurveResult, error) {
	if err := validateProject(project); err != nil {
		return model.LoadCurveResult{}, err
	}

	week, steps, warnings, err := ComputeWeek(project, consts)
	if err != nil {
		return model.LoadCurveResult{}, err
	}

	return model.LoadCurveResult{
		CalculationID: newCalculationID(),
		Week:          week,
		Steps:         steps,
		Warnings:      warnings,
	}, nil
}

// ComputeSizing runs the full sizing pipeline: weekly dispatch, ESS and
// transformer sizing, then the economics projection.
func ComputeSizing(project model.Project, tables config.Tables, consts config.Constants) (model.SizingResult, error) {
	if err := validateProject(project); err != nil {
		return model.SizingResult{}, err
	}
	if project.Station.PvPeakPowerKw.Sign() < 0 {
		return model.SizingResult{}, sizingerr.Newf(sizingerr.MissingInput, "station.pvPeakPowerKw", "PV peak power must be >= 0")
	}

	week, steps, warnings, err := ComputeWeek(project, consts)
	if err != nil {
		return model.SizingResult{}, err
	}

	essSizing, essWarnings, err := ComputeEssSizing(project.Station, week.PeakPowerKw, project.Request.ChargeMode, tables, consts)
	if err != nil {
		return model.SizingResult{}, err
	}
	warnings = append(warnings, essWarnings...)
	steps = append(steps, fmt.Sprintf("sized ESS: %s kW / %s kWh across %d unit(s)",
		essSizing.RatedPowerKw.String(), essSizing.CapacityKwh.String(), essSizing.Units))

	tariff := ComputeTariffStats(project.Tous)
	years := ProjectEconomics(essSizing.CapacityKwh, tariff, project.Request, consts)
	steps = append(steps, fmt.Sprintf("projected %d year(s) of economics", len(years)))

	return model.SizingResult{
		CalculationID: newCalculationID(),
		Week:          week,
		Ess:           essSizing,
		Tariff:        tariff,
		Years:         years,
		Steps:         steps,
		Warnings:      warnings,
	}, nil
}

// ComputeV2G runs the standalone V2G orchestrator: the weekly V1G+V2G
// dispatch, plus a suggested V2G pile configuration sized off the
// fleet's vehicle count and the configured pile-suggestion ratios.
func ComputeV2G(project model.Project, consts config.Constants) (model.V2GResult, error) {
	if err := validateProject(project); err != nil {
		return model.V2GResult{}, err
	}

	week, steps, warnings, err := ComputeWeek(project, consts)
	if err != nil {
		return model.V2GResult{}, err
	}

	suggested := suggestV2GPiles(project.Fleet.VehicleCount, consts)
	steps = append(steps, fmt.Sprintf("suggested V2G piles: fast=%d slow=%d ultra=%d",
		suggested.Fast, suggested.Slow, suggested.UltraFast))

	return model.V2GResult{
		CalculationID:  newCalculationID(),
		Week:           week,
		SuggestedPiles: suggested,
		Steps:          steps,
		Warnings:       warnings,
	}, nil
}

// ComputeV2GForProject runs the identical computation as ComputeV2G, for a
// project resolved from persistence by ID rather than taken from a request
// body: the boundary loads the project file and passes it straight through.
func ComputeV2GForProject(project model.Project, consts config.Constants) (model.V2GResult, error) {
	return ComputeV2G(project, consts)
}

// suggestV2GPiles applies the configured per-class pile-suggestion ratios
// to the fleet's vehicle count, rounding each class up.
func suggestV2GPiles(vehicleCount int, consts config.Constants) model.PileCounts {
	return model.PileCounts{
		Fast:      ceilRatio(vehicleCount, consts.PileSuggestionRatioFast),
		Slow:      ceilRatio(vehicleCount, consts.PileSuggestionRatioSlow),
		UltraFast: ceilRatio(vehicleCount, consts.PileSuggestionRatioUltra),
	}
}

// ceilRatio returns ceil(vehicleCount * ratio) as an int.
func ceilRatio(vehicleCount int, ratio decimal.Decimal) int {
	if vehicleCount <= 0 {
		return 0
	}
	raw := decimal.NewFromInt(int64(vehicleCount)).Mul(ratio)
	whole := raw.Truncate(0)
	if raw.GreaterThan(whole) {
		whole = whole.Add(decimal.NewFromInt(1))
	}
	return int(whole.IntPart())
}
