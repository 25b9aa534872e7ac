package models

import (
	"station-sizing/internal/config"
	"station-sizing/internal/model"
)

var weekdayOrder = []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

func (r TimeRange) toModel() model.TimeRange {
	return model.TimeRange{Start: r.Start, End: r.End, MinSoc: r.MinSoc}
}

func (p PileCounts) toModel() model.PileCounts {
	return model.PileCounts{Fast: p.Fast, Slow: p.Slow, UltraFast: p.UltraFast}
}

func (s StationConfig) toModel() model.StationConfig {
	return model.StationConfig{
		PvPeakPowerKw:  s.PvPeakPowerKw,
		TransformerKva: s.TransformerKva,
		TransformerSet: !s.TransformerKva.IsZero(),
		Country:        s.Country,
	}
}

func (f FleetConfig) toModel() model.FleetConfig {
	return model.FleetConfig{
		VehicleCount:      f.VehicleCount,
		BatteryKwh:        f.BatteryKwh,
		EnableTimeControl: f.EnableTimeControl,
		Piles:             f.Piles.toModel(),
		V2GPiles:          f.V2GPiles.toModel(),
	}
}

func toModelTous(tous []TouPeriod) []model.TouPeriod {
	out := make([]model.TouPeriod, len(tous))
	for i, t := range tous {
		ranges := make([]model.TimeRange, len(t.TimeRanges))
		for j, r := range t.TimeRanges {
			ranges[j] = r.toModel()
		}
		out[i] = model.TouPeriod{
			PeriodType: model.TouPeriodType(t.PeriodType),
			Price:      t.Price,
			TimeRanges: ranges,
		}
	}
	return out
}

func toModelSchedule(days []DaySchedule) model.WeeklySchedule {
	var week model.WeeklySchedule
	index := make(map[string]int, len(weekdayOrder))
	for i, name := range weekdayOrder {
		index[name] = i
	}
	for _, d := range days {
		idx, ok := index[d.Day]
		if !ok {
			continue
		}
		ranges := make([]model.TimeRange, len(d.ChargeableRanges))
		for i, r := range d.ChargeableRanges {
			ranges[i] = r.toModel()
		}
		week.Days[idx] = model.DaySchedule{Operating: d.Operating, ChargeableRanges: ranges}
	}
	return week
}

// ToProject converts a SizingRequest's wire types into a model.Project.
func (r SizingRequest) ToProject() model.Project {
	chargeMode := model.ChargeMode(r.Options.ChargeMode)
	if chargeMode == "" {
		chargeMode = model.ChargeModeOne
	}
	years := r.Options.ProjectionYears
	if years == 0 {
		years = 20
	}
	return model.Project{
		Station:  r.Station.toModel(),
		Fleet:    r.Fleet.toModel(),
		Schedule: toModelSchedule(r.Days),
		Tous:     toModelTous(r.Tous),
		Request: model.Request{
			ChargeMode:        chargeMode,
			EnablePeakShaving: r.Options.EnablePeakShaving,
			SubsidyPerKwh:     r.Options.SubsidyPerKwh,
			ProjectionYears:   years,
		},
	}
}

// ToProject converts a V2GRequest's wire types into a model.Project.
func (r V2GRequest) ToProject() model.Project {
	return model.Project{
		Station:  r.Station.toModel(),
		Fleet:    r.Fleet.toModel(),
		Schedule: toModelSchedule(r.Days),
		Tous:     toModelTous(r.Tous),
	}
}

// baseProject converts a V2GCompareRequest's shared station/fleet/tariff
// into a model.Project, ignoring Variations.
func (r V2GCompareRequest) baseProject() model.Project {
	return model.Project{
		Station:  r.Station.toModel(),
		Fleet:    r.Fleet.toModel(),
		Schedule: toModelSchedule(r.Days),
		Tous:     toModelTous(r.Tous),
	}
}

// VariantProject overlays one V2GVariation's non-zero station/fleet fields
// onto the compare request's shared base, using the same merge semantics as
// a layered project file.
func (r V2GCompareRequest) VariantProject(v V2GVariation) model.Project {
	project := r.baseProject()
	project.Station = config.MergeStation(project.Station, v.Station.toModel())
	project.Fleet = config.MergeFleet(project.Fleet, v.Fleet.toModel())
	return project
}
