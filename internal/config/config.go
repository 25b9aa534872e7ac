package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"station-sizing/internal/model"
)

// ProjectFile is the on-disk configuration shape (YAML). It mirrors
// model.Project field-for-field but keeps its own yaml tags and optional
// fields separate from the core value objects.
type ProjectFile struct {
	Station  StationConfig  `yaml:"station"`
	Fleet    FleetConfig    `yaml:"fleet"`
	Schedule ScheduleConfig `yaml:"schedule"`
	Tous     []TouConfig    `yaml:"tous"`
	Request  RequestConfig  `yaml:"request"`
}

type StationConfig struct {
	PvPeakPowerKw  decimal.Decimal `yaml:"pv_peak_power_kw"`
	TransformerKva decimal.Decimal `yaml:"transformer_kva"`
	Country        string          `yaml:"country"`
}

type PileCountsConfig struct {
	Fast      int `yaml:"fast"`
	Slow      int `yaml:"slow"`
	UltraFast int `yaml:"ultra_fast"`
}

type FleetConfig struct {
	VehicleCount      int              `yaml:"vehicle_count"`
	BatteryKwh        decimal.Decimal  `yaml:"battery_kwh"`
	EnableTimeControl bool             `yaml:"enable_time_control"`
	Piles             PileCountsConfig `yaml:"piles"`
	V2GPiles          PileCountsConfig `yaml:"v2g_piles"`
}

type TimeRangeConfig struct {
	Start  string          `yaml:"start"`
	End    string          `yaml:"end"`
	MinSoc decimal.Decimal `yaml:"min_soc"`
}

type DayScheduleConfig struct {
	Operating        bool              `yaml:"operating"`
	ChargeableRanges []TimeRangeConfig `yaml:"chargeable_ranges"`
}

// ScheduleConfig keys a day by its three-letter name ("mon".."sun") rather
// than by index, so project YAML reads naturally; toModel resolves each
// key against the lower-cased model.WeekdayNames.
type ScheduleConfig struct {
	Days map[string]DayScheduleConfig `yaml:"days"`
}

type TouConfig struct {
	PeriodType string            `yaml:"period_type"`
	Price      decimal.Decimal   `yaml:"price"`
	TimeRanges []TimeRangeConfig `yaml:"time_ranges"`
}

type RequestConfig struct {
	ChargeMode        string          `yaml:"charge_mode"`
	EnablePeakShaving bool            `yaml:"enable_peak_shaving"`
	SubsidyPerKwh     decimal.Decimal `yaml:"subsidy_per_kwh"`
	ProjectionYears   int             `yaml:"projection_years"`
}

// Load reads, defaults, and validates a project file.
func Load(path string) (*model.Project, error) {
	pf, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	project := pf.ToProject()
	// If projection_years is not provided, default it to the full 20-year
	// horizon.
	if project.Request.ProjectionYears == 0 {
		project.Request.ProjectionYears = 20
	}
	if err := Validate(project); err != nil {
		return nil, err
	}
	return &project, nil
}

// LoadUnchecked reads and parses a project file without validating it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*ProjectFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var pf ProjectFile
	if err := yaml.Unmarshal(raw, &pf); err != nil {
		return nil, err
	}
	return &pf, nil
}

// Validate checks the subset of invariants that are config-shape problems
// rather than computation-time errors (those are reported by the
// sizingerr taxonomy at call time).
func Validate(p model.Project) error {
	if p.Station.Country == "" {
		return errors.New("station.country is required")
	}
	if p.Fleet.VehicleCount < 0 {
		return errors.New("fleet.vehicle_count must not be negative")
	}
	if len(p.Tous) == 0 {
		return errors.New("tous: at least one TOU period is required")
	}
	switch p.Request.ChargeMode {
	case model.ChargeModeOne, model.ChargeModeTwo, "":
	default:
		return fmt.Errorf("request.charge_mode: unknown value %q", p.Request.ChargeMode)
	}
	return nil
}

// ToProject converts the on-disk YAML shape into the core value objects.
func (pf ProjectFile) ToProject() model.Project {
	chargeMode := model.ChargeMode(pf.Request.ChargeMode)
	if chargeMode == "" {
		chargeMode = model.ChargeModeOne
	}

	return model.Project{
		Station: model.StationConfig{
			PvPeakPowerKw:  pf.Station.PvPeakPowerKw,
			TransformerKva: pf.Station.TransformerKva,
			TransformerSet: !pf.Station.TransformerKva.IsZero(),
			Country:        pf.Station.Country,
		},
		Fleet: model.FleetConfig{
			VehicleCount:      pf.Fleet.VehicleCount,
			BatteryKwh:        pf.Fleet.BatteryKwh,
			EnableTimeControl: pf.Fleet.EnableTimeControl,
			Piles:             pf.Fleet.Piles.toModel(),
			V2GPiles:          pf.Fleet.V2GPiles.toModel(),
		},
		Schedule: pf.Schedule.toModel(),
		Tous:     toModelTous(pf.Tous),
		Request: model.Request{
			ChargeMode:        chargeMode,
			EnablePeakShaving: pf.Request.EnablePeakShaving,
			SubsidyPerKwh:     pf.Request.SubsidyPerKwh,
			ProjectionYears:   pf.Request.ProjectionYears,
		},
	}
}

func (c PileCountsConfig) toModel() model.PileCounts {
	return model.PileCounts{Fast: c.Fast, Slow: c.Slow, UltraFast: c.UltraFast}
}

func (c TimeRangeConfig) toModel() model.TimeRange {
	return model.TimeRange{Start: c.Start, End: c.End, MinSoc: c.MinSoc}
}

var weekdayByName = func() map[string]model.Weekday {
	m := make(map[string]model.Weekday, len(model.WeekdayNames))
	for i, name := range model.WeekdayNames {
		m[strings.ToLower(name)] = model.Weekday(i)
	}
	return m
}()

func (s ScheduleConfig) toModel() model.WeeklySchedule {
	var week model.WeeklySchedule
	for name, day := range s.Days {
		idx, ok := weekdayByName[name]
		if !ok {
			continue
		}
		ranges := make([]model.TimeRange, len(day.ChargeableRanges))
		for i, r := range day.ChargeableRanges {
			ranges[i] = r.toModel()
		}
		week.Days[idx] = model.DaySchedule{
			Operating:        day.Operating,
			ChargeableRanges: ranges,
		}
	}
	return week
}

func toModelTous(cfgs []TouConfig) []model.TouPeriod {
	out := make([]model.TouPeriod, len(cfgs))
	for i, c := range cfgs {
		ranges := make([]model.TimeRange, len(c.TimeRanges))
		for j, r := range c.TimeRanges {
			ranges[j] = r.toModel()
		}
		out[i] = model.TouPeriod{
			PeriodType: model.TouPeriodType(c.PeriodType),
			Price:      c.Price,
			TimeRanges: ranges,
		}
	}
	return out
}

// MergeStation overlays non-zero fields from override onto base, for
// layered project files (a shared base station plus a per-scenario
// override).
func MergeStation(base, override model.StationConfig) model.StationConfig {
	out := base
	if !override.PvPeakPowerKw.IsZero() {
		out.PvPeakPowerKw = override.PvPeakPowerKw
	}
	if override.TransformerSet {
		out.TransformerKva = override.TransformerKva
		out.TransformerSet = true
	}
	if override.Country != "" {
		out.Country = override.Country
	}
	return out
}

// MergeFleet overlays non-zero fields from override onto base.
func MergeFleet(base, override model.FleetConfig) model.FleetConfig {
	out := base
	if override.VehicleCount != 0 {
		out.VehicleCount = override.VehicleCount
	}
	if !override.BatteryKwh.IsZero() {
		out.BatteryKwh = override.BatteryKwh
	}
	if override.EnableTimeControl {
		out.EnableTimeControl = override.EnableTimeControl
	}
	if override.Piles.Total() != 0 {
		out.Piles = override.Piles
	}
	if override.V2GPiles.Total() != 0 {
		out.V2GPiles = override.V2GPiles
	}
	return out
}
