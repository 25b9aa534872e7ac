package sizing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"station-sizing/internal/config"
	"station-sizing/internal/model"
	"station-sizing/internal/sizingerr"
)

func buildTestProject() model.Project {
	schedule := model.WeeklySchedule{}
	ranges := []model.TimeRange{{Start: "22:00", End: "06:00", MinSoc: decimal.NewFromInt(80)}}
	for d := model.Monday; d <= model.Sunday; d++ {
		schedule.Days[d] = model.DaySchedule{Operating: true, ChargeableRanges: ranges}
	}

	return model.Project{
		Station: model.StationConfig{Country: model.CountryCN, PvPeakPowerKw: decimal.NewFromInt(10)},
		Fleet: model.FleetConfig{
			VehicleCount:      20,
			BatteryKwh:        decimal.NewFromInt(100),
			EnableTimeControl: true,
			Piles:             model.PileCounts{Fast: 15, Slow: 3, UltraFast: 2},
		},
		Schedule: schedule,
		Tous: []model.TouPeriod{
			{PeriodType: model.TouValley, TimeRanges: []model.TimeRange{{Start: "22:00", End: "06:00"}}, Price: decimal.NewFromFloat(0.3)},
			{PeriodType: model.TouPeak, TimeRanges: []model.TimeRange{{Start: "06:00", End: "22:00"}}, Price: decimal.NewFromFloat(1.2)},
		},
		Request: model.Request{ChargeMode: model.ChargeModeOne, ProjectionYears: 5},
	}
}

func TestComputeSizingEndToEnd(t *testing.T) {
	tables := config.DefaultTables()
	consts := config.DefaultConstants()

	result, err := ComputeSizing(buildTestProject(), tables, consts)
	require.NoError(t, err)
	assert.NotEmpty(t, result.CalculationID)
	require.Len(t, result.Years, 5)
	assert.NotEmpty(t, result.Steps)
	assert.True(t, result.Ess.Units >= 1)
}

func TestComputeSizingRejectsMissingCountry(t *testing.T) {
	tables := config.DefaultTables()
	consts := config.DefaultConstants()

	project := buildTestProject()
	project.Station.Country = ""
	_, err := ComputeSizing(project, tables, consts)
	require.Error(t, err)
	se, ok := sizingerr.As(err)
	require.True(t, ok)
	assert.Equal(t, sizingerr.MissingInput, se.Kind)
}

func TestComputeSizingRejectsNegativePvPeakPower(t *testing.T) {
	tables := config.DefaultTables()
	consts := config.DefaultConstants()

	project := buildTestProject()
	project.Station.PvPeakPowerKw = decimal.NewFromInt(-1)
	_, err := ComputeSizing(project, tables, consts)
	require.Error(t, err)
}

func TestComputeV2GSuggestsPilesFromVehicleCount(t *testing.T) {
	consts := config.DefaultConstants()
	project := buildTestProject()

	result, err := ComputeV2G(project, consts)
	require.NoError(t, err)
	assert.NotEmpty(t, result.CalculationID)
	// 20 vehicles * 0.1 fast ratio = 2 exactly.
	assert.Equal(t, 2, result.SuggestedPiles.Fast)
}

func TestComputeV2GForProjectMatchesComputeV2G(t *testing.T) {
	consts := config.DefaultConstants()
	project := buildTestProject()

	direct, err := ComputeV2G(project, consts)
	require.NoError(t, err)

	viaProject, err := ComputeV2GForProject(project, consts)
	require.NoError(t, err)

	assert.Equal(t, direct.SuggestedPiles, viaProject.SuggestedPiles)
	assert.True(t, direct.Week.WeeklyArbitrageSum.Equal(viaProject.Week.WeeklyArbitrageSum))
}

func TestComputeLoadCurveRequiresTous(t *testing.T) {
	consts := config.DefaultConstants()
	tables := config.DefaultTables()

	project := buildTestProject()
	project.Tous = nil
	_, err := ComputeLoadCurve(project, tables, consts)
	require.Error(t, err)
}

func TestComputeLoadCurveReturnsWeekWithoutSizing(t *testing.T) {
	consts := config.DefaultConstants()
	tables := config.DefaultTables()

	result, err := ComputeLoadCurve(buildTestProject(), tables, consts)
	require.NoError(t, err)
	assert.NotEmpty(t, result.CalculationID)
	assert.NotEmpty(t, result.Steps)
}
