package sizing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"station-sizing/internal/config"
	"station-sizing/internal/model"
)

func TestProjectEconomicsYearOneMatchesReferenceScenario(t *testing.T) {
	consts := config.DefaultConstants()
	tariff := model.TariffStats{Spread: decimal.NewFromFloat(0.9)}
	request := model.Request{
		ChargeMode:      model.ChargeModeOne,
		ProjectionYears: 20,
	}

	years := ProjectEconomics(decimal.NewFromInt(430), tariff, request, consts)
	require.Len(t, years, 20)

	year1 := years[0]
	assert.True(t, year1.ArbitrageRevenue.Equal(decimal.NewFromFloat(141255.00)), "got %s", year1.ArbitrageRevenue.String())
	assert.True(t, year1.OperatingCost.Equal(decimal.NewFromFloat(12900.00)), "got %s", year1.OperatingCost.String())
	assert.True(t, year1.NetProfit.Equal(decimal.NewFromFloat(128355.00)), "got %s", year1.NetProfit.String())
	assert.True(t, year1.CumulativeProfit.Equal(year1.NetProfit))
	assert.True(t, year1.PeakShavingRevenue.IsZero())
}

func TestProjectEconomicsDecaysCapacityYearOverYear(t *testing.T) {
	consts := config.DefaultConstants()
	tariff := model.TariffStats{Spread: decimal.NewFromFloat(0.9)}
	request := model.Request{ChargeMode: model.ChargeModeOne, ProjectionYears: 3}

	years := ProjectEconomics(decimal.NewFromInt(430), tariff, request, consts)
	require.Len(t, years, 3)
	assert.True(t, years[1].ArbitrageRevenue.LessThan(years[0].ArbitrageRevenue))
	assert.True(t, years[2].ArbitrageRevenue.LessThan(years[1].ArbitrageRevenue))
}

func TestProjectEconomicsCumulativeProfitAccumulates(t *testing.T) {
	consts := config.DefaultConstants()
	tariff := model.TariffStats{Spread: decimal.NewFromFloat(0.9)}
	request := model.Request{ChargeMode: model.ChargeModeOne, ProjectionYears: 3}

	years := ProjectEconomics(decimal.NewFromInt(430), tariff, request, consts)
	expected := years[0].NetProfit.Add(years[1].NetProfit).Add(years[2].NetProfit)
	assert.True(t, years[2].CumulativeProfit.Equal(expected), "got %s want %s", years[2].CumulativeProfit.String(), expected.String())
}

func TestProjectEconomicsPeakShavingAddsRevenue(t *testing.T) {
	consts := config.DefaultConstants()
	tariff := model.TariffStats{Spread: decimal.NewFromFloat(0.9)}
	request := model.Request{
		ChargeMode:        model.ChargeModeOne,
		ProjectionYears:   1,
		EnablePeakShaving: true,
		SubsidyPerKwh:     decimal.NewFromFloat(0.1),
	}

	years := ProjectEconomics(decimal.NewFromInt(430), tariff, request, consts)
	require.Len(t, years, 1)
	assert.False(t, years[0].PeakShavingRevenue.IsZero())
}

func TestProjectEconomicsDefaultsToTwentyYears(t *testing.T) {
	consts := config.DefaultConstants()
	tariff := model.TariffStats{Spread: decimal.NewFromFloat(0.9)}
	request := model.Request{ChargeMode: model.ChargeModeOne, ProjectionYears: 0}

	years := ProjectEconomics(decimal.NewFromInt(430), tariff, request, consts)
	assert.Len(t, years, 20)
}
