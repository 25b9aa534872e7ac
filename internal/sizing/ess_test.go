package sizing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"station-sizing/internal/config"
	"station-sizing/internal/model"
)

func TestSelectTransformerKvaPicksSmallestAtOrAbove(t *testing.T) {
	sizes := config.DefaultTables().Transformers[model.CountryCN]
	selected, exact := SelectTransformerKva(decimal.NewFromInt(90), sizes)
	assert.True(t, exact)
	assert.True(t, selected.Equal(decimal.NewFromInt(100)))
}

func TestSelectTransformerKvaOverflowsToLargest(t *testing.T) {
	sizes := config.DefaultTables().Transformers[model.CountryCN]
	selected, exact := SelectTransformerKva(decimal.NewFromInt(99999), sizes)
	assert.False(t, exact)
	assert.True(t, selected.Equal(decimal.NewFromInt(3150)))
}

func TestSelectTransformerKvaEmptyTable(t *testing.T) {
	_, exact := SelectTransformerKva(decimal.NewFromInt(100), nil)
	assert.False(t, exact)
}

func TestSelectEssModelPicksFewestUnits(t *testing.T) {
	models := config.DefaultTables().EssModels[model.CountryCN]
	// 100kW / 215kWh model needs ceil(220/100)=3 (by power) vs ceil(430/215)=2
	// (by capacity) -> 3 units. 125kW / 261kWh needs ceil(220/125)=2 vs
	// ceil(430/261)=2 -> 2 units, which wins.
	chosen, units, found := SelectEssModel(decimal.NewFromInt(220), decimal.NewFromInt(430), models)
	require.True(t, found)
	assert.Equal(t, 2, units)
	assert.True(t, chosen.PowerKw.Equal(decimal.NewFromInt(125)))
}

func TestSelectEssModelMinimumOneUnit(t *testing.T) {
	models := []model.EssModel{{PowerKw: decimal.NewFromInt(100), CapacityKwh: decimal.NewFromInt(215)}}
	_, units, found := SelectEssModel(decimal.NewFromInt(1), decimal.NewFromInt(1), models)
	require.True(t, found)
	assert.Equal(t, 1, units)
}

func TestSelectEssModelSkipsZeroCapacityEntries(t *testing.T) {
	models := []model.EssModel{
		{PowerKw: decimal.Zero, CapacityKwh: decimal.Zero},
		{PowerKw: decimal.NewFromInt(100), CapacityKwh: decimal.NewFromInt(215)},
	}
	chosen, _, found := SelectEssModel(decimal.NewFromInt(50), decimal.NewFromInt(50), models)
	require.True(t, found)
	assert.True(t, chosen.PowerKw.Equal(decimal.NewFromInt(100)))
}

func TestComputeEssSizingAutoSelectsTransformerAndModel(t *testing.T) {
	tables := config.DefaultTables()
	consts := config.DefaultConstants()

	station := model.StationConfig{
		Country:        model.CountryCN,
		PvPeakPowerKw:  decimal.NewFromInt(10),
		TransformerSet: false,
	}

	result, warnings, err := ComputeEssSizing(station, decimal.NewFromInt(200), model.ChargeModeOne, tables, consts)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	// essMaxPowerKw = 200 * 0.8 = 160; essRatedPowerKw = 160 - 10 = 150.
	assert.True(t, result.CalculatedPowerKw.Equal(decimal.NewFromInt(150)))
	// ChargeModeOne duration is 2h -> capacity = 300kWh.
	assert.True(t, result.CalculatedCapacityKwh.Equal(decimal.NewFromInt(300)))
	assert.True(t, result.TransformerKva.GreaterThanOrEqual(decimal.NewFromInt(160)))
}

func TestComputeEssSizingClampsNegativeRatedPower(t *testing.T) {
	tables := config.DefaultTables()
	consts := config.DefaultConstants()

	station := model.StationConfig{
		Country:       model.CountryCN,
		PvPeakPowerKw: decimal.NewFromInt(500),
	}

	result, _, err := ComputeEssSizing(station, decimal.NewFromInt(10), model.ChargeModeOne, tables, consts)
	require.NoError(t, err)
	assert.True(t, result.CalculatedPowerKw.IsZero())
	assert.True(t, result.CalculatedCapacityKwh.IsZero())
}

func TestComputeEssSizingWarnsWhenEssExceedsTransformer(t *testing.T) {
	tables := config.DefaultTables()
	consts := config.DefaultConstants()

	station := model.StationConfig{
		Country:        model.CountryCN,
		TransformerSet: true,
		TransformerKva: decimal.NewFromInt(30),
	}

	_, warnings, err := ComputeEssSizing(station, decimal.NewFromInt(500), model.ChargeModeTwo, tables, consts)
	require.NoError(t, err)
	require.NotEmpty(t, warnings)
}

func TestComputeEssSizingUnknownCountryFails(t *testing.T) {
	tables := config.DefaultTables()
	consts := config.DefaultConstants()

	station := model.StationConfig{Country: "ZZ"}
	_, _, err := ComputeEssSizing(station, decimal.NewFromInt(100), model.ChargeModeOne, tables, consts)
	require.Error(t, err)
}
