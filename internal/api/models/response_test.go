package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"station-sizing/internal/model"
)

func TestFromModelWeekCurvesCarriesLabelsAndAggregates(t *testing.T) {
	var week model.WeekCurves
	week.Days[model.Monday] = model.DayCurve{
		Label:          "Mon",
		DailyArbitrage: decimal.NewFromFloat(12.5),
	}
	week.Days[model.Monday].Slots[0] = model.SlotPoint{
		TimeSlot:      "00:00",
		ChargePowerKw: decimal.NewFromInt(10),
	}
	week.PeakPowerKw = decimal.NewFromInt(10)
	week.WeeklyArbitrageSum = decimal.NewFromFloat(12.5)

	wire := FromModelWeekCurves(week)
	require.Len(t, wire.Days, 7)
	assert.Equal(t, "Mon", wire.Days[model.Monday].Weekday)
	assert.True(t, wire.Days[model.Monday].DailyArbitrage.Equal(decimal.NewFromFloat(12.5)))
	assert.Equal(t, "CHARGING", wire.Days[model.Monday].Slots[0].Action)
	assert.True(t, wire.PeakPowerKw.Equal(decimal.NewFromInt(10)))
}

func TestFromModelSizingResultCarriesCalculationIDAndWarnings(t *testing.T) {
	result := model.SizingResult{
		CalculationID: "calc-123",
		Warnings:      []string{"something to note"},
		Years: []model.YearlyEconomic{
			{Year: 1, ArbitrageRevenue: decimal.NewFromFloat(100)},
		},
	}

	wire := FromModelSizingResult(result)
	assert.Equal(t, "calc-123", wire.CalculationID)
	assert.Equal(t, []string{"something to note"}, wire.Warnings)
	require.Len(t, wire.Years, 1)
	assert.True(t, wire.Years[0].ArbitrageRevenue.Equal(decimal.NewFromFloat(100)))
}

func TestFromModelV2GResultCarriesSuggestedPiles(t *testing.T) {
	result := model.V2GResult{
		CalculationID:  "calc-456",
		SuggestedPiles: model.PileCounts{Fast: 3, Slow: 1},
	}
	wire := FromModelV2GResult(result)
	assert.Equal(t, 3, wire.SuggestedPiles.Fast)
	assert.Equal(t, 1, wire.SuggestedPiles.Slow)
}
