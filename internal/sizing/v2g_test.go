package sizing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"station-sizing/internal/model"
)

// TestDispatchV2GDayArbitrageScenario exercises one V2G vehicle with a
// 100kWh battery, a morning discharge range (08:00-10:00, target 50%) and
// an evening charge range (18:00-20:00, target 90%), on a two-tier
// tariff of 0.3 off-peak / 1.2 peak, with a 120kW pile at 0.85 derate.
func TestDispatchV2GDayArbitrageScenario(t *testing.T) {
	var prices [model.SlotsPerDay]decimal.Decimal
	for i := range prices {
		prices[i] = decimal.NewFromFloat(0.3)
	}
	peakStart, err := TimeToSlot("08:00")
	require.NoError(t, err)
	peakEnd, err := TimeToSlot("10:00")
	require.NoError(t, err)
	for i := peakStart; i < peakEnd; i++ {
		prices[i] = decimal.NewFromFloat(1.2)
	}

	ranges := []model.TimeRange{
		{Start: "08:00", End: "10:00", MinSoc: decimal.NewFromInt(50)},
		{Start: "18:00", End: "20:00", MinSoc: decimal.NewFromInt(90)},
	}

	var base model.SlotCurve
	for i := range base {
		base[i].TimeSlot = SlotToTime(i)
	}

	curve, arbitrage, err := DispatchV2GDay(
		ranges, prices,
		decimal.NewFromInt(100), 1,
		decimal.NewFromInt(120), decimal.NewFromFloat(0.85),
		base,
	)
	require.NoError(t, err)

	// socInit seeds from the last range's target (90%); the first range
	// (target 50%) discharges the 40-point headroom at its priciest
	// slots: 40kWh at 1.2/kWh = 48.00 revenue.
	// The second range (from 50% to 90%) charges the 40-point deficit at
	// its cheapest (only) slots: 40kWh at 0.3/kWh = 12.00 cost.
	assert.True(t, arbitrage.Equal(decimal.NewFromFloat(36.00)), "got %s", arbitrage.String())

	dischargeTotal := decimal.Zero
	chargeTotal := decimal.Zero
	for _, p := range curve {
		dischargeTotal = dischargeTotal.Add(p.DischargeEnergyKwh)
		chargeTotal = chargeTotal.Add(p.ChargeEnergyKwh)
	}
	assert.True(t, dischargeTotal.Equal(decimal.NewFromInt(-40)), "got %s", dischargeTotal.String())
	assert.True(t, chargeTotal.Equal(decimal.NewFromInt(40)), "got %s", chargeTotal.String())
}

func TestDispatchV2GDayNoVehiclesIsNoop(t *testing.T) {
	var prices [model.SlotsPerDay]decimal.Decimal
	var base model.SlotCurve
	ranges := []model.TimeRange{{Start: "08:00", End: "10:00", MinSoc: decimal.NewFromInt(50)}}

	curve, arbitrage, err := DispatchV2GDay(ranges, prices, decimal.NewFromInt(100), 0, decimal.NewFromInt(120), decimal.NewFromFloat(0.85), base)
	require.NoError(t, err)
	assert.True(t, arbitrage.IsZero())
	assert.Equal(t, base, curve)
}
