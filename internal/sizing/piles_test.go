package sizing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"station-sizing/internal/config"
	"station-sizing/internal/model"
)

func TestTotalChargingPowerKwPicksHighestPowerFirst(t *testing.T) {
	consts := config.DefaultConstants()
	piles := model.PileCounts{Fast: 2, Slow: 2, UltraFast: 1}

	// 5 piles total, only 3 vehicles: should pick ultra(350) + fast(120) + fast(120) = 590.
	total := TotalChargingPowerKw(piles, 3, consts)
	assert.True(t, total.Equal(decimal.NewFromInt(590)))
}

func TestTotalChargingPowerKwCapsAtPileCount(t *testing.T) {
	consts := config.DefaultConstants()
	piles := model.PileCounts{Fast: 1}

	total := TotalChargingPowerKw(piles, 5, consts)
	assert.True(t, total.Equal(consts.FastPileKw))
}

func TestTotalChargingPowerKwFallsBackWhenNoPiles(t *testing.T) {
	consts := config.DefaultConstants()
	total := TotalChargingPowerKw(model.PileCounts{}, 10, consts)
	assert.True(t, total.Equal(consts.FallbackPileKw))
}

func TestTotalChargingPowerKwZeroVehicles(t *testing.T) {
	consts := config.DefaultConstants()
	piles := model.PileCounts{Fast: 2}
	total := TotalChargingPowerKw(piles, 0, consts)
	assert.True(t, total.IsZero())
}
