package sizing

import (
	"sort"

	"github.com/shopspring/decimal"

	"station-sizing/internal/config"
	"station-sizing/internal/model"
)

// TotalChargingPowerKw picks the highest-power piles up to the vehicle
// cap and returns their summed rated power. A station with more
// piles than vehicles can only energize vehicleCount piles at once;
// picking the highest-power ones maximizes the instantaneous peak the
// transformer must serve.
func TotalChargingPowerKw(piles model.PileCounts, vehicleCount int, consts config.Constants) decimal.Decimal {
	if piles.Total() == 0 {
		return consts.FallbackPileKw
	}

	powers := make([]decimal.Decimal, 0, piles.Total())
	appendN := func(power decimal.Decimal, n int) {
		for i := 0; i < n; i++ {
			powers = append(powers, power)
		}
	}
	appendN(consts.UltraFastPileKw, piles.UltraFast)
	appendN(consts.FastPileKw, piles.Fast)
	appendN(consts.SlowPileKw, piles.Slow)

	sort.Slice(powers, func(i, j int) bool { return powers[i].GreaterThan(powers[j]) })

	take := vehicleCount
	if take > len(powers) {
		take = len(powers)
	}
	if take < 0 {
		take = 0
	}

	total := decimal.Zero
	for _, p := range powers[:take] {
		total = total.Add(p)
	}
	return total
}
