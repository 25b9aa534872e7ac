// Package sizing is the core computation pipeline: pure, deterministic,
// single-threaded functions over the value objects in internal/model. It
// performs no I/O and holds no state across calls.
package sizing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"station-sizing/internal/model"
	"station-sizing/internal/sizingerr"
)

const slotMinutes = model.SlotIntervalMinutes

// TimeToSlot converts a "HH:MM" wall-clock string to its slot index in the
// 96-slot day grid.
func TimeToSlot(hhmm string) (int, error) {
	mins, err := minutesOf(hhmm)
	if err != nil {
		return 0, err
	}
	return mins / slotMinutes, nil
}

// SlotToTime renders slot index i as a zero-padded "HH:MM" string.
func SlotToTime(i int) string {
	mins := i * slotMinutes
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}

// minutesOf parses "HH:MM" into minutes-since-midnight.
func minutesOf(s string) (int, error) {
	trimmed := strings.TrimSpace(s)
	parts := strings.Split(trimmed, ":")
	if len(parts) != 2 {
		return 0, sizingerr.Newf(sizingerr.MalformedTimeString, "", "invalid time %q, expected HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, sizingerr.Newf(sizingerr.MalformedTimeString, "", "invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, sizingerr.Newf(sizingerr.MalformedTimeString, "", "invalid minute in %q", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, sizingerr.Newf(sizingerr.MalformedTimeString, "", "invalid time %q", s)
	}
	return h*60 + m, nil
}

// ExpandRange converts a TimeRange into the set of slot indices it covers,
// inclusive of both endpoints. A wrapping range (start > end) covers
// startSlot..95 and 0..endSlot.
func ExpandRange(r model.TimeRange) ([]int, error) {
	startSlot, err := TimeToSlot(r.Start)
	if err != nil {
		return nil, err
	}
	endSlot, err := TimeToSlot(r.End)
	if err != nil {
		return nil, err
	}
	if startSlot <= endSlot {
		slots := make([]int, 0, endSlot-startSlot+1)
		for i := startSlot; i <= endSlot; i++ {
			slots = append(slots, i)
		}
		return slots, nil
	}
	slots := make([]int, 0, model.SlotsPerDay-startSlot+endSlot+1)
	for i := startSlot; i < model.SlotsPerDay; i++ {
		slots = append(slots, i)
	}
	for i := 0; i <= endSlot; i++ {
		slots = append(slots, i)
	}
	return slots, nil
}

// inWindow reports whether tMins falls in [start, end) on a 24h clock,
// handling a wrapping window (start > end) as crossing midnight.
func inWindow(tMins, start, end int) bool {
	if start == end {
		return false
	}
	if start < end {
		return tMins >= start && tMins < end
	}
	return tMins >= start || tMins < end
}

// PriceForSlot resolves the TOU price in effect at time hhmm. It scans
// tous in order and returns the first period with a matching range. If no
// period matches and tous is non-empty, it returns the arithmetic mean of
// all period prices along with ok=false so the caller can attach a
// warning rather than silently extending fallback coverage. If tous is
// empty, it returns the 0.5 sentinel.
func PriceForSlot(hhmm string, tous []model.TouPeriod) (price decimal.Decimal, matched bool, err error) {
	mins, err := minutesOf(hhmm)
	if err != nil {
		return decimal.Zero, false, err
	}
	for _, tou := range tous {
		for _, r := range tou.TimeRanges {
			startMins, err := minutesOf(r.Start)
			if err != nil {
				return decimal.Zero, false, err
			}
			endMins, err := minutesOf(r.End)
			if err != nil {
				return decimal.Zero, false, err
			}
			if inWindow(mins, startMins, endMins) {
				return tou.Price, true, nil
			}
		}
	}
	if len(tous) == 0 {
		return decimal.NewFromFloat(0.5), false, nil
	}
	sum := decimal.Zero
	for _, tou := range tous {
		sum = sum.Add(tou.Price)
	}
	mean := sum.DivRound(decimal.NewFromInt(int64(len(tous))), 4)
	return mean, false, nil
}

// PriceCurve resolves the TOU price at every slot of a day, returning the
// matched flag per slot so callers can surface an incomplete-tariff
// warning without aborting the computation.
func PriceCurve(tous []model.TouPeriod) (prices [model.SlotsPerDay]decimal.Decimal, anyUnmatched bool, err error) {
	for i := 0; i < model.SlotsPerDay; i++ {
		p, matched, err := PriceForSlot(SlotToTime(i), tous)
		if err != nil {
			return prices, anyUnmatched, err
		}
		prices[i] = p
		if !matched {
			anyUnmatched = true
		}
	}
	return prices, anyUnmatched, nil
}
