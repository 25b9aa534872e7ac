// Package boundary converts the JSON blobs persisted alongside a project
// (weekly schedule, TOU time ranges) into the typed value objects the
// internal/sizing core consumes. The core itself never touches JSON; this
// is the one place that does.
package boundary

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"station-sizing/internal/model"
)

// scheduleDayJSON mirrors the persisted schedule shape: one entry per day
// of week, `{day, isOperating, chargeableRanges: [{start,end,minSoc}],
// departureCount}`.
type scheduleDayJSON struct {
	Day              string          `json:"day"`
	IsOperating      bool            `json:"isOperating"`
	ChargeableRanges []timeRangeJSON `json:"chargeableRanges"`
	DepartureCount   int             `json:"departureCount"`
}

type timeRangeJSON struct {
	Start  string          `json:"start"`
	End    string          `json:"end"`
	MinSoc decimal.Decimal `json:"minSoc"`
}

var scheduleDayName = map[string]model.Weekday{
	"mon": model.Monday, "tue": model.Tuesday, "wed": model.Wednesday,
	"thu": model.Thursday, "fri": model.Friday, "sat": model.Saturday, "sun": model.Sunday,
}

// DecodeWeeklySchedule parses a persisted schedule JSON blob. A malformed
// blob degrades to an empty (all non-operating) schedule with a warning,
// per the SerializationFailure error kind — it must not take the request
// down, since schedule persistence races with reads at the boundary.
func DecodeWeeklySchedule(raw []byte) (model.WeeklySchedule, []string) {
	if len(raw) == 0 {
		return model.WeeklySchedule{}, nil
	}

	var days []scheduleDayJSON
	if err := json.Unmarshal(raw, &days); err != nil {
		return model.WeeklySchedule{}, []string{"schedule blob failed to parse; treating as an empty schedule: " + err.Error()}
	}

	var week model.WeeklySchedule
	var warnings []string
	for _, d := range days {
		idx, ok := scheduleDayName[d.Day]
		if !ok {
			warnings = append(warnings, fmt.Sprintf("schedule blob named an unknown day %q; skipping it", d.Day))
			continue
		}
		ranges := make([]model.TimeRange, len(d.ChargeableRanges))
		for i, r := range d.ChargeableRanges {
			ranges[i] = model.TimeRange{Start: r.Start, End: r.End, MinSoc: r.MinSoc}
		}
		week.Days[idx] = model.DaySchedule{Operating: d.IsOperating, ChargeableRanges: ranges}
	}
	return week, warnings
}

// EncodeWeeklySchedule renders a WeeklySchedule back to the persisted JSON
// shape, for round-tripping through storage.
func EncodeWeeklySchedule(week model.WeeklySchedule) ([]byte, error) {
	days := make([]scheduleDayJSON, 0, len(model.WeekdayNames))
	names := []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}
	for i, day := range week.Days {
		ranges := make([]timeRangeJSON, len(day.ChargeableRanges))
		for j, r := range day.ChargeableRanges {
			ranges[j] = timeRangeJSON{Start: r.Start, End: r.End, MinSoc: r.MinSoc}
		}
		days = append(days, scheduleDayJSON{
			Day:              names[i],
			IsOperating:      day.Operating,
			ChargeableRanges: ranges,
		})
	}
	return json.Marshal(days)
}
