package boundary

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"station-sizing/internal/model"
)

func TestDecodeWeeklyScheduleRoundTrips(t *testing.T) {
	week := model.WeeklySchedule{}
	week.Days[model.Monday] = model.DaySchedule{
		Operating: true,
		ChargeableRanges: []model.TimeRange{
			{Start: "22:00", End: "06:00", MinSoc: decimal.NewFromInt(80)},
		},
	}

	raw, err := EncodeWeeklySchedule(week)
	require.NoError(t, err)

	decoded, warnings := DecodeWeeklySchedule(raw)
	assert.Empty(t, warnings)
	assert.True(t, decoded.Days[model.Monday].Operating)
	require.Len(t, decoded.Days[model.Monday].ChargeableRanges, 1)
	assert.Equal(t, "22:00", decoded.Days[model.Monday].ChargeableRanges[0].Start)
	assert.False(t, decoded.Days[model.Tuesday].Operating)
}

func TestDecodeWeeklyScheduleEmptyBlobIsEmptySchedule(t *testing.T) {
	week, warnings := DecodeWeeklySchedule(nil)
	assert.Empty(t, warnings)
	assert.Equal(t, model.WeeklySchedule{}, week)
}

func TestDecodeWeeklyScheduleMalformedBlobDegradesWithWarning(t *testing.T) {
	week, warnings := DecodeWeeklySchedule([]byte("{not valid json"))
	require.NotEmpty(t, warnings)
	assert.Equal(t, model.WeeklySchedule{}, week)
}

func TestDecodeWeeklyScheduleUnknownDayWarnsAndSkips(t *testing.T) {
	week, warnings := DecodeWeeklySchedule([]byte(`[{"day":"xyz","isOperating":true}]`))
	require.Len(t, warnings, 1)
	assert.Equal(t, model.WeeklySchedule{}, week)
}
