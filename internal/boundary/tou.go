package boundary

import (
	"encoding/json"

	"station-sizing/internal/model"
)

// touRangeJSON mirrors the persisted per-project TOU-price ranges shape:
// an array of `{start,end}`.
type touRangeJSON struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DecodeTouTimeRanges parses a persisted TOU time-ranges blob for a single
// tariff period. A malformed blob degrades to no ranges (the period
// effectively never matches) with a warning, matching the schedule
// decoder's SerializationFailure handling.
func DecodeTouTimeRanges(raw []byte) ([]model.TimeRange, []string) {
	if len(raw) == 0 {
		return nil, nil
	}

	var ranges []touRangeJSON
	if err := json.Unmarshal(raw, &ranges); err != nil {
		return nil, []string{"TOU time-range blob failed to parse; period will not match any slot: " + err.Error()}
	}

	out := make([]model.TimeRange, len(ranges))
	for i, r := range ranges {
		out[i] = model.TimeRange{Start: r.Start, End: r.End}
	}
	return out, nil
}

// EncodeTouTimeRanges renders a TOU period's ranges back to the persisted
// JSON shape.
func EncodeTouTimeRanges(ranges []model.TimeRange) ([]byte, error) {
	out := make([]touRangeJSON, len(ranges))
	for i, r := range ranges {
		out[i] = touRangeJSON{Start: r.Start, End: r.End}
	}
	return json.Marshal(out)
}
