package model

// Action is a human-friendly operating mode for a single 15-minute slot.
// Keep these values stable; they are intended for CSV/JSON output.
type Action string

const (
	ActionCharging    Action = "CHARGING"
	ActionIdle        Action = "IDLE"
	ActionDischarging Action = "DISCHARGING"
)

// ActionForSlot classifies a slot by its power direction. A slot can
// carry simultaneous V1G and V2G charge (both additive into ChargePowerKw),
// and V1G charge can share a slot with V2G discharge; any discharge takes
// precedence, so such a slot is reported as DISCHARGING.
func ActionForSlot(p SlotPoint) Action {
	switch {
	case p.DischargePowerKw.IsNegative():
		return ActionDischarging
	case p.ChargePowerKw.IsPositive():
		return ActionCharging
	default:
		return ActionIdle
	}
}

