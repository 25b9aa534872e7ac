// Package export renders computed dispatch curves to CSV: one row per
// sample, plain encoding/csv, no templating layer.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"station-sizing/internal/model"
)

// WriteWeekCurvesCSV writes one row per (day, slot) of a WeekCurves to w,
// in Mon..Sun / 00:00..23:45 order.
func WriteWeekCurvesCSV(w io.Writer, week model.WeekCurves) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{
		"weekday",
		"time_slot",
		"charge_power_kw",
		"discharge_power_kw",
		"charge_energy_kwh",
		"discharge_energy_kwh",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, day := range week.Days {
		for _, p := range day.Slots {
			row := []string{
				day.Label,
				p.TimeSlot,
				p.ChargePowerKw.String(),
				p.DischargePowerKw.String(),
				p.ChargeEnergyKwh.String(),
				p.DischargeEnergyKwh.String(),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	return cw.Error()
}

// WriteDayCurveCSV writes a single day's 96 slots to w.
func WriteDayCurveCSV(w io.Writer, day model.DayCurve) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"time_slot", "charge_power_kw", "discharge_power_kw", "charge_energy_kwh", "discharge_energy_kwh"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, p := range day.Slots {
		row := []string{
			p.TimeSlot,
			p.ChargePowerKw.String(),
			p.DischargePowerKw.String(),
			p.ChargeEnergyKwh.String(),
			p.DischargeEnergyKwh.String(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	return cw.Error()
}

// WriteYearlyEconomicsCSV writes the multi-year economics projection to w.
func WriteYearlyEconomicsCSV(w io.Writer, years []model.YearlyEconomic) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"year", "arbitrage_revenue", "peak_shaving_revenue", "operating_cost", "net_profit", "cumulative_profit"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, y := range years {
		row := []string{
			fmt.Sprintf("%d", y.Year),
			y.ArbitrageRevenue.String(),
			y.PeakShavingRevenue.String(),
			y.OperatingCost.String(),
			y.NetProfit.String(),
			y.CumulativeProfit.String(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	return cw.Error()
}
