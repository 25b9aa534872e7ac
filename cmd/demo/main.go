package main

import (
	"flag"
	"fmt"

	"github.com/shopspring/decimal"

	"station-sizing/internal/config"
	"station-sizing/internal/model"
	"station-sizing/internal/sizing"
)

// Demo:
// - Build a small example project in code (no data file needed)
// - Run the V1G sizing pipeline and the V2G arbitrage pipeline
// - Print the first few slots of Monday's dispatch curve from each, plus
//   the recommended ESS and the weekly arbitrage, to show how the pieces
//   of the core fit together.
func main() {
	n := flag.Int("n", 12, "Number of Monday slots to print")
	flag.Parse()

	project := exampleProject()

	tables := config.DefaultTables()
	consts := config.DefaultConstants()

	sizingResult, err := sizing.ComputeSizing(project, tables, consts)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Calculation ID: %s\n", sizingResult.CalculationID)
	fmt.Printf("Recommended ESS: %d x (%s kW / %s kWh) -> %s kW / %s kWh rated, transformer %s kVA\n\n",
		sizingResult.Ess.Units,
		sizingResult.Ess.ModelPowerKw.String(), sizingResult.Ess.ModelCapacityKwh.String(),
		sizingResult.Ess.RatedPowerKw.String(), sizingResult.Ess.CapacityKwh.String(),
		sizingResult.Ess.TransformerKva.String())

	fmt.Println("Monday V1G dispatch (first slots):")
	printSlots(sizingResult.Week.Days[model.Monday], *n)

	v2gResult, err := sizing.ComputeV2G(project, consts)
	if err != nil {
		panic(err)
	}

	fmt.Printf("\nWeekly V2G arbitrage: %s\n", v2gResult.Week.WeeklyArbitrageSum.String())
	fmt.Printf("Suggested piles: fast=%d slow=%d ultra_fast=%d\n\n",
		v2gResult.SuggestedPiles.Fast, v2gResult.SuggestedPiles.Slow, v2gResult.SuggestedPiles.UltraFast)

	fmt.Println("Monday V2G dispatch (first slots):")
	printSlots(v2gResult.Week.Days[model.Monday], *n)

	if len(sizingResult.Years) > 0 {
		y1 := sizingResult.Years[0]
		fmt.Printf("\nYear 1: arbitrage=%s om_cost=%s net=%s\n", y1.ArbitrageRevenue.String(), y1.OperatingCost.String(), y1.NetProfit.String())
	}
}

func printSlots(day model.DayCurve, n int) {
	for i := 0; i < n && i < len(day.Slots); i++ {
		s := day.Slots[i]
		fmt.Printf("%s  charge=%6s kW  discharge=%6s kW\n", s.TimeSlot, s.ChargePowerKw.String(), s.DischargePowerKw.String())
	}
}

// exampleProject builds a single station with a mixed V1G/V2G fleet,
// operating every day, under a four-period TOU tariff.
func exampleProject() model.Project {
	return model.Project{
		Station: model.StationConfig{
			PvPeakPowerKw:  decimal.NewFromInt(50),
			TransformerSet: false,
			Country:        model.CountryCN,
		},
		Fleet: model.FleetConfig{
			VehicleCount:      20,
			BatteryKwh:        decimal.NewFromInt(100),
			EnableTimeControl: true,
			Piles: model.PileCounts{Fast: 15, Slow: 3, UltraFast: 2},
			V2GPiles: model.PileCounts{Fast: 5},
		},
		Schedule: exampleSchedule(),
		Tous:     exampleTous(),
		Request: model.Request{
			ChargeMode:        model.ChargeModeOne,
			EnablePeakShaving: false,
			SubsidyPerKwh:     decimal.Zero,
			ProjectionYears:   20,
		},
	}
}

func exampleSchedule() model.WeeklySchedule {
	day := model.DaySchedule{
		Operating: true,
		ChargeableRanges: []model.TimeRange{
			{Start: "08:00", End: "18:00", MinSoc: decimal.NewFromInt(90)},
			{Start: "22:00", End: "06:00", MinSoc: decimal.NewFromInt(80)},
		},
	}
	var week model.WeeklySchedule
	for d := model.Monday; d <= model.Sunday; d++ {
		week.Days[d] = day
	}
	return week
}

func exampleTous() []model.TouPeriod {
	return []model.TouPeriod{
		{PeriodType: model.TouPeak, TimeRanges: []model.TimeRange{{Start: "18:00", End: "21:00"}}, Price: decimal.NewFromFloat(1.2)},
		{PeriodType: model.TouHigh, TimeRanges: []model.TimeRange{{Start: "08:00", End: "11:00"}, {Start: "14:00", End: "18:00"}}, Price: decimal.NewFromFloat(0.9)},
		{PeriodType: model.TouNormal, TimeRanges: []model.TimeRange{{Start: "06:00", End: "08:00"}, {Start: "11:00", End: "14:00"}, {Start: "21:00", End: "22:00"}}, Price: decimal.NewFromFloat(0.6)},
		{PeriodType: model.TouValley, TimeRanges: []model.TimeRange{{Start: "22:00", End: "06:00"}}, Price: decimal.NewFromFloat(0.3)},
	}
}
