package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"station-sizing/internal/config"
	"station-sizing/internal/export"
	"station-sizing/internal/model"
	"station-sizing/internal/sizing"
)

// scoredProject is one project's final-year cumulative profit, used to
// rank the on-disk project set.
type scoredProject struct {
	id     string
	profit float64
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "size":
		cmdSize(os.Args[2:])
	case "v2g":
		cmdV2G(os.Args[2:])
	case "rank":
		cmdRank(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli size --config project.yaml --out results/week.csv")
	fmt.Println("  cli v2g  --config project.yaml --out results/v2g-week.csv")
	fmt.Println("  cli rank --dir examples/projects")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - size runs ESS/transformer sizing plus the 20-year economic projection")
	fmt.Println("  - v2g runs the bidirectional dispatch and prints the weekly arbitrage")
	fmt.Println("  - rank sizes every project under --dir and orders them by cumulative profit")
}

func cmdSize(args []string) {
	fs := flag.NewFlagSet("size", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to project YAML")
	outPath := fs.String("out", "results/week.csv", "Output CSV path for the weekly dispatch curve")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	project, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}

	tables := config.DefaultTables()
	consts := config.DefaultConstants()

	result, err := sizing.ComputeSizing(*project, tables, consts)
	if err != nil {
		panic(err)
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}
	f, err := os.Create(*outPath)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	if err := export.WriteWeekCurvesCSV(f, result.Week); err != nil {
		panic(err)
	}

	fmt.Printf("Wrote weekly dispatch curve to %s\n", *outPath)
	fmt.Printf("Calculation ID: %s\n", result.CalculationID)
	fmt.Printf("ESS: %s units of %s kW / %s kWh -> %s kW / %s kWh rated\n",
		humanize.Comma(int64(result.Ess.Units)),
		result.Ess.ModelPowerKw.String(), result.Ess.ModelCapacityKwh.String(),
		result.Ess.RatedPowerKw.String(), result.Ess.CapacityKwh.String())
	fmt.Printf("Transformer: %s kVA\n", result.Ess.TransformerKva.String())
	if len(result.Years) > 0 {
		last := result.Years[len(result.Years)-1]
		fmt.Printf("Year %d cumulative profit: $%s\n", last.Year, humanize.Comma(last.CumulativeProfit.IntPart()))
	}
	for _, w := range result.Warnings {
		fmt.Printf("warning: %s\n", w)
	}
}

func cmdV2G(args []string) {
	fs := flag.NewFlagSet("v2g", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to project YAML")
	outPath := fs.String("out", "results/v2g-week.csv", "Output CSV path for the weekly dispatch curve")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	project, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}

	consts := config.DefaultConstants()

	result, err := sizing.ComputeV2G(*project, consts)
	if err != nil {
		panic(err)
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}
	f, err := os.Create(*outPath)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	if err := export.WriteWeekCurvesCSV(f, result.Week); err != nil {
		panic(err)
	}

	fmt.Printf("Wrote weekly V2G dispatch curve to %s\n", *outPath)
	fmt.Printf("Weekly arbitrage: $%s\n", humanize.Commaf(weeklyArbitrageFloat(result.Week)))
	fmt.Printf("Suggested piles: fast=%d slow=%d ultra_fast=%d\n",
		result.SuggestedPiles.Fast, result.SuggestedPiles.Slow, result.SuggestedPiles.UltraFast)
	for _, w := range result.Warnings {
		fmt.Printf("warning: %s\n", w)
	}
}

func weeklyArbitrageFloat(week model.WeekCurves) float64 {
	f, _ := week.WeeklyArbitrageSum.Float64()
	return f
}

func cmdRank(args []string) {
	fs := flag.NewFlagSet("rank", flag.ExitOnError)
	dir := fs.String("dir", "examples/projects", "Directory of project YAML files")
	_ = fs.Parse(args)

	entries, err := os.ReadDir(*dir)
	if err != nil {
		panic(err)
	}

	tables := config.DefaultTables()
	consts := config.DefaultConstants()

	var results []scoredProject

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(*dir, entry.Name())
		project, err := config.Load(path)
		if err != nil {
			fmt.Printf("skipping %s: %v\n", entry.Name(), err)
			continue
		}
		result, err := sizing.ComputeSizing(*project, tables, consts)
		if err != nil || len(result.Years) == 0 {
			continue
		}
		last := result.Years[len(result.Years)-1]
		f, _ := last.CumulativeProfit.Float64()
		results = append(results, scoredProject{id: strings.TrimSuffix(entry.Name(), ".yaml"), profit: f})
	}

	sort.Slice(results, func(i, j int) bool { return results[i].profit > results[j].profit })

	fmt.Printf("%-4s %-24s %-14s\n", "rank", "project", "cumulative_profit")
	for i, r := range results {
		fmt.Printf("%-4d %-24s $%-14s\n", i+1, r.id, humanize.Commaf(r.profit))
	}
}
