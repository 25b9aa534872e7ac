package config

import (
	"fmt"

	"github.com/shopspring/decimal"

	"station-sizing/internal/model"
)

// Tables holds the process-wide immutable standard-module catalogues used
// by sizing: transformer sizes and ESS models, one list per country.
// Load once at process start and inject into each orchestrator call
// rather than reading it from a package-level var at call time.
type Tables struct {
	Transformers map[string][]decimal.Decimal
	EssModels    map[string][]model.EssModel
}

// TransformersFor returns the ascending transformer size list for a
// country, or an error if the country is unknown.
func (t Tables) TransformersFor(country string) ([]decimal.Decimal, error) {
	sizes, ok := t.Transformers[country]
	if !ok || len(sizes) == 0 {
		return nil, fmt.Errorf("no transformer table for country %q", country)
	}
	return sizes, nil
}

// EssModelsFor returns the standard ESS module catalogue for a country, or
// an error if the country is unknown.
func (t Tables) EssModelsFor(country string) ([]model.EssModel, error) {
	models, ok := t.EssModels[country]
	if !ok || len(models) == 0 {
		return nil, fmt.Errorf("no ESS model table for country %q", country)
	}
	return models, nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// DefaultTables returns the built-in standard module tables.
// JP and UK transformer lists are distinct from CN's; ESS model lists
// default to the same catalogue as CN unless a caller overrides them.
func DefaultTables() Tables {
	cnTransformers := decimals("30", "50", "80", "100", "125", "160", "200", "250",
		"315", "400", "500", "630", "800", "1000", "1250", "1600", "2000", "2500", "3150")

	// JP and UK standard distribution transformer kVA series (IEC/JEC
	// preferred-number style ladders), distinct from CN's.
	jpTransformers := decimals("50", "75", "100", "150", "200", "300", "500", "750", "1000", "1500", "2000", "3000")
	ukTransformers := decimals("25", "50", "100", "200", "315", "500", "750", "1000", "1500", "2000", "2500")

	cnEss := []model.EssModel{
		{PowerKw: dec("100"), CapacityKwh: dec("215")},
		{PowerKw: dec("125"), CapacityKwh: dec("261")},
	}

	return Tables{
		Transformers: map[string][]decimal.Decimal{
			model.CountryCN: cnTransformers,
			model.CountryJP: jpTransformers,
			model.CountryUK: ukTransformers,
		},
		EssModels: map[string][]model.EssModel{
			model.CountryCN: cnEss,
			model.CountryJP: cnEss,
			model.CountryUK: cnEss,
		},
	}
}

func decimals(values ...string) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = dec(v)
	}
	return out
}
