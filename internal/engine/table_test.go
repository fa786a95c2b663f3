package engine

import (
	"math"
	"testing"
)

// testTable returns the 2024/2025 fiscal-year table used across the engine
// tests. Figures match the published SARS tables for that year.
func testTable() *TaxTable {
	return &TaxTable{
		Year: "2025",
		Brackets: []Bracket{
			{Lower: 0, Upper: 237100, Rate: 0.18},
			{Lower: 237100, Upper: 370500, Rate: 0.26},
			{Lower: 370500, Upper: 512800, Rate: 0.31},
			{Lower: 512800, Upper: 673000, Rate: 0.36},
			{Lower: 673000, Upper: 857900, Rate: 0.39},
			{Lower: 857900, Upper: 1817000, Rate: 0.41},
			{Lower: 1817000, Upper: 0, Rate: 0.45},
		},
		Rebates:        Rebates{Primary: 17235, Secondary: 9444, Tertiary: 3145},
		UIF:            UIF{Rate: 0.01, MonthlyCeiling: 17712},
		MedicalCredits: MedicalCredits{MainMember: 364, AdditionalDependant: 246},
		RACap:          RACap{PercentOfIncome: 0.275, AnnualMax: 350000},
		Estate: EstateRules{
			Abatement:         3500000,
			LowerRate:         0.20,
			HigherRate:        0.25,
			RateThreshold:     30000000,
			CGTInclusionRate:  0.40,
			CGTDeathExclusion: 300000,
			ExecutorFeeRate:   0.035,
		},
	}
}

// tolerance for rand comparisons (one cent).
const randTolerance = 0.01

func assertRand(t *testing.T, want, got float64, desc string) {
	t.Helper()
	if math.Abs(want-got) > randTolerance {
		t.Errorf("%s: want R%.2f, got R%.2f (diff R%.2f)", desc, want, got, got-want)
	}
}

func TestTaxTableValidate(t *testing.T) {
	if err := testTable().Validate(); err != nil {
		t.Fatalf("reference table should validate: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*TaxTable)
	}{
		{"empty year", func(tt *TaxTable) { tt.Year = "" }},
		{"no brackets", func(tt *TaxTable) { tt.Brackets = nil }},
		{"first bracket not zero", func(tt *TaxTable) { tt.Brackets[0].Lower = 100 }},
		{"gap between brackets", func(tt *TaxTable) { tt.Brackets[1].Lower = 240000 }},
		{"closed top bracket", func(tt *TaxTable) { tt.Brackets[6].Upper = 2000000 }},
		{"rate above one", func(tt *TaxTable) { tt.Brackets[2].Rate = 1.5 }},
		{"negative rebate", func(tt *TaxTable) { tt.Rebates.Secondary = -1 }},
		{"negative uif ceiling", func(tt *TaxTable) { tt.UIF.MonthlyCeiling = -1 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			table := testTable()
			tc.mutate(table)
			err := table.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if _, ok := err.(*ConfigError); !ok {
				t.Fatalf("expected *ConfigError, got %T", err)
			}
		})
	}
}

func TestMarginalRate(t *testing.T) {
	table := testTable()
	tests := []struct {
		income float64
		want   float64
	}{
		{0, 0.18},
		{100000, 0.18},
		{237100, 0.18},
		{237101, 0.26},
		{500000, 0.31},
		{1817001, 0.45},
		{5000000, 0.45},
	}
	for _, tc := range tests {
		if got := table.MarginalRate(tc.income); got != tc.want {
			t.Errorf("MarginalRate(%.0f) = %.2f, want %.2f", tc.income, got, tc.want)
		}
	}
}
