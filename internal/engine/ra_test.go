package engine

import (
	"errors"
	"testing"
)

func TestRADeduction(t *testing.T) {
	table := testTable()

	tests := []struct {
		name           string
		income         float64
		contribution   float64
		wantDeductible float64
		wantExcess     float64
		wantRate       float64
	}{
		{"zero contribution", 400000, 0, 0, 0, 0.31},
		{"under percentage cap", 400000, 50000, 50000, 0, 0.31},
		{"percentage cap binds", 400000, 150000, 110000, 40000, 0.31},
		{"absolute cap binds", 2000000, 600000, 350000, 250000, 0.45},
		{"zero income", 0, 10000, 0, 10000, 0.18},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := RADeduction(tc.income, tc.contribution, table)
			if err != nil {
				t.Fatal(err)
			}
			assertRand(t, tc.wantDeductible, res.Deductible, "deductible")
			assertRand(t, tc.wantExcess, res.Excess, "excess")
			if res.MarginalRate != tc.wantRate {
				t.Errorf("marginal rate: want %.2f, got %.2f", tc.wantRate, res.MarginalRate)
			}
			assertRand(t, res.Deductible*res.MarginalRate, res.TaxSaving, "tax saving")
		})
	}
}

func TestRADeductionInvariants(t *testing.T) {
	table := testTable()
	incomes := []float64{0, 120000, 400000, 990000, 3000000}
	contributions := []float64{0, 25000, 110000, 350000, 700000}
	for _, income := range incomes {
		for _, contribution := range contributions {
			res, err := RADeduction(income, contribution, table)
			if err != nil {
				t.Fatal(err)
			}
			if res.Deductible > contribution+randTolerance {
				t.Errorf("income %.0f contribution %.0f: deductible %.2f exceeds contribution", income, contribution, res.Deductible)
			}
			if res.Deductible > income*table.RACap.PercentOfIncome+randTolerance {
				t.Errorf("income %.0f: deductible %.2f exceeds percentage cap", income, res.Deductible)
			}
			if res.Deductible > table.RACap.AnnualMax+randTolerance {
				t.Errorf("deductible %.2f exceeds absolute cap", res.Deductible)
			}
			assertRand(t, contribution, res.Deductible+res.Excess, "deductible plus excess")
		}
	}
}

func TestRADeductionErrors(t *testing.T) {
	table := testTable()
	var invalid *InvalidInputError
	if _, err := RADeduction(-1, 0, table); !errors.As(err, &invalid) {
		t.Fatalf("negative income: expected InvalidInputError, got %v", err)
	}
	if _, err := RADeduction(100000, -1, table); !errors.As(err, &invalid) {
		t.Fatalf("negative contribution: expected InvalidInputError, got %v", err)
	}
	var cfg *ConfigError
	if _, err := RADeduction(100000, 10000, &TaxTable{}); !errors.As(err, &cfg) {
		t.Fatalf("empty table: expected ConfigError, got %v", err)
	}
}
