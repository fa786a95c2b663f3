package engine

import (
	"errors"
	"math"
	"testing"
)

func TestFutureValueNoGrowth(t *testing.T) {
	// Zero return degrades to straight accumulation.
	fv := FutureValue(100000, 0, 2, 1000, 0)
	assertRand(t, 124000, fv, "future value without growth")
}

func TestFutureValueContributionsOnly(t *testing.T) {
	// Twelve escalating-free contributions at 12% annual growth: the level
	// contribution annuity formula gives the closed-form check.
	fv := FutureValue(0, 0.12, 1, 1000, 0)
	monthlyRate := math.Pow(1.12, 1.0/12) - 1
	want := 1000 * (math.Pow(1+monthlyRate, 12) - 1) / monthlyRate
	if math.Abs(fv-want) > 1 {
		t.Errorf("future value: want %.2f, got %.2f", want, fv)
	}
}

func TestFutureValueLumpSumOnly(t *testing.T) {
	fv := FutureValue(100000, 0.10, 3, 0, 0)
	assertRand(t, 100000*1.1*1.1*1.1, fv, "compounded lump sum")
}

func TestFutureValueMonotonicInContribution(t *testing.T) {
	low := FutureValue(50000, 0.08, 10, 500, 0.05)
	high := FutureValue(50000, 0.08, 10, 1500, 0.05)
	if high <= low {
		t.Errorf("higher contribution must grow more: %.2f <= %.2f", high, low)
	}
}

func TestYearsUntilDepletion(t *testing.T) {
	// 1m capital, 100k desired income, no growth. Five full withdrawals,
	// then the 17.5% ceiling throttles the income until the tail payout:
	// 900k, 800k, 700k, 600k, 500k, 412.5k, then x0.825 per year down to
	// 107,300 in year 13, paid out in year 14.
	years, path := YearsUntilDepletion(1000000, 100000, 0)
	if years != 14 {
		t.Errorf("years until depletion: want 14, got %d", years)
	}
	if path[len(path)-1] != 0 {
		t.Errorf("capital path must end at zero, got %.2f", path[len(path)-1])
	}
	assertRand(t, 900000, path[1], "capital after first withdrawal")
}

func TestYearsUntilDepletionDrawdownCeiling(t *testing.T) {
	// The 17.5% ceiling binds when the desired income exceeds it.
	_, path := YearsUntilDepletion(1000000, 500000, 0)
	assertRand(t, 1000000*(1-maxDrawdownRate), path[1], "ceiling-limited first withdrawal")
}

func TestYearsUntilDepletionBoundedWhenGrowthOutpacesIncome(t *testing.T) {
	// 10% growth against a 50k withdrawal from 1m: the capital compounds
	// faster than it is drawn and never depletes, so the simulation must
	// stop at the year cap instead of running forever.
	years, path := YearsUntilDepletion(1000000, 50000, 0.10)
	if years != depletionCapYears {
		t.Errorf("years: want cap %d, got %d", depletionCapYears, years)
	}
	if len(path) != depletionCapYears+1 {
		t.Errorf("path length: want %d, got %d", depletionCapYears+1, len(path))
	}
	if last := path[len(path)-1]; last <= 1000000 {
		t.Errorf("capital must still exceed the start at the cap, got %.2f", last)
	}
}

func TestAdditionalMonthlySavings(t *testing.T) {
	if got := AdditionalMonthlySavings(0, 10, 0.1); got != 0 {
		t.Errorf("zero shortfall: want 0, got %.2f", got)
	}
	if got := AdditionalMonthlySavings(-5000, 10, 0.1); got != 0 {
		t.Errorf("negative shortfall: want 0, got %.2f", got)
	}

	// 120k over 10 years at 10%: factor (1.1^10-1)/0.1 = 15.937.
	got := AdditionalMonthlySavings(120000, 10, 0.1)
	factor := (math.Pow(1.1, 10) - 1) / 0.1
	assertRand(t, 120000/factor/12, got, "monthly savings")

	// Zero return falls back to straight-line.
	assertRand(t, 1000, AdditionalMonthlySavings(120000, 10, 0), "straight-line savings")
}

func TestProjectRetirementPreserveCapital(t *testing.T) {
	res, err := ProjectRetirement(RetirementInput{
		DesiredMonthlyIncome: 20000,
		InflationRate:        0.06,
		YearsToRetirement:    20,
		AssumedReturn:        0.07,
		PreserveCapital:      true,
		Provisions: []Provision{
			{Type: "Retirement Annuity", CurrentValue: 800000, AnnualReturn: 0.09, MonthlyContribution: 5000},
		},
	}, testTable())
	if err != nil {
		t.Fatal(err)
	}

	wantFuture := 20000 * 12 * math.Pow(1.06, 20)
	assertRand(t, wantFuture, res.FutureAnnualIncome, "inflated income need")
	if res.CapitalRequired <= 0 {
		t.Error("preserve mode must size required capital")
	}
	// Perpetuity capital is the floor in preserve mode.
	if res.CapitalRequired < wantFuture/0.07-randTolerance {
		t.Errorf("capital %.2f below perpetuity floor %.2f", res.CapitalRequired, wantFuture/0.07)
	}
	if res.TotalProvisionValue <= 800000 {
		t.Errorf("provisions must grow over 20 years, got %.2f", res.TotalProvisionValue)
	}
	if res.Shortfall > 0 && res.AdditionalMonthlySavings <= 0 {
		t.Error("a shortfall must come with a savings recommendation")
	}
}

func TestProjectRetirementPreserveRequiresPositiveReturn(t *testing.T) {
	// A zero return cannot sustain a perpetual income from finite capital.
	_, err := ProjectRetirement(RetirementInput{
		DesiredMonthlyIncome: 10000,
		YearsToRetirement:    10,
		AssumedReturn:        0,
		PreserveCapital:      true,
	}, testTable())
	var invalid *InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidInputError, got %v", err)
	}
	if invalid.Field != "assumedReturn" {
		t.Errorf("field: want assumedReturn, got %q", invalid.Field)
	}
}

func TestProjectRetirementDepletionMode(t *testing.T) {
	res, err := ProjectRetirement(RetirementInput{
		DesiredMonthlyIncome: 10000,
		YearsToRetirement:    0,
		AssumedReturn:        0,
		Provisions: []Provision{
			{Type: "Pension Fund", CurrentValue: 1200000},
		},
	}, testTable())
	if err != nil {
		t.Fatal(err)
	}
	if res.CapitalRequired != 0 {
		t.Error("depletion mode must not size required capital")
	}
	// 1.2m at 120k/year with no growth: five full withdrawals, then the
	// drawdown ceiling stretches the capital to a tail payout in year 15.
	if res.YearsUntilDepletion != 15 {
		t.Errorf("years until depletion: want 15, got %d", res.YearsUntilDepletion)
	}
	if len(res.CapitalOverTime) == 0 {
		t.Error("depletion mode must return the capital path")
	}
}

func TestProjectRetirementErrors(t *testing.T) {
	table := testTable()
	cases := []RetirementInput{
		{DesiredMonthlyIncome: -1},
		{YearsToRetirement: -1},
		{InflationRate: 1.5},
		{AssumedReturn: -0.1},
		{Provisions: []Provision{{CurrentValue: -1}}},
	}
	for i, in := range cases {
		if _, err := ProjectRetirement(in, table); err == nil {
			t.Errorf("case %d: expected error", i)
		}
	}
}
