package engine

import (
	"errors"
	"testing"
)

func TestTaxBeforeRebates(t *testing.T) {
	table := testTable()

	// Hand-computed against the 2024/25 SARS table.
	tests := []struct {
		income float64
		want   float64
	}{
		{0, 0},
		{100000, 18000},
		{237100, 42678},
		{300000, 42678 + 62900*0.26},         // 59032
		{500000, 77362 + (500000-370500)*0.31}, // 117506.50
		{600000, 121475 + (600000-512800)*0.36},
		{2000000, 644489 + (2000000-1817000)*0.45},
	}
	for _, tc := range tests {
		got, err := TaxBeforeRebates(tc.income, table)
		if err != nil {
			t.Fatalf("TaxBeforeRebates(%.0f): %v", tc.income, err)
		}
		assertRand(t, tc.want, got, "tax on income")
	}
}

func TestTaxBeforeRebatesErrors(t *testing.T) {
	table := testTable()

	_, err := TaxBeforeRebates(-1, table)
	var invalid *InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("negative income: expected InvalidInputError, got %v", err)
	}
	if invalid.Field != "taxableIncome" {
		t.Errorf("expected field taxableIncome, got %s", invalid.Field)
	}

	var cfg *ConfigError
	if _, err := TaxBeforeRebates(100000, &TaxTable{}); !errors.As(err, &cfg) {
		t.Fatalf("empty table: expected ConfigError, got %v", err)
	}
	if _, err := TaxBeforeRebates(100000, nil); !errors.As(err, &cfg) {
		t.Fatalf("nil table: expected ConfigError, got %v", err)
	}
}

func TestTaxMonotonicity(t *testing.T) {
	table := testTable()
	prev := -1.0
	for income := 0.0; income <= 3000000; income += 12500 {
		tax, err := TaxBeforeRebates(income, table)
		if err != nil {
			t.Fatalf("income %.0f: %v", income, err)
		}
		if tax < prev {
			t.Fatalf("tax decreased at income %.0f: %.2f < %.2f", income, tax, prev)
		}
		prev = tax
	}
}

func TestTaxContinuityAtBracketBoundaries(t *testing.T) {
	table := testTable()
	for _, b := range table.Brackets[1:] {
		below, _ := TaxBeforeRebates(b.Lower-0.01, table)
		at, _ := TaxBeforeRebates(b.Lower, table)
		above, _ := TaxBeforeRebates(b.Lower+0.01, table)
		// The jump across the boundary must not exceed the marginal slice.
		if at-below > 0.01*1.0+randTolerance {
			t.Errorf("discontinuity below boundary %.0f: %.4f", b.Lower, at-below)
		}
		if above-at > 0.01*b.Rate+randTolerance {
			t.Errorf("discontinuity above boundary %.0f: %.4f", b.Lower, above-at)
		}
	}
}

func TestRebateForAge(t *testing.T) {
	table := testTable()
	tests := []struct {
		age  int
		want float64
	}{
		{40, 17235},
		{64, 17235},
		{65, 17235 + 9444},
		{74, 17235 + 9444},
		{75, 17235 + 9444 + 3145},
		{120, 17235 + 9444 + 3145},
	}
	for _, tc := range tests {
		got, err := RebateForAge(tc.age, table)
		if err != nil {
			t.Fatalf("age %d: %v", tc.age, err)
		}
		assertRand(t, tc.want, got, "rebate")
	}

	for _, age := range []int{-1, 121} {
		if _, err := RebateForAge(age, table); err == nil {
			t.Errorf("age %d: expected error", age)
		}
	}
}

func TestAnnualMedicalCredits(t *testing.T) {
	table := testTable()
	tests := []struct {
		members int
		want    float64
	}{
		{0, 0},
		{1, 364 * 12},
		{2, 2 * 364 * 12},
		{3, 2*364*12 + 246*12},
		{5, 2*364*12 + 3*246*12},
	}
	for _, tc := range tests {
		got, err := AnnualMedicalCredits(tc.members, table)
		if err != nil {
			t.Fatalf("members %d: %v", tc.members, err)
		}
		assertRand(t, tc.want, got, "medical credits")
	}
	if _, err := AnnualMedicalCredits(-1, table); err == nil {
		t.Error("negative member count: expected error")
	}
}

func TestApplyRebatesNeverNegative(t *testing.T) {
	table := testTable()
	// Gross tax below the rebates must floor at zero, not go negative.
	net, err := ApplyRebates(5000, 75, 4, table)
	if err != nil {
		t.Fatal(err)
	}
	if net != 0 {
		t.Errorf("expected zero net tax, got %.2f", net)
	}

	// Credits larger than the post-rebate tax also floor at zero.
	net, err = ApplyRebates(20000, 40, 10, table)
	if err != nil {
		t.Fatal(err)
	}
	if net < 0 {
		t.Errorf("net tax went negative: %.2f", net)
	}
}

func TestSecondaryRebateExactDelta(t *testing.T) {
	table := testTable()
	in := SalaryInput{GrossIncome: 500000, Age: 40}

	at40, err := CalculateSalary(in, table)
	if err != nil {
		t.Fatal(err)
	}
	in.Age = 66
	at66, err := CalculateSalary(in, table)
	if err != nil {
		t.Fatal(err)
	}
	// Only the secondary rebate separates the two, to the cent.
	assertRand(t, table.Rebates.Secondary, at40.PAYE-at66.PAYE, "secondary rebate delta")
}

func TestCalculateSalary(t *testing.T) {
	table := testTable()
	res, err := CalculateSalary(SalaryInput{
		GrossIncome:       600000,
		RAContribution:    50000,
		Age:               40,
		MedicalDependants: 2,
	}, table)
	if err != nil {
		t.Fatal(err)
	}

	assertRand(t, 550000, res.TaxableIncome, "taxable income")
	assertRand(t, 134867, res.TaxBeforeRebates, "tax before rebates")
	assertRand(t, 117632, res.PAYEBeforeCredits, "PAYE before credits")
	assertRand(t, 8736, res.MedicalCredits, "medical credits")
	assertRand(t, 108896, res.PAYE, "PAYE")
	assertRand(t, 2125.44, res.UIF, "UIF")
	assertRand(t, 600000-108896-2125.44, res.NetIncome, "net income")
	if res.MarginalRate != 0.36 {
		t.Errorf("marginal rate: want 0.36, got %.2f", res.MarginalRate)
	}
	assertRand(t, 50000, res.DeductibleRAAmount, "deductible RA")
	assertRand(t, res.PAYE/12, res.PAYEMonthly, "monthly PAYE")
}

func TestCalculateSalaryUIFCeiling(t *testing.T) {
	table := testTable()
	// Income above the UIF ceiling contributes on the ceiling only.
	res, err := CalculateSalary(SalaryInput{GrossIncome: 1000000, Age: 30}, table)
	if err != nil {
		t.Fatal(err)
	}
	assertRand(t, 17712*12*0.01, res.UIF, "UIF at ceiling")
}

func TestCalculateSalaryDeterministic(t *testing.T) {
	table := testTable()
	in := SalaryInput{GrossIncome: 452300, RAContribution: 30000, Age: 52, MedicalDependants: 3}
	first, err := CalculateSalary(in, table)
	if err != nil {
		t.Fatal(err)
	}
	second, err := CalculateSalary(in, table)
	if err != nil {
		t.Fatal(err)
	}
	if *first != *second {
		t.Error("identical inputs produced different results")
	}
}
