package engine

import (
	"errors"
	"testing"
)

func TestCoverGap(t *testing.T) {
	table := testTable()
	res, err := CoverGap(CoverInput{
		AnnualIncome:       540000,
		Debts:              400000,
		EducationFund:      300000,
		FinalExpenses:      80000,
		ExistingLife:       800000,
		ExistingDisability: 500000,
		ExistingCritical:   250000,
		ReplacementRatio:   0.75,
		SupportYears:       10,
	}, table)
	if err != nil {
		t.Fatal(err)
	}

	// 540000 * 0.75 * 10
	assertRand(t, 4050000, res.IncomeReplacement, "income replacement")
	assertRand(t, 4050000+400000+300000+80000, res.LifeNeed, "life need")
	assertRand(t, res.LifeNeed-800000, res.LifeGap, "life gap")

	// Horizon of 10 is under the 15-year disability cap.
	if res.DisabilityYears != 10 {
		t.Errorf("disability years: want 10, got %d", res.DisabilityYears)
	}
	assertRand(t, 4050000+400000+150000, res.DisabilityNeed, "disability need")

	// 0.5*income + 0.3*education + final expenses
	assertRand(t, 270000+90000+80000, res.CriticalNeed, "critical illness need")
	assertRand(t, res.CriticalNeed-250000, res.CriticalGap, "critical illness gap")
}

func TestCoverGapDisabilityHorizonCap(t *testing.T) {
	res, err := CoverGap(CoverInput{
		AnnualIncome:     300000,
		ReplacementRatio: 1,
		SupportYears:     25,
	}, testTable())
	if err != nil {
		t.Fatal(err)
	}
	if res.DisabilityYears != disabilityHorizonYears {
		t.Errorf("disability years: want %d, got %d", disabilityHorizonYears, res.DisabilityYears)
	}
	assertRand(t, 300000*15, res.DisabilityNeed, "capped disability need")
	assertRand(t, 300000*25, res.IncomeReplacement, "uncapped life income replacement")
}

func TestCoverGapZeroNeedZeroCover(t *testing.T) {
	res, err := CoverGap(CoverInput{}, testTable())
	if err != nil {
		t.Fatal(err)
	}
	if res.LifeGap != 0 || res.DisabilityGap != 0 || res.CriticalGap != 0 {
		t.Errorf("zero need vs zero cover must give zero gaps: %+v", res)
	}
}

func TestCoverGapSurplusIsNegative(t *testing.T) {
	res, err := CoverGap(CoverInput{
		AnnualIncome:     100000,
		ReplacementRatio: 0.5,
		SupportYears:     2,
		ExistingLife:     1000000,
	}, testTable())
	if err != nil {
		t.Fatal(err)
	}
	if res.LifeGap >= 0 {
		t.Errorf("expected negative gap for surplus cover, got %.2f", res.LifeGap)
	}
}

func TestCoverGapErrors(t *testing.T) {
	var invalid *InvalidInputError
	if _, err := CoverGap(CoverInput{AnnualIncome: -1}, testTable()); !errors.As(err, &invalid) {
		t.Fatalf("negative income: expected InvalidInputError, got %v", err)
	}
	if _, err := CoverGap(CoverInput{ReplacementRatio: 1.5}, testTable()); !errors.As(err, &invalid) {
		t.Fatalf("ratio above one: expected InvalidInputError, got %v", err)
	}
	if _, err := CoverGap(CoverInput{SupportYears: -1}, testTable()); !errors.As(err, &invalid) {
		t.Fatalf("negative years: expected InvalidInputError, got %v", err)
	}
}
