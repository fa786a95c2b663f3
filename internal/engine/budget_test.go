package engine

import (
	"errors"
	"testing"
)

func TestCalculateBudget(t *testing.T) {
	res, err := CalculateBudget(39500, []ExpenseItem{
		{Category: "Rent", Amount: 12000},
		{Category: "Groceries", Amount: 6500},
		{Category: "Transport", Amount: 3000},
	})
	if err != nil {
		t.Fatal(err)
	}
	assertRand(t, 21500, res.TotalExpenses, "total expenses")
	assertRand(t, 18000, res.RemainingBudget, "remaining budget")
	assertRand(t, 18000, res.SavingsPotential, "savings potential")
}

func TestCalculateBudgetOverspend(t *testing.T) {
	res, err := CalculateBudget(10000, []ExpenseItem{{Category: "Rent", Amount: 15000}})
	if err != nil {
		t.Fatal(err)
	}
	assertRand(t, -5000, res.RemainingBudget, "remaining budget stays signed")
	assertRand(t, 0, res.SavingsPotential, "savings potential floors at zero")
}

func TestHealthCheck(t *testing.T) {
	m, err := HealthCheck(BriefInput{
		MonthlyIncome:  45000,
		FixedExpenses:  22000,
		DebtRepayments: 6000,
		EmergencyFund:  30000,
		CushionMonths:  6,
		MonthlyTopUp:   17000,
	})
	if err != nil {
		t.Fatal(err)
	}
	assertRand(t, 17000, m.FreeCash, "free cash")
	assertRand(t, 17000.0/45000*100, m.SavingsRate, "savings rate")
	assertRand(t, 6000.0/45000*100, m.DebtToIncome, "debt to income")
	assertRand(t, 6*28000, m.TargetCushion, "target cushion")
	assertRand(t, 168000-30000, m.CushionGap, "cushion gap")
	assertRand(t, 138000.0/17000, m.MonthsToTarget, "months to target")
}

func TestHealthCheckZeroIncome(t *testing.T) {
	m, err := HealthCheck(BriefInput{FixedExpenses: 5000, CushionMonths: 3})
	if err != nil {
		t.Fatal(err)
	}
	if m.SavingsRate != 0 || m.DebtToIncome != 0 {
		t.Error("zero income must not divide")
	}
	if m.FreeCash != 0 {
		t.Errorf("free cash floors at zero, got %.2f", m.FreeCash)
	}
}

func TestAvalancheSchedule(t *testing.T) {
	debts := []Debt{
		{Rate: 10, Balance: 5000},
		{Rate: 20, Balance: 10000},
	}
	schedule, months, err := AvalancheSchedule(debts, 1500)
	if err != nil {
		t.Fatal(err)
	}
	if months <= 0 || months >= avalancheCapMonths {
		t.Fatalf("unexpected payoff horizon: %d", months)
	}
	if len(schedule) != months {
		t.Fatalf("schedule rows %d != payoff months %d", len(schedule), months)
	}
	if last := schedule[len(schedule)-1]; last.TotalRemaining > 1 {
		t.Errorf("debt not cleared: %.2f remaining", last.TotalRemaining)
	}

	// Highest rate first: the 20% debt must reach zero before the 10% one.
	zeroAt := func(idx int) int {
		for _, row := range schedule {
			if row.Balances[idx] <= 1 {
				return row.Month
			}
		}
		return avalancheCapMonths
	}
	if zeroAt(0) > zeroAt(1) {
		t.Errorf("avalanche must clear the 20%% debt first (month %d vs %d)", zeroAt(0), zeroAt(1))
	}
}

func TestAvalanchePaymentBelowInterestCapsOut(t *testing.T) {
	_, months, err := AvalancheSchedule([]Debt{{Rate: 30, Balance: 100000}}, 100)
	if err != nil {
		t.Fatal(err)
	}
	if months != avalancheCapMonths {
		t.Errorf("runaway schedule must stop at the cap, got %d", months)
	}
}

func TestAvalancheNoDebts(t *testing.T) {
	schedule, months, err := AvalancheSchedule(nil, 1000)
	if err != nil {
		t.Fatal(err)
	}
	if months != 0 || len(schedule) != 0 {
		t.Errorf("no debts must yield an empty schedule, got %d months", months)
	}
}

func TestBudgetErrors(t *testing.T) {
	var invalid *InvalidInputError
	if _, err := CalculateBudget(-1, nil); !errors.As(err, &invalid) {
		t.Fatalf("negative income: expected InvalidInputError, got %v", err)
	}
	if _, err := CalculateBudget(1000, []ExpenseItem{{Amount: -5}}); !errors.As(err, &invalid) {
		t.Fatalf("negative expense: expected InvalidInputError, got %v", err)
	}
	if _, err := HealthCheck(BriefInput{CushionMonths: -1}); !errors.As(err, &invalid) {
		t.Fatalf("negative cushion months: expected InvalidInputError, got %v", err)
	}
	if _, _, err := AvalancheSchedule([]Debt{{Rate: -1, Balance: 100}}, 100); !errors.As(err, &invalid) {
		t.Fatalf("negative rate: expected InvalidInputError, got %v", err)
	}
}
