package engine

// ExpenseItem is one named monthly expense line.
type ExpenseItem struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// BudgetResult is the cash-flow split for a month.
type BudgetResult struct {
	TotalExpenses    float64 `json:"totalExpenses"`
	RemainingBudget  float64 `json:"remainingBudget"`
	SavingsPotential float64 `json:"savingsPotential"`
}

// CalculateBudget totals the expense lines against monthly income. The
// remaining budget may go negative; the savings potential floors at zero.
func CalculateBudget(monthlyIncome float64, expenses []ExpenseItem) (*BudgetResult, error) {
	if err := requireAmount("monthlyIncome", monthlyIncome); err != nil {
		return nil, err
	}
	var total float64
	for _, e := range expenses {
		if err := requireAmount("expenses.amount", e.Amount); err != nil {
			return nil, err
		}
		total += e.Amount
	}
	remaining := monthlyIncome - total
	savings := remaining
	if savings < 0 {
		savings = 0
	}
	return &BudgetResult{TotalExpenses: total, RemainingBudget: remaining, SavingsPotential: savings}, nil
}

// BriefInput collects the advisor-brief health-check inputs, all monthly rand
// amounts except the cushion target in months.
type BriefInput struct {
	MonthlyIncome  float64 `json:"monthlyIncome"`
	FixedExpenses  float64 `json:"fixedExpenses"`
	DebtRepayments float64 `json:"debtRepayments"`
	EmergencyFund  float64 `json:"emergencyFund"`
	CushionMonths  int     `json:"cushionMonths"`
	MonthlyTopUp   float64 `json:"monthlyTopUp"`
}

// BriefMetrics are the quick ratios shown at the top of the advisor brief.
type BriefMetrics struct {
	FreeCash       float64 `json:"freeCash"`
	SavingsRate    float64 `json:"savingsRate"`
	DebtToIncome   float64 `json:"debtToIncome"`
	TargetCushion  float64 `json:"targetCushion"`
	CushionGap     float64 `json:"cushionGap"`
	MonthsToTarget float64 `json:"monthsToTarget"`
}

// HealthCheck derives the advisor brief's affordability ratios: free cash,
// savings rate, debt-to-income, and the emergency-fund cushion target and
// gap.
func HealthCheck(in BriefInput) (*BriefMetrics, error) {
	for field, v := range map[string]float64{
		"monthlyIncome":  in.MonthlyIncome,
		"fixedExpenses":  in.FixedExpenses,
		"debtRepayments": in.DebtRepayments,
		"emergencyFund":  in.EmergencyFund,
		"monthlyTopUp":   in.MonthlyTopUp,
	} {
		if err := requireAmount(field, v); err != nil {
			return nil, err
		}
	}
	if in.CushionMonths < 0 {
		return nil, invalidInput("cushionMonths", "months must not be negative")
	}

	freeCash := in.MonthlyIncome - in.FixedExpenses - in.DebtRepayments
	if freeCash < 0 {
		freeCash = 0
	}
	m := &BriefMetrics{FreeCash: freeCash}
	if in.MonthlyIncome > 0 {
		m.SavingsRate = freeCash / in.MonthlyIncome * 100
		m.DebtToIncome = in.DebtRepayments / in.MonthlyIncome * 100
	}
	m.TargetCushion = float64(in.CushionMonths) * (in.FixedExpenses + in.DebtRepayments)
	m.CushionGap = m.TargetCushion - in.EmergencyFund
	if in.MonthlyTopUp > 0 && m.CushionGap > 0 {
		m.MonthsToTarget = m.CushionGap / in.MonthlyTopUp
	}
	return m, nil
}

// Debt is one outstanding balance with its annual interest rate in percent.
type Debt struct {
	Rate    float64 `json:"rate"`
	Balance float64 `json:"balance"`
}

// AvalancheMonth is one row of the payoff schedule.
type AvalancheMonth struct {
	Month          int       `json:"month"`
	Balances       []float64 `json:"balances"`
	TotalRemaining float64   `json:"totalRemaining"`
}

// avalancheCapMonths stops runaway schedules where payments never outpace
// interest.
const avalancheCapMonths = 600

// AvalancheSchedule runs a highest-rate-first payoff of the given debts with
// a fixed monthly payment and returns the month-by-month schedule plus the
// payoff month. Balances under one rand are treated as settled.
func AvalancheSchedule(debts []Debt, monthlyPayment float64) ([]AvalancheMonth, int, error) {
	if err := requireAmount("monthlyPayment", monthlyPayment); err != nil {
		return nil, 0, err
	}
	working := make([]Debt, 0, len(debts))
	for _, d := range debts {
		if err := requireAmount("debts.balance", d.Balance); err != nil {
			return nil, 0, err
		}
		if d.Rate < 0 {
			return nil, 0, invalidInput("debts.rate", "rate must not be negative")
		}
		if d.Balance > 0 {
			working = append(working, d)
		}
	}
	// Highest rate first.
	for i := 1; i < len(working); i++ {
		for j := i; j > 0 && working[j].Rate > working[j-1].Rate; j-- {
			working[j], working[j-1] = working[j-1], working[j]
		}
	}

	var schedule []AvalancheMonth
	month := 0
	for month < avalancheCapMonths {
		remaining := 0
		for _, d := range working {
			if d.Balance > 1 {
				remaining++
			}
		}
		if remaining == 0 {
			break
		}
		month++
		payment := monthlyPayment
		row := AvalancheMonth{Month: month}
		var total float64
		for i := range working {
			d := &working[i]
			if d.Balance <= 0 {
				row.Balances = append(row.Balances, 0)
				continue
			}
			interest := d.Balance * (d.Rate / 100) / 12
			applied := payment
			if due := d.Balance + interest; applied > due {
				applied = due
			}
			d.Balance = d.Balance + interest - applied
			if d.Balance < 0 {
				d.Balance = 0
			}
			payment -= applied
			if payment < 0 {
				payment = 0
			}
			row.Balances = append(row.Balances, d.Balance)
			if d.Balance > 1 {
				total += d.Balance
			}
		}
		row.TotalRemaining = total
		schedule = append(schedule, row)
	}
	return schedule, month, nil
}
