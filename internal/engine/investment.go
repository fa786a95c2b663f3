package engine

import (
	"math"

	"github.com/Knetic/govaluate"
)

// Product describes one income product in the catalogue. BonusFormula is an
// optional expression over "amount" evaluated at quote time, e.g. a special
// dividend paid at the end of the term.
type Product struct {
	Name                 string  `json:"name"`
	AnnualRate           float64 `json:"annualRate"`
	TermYears            int     `json:"termYears"`
	DividendTaxRate      float64 `json:"dividendTaxRate"`
	BrokerCommissionRate float64 `json:"brokerCommissionRate"`
	BonusFormula         string  `json:"bonusFormula"`
	MinimumInvestment    float64 `json:"minimumInvestment"`
	Increment            float64 `json:"increment"`
}

// QuoteResult is the income projection for an investment amount in a product.
type QuoteResult struct {
	Product            string  `json:"product"`
	InvestmentAmount   float64 `json:"investmentAmount"`
	BrokerFee          float64 `json:"brokerFee"`
	GrossMonthlyIncome float64 `json:"grossMonthlyIncome"`
	GrossAnnualReturn  float64 `json:"grossAnnualReturn"`
	GrossTotalReturn   float64 `json:"grossTotalReturn"`
	NetMonthlyIncome   float64 `json:"netMonthlyIncome"`
	NetAnnualReturn    float64 `json:"netAnnualReturn"`
	NetTotalReturn     float64 `json:"netTotalReturn"`
	GrossBonus         float64 `json:"grossBonus"`
	NetBonus           float64 `json:"netBonus"`
}

// QuoteInvestment projects gross and net income over the product term for an
// investment amount, after dividend tax and any end-of-term bonus. The amount
// must meet the product minimum and be a multiple of the increment.
func QuoteInvestment(p Product, amount float64) (*QuoteResult, error) {
	if err := requireAmount("amount", amount); err != nil {
		return nil, err
	}
	if p.MinimumInvestment > 0 && amount < p.MinimumInvestment {
		return nil, invalidInput("amount", "amount is below the product minimum")
	}
	if p.Increment > 0 && math.Mod(amount, p.Increment) != 0 {
		return nil, invalidInput("amount", "amount must be a multiple of the product increment")
	}
	if err := requireRate("dividendTaxRate", p.DividendTaxRate); err != nil {
		return nil, err
	}
	if p.TermYears <= 0 {
		return nil, configError("product %s has no term", p.Name)
	}

	bonus, err := evaluateBonus(p, amount)
	if err != nil {
		return nil, err
	}

	grossAnnual := amount * p.AnnualRate
	grossMonthly := grossAnnual / 12
	grossTotal := grossAnnual*float64(p.TermYears) + bonus

	netMonthly := grossMonthly * (1 - p.DividendTaxRate)
	netAnnual := netMonthly * 12
	netBonus := bonus * (1 - p.DividendTaxRate)
	netTotal := netAnnual*float64(p.TermYears) + netBonus

	return &QuoteResult{
		Product:            p.Name,
		InvestmentAmount:   amount,
		BrokerFee:          amount * p.BrokerCommissionRate,
		GrossMonthlyIncome: grossMonthly,
		GrossAnnualReturn:  grossAnnual,
		GrossTotalReturn:   grossTotal,
		NetMonthlyIncome:   netMonthly,
		NetAnnualReturn:    netAnnual,
		NetTotalReturn:     netTotal,
		GrossBonus:         bonus,
		NetBonus:           netBonus,
	}, nil
}

func evaluateBonus(p Product, amount float64) (float64, error) {
	if p.BonusFormula == "" {
		return 0, nil
	}
	expr, err := govaluate.NewEvaluableExpression(p.BonusFormula)
	if err != nil {
		return 0, configError("product %s: bad bonus formula: %v", p.Name, err)
	}
	result, err := expr.Evaluate(map[string]interface{}{"amount": amount})
	if err != nil {
		return 0, configError("product %s: bonus formula failed: %v", p.Name, err)
	}
	bonus, ok := result.(float64)
	if !ok {
		return 0, configError("product %s: bonus formula is not numeric", p.Name)
	}
	return bonus, nil
}
