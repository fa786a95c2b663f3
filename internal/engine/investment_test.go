package engine

import (
	"errors"
	"testing"
)

func onyxIncomePlus() Product {
	return Product{
		Name:                 "Onyx Income Plus",
		AnnualRate:           0.142,
		TermYears:            5,
		DividendTaxRate:      0.20,
		BrokerCommissionRate: 0.04,
		MinimumInvestment:    100000,
		Increment:            5000,
	}
}

func strategicIncome() Product {
	return Product{
		Name:                 "Strategic Income",
		AnnualRate:           0.128,
		TermYears:            5,
		DividendTaxRate:      0.20,
		BrokerCommissionRate: 0.05,
		BonusFormula:         "amount * 0.10",
		MinimumInvestment:    100000,
		Increment:            5000,
	}
}

func TestQuoteInvestment(t *testing.T) {
	res, err := QuoteInvestment(onyxIncomePlus(), 100000)
	if err != nil {
		t.Fatal(err)
	}
	assertRand(t, 14200, res.GrossAnnualReturn, "gross annual return")
	assertRand(t, 14200.0/12, res.GrossMonthlyIncome, "gross monthly income")
	assertRand(t, 71000, res.GrossTotalReturn, "gross total return")
	assertRand(t, 14200.0/12*0.8, res.NetMonthlyIncome, "net monthly income")
	assertRand(t, 56800, res.NetTotalReturn, "net total return")
	assertRand(t, 4000, res.BrokerFee, "broker fee")
	if res.GrossBonus != 0 {
		t.Errorf("no bonus expected, got %.2f", res.GrossBonus)
	}
}

func TestQuoteInvestmentBonusFormula(t *testing.T) {
	res, err := QuoteInvestment(strategicIncome(), 200000)
	if err != nil {
		t.Fatal(err)
	}
	assertRand(t, 20000, res.GrossBonus, "end-of-term bonus")
	assertRand(t, 16000, res.NetBonus, "bonus after dividend tax")
	assertRand(t, 200000*0.128*5+20000, res.GrossTotalReturn, "gross total with bonus")
	assertRand(t, 200000*0.128*0.8*5+16000, res.NetTotalReturn, "net total with bonus")
}

func TestQuoteInvestmentAmountRules(t *testing.T) {
	var invalid *InvalidInputError
	if _, err := QuoteInvestment(onyxIncomePlus(), 95000); !errors.As(err, &invalid) {
		t.Fatalf("below minimum: expected InvalidInputError, got %v", err)
	}
	if _, err := QuoteInvestment(onyxIncomePlus(), 102500); !errors.As(err, &invalid) {
		t.Fatalf("off-increment amount: expected InvalidInputError, got %v", err)
	}
	if _, err := QuoteInvestment(onyxIncomePlus(), -5000); !errors.As(err, &invalid) {
		t.Fatalf("negative amount: expected InvalidInputError, got %v", err)
	}
}

func TestQuoteInvestmentBadProduct(t *testing.T) {
	var cfg *ConfigError
	p := onyxIncomePlus()
	p.TermYears = 0
	if _, err := QuoteInvestment(p, 100000); !errors.As(err, &cfg) {
		t.Fatalf("zero term: expected ConfigError, got %v", err)
	}

	p = strategicIncome()
	p.BonusFormula = "amount *"
	if _, err := QuoteInvestment(p, 100000); !errors.As(err, &cfg) {
		t.Fatalf("broken formula: expected ConfigError, got %v", err)
	}

	p = strategicIncome()
	p.BonusFormula = "amount > 0"
	if _, err := QuoteInvestment(p, 100000); !errors.As(err, &cfg) {
		t.Fatalf("non-numeric formula: expected ConfigError, got %v", err)
	}
}
