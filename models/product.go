package models

import (
	"gorm.io/gorm"

	"github.com/MrSir504/Navigate-Tools-2.1/internal/engine"
)

// Product is one row of the investment product catalogue. BonusFormula is a
// govaluate expression over "amount" evaluated at quote time, so product
// terms can change without a deploy.
type Product struct {
	gorm.Model
	Name                 string  `json:"name" gorm:"unique;not null"`
	AnnualRate           float64 `json:"annualRate"`
	TermYears            int     `json:"termYears"`
	DividendTaxRate      float64 `json:"dividendTaxRate"`
	BrokerCommissionRate float64 `json:"brokerCommissionRate"`
	BonusFormula         string  `json:"bonusFormula"`
	MinimumInvestment    float64 `json:"minimumInvestment"`
	Increment            float64 `json:"increment"`
	Active               bool    `json:"active" gorm:"default:true"`
}

// ToEngine converts the catalogue row into the engine's value object.
func (p *Product) ToEngine() engine.Product {
	return engine.Product{
		Name:                 p.Name,
		AnnualRate:           p.AnnualRate,
		TermYears:            p.TermYears,
		DividendTaxRate:      p.DividendTaxRate,
		BrokerCommissionRate: p.BrokerCommissionRate,
		BonusFormula:         p.BonusFormula,
		MinimumInvestment:    p.MinimumInvestment,
		Increment:            p.Increment,
	}
}
