package engine

// RAResult describes how a retirement annuity contribution splits into a
// deductible part and an excess carried to the next year, and what the
// deduction is worth at the client's marginal rate.
type RAResult struct {
	Deductible    float64 `json:"deductible"`
	Excess        float64 `json:"excess"`
	DeductibleCap float64 `json:"deductibleCap"`
	RemainingRoom float64 `json:"remainingRoom"`
	MarginalRate  float64 `json:"marginalRate"`
	TaxSaving     float64 `json:"taxSaving"`
}

// RADeduction applies the RA deduction cap: the deductible amount is the
// lesser of the contribution, the percentage-of-income cap and the absolute
// annual cap. Whatever exceeds the cap is reported as non-deductible excess.
// A zero contribution yields zero deductible and zero excess.
func RADeduction(income, contribution float64, t *TaxTable) (*RAResult, error) {
	if err := requireAmount("income", income); err != nil {
		return nil, err
	}
	if err := requireAmount("contribution", contribution); err != nil {
		return nil, err
	}
	if t == nil || len(t.Brackets) == 0 {
		return nil, configError("no income brackets configured")
	}

	cap := income * t.RACap.PercentOfIncome
	if cap > t.RACap.AnnualMax {
		cap = t.RACap.AnnualMax
	}
	deductible := contribution
	if deductible > cap {
		deductible = cap
	}
	excess := contribution - deductible
	room := cap - contribution
	if room < 0 {
		room = 0
	}

	rate := t.MarginalRate(income)
	return &RAResult{
		Deductible:    deductible,
		Excess:        excess,
		DeductibleCap: cap,
		RemainingRoom: room,
		MarginalRate:  rate,
		TaxSaving:     deductible * rate,
	}, nil
}
