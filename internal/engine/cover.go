package engine

// CoverInput collects the life / disability / critical-illness needs analysis
// inputs. Amounts are rand; ReplacementRatio is a fraction of income.
type CoverInput struct {
	AnnualIncome       float64 `json:"annualIncome"`
	Debts              float64 `json:"debts"`
	EducationFund      float64 `json:"educationFund"`
	FinalExpenses      float64 `json:"finalExpenses"`
	ExistingLife       float64 `json:"existingLife"`
	ExistingDisability float64 `json:"existingDisability"`
	ExistingCritical   float64 `json:"existingCritical"`
	ReplacementRatio   float64 `json:"replacementRatio"`
	SupportYears       int     `json:"supportYears"`
}

// CoverResult reports the need and the signed gap per cover line. A positive
// gap is a shortfall, a negative one a surplus.
type CoverResult struct {
	IncomeReplacement float64 `json:"incomeReplacement"`
	LifeNeed          float64 `json:"lifeNeed"`
	LifeGap           float64 `json:"lifeGap"`
	DisabilityNeed    float64 `json:"disabilityNeed"`
	DisabilityGap     float64 `json:"disabilityGap"`
	DisabilityYears   int     `json:"disabilityYears"`
	CriticalNeed      float64 `json:"criticalNeed"`
	CriticalGap       float64 `json:"criticalGap"`
}

// disabilityHorizonYears caps the disability income-replacement horizon.
const disabilityHorizonYears = 15

// CoverGap quantifies life, disability and critical-illness needs and
// compares each against existing cover. The life need sums income
// replacement, debt clearance, education provision and final expenses, each
// independently zero-able. Disability uses a shorter horizon and half the
// education provision; critical illness is a lighter lump sum.
func CoverGap(in CoverInput, _ *TaxTable) (*CoverResult, error) {
	for field, v := range map[string]float64{
		"annualIncome":       in.AnnualIncome,
		"debts":              in.Debts,
		"educationFund":      in.EducationFund,
		"finalExpenses":      in.FinalExpenses,
		"existingLife":       in.ExistingLife,
		"existingDisability": in.ExistingDisability,
		"existingCritical":   in.ExistingCritical,
	} {
		if err := requireAmount(field, v); err != nil {
			return nil, err
		}
	}
	if err := requireRate("replacementRatio", in.ReplacementRatio); err != nil {
		return nil, err
	}
	if in.SupportYears < 0 {
		return nil, invalidInput("supportYears", "years must not be negative")
	}

	incomeReplacement := in.AnnualIncome * in.ReplacementRatio * float64(in.SupportYears)
	lifeNeed := incomeReplacement + in.Debts + in.EducationFund + in.FinalExpenses

	diYears := in.SupportYears
	if diYears > disabilityHorizonYears {
		diYears = disabilityHorizonYears
	}
	diNeed := in.AnnualIncome*in.ReplacementRatio*float64(diYears) + in.Debts + in.EducationFund*0.5

	ciNeed := in.AnnualIncome*0.5 + in.EducationFund*0.3 + in.FinalExpenses

	return &CoverResult{
		IncomeReplacement: incomeReplacement,
		LifeNeed:          lifeNeed,
		LifeGap:           lifeNeed - in.ExistingLife,
		DisabilityNeed:    diNeed,
		DisabilityGap:     diNeed - in.ExistingDisability,
		DisabilityYears:   diYears,
		CriticalNeed:      ciNeed,
		CriticalGap:       ciNeed - in.ExistingCritical,
	}, nil
}
