package engine

// TaxBeforeRebates computes annual income tax on taxable income by
// accumulating marginal slices bracket by bracket. Income below the first
// threshold pays nothing; income above the top bracket keeps paying the top
// marginal rate on the excess.
func TaxBeforeRebates(income float64, t *TaxTable) (float64, error) {
	if err := requireAmount("taxableIncome", income); err != nil {
		return 0, err
	}
	if t == nil || len(t.Brackets) == 0 {
		return 0, configError("no income brackets configured")
	}

	var tax float64
	for _, b := range t.Brackets {
		if income <= b.Lower {
			break
		}
		slice := income - b.Lower
		if b.Upper != 0 && income > b.Upper {
			slice = b.Upper - b.Lower
		}
		tax += slice * b.Rate
	}
	return tax, nil
}

// RebateForAge returns the total annual rebate: primary for everyone,
// secondary added from age 65, tertiary from age 75.
func RebateForAge(age int, t *TaxTable) (float64, error) {
	if err := requireAge("age", age); err != nil {
		return 0, err
	}
	rebate := t.Rebates.Primary
	if age >= 65 {
		rebate += t.Rebates.Secondary
	}
	if age >= 75 {
		rebate += t.Rebates.Tertiary
	}
	return rebate, nil
}

// AnnualMedicalCredits returns the annual Medical Scheme Fees Tax Credit for
// the given number of scheme members (main member plus dependants).
func AnnualMedicalCredits(members int, t *TaxTable) (float64, error) {
	if members < 0 {
		return 0, invalidInput("medicalDependants", "member count must not be negative")
	}
	if members == 0 {
		return 0, nil
	}
	if members <= 2 {
		return float64(members) * t.MedicalCredits.MainMember * 12, nil
	}
	return 2*t.MedicalCredits.MainMember*12 + float64(members-2)*t.MedicalCredits.AdditionalDependant*12, nil
}

// ApplyRebates subtracts the age rebate and then the medical credits from
// gross tax. Each subtraction floors at zero; the result is never negative.
func ApplyRebates(grossTax float64, age, medicalMembers int, t *TaxTable) (float64, error) {
	if err := requireAmount("grossTax", grossTax); err != nil {
		return 0, err
	}
	rebate, err := RebateForAge(age, t)
	if err != nil {
		return 0, err
	}
	credits, err := AnnualMedicalCredits(medicalMembers, t)
	if err != nil {
		return 0, err
	}
	afterRebates := grossTax - rebate
	if afterRebates < 0 {
		afterRebates = 0
	}
	net := afterRebates - credits
	if net < 0 {
		net = 0
	}
	return net, nil
}

// SalaryInput is the salary tax calculator's request record. All amounts are
// annual rand figures.
type SalaryInput struct {
	GrossIncome       float64 `json:"grossIncome"`
	RAContribution    float64 `json:"raContribution"`
	Age               int     `json:"age"`
	MedicalDependants int     `json:"medicalDependants"`
}

// SalaryResult is the derived salary breakdown consumed by the UI and the
// spreadsheet export.
type SalaryResult struct {
	TaxableIncome      float64 `json:"taxableIncome"`
	TaxBeforeRebates   float64 `json:"taxBeforeRebates"`
	PAYEBeforeCredits  float64 `json:"payeBeforeCredits"`
	MedicalCredits     float64 `json:"medicalCredits"`
	PAYE               float64 `json:"paye"`
	PAYEMonthly        float64 `json:"payeMonthly"`
	UIF                float64 `json:"uif"`
	UIFMonthly         float64 `json:"uifMonthly"`
	NetIncome          float64 `json:"netIncome"`
	NetIncomeMonthly   float64 `json:"netIncomeMonthly"`
	MarginalRate       float64 `json:"marginalRate"`
	DeductibleRAAmount float64 `json:"deductibleRaAmount"`
}

// CalculateSalary produces the full PAYE/UIF breakdown for an annual salary:
// RA contributions reduce taxable income up to the cap, tax is computed on
// the remainder, rebates and medical credits come off, UIF is a capped flat
// rate on gross income.
func CalculateSalary(in SalaryInput, t *TaxTable) (*SalaryResult, error) {
	if err := requireAmount("grossIncome", in.GrossIncome); err != nil {
		return nil, err
	}
	if err := requireAmount("raContribution", in.RAContribution); err != nil {
		return nil, err
	}
	if t == nil || len(t.Brackets) == 0 {
		return nil, configError("no income brackets configured")
	}

	ra, err := RADeduction(in.GrossIncome, in.RAContribution, t)
	if err != nil {
		return nil, err
	}
	taxable := in.GrossIncome - ra.Deductible
	if taxable < 0 {
		taxable = 0
	}

	grossTax, err := TaxBeforeRebates(taxable, t)
	if err != nil {
		return nil, err
	}
	rebate, err := RebateForAge(in.Age, t)
	if err != nil {
		return nil, err
	}
	payeBeforeCredits := grossTax - rebate
	if payeBeforeCredits < 0 {
		payeBeforeCredits = 0
	}
	credits, err := AnnualMedicalCredits(in.MedicalDependants, t)
	if err != nil {
		return nil, err
	}
	paye := payeBeforeCredits - credits
	if paye < 0 {
		paye = 0
	}

	uifBase := in.GrossIncome
	if ceiling := t.UIF.MonthlyCeiling * 12; uifBase > ceiling {
		uifBase = ceiling
	}
	uif := uifBase * t.UIF.Rate

	net := in.GrossIncome - paye - uif
	return &SalaryResult{
		TaxableIncome:      taxable,
		TaxBeforeRebates:   grossTax,
		PAYEBeforeCredits:  payeBeforeCredits,
		MedicalCredits:     credits,
		PAYE:               paye,
		PAYEMonthly:        paye / 12,
		UIF:                uif,
		UIFMonthly:         uif / 12,
		NetIncome:          net,
		NetIncomeMonthly:   net / 12,
		MarginalRate:       t.MarginalRate(taxable),
		DeductibleRAAmount: ra.Deductible,
	}, nil
}
