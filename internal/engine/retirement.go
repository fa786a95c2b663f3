package engine

import "math"

// maxDrawdownRate is the legislative ceiling on annual living-annuity
// withdrawals.
const maxDrawdownRate = 0.175

// depletionTailPayout is the capital level below which the remainder is paid
// out in full as a final year's income.
const depletionTailPayout = 125000

// depletionCapYears stops runaway simulations where growth outpaces the
// withdrawal and the capital never depletes.
const depletionCapYears = 100

// Provision is one existing retirement provision projected forward to
// retirement date.
type Provision struct {
	Type                 string  `json:"type"`
	CurrentValue         float64 `json:"currentValue"`
	AnnualReturn         float64 `json:"annualReturn"`
	MonthlyContribution  float64 `json:"monthlyContribution"`
	ContributionIncrease float64 `json:"contributionIncrease"`
}

// RetirementInput collects the retirement projection inputs. Rates are
// fractions, incomes monthly rand amounts.
type RetirementInput struct {
	DesiredMonthlyIncome float64     `json:"desiredMonthlyIncome"`
	AnnualIncrease       float64     `json:"annualIncrease"`
	InflationRate        float64     `json:"inflationRate"`
	YearsToRetirement    int         `json:"yearsToRetirement"`
	AssumedReturn        float64     `json:"assumedReturn"`
	PreserveCapital      bool        `json:"preserveCapital"`
	PreservationYears    int         `json:"preservationYears"`
	Provisions           []Provision `json:"provisions"`
}

// RetirementResult is the projected retirement position.
type RetirementResult struct {
	FutureAnnualIncome       float64   `json:"futureAnnualIncome"`
	FutureMonthlyIncome      float64   `json:"futureMonthlyIncome"`
	TotalProvisionValue      float64   `json:"totalProvisionValue"`
	ProvisionValues          []float64 `json:"provisionValues"`
	CapitalRequired          float64   `json:"capitalRequired,omitempty"`
	Shortfall                float64   `json:"shortfall"`
	AdditionalMonthlySavings float64   `json:"additionalMonthlySavings"`
	YearsUntilDepletion      int       `json:"yearsUntilDepletion,omitempty"`
	CapitalOverTime          []float64 `json:"capitalOverTime,omitempty"`
}

// FutureValue grows an investment year by year: the balance compounds
// annually while monthly contributions earn intra-year growth, and the
// contribution itself escalates once a year.
func FutureValue(currentValue, annualRate float64, years int, monthlyContribution, contributionIncrease float64) float64 {
	fv := currentValue
	monthlyRate := math.Pow(1+annualRate, 1.0/12) - 1
	annualContribution := monthlyContribution * 12
	for y := 0; y < years; y++ {
		fv *= 1 + annualRate
		for m := 0; m < 12; m++ {
			fv += (annualContribution / 12) * math.Pow(1+monthlyRate, float64(11-m))
		}
		annualContribution *= 1 + contributionIncrease
	}
	return fv
}

// YearsUntilDepletion simulates annual withdrawals against the legislative
// drawdown ceiling and returns how many years the capital lasts along with
// the capital path. Once the balance falls to the tail threshold the
// remainder is paid out in a final year. The simulation stops at
// depletionCapYears; a non-zero final path entry means the capital outlasts
// the horizon.
func YearsUntilDepletion(capital, annualIncome, assumedReturn float64) (int, []float64) {
	current := capital
	years := 0
	path := []float64{current}
	for current > 0 && years < depletionCapYears {
		if current <= depletionTailPayout {
			years++
			path = append(path, 0)
			break
		}
		withdrawal := annualIncome
		if max := current * maxDrawdownRate; withdrawal > max {
			withdrawal = max
		}
		current -= withdrawal
		current *= 1 + assumedReturn
		years++
		if current < 0 {
			current = 0
		}
		path = append(path, current)
	}
	return years, path
}

// AdditionalMonthlySavings returns the level monthly saving that grows to the
// shortfall over the given horizon at the given return. A zero return
// degrades to straight-line accumulation.
func AdditionalMonthlySavings(shortfall float64, years int, averageReturn float64) float64 {
	if shortfall <= 0 || years <= 0 {
		return 0
	}
	if averageReturn <= 0 {
		return shortfall / float64(years) / 12
	}
	fvFactor := (math.Pow(1+averageReturn, float64(years)) - 1) / averageReturn
	return shortfall / fvFactor / 12
}

// capitalRequired returns the capital needed at retirement to sustain the
// income: the greater of the perpetuity capital and the annuity capital
// covering twenty years after the preservation period. Callers must ensure
// AssumedReturn is positive.
func capitalRequired(futureAnnualIncome float64, in RetirementInput) float64 {
	perpetuity := futureAnnualIncome / in.AssumedReturn

	const remainingYears = 20
	escalation := math.Pow(1+in.InflationRate, float64(in.PreservationYears)) *
		math.Pow(1+in.AnnualIncrease, float64(in.PreservationYears))
	incomeAfterPreservation := futureAnnualIncome * escalation
	annuityFactor := (1 - math.Pow(1+in.AssumedReturn, -remainingYears)) / in.AssumedReturn
	annuityCapital := incomeAfterPreservation * annuityFactor /
		math.Pow(1+in.AssumedReturn, float64(in.PreservationYears))

	if annuityCapital > perpetuity {
		return annuityCapital
	}
	return perpetuity
}

// ProjectRetirement grows the existing provisions to retirement date,
// inflates the desired income, and either sizes the capital required to
// preserve it or simulates depletion of the accumulated capital.
func ProjectRetirement(in RetirementInput, _ *TaxTable) (*RetirementResult, error) {
	if err := requireAmount("desiredMonthlyIncome", in.DesiredMonthlyIncome); err != nil {
		return nil, err
	}
	if in.YearsToRetirement < 0 {
		return nil, invalidInput("yearsToRetirement", "years must not be negative")
	}
	if in.PreservationYears < 0 {
		return nil, invalidInput("preservationYears", "years must not be negative")
	}
	for _, rate := range []struct {
		field string
		v     float64
	}{
		{"inflationRate", in.InflationRate},
		{"annualIncrease", in.AnnualIncrease},
		{"assumedReturn", in.AssumedReturn},
	} {
		if err := requireRate(rate.field, rate.v); err != nil {
			return nil, err
		}
	}
	// Preserving capital on a zero return would need unbounded capital.
	if in.PreserveCapital && in.AssumedReturn <= 0 {
		return nil, invalidInput("assumedReturn", "a positive return is required to preserve capital")
	}
	for _, p := range in.Provisions {
		if err := requireAmount("provisions.currentValue", p.CurrentValue); err != nil {
			return nil, err
		}
		if err := requireAmount("provisions.monthlyContribution", p.MonthlyContribution); err != nil {
			return nil, err
		}
	}

	annualIncome := in.DesiredMonthlyIncome * 12
	growth := math.Pow(1+in.InflationRate, float64(in.YearsToRetirement)) *
		math.Pow(1+in.AnnualIncrease, float64(in.YearsToRetirement))
	futureAnnual := annualIncome * growth

	res := &RetirementResult{
		FutureAnnualIncome:  futureAnnual,
		FutureMonthlyIncome: futureAnnual / 12,
	}
	for _, p := range in.Provisions {
		fv := FutureValue(p.CurrentValue, p.AnnualReturn, in.YearsToRetirement, p.MonthlyContribution, p.ContributionIncrease)
		res.ProvisionValues = append(res.ProvisionValues, fv)
		res.TotalProvisionValue += fv
	}

	if in.PreserveCapital {
		res.CapitalRequired = capitalRequired(futureAnnual, in)
		shortfall := res.CapitalRequired - res.TotalProvisionValue
		if shortfall < 0 {
			shortfall = 0
		}
		res.Shortfall = shortfall
		res.AdditionalMonthlySavings = AdditionalMonthlySavings(shortfall, in.YearsToRetirement, in.AssumedReturn)
		return res, nil
	}

	years, path := YearsUntilDepletion(res.TotalProvisionValue, futureAnnual, in.AssumedReturn)
	res.YearsUntilDepletion = years
	res.CapitalOverTime = path
	return res, nil
}
