package engine

// TaxTable carries every figure that changes with the fiscal year: income
// brackets, age rebates, UIF parameters, medical scheme credits, RA deduction
// caps and estate rules. Tables are loaded once from configuration and never
// mutated afterwards, so they are safe to share between concurrent requests.
type TaxTable struct {
	Year           string         `yaml:"year" json:"year"`
	Brackets       []Bracket      `yaml:"brackets" json:"brackets"`
	Rebates        Rebates        `yaml:"rebates" json:"rebates"`
	UIF            UIF            `yaml:"uif" json:"uif"`
	MedicalCredits MedicalCredits `yaml:"medical_credits" json:"medicalCredits"`
	RACap          RACap          `yaml:"ra_cap" json:"raCap"`
	Estate         EstateRules    `yaml:"estate" json:"estate"`
}

// Bracket is one marginal slice of the income tax table. Upper of zero marks
// the open-ended top bracket.
type Bracket struct {
	Lower float64 `yaml:"from" json:"from"`
	Upper float64 `yaml:"to" json:"to,omitempty"`
	Rate  float64 `yaml:"rate" json:"rate"`
}

// Rebates holds the age-dependent annual tax rebates. Primary applies to
// everyone, secondary from age 65, tertiary from age 75.
type Rebates struct {
	Primary   float64 `yaml:"primary" json:"primary"`
	Secondary float64 `yaml:"secondary" json:"secondary"`
	Tertiary  float64 `yaml:"tertiary" json:"tertiary"`
}

// UIF describes the Unemployment Insurance Fund contribution: a flat rate on
// income up to a monthly ceiling.
type UIF struct {
	Rate           float64 `yaml:"rate" json:"rate"`
	MonthlyCeiling float64 `yaml:"monthly_ceiling" json:"monthlyCeiling"`
}

// MedicalCredits holds the monthly Medical Scheme Fees Tax Credit amounts.
// The first two members each earn MainMember, every further dependant earns
// AdditionalDependant.
type MedicalCredits struct {
	MainMember          float64 `yaml:"main_member" json:"mainMember"`
	AdditionalDependant float64 `yaml:"additional_dependant" json:"additionalDependant"`
}

// RACap limits the deductible retirement annuity contribution to the lesser of
// a percentage of income and an absolute annual amount.
type RACap struct {
	PercentOfIncome float64 `yaml:"percent_of_income" json:"percentOfIncome"`
	AnnualMax       float64 `yaml:"annual_max" json:"annualMax"`
}

// EstateRules carries the estate duty, CGT-at-death and executor fee figures.
type EstateRules struct {
	Abatement         float64 `yaml:"abatement" json:"abatement"`
	LowerRate         float64 `yaml:"lower_rate" json:"lowerRate"`
	HigherRate        float64 `yaml:"higher_rate" json:"higherRate"`
	RateThreshold     float64 `yaml:"rate_threshold" json:"rateThreshold"`
	CGTInclusionRate  float64 `yaml:"cgt_inclusion_rate" json:"cgtInclusionRate"`
	CGTDeathExclusion float64 `yaml:"cgt_death_exclusion" json:"cgtDeathExclusion"`
	ExecutorFeeRate   float64 `yaml:"executor_fee_rate" json:"executorFeeRate"`
}

// Validate checks the table for the structural guarantees the calculators
// rely on: at least one bracket, brackets starting at zero, contiguous and
// ascending, sane rates. It returns a ConfigError describing the first
// problem found.
func (t *TaxTable) Validate() error {
	if t == nil {
		return configError("table is nil")
	}
	if t.Year == "" {
		return configError("year label is empty")
	}
	if len(t.Brackets) == 0 {
		return configError("year %s has no income brackets", t.Year)
	}
	if t.Brackets[0].Lower != 0 {
		return configError("year %s: first bracket must start at 0", t.Year)
	}
	for i, b := range t.Brackets {
		if b.Rate < 0 || b.Rate > 1 {
			return configError("year %s: bracket %d rate %.4f out of range", t.Year, i, b.Rate)
		}
		last := i == len(t.Brackets)-1
		if last {
			if b.Upper != 0 {
				return configError("year %s: top bracket must be open-ended", t.Year)
			}
			continue
		}
		if b.Upper <= b.Lower {
			return configError("year %s: bracket %d upper bound %.2f not above lower %.2f", t.Year, i, b.Upper, b.Lower)
		}
		if t.Brackets[i+1].Lower != b.Upper {
			return configError("year %s: bracket %d is not contiguous with its successor", t.Year, i)
		}
	}
	if t.UIF.Rate < 0 || t.UIF.Rate > 1 || t.UIF.MonthlyCeiling < 0 {
		return configError("year %s: UIF parameters out of range", t.Year)
	}
	if t.RACap.PercentOfIncome < 0 || t.RACap.PercentOfIncome > 1 || t.RACap.AnnualMax < 0 {
		return configError("year %s: RA cap parameters out of range", t.Year)
	}
	if t.Rebates.Primary < 0 || t.Rebates.Secondary < 0 || t.Rebates.Tertiary < 0 {
		return configError("year %s: rebates must not be negative", t.Year)
	}
	if t.MedicalCredits.MainMember < 0 || t.MedicalCredits.AdditionalDependant < 0 {
		return configError("year %s: medical credits must not be negative", t.Year)
	}
	return nil
}

// MarginalRate returns the rate of the bracket the given taxable income
// falls into. Zero or negative income sits in the first bracket.
func (t *TaxTable) MarginalRate(income float64) float64 {
	if len(t.Brackets) == 0 {
		return 0
	}
	for _, b := range t.Brackets {
		if b.Upper == 0 || income <= b.Upper {
			return b.Rate
		}
	}
	return t.Brackets[len(t.Brackets)-1].Rate
}
