package engine

// EstateAsset is a non-liquid asset carrying a capital gain at death.
type EstateAsset struct {
	MarketValue float64 `json:"marketValue"`
	BaseCost    float64 `json:"baseCost"`
}

// EstateInput collects the estate liquidity stress-test inputs.
type EstateInput struct {
	Cash                  float64       `json:"cash"`
	LifeInsuranceToEstate float64       `json:"lifeInsuranceToEstate"`
	Properties            []float64     `json:"properties"`
	Investments           []EstateAsset `json:"investments"`
	OtherAssets           float64       `json:"otherAssets"`
	Debts                 float64       `json:"debts"`
	MedicalBills          float64       `json:"medicalBills"`
	CashBequests          float64       `json:"cashBequests"`
	SpouseBequest         float64       `json:"spouseBequest"`
	PBOBequest            float64       `json:"pboBequest"`
	HasSurvivingSpouse    bool          `json:"hasSurvivingSpouse"`
	MarginalTaxRate       float64       `json:"marginalTaxRate"`
	ExecutorFeeRate       float64       `json:"executorFeeRate"`
}

// EstateResult reports the settlement costs at death against the liquid
// assets available to pay them. LiquidityGap is signed (costs minus liquid
// assets); Shortfall floors it at zero.
type EstateResult struct {
	GrossEstate  float64 `json:"grossEstate"`
	NetEstate    float64 `json:"netEstate"`
	CGT          float64 `json:"cgt"`
	EstateDuty   float64 `json:"estateDuty"`
	ExecutorFees float64 `json:"executorFees"`
	TotalCosts   float64 `json:"totalCosts"`
	LiquidAssets float64 `json:"liquidAssets"`
	LiquidityGap float64 `json:"liquidityGap"`
	Shortfall    float64 `json:"shortfall"`
}

// EstateDuty computes duty on the net estate after spouse and PBO bequests
// and the abatement: the lower rate up to the threshold, the higher rate on
// the remainder. A surviving spouse defers the duty entirely.
func EstateDuty(netValue, spouseBequest, pboBequest float64, hasSurvivingSpouse bool, t *TaxTable) float64 {
	dutiable := netValue - spouseBequest - pboBequest
	if dutiable < 0 {
		dutiable = 0
	}
	dutiable -= t.Estate.Abatement
	if dutiable <= 0 || hasSurvivingSpouse {
		return 0
	}
	if dutiable <= t.Estate.RateThreshold {
		return dutiable * t.Estate.LowerRate
	}
	return t.Estate.RateThreshold*t.Estate.LowerRate + (dutiable-t.Estate.RateThreshold)*t.Estate.HigherRate
}

// CapitalGainsAtDeath totals the gains over base cost, applies the death
// exclusion and the inclusion rate, and taxes the included amount at the
// client's marginal rate.
func CapitalGainsAtDeath(assets []EstateAsset, marginalRate float64, t *TaxTable) float64 {
	var totalGain float64
	for _, a := range assets {
		if gain := a.MarketValue - a.BaseCost; gain > 0 {
			totalGain += gain
		}
	}
	taxableGain := totalGain - t.Estate.CGTDeathExclusion
	if taxableGain < 0 {
		taxableGain = 0
	}
	return taxableGain * t.Estate.CGTInclusionRate * marginalRate
}

// EstateLiquidity stress-tests the estate for executor fees, CGT at death and
// estate duty, and surfaces the liquidity gap against cash and life insurance
// payable to the estate.
func EstateLiquidity(in EstateInput, t *TaxTable) (*EstateResult, error) {
	for field, v := range map[string]float64{
		"cash":                  in.Cash,
		"lifeInsuranceToEstate": in.LifeInsuranceToEstate,
		"otherAssets":           in.OtherAssets,
		"debts":                 in.Debts,
		"medicalBills":          in.MedicalBills,
		"cashBequests":          in.CashBequests,
		"spouseBequest":         in.SpouseBequest,
		"pboBequest":            in.PBOBequest,
	} {
		if err := requireAmount(field, v); err != nil {
			return nil, err
		}
	}
	for _, p := range in.Properties {
		if err := requireAmount("properties", p); err != nil {
			return nil, err
		}
	}
	for _, a := range in.Investments {
		if err := requireAmount("investments.marketValue", a.MarketValue); err != nil {
			return nil, err
		}
		if err := requireAmount("investments.baseCost", a.BaseCost); err != nil {
			return nil, err
		}
	}
	if err := requireRate("marginalTaxRate", in.MarginalTaxRate); err != nil {
		return nil, err
	}
	if err := requireRate("executorFeeRate", in.ExecutorFeeRate); err != nil {
		return nil, err
	}
	if t == nil {
		return nil, configError("no tax table configured")
	}

	gross := in.Cash + in.LifeInsuranceToEstate + in.OtherAssets
	for _, p := range in.Properties {
		gross += p
	}
	for _, a := range in.Investments {
		gross += a.MarketValue
	}
	net := gross - in.Debts - in.MedicalBills - in.CashBequests

	cgt := CapitalGainsAtDeath(in.Investments, in.MarginalTaxRate, t)
	duty := EstateDuty(net, in.SpouseBequest, in.PBOBequest, in.HasSurvivingSpouse, t)
	fees := gross * in.ExecutorFeeRate
	costs := cgt + duty + fees

	liquid := in.Cash + in.LifeInsuranceToEstate
	gap := costs - liquid
	shortfall := gap
	if shortfall < 0 {
		shortfall = 0
	}

	return &EstateResult{
		GrossEstate:  gross,
		NetEstate:    net,
		CGT:          cgt,
		EstateDuty:   duty,
		ExecutorFees: fees,
		TotalCosts:   costs,
		LiquidAssets: liquid,
		LiquidityGap: gap,
		Shortfall:    shortfall,
	}, nil
}
