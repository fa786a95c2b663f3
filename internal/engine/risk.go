package engine

// RiskQuestion is one questionnaire item: a prompt, its answer options and
// the ordinal weight each option contributes to the aggregate score.
type RiskQuestion struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
	Weights []int    `json:"weights"`
}

// RiskProfile is one discrete risk category with its score range and the
// suggested equity allocation for it.
type RiskProfile struct {
	Name          string `json:"name"`
	MinScore      int    `json:"minScore"`
	MaxScore      int    `json:"maxScore"`
	EquityPercent int    `json:"equityPercent"`
	Note          string `json:"note"`
}

// RiskResult is the scored outcome of a completed questionnaire.
type RiskResult struct {
	Score    int         `json:"score"`
	MaxScore int         `json:"maxScore"`
	Profile  RiskProfile `json:"profile"`
}

// RiskQuestions is the fixed advisor questionnaire.
var RiskQuestions = []RiskQuestion{
	{
		Prompt:  "Time horizon for this money?",
		Options: []string{"<3 years", "3-5 years", "5-10 years", "10+ years"},
		Weights: []int{0, 2, 4, 6},
	},
	{
		Prompt:  "Primary goal?",
		Options: []string{"Preserve capital", "Income & low volatility", "Balanced growth", "Max growth"},
		Weights: []int{0, 2, 4, 6},
	},
	{
		Prompt:  "Comfort with drawdowns?",
		Options: []string{"<5%", "5-10%", "10-20%", "20%+"},
		Weights: []int{0, 2, 4, 6},
	},
	{
		Prompt:  "Reaction to a 15% drop?",
		Options: []string{"Sell to stop loss", "Reduce exposure", "Hold", "Buy more"},
		Weights: []int{0, 1, 4, 6},
	},
	{
		Prompt:  "Experience with markets?",
		Options: []string{"None", "Some funds", "Multi-asset / ETFs", "Direct equities / structured products"},
		Weights: []int{0, 2, 4, 6},
	},
	{
		Prompt:  "Liquidity need?",
		Options: []string{"Need access monthly", "Quarterly", "Annually", "Can lock for 3+ yrs"},
		Weights: []int{0, 1, 3, 5},
	},
}

// RiskProfiles buckets aggregate scores into categories. Ranges are
// inclusive and cover 0 through the questionnaire maximum.
var RiskProfiles = []RiskProfile{
	{Name: "Conservative", MinScore: 0, MaxScore: 8, EquityPercent: 20, Note: "Protect capital, lower volatility, income focus."},
	{Name: "Cautious", MinScore: 9, MaxScore: 14, EquityPercent: 35, Note: "Some growth with downside buffers; diversify with income assets."},
	{Name: "Balanced", MinScore: 15, MaxScore: 20, EquityPercent: 55, Note: "Blend growth and stability; multi-asset high equity."},
	{Name: "Growth", MinScore: 21, MaxScore: 26, EquityPercent: 70, Note: "Long horizon, accepts volatility; equity-led."},
	{Name: "Aggressive", MinScore: 27, MaxScore: 36, EquityPercent: 85, Note: "Maximise growth; concentrated equity/alternatives appropriate."},
}

// ScoreRiskProfile maps questionnaire answers (the chosen option index per
// question, in order) to an aggregate score, buckets it into a profile and
// returns the suggested equity allocation. The answer slice must cover every
// question.
func ScoreRiskProfile(answers []int) (*RiskResult, error) {
	if len(answers) != len(RiskQuestions) {
		return nil, invalidInput("answers", "questionnaire requires an answer per question")
	}
	score := 0
	maxScore := 0
	for i, q := range RiskQuestions {
		a := answers[i]
		if a < 0 || a >= len(q.Weights) {
			return nil, invalidInput("answers", "answer out of range for question "+q.Prompt)
		}
		score += q.Weights[a]
		maxScore += q.Weights[len(q.Weights)-1]
	}
	for _, p := range RiskProfiles {
		if score >= p.MinScore && score <= p.MaxScore {
			return &RiskResult{Score: score, MaxScore: maxScore, Profile: p}, nil
		}
	}
	// Scores cannot escape the configured ranges, but fall back to the most
	// aggressive bucket rather than fail.
	return &RiskResult{Score: score, MaxScore: maxScore, Profile: RiskProfiles[len(RiskProfiles)-1]}, nil
}
