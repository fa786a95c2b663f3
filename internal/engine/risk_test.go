package engine

import (
	"errors"
	"testing"
)

func TestScoreRiskProfile(t *testing.T) {
	tests := []struct {
		name        string
		answers     []int
		wantScore   int
		wantProfile string
		wantEquity  int
	}{
		{"all first options", []int{0, 0, 0, 0, 0, 0}, 0, "Conservative", 20},
		{"all last options", []int{3, 3, 3, 3, 3, 3}, 35, "Aggressive", 85},
		{"balanced middle", []int{2, 2, 1, 2, 1, 1}, 17, "Balanced", 55},
		{"cautious", []int{1, 1, 1, 1, 1, 1}, 10, "Cautious", 35},
		{"growth", []int{3, 3, 2, 2, 2, 1}, 25, "Growth", 70},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := ScoreRiskProfile(tc.answers)
			if err != nil {
				t.Fatal(err)
			}
			if res.Score != tc.wantScore {
				t.Errorf("score: want %d, got %d", tc.wantScore, res.Score)
			}
			if res.Profile.Name != tc.wantProfile {
				t.Errorf("profile: want %s, got %s", tc.wantProfile, res.Profile.Name)
			}
			if res.Profile.EquityPercent != tc.wantEquity {
				t.Errorf("equity: want %d, got %d", tc.wantEquity, res.Profile.EquityPercent)
			}
		})
	}
}

func TestScoreRiskProfileDeterministic(t *testing.T) {
	answers := []int{2, 1, 3, 0, 2, 1}
	first, err := ScoreRiskProfile(answers)
	if err != nil {
		t.Fatal(err)
	}
	second, err := ScoreRiskProfile(answers)
	if err != nil {
		t.Fatal(err)
	}
	if first.Score != second.Score || first.Profile != second.Profile {
		t.Error("identical answers produced different profiles")
	}
}

func TestRiskProfileRangesCoverAllScores(t *testing.T) {
	max := 0
	for _, q := range RiskQuestions {
		max += q.Weights[len(q.Weights)-1]
	}
	for score := 0; score <= max; score++ {
		found := false
		for _, p := range RiskProfiles {
			if score >= p.MinScore && score <= p.MaxScore {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("no profile bucket covers score %d", score)
		}
	}
}

func TestScoreRiskProfileErrors(t *testing.T) {
	var invalid *InvalidInputError
	if _, err := ScoreRiskProfile([]int{1, 2}); !errors.As(err, &invalid) {
		t.Fatalf("short answer slice: expected InvalidInputError, got %v", err)
	}
	if _, err := ScoreRiskProfile([]int{0, 0, 0, 0, 0, 9}); !errors.As(err, &invalid) {
		t.Fatalf("out-of-range answer: expected InvalidInputError, got %v", err)
	}
	if _, err := ScoreRiskProfile([]int{0, 0, 0, 0, 0, -1}); !errors.As(err, &invalid) {
		t.Fatalf("negative answer: expected InvalidInputError, got %v", err)
	}
}
