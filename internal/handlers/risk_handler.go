package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MrSir504/Navigate-Tools-2.1/internal/engine"
)

type riskAnswers struct {
	Answers []int `json:"answers" binding:"required"`
}

// GetRiskQuestionnaireHandler returns the questionnaire and the profile
// bands so the frontend can render both.
func GetRiskQuestionnaireHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"questions": engine.RiskQuestions,
		"profiles":  engine.RiskProfiles,
	})
}

// ScoreRiskProfileHandler scores a completed questionnaire into a risk
// profile with its suggested equity allocation.
func ScoreRiskProfileHandler(c *gin.Context) {
	var input riskAnswers
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := engine.ScoreRiskProfile(input.Answers)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// ExportRiskProfileHandler renders the scored profile as a spreadsheet.
func ExportRiskProfileHandler(c *gin.Context) {
	var input riskAnswers
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := engine.ScoreRiskProfile(input.Answers)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	rows := []exportRow{
		{"Score", result.Score},
		{"Maximum score", result.MaxScore},
		{"Profile", result.Profile.Name},
		{"Suggested equity allocation", pct(float64(result.Profile.EquityPercent))},
		{"Note", result.Profile.Note},
	}
	for i, q := range engine.RiskQuestions {
		if i < len(input.Answers) && input.Answers[i] >= 0 && input.Answers[i] < len(q.Options) {
			rows = append(rows, exportRow{q.Prompt, q.Options[input.Answers[i]]})
		}
	}

	writeSummaryWorkbook(c, "risk_profile", "Risk Profile", rows)
}
