package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MrSir504/Navigate-Tools-2.1/internal/engine"
)

// CalculateCoverHandler runs the life, disability and critical-illness needs
// analysis against existing cover.
func CalculateCoverHandler(c *gin.Context) {
	var input engine.CoverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	table := resolveTable(c)
	if table == nil {
		return
	}

	result, err := engine.CoverGap(input, table)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"taxYear": table.Year, "result": result})
}

// ExportCoverHandler renders the cover gap analysis as a spreadsheet.
func ExportCoverHandler(c *gin.Context) {
	var input engine.CoverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	table := resolveTable(c)
	if table == nil {
		return
	}

	result, err := engine.CoverGap(input, table)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	writeSummaryWorkbook(c, "cover_gap", "Cover Gap Analysis", []exportRow{
		{"Annual income", rand2(input.AnnualIncome)},
		{"Income replacement need", rand2(result.IncomeReplacement)},
		{"Life cover need", rand2(result.LifeNeed)},
		{"Existing life cover", rand2(input.ExistingLife)},
		{"Life cover gap", rand2(result.LifeGap)},
		{"Disability cover need", rand2(result.DisabilityNeed)},
		{"Existing disability cover", rand2(input.ExistingDisability)},
		{"Disability cover gap", rand2(result.DisabilityGap)},
		{"Critical illness need", rand2(result.CriticalNeed)},
		{"Existing critical illness cover", rand2(input.ExistingCritical)},
		{"Critical illness gap", rand2(result.CriticalGap)},
	})
}
