package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MrSir504/Navigate-Tools-2.1/internal/engine"
)

type raInput struct {
	AnnualIncome   float64 `json:"annualIncome"`
	RAContribution float64 `json:"raContribution"`
}

// CalculateRAHandler reports the deductible portion of a retirement annuity
// contribution and the tax saving it buys at the client's marginal rate.
func CalculateRAHandler(c *gin.Context) {
	var input raInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	table := resolveTable(c)
	if table == nil {
		return
	}

	result, err := engine.RADeduction(input.AnnualIncome, input.RAContribution, table)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"taxYear": table.Year, "result": result})
}

// ExportRAHandler renders the RA rebate summary as a spreadsheet.
func ExportRAHandler(c *gin.Context) {
	var input raInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	table := resolveTable(c)
	if table == nil {
		return
	}

	result, err := engine.RADeduction(input.AnnualIncome, input.RAContribution, table)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	writeSummaryWorkbook(c, "ra_rebate", "RA Contribution Summary", []exportRow{
		{"Tax year", table.Year},
		{"Annual income", rand2(input.AnnualIncome)},
		{"RA contribution", rand2(input.RAContribution)},
		{"Deductible this year", rand2(result.Deductible)},
		{"Excess carried forward", rand2(result.Excess)},
		{"Annual deduction cap", rand2(result.DeductibleCap)},
		{"Remaining room", rand2(result.RemainingRoom)},
		{"Marginal rate", pct(result.MarginalRate * 100)},
		{"Estimated tax saving", rand2(result.TaxSaving)},
	})
}
