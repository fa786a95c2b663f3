package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MrSir504/Navigate-Tools-2.1/internal/engine"
)

// CalculateRetirementHandler projects existing provisions to retirement date
// and reports the capital shortfall and required extra savings.
func CalculateRetirementHandler(c *gin.Context) {
	var input engine.RetirementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	table := resolveTable(c)
	if table == nil {
		return
	}

	result, err := engine.ProjectRetirement(input, table)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"taxYear": table.Year, "result": result})
}

// ExportRetirementHandler renders the retirement projection as a spreadsheet.
func ExportRetirementHandler(c *gin.Context) {
	var input engine.RetirementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	table := resolveTable(c)
	if table == nil {
		return
	}

	result, err := engine.ProjectRetirement(input, table)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	rows := []exportRow{
		{"Desired monthly income (today's rand)", rand2(input.DesiredMonthlyIncome)},
		{"Years to retirement", input.YearsToRetirement},
		{"Inflation assumption", pct(input.InflationRate * 100)},
		{"Required monthly income at retirement", rand2(result.FutureMonthlyIncome)},
		{"Projected provision value", rand2(result.TotalProvisionValue)},
		{"Capital required", rand2(result.CapitalRequired)},
		{"Shortfall", rand2(result.Shortfall)},
		{"Additional monthly savings needed", rand2(result.AdditionalMonthlySavings)},
	}
	for i, p := range input.Provisions {
		rows = append(rows, exportRow{
			fmt.Sprintf("Provision %d (%s) projected value", i+1, p.Type),
			rand2(result.ProvisionValues[i]),
		})
	}
	if result.YearsUntilDepletion > 0 {
		rows = append(rows, exportRow{"Years until capital depletes", result.YearsUntilDepletion})
	}

	writeSummaryWorkbook(c, "retirement", "Retirement Projection", rows)
}
