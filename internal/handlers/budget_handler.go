package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MrSir504/Navigate-Tools-2.1/internal/engine"
)

type budgetInput struct {
	MonthlyIncome float64              `json:"monthlyIncome"`
	Expenses      []engine.ExpenseItem `json:"expenses"`
}

// CalculateBudgetHandler totals monthly expenses against income.
func CalculateBudgetHandler(c *gin.Context) {
	var input budgetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := engine.CalculateBudget(input.MonthlyIncome, input.Expenses)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// ExportBudgetHandler renders the budget split as a spreadsheet, one row per
// expense line.
func ExportBudgetHandler(c *gin.Context) {
	var input budgetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := engine.CalculateBudget(input.MonthlyIncome, input.Expenses)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	rows := []exportRow{{"Monthly income", rand2(input.MonthlyIncome)}}
	for _, e := range input.Expenses {
		rows = append(rows, exportRow{e.Category, rand2(e.Amount)})
	}
	rows = append(rows,
		exportRow{"Total expenses", rand2(result.TotalExpenses)},
		exportRow{"Remaining budget", rand2(result.RemainingBudget)},
		exportRow{"Savings potential", rand2(result.SavingsPotential)},
	)

	writeSummaryWorkbook(c, "budget", "Monthly Budget", rows)
}
