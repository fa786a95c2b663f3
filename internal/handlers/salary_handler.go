package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MrSir504/Navigate-Tools-2.1/internal/engine"
	"github.com/MrSir504/Navigate-Tools-2.1/internal/taxconfig"
)

// CalculateSalaryHandler runs the PAYE/UIF breakdown for an annual salary.
func CalculateSalaryHandler(c *gin.Context) {
	var input engine.SalaryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	table := resolveTable(c)
	if table == nil {
		return
	}

	result, err := engine.CalculateSalary(input, table)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"taxYear": table.Year, "result": result})
}

// ExportSalaryHandler renders the salary breakdown as a spreadsheet.
func ExportSalaryHandler(c *gin.Context) {
	var input engine.SalaryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	table := resolveTable(c)
	if table == nil {
		return
	}

	result, err := engine.CalculateSalary(input, table)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	writeSummaryWorkbook(c, "salary_tax", "Salary Tax Summary", []exportRow{
		{"Tax year", table.Year},
		{"Gross annual income", rand2(input.GrossIncome)},
		{"RA contribution", rand2(input.RAContribution)},
		{"Deductible RA amount", rand2(result.DeductibleRAAmount)},
		{"Taxable income", rand2(result.TaxableIncome)},
		{"Tax before rebates", rand2(result.TaxBeforeRebates)},
		{"PAYE before medical credits", rand2(result.PAYEBeforeCredits)},
		{"Medical tax credits", rand2(result.MedicalCredits)},
		{"PAYE (annual)", rand2(result.PAYE)},
		{"PAYE (monthly)", rand2(result.PAYEMonthly)},
		{"UIF (annual)", rand2(result.UIF)},
		{"UIF (monthly)", rand2(result.UIFMonthly)},
		{"Net income (annual)", rand2(result.NetIncome)},
		{"Net income (monthly)", rand2(result.NetIncomeMonthly)},
		{"Marginal rate", pct(result.MarginalRate * 100)},
	})
}

// ListTaxYearsHandler lists the loaded fiscal years and the current default.
func ListTaxYearsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"years":   taxconfig.Years(),
		"current": taxconfig.CurrentYear(),
	})
}

// GetTaxTableHandler returns one fiscal year's full parameter set.
func GetTaxTableHandler(c *gin.Context) {
	table, err := taxconfig.Table(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, table)
}

// ReloadTaxTablesHandler re-reads the tax table directory without a restart.
func ReloadTaxTablesHandler(c *gin.Context) {
	if err := taxconfig.Reload(); err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Tax tables reloaded",
		"years":   taxconfig.Years(),
		"current": taxconfig.CurrentYear(),
	})
}
