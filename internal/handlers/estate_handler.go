package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MrSir504/Navigate-Tools-2.1/internal/engine"
)

// CalculateEstateHandler runs the estate liquidity stress test: settlement
// costs at death against the liquid assets available to pay them.
func CalculateEstateHandler(c *gin.Context) {
	var input engine.EstateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	table := resolveTable(c)
	if table == nil {
		return
	}

	result, err := engine.EstateLiquidity(input, table)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"taxYear": table.Year, "result": result})
}

// ExportEstateHandler renders the estate stress test as a spreadsheet.
func ExportEstateHandler(c *gin.Context) {
	var input engine.EstateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	table := resolveTable(c)
	if table == nil {
		return
	}

	result, err := engine.EstateLiquidity(input, table)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	writeSummaryWorkbook(c, "estate", "Estate Liquidity Summary", []exportRow{
		{"Tax year", table.Year},
		{"Gross estate", rand2(result.GrossEstate)},
		{"Net estate", rand2(result.NetEstate)},
		{"Capital gains tax at death", rand2(result.CGT)},
		{"Estate duty", rand2(result.EstateDuty)},
		{"Executor fees", rand2(result.ExecutorFees)},
		{"Total settlement costs", rand2(result.TotalCosts)},
		{"Liquid assets available", rand2(result.LiquidAssets)},
		{"Liquidity gap", rand2(result.LiquidityGap)},
		{"Shortfall", rand2(result.Shortfall)},
	})
}
