package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MrSir504/Navigate-Tools-2.1/config"
	"github.com/MrSir504/Navigate-Tools-2.1/internal/engine"
	"github.com/MrSir504/Navigate-Tools-2.1/models"
)

type quoteInput struct {
	ProductID uint    `json:"productId" binding:"required"`
	Amount    float64 `json:"amount" binding:"required"`
}

func loadQuote(c *gin.Context) (*engine.QuoteResult, models.Product, bool) {
	var input quoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product and amount are required"})
		return nil, models.Product{}, false
	}

	var product models.Product
	if err := config.DB.Where("active = ?", true).First(&product, input.ProductID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return nil, models.Product{}, false
	}

	result, err := engine.QuoteInvestment(product.ToEngine(), input.Amount)
	if err != nil {
		respondEngineError(c, err)
		return nil, models.Product{}, false
	}
	return result, product, true
}

// QuoteInvestmentHandler projects gross and net income for an amount in a
// catalogue product.
func QuoteInvestmentHandler(c *gin.Context) {
	result, _, ok := loadQuote(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}

// ExportQuoteHandler renders an investment quote as a spreadsheet.
func ExportQuoteHandler(c *gin.Context) {
	result, product, ok := loadQuote(c)
	if !ok {
		return
	}

	rows := []exportRow{
		{"Product", result.Product},
		{"Term", product.TermYears},
		{"Nominal annual rate", pct(product.AnnualRate * 100)},
		{"Investment amount", rand2(result.InvestmentAmount)},
		{"Broker fee", rand2(result.BrokerFee)},
		{"Gross monthly income", rand2(result.GrossMonthlyIncome)},
		{"Gross annual return", rand2(result.GrossAnnualReturn)},
		{"Gross return over term", rand2(result.GrossTotalReturn)},
		{"Net monthly income", rand2(result.NetMonthlyIncome)},
		{"Net annual return", rand2(result.NetAnnualReturn)},
		{"Net return over term", rand2(result.NetTotalReturn)},
	}
	if result.GrossBonus > 0 {
		rows = append(rows,
			exportRow{"End-of-term bonus (gross)", rand2(result.GrossBonus)},
			exportRow{"End-of-term bonus (net)", rand2(result.NetBonus)},
		)
	}

	writeSummaryWorkbook(c, "investment_quote", "Investment Quote", rows)
}
