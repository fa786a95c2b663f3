package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MrSir504/Navigate-Tools-2.1/config"
	"github.com/MrSir504/Navigate-Tools-2.1/models"
)

type productInput struct {
	Name                 string  `json:"name" binding:"required"`
	AnnualRate           float64 `json:"annualRate" binding:"required"`
	TermYears            int     `json:"termYears" binding:"required"`
	DividendTaxRate      float64 `json:"dividendTaxRate"`
	BrokerCommissionRate float64 `json:"brokerCommissionRate"`
	BonusFormula         string  `json:"bonusFormula"`
	MinimumInvestment    float64 `json:"minimumInvestment"`
	Increment            float64 `json:"increment"`
	Active               *bool   `json:"active"`
}

// ListProductsHandler returns the quotable product catalogue. "all=true"
// includes retired products for the admin view.
func ListProductsHandler(c *gin.Context) {
	query := config.DB.Model(&models.Product{}).Order("name")
	if c.Query("all") != "true" {
		query = query.Where("active = ?", true)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch products"})
		return
	}
	if products == nil {
		products = make([]models.Product, 0)
	}
	c.JSON(http.StatusOK, products)
}

// CreateProductHandler adds a product to the catalogue.
func CreateProductHandler(c *gin.Context) {
	var input productInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := models.Product{
		Name:                 input.Name,
		AnnualRate:           input.AnnualRate,
		TermYears:            input.TermYears,
		DividendTaxRate:      input.DividendTaxRate,
		BrokerCommissionRate: input.BrokerCommissionRate,
		BonusFormula:         input.BonusFormula,
		MinimumInvestment:    input.MinimumInvestment,
		Increment:            input.Increment,
		Active:               true,
	}
	if input.Active != nil {
		product.Active = *input.Active
	}

	if err := config.DB.Create(&product).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Failed to create product: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, product)
}

// UpdateProductHandler updates a catalogue entry.
func UpdateProductHandler(c *gin.Context) {
	var product models.Product
	if err := config.DB.First(&product, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var input productInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product.Name = input.Name
	product.AnnualRate = input.AnnualRate
	product.TermYears = input.TermYears
	product.DividendTaxRate = input.DividendTaxRate
	product.BrokerCommissionRate = input.BrokerCommissionRate
	product.BonusFormula = input.BonusFormula
	product.MinimumInvestment = input.MinimumInvestment
	product.Increment = input.Increment
	if input.Active != nil {
		product.Active = *input.Active
	}

	if err := config.DB.Save(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// DeleteProductHandler retires a product. Soft delete keeps historic quotes
// resolvable.
func DeleteProductHandler(c *gin.Context) {
	if result := config.DB.Delete(&models.Product{}, c.Param("id")); result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
	} else if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	} else {
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
