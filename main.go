package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/MrSir504/Navigate-Tools-2.1/config"
	"github.com/MrSir504/Navigate-Tools-2.1/internal/routes"
	"github.com/MrSir504/Navigate-Tools-2.1/internal/taxconfig"
	"github.com/MrSir504/Navigate-Tools-2.1/models"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	config.LoadJwtKey()
	config.ConnectDB()
	config.ConnectRedis()

	if err := config.InitGoogleServices(); err != nil {
		slog.Warn("Narrative drafting disabled", "error", err)
	}

	if err := taxconfig.Load(os.Getenv("TAX_TABLE_DIR")); err != nil {
		slog.Error("Failed to load tax tables", "error", err)
		os.Exit(1)
	}

	if err := config.DB.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Permission{},
		&models.Client{},
		&models.Product{},
		&models.CalculationRecord{},
	); err != nil {
		slog.Error("Database migration failed", "error", err)
		os.Exit(1)
	}

	seedProducts()

	r := gin.Default()
	routes.SetupRoutes(r)

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	slog.Info("Server starting", "addr", addr)
	if err := r.Run(addr); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

// seedProducts inserts the standard income products on first run so quotes
// work out of the box. Existing rows are left untouched.
func seedProducts() {
	defaults := []models.Product{
		{
			Name:                 "Onyx Income Plus",
			AnnualRate:           0.142,
			TermYears:            5,
			DividendTaxRate:      0.20,
			BrokerCommissionRate: 0.04,
			MinimumInvestment:    100000,
			Increment:            5000,
			Active:               true,
		},
		{
			Name:                 "Strategic Income",
			AnnualRate:           0.128,
			TermYears:            5,
			DividendTaxRate:      0.20,
			BrokerCommissionRate: 0.05,
			BonusFormula:         "amount * 0.10",
			MinimumInvestment:    100000,
			Increment:            5000,
			Active:               true,
		},
	}

	for _, p := range defaults {
		var existing models.Product
		if err := config.DB.Where("name = ?", p.Name).First(&existing).Error; err == nil {
			continue
		}
		if err := config.DB.Create(&p).Error; err != nil {
			slog.Warn("Failed to seed product", "name", p.Name, "error", err)
		}
	}
}
