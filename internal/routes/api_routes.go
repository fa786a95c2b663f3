package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/MrSir504/Navigate-Tools-2.1/internal/handlers"
	"github.com/MrSir504/Navigate-Tools-2.1/internal/middleware"
)

// RegisterAPIRoutes registers every authenticated API route under /api.
func RegisterAPIRoutes(api *gin.RouterGroup) {
	apiGroup := api.Group("/api")
	{
		// Own account.
		profile := apiGroup.Group("/profile")
		{
			profile.GET("", handlers.GetProfileHandler)
			profile.PUT("", handlers.UpdateProfileHandler)
		}

		// Calculators. Each has a JSON endpoint and a spreadsheet export.
		calc := apiGroup.Group("/calc")
		{
			calc.POST("/salary", handlers.CalculateSalaryHandler)
			calc.POST("/salary/export", handlers.ExportSalaryHandler)
			calc.POST("/ra", handlers.CalculateRAHandler)
			calc.POST("/ra/export", handlers.ExportRAHandler)
			calc.POST("/retirement", handlers.CalculateRetirementHandler)
			calc.POST("/retirement/export", handlers.ExportRetirementHandler)
			calc.POST("/estate", handlers.CalculateEstateHandler)
			calc.POST("/estate/export", handlers.ExportEstateHandler)
			calc.POST("/cover", handlers.CalculateCoverHandler)
			calc.POST("/cover/export", handlers.ExportCoverHandler)
			calc.POST("/budget", handlers.CalculateBudgetHandler)
			calc.POST("/budget/export", handlers.ExportBudgetHandler)

			calc.GET("/risk/questionnaire", handlers.GetRiskQuestionnaireHandler)
			calc.POST("/risk", handlers.ScoreRiskProfileHandler)
			calc.POST("/risk/export", handlers.ExportRiskProfileHandler)

			// Live recalculation channel for the calculator screens.
			calc.GET("/ws", handlers.CalcWSHandler)
		}

		// Advisor brief.
		brief := apiGroup.Group("/brief")
		{
			brief.POST("", handlers.CalculateBriefHandler)
			brief.POST("/export", handlers.ExportBriefHandler)
			brief.POST("/pdf", handlers.BriefPDFHandler)
			brief.POST("/narrative", handlers.BriefNarrativeHandler)
		}

		// Investment quotes against the product catalogue.
		quotes := apiGroup.Group("/quotes")
		{
			quotes.POST("", handlers.QuoteInvestmentHandler)
			quotes.POST("/export", handlers.ExportQuoteHandler)
		}

		// Product catalogue.
		products := apiGroup.Group("/products")
		{
			products.GET("", handlers.ListProductsHandler)
			products.POST("", middleware.PermissionMiddleware("products_edit"), handlers.CreateProductHandler)
			products.PUT("/:id", middleware.PermissionMiddleware("products_edit"), handlers.UpdateProductHandler)
			products.DELETE("/:id", middleware.PermissionMiddleware("products_edit"), handlers.DeleteProductHandler)
		}

		// Tax tables.
		taxTables := apiGroup.Group("/tax-tables")
		{
			taxTables.GET("", handlers.ListTaxYearsHandler)
			taxTables.GET("/:year", handlers.GetTaxTableHandler)
			taxTables.POST("/reload", middleware.PermissionMiddleware("tax_tables_reload"), handlers.ReloadTaxTablesHandler)
		}

		// Client book.
		clients := apiGroup.Group("/clients")
		clients.Use(middleware.PermissionMiddleware("clients_view"))
		{
			clients.GET("", handlers.ListClientsHandler)
			clients.POST("", handlers.CreateClientHandler)
			clients.GET("/:id", handlers.GetClientHandler)
			clients.PUT("/:id", handlers.UpdateClientHandler)
			clients.DELETE("/:id", handlers.DeleteClientHandler)
		}

		// Saved calculations.
		calculations := apiGroup.Group("/calculations")
		{
			calculations.POST("", handlers.SaveCalculationHandler)
			calculations.GET("", handlers.ListCalculationsHandler)
			calculations.GET("/counts", handlers.GetCalculationCountsHandler)
			calculations.GET("/archive/download", middleware.PermissionMiddleware("calculations_view_all"), handlers.DownloadCalculationArchiveHandler)
			calculations.GET("/:ref", handlers.GetCalculationHandler)
			calculations.DELETE("/:ref", handlers.DeleteCalculationHandler)
		}

		// Account administration.
		users := apiGroup.Group("/users")
		users.Use(middleware.PermissionMiddleware("users_view"))
		{
			users.GET("", handlers.ListUsersHandler)
			users.POST("", middleware.PermissionMiddleware("users_edit"), handlers.CreateUserHandler)
			users.GET("/:id", handlers.GetUserHandler)
			users.PUT("/:id", middleware.PermissionMiddleware("users_edit"), handlers.UpdateUserHandler)
			users.DELETE("/:id", middleware.PermissionMiddleware("users_delete"), handlers.DeleteUserHandler)
		}

		roles := apiGroup.Group("/roles")
		roles.Use(middleware.PermissionMiddleware("roles_view"))
		{
			roles.GET("", handlers.ListRolesHandler)
			roles.POST("", middleware.PermissionMiddleware("roles_edit"), handlers.CreateRoleHandler)
			roles.GET("/:id", handlers.GetRoleHandler)
			roles.PUT("/:id", middleware.PermissionMiddleware("roles_edit"), handlers.UpdateRoleHandler)
			roles.DELETE("/:id", middleware.PermissionMiddleware("roles_edit"), handlers.DeleteRoleHandler)
		}

		apiGroup.GET("/permissions", middleware.PermissionMiddleware("roles_view"), handlers.ListPermissionsHandler)
	}
}
