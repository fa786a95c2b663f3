package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MrSir504/Navigate-Tools-2.1/internal/engine"
	"github.com/MrSir504/Navigate-Tools-2.1/internal/taxconfig"
)

// respondEngineError maps a calculation error onto the HTTP contract: bad
// client inputs become 400 with the offending field, a missing or broken tax
// table becomes 503.
func respondEngineError(c *gin.Context, err error) {
	var input *engine.InvalidInputError
	if errors.As(err, &input) {
		c.JSON(http.StatusBadRequest, gin.H{"error": input.Reason, "field": input.Field})
		return
	}

	var cfg *engine.ConfigError
	if errors.As(err, &cfg) {
		slog.Error("Tax table unavailable", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Tax data unavailable"})
		return
	}

	slog.Error("Calculation failed", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Calculation failed"})
}

// resolveTable fetches the tax table for the "taxYear" query parameter, or
// the current year when absent. On failure it writes the error response and
// returns nil.
func resolveTable(c *gin.Context) *engine.TaxTable {
	table, err := taxconfig.Table(c.Query("taxYear"))
	if err != nil {
		respondEngineError(c, err)
		return nil
	}
	return table
}
