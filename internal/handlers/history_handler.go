package handlers

import (
	"bytes"
	"encoding/csv"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/MrSir504/Navigate-Tools-2.1/config"
	"github.com/MrSir504/Navigate-Tools-2.1/models"
)

type saveCalculationInput struct {
	ClientID   uint            `json:"clientId" binding:"required"`
	Calculator string          `json:"calculator" binding:"required"`
	TaxYear    string          `json:"taxYear"`
	Inputs     json.RawMessage `json:"inputs" binding:"required"`
	Results    json.RawMessage `json:"results" binding:"required"`
}

// SaveCalculationHandler stores a calculator run against a client so the
// advisor brief and the archive can replay it later.
func SaveCalculationHandler(c *gin.Context) {
	var input saveCalculationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := c.Get("user_id")

	var client models.Client
	if err := config.DB.First(&client, input.ClientID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	if client.AdvisorID != userID.(uint) && !hasPermission(c, "clients_view_all") {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have access to this client"})
		return
	}

	record := models.CalculationRecord{
		Ref:        uuid.NewString(),
		ClientID:   input.ClientID,
		AdvisorID:  userID.(uint),
		Calculator: input.Calculator,
		TaxYear:    input.TaxYear,
		Inputs:     string(input.Inputs),
		Results:    string(input.Results),
	}

	if err := config.DB.Create(&record).Error; err != nil {
		slog.Error("Failed to save calculation", "error", err, "client_id", input.ClientID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save calculation"})
		return
	}

	c.JSON(http.StatusCreated, record)
}

// ListCalculationsHandler returns saved calculations, paginated, filterable
// by client and calculator kind.
func ListCalculationsHandler(c *gin.Context) {
	userID, _ := c.Get("user_id")

	query := config.DB.Model(&models.CalculationRecord{}).Order("created_at desc")
	if !hasPermission(c, "clients_view_all") {
		query = query.Where("advisor_id = ?", userID)
	}
	if clientID := c.Query("clientId"); clientID != "" {
		query = query.Where("client_id = ?", clientID)
	}
	if calculator := c.Query("calculator"); calculator != "" {
		query = query.Where("calculator = ?", calculator)
	}

	var totalRows int64
	query.Count(&totalRows)

	var records []models.CalculationRecord
	if err := query.Scopes(Paginate(c)).Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch calculations"})
		return
	}
	if records == nil {
		records = make([]models.CalculationRecord, 0)
	}

	c.JSON(http.StatusOK, CreatePaginatedResponse(c, records, totalRows))
}

// GetCalculationHandler fetches one saved run by its reference.
func GetCalculationHandler(c *gin.Context) {
	var record models.CalculationRecord
	if err := config.DB.Where("ref = ?", c.Param("ref")).First(&record).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Calculation not found"})
		return
	}

	userID, _ := c.Get("user_id")
	if record.AdvisorID != userID.(uint) && !hasPermission(c, "clients_view_all") {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have access to this calculation"})
		return
	}

	c.JSON(http.StatusOK, record)
}

// DeleteCalculationHandler removes a saved run.
func DeleteCalculationHandler(c *gin.Context) {
	var record models.CalculationRecord
	if err := config.DB.Where("ref = ?", c.Param("ref")).First(&record).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Calculation not found"})
		return
	}

	userID, _ := c.Get("user_id")
	if record.AdvisorID != userID.(uint) && !hasPermission(c, "clients_view_all") {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have access to this calculation"})
		return
	}

	if err := config.DB.Delete(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete calculation"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Calculation deleted successfully"})
}

// DownloadCalculationArchiveHandler exports all saved calculations as a CSV
// file. Semicolon-separated with a UTF-8 BOM so spreadsheet software opens it
// cleanly.
func DownloadCalculationArchiveHandler(c *gin.Context) {
	var records []models.CalculationRecord
	if err := config.DB.Preload("Client").Preload("Advisor").Order("created_at desc").Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch calculations"})
		return
	}
	if len(records) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No calculations found to export"})
		return
	}

	b := &bytes.Buffer{}
	b.Write([]byte{0xEF, 0xBB, 0xBF}) // BOM for UTF-8

	w := csv.NewWriter(b)
	w.Comma = ';'

	headers := []string{"Ref", "Date", "Advisor", "Client", "Calculator", "Tax Year", "Inputs", "Results"}
	if err := w.Write(headers); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write CSV header"})
		return
	}

	for _, r := range records {
		record := []string{
			r.Ref, r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.Advisor.FullName, r.Client.FullName,
			r.Calculator, r.TaxYear,
			r.Inputs, r.Results,
		}
		if err := w.Write(record); err != nil {
			slog.Warn("Failed to write record to CSV", "ref", r.Ref, "error", err)
			continue
		}
	}
	w.Flush()

	if err := w.Error(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error writing CSV data"})
		return
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename=calculations_export.csv")
	c.Data(http.StatusOK, "text/csv", b.Bytes())
}

// GetCalculationCountsHandler returns per-calculator counts for the advisor's
// dashboard tiles.
func GetCalculationCountsHandler(c *gin.Context) {
	userID, _ := c.Get("user_id")

	type countRow struct {
		Calculator string `json:"calculator"`
		Count      int64  `json:"count"`
	}
	var rows []countRow
	config.DB.Model(&models.CalculationRecord{}).
		Select("calculator, count(*) as count").
		Where("advisor_id = ?", userID).
		Group("calculator").
		Scan(&rows)

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Calculator] = r.Count
	}
	c.JSON(http.StatusOK, counts)
}
