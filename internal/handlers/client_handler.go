package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MrSir504/Navigate-Tools-2.1/config"
	"github.com/MrSir504/Navigate-Tools-2.1/models"
)

type clientInput struct {
	FullName        string  `json:"fullName" binding:"required"`
	Age             int     `json:"age"`
	HouseholdIncome float64 `json:"householdIncome"`
	MeetingFocus    string  `json:"meetingFocus"`
	Notes           string  `json:"notes"`
}

// ListClientsHandler returns the advisor's client book, paginated. "q"
// filters by name, "all=true" returns everyone's clients for users holding
// the clients_view_all permission.
func ListClientsHandler(c *gin.Context) {
	userID, _ := c.Get("user_id")

	query := config.DB.Model(&models.Client{}).Order("full_name asc")
	if c.Query("all") != "true" || !hasPermission(c, "clients_view_all") {
		query = query.Where("advisor_id = ?", userID)
	}
	if q := c.Query("q"); q != "" {
		query = query.Where("full_name ILIKE ?", "%"+q+"%")
	}

	var totalRows int64
	query.Count(&totalRows)

	var clients []models.Client
	if err := query.Scopes(Paginate(c)).Find(&clients).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch clients"})
		return
	}
	if clients == nil {
		clients = make([]models.Client, 0)
	}

	c.JSON(http.StatusOK, CreatePaginatedResponse(c, clients, totalRows))
}

// GetClientHandler returns one client, restricted to its own advisor unless
// the caller can view all.
func GetClientHandler(c *gin.Context) {
	client, ok := loadOwnClient(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, client)
}

// CreateClientHandler adds a client to the calling advisor's book.
func CreateClientHandler(c *gin.Context) {
	var input clientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := c.Get("user_id")
	client := models.Client{
		FullName:        input.FullName,
		Age:             input.Age,
		HouseholdIncome: input.HouseholdIncome,
		MeetingFocus:    input.MeetingFocus,
		Notes:           input.Notes,
		AdvisorID:       userID.(uint),
	}

	if err := config.DB.Create(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create client"})
		return
	}
	c.JSON(http.StatusCreated, client)
}

// UpdateClientHandler updates a client's snapshot fields.
func UpdateClientHandler(c *gin.Context) {
	client, ok := loadOwnClient(c)
	if !ok {
		return
	}

	var input clientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client.FullName = input.FullName
	client.Age = input.Age
	client.HouseholdIncome = input.HouseholdIncome
	client.MeetingFocus = input.MeetingFocus
	client.Notes = input.Notes

	if err := config.DB.Save(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update client"})
		return
	}
	c.JSON(http.StatusOK, client)
}

// DeleteClientHandler soft-deletes a client.
func DeleteClientHandler(c *gin.Context) {
	client, ok := loadOwnClient(c)
	if !ok {
		return
	}
	if err := config.DB.Delete(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete client"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client deleted successfully"})
}

func loadOwnClient(c *gin.Context) (models.Client, bool) {
	var client models.Client
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client ID"})
		return client, false
	}

	if err := config.DB.First(&client, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return client, false
	}

	userID, _ := c.Get("user_id")
	if client.AdvisorID != userID.(uint) && !hasPermission(c, "clients_view_all") {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have access to this client"})
		return client, false
	}
	return client, true
}

func hasPermission(c *gin.Context, name string) bool {
	permissions, exists := c.Get("permissions")
	if !exists {
		return false
	}
	userPermissions, ok := permissions.([]string)
	if !ok {
		return false
	}
	for _, p := range userPermissions {
		if p == name || p == "admin" {
			return true
		}
	}
	return false
}
