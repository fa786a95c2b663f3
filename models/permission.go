package models

import (
	"sort"

	"github.com/MrSir504/Navigate-Tools-2.1/config"
)

// Permission is one named capability, grouped by category for the admin UI
// (e.g. "Clients", "Calculators", "Tax Tables").
type Permission struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"unique;not null"`
	Description string `json:"description"`
	Category    string `json:"category" gorm:"not null"`
}

// GetUserPermissions collects the distinct permissions a user holds through
// their roles, ordered by category then name.
func GetUserPermissions(userID uint) ([]Permission, error) {
	var user User
	if err := config.DB.Preload("Roles.Permissions").First(&user, userID).Error; err != nil {
		return nil, err
	}

	seen := make(map[uint]Permission)
	for _, role := range user.Roles {
		for _, permission := range role.Permissions {
			seen[permission.ID] = permission
		}
	}

	permissions := make([]Permission, 0, len(seen))
	for _, permission := range seen {
		permissions = append(permissions, permission)
	}
	sort.Slice(permissions, func(i, j int) bool {
		if permissions[i].Category != permissions[j].Category {
			return permissions[i].Category < permissions[j].Category
		}
		return permissions[i].Name < permissions[j].Name
	})

	return permissions, nil
}
