package models

import "gorm.io/gorm"

// User is an advisor account. PasswordHash never leaves the API; handlers
// project users into response structs.
type User struct {
	gorm.Model
	Login        string `json:"login" gorm:"unique;not null"`
	Email        string `json:"email" gorm:"unique;not null"`
	FullName     string `json:"fullName"`
	Phone        string `json:"phone"`
	Status       string `json:"status" gorm:"default:active"`
	PasswordHash string `json:"-"`
	Roles        []Role `json:"roles" gorm:"many2many:user_roles;"`
}
