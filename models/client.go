package models

import "gorm.io/gorm"

// Client is one entry in an advisor's client book. The snapshot fields seed
// calculator defaults; calculations themselves never persist client inputs.
type Client struct {
	gorm.Model
	FullName        string  `json:"fullName" gorm:"not null"`
	Age             int     `json:"age"`
	HouseholdIncome float64 `json:"householdIncome"` // monthly, rand
	MeetingFocus    string  `json:"meetingFocus"`
	Notes           string  `json:"notes"`
	AdvisorID       uint    `json:"advisorId"`
	Advisor         User    `json:"-" gorm:"foreignKey:AdvisorID"`
}
