package models

import "gorm.io/gorm"

// CalculationRecord is a saved calculator run attached to a client: the
// calculator kind, the tax year it ran against, and the input/result payloads
// as JSON. Records exist for the advisor brief and the archive export; the
// engine itself stays stateless.
type CalculationRecord struct {
	gorm.Model
	Ref        string `json:"ref" gorm:"uniqueIndex;not null"`
	ClientID   uint   `json:"clientId"`
	Client     Client `json:"-" gorm:"foreignKey:ClientID"`
	AdvisorID  uint   `json:"advisorId"`
	Advisor    User   `json:"-" gorm:"foreignKey:AdvisorID"`
	Calculator string `json:"calculator" gorm:"index;not null"`
	TaxYear    string `json:"taxYear"`
	Inputs     string `json:"inputs" gorm:"type:jsonb"`
	Results    string `json:"results" gorm:"type:jsonb"`
}
