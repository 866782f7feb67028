package models

import "time"

// Patient is a person cared for by a Cuidador user. Every patient is
// exclusively owned by the caregiver that registered it.
type Patient struct {
	ID         string     `gorm:"type:varchar(50);primaryKey" json:"id"`
	CuidadorID string     `gorm:"type:varchar(50);index" json:"cuidadorId"`
	Name       string     `gorm:"type:varchar(100)" json:"name"`
	BirthDate  *time.Time `json:"birthDate,omitempty"`
	Condition  string     `gorm:"type:varchar(255)" json:"condition"`
	Notes      string     `gorm:"type:text" json:"notes"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}
