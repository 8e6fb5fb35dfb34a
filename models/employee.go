package models

import "time"

// Employee is a directory entry, independent of dashboard accounts.
type Employee struct {
	ID         string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	Name       string    `gorm:"type:varchar(100)" json:"name"`
	Position   string    `gorm:"type:varchar(100)" json:"position"`
	Department string    `gorm:"type:varchar(100)" json:"department"`
	Email      string    `gorm:"type:varchar(100)" json:"email"`
	Phone      string    `gorm:"type:varchar(50)" json:"phone"`
	Location   string    `gorm:"type:varchar(100)" json:"location"`
	ImageURL   string    `gorm:"type:varchar(255)" json:"image_url"`
	CreatedAt  time.Time `json:"created_at"`
}
