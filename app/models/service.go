package models

import "time"

// Service is a repair service offered by the shop (screen swap, battery
// replacement, diagnostics and so on).
type Service struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `json:"price"`
	Image       string    `gorm:"size:255" json:"image"`
	Duration    string    `gorm:"size:128" json:"duration"`
	Category    string    `gorm:"size:128" json:"category"`
	IsAvailable bool      `json:"is_available"`
	Technician  string    `gorm:"size:255" json:"technician"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
