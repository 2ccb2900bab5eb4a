package models

import "time"

// Device is one repair job in the shop catalog: the unit brought in plus the
// client it belongs to.
type Device struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Model       string    `gorm:"size:255" json:"model"`
	Description string    `gorm:"type:text" json:"description"`
	Image       string    `gorm:"size:255" json:"image"`
	Price       float64   `json:"price"`
	Status      string    `gorm:"size:64" json:"status"`
	ClientName  string    `gorm:"size:255" json:"client_name"`
	ClientPhone string    `gorm:"size:64" json:"client_phone"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
