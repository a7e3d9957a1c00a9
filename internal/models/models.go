package models

import (
	"time"
)

// Submission represents a user's offer to sell a game to the store
type Submission struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null"`
	GameTitle string    `json:"game_title" gorm:"not null"`
	Platform  string    `json:"platform" gorm:"not null"`
	Condition string    `json:"condition" gorm:"not null"` // Loose, Complete, Sealed
	Price     float64   `json:"price" gorm:"not null"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
