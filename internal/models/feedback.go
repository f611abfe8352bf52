package models

import "time"

type Feedback struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TableNumber string    `json:"table_number"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
}
