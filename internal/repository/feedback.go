package repository

import (
	"gorm.io/gorm"

	"github.com/LiuBangJie/online-ordering/internal/models"
)

type FeedbackRepository struct {
	DB *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{DB: db}
}

// Append stores one feedback entry. Entries are never updated or deleted.
func (r *FeedbackRepository) Append(tableNumber, message string) error {
	return r.DB.Create(&models.Feedback{
		TableNumber: tableNumber,
		Message:     message,
	}).Error
}
