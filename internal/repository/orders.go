package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/LiuBangJie/online-ordering/internal/models"
)

// maxIDAttempts bounds collision retries on the 8-character order token.
// Collisions are vanishingly rare at restaurant volume but the insert still
// regenerates rather than failing the customer's order on bad luck.
const maxIDAttempts = 5

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// Insert persists a new order, assigning its id. On a token collision the id
// is regenerated and the insert retried.
func (r *OrderRepository) Insert(order *models.Order) error {
	var err error
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		order.ID = models.NewOrderID()
		err = r.DB.Create(order).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
	}
	return fmt.Errorf("could not allocate a unique order id after %d attempts: %w", maxIDAttempts, err)
}

// ListByTableSince returns the table's orders created at or after the cutoff,
// oldest first.
func (r *OrderRepository) ListByTableSince(tableNumber string, since time.Time) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.
		Where("table_number = ? AND created_at >= ?", tableNumber, since).
		Order("created_at ASC").
		Find(&orders).Error
	return orders, err
}

// ListAll returns every order, newest first. A non-empty status restricts the
// listing to orders whose status matches it exactly.
func (r *OrderRepository) ListAll(status string) ([]models.Order, error) {
	var orders []models.Order
	query := r.DB.Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Find(&orders).Error
	return orders, err
}

// GetByID returns (nil, nil) when no order has the given id.
func (r *OrderRepository) GetByID(orderID string) (*models.Order, error) {
	var order models.Order
	if err := r.DB.Where("id = ?", orderID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// UpdateStatus overwrites the order's status with whatever string was
// submitted. A missing id is a silent no-op.
func (r *OrderRepository) UpdateStatus(orderID, newStatus string) error {
	return r.DB.Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("status", newStatus).Error
}
