package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Canonical statuses shown to staff. The write path does not restrict status
// to this set; any string an admin submits is stored as-is.
const (
	StatusNotAccepted = "not yet accepted"
	StatusAccepted    = "accepted"
	StatusPreparing   = "preparing"
	StatusReady       = "ready"
	StatusCompleted   = "completed"
)

func CanonicalStatuses() []string {
	return []string{StatusNotAccepted, StatusAccepted, StatusPreparing, StatusReady, StatusCompleted}
}

type Order struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	TableNumber  string    `json:"table_number"`
	CustomerName string    `json:"customer_name"`
	Items        string    `json:"-"` // JSON-encoded []LineItem
	Total        int       `json:"total"`
	Status       string    `gorm:"default:'not yet accepted'" json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// LineItem is a snapshot of a menu item at submission time. It is embedded in
// the order row and never updated afterwards.
type LineItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int    `json:"price"`
}

func EncodeLineItems(items []LineItem) (string, error) {
	if items == nil {
		items = []LineItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// LineItems decodes the stored items column. An empty column decodes to no
// items; a malformed column returns the decode error so callers can
// substitute a sentinel instead of dropping the whole row.
func (o *Order) LineItems() ([]LineItem, error) {
	if o.Items == "" {
		return []LineItem{}, nil
	}
	var items []LineItem
	if err := json.Unmarshal([]byte(o.Items), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// NewOrderID returns a short order token, the first eight characters of a
// random UUID.
func NewOrderID() string {
	return uuid.NewString()[:8]
}
