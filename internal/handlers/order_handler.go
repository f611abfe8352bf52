package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	config "github.com/LiuBangJie/online-ordering/configs"
	"github.com/LiuBangJie/online-ordering/internal/menu"
	"github.com/LiuBangJie/online-ordering/internal/models"
	"github.com/LiuBangJie/online-ordering/internal/notifier"
	"github.com/LiuBangJie/online-ordering/internal/repository"
	"github.com/LiuBangJie/online-ordering/internal/session"
)

// Sentinels for orders submitted before the session bound a table or from a
// session with no recorded name.
const (
	unspecifiedTable = "unspecified"
	guestName        = "guest"
)

const historyWindowDays = 30

type OrderHandler struct {
	Orders  *repository.OrderRepository
	Members *repository.MemberRepository
	Email   config.EmailConfig
}

func NewOrderHandler(orders *repository.OrderRepository, members *repository.MemberRepository, email config.EmailConfig) *OrderHandler {
	return &OrderHandler{Orders: orders, Members: members, Email: email}
}

// GET /menu
func (h *OrderHandler) Menu(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"menu": menu.Items, "table_number": session.TableNumber(c)})
}

// GET /cart
func (h *OrderHandler) Cart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"menu": menu.Items})
}

// POST /submit_order
//
// The form carries one quantity field per catalog item, keyed by item id.
// Missing or non-numeric quantities count as zero and anything not strictly
// positive is left out. An order where nothing qualifies is still created;
// that has always been the behavior and the receipt simply shows no items.
func (h *OrderHandler) SubmitOrder(c *gin.Context) {
	tableNumber := session.TableNumber(c)
	if tableNumber == "" {
		tableNumber = unspecifiedTable
	}
	customerName := session.MemberName(c)
	if customerName == "" {
		customerName = guestName
	}

	var items []models.LineItem
	total := 0
	for _, item := range menu.Items {
		qty, err := strconv.Atoi(c.PostForm(strconv.Itoa(item.ID)))
		if err != nil {
			qty = 0
		}
		if qty > 0 {
			items = append(items, models.LineItem{
				Name:     item.Name,
				Quantity: qty,
				Price:    item.Price,
			})
			total += item.Price * qty
		}
	}

	encoded, err := models.EncodeLineItems(items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode order items"})
		return
	}

	order := models.Order{
		TableNumber:  tableNumber,
		CustomerName: customerName,
		Items:        encoded,
		Total:        total,
		Status:       models.StatusNotAccepted,
		CreatedAt:    time.Now(),
	}
	if err := h.Orders.Insert(&order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save order"})
		return
	}

	h.sendReceipt(c, order)

	c.JSON(http.StatusCreated, gin.H{
		"order_id":     order.ID,
		"table_number": order.TableNumber,
		"items":        itemsView(order),
		"total":        order.Total,
	})
}

// GET /history
func (h *OrderHandler) History(c *gin.Context) {
	cutoff := time.Now().AddDate(0, 0, -historyWindowDays)
	orders, err := h.Orders.ListByTableSince(session.TableNumber(c), cutoff)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load order history"})
		return
	}

	views := make([]gin.H, 0, len(orders))
	for _, order := range orders {
		views = append(views, orderView(order))
	}
	c.JSON(http.StatusOK, gin.H{"orders": views, "searched": true})
}

// GET /track
func (h *OrderHandler) Track(c *gin.Context) {
	orderID := c.Query("order_id")
	if orderID == "" {
		c.JSON(http.StatusOK, gin.H{"order": nil, "searched": false})
		return
	}

	order, err := h.Orders.GetByID(orderID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to look up order"})
		return
	}
	if order == nil {
		c.JSON(http.StatusOK, gin.H{"order": nil, "searched": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": orderView(*order), "searched": true})
}

// sendReceipt mails the receipt in the background when SES is configured and
// the session belongs to a known member. Failures are logged, never surfaced.
func (h *OrderHandler) sendReceipt(c *gin.Context, order models.Order) {
	if h.Email.SenderEmail == "" {
		return
	}
	member, err := h.Members.FindByID(session.MemberID(c))
	if err != nil || member == nil {
		return
	}

	go func(m models.Member, o models.Order) {
		if err := notifier.SendReceiptEmail(h.Email, m.Email, m.Name, &o); err != nil {
			log.Printf("Failed to send receipt for order %s to %s: %v", o.ID, m.Email, err)
		}
	}(*member, order)
}

// orderView flattens an order for JSON responses, decoding its stored items.
func orderView(order models.Order) gin.H {
	return gin.H{
		"id":            order.ID,
		"table_number":  order.TableNumber,
		"customer_name": order.CustomerName,
		"items":         itemsView(order),
		"total":         order.Total,
		"status":        order.Status,
		"created_at":    order.CreatedAt,
	}
}

// itemsView substitutes a placeholder entry when a row's stored items cannot
// be parsed, so one corrupted order does not break a whole listing.
func itemsView(order models.Order) any {
	items, err := order.LineItems()
	if err != nil {
		log.Printf("Order %s has malformed items, substituting placeholder: %v", order.ID, err)
		return []gin.H{{"name": "invalid data", "quantity": "-", "price": "-"}}
	}
	return items
}
