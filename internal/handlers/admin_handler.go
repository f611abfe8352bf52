package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LiuBangJie/online-ordering/internal/models"
	"github.com/LiuBangJie/online-ordering/internal/repository"
	"github.com/LiuBangJie/online-ordering/internal/session"
)

// AdminHandler serves the staff side. Staff access is a single shared
// passphrase compared verbatim, not a member account; a known limitation of
// the product's scope rather than an oversight.
type AdminHandler struct {
	Orders   *repository.OrderRepository
	Password string
}

func NewAdminHandler(orders *repository.OrderRepository, password string) *AdminHandler {
	return &AdminHandler{Orders: orders, Password: password}
}

type AdminLoginRequest struct {
	Password string `form:"password" json:"password" binding:"required"`
}

// GET /login
func (h *AdminHandler) LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"admin": session.IsAdmin(c)})
}

// POST /login
func (h *AdminHandler) Login(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Password != h.Password {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "wrong password"})
		return
	}

	if err := session.LoginAdmin(c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save session"})
		return
	}
	c.Redirect(http.StatusFound, "/admin")
}

// GET /logout
func (h *AdminHandler) Logout(c *gin.Context) {
	if err := session.LogoutAdmin(c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear session"})
		return
	}
	c.Redirect(http.StatusFound, "/login")
}

// GET /admin
//
// Lists every order, newest first, optionally narrowed by an exact status
// match. The canonical status list rides along for the staff UI; it is a
// suggestion, not a constraint.
func (h *AdminHandler) ListOrders(c *gin.Context) {
	selectedStatus := c.Query("status")

	orders, err := h.Orders.ListAll(selectedStatus)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load orders"})
		return
	}

	views := make([]gin.H, 0, len(orders))
	for _, order := range orders {
		views = append(views, orderView(order))
	}

	c.JSON(http.StatusOK, gin.H{
		"orders":          views,
		"selected_status": selectedStatus,
		"statuses":        models.CanonicalStatuses(),
	})
}

type UpdateStatusRequest struct {
	OrderID   string `form:"order_id" json:"order_id" binding:"required"`
	NewStatus string `form:"new_status" json:"new_status" binding:"required"`
}

// POST /update_status
//
// Overwrites the order's status with the submitted string. There is no
// transition graph; an unknown order id is silently a no-op.
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Orders.UpdateStatus(req.OrderID, req.NewStatus); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update status"})
		return
	}
	c.Redirect(http.StatusFound, "/admin")
}
