package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/LiuBangJie/online-ordering/internal/auth"
	"github.com/LiuBangJie/online-ordering/internal/session"
)

type MemberHandler struct {
	Auth *auth.Service
}

func NewMemberHandler(authSvc *auth.Service) *MemberHandler {
	return &MemberHandler{Auth: authSvc}
}

type RegisterRequest struct {
	Name     string `form:"name" json:"name" binding:"required"`
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `form:"email" json:"email" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
	Next     string `form:"next" json:"next"`
}

// GET /register
func (h *MemberHandler) RegisterPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"registered": false})
}

// POST /register
func (h *MemberHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.Auth.Register(req.Name, req.Email, req.Password); err != nil {
		if errors.Is(err, auth.ErrDuplicateEmail) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}

	c.Redirect(http.StatusFound, "/login_user")
}

// GET /login_user
func (h *MemberHandler) LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"authenticated": session.MemberID(c) != 0,
		"next":          c.Query("next"),
	})
}

// POST /login_user
func (h *MemberHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.Auth.Verify(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "wrong email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	if err := session.LoginMember(c, member); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save session"})
		return
	}

	c.Redirect(http.StatusFound, resumePath(req.Next, c.Query("next")))
}

// GET /logout_user
func (h *MemberHandler) Logout(c *gin.Context) {
	if err := session.LogoutMember(c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear session"})
		return
	}
	c.Redirect(http.StatusFound, "/login_user")
}

// GET /input_table
func (h *MemberHandler) InputTablePage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"table_number": session.TableNumber(c)})
}

type BindTableRequest struct {
	TableNumber string `form:"table_number" json:"table_number" binding:"required"`
}

// POST /input_table
func (h *MemberHandler) InputTable(c *gin.Context) {
	var req BindTableRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := session.BindTable(c, req.TableNumber); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save session"})
		return
	}

	c.Redirect(http.StatusFound, "/menu")
}

// resumePath picks the post-login destination, preferring the path preserved
// by the login redirect. Only local paths are honored.
func resumePath(candidates ...string) string {
	for _, next := range candidates {
		if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
			return next
		}
	}
	return "/input_table"
}
