// Package session wraps the cookie session with typed accessors for the two
// identities the app knows about: an authenticated member and the staff admin
// flag. The admin flag is deliberately independent of member identity.
package session

import (
	"net/http"
	"net/url"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/LiuBangJie/online-ordering/internal/models"
)

const Name = "ordersess"

const (
	keyMemberID    = "member_id"
	keyMemberName  = "member_name"
	keyTableNumber = "table_number"
	keyAdmin       = "admin_logged_in"
)

// LoginMember drops whatever the session held before and binds the member's
// identity to it.
func LoginMember(c *gin.Context, member *models.Member) error {
	sess := sessions.Default(c)
	sess.Clear()
	sess.Set(keyMemberID, member.ID)
	sess.Set(keyMemberName, member.Name)
	return sess.Save()
}

// LogoutMember clears all session state, table binding included.
func LogoutMember(c *gin.Context) error {
	sess := sessions.Default(c)
	sess.Clear()
	return sess.Save()
}

// LoginAdmin starts a staff session. Any customer state is discarded.
func LoginAdmin(c *gin.Context) error {
	sess := sessions.Default(c)
	sess.Clear()
	sess.Set(keyAdmin, true)
	return sess.Save()
}

// LogoutAdmin drops only the admin flag, leaving the rest of the session
// untouched.
func LogoutAdmin(c *gin.Context) error {
	sess := sessions.Default(c)
	sess.Delete(keyAdmin)
	return sess.Save()
}

// BindTable sets the session's table number. Rebinding is allowed at any
// time; the value is not validated.
func BindTable(c *gin.Context, tableNumber string) error {
	sess := sessions.Default(c)
	sess.Set(keyTableNumber, tableNumber)
	return sess.Save()
}

func MemberID(c *gin.Context) uint {
	id, _ := sessions.Default(c).Get(keyMemberID).(uint)
	return id
}

func MemberName(c *gin.Context) string {
	name, _ := sessions.Default(c).Get(keyMemberName).(string)
	return name
}

func TableNumber(c *gin.Context) string {
	table, _ := sessions.Default(c).Get(keyTableNumber).(string)
	return table
}

func IsAdmin(c *gin.Context) bool {
	admin, _ := sessions.Default(c).Get(keyAdmin).(bool)
	return admin
}

// RequireCustomer gates customer-facing routes. Anonymous requests are
// redirected to the login page with the requested path preserved so the
// flow can resume after authentication.
func RequireCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		if MemberID(c) == 0 {
			c.Redirect(http.StatusFound, "/login_user?next="+url.QueryEscape(c.Request.URL.Path))
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin gates staff routes; every admin endpoint re-checks the flag
// at entry.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(c) {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
