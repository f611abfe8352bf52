package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	config "github.com/LiuBangJie/online-ordering/configs"
	"github.com/LiuBangJie/online-ordering/internal/auth"
	"github.com/LiuBangJie/online-ordering/internal/db"
	"github.com/LiuBangJie/online-ordering/internal/handlers"
	"github.com/LiuBangJie/online-ordering/internal/repository"
	"github.com/LiuBangJie/online-ordering/internal/session"
)

const (
	testSecret        = "test-secret-key"
	testAdminPassword = "admin-test-pass"
)

// setupApp wires the full route table against an in-memory database, the
// same way main does.
func setupApp(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	testDB, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect test database: %v", err)
	}
	if err := db.Migrate(testDB); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	members := repository.NewMemberRepository(testDB)
	orders := repository.NewOrderRepository(testDB)
	feedback := repository.NewFeedbackRepository(testDB)

	memberHandler := handlers.NewMemberHandler(auth.NewService(members))
	orderHandler := handlers.NewOrderHandler(orders, members, config.EmailConfig{})
	feedbackHandler := handlers.NewFeedbackHandler(feedback)
	adminHandler := handlers.NewAdminHandler(orders, testAdminPassword)

	r := gin.New()
	r.Use(gin.Recovery())

	store := cookie.NewStore([]byte(testSecret))
	r.Use(sessions.Sessions(session.Name, store))

	r.GET("/register", memberHandler.RegisterPage)
	r.POST("/register", memberHandler.Register)
	r.GET("/login_user", memberHandler.LoginPage)
	r.POST("/login_user", memberHandler.Login)
	r.GET("/logout_user", memberHandler.Logout)

	r.GET("/login", adminHandler.LoginPage)
	r.POST("/login", adminHandler.Login)
	r.GET("/logout", adminHandler.Logout)

	customer := r.Group("/")
	customer.Use(session.RequireCustomer())
	{
		customer.GET("/menu", orderHandler.Menu)
		customer.GET("/cart", orderHandler.Cart)
		customer.POST("/submit_order", orderHandler.SubmitOrder)
		customer.GET("/history", orderHandler.History)
		customer.GET("/track", orderHandler.Track)
		customer.GET("/input_table", memberHandler.InputTablePage)
		customer.POST("/input_table", memberHandler.InputTable)
		customer.GET("/feedback", feedbackHandler.Page)
		customer.POST("/feedback", feedbackHandler.Submit)
	}

	admin := r.Group("/")
	admin.Use(session.RequireAdmin())
	{
		admin.GET("/admin", adminHandler.ListOrders)
		admin.POST("/update_status", adminHandler.UpdateStatus)
	}

	return r, testDB
}

// forgeSession builds a session cookie outside the router, by applying the
// session middleware to a throwaway context and letting the configure
// callback populate it.
func forgeSession(t *testing.T, configure func(c *gin.Context)) string {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	store := cookie.NewStore([]byte(testSecret))
	sessions.Sessions(session.Name, store)(c)

	configure(c)

	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("session configuration produced no cookie")
	}
	last := cookies[len(cookies)-1]
	return last.Name + "=" + last.Value
}

// sessionFrom extracts the session cookie set by a response so a flow can
// carry it into the next request.
func sessionFrom(recorder *httptest.ResponseRecorder) string {
	var found string
	for _, ck := range recorder.Result().Cookies() {
		if ck.Name == session.Name {
			found = ck.Name + "=" + ck.Value
		}
	}
	return found
}

func doGet(router *gin.Engine, path, sessionCookie string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if sessionCookie != "" {
		req.Header.Set("Cookie", sessionCookie)
	}
	router.ServeHTTP(recorder, req)
	return recorder
}

func doPostForm(router *gin.Engine, path string, form url.Values, sessionCookie string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if sessionCookie != "" {
		req.Header.Set("Cookie", sessionCookie)
	}
	router.ServeHTTP(recorder, req)
	return recorder
}
