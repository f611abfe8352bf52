package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	config "github.com/LiuBangJie/online-ordering/configs"
	"github.com/LiuBangJie/online-ordering/internal/auth"
	"github.com/LiuBangJie/online-ordering/internal/db"
	"github.com/LiuBangJie/online-ordering/internal/handlers"
	"github.com/LiuBangJie/online-ordering/internal/middlewares"
	"github.com/LiuBangJie/online-ordering/internal/repository"
	"github.com/LiuBangJie/online-ordering/internal/session"
)

func main() {

	cfg := config.Load()

	gdb, err := db.Open(cfg)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	members := repository.NewMemberRepository(gdb)
	orders := repository.NewOrderRepository(gdb)
	feedback := repository.NewFeedbackRepository(gdb)

	memberHandler := handlers.NewMemberHandler(auth.NewService(members))
	orderHandler := handlers.NewOrderHandler(orders, members, cfg.Email)
	feedbackHandler := handlers.NewFeedbackHandler(feedback)
	adminHandler := handlers.NewAdminHandler(orders, cfg.AdminPassword)

	r := gin.Default()

	// ── session store ──
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions(session.Name, store))
	r.Use(middlewares.CORSMiddleware())

	// ── public endpoints ──
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
	r.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/login_user") })

	r.GET("/register", memberHandler.RegisterPage)
	r.POST("/register", memberHandler.Register)
	r.GET("/login_user", memberHandler.LoginPage)
	r.POST("/login_user", memberHandler.Login)
	r.GET("/logout_user", memberHandler.Logout)

	r.GET("/login", adminHandler.LoginPage)
	r.POST("/login", adminHandler.Login)
	r.GET("/logout", adminHandler.Logout)

	// ── customer routes ──
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

	// ── staff routes ──
	admin := r.Group("/")
	admin.Use(session.RequireAdmin())
	{
		admin.GET("/admin", adminHandler.ListOrders)
		admin.POST("/update_status", adminHandler.UpdateStatus)
	}

	addr := ":" + cfg.Port
	log.Println("Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
