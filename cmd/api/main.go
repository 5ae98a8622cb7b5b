package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/dicetrails/go-shop-api/internal/config"
	"github.com/dicetrails/go-shop-api/internal/handler"
	"github.com/dicetrails/go-shop-api/internal/middleware"
	"github.com/dicetrails/go-shop-api/internal/service"
	"github.com/dicetrails/go-shop-api/internal/store"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}

	// Store: loads every collection from disk, one JSON file each.
	st, err := store.Open(cfg.Store.DataDir, log)
	if err != nil {
		log.Error("open store", "error", err)
		os.Exit(1)
	}

	// Services
	authSvc := service.NewAuthService(st)
	cartSvc := service.NewCartService(st)
	catalogSvc := service.NewCatalogService(st)
	orderSvc := service.NewOrderService(st)
	voucherSvc := service.NewVoucherService(st)
	reviewSvc := service.NewReviewService(st)
	contactSvc := service.NewContactService(st)

	// Handlers
	authH := handler.NewAuthHandler(authSvc)
	cartH := handler.NewCartHandler(cartSvc)
	productH := handler.NewProductHandler(catalogSvc)
	orderH := handler.NewOrderHandler(orderSvc)
	voucherH := handler.NewVoucherHandler(voucherSvc)
	reviewH := handler.NewReviewHandler(reviewSvc)
	contactH := handler.NewContactHandler(contactSvc)
	healthH := handler.NewHealthHandler(cfg.Store.DataDir)

	// Router
	router := gin.Default()
	router.Use(middleware.CORS())
	router.GET("/healthz", healthH.Healthz)
	router.GET("/readyz", healthH.Readyz)

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		auth.POST("/signup", authH.Signup)
		auth.POST("/login", authH.Login)
		auth.POST("/newsletter", authH.Subscribe)

		v1.GET("/cart", cartH.GetCart)
		v1.PUT("/cart", cartH.UpdateCart)

		v1.GET("/products", productH.List)
		v1.GET("/products/:id", productH.GetByID)
		v1.GET("/bestsellers", productH.BestSellers)

		v1.GET("/reviews", reviewH.ListByProduct)
		v1.POST("/reviews", reviewH.Add)

		v1.POST("/orders", orderH.Place)
		v1.GET("/orders", orderH.ListByUser)
		v1.POST("/orders/:id/cancel", orderH.Cancel)

		v1.GET("/vouchers/active", voucherH.ListActive)
		v1.POST("/vouchers/validate", voucherH.Validate)

		v1.POST("/contact", contactH.Add)

		admin := v1.Group("/admin", middleware.AdminOnly(st))
		admin.GET("/users", authH.ListUsers)
		admin.DELETE("/users/:email", authH.DeleteUser)

		admin.POST("/products", productH.Create)
		admin.PUT("/products/:id", productH.Update)
		admin.DELETE("/products/:id", productH.Delete)

		admin.GET("/orders", orderH.ListAll)
		admin.PUT("/orders/:id/status", orderH.UpdateStatus)
		admin.DELETE("/orders/:id", orderH.Delete)

		admin.GET("/vouchers", voucherH.ListAll)
		admin.POST("/vouchers", voucherH.Add)
		admin.PUT("/vouchers", voucherH.Update)
		admin.DELETE("/vouchers/:code", voucherH.Delete)

		admin.GET("/contact", contactH.ListAll)
		admin.PUT("/contact/:id/read", contactH.MarkRead)
		admin.DELETE("/contact/:id", contactH.Delete)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("starting HTTP server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", "error", err)
	}

	st.Close()
	log.Info("server stopped")
}
