package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/offstore/offstore-api/cart"
	"github.com/offstore/offstore-api/catalog"
	"github.com/offstore/offstore-api/controllers"
	"github.com/offstore/offstore-api/initializers"
	"github.com/offstore/offstore-api/middlewares"
	"github.com/offstore/offstore-api/orders"
	"github.com/offstore/offstore-api/routes"
	"github.com/offstore/offstore-api/utils"
	"go.uber.org/zap"
)

func main() {
	cfg, err := initializers.LoadConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := initializers.NewLogger(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer logger.Sync()

	db, closeDB, err := initializers.ConnectToDB(cfg.Database)
	if err != nil {
		logger.Fatal("connecting to database", zap.Error(err))
	}
	defer closeDB()
	logger.Info("database connected")

	if err := initializers.SyncDatabase(db, logger); err != nil {
		logger.Fatal("syncing database", zap.Error(err))
	}
	if err := initializers.SeedAdmin(db, cfg.Auth, logger); err != nil {
		logger.Fatal("seeding admin account", zap.Error(err))
	}

	uploader, err := utils.NewUploader(context.Background(), cfg.AWS.Bucket)
	if err != nil {
		logger.Warn("S3 uploader unavailable, image uploads disabled", zap.Error(err))
		uploader = nil
	}
	notifier := utils.NewNotifier(cfg.Webhook.OrderURL, logger)

	catalogStore := catalog.NewGormStore(db)
	cartStore := cart.NewGormStore(db)
	orderRepo := orders.NewGormRepository(db)
	builder := orders.NewBuilder(orderRepo, logger)
	manager := orders.NewLifecycleManager(orderRepo)

	authController := controllers.NewAuthController(db, cfg.Auth.JWTSecret, logger)
	productController := controllers.NewProductController(catalogStore, uploader, logger)
	cartController := controllers.NewCartController(cartStore, catalogStore, builder, notifier, logger)
	orderController := controllers.NewOrderController(orderRepo, manager, logger)
	requireAdmin := middlewares.RequireAdmin(cfg.Auth.JWTSecret)

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.DefaultRoutes(server)
	routes.AuthRoutes(server, authController)
	routes.ProductRoutes(server, productController, requireAdmin)
	routes.CartRoutes(server, cartController)
	routes.OrderRoutes(server, orderController, requireAdmin)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: server,
	}

	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped gracefully")
}
