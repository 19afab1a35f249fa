package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"storefront-service/catalog"
	"storefront-service/clients"
	"storefront-service/config"
	"storefront-service/handlers"
	"storefront-service/rabbitmq"
	"storefront-service/store"
)

func main() {
	cfg := config.LoadConfig()

	level := slog.LevelInfo
	if cfg.LogLevel == "debug" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	logger.Info("starting storefront service", "port", cfg.Port)

	if cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// The store is optional: without DATABASE_URL the service serves empty
	// reads and drops writes instead of failing hard.
	var st store.Store = store.Disconnected()
	if cfg.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		m, err := store.NewMongo(ctx, cfg.DatabaseURL, cfg.DatabaseName)
		cancel()
		if err != nil {
			logger.Warn("could not connect to MongoDB, continuing without a store", "error", err)
		} else {
			st = m
			defer m.Disconnect(context.Background())
		}
	} else {
		logger.Warn("DATABASE_URL not set, running without a store")
	}

	var provider handlers.CheckoutProvider
	if cfg.StripeSecretKey != "" {
		provider = clients.NewStripeClient(cfg.StripeSecretKey)
	} else {
		logger.Warn("STRIPE_SECRET_KEY not set, checkout endpoints will refuse requests")
	}

	var publisher *rabbitmq.Publisher
	if cfg.RabbitMQURL != "" {
		pool, err := rabbitmq.NewChannelPool(cfg.RabbitMQURL, cfg.RabbitMQQueue, cfg.ChannelPoolSize, logger)
		if err != nil {
			logger.Warn("could not connect to RabbitMQ, order events disabled", "error", err)
		} else {
			defer pool.Close()
			publisher = rabbitmq.NewPublisher(pool, cfg.RabbitMQQueue, logger)
		}
	}

	cat := catalog.NewService(st, logger)

	productHandler := handlers.NewProductHandler(cat, logger)
	checkoutHandler := handlers.NewCheckoutHandler(cat, provider, st, publisher, cfg.FrontendURL, logger)
	sessionHandler := handlers.NewSessionHandler(provider, logger)
	statusHandler := handlers.NewStatusHandler(st)

	router := gin.Default()
	router.Use(cors.Default())

	// Routes
	router.GET("/", statusHandler.Root)
	router.GET("/test", statusHandler.TestStore)
	router.GET("/api/products", productHandler.ListProducts)
	router.GET("/api/products/:slug", productHandler.GetProduct)
	router.POST("/api/create-checkout-session", checkoutHandler.CreateCheckoutSession)
	router.GET("/api/stripe/session/:session_id", sessionHandler.GetSessionStatus)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
