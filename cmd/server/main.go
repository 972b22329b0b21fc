package main

import (
	"context"   // Startup and shutdown deadlines
	"errors"    // Server close detection
	"net/http"  // HTTP server
	"os"        // Signals
	"os/signal" // Signal notification
	"syscall"   // SIGTERM
	"time"      // Shutdown deadline

	"blood_donation/internal/api"     // Custom package for API handlers
	"blood_donation/internal/config"  // Custom package for configuration
	"blood_donation/internal/db"      // MongoDB connection
	"blood_donation/internal/payment" // Stripe payment intents
	"blood_donation/internal/store"   // MongoDB collections

	"github.com/gin-contrib/cors"  // CORS middleware
	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	if cfg.IsProd {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		logrus.SetLevel(logrus.DebugLevel)
	}
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}

	// Connect to MongoDB once; the client pools connections for every handler
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	client, err := db.Connect(ctx, cfg)
	cancel()
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}
	database := client.Database(cfg.DBName)

	// Setup Redis client if configured
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		// Test Redis connection; caching is optional so failures only disable it
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logrus.Warnf("Redis unavailable, caching disabled: %v", err)
			_ = redisClient.Close()
			redisClient = nil
		}
	}

	users := store.NewUsers(database, cfg.DBTimeout)
	donations := store.NewDonations(database, cfg.DBTimeout)
	payments := store.NewPayments(database, cfg.DBTimeout)

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	r := api.NewRouter(api.Deps{
		Users:     users,
		Donations: donations,
		Blogs:     store.NewBlogs(database, cfg.DBTimeout),
		Payments:  payments,
		Stats:     store.NewReporter(users, donations, payments),
		Intents:   payment.NewStripe(cfg.StripeKey, cfg.PaymentCurrency),
		DB:        db.Pinger{Client: client, Timeout: cfg.DBTimeout},
		Redis:     redisClient,
		CacheTTL:  cfg.CacheTTL,
		JWTSecret: cfg.JWTSecret,
	}, corsMiddleware(cfg.CORSOrigins))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logrus.Infof("Listening To The Port %s Successfully", cfg.Port) // Log server start
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("server failed: %v", err)
		}
	}()

	// Wait for a termination signal, then drain requests and release the pool
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("shutting down")

	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("HTTP shutdown failed: %v", err)
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		logrus.Errorf("MongoDB disconnect failed: %v", err)
	}
	logrus.Info("server stopped")
}

// corsMiddleware allows the configured origins, or any origin for "*"
func corsMiddleware(origins []string) gin.HandlerFunc {
	c := cors.DefaultConfig()
	c.AllowHeaders = append(c.AllowHeaders, "Authorization")
	c.ExposeHeaders = []string{"X-Request-ID"}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return cors.New(c)
}
