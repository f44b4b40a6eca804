package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	firebase "firebase.google.com/go/v4"
	"github.com/gin-gonic/gin"
	"github.com/hotelguestmodule/hotelchat-api/internal/config"
	"github.com/hotelguestmodule/hotelchat-api/internal/handler"
	"github.com/hotelguestmodule/hotelchat-api/internal/middleware"
	"github.com/hotelguestmodule/hotelchat-api/internal/repository"
	"github.com/hotelguestmodule/hotelchat-api/internal/service"
	"github.com/hotelguestmodule/hotelchat-api/pkg/mailer"
	"github.com/hotelguestmodule/hotelchat-api/pkg/notification"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"google.golang.org/api/option"
)

// @title           Hotel Chat Notification API
// @version         1.0
// @description     Bridges the hotel guest-chat web app with email delivery (SMTP) and push notifications (FCM).

// @contact.name   API Support
// @contact.email  support@hotelchat.local

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      api.localhost
// @BasePath  /

func main() {
	// ==================== Load Config ====================
	cfg := config.Load()
	log.Printf("🚀 Starting Hotel Chat API Server [env=%s]", cfg.App.Env)

	// ==================== Firebase (Firestore + FCM) ====================
	ctx := context.Background()

	var opts []option.ClientOption
	if cfg.Firebase.ServiceAccount != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.Firebase.ServiceAccount)))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Firebase app: %v", err)
	}

	store, err := app.Firestore(ctx)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Firestore: %v", err)
	}
	defer store.Close()
	log.Println("✅ Connected to Firestore")

	fcmClient, err := app.Messaging(ctx)
	if err != nil {
		log.Fatalf("❌ Failed to get messaging client: %v", err)
	}
	pushClient := notification.New(fcmClient)
	log.Println("✅ Firebase FCM initialized")

	// ==================== Email (SMTP) ====================
	mailClient := mailer.New(mailer.Config{
		Host:      cfg.Mail.Host,
		Port:      cfg.Mail.Port,
		User:      cfg.Mail.User,
		Password:  cfg.Mail.Password,
		FromName:  cfg.Mail.FromName,
		VerifyURL: cfg.Link.VerifyURL,
	})
	log.Printf("📧 SMTP configured: %s", cfg.Mail.Addr())

	// ==================== Initialize Layers ====================
	// Repositories
	guestRepo := repository.NewGuestRepository(store)
	assistantRepo := repository.NewAssistantRepository(store)
	tokenRepo := repository.NewGuestTokenRepository(store)

	// Services
	notifyService := service.NewNotifyService(guestRepo, assistantRepo, tokenRepo, pushClient)

	// Handlers
	mailHandler := handler.NewMailHandler(mailClient)
	notifyHandler := handler.NewNotifyHandler(notifyService)

	// ==================== Gin Router ====================
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Swagger: static JSON + UI (served outside the /swagger wildcard)
	router.StaticFile("/docs/swagger.json", "./docs/swagger.json")
	url := ginSwagger.URL("/docs/swagger.json")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, url))

	// Global middleware
	router.Use(middleware.CORSMiddleware(cfg.CORS.Origins))
	router.Use(middleware.RequestID())

	// Root banner for uptime probes; depends on nothing
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "🌐 Hotel Chat Server is running!")
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "hotelchat-api",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	// ==================== API Routes ====================
	router.POST("/send-email", mailHandler.SendEmail)
	router.POST("/notify-assistants", notifyHandler.NotifyAssistants)
	router.POST("/notify-guest", notifyHandler.NotifyGuest)

	// ==================== Start Server ====================
	srv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Server failed: %v", err)
		}
	}()

	log.Printf("🌐 Hotel Chat API running on http://0.0.0.0:%s", cfg.App.Port)
	log.Printf("📄 Swagger JSON: http://0.0.0.0:%s/docs/swagger.json", cfg.App.Port)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	// Give ongoing requests 5 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server exited gracefully")
}
