package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chatcore/internal/config"
	"chatcore/internal/handler"
	"chatcore/internal/repository"
	"chatcore/internal/service"
	"chatcore/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Print version info
	log.Printf("Real Estate Chat Assistant")
	log.Printf("Version: %s", Version)
	log.Printf("Build Time: %s", BuildTime)
	log.Printf("Git Commit: %s", GitCommit)
	log.Println("")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Conversation store: Redis when configured, in-memory otherwise
	gallery := store.DefaultGallery(cfg.Chat.GallerySize)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	var conversations store.ConversationStore
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		conversations = store.NewRedisStore(rdb, gallery, rng)
		log.Printf("✅ Using Redis conversation store at %s", cfg.Redis.Addr)
	} else {
		conversations = store.NewMemoryStore(gallery, rng)
		log.Println("✅ Using in-memory conversation store")
	}

	// Optional Postgres message archive
	var archive *repository.MessageArchive
	if cfg.Postgres.Enabled {
		archive, err = repository.NewMessageArchive(
			cfg.Postgres.DSN,
			cfg.Postgres.MaxConnections,
			cfg.Postgres.MaxIdleConnections,
		)
		if err != nil {
			log.Fatalf("Failed to connect to message archive: %v", err)
		}
		defer archive.Close()
		log.Println("✅ Connected to PostgreSQL message archive")
	} else {
		log.Println("⚠️  Message archive is disabled - set DATABASE_URL to enable it")
	}

	// Upstream answering service client
	answerer := service.NewAutoChatClient(
		cfg.Upstream.BaseURL,
		time.Duration(cfg.Upstream.Timeout)*time.Second,
	)
	log.Printf("✅ Answering service client initialized")
	log.Printf("   - Base URL: %s", cfg.Upstream.BaseURL)
	log.Printf("   - Timeout: %ds", cfg.Upstream.Timeout)

	// Initialize services
	var chatService *service.ChatService
	if archive != nil {
		chatService = service.NewChatService(answerer, conversations, nil, archive)
	} else {
		chatService = service.NewChatService(answerer, conversations, nil, nil)
	}

	log.Println("✅ Services initialized")

	// Initialize handlers
	chatHandler := handler.NewChatHandler(chatService)
	conversationHandler := handler.NewConversationHandler(conversations, cfg.Chat.DefaultLanguage)
	exportHandler := handler.NewExportHandler(conversations)

	// Setup Gin router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":     "healthy",
			"service":    "real-estate-chat-assistant",
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// Version endpoint
	router.GET("/version", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// API routes
	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/ui-texts", conversationHandler.UITexts)

		apiV1.POST("/conversations", conversationHandler.Create)
		apiV1.GET("/conversations/active", conversationHandler.Active)
		apiV1.GET("/conversations/:id", conversationHandler.Get)
		apiV1.POST("/conversations/:id/select", conversationHandler.Select)
		apiV1.POST("/conversations/:id/language", conversationHandler.SetLanguage)

		apiV1.POST("/conversations/:id/chat", chatHandler.Send)
		apiV1.GET("/conversations/:id/messages/:mid/table.csv", exportHandler.TableCSV)
	}

	// Serve the fallback gallery images and any other frontend assets
	setupStaticFiles(router, cfg.Server.StaticDir)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("🚀 Starting server on %s", addr)
	log.Printf("📝 API Documentation: http://localhost:%d/api/v1", cfg.Server.Port)

	// Graceful shutdown
	go func() {
		if err := router.Run(addr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	log.Println("✅ Server stopped")
}
