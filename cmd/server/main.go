package main // Entry point package

import (
	"context" // Contexts for startup deadlines
	"log"     // Logging library
	"time"    // Timeout durations

	"github.com/joho/godotenv"    // Loads .env files in development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/MbarkyLyna/Alumni-Portal/internal/chat"       // Chat assistant (Gemini + canned fallback)
	"github.com/MbarkyLyna/Alumni-Portal/internal/config"     // Internal config loader
	"github.com/MbarkyLyna/Alumni-Portal/internal/database"   // MySQL pool + schema bootstrap
	"github.com/MbarkyLyna/Alumni-Portal/internal/handler"    // HTTP handlers
	"github.com/MbarkyLyna/Alumni-Portal/internal/middleware" // Rate limit + response cache middleware
	"github.com/MbarkyLyna/Alumni-Portal/internal/queue"      // Directory activity consumer
	"github.com/MbarkyLyna/Alumni-Portal/internal/repository" // DB repositories
	"github.com/MbarkyLyna/Alumni-Portal/internal/router"     // Internal router setup
)

func main() {
	_ = godotenv.Load() // Load .env when present; real env always wins

	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName) // Open MySQL pool
	if err != nil {
		log.Fatalf("database: %v", err) // No DB, no portal
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second) // Deadline for schema bootstrap
	if err := database.EnsureSchema(ctx, db); err != nil {
		cancel()
		log.Fatalf("database: %v", err)
	}
	cancel()

	rdb := config.NewRedisClient() // nil when Redis is unreachable; limiter and cache then pass through
	if rdb == nil {
		log.Println("redis unavailable: rate limiting and response caching disabled")
	}

	gemini, err := chat.NewGemini(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel) // nil client when no API key
	if err != nil {
		log.Printf("gemini init failed, canned replies only: %v", err)
	}

	// Repositories
	admins := repository.NewAdminRepo(db)
	alumni := repository.NewAlumniRepo(db)
	searches := repository.NewSearchRepo(db)

	// Handlers
	authH := handler.NewAuthHandler(cfg, admins)
	dirH := handler.NewDirectoryHandler(alumni, searches)
	uploadH := handler.NewUploadHandler(alumni, searches)
	adminH := handler.NewAdminAccountHandler(cfg, admins)
	chatH := handler.NewChatHandler(chat.NewService(gemini))

	// Middleware for the public surface
	limit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	e := echo.New() // Create Echo instance
	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH)
	router.RegisterPublic(e, dirH, chatH, limit, cache)
	router.RegisterAdmin(e, cfg.SessionSecret, dirH, uploadH, adminH)

	// Drain directory audit events into logs/ in the background.  The
	// consumer reconnects on its own; a missing broker only costs the audit
	// trail, never the API.
	go func() {
		if err := queue.StartActivityConsumer(); err != nil {
			log.Printf("activity consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
