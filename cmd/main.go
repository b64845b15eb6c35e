package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/fairwaydreams/fairway-backend/internal/clients/redis"
	"github.com/fairwaydreams/fairway-backend/internal/db"
	"github.com/fairwaydreams/fairway-backend/internal/handlers"
	"github.com/fairwaydreams/fairway-backend/internal/logger"
	"github.com/fairwaydreams/fairway-backend/internal/middleware"
	"github.com/fairwaydreams/fairway-backend/internal/observability"
	"github.com/fairwaydreams/fairway-backend/internal/repos"
	"github.com/fairwaydreams/fairway-backend/internal/server"
	"github.com/fairwaydreams/fairway-backend/internal/services"
	"github.com/fairwaydreams/fairway-backend/internal/utils"
)

func main() {
	// .env is optional; in containers everything arrives via the environment.
	_ = godotenv.Load()

	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	serviceName := utils.GetEnv("SERVICE_NAME", "fairway-backend", log)
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTokenTTL := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)

	// Tracing
	shutdownTracing := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: serviceName,
		Environment: utils.GetEnv("APP_ENV", "development", log),
		Version:     utils.GetEnv("APP_VERSION", "dev", log),
	})
	if shutdownTracing != nil {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdownTracing(ctx)
		}()
	}

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Warn("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up repos from main...")
	userRepo := repos.NewUserRepo(thePG, log)
	userTokenRepo := repos.NewUserTokenRepo(thePG, log)
	contactRepo := repos.NewContactRepo(thePG, log)

	// Optional infrastructure; the API degrades rather than refusing to boot.
	reportCache, err := redis.NewCache(log)
	if err != nil {
		log.Warn("Could not init report cache, reports will not be cached", "error", err)
		reportCache = nil
	} else {
		defer reportCache.Close()
	}
	openaiClient, err := services.NewOpenAIClient(log)
	if err != nil {
		log.Warn("Could not init OpenAIClient, ai content generation disabled", "error", err)
		openaiClient = nil
	}

	// Services
	log.Info("Setting up services from main...")
	authService := services.NewAuthService(thePG, log, userRepo, userTokenRepo, jwtSecretKey,
		time.Duration(accessTokenTTL)*time.Second, time.Duration(refreshTokenTTL)*time.Second)
	contactService := services.NewContactService(thePG, log, contactRepo)
	reportService := services.NewReportService(thePG, log, contactRepo, reportCache)
	aiContentService := services.NewAIContentService(thePG, log, contactRepo, openaiClient)

	// Handlers
	log.Info("Setting up handlers from main...")
	authHandler := handlers.NewAuthHandler(authService)
	contactHandler := handlers.NewContactHandler(contactService, aiContentService, reportService)
	glossaryHandler := handlers.NewGlossaryHandler()
	healthcheckHandler := handlers.NewHealthcheckHandler()

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		ServiceName:        serviceName,
		AuthHandler:        authHandler,
		AuthMiddleware:     authMiddleware,
		ContactHandler:     contactHandler,
		GlossaryHandler:    glossaryHandler,
		HealthcheckHandler: healthcheckHandler,
	})

	port := utils.GetEnv("PORT", "8080", log)
	log.Info("Server listening", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Server failed", "error", err)
	}
}
