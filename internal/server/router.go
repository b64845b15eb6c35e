package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/fairwaydreams/fairway-backend/internal/handlers"
	"github.com/fairwaydreams/fairway-backend/internal/middleware"
)

type RouterConfig struct {
	ServiceName        string
	AuthHandler        *handlers.AuthHandler
	AuthMiddleware     *middleware.AuthMiddleware
	ContactHandler     *handlers.ContactHandler
	GlossaryHandler    *handlers.GlossaryHandler
	HealthcheckHandler *handlers.HealthcheckHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(otelgin.Middleware(cfg.ServiceName))

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", cfg.HealthcheckHandler.Healthcheck)
	router.POST("/register", cfg.AuthHandler.Register)
	router.POST("/login", cfg.AuthHandler.Login)

	// ===============
	// || Protected ||
	// ===============
	protected := router.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	// Auth
	protected.POST("/refresh", cfg.AuthHandler.Refresh)
	protected.POST("/logout", cfg.AuthHandler.Logout)

	api := protected.Group("/api")
	// Contacts
	api.GET("/contacts", cfg.ContactHandler.List)
	api.POST("/contacts", cfg.ContactHandler.Create)
	api.GET("/contacts/:id", cfg.ContactHandler.GetByID)
	api.PUT("/contacts/:id", cfg.ContactHandler.Update)
	api.DELETE("/contacts/:id", cfg.ContactHandler.Delete)
	api.POST("/contacts/import", cfg.ContactHandler.ImportCSV)
	api.POST("/contacts/:id/ai-content", cfg.ContactHandler.GenerateAIContent)
	api.GET("/contacts/:id/report", cfg.ContactHandler.Report)
	// Glossary
	api.GET("/glossary", cfg.GlossaryHandler.Glossary)

	return router
}
