package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/promoforge/prizes-backend/internal/config"
	"github.com/promoforge/prizes-backend/internal/handlers"
	"github.com/promoforge/prizes-backend/internal/middleware"
)

// HandlerDependencies collects the handlers the router wires up
type HandlerDependencies struct {
	AuthHandler    *handlers.AuthHandler
	PrizeHandler   *handlers.PrizeHandler
	SponsorHandler *handlers.SponsorHandler
}

// SetupRouter builds the gin engine with middleware and all routes
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
	}))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	// Public routes
	public := router.Group("/api/v1")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok"})
		})

		auth := public.Group("/auth")
		{
			auth.POST("/register", deps.AuthHandler.Register)
			auth.POST("/login", deps.AuthHandler.Login)
		}
	}

	// Protected routes
	protected := router.Group("/api/v1")
	protected.Use(middleware.JWTAuthMiddleware(cfg))
	{
		prizes := protected.Group("/prizes")
		{
			prizes.GET("", deps.PrizeHandler.ListPrizes)
			prizes.GET("/options", deps.PrizeHandler.GetPrizeOptions)
			prizes.POST("", deps.PrizeHandler.CreatePrize)
		}

		sponsors := protected.Group("/sponsors")
		{
			sponsors.GET("", deps.SponsorHandler.ListSponsors)
		}
	}

	return router
}
