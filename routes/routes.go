package routes

import (
	"go-cropsense/auth"
	"go-cropsense/handlers"

	"github.com/gin-gonic/gin"
)

func SetupRouter(
	authService *auth.Service,
	authHandler *handlers.AuthHandler,
	chatHandler *handlers.ChatHandler,
	detectHandler *handlers.DetectHandler,
) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Hello, welcome to CropSense!",
		})
	})

	api := r.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/logout", authHandler.Logout)
			authRoutes.GET("/me", handlers.RequireAuth(authService), authHandler.Me)
		}

		api.POST("/chat", handlers.RequireAuth(authService), chatHandler.Chat)
		api.POST("/detect-crops", detectHandler.DetectCrops)
		api.POST("/detect-comprehensive", detectHandler.DetectComprehensive)
		api.POST("/detect", handlers.RequireAuth(authService), detectHandler.Detect)
		api.GET("/history", handlers.RequireAuth(authService), detectHandler.History)
	}

	return r
}
