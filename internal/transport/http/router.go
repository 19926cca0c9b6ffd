package handlers

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"kidsplatform/internal/infrastructure/security"
	"kidsplatform/internal/middleware"
)

func NewRouter(
	profileHandler *ProfileHandler,
	progressionHandler *ProgressionHandler,
	storeHandler *StoreHandler,
	petHandler *PetHandler,
	limiter *middleware.RateLimiter,
	tm *security.TokenManager,
	allowOrigins []string,
) *gin.Engine {
	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowOrigins = allowOrigins
	config.AllowCredentials = true
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"}
	r.Use(cors.New(config))

	api := r.Group("/api/v1")
	{
		profiles := api.Group("/profiles")
		{
			profiles.POST("", limiter.Limit("create_profile", 5, 1*time.Minute), profileHandler.Create)
			profiles.POST("/login", limiter.Limit("login", 5, 1*time.Minute), profileHandler.Login)
		}

		api.GET("/store/catalog", storeHandler.Catalog)

		authed := api.Group("")
		authed.Use(middleware.AuthMiddleware(tm))
		{
			authed.GET("/profile", profileHandler.Get)
			authed.PUT("/profile", profileHandler.Update)
			authed.POST("/profile/avatar", profileHandler.SelectAvatar)

			authed.POST("/rewards/stars", progressionHandler.AwardStars)
			authed.POST("/rewards/coins", progressionHandler.ReportMinigame)

			authed.POST("/games/:game/tasks", progressionHandler.CompleteTask)
			authed.GET("/games/:game/level", progressionHandler.GameProgress)

			authed.GET("/achievements", progressionHandler.Achievements)

			authed.POST("/store/avatars/:id/purchase", storeHandler.PurchaseAvatar)
			authed.POST("/store/pets/:id/purchase", storeHandler.PurchasePet)
			authed.POST("/store/items/:id/purchase", storeHandler.PurchaseItem)

			authed.GET("/pets", petHandler.List)
			authed.POST("/pets/:id/items/:item", petHandler.UseItem)
			authed.POST("/pets/:id/play", petHandler.Play)
		}
	}

	return r
}
