package routes

import (
	"github.com/jj55j7/fridge-mate/controllers"
	"github.com/jj55j7/fridge-mate/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter(
	fc *controllers.FoodController,
	dc *controllers.DiscoverController,
	mc *controllers.MatchController,
	devc *controllers.DeviceController,
	rc *controllers.RealtimeController,
) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.GET("/profile-options", controllers.GetProfileOptions)
		user.PUT("/location", controllers.UpdateLocation)
		user.POST("/photo", controllers.UploadProfilePhoto)
	}

	food := r.Group("/food")
	food.Use(middlewares.AuthMiddleware())
	{
		food.POST("/recognize", fc.RecognizeFood)
		food.POST("/posts", fc.AddFoodPost)
		food.GET("/posts", fc.ListFoodPosts)
		food.POST("/compatibility", fc.FoodCompatibility)
	}

	discover := r.Group("/discover")
	discover.Use(middlewares.AuthMiddleware())
	{
		// GET uses the requester's latest food post; POST accepts an
		// explicit food list in the body.
		discover.GET("/matches", dc.GetMatches)
		discover.POST("/matches", dc.GetMatches)
	}

	match := r.Group("/match")
	match.Use(middlewares.AuthMiddleware())
	{
		match.POST("/like", mc.LikeUser)
		match.GET("/list", mc.ListMatches)
	}

	chat := r.Group("/chat")
	chat.Use(middlewares.AuthMiddleware())
	{
		chat.POST("/conversations", controllers.StartConversation)
		chat.GET("/conversations", controllers.ListConversations)
		chat.POST("/conversations/:id/messages", controllers.SendMessage)
		chat.GET("/conversations/:id/messages", controllers.ListMessages)
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/events", rc.EventsWS)
	}

	devices := r.Group("/devices")
	devices.Use(middlewares.AuthMiddleware())
	{
		devices.POST("", devc.RegisterDevice)
	}

	return r
}
