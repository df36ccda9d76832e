package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yuyuan12138/food-cal/controllers"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	food := r.Group("/food")
	{
		food.GET("", controllers.ListFoods)
		food.GET("/search", controllers.SearchFoods)
		food.GET("/recent", controllers.RecentSearches)
		food.GET("/:id", controllers.GetFood)
	}

	entries := r.Group("/entries")
	{
		entries.POST("", controllers.CreateEntry)
		entries.GET("", controllers.ListEntries)
		entries.PATCH("/:id", controllers.UpdateEntry)
		entries.DELETE("/:id", controllers.DeleteEntry)
	}

	r.GET("/summary", controllers.GetSummary)
	r.GET("/progress", controllers.GetProgress)

	profile := r.Group("/profile")
	{
		profile.GET("", controllers.GetProfile)
		profile.PUT("", controllers.UpdateProfile)
		profile.PUT("/target", controllers.SetCalorieTarget)
	}

	calc := r.Group("/calculator")
	{
		calc.POST("", controllers.Calculate)
		calc.POST("/apply", controllers.CalculateAndApply)
	}

	r.GET("/state", controllers.GetState)
	r.PUT("/state", controllers.UpdateState)

	r.GET("/ws", controllers.SummaryWS)

	return r
}
