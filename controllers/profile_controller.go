package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yuyuan12138/food-cal/services"
)

// GET /profile
func GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, tracker.Profile())
}

// PUT /profile   partial update; absent fields keep their value
func UpdateProfile(c *gin.Context) {
	var req services.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	profile, err := tracker.UpdateProfile(c.Request.Context(), req)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// PUT /profile/target  { "daily_calorie_target": 2200 }
func SetCalorieTarget(c *gin.Context) {
	var req struct {
		DailyCalorieTarget int `json:"daily_calorie_target" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if err := tracker.SetCalorieTarget(c.Request.Context(), req.DailyCalorieTarget); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, tracker.Profile())
}
