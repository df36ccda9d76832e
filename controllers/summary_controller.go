package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yuyuan12138/food-cal/utils"
)

// GET /summary?date=2026-09-01   (defaults to today)
func GetSummary(c *gin.Context) {
	date := c.DefaultQuery("date", utils.TodayDate())
	if !utils.ValidDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date: want YYYY-MM-DD"})
		return
	}
	c.JSON(http.StatusOK, tracker.DailySummary(date))
}

// GET /progress?date=2026-09-01   consumed/goal/percent per tracked metric
func GetProgress(c *gin.Context) {
	date := c.DefaultQuery("date", utils.TodayDate())
	if !utils.ValidDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date: want YYYY-MM-DD"})
		return
	}
	c.JSON(http.StatusOK, tracker.Progress(date))
}
