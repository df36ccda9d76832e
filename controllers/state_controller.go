package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yuyuan12138/food-cal/models"
)

// GET /state   current UI selection and recent searches
func GetState(c *gin.Context) {
	date, meal := tracker.Selection()
	c.JSON(http.StatusOK, gin.H{
		"selected_date":   date,
		"selected_meal":   meal,
		"recent_searches": tracker.RecentSearches(),
	})
}

// PUT /state  { "selected_date": "...", "selected_meal": "lunch" }
// Either field may be omitted.
func UpdateState(c *gin.Context) {
	var req struct {
		SelectedDate string `json:"selected_date"`
		SelectedMeal string `json:"selected_meal"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	ctx := c.Request.Context()
	if req.SelectedDate != "" {
		if err := tracker.SetSelectedDate(ctx, req.SelectedDate); err != nil {
			writeErr(c, err)
			return
		}
	}
	if req.SelectedMeal != "" {
		if err := tracker.SetSelectedMeal(ctx, models.MealType(req.SelectedMeal)); err != nil {
			writeErr(c, err)
			return
		}
	}
	GetState(c)
}
