package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yuyuan12138/food-cal/models"
	"github.com/yuyuan12138/food-cal/services"
	"github.com/yuyuan12138/food-cal/utils"
)

func writeErr(c *gin.Context, err error) {
	switch {
	case services.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// POST /entries  { "food_id": "...", "meal": "lunch", "servings": 1.5, "date": "2026-09-01" }
func CreateEntry(c *gin.Context) {
	var req struct {
		FoodID   string  `json:"food_id" binding:"required"`
		Meal     string  `json:"meal" binding:"required"`
		Servings float64 `json:"servings" binding:"required"`
		Date     string  `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	food, err := catalog.Get(req.FoodID)
	if err != nil {
		writeErr(c, err)
		return
	}
	entry, err := tracker.AddEntry(c.Request.Context(), food, models.MealType(req.Meal), req.Servings, req.Date)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// PATCH /entries/:id  { "servings": 2 }
func UpdateEntry(c *gin.Context) {
	var req struct {
		Servings float64 `json:"servings" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	entry, err := tracker.UpdateEntryServings(c.Request.Context(), c.Param("id"), req.Servings)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DELETE /entries/:id
func DeleteEntry(c *gin.Context) {
	if err := tracker.DeleteEntry(c.Request.Context(), c.Param("id")); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

// GET /entries?date=2026-09-01   (defaults to today)
func ListEntries(c *gin.Context) {
	date := c.DefaultQuery("date", utils.TodayDate())
	if !utils.ValidDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date: want YYYY-MM-DD"})
		return
	}
	c.JSON(http.StatusOK, tracker.EntriesForDate(date))
}
