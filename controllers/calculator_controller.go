package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yuyuan12138/food-cal/models"
	"github.com/yuyuan12138/food-cal/services"
)

type calculatorRequest struct {
	WeightKG      float64 `json:"weight_kg"`
	HeightCM      float64 `json:"height_cm"`
	AgeYears      int     `json:"age_years"`
	Gender        string  `json:"gender"`
	ActivityLevel string  `json:"activity_level"`
}

func computeFromRequest(req calculatorRequest) (models.CalorieNeeds, []string) {
	return services.ComputeNeeds(
		req.WeightKG,
		req.HeightCM,
		req.AgeYears,
		models.Gender(req.Gender),
		models.ActivityLevel(req.ActivityLevel),
	)
}

// POST /calculator
// Missing biometrics never fail: defaults are substituted and reported in
// "advisories".
func Calculate(c *gin.Context) {
	var req calculatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	needs, advisories := computeFromRequest(req)
	c.JSON(http.StatusOK, gin.H{"needs": needs, "advisories": advisories})
}

// POST /calculator/apply
// Computes needs and writes the recommendation into the profile goals.
func CalculateAndApply(c *gin.Context) {
	var req calculatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	needs, advisories := computeFromRequest(req)
	if err := tracker.ApplyNeeds(c.Request.Context(), needs); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"needs":      needs,
		"advisories": advisories,
		"profile":    tracker.Profile(),
	})
}
