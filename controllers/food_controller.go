package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yuyuan12138/food-cal/services"
)

// GET /food            full catalog
// GET /food?popular=1  foods tagged popular (the pre-search grid)
func ListFoods(c *gin.Context) {
	if c.Query("popular") != "" {
		c.JSON(http.StatusOK, catalog.Popular())
		return
	}
	c.JSON(http.StatusOK, catalog.All())
}

// GET /food/:id
func GetFood(c *gin.Context) {
	food, err := catalog.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, food)
}

// GET /food/search?q=apple
// A non-empty query is also recorded in the recent-searches list.
func SearchFoods(c *gin.Context) {
	q := c.Query("q")
	results := search.Search(q, catalog.All())
	tracker.RememberSearch(c.Request.Context(), q)
	c.JSON(http.StatusOK, results)
}

// GET /food/recent
func RecentSearches(c *gin.Context) {
	c.JSON(http.StatusOK, tracker.RecentSearches())
}
