package controllers

import "github.com/yuyuan12138/food-cal/services"

// Shared handler dependencies, wired once at startup.
var (
	catalog *services.CatalogService
	search  *services.SearchService
	tracker *services.TrackerStore
	hub     *services.SummaryHub
)

func Init(c *services.CatalogService, s *services.SearchService, t *services.TrackerStore, h *services.SummaryHub) {
	catalog = c
	search = s
	tracker = t
	hub = h
}
