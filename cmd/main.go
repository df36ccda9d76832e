package main

import (
	"context"
	"log"

	"github.com/yuyuan12138/food-cal/config"
	"github.com/yuyuan12138/food-cal/controllers"
	"github.com/yuyuan12138/food-cal/routes"
	"github.com/yuyuan12138/food-cal/services"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	catalog, err := services.NewCatalogService(services.SeedCatalog())
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}

	store := config.OpenStore(ctx, cfg)
	hub := services.NewSummaryHub()
	tracker := services.NewTrackerStore(store, hub)
	if err := tracker.Load(ctx); err != nil {
		log.Fatalf("restore state: %v", err)
	}

	controllers.Init(catalog, services.NewSearchService(), tracker, hub)

	r := routes.SetupRouter()
	log.Printf("food-cal listening on :%s (%d foods, %s storage)", cfg.Port, catalog.Len(), cfg.StorageDriver)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
