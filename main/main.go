package main

import (
	"log"

	"github.com/sanyokkme/fiyouai/api"
	"github.com/sanyokkme/fiyouai/data"
	"github.com/sanyokkme/fiyouai/scheduler"
	"github.com/sanyokkme/fiyouai/service"
	"github.com/sanyokkme/fiyouai/settings"
)

func main() {
	cfg := settings.Load()

	var store data.Store
	if cfg.SupabaseURL != "" {
		log.Println("Using hosted Supabase store")
		store = data.NewPostgrestStore(cfg.SupabaseURL, cfg.SupabaseServiceRoleKey)
	} else {
		log.Println("Using local sqlite store")
		sqliteStore, err := data.NewSQLiteStore(cfg.DataDir)
		if err != nil {
			log.Fatalf("Failed to initialize sqlite store: %v", err)
		}
		store = sqliteStore
	}

	sched := scheduler.New(service.NewNutritionService(store))
	if err := sched.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}

	router := api.NewRouter(cfg, store)
	router.SetupAndRunApiServer()
}
