package config

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/yuyuan12138/food-cal/storage"
)

type Config struct {
	Port          string
	StorageDriver string // file | postgres | s3
	StateDir      string
}

// Load reads .env (if present) and the environment. Missing values fall
// back to a file store under ./data on port 8080.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := Config{
		Port:          getenv("PORT", "8080"),
		StorageDriver: getenv("STORAGE_DRIVER", "file"),
		StateDir:      getenv("STATE_DIR", "data"),
	}
	return cfg
}

// OpenStore builds the snapshot store for the configured driver. An
// unusable store is fatal: the tracker cannot run without somewhere to
// persist state.
func OpenStore(ctx context.Context, cfg Config) storage.Store {
	switch cfg.StorageDriver {
	case "file":
		return storage.NewFileStore(cfg.StateDir)
	case "postgres":
		st, err := storage.NewPostgresStore()
		if err != nil {
			log.Fatalf("postgres snapshot store: %v", err)
		}
		return st
	case "s3":
		st, err := storage.NewS3Store(ctx)
		if err != nil {
			log.Fatalf("s3 snapshot store: %v", err)
		}
		return st
	default:
		log.Fatalf("unknown STORAGE_DRIVER %q (want file, postgres or s3)", cfg.StorageDriver)
		return nil
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
