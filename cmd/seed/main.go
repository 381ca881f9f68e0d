package main

import (
	"context"
	"log"
	"log/slog"
	"time"

	"jitter_backend/internal/feature/directory/adapters"
	"jitter_backend/internal/platform/config"
	"jitter_backend/internal/platform/db"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.DB.Driver == db.DriverMemory {
		log.Fatal("seed requires a persistent DB_DRIVER (postgres or sqlite)")
	}
	// シード投入時は常にテーブルを用意する
	cfg.DB.RunMigrations = true

	gormDB, err := db.Open(cfg.DB)
	if err != nil {
		log.Fatal(err)
	}

	users, err := adapters.LoadSeedFile(cfg.SeedFile)
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	n, err := adapters.NewUserSeeder(gormDB).Seed(ctx, users)
	if err != nil {
		log.Fatal("failed to seed users:", err)
	}
	slog.Info("seed ok", "file", cfg.SeedFile, "inserted", n)
}
