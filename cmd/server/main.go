package main

import (
	"log"

	"gorm.io/gorm"

	"jitter_backend/internal/app/di"
	"jitter_backend/internal/app/router"
	directoryhandler "jitter_backend/internal/feature/directory/transport/handler"
	"jitter_backend/internal/feature/directory/usecase"
	"jitter_backend/internal/platform/config"
	infradb "jitter_backend/internal/platform/db"
	healthhandler "jitter_backend/internal/platform/http/handler"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// db（memoryドライバーではDB接続なし）
	var (
		gormDB *gorm.DB
		pinger healthhandler.Pinger
	)
	if cfg.DB.Driver != infradb.DriverMemory {
		gormDB, err = infradb.Open(cfg.DB)
		if err != nil {
			log.Fatal(err)
		}
		sqlDB, err := gormDB.DB()
		if err != nil {
			log.Fatal(err)
		}
		defer func() {
			if err := sqlDB.Close(); err != nil {
				log.Println("[ERROR] Failed to close DB:", err)
			}
		}()
		pinger = sqlDB
	}

	// Repository
	userRepo, err := di.NewUserRepository(cfg, gormDB)
	if err != nil {
		log.Fatal(err)
	}

	// Usecase
	directoryUC := usecase.NewUserDirectory(userRepo)

	// Handler
	directoryH := directoryhandler.NewDirectoryHandler(directoryUC)
	healthH := healthhandler.NewHealthHandler(pinger)

	// ルータ生成
	r := router.NewRouter(healthH, directoryH, cfg.JWTSecret)

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
