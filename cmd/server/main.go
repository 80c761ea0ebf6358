package main

import (
	"log"

	"anoa.com/diskusiforum/internal/config"
	"anoa.com/diskusiforum/internal/model"
	"anoa.com/diskusiforum/internal/server"
	"anoa.com/diskusiforum/pkg/database"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db := database.Connect()
	if err := migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	srv := server.NewServer(db, cfg)
	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Thread{},
		&model.Comment{},
		&model.Reply{},
		&model.Like{},
	)
}
