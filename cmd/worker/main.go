package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"text-annotation-be/internal/bootstrap"
	"text-annotation-be/internal/config"
	"text-annotation-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	if err := database.Migrate(gormDB); err != nil {
		log.Panicf("Unable to migrate database: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Event Bridge...")
		if err := container.EventBridgeService.Consume(context.Background()); err != nil {
			log.Printf("Background Event Bridge Error: %v", err)
		}
	}()
	go container.EventLogService.Start()

	// 5. Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Printf("Received signal %s, shutting down", sig)
}
