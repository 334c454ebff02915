package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"foodshare-backend/cmd/config"
	migration "foodshare-backend/cmd/database/migrate"
	"foodshare-backend/internal/utils"
	"foodshare-backend/internal/utils/mailing"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed connecting to database: %v", err)
	}
	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed migrating database: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	notifier := mailing.NewNotifier(64)
	notifier.Start(ctx)

	app, sweeper, err := config.NewApp(db, notifier)
	if err != nil {
		log.Fatalf("failed setting up application: %v", err)
	}
	sweeper.Start(ctx)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		cancel()
		if err := app.Shutdown(); err != nil {
			log.Printf("error shutting down server: %v", err)
		}
	}()

	port := utils.GetConfig("PORT")
	if port == "" {
		port = "8080"
	}
	if err := app.Listen(fmt.Sprintf(":%s", port)); err != nil {
		log.Fatalf("failed starting server: %v", err)
	}
}
