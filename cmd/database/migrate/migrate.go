package migration

import (
	"fmt"
	"log"

	"foodshare-backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Donation{}); err != nil {
		log.Fatalf("Error migrating donation database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Pickup{}); err != nil {
		log.Fatalf("Error migrating pickup database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.DropOff{}); err != nil {
		log.Fatalf("Error migrating drop-off database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Review{}); err != nil {
		log.Fatalf("Error migrating review database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
