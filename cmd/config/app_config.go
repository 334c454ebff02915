package config

import (
	"foodshare-backend/internal/api/handlers"
	"foodshare-backend/internal/api/routes"
	"foodshare-backend/internal/middleware"
	"foodshare-backend/internal/utils"
	"foodshare-backend/internal/utils/mailing"
	"foodshare-backend/internal/utils/storage"
	"foodshare-backend/pkg/admin"
	"foodshare-backend/pkg/donation"
	"foodshare-backend/pkg/dropoff"
	"foodshare-backend/pkg/jwt"
	"foodshare-backend/pkg/pickup"
	"foodshare-backend/pkg/review"
	"foodshare-backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB, notifier mailing.Notifier) (*fiber.App, *donation.Sweeper, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	donationRepository := donation.NewDonationRepository(db)
	pickupRepository := pickup.NewPickupRepository(db)
	dropOffRepository := dropoff.NewDropOffRepository(db)
	reviewRepository := review.NewReviewRepository(db)
	adminRepository := admin.NewAdminRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	donationService := donation.NewDonationService(donationRepository, s3)
	pickupService := pickup.NewPickupService(pickupRepository, donationRepository, notifier)
	dropOffService := dropoff.NewDropOffService(dropOffRepository)
	reviewService := review.NewReviewService(reviewRepository, userRepository)
	adminService := admin.NewAdminService(adminRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	donationHandler := handlers.NewDonationHandler(donationService, validator)
	pickupHandler := handlers.NewPickupHandler(pickupService, validator)
	dropOffHandler := handlers.NewDropOffHandler(dropOffService, validator)
	reviewHandler := handlers.NewReviewHandler(reviewService, validator)
	uploadHandler := handlers.NewUploadHandler(s3)
	adminHandler := handlers.NewAdminHandler(adminService, userService, donationService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		DonationHandler: donationHandler,
		PickupHandler:   pickupHandler,
		DropOffHandler:  dropOffHandler,
		ReviewHandler:   reviewHandler,
		UploadHandler:   uploadHandler,
		AdminHandler:    adminHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()

	sweeper := donation.NewSweeper(donationService, 5*time.Minute)
	return app, sweeper, nil
}
