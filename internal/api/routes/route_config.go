package routes

import (
	"foodshare-backend/domain"
	"foodshare-backend/internal/api/handlers"
	"foodshare-backend/internal/middleware"
	"foodshare-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	DonationHandler handlers.DonationHandler
	PickupHandler   handlers.PickupHandler
	DropOffHandler  handlers.DropOffHandler
	ReviewHandler   handlers.ReviewHandler
	UploadHandler   handlers.UploadHandler
	AdminHandler    handlers.AdminHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Donations()
	c.Pickups()
	c.DropOffs()
	c.Reviews()
	c.Uploads()
	c.Admin()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/auth")
	{
		auth.Post("/register", c.UserHandler.Register)
		auth.Post("/login", c.UserHandler.Login)
		auth.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Donations() {
	donations := c.App.Group("/api/donations")
	{
		donations.Get("", c.DonationHandler.GetDonations)
		donations.Get("/my", c.Middleware.AuthMiddleware(c.JWTService, domain.RoleDonor, domain.RoleAdmin), c.DonationHandler.GetUserDonations)
		donations.Get("/nearby/:lat/:lng", c.DonationHandler.GetNearbyDonations)
		donations.Post("", c.Middleware.AuthMiddleware(c.JWTService, domain.RoleDonor, domain.RoleAdmin), c.DonationHandler.CreateDonation)
		donations.Get("/:id", c.DonationHandler.GetDonationByID)
		donations.Put("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.DonationHandler.UpdateDonationStatus)
		donations.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.DonationHandler.DeleteDonation)
	}
}

func (c *Config) Pickups() {
	pickups := c.App.Group("/api/pickups")
	{
		pickups.Get("", c.Middleware.AuthMiddleware(c.JWTService, domain.RoleAdmin), c.PickupHandler.GetPickups)
		pickups.Get("/my", c.Middleware.AuthMiddleware(c.JWTService), c.PickupHandler.GetUserPickups)
		pickups.Post("", c.Middleware.AuthMiddleware(c.JWTService, domain.RolePickup, domain.RoleAdmin), c.PickupHandler.CreatePickup)
		pickups.Get("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.PickupHandler.GetPickupByID)
		pickups.Put("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.PickupHandler.CompletePickup)
		pickups.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.PickupHandler.CancelPickup)
	}
}

func (c *Config) DropOffs() {
	dropoffs := c.App.Group("/api/dropoffs")
	{
		dropoffs.Get("", c.DropOffHandler.GetDropOffs)
		dropoffs.Get("/nearby", c.DropOffHandler.GetNearbyDropOffs)
		dropoffs.Post("", c.Middleware.AuthMiddleware(c.JWTService, domain.RoleAdmin), c.DropOffHandler.CreateDropOff)
		dropoffs.Put("/:id", c.Middleware.AuthMiddleware(c.JWTService, domain.RoleAdmin), c.DropOffHandler.UpdateDropOff)
		dropoffs.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService, domain.RoleAdmin), c.DropOffHandler.DeleteDropOff)
	}
}

func (c *Config) Reviews() {
	reviews := c.App.Group("/api/reviews")
	{
		reviews.Get("/user/:id", c.ReviewHandler.GetUserReviews)
		reviews.Get("/my/given", c.Middleware.AuthMiddleware(c.JWTService), c.ReviewHandler.GetGivenReviews)
		reviews.Get("/my/received", c.Middleware.AuthMiddleware(c.JWTService), c.ReviewHandler.GetReceivedReviews)
		reviews.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.ReviewHandler.CreateReview)
		reviews.Put("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.ReviewHandler.UpdateReview)
		reviews.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.ReviewHandler.DeleteReview)
	}
}

func (c *Config) Uploads() {
	uploads := c.App.Group("/api/uploads")
	{
		uploads.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.UploadHandler.UploadFile)
		uploads.Get("/:id", c.UploadHandler.GetFile)
		uploads.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService, domain.RoleAdmin), c.UploadHandler.DeleteFile)
	}
}

func (c *Config) Admin() {
	admin := c.App.Group("/api/admin", c.Middleware.AuthMiddleware(c.JWTService, domain.RoleAdmin))
	{
		admin.Get("/stats", c.AdminHandler.GetStats)
		admin.Get("/users", c.AdminHandler.GetUsers)
		admin.Put("/users/:id/role", c.AdminHandler.UpdateUserRole)
		admin.Delete("/users/:id", c.AdminHandler.DeleteUser)
		admin.Get("/donations", c.AdminHandler.GetDonations)
		admin.Get("/dropoffs", c.DropOffHandler.GetDropOffs)
		admin.Post("/donations/expire", c.AdminHandler.ExpireDonations)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
}
