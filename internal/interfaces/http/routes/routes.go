package routes

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/salusmind/psicossocial-api/internal/application/usecases"
	"github.com/salusmind/psicossocial-api/internal/domain/entities"
	"github.com/salusmind/psicossocial-api/internal/domain/repositories"
	"github.com/salusmind/psicossocial-api/internal/interfaces/http/handlers"
	"github.com/salusmind/psicossocial-api/internal/interfaces/http/middleware"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Add performance middleware
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// Add ETag support for efficient caching
	app.Use(etag.New())

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	secret := os.Getenv("JWT_SECRET")

	// Repositories
	companyRepo := repositories.NewCompanyRepository(db)
	userRepo := repositories.NewUserRepository(db)
	campaignRepo := repositories.NewCampaignRepository(db)
	responseRepo := repositories.NewResponseRepository(db)

	// Use Cases
	authUseCase := usecases.NewAuthUseCase(userRepo, secret)
	analyticsUseCase := usecases.NewAnalyticsUseCase(companyRepo, responseRepo)
	campaignUseCase := usecases.NewCampaignUseCase(campaignRepo)
	companyUseCase := usecases.NewCompanyUseCase(companyRepo)
	userUseCase := usecases.NewUserUseCase(userRepo)
	responseUseCase := usecases.NewResponseUseCase(campaignRepo, responseRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authUseCase)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsUseCase)
	campaignHandler := handlers.NewCampaignHandler(campaignUseCase)
	companyHandler := handlers.NewCompanyHandler(companyUseCase)
	userHandler := handlers.NewUserHandler(userUseCase)
	responseHandler := handlers.NewResponseHandler(responseUseCase, userUseCase)

	api := app.Group("/api")

	// Auth routes (públicas)
	api.Post("/auth/login", authHandler.Login)

	protected := api.Group("/", middleware.Protected(secret))

	// Analytics routes
	analytics := protected.Group("/analytics", middleware.RequireCompany())
	analytics.Get("/dashboard", analyticsHandler.GetDashboard)

	// Campaign routes
	campaigns := protected.Group("/campaigns")
	campaigns.Get("/", campaignHandler.List)
	campaigns.Post("/", campaignHandler.Create)
	campaigns.Get("/:id", campaignHandler.Get)
	campaigns.Put("/:id", campaignHandler.Update)
	campaigns.Delete("/:id", campaignHandler.Delete)

	// Survey submission (colaboradores)
	surveys := protected.Group("/surveys", middleware.RequireRole(entities.RoleColaborador))
	surveys.Post("/responses", responseHandler.Submit)

	// Admin routes (staff)
	admin := protected.Group("/admin", middleware.RequireRole(entities.RoleAdmin))

	companies := admin.Group("/companies")
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.Get)
	companies.Put("/:id", companyHandler.Update)
	companies.Delete("/:id", companyHandler.Delete)

	users := admin.Group("/users")
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Get("/:id", userHandler.Get)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
}
