package routes

import (
	"github.com/gin-gonic/gin"

	"SinOutGo/config"
	"SinOutGo/controllers"
	"SinOutGo/middleware"
	"SinOutGo/models"
	"SinOutGo/repositories"
	"SinOutGo/services"
)

// RegisterRoutes wires repositories, services and controllers onto the
// gin engine.
func RegisterRoutes(r *gin.Engine, conf config.Config) {
	userRepo := repositories.NewUserRepository(config.DB)
	patientRepo := repositories.NewPatientRepository(config.DB)
	mappingRepo := repositories.NewMappingRepository(config.DB)
	historyRepo := repositories.NewHistoryRepository(config.DB)
	tokenRepo := repositories.NewResetTokenRepository(config.DB)

	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo)
	patientService := services.NewPatientService(patientRepo)
	mappingService := services.NewMappingService(mappingRepo)
	historyService := services.NewHistoryService(historyRepo)
	emailService := services.NewBrevoEmailService(conf)
	limiter := services.NewRedisRateLimiter(config.RedisClient)
	resetService := services.NewPasswordResetService(userRepo, tokenRepo, limiter, emailService)

	authController := controllers.NewAuthController(authService)
	userController := controllers.NewUserController(userService)
	patientController := controllers.NewPatientController(patientService)
	mappingController := controllers.NewMappingController(mappingService, historyService, patientService)
	historyController := controllers.NewHistoryController(historyService, patientService)
	resetController := controllers.NewPasswordResetController(resetService)

	// Public routes
	public := r.Group("/api/v1")
	{
		public.POST("/auth/register", authController.Register)
		public.POST("/auth/login", authController.Login)
		public.POST("/auth/forgot-password", resetController.ForgotPassword)
		public.POST("/auth/reset-password", resetController.ResetPassword)
	}

	// Authenticated routes
	private := r.Group("/api/v1")
	private.Use(middleware.AuthMiddleware())
	{
		private.POST("/auth/change-password", authController.ChangePassword)

		private.GET("/profile", userController.GetMe)
		private.GET("/users/:id", userController.GetUser)
		private.PUT("/users/:id", userController.UpdateUser)
		private.DELETE("/users/:id", userController.DeleteUser)

		private.POST("/patients", patientController.CreatePatient)
		private.GET("/patients", patientController.ListPatients)
		private.GET("/patients/:id", patientController.GetPatient)
		private.PUT("/patients/:id", patientController.UpdatePatient)
		private.DELETE("/patients/:id", patientController.DeletePatient)

		private.POST("/mappings", mappingController.CreateMapping)
		private.GET("/mappings", mappingController.ListMappings)
		private.GET("/mappings/:id", mappingController.GetMapping)
		private.PUT("/mappings/:id", mappingController.UpdateMapping)
		private.DELETE("/mappings/:id", mappingController.DeleteMapping)
		private.POST("/detect", mappingController.Detect)

		private.GET("/history", historyController.ListHistory)
		private.GET("/history/statistics", historyController.GetStatistics)
	}

	// Admin-only routes
	admin := r.Group("/api/v1")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("/users", userController.ListUsers)
		admin.DELETE("/history/cleanup", historyController.Cleanup)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
