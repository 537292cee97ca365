package routes

import (
	"pc-builder-backend/internal/api/handlers"
	"pc-builder-backend/internal/api/middleware"
	"pc-builder-backend/internal/auth"
	"pc-builder-backend/internal/config"
	"pc-builder-backend/internal/repository"
	"pc-builder-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application.
// Literal path segments ("/compatible", "/mine", "/duplicate", "/like") are
// registered before their parameterized siblings; gin's routing tree resolves
// them deterministically either way, and the handler tests pin the precedence.
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validate := validator.New()

	// Initialize repositories
	componentRepo := repository.NewComponentRepository(db)
	compatibilityRepo := repository.NewCompatibilityRepository(db)
	buildRepo := repository.NewBuildRepository(db)
	likeRepo := repository.NewBuildLikeRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Initialize services
	componentService := service.NewComponentService(componentRepo, validate)
	compatibilityService := service.NewCompatibilityService(compatibilityRepo, componentRepo)
	buildService := service.NewBuildService(buildRepo, likeRepo, componentRepo, validate)
	userService := service.NewUserService(userRepo, validate)

	// Initialize auth
	authService := auth.NewService(cfg.JWTSecret)
	authMiddleware := auth.NewMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	componentHandler := handlers.NewComponentHandler(componentService, compatibilityService)
	buildHandler := handlers.NewBuildHandler(buildService)
	userHandler := handlers.NewUserHandler(userService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - all endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())

	{
		// Component catalog and compatibility ledger
		components := v1.Group("/components")
		{
			components.GET("", componentHandler.ListComponents)
			components.GET("/compatible", componentHandler.QueryCompatible)
			components.GET("/:id", componentHandler.GetComponent)
			components.GET("/:id/compatibility", componentHandler.ListCompatibility)

			// Catalog and ledger mutations are admin-only
			admin := components.Group("", authMiddleware.RequireAdmin())
			{
				admin.POST("", componentHandler.CreateComponent)
				admin.PUT("/:id", componentHandler.UpdateComponent)
				admin.DELETE("/:id", componentHandler.DeleteComponent)
				admin.PUT("/:id/compatibility", componentHandler.ReplaceCompatibility)
				admin.DELETE("/:id/compatibility", componentHandler.PurgeCompatibility)
			}
		}

		// Builds
		builds := v1.Group("/builds")
		{
			builds.GET("", buildHandler.ListPublicBuilds)
			builds.GET("/mine", buildHandler.ListMyBuilds)
			builds.POST("", buildHandler.CreateBuild)
			builds.GET("/:id", buildHandler.GetBuild)
			builds.PUT("/:id", buildHandler.UpdateBuild)
			builds.DELETE("/:id", buildHandler.DeleteBuild)
			builds.POST("/:id/duplicate", buildHandler.DuplicateBuild)
			builds.POST("/:id/like", buildHandler.ToggleLike)
		}

		// Admin user dashboard
		users := v1.Group("/users", authMiddleware.RequireAdmin())
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.CreateUser)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
		}
	}

	return router
}
