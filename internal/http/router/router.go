package router

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/hr-directory/internal/config"
	"github.com/ignatzorin/hr-directory/internal/http/handlers"
	"github.com/ignatzorin/hr-directory/internal/http/middleware"
	"github.com/ignatzorin/hr-directory/internal/service"
)

// SetupRouter собирает маршруты приложения.
func SetupRouter(
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	searchHandler *handlers.SearchHandler,
	employeeHandler *handlers.EmployeeHandler,
	dictionaryHandler *handlers.DictionaryHandler,
	documentHandler *handlers.DocumentHandler,
	statsHandler *handlers.StatsHandler,
	healthHandler *handlers.HealthHandler,
	seedHandler *handlers.SeedHandler,
	tokenManager *service.TokenManager,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", healthHandler.Health)

	api := r.Group("/api")

	if seedHandler != nil && cfg.Env == "development" {
		api.POST("/seed", seedHandler.Seed)
	}

	authGroup := api.Group("/auth")
	authRateLimit := middleware.RateLimitMiddleware(cfg.RateLimitLimit, cfg.RateLimitPeriod)
	authGroup.Use(authRateLimit)
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/refresh", authHandler.Refresh)
	}

	// Защищённые маршруты
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(tokenManager))
	{
		// Расширенный поиск
		protected.POST("/search/employees", middleware.RateLimitMiddleware(cfg.RateLimitLimit, cfg.RateLimitPeriod), searchHandler.Search)
		protected.GET("/search/fields", searchHandler.Fields)

		// Каталог сотрудников
		protected.GET("/employees", employeeHandler.List)
		protected.POST("/employees", employeeHandler.Create)
		protected.GET("/employees/:id", middleware.UUIDValidator("id"), employeeHandler.Get)
		protected.PUT("/employees/:id", middleware.UUIDValidator("id"), employeeHandler.Update)
		protected.DELETE("/employees/:id", middleware.UUIDValidator("id"), employeeHandler.Delete)

		// Документы
		protected.POST("/employees/:id/documents", middleware.UUIDValidator("id"), documentHandler.Upload)
		protected.GET("/employees/:id/documents", middleware.UUIDValidator("id"), documentHandler.List)
		protected.GET("/documents/:id", middleware.UUIDValidator("id"), documentHandler.Download)
		protected.DELETE("/documents/:id", middleware.UUIDValidator("id"), documentHandler.Delete)

		// Справочники: чтение доступно всем авторизованным
		protected.GET("/dictionaries/:type", dictionaryHandler.List)

		// Статистика
		protected.GET("/stats", statsHandler.Stats)
	}

	// Изменение справочников - только администраторы
	admin := api.Group("/dictionaries")
	admin.Use(middleware.AuthMiddleware(tokenManager), middleware.RequireAdmin())
	{
		admin.POST("/:type", dictionaryHandler.Create)
		admin.PUT("/:type/:id", middleware.UUIDValidator("id"), dictionaryHandler.Update)
		admin.DELETE("/:type/:id", middleware.UUIDValidator("id"), dictionaryHandler.Delete)
	}

	return r
}
