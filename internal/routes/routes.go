package routes

import (
	"staffhub_backend/internal/handlers"
	"staffhub_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP-маршруты приложения.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers, uploadsDir string) {
	api := ginRouter.Group("/api")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.EmployeeHandler.RegisterRoutes(api)
		appHandlers.SkillHandler.RegisterRoutes(api)
		appHandlers.ProjectHandler.RegisterRoutes(api)
	}

	// Файлы-сертификаты отдаются как статика
	ginRouter.Static("/uploads", uploadsDir)
	logger.Info("Static route /uploads registered", "dir", uploadsDir)
}
