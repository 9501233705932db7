package app

import (
	"errors"
	"fmt"
	"time"

	"staffhub_backend/internal/auth"
	"staffhub_backend/internal/config"
	"staffhub_backend/internal/email"
	"staffhub_backend/internal/handlers"
	"staffhub_backend/internal/logger"
	"staffhub_backend/internal/middleware"
	"staffhub_backend/internal/models"
	"staffhub_backend/internal/repositories"
	"staffhub_backend/internal/routes"
	"staffhub_backend/internal/services"
	"staffhub_backend/internal/storage"
	"staffhub_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	cfg := config.Load()
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := gormDB.AutoMigrate(
		&models.Employee{},
		&models.Skill{},
		&models.Project{},
	); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter собирает весь граф зависимостей и возвращает готовый
// gin.Engine. Вынесено отдельно ради интеграционных тестов.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}

	tokens := auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTL)*time.Minute)

	emailProvider := initializeEmailProvider(cfg)

	serviceContainer := initializeServices(cfg, gormDB, storageInstance, tokens, emailProvider)
	appHandlers := initializeHandlers(serviceContainer, tokens)

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers, storageInstance.BasePath())

	return ginRouter
}

func initializeEmailProvider(cfg *config.Config) email.Provider {
	if !cfg.Email.Enabled {
		logger.Info("Email notifications disabled, using noop provider")
		return &email.NoopProvider{}
	}

	provider, err := email.NewSMTPProvider(email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	})
	if err != nil {
		logger.Warn("Failed to initialize SMTP provider, falling back to noop", "error", err)
		return &email.NoopProvider{}
	}
	return provider
}

// ServiceContainer - все сервисы приложения
type ServiceContainer struct {
	AuthService     services.AuthService
	EmployeeService services.EmployeeService
	SkillService    services.SkillService
	ProjectService  services.ProjectService
}

func initializeServices(
	cfg *config.Config,
	gormDB *gorm.DB,
	storageInstance storage.Storage,
	tokens *auth.TokenManager,
	emailProvider email.Provider,
) *ServiceContainer {
	employeeRepo := repositories.NewEmployeeRepository(gormDB)
	skillRepo := repositories.NewSkillRepository(gormDB)
	projectRepo := repositories.NewProjectRepository(gormDB)

	uploadCfg := services.UploadConfig{
		MaxSize:      cfg.Upload.MaxSize,
		AllowedTypes: cfg.Upload.AllowedTypes,
	}

	return &ServiceContainer{
		AuthService:     services.NewAuthService(employeeRepo, tokens),
		EmployeeService: services.NewEmployeeService(employeeRepo, skillRepo, emailProvider),
		SkillService:    services.NewSkillService(skillRepo, employeeRepo, storageInstance, uploadCfg, emailProvider),
		ProjectService:  services.NewProjectService(projectRepo, employeeRepo),
	}
}

func initializeHandlers(container *ServiceContainer, tokens *auth.TokenManager) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:     handlers.NewAuthHandler(baseHandler, container.AuthService),
		EmployeeHandler: handlers.NewEmployeeHandler(baseHandler, container.EmployeeService, tokens),
		SkillHandler:    handlers.NewSkillHandler(baseHandler, container.SkillService, tokens),
		ProjectHandler:  handlers.NewProjectHandler(baseHandler, container.ProjectService, tokens),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

// seedFirstAdmin создает первого администратора, если он задан в
// окружении и еще не существует
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.FirstAdminEmail == "" || cfg.FirstAdminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var admin models.Employee
	result := db.Where("email = ?", cfg.FirstAdminEmail).First(&admin)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", cfg.FirstAdminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	hash, err := auth.HashPassword(cfg.FirstAdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.Employee{
		Name:         "Administrator",
		Email:        cfg.FirstAdminEmail,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		Status:       models.StatusApproved,
	}
	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("First admin user created", "email", cfg.FirstAdminEmail)
	return nil
}
