package handlers

import (
	"net/http"

	"staffhub_backend/internal/auth"
	"staffhub_backend/internal/middleware"
	"staffhub_backend/internal/models"
	"staffhub_backend/internal/services"
	"staffhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	*BaseHandler
	projectService services.ProjectService
	tokens         *auth.TokenManager
}

func NewProjectHandler(base *BaseHandler, projectService services.ProjectService, tokens *auth.TokenManager) *ProjectHandler {
	return &ProjectHandler{
		BaseHandler:    base,
		projectService: projectService,
		tokens:         tokens,
	}
}

func (h *ProjectHandler) RegisterRoutes(r *gin.RouterGroup) {
	projects := r.Group("/projects")
	projects.Use(middleware.AuthMiddleware(h.tokens))
	{
		// Чтение доступно любому аутентифицированному
		projects.GET("", h.GetAll)
		projects.GET("/:id", h.GetByID)
		projects.GET("/employee/:employeeId", h.GetByEmployee)

		// Управление проектами и staffing - HR и админ
		manage := middleware.RequireRoles(models.RoleHR, models.RoleAdmin)
		projects.POST("", manage, h.Create)
		projects.PUT("/:id", manage, h.Update)
		projects.DELETE("/:id", manage, h.Delete)
		projects.POST("/:id/assign", manage, h.AssignEmployees)
		projects.DELETE("/:id/employees/:employeeId", manage, h.RemoveEmployee)
		projects.GET("/:id/eligible-employees", manage, h.EligibleEmployees)
	}
}

func (h *ProjectHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateProjectRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	project, err := h.projectService.Create(&req, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ProjectResponse{
		Success: true,
		Message: "Project created successfully",
		Data:    project,
	})
}

func (h *ProjectHandler) GetAll(c *gin.Context) {
	projects, err := h.projectService.GetAll()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) GetByID(c *gin.Context) {
	project, err := h.projectService.GetByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// GetByEmployee - проекты, на которые назначен сотрудник
func (h *ProjectHandler) GetByEmployee(c *gin.Context) {
	projects, err := h.projectService.GetByEmployee(c.Param("employeeId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	var req dto.UpdateProjectRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	project, err := h.projectService.Update(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProjectResponse{
		Success: true,
		Message: "Project updated successfully",
		Data:    project,
	})
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.projectService.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Project deleted successfully",
	})
}

// AssignEmployees - список назначений заменяет существующий целиком
func (h *ProjectHandler) AssignEmployees(c *gin.Context) {
	var req dto.AssignEmployeesRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	project, err := h.projectService.AssignEmployees(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProjectResponse{
		Success: true,
		Message: "Employees assigned successfully",
		Data:    project,
	})
}

func (h *ProjectHandler) RemoveEmployee(c *gin.Context) {
	project, err := h.projectService.RemoveEmployee(c.Param("id"), c.Param("employeeId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProjectResponse{
		Success: true,
		Message: "Employee removed from project",
		Data:    project,
	})
}

// EligibleEmployees - staffing-подсказка: одобренные сотрудники,
// покрывающие все требуемые навыки проекта
func (h *ProjectHandler) EligibleEmployees(c *gin.Context) {
	candidates, err := h.projectService.EligibleEmployees(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"eligibleEmployees": candidates,
	})
}
