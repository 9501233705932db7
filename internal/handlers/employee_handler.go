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

type EmployeeHandler struct {
	*BaseHandler
	employeeService services.EmployeeService
	tokens          *auth.TokenManager
}

func NewEmployeeHandler(base *BaseHandler, employeeService services.EmployeeService, tokens *auth.TokenManager) *EmployeeHandler {
	return &EmployeeHandler{
		BaseHandler:     base,
		employeeService: employeeService,
		tokens:          tokens,
	}
}

func (h *EmployeeHandler) RegisterRoutes(r *gin.RouterGroup) {
	employees := r.Group("/employees")

	// Регистрация открыта, всё остальное за токеном
	employees.POST("", h.Register)

	protected := employees.Group("")
	protected.Use(middleware.AuthMiddleware(h.tokens))
	{
		// HR
		protected.GET("/regular", middleware.RequireRoles(models.RoleHR), h.GetRegular)
		protected.GET("/employees-skills", middleware.RequireRoles(models.RoleHR), h.GetEmployeesWithSkills)
		protected.GET("/:employeeId/approved-skills", middleware.RequireRoles(models.RoleHR), h.GetApprovedSkills)

		// Верификатор
		protected.GET("/pending-users", middleware.RequireRoles(models.RoleVerifier), h.GetPending)
		protected.GET("/approved-users", middleware.RequireRoles(models.RoleVerifier), h.GetApproved)
		protected.PUT("/verify/:id", middleware.RequireRoles(models.RoleVerifier), h.Verify)

		// Админ
		protected.GET("/admin/all-users", middleware.RequireRoles(models.RoleAdmin), h.GetAll)
		protected.PUT("/:id", middleware.RequireRoles(models.RoleAdmin), h.AdminUpdate)
		protected.DELETE("/:id", middleware.RequireRoles(models.RoleAdmin), h.Delete)
	}
}

func (h *EmployeeHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	employee, err := h.employeeService.Register(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"newEmployee": dto.NewEmployeeDTO(employee),
	})
}

func (h *EmployeeHandler) Verify(c *gin.Context) {
	var req dto.VerifyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	employee, err := h.employeeService.Verify(c.Param("id"), req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "User " + string(employee.Status) + " successfully.",
		"employee": dto.NewEmployeeDTO(employee),
	})
}

func (h *EmployeeHandler) AdminUpdate(c *gin.Context) {
	var req dto.AdminUpdateRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	employee, err := h.employeeService.AdminUpdate(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "User updated successfully",
		"employee": dto.NewEmployeeDTO(employee),
	})
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	if err := h.employeeService.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted"})
}

func (h *EmployeeHandler) GetAll(c *gin.Context) {
	employees, err := h.employeeService.GetAll()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

func (h *EmployeeHandler) GetRegular(c *gin.Context) {
	employees, err := h.employeeService.GetRegular()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

func (h *EmployeeHandler) GetPending(c *gin.Context) {
	employees, err := h.employeeService.GetPending()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

func (h *EmployeeHandler) GetApproved(c *gin.Context) {
	employees, err := h.employeeService.GetApproved()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

func (h *EmployeeHandler) GetEmployeesWithSkills(c *gin.Context) {
	employees, err := h.employeeService.GetAllWithApprovedSkills()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

func (h *EmployeeHandler) GetApprovedSkills(c *gin.Context) {
	result, err := h.employeeService.GetApprovedSkills(c.Param("employeeId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
