package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"staffhub_backend/internal/appErrors"
	"staffhub_backend/internal/auth"
	"staffhub_backend/internal/middleware"
	"staffhub_backend/internal/models"
	"staffhub_backend/internal/services"
	"staffhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	*BaseHandler
	skillService services.SkillService
	tokens       *auth.TokenManager
}

func NewSkillHandler(base *BaseHandler, skillService services.SkillService, tokens *auth.TokenManager) *SkillHandler {
	return &SkillHandler{
		BaseHandler:  base,
		skillService: skillService,
		tokens:       tokens,
	}
}

func (h *SkillHandler) RegisterRoutes(r *gin.RouterGroup) {
	skills := r.Group("/skills")
	skills.Use(middleware.AuthMiddleware(h.tokens))
	{
		// Ревью заявок - HR и верификатор
		skills.GET("/pending", middleware.RequireRoles(models.RoleHR, models.RoleVerifier), h.GetPending)
		skills.PATCH("/:id/approve", middleware.RequireRoles(models.RoleHR, models.RoleVerifier), h.Approve)
		skills.PATCH("/:id/reject", middleware.RequireRoles(models.RoleHR, models.RoleVerifier), h.Reject)

		// Владелец своей заявки (HR и админ могут за любого)
		skills.GET("/:employeeId", h.GetByEmployee)
		skills.POST("", h.Create)
		skills.PUT("/:id", h.Update)
		skills.DELETE("/:id", h.Delete)
	}
}

// actor собирает инициатора операции из claims токена
func (h *SkillHandler) actor(c *gin.Context) (services.Actor, bool) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return services.Actor{}, false
	}
	return services.Actor{
		ID:   userID,
		Role: models.EmployeeRole(c.GetString("role")),
	}, true
}

func (h *SkillHandler) GetByEmployee(c *gin.Context) {
	skills, err := h.skillService.GetByEmployee(c.Param("employeeId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, skills)
}

func (h *SkillHandler) GetPending(c *gin.Context) {
	skills, err := h.skillService.GetPending()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, skills)
}

func (h *SkillHandler) Create(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req dto.CreateSkillRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}
	if !h.attachCertificate(c, &req.CertificateFile) {
		return
	}

	skill, err := h.skillService.Create(c.Request.Context(), actor, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SkillResponse{
		Message: "Skill added successfully",
		Skill:   skill,
	})
}

func (h *SkillHandler) Update(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req dto.UpdateSkillRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}
	if !h.attachCertificate(c, &req.CertificateFile) {
		return
	}

	skill, err := h.skillService.Update(c.Request.Context(), actor, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SkillResponse{
		Message: "Skill updated successfully",
		Skill:   skill,
	})
}

func (h *SkillHandler) Delete(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	if err := h.skillService.Delete(actor, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Skill deleted successfully"})
}

func (h *SkillHandler) Approve(c *gin.Context) {
	skill, err := h.skillService.Approve(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SkillResponse{
		Message: "Skill approved successfully",
		Skill:   skill,
	})
}

func (h *SkillHandler) Reject(c *gin.Context) {
	skill, err := h.skillService.Reject(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SkillResponse{
		Message: "Skill rejected successfully",
		Skill:   skill,
	})
}

// attachCertificate подкладывает файл из формы, если он есть.
// Отсутствие файла - не ошибка.
func (h *SkillHandler) attachCertificate(c *gin.Context, dst **multipart.FileHeader) bool {
	if c.ContentType() != "multipart/form-data" {
		return true
	}

	file, err := c.FormFile("certificateFile")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return true
		}
		appErrors.HandleError(c, appErrors.NewBadRequestError("Invalid certificate file: "+err.Error()))
		return false
	}
	*dst = file
	return true
}
