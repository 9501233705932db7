package dto

import (
	"time"

	"staffhub_backend/internal/models"
)

// RequiredSkillInput - требование проекта
type RequiredSkillInput struct {
	SkillName        string                  `json:"skillName" validate:"required"`
	ProficiencyLevel models.ProficiencyLevel `json:"proficiencyLevel" validate:"required,oneof=Beginner Intermediate Expert"`
}

// AssignmentInput - пара (сотрудник, роль на проекте)
type AssignmentInput struct {
	EmployeeID string `json:"employeeId" validate:"required"`
	Role       string `json:"role" validate:"required"`
}

// CreateProjectRequest - создание проекта
type CreateProjectRequest struct {
	Name              string               `json:"name" validate:"required"`
	Description       string               `json:"description" validate:"required"`
	StartDate         time.Time            `json:"startDate" validate:"required"`
	EndDate           time.Time            `json:"endDate" validate:"required"`
	RequiredSkills    []RequiredSkillInput `json:"requiredSkills" validate:"dive"`
	AssignedEmployees []AssignmentInput    `json:"assignedEmployees" validate:"dive"`
	TeamSize          int                  `json:"teamSize" validate:"gte=0"`
}

// UpdateProjectRequest - правка проекта
type UpdateProjectRequest struct {
	Name           string               `json:"name" validate:"required"`
	Description    string               `json:"description" validate:"required"`
	StartDate      time.Time            `json:"startDate" validate:"required"`
	EndDate        time.Time            `json:"endDate" validate:"required"`
	Status         models.ProjectStatus `json:"status" validate:"required"`
	RequiredSkills []RequiredSkillInput `json:"requiredSkills" validate:"dive"`
	TeamSize       int                  `json:"teamSize" validate:"gte=0"`
}

// AssignEmployeesRequest - staffing-запрос: список заменяет
// существующие назначения целиком
type AssignEmployeesRequest struct {
	EmployeeAssignments []AssignmentInput `json:"employeeAssignments" validate:"required,dive"`
}

// ProjectResponse - ответ с проектом
type ProjectResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    *models.Project `json:"data,omitempty"`
}

// EligibleEmployeeDTO - кандидат для staffing-подсказки
type EligibleEmployeeDTO struct {
	EmployeeDTO
	ApprovedSkills []models.Skill `json:"approvedSkills"`
}
