package dto

import (
	"staffhub_backend/internal/models"
)

// RegisterRequest - запрос регистрации аккаунта
type RegisterRequest struct {
	Name       string              `json:"name" validate:"required"`
	Email      string              `json:"email" validate:"required,email"`
	Password   string              `json:"password" validate:"required,min=6"`
	Role       models.EmployeeRole `json:"role" validate:"required,oneof=employee verifier hr admin"`
	Experience float64             `json:"experience" validate:"gte=0"`
}

// VerifyRequest - решение верификатора по аккаунту
type VerifyRequest struct {
	Status models.ApprovalStatus `json:"status" validate:"required"`
}

// AdminUpdateRequest - административное изменение аккаунта,
// единственный путь смены роли после создания
type AdminUpdateRequest struct {
	Name       *string                `json:"name,omitempty"`
	Email      *string                `json:"email,omitempty" validate:"omitempty,email"`
	Role       *models.EmployeeRole   `json:"role,omitempty"`
	Status     *models.ApprovalStatus `json:"status,omitempty"`
	Experience *float64               `json:"experience,omitempty" validate:"omitempty,gte=0"`
}

// EmployeeWithSkillsDTO - сотрудник вместе с одобренными навыками
type EmployeeWithSkillsDTO struct {
	EmployeeDTO
	ApprovedSkills []models.Skill `json:"approvedSkills"`
}
