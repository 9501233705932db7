package dto

import (
	"time"

	"staffhub_backend/internal/models"
)

// LoginRequest - запрос входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ResetPasswordRequest - запрос установки нового пароля
type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

// EmployeeDTO - базовая информация об аккаунте (без пароля)
type EmployeeDTO struct {
	ID         string                `json:"id"`
	Name       string                `json:"name"`
	Email      string                `json:"email"`
	Role       models.EmployeeRole   `json:"role"`
	Status     models.ApprovalStatus `json:"status"`
	Experience float64               `json:"experience"`
	CreatedAt  time.Time             `json:"createdAt"`
	UpdatedAt  time.Time             `json:"updatedAt"`
}

// LoginResponse - ответ успешного входа
type LoginResponse struct {
	Success bool        `json:"success"`
	Token   string      `json:"token"`
	User    EmployeeDTO `json:"user"`
}

// NewEmployeeDTO собирает DTO из модели
func NewEmployeeDTO(e *models.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:         e.ID,
		Name:       e.Name,
		Email:      e.Email,
		Role:       e.Role,
		Status:     e.Status,
		Experience: e.Experience,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
