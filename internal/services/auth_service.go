package services

import (
	"staffhub_backend/internal/appErrors"
	"staffhub_backend/internal/auth"
	"staffhub_backend/internal/models"
	"staffhub_backend/internal/repositories"
	"staffhub_backend/internal/services/dto"
)

type AuthService interface {
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	ResetPassword(req *dto.ResetPasswordRequest) error
}

type AuthServiceImpl struct {
	employeeRepo repositories.EmployeeRepository
	tokens       *auth.TokenManager
}

func NewAuthService(employeeRepo repositories.EmployeeRepository, tokens *auth.TokenManager) AuthService {
	return &AuthServiceImpl{
		employeeRepo: employeeRepo,
		tokens:       tokens,
	}
}

// Login - аутентификация аккаунта
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	employee, err := s.employeeRepo.FindByEmail(req.Email)
	if err != nil {
		if appErrors.Is(err, repositories.ErrEmployeeNotFound) {
			return nil, appErrors.ErrEmployeeNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, employee.PasswordHash) {
		return nil, appErrors.ErrInvalidCredentials
	}

	// Отклоненный и ожидающий аккаунты блокируются по-разному:
	// клиенту нужны различимые сообщения, но в обоих случаях
	// возвращается userId для адресной подсказки
	if employee.Role == models.RoleEmployee || employee.Role == models.RoleHR {
		if employee.Status == models.StatusRejected {
			return nil, appErrors.ErrAccountRejected.WithDetails(map[string]string{
				"userId": employee.ID,
			})
		}
		if employee.Status != models.StatusApproved {
			return nil, appErrors.ErrAccountPending.WithDetails(map[string]string{
				"userId": employee.ID,
			})
		}
	}

	token, err := s.tokens.GenerateToken(employee.ID, string(employee.Role), employee.Name)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Success: true,
		Token:   token,
		User:    dto.NewEmployeeDTO(employee),
	}, nil
}

// ResetPassword - установка нового пароля по email
func (s *AuthServiceImpl) ResetPassword(req *dto.ResetPasswordRequest) error {
	employee, err := s.employeeRepo.FindByEmail(req.Email)
	if err != nil {
		if appErrors.Is(err, repositories.ErrEmployeeNotFound) {
			return appErrors.ErrEmployeeNotFound
		}
		return appErrors.InternalError(err)
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return appErrors.InternalError(err)
	}

	if err := s.employeeRepo.UpdatePassword(employee.ID, hash); err != nil {
		return appErrors.InternalError(err)
	}
	return nil
}
