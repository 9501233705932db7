package services

import (
	"staffhub_backend/internal/appErrors"
	"staffhub_backend/internal/auth"
	"staffhub_backend/internal/email"
	"staffhub_backend/internal/models"
	"staffhub_backend/internal/repositories"
	"staffhub_backend/internal/services/dto"
)

type EmployeeService interface {
	Register(req *dto.RegisterRequest) (*models.Employee, error)
	Verify(id string, status models.ApprovalStatus) (*models.Employee, error)
	AdminUpdate(id string, req *dto.AdminUpdateRequest) (*models.Employee, error)
	Delete(id string) error

	GetAll() ([]dto.EmployeeDTO, error)
	GetRegular() ([]dto.EmployeeDTO, error)
	GetPending() ([]dto.EmployeeDTO, error)
	GetApproved() ([]dto.EmployeeDTO, error)
	GetAllWithApprovedSkills() ([]dto.EmployeeWithSkillsDTO, error)
	GetApprovedSkills(employeeID string) (*dto.EmployeeWithSkillsDTO, error)
}

type EmployeeServiceImpl struct {
	employeeRepo repositories.EmployeeRepository
	skillRepo    repositories.SkillRepository
	notifier     *notifier
}

func NewEmployeeService(
	employeeRepo repositories.EmployeeRepository,
	skillRepo repositories.SkillRepository,
	emailProvider email.Provider,
) EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		skillRepo:    skillRepo,
		notifier:     newNotifier(emailProvider),
	}
}

// Register - регистрация нового аккаунта
func (s *EmployeeServiceImpl) Register(req *dto.RegisterRequest) (*models.Employee, error) {
	if !models.ValidRole(req.Role) {
		return nil, appErrors.ErrInvalidRole
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, appErrors.NewBadRequestError(err.Error())
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	// verifier и admin минуют состояние pending
	status := models.StatusPending
	if models.AutoApproved(req.Role) {
		status = models.StatusApproved
	}

	employee := &models.Employee{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		Status:       status,
		Experience:   req.Experience,
	}

	if err := s.employeeRepo.Create(employee); err != nil {
		if appErrors.Is(err, repositories.ErrEmployeeAlreadyExists) {
			return nil, appErrors.ErrEmailAlreadyExists
		}
		return nil, appErrors.InternalError(err)
	}

	return employee, nil
}

// Verify - решение верификатора: pending -> approved/rejected.
// Недопустимый целевой статус отклоняется до обращения к стору.
func (s *EmployeeServiceImpl) Verify(id string, status models.ApprovalStatus) (*models.Employee, error) {
	if !models.ValidTransitionTarget(status) {
		return nil, appErrors.ErrInvalidStatus
	}

	employee, err := s.employeeRepo.FindByID(id)
	if err != nil {
		if appErrors.Is(err, repositories.ErrEmployeeNotFound) {
			return nil, appErrors.ErrEmployeeNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	if err := s.employeeRepo.UpdateStatus(id, status); err != nil {
		return nil, appErrors.InternalError(err)
	}

	employee.Status = status
	s.notifier.accountDecision(employee, status)
	return employee, nil
}

// AdminUpdate - административная правка: единственный путь смены
// роли после создания аккаунта
func (s *EmployeeServiceImpl) AdminUpdate(id string, req *dto.AdminUpdateRequest) (*models.Employee, error) {
	employee, err := s.employeeRepo.FindByID(id)
	if err != nil {
		if appErrors.Is(err, repositories.ErrEmployeeNotFound) {
			return nil, appErrors.ErrEmployeeNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	if req.Role != nil {
		if !models.ValidRole(*req.Role) {
			return nil, appErrors.ErrInvalidRole
		}
		employee.Role = *req.Role
	}
	if req.Status != nil {
		if *req.Status != models.StatusPending && !models.ValidTransitionTarget(*req.Status) {
			return nil, appErrors.ErrInvalidStatus
		}
		employee.Status = *req.Status
	}
	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.Email != nil {
		employee.Email = *req.Email
	}
	if req.Experience != nil {
		employee.Experience = *req.Experience
	}

	if err := s.employeeRepo.Update(employee); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return employee, nil
}

// Delete - удаление аккаунта администратором (каскадно с навыками)
func (s *EmployeeServiceImpl) Delete(id string) error {
	if err := s.employeeRepo.Delete(id); err != nil {
		if appErrors.Is(err, repositories.ErrEmployeeNotFound) {
			return appErrors.ErrEmployeeNotFound
		}
		return appErrors.InternalError(err)
	}
	return nil
}

func (s *EmployeeServiceImpl) GetAll() ([]dto.EmployeeDTO, error) {
	employees, err := s.employeeRepo.FindAll()
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return toDTOs(employees), nil
}

func (s *EmployeeServiceImpl) GetRegular() ([]dto.EmployeeDTO, error) {
	employees, err := s.employeeRepo.FindRegularApproved()
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return toDTOs(employees), nil
}

func (s *EmployeeServiceImpl) GetPending() ([]dto.EmployeeDTO, error) {
	employees, err := s.employeeRepo.FindPending()
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return toDTOs(employees), nil
}

func (s *EmployeeServiceImpl) GetApproved() ([]dto.EmployeeDTO, error) {
	employees, err := s.employeeRepo.FindApproved()
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return toDTOs(employees), nil
}

// GetAllWithApprovedSkills - одобренные сотрудники с их одобренными
// навыками (экран HR)
func (s *EmployeeServiceImpl) GetAllWithApprovedSkills() ([]dto.EmployeeWithSkillsDTO, error) {
	employees, err := s.employeeRepo.FindRegularApprovedWithSkills(models.StatusApproved)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	result := make([]dto.EmployeeWithSkillsDTO, 0, len(employees))
	for i := range employees {
		skills := employees[i].Skills
		if skills == nil {
			skills = []models.Skill{}
		}
		result = append(result, dto.EmployeeWithSkillsDTO{
			EmployeeDTO:    dto.NewEmployeeDTO(&employees[i]),
			ApprovedSkills: skills,
		})
	}
	return result, nil
}

func (s *EmployeeServiceImpl) GetApprovedSkills(employeeID string) (*dto.EmployeeWithSkillsDTO, error) {
	employee, err := s.employeeRepo.FindByID(employeeID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrEmployeeNotFound) {
			return nil, appErrors.ErrEmployeeNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	skills, err := s.skillRepo.FindApprovedByEmployee(employeeID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	return &dto.EmployeeWithSkillsDTO{
		EmployeeDTO:    dto.NewEmployeeDTO(employee),
		ApprovedSkills: skills,
	}, nil
}

func toDTOs(employees []models.Employee) []dto.EmployeeDTO {
	result := make([]dto.EmployeeDTO, 0, len(employees))
	for i := range employees {
		result = append(result, dto.NewEmployeeDTO(&employees[i]))
	}
	return result
}
