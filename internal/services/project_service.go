package services

import (
	"fmt"
	"time"

	"staffhub_backend/internal/appErrors"
	"staffhub_backend/internal/matching"
	"staffhub_backend/internal/models"
	"staffhub_backend/internal/repositories"
	"staffhub_backend/internal/services/dto"

	"github.com/avast/retry-go/v4"
)

// assignRetryAttempts - количество попыток staffing-записи при
// конкурентном изменении проекта
const assignRetryAttempts = 3

type ProjectService interface {
	Create(req *dto.CreateProjectRequest, createdBy string) (*models.Project, error)
	GetAll() ([]models.Project, error)
	GetByID(id string) (*models.Project, error)
	GetByEmployee(employeeID string) ([]models.Project, error)
	Update(id string, req *dto.UpdateProjectRequest) (*models.Project, error)
	Delete(id string) error

	AssignEmployees(id string, req *dto.AssignEmployeesRequest) (*models.Project, error)
	RemoveEmployee(projectID, employeeID string) (*models.Project, error)
	EligibleEmployees(projectID string) ([]dto.EligibleEmployeeDTO, error)
}

type ProjectServiceImpl struct {
	projectRepo  repositories.ProjectRepository
	employeeRepo repositories.EmployeeRepository
}

func NewProjectService(
	projectRepo repositories.ProjectRepository,
	employeeRepo repositories.EmployeeRepository,
) ProjectService {
	return &ProjectServiceImpl{
		projectRepo:  projectRepo,
		employeeRepo: employeeRepo,
	}
}

// Create - создание проекта; начальные назначения проверяются на
// существование сотрудников до какой-либо записи
func (s *ProjectServiceImpl) Create(req *dto.CreateProjectRequest, createdBy string) (*models.Project, error) {
	if req.EndDate.Before(req.StartDate) {
		return nil, appErrors.NewBadRequestError("End date cannot be before start date")
	}

	assignments, err := s.buildAssignments(req.AssignedEmployees)
	if err != nil {
		return nil, err
	}

	project := &models.Project{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      models.ProjectNotStarted,
		TeamSize:    req.TeamSize,
		CreatedBy:   createdBy,
	}
	if err := project.SetRequiredSkills(toRequiredSkills(req.RequiredSkills)); err != nil {
		return nil, appErrors.InternalError(err)
	}
	if err := project.SetAssignments(assignments); err != nil {
		return nil, appErrors.InternalError(err)
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return project, nil
}

func (s *ProjectServiceImpl) GetAll() ([]models.Project, error) {
	projects, err := s.projectRepo.FindAll()
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return projects, nil
}

func (s *ProjectServiceImpl) GetByID(id string) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		if appErrors.Is(err, repositories.ErrProjectNotFound) {
			return nil, appErrors.ErrProjectNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	return project, nil
}

func (s *ProjectServiceImpl) GetByEmployee(employeeID string) ([]models.Project, error) {
	projects, err := s.projectRepo.FindByAssignedEmployee(employeeID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return projects, nil
}

func (s *ProjectServiceImpl) Update(id string, req *dto.UpdateProjectRequest) (*models.Project, error) {
	if req.EndDate.Before(req.StartDate) {
		return nil, appErrors.NewBadRequestError("End date cannot be before start date")
	}
	if !models.ValidProjectStatus(req.Status) {
		return nil, appErrors.ErrInvalidStatus
	}

	project, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	project.Name = req.Name
	project.Description = req.Description
	project.StartDate = req.StartDate
	project.EndDate = req.EndDate
	project.Status = req.Status
	project.TeamSize = req.TeamSize
	if err := project.SetRequiredSkills(toRequiredSkills(req.RequiredSkills)); err != nil {
		return nil, appErrors.InternalError(err)
	}

	if err := s.projectRepo.Update(project); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return project, nil
}

func (s *ProjectServiceImpl) Delete(id string) error {
	if err := s.projectRepo.Delete(id); err != nil {
		if appErrors.Is(err, repositories.ErrProjectNotFound) {
			return appErrors.ErrProjectNotFound
		}
		return appErrors.InternalError(err)
	}
	return nil
}

// AssignEmployees заменяет список назначений целиком. Проверка
// существования всех сотрудников выполняется до записи (всё или
// ничего); конфликт версий при конкурентной записи ретраится с
// перечитыванием проекта.
func (s *ProjectServiceImpl) AssignEmployees(id string, req *dto.AssignEmployeesRequest) (*models.Project, error) {
	assignments, err := s.buildAssignments(req.EmployeeAssignments)
	if err != nil {
		return nil, err
	}

	return s.replaceAssignments(id, func(project *models.Project) []models.Assignment {
		return assignments
	})
}

// RemoveEmployee убирает одно назначение по id сотрудника
func (s *ProjectServiceImpl) RemoveEmployee(projectID, employeeID string) (*models.Project, error) {
	return s.replaceAssignments(projectID, func(project *models.Project) []models.Assignment {
		current := project.GetAssignments()
		filtered := make([]models.Assignment, 0, len(current))
		for _, a := range current {
			if a.EmployeeID != employeeID {
				filtered = append(filtered, a)
			}
		}
		return filtered
	})
}

// EligibleEmployees - staffing-подсказка: одобренные сотрудники, чей
// набор одобренных навыков покрывает требования проекта
func (s *ProjectServiceImpl) EligibleEmployees(projectID string) ([]dto.EligibleEmployeeDTO, error) {
	project, err := s.GetByID(projectID)
	if err != nil {
		return nil, err
	}

	required := make([]string, 0)
	for _, rs := range project.GetRequiredSkills() {
		required = append(required, rs.SkillName)
	}

	employees, err := s.employeeRepo.FindRegularApprovedWithSkills(models.StatusApproved)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	pool := make([]matching.Candidate, 0, len(employees))
	byID := make(map[string]*models.Employee, len(employees))
	for i := range employees {
		e := &employees[i]
		byID[e.ID] = e
		names := make([]string, 0, len(e.Skills))
		for _, skill := range e.Skills {
			names = append(names, skill.SkillName)
		}
		pool = append(pool, matching.Candidate{
			EmployeeID:     e.ID,
			ApprovedSkills: names,
		})
	}

	eligible := matching.EligibleEmployees(required, pool)

	result := make([]dto.EligibleEmployeeDTO, 0, len(eligible))
	for _, candidate := range eligible {
		e := byID[candidate.EmployeeID]
		skills := e.Skills
		if skills == nil {
			skills = []models.Skill{}
		}
		result = append(result, dto.EligibleEmployeeDTO{
			EmployeeDTO:    dto.NewEmployeeDTO(e),
			ApprovedSkills: skills,
		})
	}
	return result, nil
}

// replaceAssignments выполняет оптимистичную перезапись списка
// назначений с ретраем на конфликте версий
func (s *ProjectServiceImpl) replaceAssignments(id string, build func(*models.Project) []models.Assignment) (*models.Project, error) {
	var project *models.Project

	err := retry.Do(
		func() error {
			current, err := s.projectRepo.FindByID(id)
			if err != nil {
				return err
			}

			next := &models.Project{}
			*next = *current
			if err := next.SetAssignments(build(current)); err != nil {
				return err
			}

			if err := s.projectRepo.ReplaceAssignments(id, next.AssignedEmployees, current.Version); err != nil {
				return err
			}

			next.Version = current.Version + 1
			project = next
			return nil
		},
		retry.Attempts(assignRetryAttempts),
		retry.RetryIf(func(err error) bool {
			return appErrors.Is(err, repositories.ErrVersionConflict)
		}),
		retry.LastErrorOnly(true),
	)

	if err != nil {
		switch {
		case appErrors.Is(err, repositories.ErrProjectNotFound):
			return nil, appErrors.ErrProjectNotFound
		case appErrors.Is(err, repositories.ErrVersionConflict):
			return nil, appErrors.ErrAssignmentConflict
		default:
			var appErr *appErrors.AppError
			if appErrors.As(err, &appErr) {
				return nil, appErr
			}
			return nil, appErrors.InternalError(err)
		}
	}
	return project, nil
}

// buildAssignments проверяет что каждый employeeId существует; при
// первом отсутствующем - отказ без частичной мутации
func (s *ProjectServiceImpl) buildAssignments(inputs []dto.AssignmentInput) ([]models.Assignment, error) {
	if len(inputs) == 0 {
		return []models.Assignment{}, nil
	}

	ids := make([]string, 0, len(inputs))
	for _, input := range inputs {
		ids = append(ids, input.EmployeeID)
	}

	found, err := s.employeeRepo.FindByIDs(ids)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	existing := make(map[string]bool, len(found))
	for _, e := range found {
		existing[e.ID] = true
	}

	now := time.Now()
	assignments := make([]models.Assignment, 0, len(inputs))
	for _, input := range inputs {
		if !existing[input.EmployeeID] {
			return nil, appErrors.NewNotFoundError(
				fmt.Sprintf("Employee with ID %s not found", input.EmployeeID))
		}
		assignments = append(assignments, models.Assignment{
			EmployeeID:   input.EmployeeID,
			Role:         input.Role,
			AssignedDate: now,
		})
	}
	return assignments, nil
}

func toRequiredSkills(inputs []dto.RequiredSkillInput) []models.RequiredSkill {
	skills := make([]models.RequiredSkill, 0, len(inputs))
	for _, input := range inputs {
		skills = append(skills, models.RequiredSkill{
			SkillName:        input.SkillName,
			ProficiencyLevel: input.ProficiencyLevel,
		})
	}
	return skills
}
