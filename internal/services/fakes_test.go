package services

import (
	"sort"

	"staffhub_backend/internal/models"
	"staffhub_backend/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Фейковые репозитории в памяти. Повторяют контракт реальных
// реализаций, включая sentinel-ошибки.

type fakeEmployeeRepo struct {
	employees map[string]*models.Employee
	order     []string
	skills    *fakeSkillRepo // для каскадного удаления и выборок с навыками
}

func newFakeEmployeeRepo(skills *fakeSkillRepo) *fakeEmployeeRepo {
	return &fakeEmployeeRepo{
		employees: make(map[string]*models.Employee),
		skills:    skills,
	}
}

func (r *fakeEmployeeRepo) FindByID(id string) (*models.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, repositories.ErrEmployeeNotFound
	}
	copied := *e
	return &copied, nil
}

func (r *fakeEmployeeRepo) FindByEmail(email string) (*models.Employee, error) {
	for _, id := range r.order {
		if r.employees[id].Email == email {
			copied := *r.employees[id]
			return &copied, nil
		}
	}
	return nil, repositories.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) FindByIDs(ids []string) ([]models.Employee, error) {
	result := make([]models.Employee, 0, len(ids))
	for _, id := range ids {
		if e, ok := r.employees[id]; ok {
			result = append(result, *e)
		}
	}
	return result, nil
}

func (r *fakeEmployeeRepo) Create(employee *models.Employee) error {
	if _, err := r.FindByEmail(employee.Email); err == nil {
		return repositories.ErrEmployeeAlreadyExists
	}
	if employee.ID == "" {
		employee.ID = uuid.New().String()
	}
	copied := *employee
	r.employees[employee.ID] = &copied
	r.order = append(r.order, employee.ID)
	return nil
}

func (r *fakeEmployeeRepo) Update(employee *models.Employee) error {
	if _, ok := r.employees[employee.ID]; !ok {
		return repositories.ErrEmployeeNotFound
	}
	copied := *employee
	r.employees[employee.ID] = &copied
	return nil
}

func (r *fakeEmployeeRepo) UpdateStatus(id string, status models.ApprovalStatus) error {
	e, ok := r.employees[id]
	if !ok {
		return repositories.ErrEmployeeNotFound
	}
	e.Status = status
	return nil
}

func (r *fakeEmployeeRepo) UpdatePassword(id string, passwordHash string) error {
	e, ok := r.employees[id]
	if !ok {
		return repositories.ErrEmployeeNotFound
	}
	e.PasswordHash = passwordHash
	return nil
}

func (r *fakeEmployeeRepo) Delete(id string) error {
	if _, ok := r.employees[id]; !ok {
		return repositories.ErrEmployeeNotFound
	}
	delete(r.employees, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	if r.skills != nil {
		r.skills.deleteByEmployee(id)
	}
	return nil
}

func (r *fakeEmployeeRepo) FindAll() ([]models.Employee, error) {
	return r.filter(func(e *models.Employee) bool { return true }), nil
}

func (r *fakeEmployeeRepo) FindRegularApproved() ([]models.Employee, error) {
	result := r.filter(func(e *models.Employee) bool {
		return e.Role == models.RoleEmployee && e.Status == models.StatusApproved
	})
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *fakeEmployeeRepo) FindPending() ([]models.Employee, error) {
	return r.filter(func(e *models.Employee) bool {
		return e.Status == models.StatusPending && e.Role != models.RoleVerifier
	}), nil
}

func (r *fakeEmployeeRepo) FindApproved() ([]models.Employee, error) {
	return r.filter(func(e *models.Employee) bool {
		return e.Status == models.StatusApproved
	}), nil
}

func (r *fakeEmployeeRepo) FindRegularApprovedWithSkills(status models.ApprovalStatus) ([]models.Employee, error) {
	result := r.filter(func(e *models.Employee) bool {
		return e.Role == models.RoleEmployee && e.Status == models.StatusApproved
	})
	if r.skills != nil {
		for i := range result {
			result[i].Skills = r.skills.byEmployeeAndStatus(result[i].ID, status)
		}
	}
	return result, nil
}

func (r *fakeEmployeeRepo) filter(keep func(*models.Employee) bool) []models.Employee {
	result := make([]models.Employee, 0, len(r.order))
	for _, id := range r.order {
		if keep(r.employees[id]) {
			result = append(result, *r.employees[id])
		}
	}
	return result
}

type fakeSkillRepo struct {
	skills map[string]*models.Skill
	order  []string
}

func newFakeSkillRepo() *fakeSkillRepo {
	return &fakeSkillRepo{skills: make(map[string]*models.Skill)}
}

func (r *fakeSkillRepo) FindByID(id string) (*models.Skill, error) {
	s, ok := r.skills[id]
	if !ok {
		return nil, repositories.ErrSkillNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *fakeSkillRepo) FindByEmployee(employeeID string) ([]models.Skill, error) {
	result := make([]models.Skill, 0)
	for _, id := range r.order {
		if r.skills[id].EmployeeID == employeeID {
			result = append(result, *r.skills[id])
		}
	}
	return result, nil
}

func (r *fakeSkillRepo) FindApprovedByEmployee(employeeID string) ([]models.Skill, error) {
	return r.byEmployeeAndStatus(employeeID, models.StatusApproved), nil
}

func (r *fakeSkillRepo) FindPending() ([]models.Skill, error) {
	result := make([]models.Skill, 0)
	for _, id := range r.order {
		if r.skills[id].Status == models.StatusPending {
			result = append(result, *r.skills[id])
		}
	}
	return result, nil
}

func (r *fakeSkillRepo) Create(skill *models.Skill) error {
	if skill.ID == "" {
		skill.ID = uuid.New().String()
	}
	copied := *skill
	r.skills[skill.ID] = &copied
	r.order = append(r.order, skill.ID)
	return nil
}

func (r *fakeSkillRepo) Update(skill *models.Skill) error {
	if _, ok := r.skills[skill.ID]; !ok {
		return repositories.ErrSkillNotFound
	}
	copied := *skill
	r.skills[skill.ID] = &copied
	return nil
}

func (r *fakeSkillRepo) UpdateStatus(id string, status models.ApprovalStatus) (*models.Skill, error) {
	s, ok := r.skills[id]
	if !ok {
		return nil, repositories.ErrSkillNotFound
	}
	s.Status = status
	copied := *s
	return &copied, nil
}

func (r *fakeSkillRepo) Delete(id string) error {
	if _, ok := r.skills[id]; !ok {
		return repositories.ErrSkillNotFound
	}
	delete(r.skills, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeSkillRepo) deleteByEmployee(employeeID string) {
	kept := r.order[:0]
	for _, id := range r.order {
		if r.skills[id].EmployeeID == employeeID {
			delete(r.skills, id)
		} else {
			kept = append(kept, id)
		}
	}
	r.order = kept
}

func (r *fakeSkillRepo) byEmployeeAndStatus(employeeID string, status models.ApprovalStatus) []models.Skill {
	result := make([]models.Skill, 0)
	for _, id := range r.order {
		s := r.skills[id]
		if s.EmployeeID == employeeID && s.Status == status {
			result = append(result, *s)
		}
	}
	return result
}

type fakeProjectRepo struct {
	projects map[string]*models.Project
	order    []string
	// Сколько ближайших ReplaceAssignments сымитируют конкурентную
	// запись (версия в сторе уходит вперед)
	conflictsLeft int
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[string]*models.Project)}
}

func (r *fakeProjectRepo) FindByID(id string) (*models.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, repositories.ErrProjectNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *fakeProjectRepo) FindAll() ([]models.Project, error) {
	result := make([]models.Project, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, *r.projects[id])
	}
	return result, nil
}

func (r *fakeProjectRepo) FindByAssignedEmployee(employeeID string) ([]models.Project, error) {
	result := make([]models.Project, 0)
	for _, id := range r.order {
		for _, a := range r.projects[id].GetAssignments() {
			if a.EmployeeID == employeeID {
				result = append(result, *r.projects[id])
				break
			}
		}
	}
	return result, nil
}

func (r *fakeProjectRepo) Create(project *models.Project) error {
	if project.ID == "" {
		project.ID = uuid.New().String()
	}
	copied := *project
	r.projects[project.ID] = &copied
	r.order = append(r.order, project.ID)
	return nil
}

func (r *fakeProjectRepo) Update(project *models.Project) error {
	if _, ok := r.projects[project.ID]; !ok {
		return repositories.ErrProjectNotFound
	}
	copied := *project
	r.projects[project.ID] = &copied
	return nil
}

func (r *fakeProjectRepo) Delete(id string) error {
	if _, ok := r.projects[id]; !ok {
		return repositories.ErrProjectNotFound
	}
	delete(r.projects, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeProjectRepo) ReplaceAssignments(id string, assignments datatypes.JSON, expectedVersion int) error {
	p, ok := r.projects[id]
	if !ok {
		return repositories.ErrProjectNotFound
	}
	if r.conflictsLeft > 0 {
		r.conflictsLeft--
		p.Version++
		return repositories.ErrVersionConflict
	}
	if p.Version != expectedVersion {
		return repositories.ErrVersionConflict
	}
	p.AssignedEmployees = assignments
	p.Version++
	return nil
}
