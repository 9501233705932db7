package repositories

import (
	"errors"
	"time"

	"staffhub_backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrVersionConflict = errors.New("project version conflict")
)

type ProjectRepository interface {
	FindByID(id string) (*models.Project, error)
	FindAll() ([]models.Project, error)
	FindByAssignedEmployee(employeeID string) ([]models.Project, error)
	Create(project *models.Project) error
	Update(project *models.Project) error
	Delete(id string) error

	// ReplaceAssignments перезаписывает список назначений целиком с
	// проверкой версии (оптимистичная блокировка)
	ReplaceAssignments(id string, assignments datatypes.JSON, expectedVersion int) error
}

type ProjectRepositoryImpl struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &ProjectRepositoryImpl{db: db}
}

func (r *ProjectRepositoryImpl) FindByID(id string) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepositoryImpl) FindAll() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Order("created_at DESC").Find(&projects).Error
	return projects, err
}

func (r *ProjectRepositoryImpl) FindByAssignedEmployee(employeeID string) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.
		Where("assigned_employees @> ?", datatypes.JSON(`[{"employeeId":"`+employeeID+`"}]`)).
		Find(&projects).Error
	return projects, err
}

func (r *ProjectRepositoryImpl) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

func (r *ProjectRepositoryImpl) Update(project *models.Project) error {
	result := r.db.Model(project).Updates(map[string]interface{}{
		"name":            project.Name,
		"description":     project.Description,
		"start_date":      project.StartDate,
		"end_date":        project.EndDate,
		"status":          project.Status,
		"required_skills": project.RequiredSkills,
		"team_size":       project.TeamSize,
		"updated_at":      time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}

func (r *ProjectRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Project{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}

func (r *ProjectRepositoryImpl) ReplaceAssignments(id string, assignments datatypes.JSON, expectedVersion int) error {
	result := r.db.Model(&models.Project{}).
		Where("id = ? AND version = ?", id, expectedVersion).
		Updates(map[string]interface{}{
			"assigned_employees": assignments,
			"version":            expectedVersion + 1,
			"updated_at":         time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Либо проект исчез, либо кто-то успел записать раньше
		var count int64
		if err := r.db.Model(&models.Project{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrProjectNotFound
		}
		return ErrVersionConflict
	}
	return nil
}
