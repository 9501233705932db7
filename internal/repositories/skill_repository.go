package repositories

import (
	"errors"
	"time"

	"staffhub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrSkillNotFound = errors.New("skill not found")

type SkillRepository interface {
	FindByID(id string) (*models.Skill, error)
	FindByEmployee(employeeID string) ([]models.Skill, error)
	FindApprovedByEmployee(employeeID string) ([]models.Skill, error)
	FindPending() ([]models.Skill, error)
	Create(skill *models.Skill) error
	Update(skill *models.Skill) error
	UpdateStatus(id string, status models.ApprovalStatus) (*models.Skill, error)
	Delete(id string) error
}

type SkillRepositoryImpl struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &SkillRepositoryImpl{db: db}
}

func (r *SkillRepositoryImpl) FindByID(id string) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.First(&skill, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, err
	}
	return &skill, nil
}

func (r *SkillRepositoryImpl) FindByEmployee(employeeID string) ([]models.Skill, error) {
	var skills []models.Skill
	err := r.db.Where("employee_id = ?", employeeID).Find(&skills).Error
	return skills, err
}

func (r *SkillRepositoryImpl) FindApprovedByEmployee(employeeID string) ([]models.Skill, error) {
	var skills []models.Skill
	err := r.db.
		Where("employee_id = ? AND status = ?", employeeID, models.StatusApproved).
		Find(&skills).Error
	return skills, err
}

// FindPending возвращает ожидающие проверки навыки, свежие сверху,
// вместе с данными владельца для экрана верификатора
func (r *SkillRepositoryImpl) FindPending() ([]models.Skill, error) {
	var skills []models.Skill
	err := r.db.
		Where("status = ?", models.StatusPending).
		Preload("Employee").
		Order("last_updated DESC").
		Find(&skills).Error
	return skills, err
}

func (r *SkillRepositoryImpl) Create(skill *models.Skill) error {
	return r.db.Create(skill).Error
}

func (r *SkillRepositoryImpl) Update(skill *models.Skill) error {
	result := r.db.Model(skill).Updates(map[string]interface{}{
		"skill_name":           skill.SkillName,
		"skill_description":    skill.SkillDescription,
		"proficiency_level":    skill.ProficiencyLevel,
		"experience_years":     skill.ExperienceYears,
		"certificate_file_url": skill.CertificateFileURL,
		"project_links":        skill.ProjectLinks,
		"last_updated":         time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSkillNotFound
	}
	return nil
}

func (r *SkillRepositoryImpl) UpdateStatus(id string, status models.ApprovalStatus) (*models.Skill, error) {
	result := r.db.Model(&models.Skill{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":       status,
		"last_updated": time.Now(),
	})

	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrSkillNotFound
	}

	var skill models.Skill
	if err := r.db.Preload("Employee").First(&skill, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *SkillRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Skill{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSkillNotFound
	}
	return nil
}
