package dto

import (
	"mime/multipart"

	"staffhub_backend/internal/models"
)

// CreateSkillRequest - заявка на навык. Приходит как multipart-форма:
// поля плюс опциональный файл-сертификат.
type CreateSkillRequest struct {
	EmployeeID       string                  `form:"employeeId" validate:"required"`
	SkillName        string                  `form:"skillName" validate:"required"`
	SkillDescription string                  `form:"skillDescription"`
	ProficiencyLevel models.ProficiencyLevel `form:"proficiencyLevel" validate:"required,oneof=Beginner Intermediate Expert"`
	ExperienceYears  float64                 `form:"experienceYears" validate:"gte=0"`
	// JSON-строка вида [{"label":"...","url":"..."}]
	ProjectLinks string `form:"projectLinks"`

	CertificateFile *multipart.FileHeader `form:"-" validate:"-"`
}

// UpdateSkillRequest - правка заявки владельцем
type UpdateSkillRequest struct {
	SkillName        string                  `form:"skillName" validate:"required"`
	SkillDescription string                  `form:"skillDescription"`
	ProficiencyLevel models.ProficiencyLevel `form:"proficiencyLevel" validate:"required,oneof=Beginner Intermediate Expert"`
	ExperienceYears  float64                 `form:"experienceYears" validate:"gte=0"`
	ProjectLinks     string                  `form:"projectLinks"`

	CertificateFile *multipart.FileHeader `form:"-" validate:"-"`
}

// SkillResponse - ответ с заявкой
type SkillResponse struct {
	Message string        `json:"message"`
	Skill   *models.Skill `json:"skill"`
}
