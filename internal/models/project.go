package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// RequiredSkill - требование проекта: имя навыка и минимальный уровень
type RequiredSkill struct {
	SkillName        string           `json:"skillName"`
	ProficiencyLevel ProficiencyLevel `json:"proficiencyLevel"`
}

// Assignment - назначение сотрудника на проект
type Assignment struct {
	EmployeeID   string    `json:"employeeId"`
	Role         string    `json:"role"`
	AssignedDate time.Time `json:"assignedDate"`
}

type Project struct {
	BaseModel
	Name              string         `gorm:"not null" json:"name"`
	Description       string         `gorm:"not null" json:"description"`
	StartDate         time.Time      `gorm:"not null" json:"startDate"`
	EndDate           time.Time      `gorm:"not null" json:"endDate"`
	Status            ProjectStatus  `gorm:"type:varchar(20);default:'Not Started'" json:"status"`
	RequiredSkills    datatypes.JSON `gorm:"type:jsonb" json:"requiredSkills"`
	AssignedEmployees datatypes.JSON `gorm:"type:jsonb" json:"assignedEmployees"`
	// Целевой размер команды, рекомендательный. Сервер его не
	// навязывает.
	TeamSize  int    `gorm:"default:0" json:"teamSize"`
	CreatedBy string `gorm:"type:uuid;not null" json:"createdBy"`
	// Токен оптимистичной блокировки для staffing-записей
	Version int `gorm:"default:0" json:"-"`
}

// GetRequiredSkills декодирует требования проекта
func (p *Project) GetRequiredSkills() []RequiredSkill {
	var skills []RequiredSkill
	if len(p.RequiredSkills) > 0 {
		json.Unmarshal(p.RequiredSkills, &skills)
	}
	return skills
}

// SetRequiredSkills кодирует требования проекта
func (p *Project) SetRequiredSkills(skills []RequiredSkill) error {
	data, err := json.Marshal(skills)
	if err != nil {
		return err
	}
	p.RequiredSkills = data
	return nil
}

// GetAssignments декодирует список назначений
func (p *Project) GetAssignments() []Assignment {
	var assignments []Assignment
	if len(p.AssignedEmployees) > 0 {
		json.Unmarshal(p.AssignedEmployees, &assignments)
	}
	return assignments
}

// SetAssignments кодирует список назначений
func (p *Project) SetAssignments(assignments []Assignment) error {
	data, err := json.Marshal(assignments)
	if err != nil {
		return err
	}
	p.AssignedEmployees = data
	return nil
}
