package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// ProjectLink - пара (метка, URL) подтверждающая навык
type ProjectLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type Skill struct {
	BaseModel
	EmployeeID         string           `gorm:"type:uuid;not null;index" json:"employeeId"`
	SkillName          string           `gorm:"not null" json:"skillName"`
	SkillDescription   string           `json:"skillDescription"`
	ProficiencyLevel   ProficiencyLevel `gorm:"type:varchar(20);not null" json:"proficiencyLevel"`
	ExperienceYears    float64          `gorm:"not null" json:"experienceYears"`
	CertificateFileURL *string          `json:"certificateFileUrl"`
	ProjectLinks       datatypes.JSON   `gorm:"type:jsonb" json:"projectLinks"`
	Status             ApprovalStatus   `gorm:"type:varchar(20);default:'pending'" json:"status"`
	LastUpdated        time.Time        `gorm:"autoUpdateTime" json:"lastUpdated"`

	Employee *Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

// GetProjectLinks декодирует JSONB-колонку в срез пар
func (s *Skill) GetProjectLinks() []ProjectLink {
	var links []ProjectLink
	if len(s.ProjectLinks) > 0 {
		json.Unmarshal(s.ProjectLinks, &links)
	}
	return links
}

// SetProjectLinks кодирует пары в JSONB-колонку
func (s *Skill) SetProjectLinks(links []ProjectLink) error {
	data, err := json.Marshal(links)
	if err != nil {
		return err
	}
	s.ProjectLinks = data
	return nil
}
