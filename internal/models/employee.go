package models

type Employee struct {
	BaseModel
	Name         string         `gorm:"not null" json:"name"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Role         EmployeeRole   `gorm:"type:varchar(20);not null" json:"role"`
	Status       ApprovalStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	Experience   float64        `gorm:"default:0" json:"experience"`

	// Relations
	Skills []Skill `gorm:"foreignKey:EmployeeID" json:"skills,omitempty"`
}
