package repositories

import (
	"errors"
	"time"

	"staffhub_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrEmployeeAlreadyExists = errors.New("employee already exists")
)

type EmployeeRepository interface {
	FindByID(id string) (*models.Employee, error)
	FindByEmail(email string) (*models.Employee, error)
	FindByIDs(ids []string) ([]models.Employee, error)
	Create(employee *models.Employee) error
	Update(employee *models.Employee) error
	UpdateStatus(id string, status models.ApprovalStatus) error
	UpdatePassword(id string, passwordHash string) error
	Delete(id string) error

	FindAll() ([]models.Employee, error)
	FindRegularApproved() ([]models.Employee, error)
	FindPending() ([]models.Employee, error)
	FindApproved() ([]models.Employee, error)
	FindRegularApprovedWithSkills(status models.ApprovalStatus) ([]models.Employee, error)
}

type EmployeeRepositoryImpl struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &EmployeeRepositoryImpl{db: db}
}

func (r *EmployeeRepositoryImpl) FindByID(id string) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.First(&employee, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return &employee, nil
}

func (r *EmployeeRepositoryImpl) FindByEmail(email string) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.First(&employee, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return &employee, nil
}

func (r *EmployeeRepositoryImpl) FindByIDs(ids []string) ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.Where("id IN ?", ids).Find(&employees).Error
	return employees, err
}

func (r *EmployeeRepositoryImpl) Create(employee *models.Employee) error {
	var existing models.Employee
	if err := r.db.Where("email = ?", employee.Email).First(&existing).Error; err == nil {
		return ErrEmployeeAlreadyExists
	}

	return r.db.Create(employee).Error
}

func (r *EmployeeRepositoryImpl) Update(employee *models.Employee) error {
	result := r.db.Model(employee).Updates(map[string]interface{}{
		"name":       employee.Name,
		"email":      employee.Email,
		"role":       employee.Role,
		"status":     employee.Status,
		"experience": employee.Experience,
		"updated_at": time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

func (r *EmployeeRepositoryImpl) UpdateStatus(id string, status models.ApprovalStatus) error {
	result := r.db.Model(&models.Employee{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

func (r *EmployeeRepositoryImpl) UpdatePassword(id string, passwordHash string) error {
	result := r.db.Model(&models.Employee{}).Where("id = ?", id).Updates(map[string]interface{}{
		"password_hash": passwordHash,
		"updated_at":    time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

// Delete удаляет аккаунт вместе с его заявками на навыки одной
// транзакцией, чтобы не оставлять осиротевшие записи
func (r *EmployeeRepositoryImpl) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("employee_id = ?", id).Delete(&models.Skill{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.Employee{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrEmployeeNotFound
		}
		return nil
	})
}

func (r *EmployeeRepositoryImpl) FindAll() ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.Order("created_at DESC").Find(&employees).Error
	return employees, err
}

func (r *EmployeeRepositoryImpl) FindRegularApproved() ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.
		Where("role = ? AND status = ?", models.RoleEmployee, models.StatusApproved).
		Order("name ASC").
		Find(&employees).Error
	return employees, err
}

// FindPending возвращает ожидающие подтверждения аккаунты, кроме
// верификаторов (они не проходят через pending)
func (r *EmployeeRepositoryImpl) FindPending() ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.
		Where("status = ? AND role <> ?", models.StatusPending, models.RoleVerifier).
		Find(&employees).Error
	return employees, err
}

func (r *EmployeeRepositoryImpl) FindApproved() ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.Where("status = ?", models.StatusApproved).Find(&employees).Error
	return employees, err
}

// FindRegularApprovedWithSkills загружает одобренных сотрудников
// вместе с их навыками в указанном статусе
func (r *EmployeeRepositoryImpl) FindRegularApprovedWithSkills(status models.ApprovalStatus) ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.
		Where("role = ? AND status = ?", models.RoleEmployee, models.StatusApproved).
		Preload("Skills", "status = ?", status).
		Order("name ASC").
		Find(&employees).Error
	return employees, err
}
