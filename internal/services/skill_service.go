package services

import (
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"staffhub_backend/internal/appErrors"
	"staffhub_backend/internal/email"
	"staffhub_backend/internal/models"
	"staffhub_backend/internal/repositories"
	"staffhub_backend/internal/services/dto"
	"staffhub_backend/internal/storage"
)

// UploadConfig - ограничения на файлы-сертификаты
type UploadConfig struct {
	MaxSize      int64
	AllowedTypes []string
}

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// Actor - инициатор операции, из claims токена
type Actor struct {
	ID   string
	Role models.EmployeeRole
}

// CanActFor - правка чужой заявки разрешена только HR и админу
func (a Actor) CanActFor(ownerID string) bool {
	return a.ID == ownerID || a.Role == models.RoleHR || a.Role == models.RoleAdmin
}

type SkillService interface {
	GetByEmployee(employeeID string) ([]models.Skill, error)
	GetPending() ([]models.Skill, error)
	Create(ctx context.Context, actor Actor, req *dto.CreateSkillRequest) (*models.Skill, error)
	Update(ctx context.Context, actor Actor, id string, req *dto.UpdateSkillRequest) (*models.Skill, error)
	Delete(actor Actor, id string) error
	Approve(id string) (*models.Skill, error)
	Reject(id string) (*models.Skill, error)
}

type SkillServiceImpl struct {
	skillRepo    repositories.SkillRepository
	employeeRepo repositories.EmployeeRepository
	storage      storage.Storage
	uploadCfg    UploadConfig
	notifier     *notifier
}

func NewSkillService(
	skillRepo repositories.SkillRepository,
	employeeRepo repositories.EmployeeRepository,
	store storage.Storage,
	uploadCfg UploadConfig,
	emailProvider email.Provider,
) SkillService {
	return &SkillServiceImpl{
		skillRepo:    skillRepo,
		employeeRepo: employeeRepo,
		storage:      store,
		uploadCfg:    uploadCfg,
		notifier:     newNotifier(emailProvider),
	}
}

func (s *SkillServiceImpl) GetByEmployee(employeeID string) ([]models.Skill, error) {
	skills, err := s.skillRepo.FindByEmployee(employeeID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return skills, nil
}

func (s *SkillServiceImpl) GetPending() ([]models.Skill, error) {
	skills, err := s.skillRepo.FindPending()
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return skills, nil
}

// Create - заявка на навык от владельца, всегда начинает с pending
func (s *SkillServiceImpl) Create(ctx context.Context, actor Actor, req *dto.CreateSkillRequest) (*models.Skill, error) {
	if !actor.CanActFor(req.EmployeeID) {
		return nil, appErrors.NewForbiddenError("Cannot add skills for another employee")
	}

	if _, err := s.employeeRepo.FindByID(req.EmployeeID); err != nil {
		if appErrors.Is(err, repositories.ErrEmployeeNotFound) {
			return nil, appErrors.ErrEmployeeNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	links, err := parseProjectLinks(req.ProjectLinks)
	if err != nil {
		return nil, appErrors.NewBadRequestError("Invalid project links format")
	}

	skill := &models.Skill{
		EmployeeID:       req.EmployeeID,
		SkillName:        req.SkillName,
		SkillDescription: req.SkillDescription,
		ProficiencyLevel: req.ProficiencyLevel,
		ExperienceYears:  req.ExperienceYears,
		Status:           models.StatusPending,
		LastUpdated:      time.Now(),
	}
	if err := skill.SetProjectLinks(links); err != nil {
		return nil, appErrors.InternalError(err)
	}

	if req.CertificateFile != nil {
		url, err := s.storeCertificate(ctx, req.CertificateFile)
		if err != nil {
			return nil, err
		}
		skill.CertificateFileURL = &url
	}

	if err := s.skillRepo.Create(skill); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return skill, nil
}

// Update - правка заявки владельцем; статус не трогаем
func (s *SkillServiceImpl) Update(ctx context.Context, actor Actor, id string, req *dto.UpdateSkillRequest) (*models.Skill, error) {
	skill, err := s.skillRepo.FindByID(id)
	if err != nil {
		if appErrors.Is(err, repositories.ErrSkillNotFound) {
			return nil, appErrors.ErrSkillNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	if !actor.CanActFor(skill.EmployeeID) {
		return nil, appErrors.NewForbiddenError("Cannot modify another employee's skill")
	}

	skill.SkillName = req.SkillName
	skill.SkillDescription = req.SkillDescription
	skill.ProficiencyLevel = req.ProficiencyLevel
	skill.ExperienceYears = req.ExperienceYears

	if req.ProjectLinks != "" {
		links, err := parseProjectLinks(req.ProjectLinks)
		if err != nil {
			return nil, appErrors.NewBadRequestError("Invalid project links format")
		}
		if err := skill.SetProjectLinks(links); err != nil {
			return nil, appErrors.InternalError(err)
		}
	}

	if req.CertificateFile != nil {
		url, err := s.storeCertificate(ctx, req.CertificateFile)
		if err != nil {
			return nil, err
		}
		skill.CertificateFileURL = &url
	}

	if err := s.skillRepo.Update(skill); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return skill, nil
}

func (s *SkillServiceImpl) Delete(actor Actor, id string) error {
	skill, err := s.skillRepo.FindByID(id)
	if err != nil {
		if appErrors.Is(err, repositories.ErrSkillNotFound) {
			return appErrors.ErrSkillNotFound
		}
		return appErrors.InternalError(err)
	}

	if !actor.CanActFor(skill.EmployeeID) {
		return appErrors.NewForbiddenError("Cannot delete another employee's skill")
	}

	if err := s.skillRepo.Delete(id); err != nil {
		if appErrors.Is(err, repositories.ErrSkillNotFound) {
			return appErrors.ErrSkillNotFound
		}
		return appErrors.InternalError(err)
	}
	return nil
}

// Approve - переход pending -> approved
func (s *SkillServiceImpl) Approve(id string) (*models.Skill, error) {
	return s.transition(id, models.StatusApproved)
}

// Reject - переход pending -> rejected
func (s *SkillServiceImpl) Reject(id string) (*models.Skill, error) {
	return s.transition(id, models.StatusRejected)
}

func (s *SkillServiceImpl) transition(id string, status models.ApprovalStatus) (*models.Skill, error) {
	if !models.ValidTransitionTarget(status) {
		return nil, appErrors.ErrInvalidStatus
	}

	skill, err := s.skillRepo.UpdateStatus(id, status)
	if err != nil {
		if appErrors.Is(err, repositories.ErrSkillNotFound) {
			return nil, appErrors.ErrSkillNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	s.notifier.skillDecision(skill, status)
	return skill, nil
}

// storeCertificate валидирует и сохраняет файл-сертификат,
// возвращает публичный URL
func (s *SkillServiceImpl) storeCertificate(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if file.Size > s.uploadCfg.MaxSize {
		return "", appErrors.ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return "", appErrors.ErrInvalidFileType
	}

	contentType := file.Header.Get("Content-Type")
	if len(s.uploadCfg.AllowedTypes) > 0 && contentType != "" && !s.typeAllowed(contentType) {
		return "", appErrors.ErrInvalidFileType
	}

	src, err := file.Open()
	if err != nil {
		return "", appErrors.InternalError(err)
	}
	defer src.Close()

	// Имя с префиксом-меткой времени, как и лежит в /uploads
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitizeFilename(file.Filename))
	if err := s.storage.Save(ctx, name, src); err != nil {
		return "", appErrors.InternalError(err)
	}

	url, err := s.storage.GetURL(ctx, name)
	if err != nil {
		return "", appErrors.InternalError(err)
	}
	return url, nil
}

func (s *SkillServiceImpl) typeAllowed(contentType string) bool {
	for _, t := range s.uploadCfg.AllowedTypes {
		if t == contentType {
			return true
		}
	}
	return false
}

func sanitizeFilename(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

func parseProjectLinks(raw string) ([]models.ProjectLink, error) {
	if raw == "" {
		return []models.ProjectLink{}, nil
	}
	var links []models.ProjectLink
	if err := json.Unmarshal([]byte(raw), &links); err != nil {
		return nil, err
	}
	return links, nil
}
