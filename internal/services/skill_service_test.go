package services

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/textproto"
	"testing"

	"staffhub_backend/internal/appErrors"
	"staffhub_backend/internal/models"
	"staffhub_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStorage хранит файлы в памяти
type fakeStorage struct {
	files map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{files: make(map[string][]byte)}
}

func (s *fakeStorage) Save(ctx context.Context, path string, reader io.Reader) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.files[path] = data
	return nil
}

func (s *fakeStorage) Get(ctx context.Context, path string) (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(s.files[path])), nil
}

func (s *fakeStorage) Delete(ctx context.Context, path string) error {
	delete(s.files, path)
	return nil
}

func (s *fakeStorage) Exists(ctx context.Context, path string) (bool, error) {
	_, ok := s.files[path]
	return ok, nil
}

func (s *fakeStorage) GetURL(ctx context.Context, path string) (string, error) {
	return "/uploads/" + path, nil
}

func (s *fakeStorage) BasePath() string { return "./uploads" }

func newTestSkillService() (SkillService, *fakeEmployeeRepo, *fakeSkillRepo) {
	skillRepo := newFakeSkillRepo()
	employeeRepo := newFakeEmployeeRepo(skillRepo)
	cfg := UploadConfig{
		MaxSize:      5 * 1024 * 1024,
		AllowedTypes: []string{"application/pdf", "image/jpeg", "image/png"},
	}
	svc := NewSkillService(skillRepo, employeeRepo, newFakeStorage(), cfg, nil)
	return svc, employeeRepo, skillRepo
}

func seedEmployee(t *testing.T, repo *fakeEmployeeRepo, role models.EmployeeRole) *models.Employee {
	t.Helper()
	employee := &models.Employee{
		Name:         "Test User",
		Email:        "user-" + string(role) + "@test.com",
		PasswordHash: "hash",
		Role:         role,
		Status:       models.StatusApproved,
	}
	require.NoError(t, repo.Create(employee))
	return employee
}

func createSkillRequest(employeeID string) *dto.CreateSkillRequest {
	return &dto.CreateSkillRequest{
		EmployeeID:       employeeID,
		SkillName:        "Go",
		SkillDescription: "Backend development",
		ProficiencyLevel: models.ProficiencyExpert,
		ExperienceYears:  3,
	}
}

func TestSkillCreate_StartsPending(t *testing.T) {
	svc, employeeRepo, _ := newTestSkillService()
	owner := seedEmployee(t, employeeRepo, models.RoleEmployee)
	actor := Actor{ID: owner.ID, Role: models.RoleEmployee}

	skill, err := svc.Create(context.Background(), actor, createSkillRequest(owner.ID))
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, skill.Status)
	assert.Equal(t, owner.ID, skill.EmployeeID)
}

func TestSkillCreate_ForAnotherEmployeeForbidden(t *testing.T) {
	svc, employeeRepo, _ := newTestSkillService()
	owner := seedEmployee(t, employeeRepo, models.RoleEmployee)
	stranger := seedEmployee(t, employeeRepo, models.RoleVerifier)

	actor := Actor{ID: stranger.ID, Role: models.RoleVerifier}
	_, err := svc.Create(context.Background(), actor, createSkillRequest(owner.ID))

	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.CodeForbidden, appErr.Code)
}

func TestSkillCreate_HRCanActForOthers(t *testing.T) {
	svc, employeeRepo, _ := newTestSkillService()
	owner := seedEmployee(t, employeeRepo, models.RoleEmployee)
	hr := seedEmployee(t, employeeRepo, models.RoleHR)

	actor := Actor{ID: hr.ID, Role: models.RoleHR}
	skill, err := svc.Create(context.Background(), actor, createSkillRequest(owner.ID))
	require.NoError(t, err)
	assert.Equal(t, owner.ID, skill.EmployeeID)
}

func TestSkillCreate_UnknownEmployee(t *testing.T) {
	svc, _, _ := newTestSkillService()
	actor := Actor{ID: "ghost", Role: models.RoleEmployee}

	_, err := svc.Create(context.Background(), actor, createSkillRequest("ghost"))
	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.CodeEmployeeNotFound, appErr.Code)
}

func TestSkillCreate_InvalidProjectLinks(t *testing.T) {
	svc, employeeRepo, _ := newTestSkillService()
	owner := seedEmployee(t, employeeRepo, models.RoleEmployee)
	actor := Actor{ID: owner.ID, Role: models.RoleEmployee}

	req := createSkillRequest(owner.ID)
	req.ProjectLinks = "{not json"

	_, err := svc.Create(context.Background(), actor, req)
	assert.Error(t, err)
}

func TestSkillCreate_ProjectLinksRoundTrip(t *testing.T) {
	svc, employeeRepo, _ := newTestSkillService()
	owner := seedEmployee(t, employeeRepo, models.RoleEmployee)
	actor := Actor{ID: owner.ID, Role: models.RoleEmployee}

	req := createSkillRequest(owner.ID)
	req.ProjectLinks = `[{"label":"Demo","url":"https://example.com/demo"}]`

	skill, err := svc.Create(context.Background(), actor, req)
	require.NoError(t, err)

	links := skill.GetProjectLinks()
	require.Len(t, links, 1)
	assert.Equal(t, "Demo", links[0].Label)
	assert.Equal(t, "https://example.com/demo", links[0].URL)
}

func TestSkillCreate_CertificateTooLarge(t *testing.T) {
	svc, employeeRepo, _ := newTestSkillService()
	owner := seedEmployee(t, employeeRepo, models.RoleEmployee)
	actor := Actor{ID: owner.ID, Role: models.RoleEmployee}

	req := createSkillRequest(owner.ID)
	req.CertificateFile = &multipart.FileHeader{
		Filename: "cert.pdf",
		Size:     6 * 1024 * 1024,
		Header:   textproto.MIMEHeader{"Content-Type": []string{"application/pdf"}},
	}

	_, err := svc.Create(context.Background(), actor, req)
	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.CodeFileTooLarge, appErr.Code)
}

func TestSkillCreate_CertificateBadExtension(t *testing.T) {
	svc, employeeRepo, _ := newTestSkillService()
	owner := seedEmployee(t, employeeRepo, models.RoleEmployee)
	actor := Actor{ID: owner.ID, Role: models.RoleEmployee}

	req := createSkillRequest(owner.ID)
	req.CertificateFile = &multipart.FileHeader{
		Filename: "malware.exe",
		Size:     100,
		Header:   textproto.MIMEHeader{"Content-Type": []string{"application/octet-stream"}},
	}

	_, err := svc.Create(context.Background(), actor, req)
	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.CodeInvalidFileType, appErr.Code)
}

func TestSkillUpdate_OwnerOnly(t *testing.T) {
	svc, employeeRepo, skillRepo := newTestSkillService()
	owner := seedEmployee(t, employeeRepo, models.RoleEmployee)
	other := seedEmployee(t, employeeRepo, models.RoleVerifier)

	skill := &models.Skill{
		EmployeeID:       owner.ID,
		SkillName:        "Go",
		ProficiencyLevel: models.ProficiencyBeginner,
		Status:           models.StatusPending,
	}
	require.NoError(t, skillRepo.Create(skill))

	req := &dto.UpdateSkillRequest{
		SkillName:        "Go",
		ProficiencyLevel: models.ProficiencyExpert,
		ExperienceYears:  5,
	}

	_, err := svc.Update(context.Background(), Actor{ID: other.ID, Role: models.RoleVerifier}, skill.ID, req)
	assert.Error(t, err)

	updated, err := svc.Update(context.Background(), Actor{ID: owner.ID, Role: models.RoleEmployee}, skill.ID, req)
	require.NoError(t, err)
	assert.Equal(t, models.ProficiencyExpert, updated.ProficiencyLevel)
}

func TestSkillDelete_OwnerOnly(t *testing.T) {
	svc, employeeRepo, skillRepo := newTestSkillService()
	owner := seedEmployee(t, employeeRepo, models.RoleEmployee)
	other := seedEmployee(t, employeeRepo, models.RoleVerifier)

	skill := &models.Skill{EmployeeID: owner.ID, SkillName: "Go", Status: models.StatusPending}
	require.NoError(t, skillRepo.Create(skill))

	err := svc.Delete(Actor{ID: other.ID, Role: models.RoleVerifier}, skill.ID)
	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.CodeForbidden, appErr.Code)

	require.NoError(t, svc.Delete(Actor{ID: owner.ID, Role: models.RoleEmployee}, skill.ID))

	_, err = skillRepo.FindByID(skill.ID)
	assert.Error(t, err)
}

func TestSkillApproveAndReject(t *testing.T) {
	svc, employeeRepo, skillRepo := newTestSkillService()
	owner := seedEmployee(t, employeeRepo, models.RoleEmployee)

	first := &models.Skill{EmployeeID: owner.ID, SkillName: "Go", Status: models.StatusPending}
	second := &models.Skill{EmployeeID: owner.ID, SkillName: "SQL", Status: models.StatusPending}
	require.NoError(t, skillRepo.Create(first))
	require.NoError(t, skillRepo.Create(second))

	approved, err := svc.Approve(first.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, approved.Status)

	rejected, err := svc.Reject(second.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, rejected.Status)
}

func TestSkillApprove_NotFound(t *testing.T) {
	svc, _, _ := newTestSkillService()

	_, err := svc.Approve("missing-id")
	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.CodeSkillNotFound, appErr.Code)
}
