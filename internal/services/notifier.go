package services

import (
	"fmt"

	"staffhub_backend/internal/email"
	"staffhub_backend/internal/logger"
	"staffhub_backend/internal/models"
)

// notifier отправляет письма о решениях по аккаунтам и навыкам.
// Отправка best-effort: ошибка логируется и не влияет на запрос.
type notifier struct {
	provider email.Provider
}

func newNotifier(provider email.Provider) *notifier {
	if provider == nil {
		provider = &email.NoopProvider{}
	}
	return &notifier{provider: provider}
}

func (n *notifier) accountDecision(employee *models.Employee, status models.ApprovalStatus) {
	msg := &email.Message{
		To:      employee.Email,
		Subject: fmt.Sprintf("Your account has been %s", status),
		Body: fmt.Sprintf(
			"Hello %s,\n\nYour account has been %s.\n", employee.Name, status),
	}
	if err := n.provider.Send(msg); err != nil {
		logger.Warn("Failed to send account decision email",
			"employee_id", employee.ID, "error", err)
	}
}

func (n *notifier) skillDecision(skill *models.Skill, status models.ApprovalStatus) {
	if skill.Employee == nil {
		return
	}
	msg := &email.Message{
		To:      skill.Employee.Email,
		Subject: fmt.Sprintf("Your skill %q has been %s", skill.SkillName, status),
		Body: fmt.Sprintf(
			"Hello %s,\n\nYour skill claim %q has been %s.\n",
			skill.Employee.Name, skill.SkillName, status),
	}
	if err := n.provider.Send(msg); err != nil {
		logger.Warn("Failed to send skill decision email",
			"skill_id", skill.ID, "error", err)
	}
}
