package models

type EmployeeRole string
type ApprovalStatus string
type ProficiencyLevel string
type ProjectStatus string

const (
	RoleEmployee EmployeeRole = "employee"
	RoleVerifier EmployeeRole = "verifier"
	RoleHR       EmployeeRole = "hr"
	RoleAdmin    EmployeeRole = "admin"

	// Единый жизненный цикл одобрения для аккаунтов и навыков
	StatusPending  ApprovalStatus = "pending"
	StatusApproved ApprovalStatus = "approved"
	StatusRejected ApprovalStatus = "rejected"

	ProficiencyBeginner     ProficiencyLevel = "Beginner"
	ProficiencyIntermediate ProficiencyLevel = "Intermediate"
	ProficiencyExpert       ProficiencyLevel = "Expert"

	ProjectNotStarted ProjectStatus = "Not Started"
	ProjectInProgress ProjectStatus = "In Progress"
	ProjectCompleted  ProjectStatus = "Completed"
	ProjectOnHold     ProjectStatus = "On Hold"
)

// ValidRole проверяет валидность роли
func ValidRole(role EmployeeRole) bool {
	switch role {
	case RoleEmployee, RoleVerifier, RoleHR, RoleAdmin:
		return true
	}
	return false
}

// ValidTransitionTarget проверяет целевой статус перехода
// approve/reject. Всё вне enum отклоняется до мутации стора.
func ValidTransitionTarget(status ApprovalStatus) bool {
	return status == StatusApproved || status == StatusRejected
}

// AutoApproved - verifier и admin минуют состояние pending
func AutoApproved(role EmployeeRole) bool {
	return role == RoleVerifier || role == RoleAdmin
}

// ValidProficiency проверяет уровень владения навыком
func ValidProficiency(level ProficiencyLevel) bool {
	switch level {
	case ProficiencyBeginner, ProficiencyIntermediate, ProficiencyExpert:
		return true
	}
	return false
}

// ValidProjectStatus проверяет статус проекта
func ValidProjectStatus(status ProjectStatus) bool {
	switch status {
	case ProjectNotStarted, ProjectInProgress, ProjectCompleted, ProjectOnHold:
		return true
	}
	return false
}
