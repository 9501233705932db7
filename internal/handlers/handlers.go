package handlers

// AppHandlers - все HTTP-хэндлеры приложения
type AppHandlers struct {
	AuthHandler     *AuthHandler
	EmployeeHandler *EmployeeHandler
	SkillHandler    *SkillHandler
	ProjectHandler  *ProjectHandler
}
