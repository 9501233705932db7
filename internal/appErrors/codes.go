package appErrors

// Коды ошибок сгруппированные по доменам
const (
	// Аутентификация и авторизация
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	CodeAccountPending     ErrorCode = "ACCOUNT_PENDING"
	CodeAccountRejected    ErrorCode = "ACCOUNT_REJECTED"

	// Валидация
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeInvalidStatus    ErrorCode = "INVALID_STATUS"
	CodeInvalidRole      ErrorCode = "INVALID_ROLE"

	// Ресурсы
	CodeEmployeeNotFound ErrorCode = "EMPLOYEE_NOT_FOUND"
	CodeSkillNotFound    ErrorCode = "SKILL_NOT_FOUND"
	CodeProjectNotFound  ErrorCode = "PROJECT_NOT_FOUND"

	// Бизнес-логика
	CodeEmailAlreadyExists ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeAssignmentConflict ErrorCode = "ASSIGNMENT_CONFLICT"

	// Файлы
	CodeFileTooLarge    ErrorCode = "FILE_TOO_LARGE"
	CodeInvalidFileType ErrorCode = "INVALID_FILE_TYPE"

	// Системные ошибки
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
)
