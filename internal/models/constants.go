package models

// SalaryType определяет способ оплаты вакансии.
type SalaryType string

// SalaryType константы типов оплаты
const (
	SalaryTypeHourly SalaryType = "hourly"
	SalaryTypeFixed  SalaryType = "fixed"
)

// Role константы ролей пользователя
const (
	RoleStudent  = "student"
	RoleEmployer = "employer"
)

// ApplicantStatus константы статусов кандидатов
const (
	ApplicantStatusNew         = "new"
	ApplicantStatusReviewed    = "reviewed"
	ApplicantStatusShortlisted = "shortlisted"
	ApplicantStatusRejected    = "rejected"
)

// ValidSalaryTypes список валидных типов оплаты
var ValidSalaryTypes = map[SalaryType]struct{}{
	SalaryTypeHourly: {},
	SalaryTypeFixed:  {},
}

// ValidRoles список валидных ролей
var ValidRoles = map[string]struct{}{
	RoleStudent:  {},
	RoleEmployer: {},
}

// ValidApplicantStatuses список валидных статусов кандидатов
var ValidApplicantStatuses = map[string]struct{}{
	ApplicantStatusNew:         {},
	ApplicantStatusReviewed:    {},
	ApplicantStatusShortlisted: {},
	ApplicantStatusRejected:    {},
}

// IsValidRole проверяет, что роль входит в закрытый список.
func IsValidRole(role string) bool {
	_, ok := ValidRoles[role]
	return ok
}
