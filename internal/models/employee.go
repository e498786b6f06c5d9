package models

import "strconv"

// Роли в системе
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Типы занятости сотрудника
const (
	EmployeeTypeOfficeFixed      = "OFFICE_FIXED"
	EmployeeTypeOfficeFlex       = "OFFICE_FLEX"
	EmployeeTypeAlwaysRemote     = "ALWAYS_REMOTE"
	EmployeeTypeRemoteBySchedule = "REMOTE_BY_SCHEDULE"
)

// EmployeeTypes - порядок типов для выпадающих списков
var EmployeeTypes = []string{
	EmployeeTypeOfficeFixed,
	EmployeeTypeOfficeFlex,
	EmployeeTypeAlwaysRemote,
	EmployeeTypeRemoteBySchedule,
}

var employeeTypeLabels = map[string]string{
	EmployeeTypeOfficeFixed:      "Офис 5/2",
	EmployeeTypeOfficeFlex:       "Гибкий офис",
	EmployeeTypeAlwaysRemote:     "Удаленка",
	EmployeeTypeRemoteBySchedule: "Гибрид",
}

// EmployeeTypeLabel возвращает подпись типа занятости
func EmployeeTypeLabel(code string) string {
	if label, ok := employeeTypeLabels[code]; ok {
		return label
	}
	return code
}

// Employee - запись справочника сотрудников, как ее отдает remote API
type Employee struct {
	ID            int    `json:"id"`
	Fio           string `json:"fio"`
	Team          string `json:"team"`
	TgUserID      *int64 `json:"tg_user_id"`
	EmployeeType  string `json:"employee_type"`
	Role          string `json:"role"`
	IsActive      bool   `json:"is_active"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	LunchStart    string `json:"lunch_start"`
	LunchDuration int    `json:"lunch_duration"`
}

// IsAdmin проверяет, является ли сотрудник администратором
func (e Employee) IsAdmin() bool {
	return e.Role == RoleAdmin
}

// TypeLabel возвращает подпись типа занятости сотрудника
func (e Employee) TypeLabel() string {
	return EmployeeTypeLabel(e.EmployeeType)
}

// TgLabel возвращает TG ID для отображения, пустую строку при null
func (e Employee) TgLabel() string {
	if e.TgUserID == nil {
		return ""
	}
	return strconv.FormatInt(*e.TgUserID, 10)
}
