package models

// Коды статусов дня (единый набор для плана и правок)
const (
	StatusWork           = "Я"  // Работа (Явка)
	StatusRemote         = "Д"  // Удаленно (полный день)
	StatusDayOff         = "В"  // Выходной
	StatusVacation       = "О"  // Отпуск
	StatusSickLeave      = "Б"  // Больничный
	StatusBusinessTrip   = "К"  // Командировка
	StatusOfficeToRemote = "ЯД" // Офис до обеда, затем удаленно
	StatusRemoteToOffice = "ДЯ" // Удаленно до обеда, затем офис
	StatusStudyLeave     = "У"  // Учебный отпуск
)

// StatusCodes - порядок кодов для выпадающих списков
var StatusCodes = []string{
	StatusWork,
	StatusRemote,
	StatusDayOff,
	StatusVacation,
	StatusSickLeave,
	StatusBusinessTrip,
	StatusOfficeToRemote,
	StatusRemoteToOffice,
	StatusStudyLeave,
}

var statusLabels = map[string]string{
	StatusWork:           "Работа",
	StatusRemote:         "Удаленно",
	StatusDayOff:         "Выходной",
	StatusVacation:       "Отпуск",
	StatusSickLeave:      "Больничный",
	StatusBusinessTrip:   "Командировка",
	StatusOfficeToRemote: "До обеда в офисе",
	StatusRemoteToOffice: "После обеда в офисе",
	StatusStudyLeave:     "Учебный отпуск",
}

// StatusLabel возвращает подпись статуса для отображения
func StatusLabel(code string) string {
	if label, ok := statusLabels[code]; ok {
		return label
	}
	return code
}

// IsValidStatus проверяет, что код статуса входит в набор
func IsValidStatus(code string) bool {
	_, ok := statusLabels[code]
	return ok
}

// IsWorkingStatus - статусы, при которых сотрудник работает в течение дня
func IsWorkingStatus(code string) bool {
	switch code {
	case StatusWork, StatusRemote, StatusOfficeToRemote, StatusRemoteToOffice:
		return true
	}
	return false
}
