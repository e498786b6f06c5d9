package models

// Тела запросов create/update. Совпадают с сущностями без поля id:
// при создании id отсутствует, при обновлении id передается в пути.
// Пустые необязательные поля уже приведены к null на уровне черновика.

type EmployeePayload struct {
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

type BasePlanPayload struct {
	EmployeeID int    `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

type AdjustmentPayload struct {
	EmployeeID         int               `json:"employee_id"`
	Date               string            `json:"date"`
	StatusOverride     *string           `json:"status_override"`
	StartTimeOverride  *string           `json:"start_time_override"`
	EndTimeOverride    *string           `json:"end_time_override"`
	LunchStartOverride *string           `json:"lunch_start_override"`
	Absences           []AbsenceInterval `json:"absences"`
}
