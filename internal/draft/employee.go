package draft

import (
	"fmt"
	"strconv"

	"schedule-admin-panel/internal/models"
)

// EmployeeDraft - несохраненная копия сотрудника в форме. Все
// необязательные поля держатся строками, чтобы форма оставалась
// управляемой; приведение к null происходит в Payload.
type EmployeeDraft struct {
	ID            int
	Fio           string
	Team          string
	TgUserID      string
	EmployeeType  string
	Role          string
	IsActive      bool
	StartTime     string
	EndTime       string
	LunchStart    string
	LunchDuration int
}

// NewEmployeeDraft возвращает черновик создания со значениями по умолчанию
func NewEmployeeDraft() EmployeeDraft {
	return EmployeeDraft{
		EmployeeType:  models.EmployeeTypeOfficeFixed,
		Role:          models.RoleUser,
		IsActive:      true,
		StartTime:     "09:00",
		EndTime:       "18:00",
		LunchStart:    "13:00",
		LunchDuration: 60,
	}
}

// EmployeeDraftFrom копирует запись в черновик редактирования.
// null-поля превращаются в пустые строки.
func EmployeeDraftFrom(e models.Employee) EmployeeDraft {
	d := EmployeeDraft{
		ID:            e.ID,
		Fio:           e.Fio,
		Team:          e.Team,
		EmployeeType:  e.EmployeeType,
		Role:          e.Role,
		IsActive:      e.IsActive,
		StartTime:     e.StartTime,
		EndTime:       e.EndTime,
		LunchStart:    e.LunchStart,
		LunchDuration: e.LunchDuration,
	}
	if e.TgUserID != nil {
		d.TgUserID = strconv.FormatInt(*e.TgUserID, 10)
	}
	return d
}

// IsEditing сообщает, редактируется ли существующая запись
func (d EmployeeDraft) IsEditing() bool {
	return d.ID != 0
}

// Payload нормализует черновик для отправки: пустой TG ID уходит как null
func (d EmployeeDraft) Payload() (models.EmployeePayload, error) {
	payload := models.EmployeePayload{
		Fio:           d.Fio,
		Team:          d.Team,
		EmployeeType:  d.EmployeeType,
		Role:          d.Role,
		IsActive:      d.IsActive,
		StartTime:     d.StartTime,
		EndTime:       d.EndTime,
		LunchStart:    d.LunchStart,
		LunchDuration: d.LunchDuration,
	}

	if d.TgUserID != "" {
		tgID, err := strconv.ParseInt(d.TgUserID, 10, 64)
		if err != nil {
			return models.EmployeePayload{}, fmt.Errorf("некорректный TG ID: %s", d.TgUserID)
		}
		payload.TgUserID = &tgID
	}

	return payload, nil
}
