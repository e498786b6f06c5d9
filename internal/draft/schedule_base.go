package draft

import "schedule-admin-panel/internal/models"

// BasePlanDraft - несохраненная запись планового графика
type BasePlanDraft struct {
	ID         int
	EmployeeID int
	Date       string
	Status     string
}

// NewBasePlanDraft возвращает черновик создания. Первый сотрудник
// справочника подставляется как значение по умолчанию.
func NewBasePlanDraft(employees []models.Employee) BasePlanDraft {
	d := BasePlanDraft{Status: models.StatusWork}
	if len(employees) > 0 {
		d.EmployeeID = employees[0].ID
	}
	return d
}

// BasePlanDraftFrom копирует запись плана в черновик редактирования
func BasePlanDraftFrom(entry models.BasePlanEntry) BasePlanDraft {
	return BasePlanDraft{
		ID:         entry.ID,
		EmployeeID: entry.EmployeeID,
		Date:       entry.Date,
		Status:     entry.Status,
	}
}

// IsEditing сообщает, редактируется ли существующая запись
func (d BasePlanDraft) IsEditing() bool {
	return d.ID != 0
}

func (d BasePlanDraft) Payload() models.BasePlanPayload {
	return models.BasePlanPayload{
		EmployeeID: d.EmployeeID,
		Date:       d.Date,
		Status:     d.Status,
	}
}
