package models

// BasePlanEntry - запись планового графика: статус одного сотрудника на одну дату
type BasePlanEntry struct {
	ID         int    `json:"id"`
	EmployeeID int    `json:"employee_id"`
	Date       string `json:"date"` // YYYY-MM-DD
	Status     string `json:"status"`
}
