package models

// AbsenceInterval - отлучка внутри дня. Собственного ID нет,
// идентичность внутри списка - позиционная.
type AbsenceInterval struct {
	From    string `json:"from"` // HH:MM
	To      string `json:"to"`   // HH:MM
	Comment string `json:"comment"`
}

// ScheduleAdjustment - ручная правка графика на конкретную дату.
// Переопределения nullable: nil означает "без изменения".
// Absences сериализуется как null, когда отлучек нет, - пустой список
// на wire не встречается.
type ScheduleAdjustment struct {
	ID                 int               `json:"id"`
	EmployeeID         int               `json:"employee_id"`
	Date               string            `json:"date"` // YYYY-MM-DD
	StatusOverride     *string           `json:"status_override"`
	StartTimeOverride  *string           `json:"start_time_override"`
	EndTimeOverride    *string           `json:"end_time_override"`
	LunchStartOverride *string           `json:"lunch_start_override"`
	Absences           []AbsenceInterval `json:"absences"`
}

// HasTimeOverride проверяет, задано ли переопределение времени смены
func (a ScheduleAdjustment) HasTimeOverride() bool {
	return a.StartTimeOverride != nil || a.EndTimeOverride != nil
}

// AbsenceCount возвращает количество отлучек в правке
func (a ScheduleAdjustment) AbsenceCount() int {
	return len(a.Absences)
}

// StatusOverrideValue возвращает переопределение статуса, пустую строку при null
func (a ScheduleAdjustment) StatusOverrideValue() string {
	return derefOrEmpty(a.StatusOverride)
}

// StartTimeValue возвращает переопределение начала смены, пустую строку при null
func (a ScheduleAdjustment) StartTimeValue() string {
	return derefOrEmpty(a.StartTimeOverride)
}

// EndTimeValue возвращает переопределение конца смены, пустую строку при null
func (a ScheduleAdjustment) EndTimeValue() string {
	return derefOrEmpty(a.EndTimeOverride)
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
