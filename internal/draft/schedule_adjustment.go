package draft

import (
	"errors"

	"schedule-admin-panel/internal/models"
)

// ErrAbsenceTimeRequired - у добавляемой отлучки не заполнено время
var ErrAbsenceTimeRequired = errors.New("заполните время отлучки")

// AdjustmentDraft - несохраненная ручная правка вместе со списком
// отлучек и временными полями следующей добавляемой отлучки.
// Список отлучек живет только внутри черновика и при сохранении
// отправляется целиком - частичных обновлений отдельных отлучек нет.
type AdjustmentDraft struct {
	ID                 int
	EmployeeID         int
	Date               string
	StatusOverride     string
	StartTimeOverride  string
	EndTimeOverride    string
	LunchStartOverride string
	Absences           []models.AbsenceInterval

	// Pending - незавершенный ввод следующей отлучки
	Pending models.AbsenceInterval
}

// NewAdjustmentDraft возвращает черновик создания. Первый сотрудник
// справочника подставляется как значение по умолчанию.
func NewAdjustmentDraft(employees []models.Employee) *AdjustmentDraft {
	d := &AdjustmentDraft{}
	if len(employees) > 0 {
		d.EmployeeID = employees[0].ID
	}
	return d
}

// AdjustmentDraftFrom копирует правку в черновик редактирования.
// null-переопределения превращаются в пустые строки, null-список
// отлучек - в пустой список.
func AdjustmentDraftFrom(adj models.ScheduleAdjustment) *AdjustmentDraft {
	d := &AdjustmentDraft{
		ID:                 adj.ID,
		EmployeeID:         adj.EmployeeID,
		Date:               adj.Date,
		StatusOverride:     stringOrEmpty(adj.StatusOverride),
		StartTimeOverride:  stringOrEmpty(adj.StartTimeOverride),
		EndTimeOverride:    stringOrEmpty(adj.EndTimeOverride),
		LunchStartOverride: stringOrEmpty(adj.LunchStartOverride),
		Absences:           make([]models.AbsenceInterval, len(adj.Absences)),
	}
	copy(d.Absences, adj.Absences)
	return d
}

// IsEditing сообщает, редактируется ли существующая запись
func (d *AdjustmentDraft) IsEditing() bool {
	return d.ID != 0
}

// AddPendingAbsence переносит Pending в конец списка отлучек.
// Если не заполнено время начала или конца, список не меняется
// и возвращается ErrAbsenceTimeRequired. После успешного добавления
// Pending очищается.
func (d *AdjustmentDraft) AddPendingAbsence() error {
	if d.Pending.From == "" || d.Pending.To == "" {
		return ErrAbsenceTimeRequired
	}

	d.Absences = append(d.Absences, d.Pending)
	d.Pending = models.AbsenceInterval{}
	return nil
}

// RemoveAbsence удаляет отлучку по позиции. Остальные элементы
// сохраняют относительный порядок и переиндексируются.
func (d *AdjustmentDraft) RemoveAbsence(index int) {
	if index < 0 || index >= len(d.Absences) {
		return
	}

	updated := make([]models.AbsenceInterval, 0, len(d.Absences)-1)
	updated = append(updated, d.Absences[:index]...)
	updated = append(updated, d.Absences[index+1:]...)
	d.Absences = updated
}

// Payload нормализует черновик для отправки: пустые переопределения
// уходят как null, пустой список отлучек - как null, а не [].
// Список отправляется целиком при каждом сохранении.
func (d *AdjustmentDraft) Payload() models.AdjustmentPayload {
	payload := models.AdjustmentPayload{
		EmployeeID:         d.EmployeeID,
		Date:               d.Date,
		StatusOverride:     optString(d.StatusOverride),
		StartTimeOverride:  optString(d.StartTimeOverride),
		EndTimeOverride:    optString(d.EndTimeOverride),
		LunchStartOverride: optString(d.LunchStartOverride),
	}

	if len(d.Absences) > 0 {
		payload.Absences = make([]models.AbsenceInterval, len(d.Absences))
		copy(payload.Absences, d.Absences)
	}

	return payload
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
