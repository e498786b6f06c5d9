package report

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"schedule-admin-panel/internal/models"
)

// BuildPlanCalendar выгружает плановый график одного сотрудника в iCalendar:
// каждая запись плана - событие на весь день с кодом и подписью статуса.
func BuildPlanCalendar(employee models.Employee, entries []models.BasePlanEntry) (string, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//schedule-admin-panel//RU")

	now := time.Now().UTC()

	for _, entry := range entries {
		if entry.EmployeeID != employee.ID {
			continue
		}

		date, err := time.Parse("2006-01-02", entry.Date)
		if err != nil {
			return "", fmt.Errorf("некорректная дата плана %q: %v", entry.Date, err)
		}

		event := cal.AddEvent(fmt.Sprintf("plan-%d@schedule-admin-panel", entry.ID))
		event.SetDtStampTime(now)
		event.SetAllDayStartAt(date)
		event.SetAllDayEndAt(date.AddDate(0, 0, 1))
		event.SetSummary(fmt.Sprintf("%s - %s (%s)", entry.Status, models.StatusLabel(entry.Status), employee.Fio))
	}

	return cal.Serialize(), nil
}
