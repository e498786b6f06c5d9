package report

import (
	"fmt"
	"strings"
	"time"

	"schedule-admin-panel/internal/models"
)

// DayCell - итоговое состояние одной ячейки отчета: код дня и примечания
type DayCell struct {
	Code string
	Note string
}

// MonthReport - матрица ФИО -> день месяца -> ячейка
type MonthReport map[string]map[int]DayCell

type entryKey struct {
	employeeID int
	date       string
}

// CalculateMonthReport сводит план и правки в итоговый отчет за месяц
func CalculateMonthReport(
	year int,
	month time.Month,
	employees []models.Employee,
	plans []models.BasePlanEntry,
	adjustments []models.ScheduleAdjustment,
) MonthReport {
	plansMap := make(map[entryKey]models.BasePlanEntry, len(plans))
	for _, p := range plans {
		plansMap[entryKey{p.EmployeeID, p.Date}] = p
	}

	adjustmentsMap := make(map[entryKey]models.ScheduleAdjustment, len(adjustments))
	for _, a := range adjustments {
		adjustmentsMap[entryKey{a.EmployeeID, a.Date}] = a
	}

	numDays := daysInMonth(year, month)
	report := make(MonthReport, len(employees))

	for _, employee := range employees {
		days := make(map[int]DayCell, numDays)

		for day := 1; day <= numDays; day++ {
			currentDate := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
			key := entryKey{employee.ID, currentDate.Format("2006-01-02")}

			var plan *models.BasePlanEntry
			if p, ok := plansMap[key]; ok {
				plan = &p
			}
			var adj *models.ScheduleAdjustment
			if a, ok := adjustmentsMap[key]; ok {
				adj = &a
			}

			days[day] = calculateDay(employee, plan, adj, currentDate)
		}

		report[employee.Fio] = days
	}

	return report
}

// calculateDay вычисляет итог одного дня: статус правки сильнее плана,
// план сильнее календаря, календарь сильнее типа занятости.
func calculateDay(
	employee models.Employee,
	plan *models.BasePlanEntry,
	adj *models.ScheduleAdjustment,
	currentDate time.Time,
) DayCell {
	var notes []string
	finalCode := models.StatusWork

	switch {
	case adj != nil && adj.StatusOverride != nil:
		finalCode = *adj.StatusOverride

		// Рабочий статус может означать смену локации вне графика
		if models.IsWorkingStatus(finalCode) {
			remote := strings.Contains(finalCode, models.StatusRemote)
			if employee.EmployeeType == models.EmployeeTypeAlwaysRemote && !remote {
				notes = append(notes, "Выход в офис (вне графика)")
			} else if employee.EmployeeType == models.EmployeeTypeOfficeFixed && remote {
				notes = append(notes, "Удаленка (вне графика)")
			}
		}

	case plan != nil && plan.Status != "":
		finalCode = plan.Status

	case currentDate.Weekday() == time.Saturday || currentDate.Weekday() == time.Sunday:
		finalCode = models.StatusDayOff

	default:
		if employee.EmployeeType == models.EmployeeTypeAlwaysRemote {
			finalCode = models.StatusRemote
		} else {
			finalCode = models.StatusWork
		}
	}

	// В нерабочие дни время и отлучки не показываются
	if !models.IsWorkingStatus(finalCode) {
		return DayCell{Code: finalCode}
	}

	if adj != nil && adj.StartTimeOverride != nil {
		notes = append(notes, "Начало: "+*adj.StartTimeOverride)
	}

	if adj != nil && adj.EndTimeOverride != nil {
		notes = append(notes, "Конец: "+*adj.EndTimeOverride)
	}

	// Обед показывается только при ручной правке его начала
	if adj != nil && adj.LunchStartOverride != nil {
		if note, ok := lunchNote(*adj.LunchStartOverride, employee.LunchDuration); ok {
			notes = append(notes, note)
		}
	}

	if adj != nil {
		for _, absence := range adj.Absences {
			note := fmt.Sprintf("Отлучка: %s-%s", absence.From, absence.To)
			if absence.Comment != "" {
				note += fmt.Sprintf(" (%s)", absence.Comment)
			}
			notes = append(notes, note)
		}
	}

	return DayCell{
		Code: finalCode,
		Note: strings.Join(notes, "\n"),
	}
}

// lunchNote считает конец обеда от начала и длительности сотрудника
func lunchNote(lunchStart string, durationMinutes int) (string, bool) {
	start, err := time.Parse("15:04", lunchStart)
	if err != nil {
		return "", false
	}

	if durationMinutes <= 0 {
		durationMinutes = 60
	}
	end := start.Add(time.Duration(durationMinutes) * time.Minute)

	return fmt.Sprintf("Обед: %s-%s", start.Format("15:04"), end.Format("15:04")), true
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
