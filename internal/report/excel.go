package report

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"
)

var monthNames = map[time.Month]string{
	time.January:   "Январь",
	time.February:  "Февраль",
	time.March:     "Март",
	time.April:     "Апрель",
	time.May:       "Май",
	time.June:      "Июнь",
	time.July:      "Июль",
	time.August:    "Август",
	time.September: "Сентябрь",
	time.October:   "Октябрь",
	time.November:  "Ноябрь",
	time.December:  "Декабрь",
}

// BuildMonthExcel выгружает отчет за месяц в xlsx: строка на сотрудника,
// колонка на день, примечания дня - в комментарии ячейки.
// Возвращает содержимое файла и рекомендуемое имя.
func BuildMonthExcel(year int, month time.Month, report MonthReport) (*bytes.Buffer, string, error) {
	sheetName := fmt.Sprintf("%s %d", monthNames[month], year)
	numDays := daysInMonth(year, month)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, "", fmt.Errorf("ошибка создания листа: %v", err)
	}

	// Шапка: ФИО и числа месяца
	if err := f.SetCellValue(sheetName, "A1", "ФИО"); err != nil {
		return nil, "", err
	}
	for day := 1; day <= numDays; day++ {
		cell, err := excelize.CoordinatesToCellName(day+1, 1)
		if err != nil {
			return nil, "", err
		}
		if err := f.SetCellValue(sheetName, cell, day); err != nil {
			return nil, "", err
		}
	}

	// Сотрудники в алфавитном порядке, чтобы выгрузка была воспроизводимой
	fios := make([]string, 0, len(report))
	for fio := range report {
		fios = append(fios, fio)
	}
	sort.Strings(fios)

	for i, fio := range fios {
		row := i + 2

		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, "", err
		}
		if err := f.SetCellValue(sheetName, cell, fio); err != nil {
			return nil, "", err
		}

		for day := 1; day <= numDays; day++ {
			dayCell, ok := report[fio][day]
			if !ok {
				continue
			}

			cell, err := excelize.CoordinatesToCellName(day+1, row)
			if err != nil {
				return nil, "", err
			}
			if err := f.SetCellValue(sheetName, cell, dayCell.Code); err != nil {
				return nil, "", err
			}

			if dayCell.Note != "" {
				comment := excelize.Comment{
					Cell:   cell,
					Author: "График",
					Paragraph: []excelize.RichTextRun{
						{Text: dayCell.Note},
					},
				}
				if err := f.AddComment(sheetName, comment); err != nil {
					return nil, "", err
				}
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("ошибка записи файла: %v", err)
	}

	filename := fmt.Sprintf("schedule_%d_%02d.xlsx", year, int(month))
	return buf, filename, nil
}
