package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"schedule-admin-panel/internal/models"
	"schedule-admin-panel/internal/report"
	"schedule-admin-panel/pkg/scheduleapi"
)

type ReportService struct {
	api *scheduleapi.Client
}

func NewReportService(api *scheduleapi.Client) *ReportService {
	return &ReportService{api: api}
}

// loadAll параллельно запрашивает все три ресурса для отчета
func (s *ReportService) loadAll(ctx context.Context) ([]models.Employee, []models.BasePlanEntry, []models.ScheduleAdjustment, error) {
	var employees []models.Employee
	var plans []models.BasePlanEntry
	var adjustments []models.ScheduleAdjustment

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employees, err = s.api.ListEmployees(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		plans, err = s.api.ListBasePlan(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		adjustments, err = s.api.ListAdjustments(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, nil, fmt.Errorf("ошибка загрузки данных отчета: %v", err)
	}

	return employees, plans, adjustments, nil
}

// MonthExcel собирает итоговый отчет за месяц и выгружает его в xlsx
func (s *ReportService) MonthExcel(ctx context.Context, year int, month time.Month) (*bytes.Buffer, string, error) {
	employees, plans, adjustments, err := s.loadAll(ctx)
	if err != nil {
		return nil, "", err
	}

	data := report.CalculateMonthReport(year, month, employees, plans, adjustments)
	return report.BuildMonthExcel(year, month, data)
}

// PlanCalendar выгружает плановый график сотрудника в iCalendar
func (s *ReportService) PlanCalendar(ctx context.Context, employeeID int) (string, string, error) {
	var employees []models.Employee
	var plans []models.BasePlanEntry

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employees, err = s.api.ListEmployees(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		plans, err = s.api.ListBasePlan(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return "", "", fmt.Errorf("ошибка загрузки плана: %v", err)
	}

	employee, ok := FindEmployee(employees, employeeID)
	if !ok {
		return "", "", fmt.Errorf("сотрудник не найден: %d", employeeID)
	}

	content, err := report.BuildPlanCalendar(employee, plans)
	if err != nil {
		return "", "", err
	}

	filename := fmt.Sprintf("plan_%d.ics", employeeID)
	return content, filename, nil
}
