package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"schedule-admin-panel/internal/draft"
	"schedule-admin-panel/internal/models"
	"schedule-admin-panel/pkg/scheduleapi"
)

type AdjustmentService struct {
	api *scheduleapi.Client
}

func NewAdjustmentService(api *scheduleapi.Client) *AdjustmentService {
	return &AdjustmentService{api: api}
}

// Load параллельно запрашивает справочник сотрудников и правки.
// Ошибка любого из запросов считается ошибкой всей загрузки.
func (s *AdjustmentService) Load(ctx context.Context) ([]models.ScheduleAdjustment, []models.Employee, error) {
	var adjustments []models.ScheduleAdjustment
	var employees []models.Employee

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employees, err = s.api.ListEmployees(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		adjustments, err = s.api.ListAdjustments(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("ошибка загрузки правок: %v", err)
	}

	return adjustments, employees, nil
}

// Save отправляет черновик целиком, включая полный список отлучек:
// без id - создание, с id - обновление
func (s *AdjustmentService) Save(ctx context.Context, d *draft.AdjustmentDraft) error {
	if d.IsEditing() {
		return s.api.UpdateAdjustment(ctx, d.ID, d.Payload())
	}
	return s.api.CreateAdjustment(ctx, d.Payload())
}

func (s *AdjustmentService) Delete(ctx context.Context, id int) error {
	return s.api.DeleteAdjustment(ctx, id)
}

// FindAdjustment ищет правку в загруженном списке
func FindAdjustment(adjustments []models.ScheduleAdjustment, id int) (models.ScheduleAdjustment, bool) {
	for _, a := range adjustments {
		if a.ID == id {
			return a, true
		}
	}
	return models.ScheduleAdjustment{}, false
}

// FindEmployee ищет сотрудника в справочнике
func FindEmployee(employees []models.Employee, id int) (models.Employee, bool) {
	for _, e := range employees {
		if e.ID == id {
			return e, true
		}
	}
	return models.Employee{}, false
}

// FindBasePlanEntry ищет запись плана в загруженном списке
func FindBasePlanEntry(entries []models.BasePlanEntry, id int) (models.BasePlanEntry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return models.BasePlanEntry{}, false
}
