package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"schedule-admin-panel/internal/draft"
	"schedule-admin-panel/internal/models"
	"schedule-admin-panel/pkg/scheduleapi"
)

type BasePlanService struct {
	api *scheduleapi.Client
}

func NewBasePlanService(api *scheduleapi.Client) *BasePlanService {
	return &BasePlanService{api: api}
}

// Load параллельно запрашивает справочник сотрудников и план.
// Ошибка любого из запросов считается ошибкой всей загрузки,
// частичного результата нет.
func (s *BasePlanService) Load(ctx context.Context) ([]models.BasePlanEntry, []models.Employee, error) {
	var entries []models.BasePlanEntry
	var employees []models.Employee

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employees, err = s.api.ListEmployees(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		entries, err = s.api.ListBasePlan(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("ошибка загрузки плана: %v", err)
	}

	return entries, employees, nil
}

// Save отправляет черновик: без id - создание, с id - обновление
func (s *BasePlanService) Save(ctx context.Context, d draft.BasePlanDraft) error {
	if d.IsEditing() {
		return s.api.UpdateBasePlanEntry(ctx, d.ID, d.Payload())
	}
	return s.api.CreateBasePlanEntry(ctx, d.Payload())
}

func (s *BasePlanService) Delete(ctx context.Context, id int) error {
	return s.api.DeleteBasePlanEntry(ctx, id)
}
