package service

import (
	"context"
	"fmt"

	"schedule-admin-panel/internal/draft"
	"schedule-admin-panel/internal/models"
	"schedule-admin-panel/pkg/scheduleapi"
)

type EmployeeService struct {
	api *scheduleapi.Client
}

func NewEmployeeService(api *scheduleapi.Client) *EmployeeService {
	return &EmployeeService{api: api}
}

// Load возвращает справочник сотрудников
func (s *EmployeeService) Load(ctx context.Context) ([]models.Employee, error) {
	employees, err := s.api.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки сотрудников: %v", err)
	}
	return employees, nil
}

// Save отправляет черновик: без id - создание, с id - обновление
func (s *EmployeeService) Save(ctx context.Context, d draft.EmployeeDraft) error {
	payload, err := d.Payload()
	if err != nil {
		return err
	}

	if d.IsEditing() {
		return s.api.UpdateEmployee(ctx, d.ID, payload)
	}
	return s.api.CreateEmployee(ctx, payload)
}

// Delete удаляет сотрудника. Удаление немедленное и необратимое.
func (s *EmployeeService) Delete(ctx context.Context, id int) error {
	return s.api.DeleteEmployee(ctx, id)
}

// ResolveFio возвращает ФИО сотрудника из справочника или заглушку по id
func ResolveFio(employees []models.Employee, id int) string {
	for _, e := range employees {
		if e.ID == id {
			return e.Fio
		}
	}
	return fmt.Sprintf("ID: %d", id)
}
