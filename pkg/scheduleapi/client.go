package scheduleapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"schedule-admin-panel/internal/models"
)

// Client - HTTP-клиент remote API графиков. Бизнес-логика и хранение
// живут на стороне сервера, клиент только гоняет JSON.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// APIError - ошибка, возвращенная сервером. Message берется из поля
// error тела ответа, если сервер его прислал.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// --- Сотрудники ---

func (c *Client) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (c *Client) CreateEmployee(ctx context.Context, payload models.EmployeePayload) error {
	return c.do(ctx, http.MethodPost, "/api/users", payload, nil)
}

func (c *Client) UpdateEmployee(ctx context.Context, id int, payload models.EmployeePayload) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/users/%d", id), payload, nil)
}

func (c *Client) DeleteEmployee(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/users/%d", id), nil, nil)
}

// --- Плановый график ---

func (c *Client) ListBasePlan(ctx context.Context) ([]models.BasePlanEntry, error) {
	var entries []models.BasePlanEntry
	if err := c.do(ctx, http.MethodGet, "/api/schedule-base", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) CreateBasePlanEntry(ctx context.Context, payload models.BasePlanPayload) error {
	return c.do(ctx, http.MethodPost, "/api/schedule-base", payload, nil)
}

func (c *Client) UpdateBasePlanEntry(ctx context.Context, id int, payload models.BasePlanPayload) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/schedule-base/%d", id), payload, nil)
}

func (c *Client) DeleteBasePlanEntry(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/schedule-base/%d", id), nil, nil)
}

// --- Ручные правки ---

func (c *Client) ListAdjustments(ctx context.Context) ([]models.ScheduleAdjustment, error) {
	var adjustments []models.ScheduleAdjustment
	if err := c.do(ctx, http.MethodGet, "/api/schedule-adjustments", nil, &adjustments); err != nil {
		return nil, err
	}
	return adjustments, nil
}

func (c *Client) CreateAdjustment(ctx context.Context, payload models.AdjustmentPayload) error {
	return c.do(ctx, http.MethodPost, "/api/schedule-adjustments", payload, nil)
}

func (c *Client) UpdateAdjustment(ctx context.Context, id int, payload models.AdjustmentPayload) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/schedule-adjustments/%d", id), payload, nil)
}

func (c *Client) DeleteAdjustment(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/schedule-adjustments/%d", id), nil, nil)
}

// do выполняет один запрос без повторов. Каждое действие пользователя -
// ровно одна попытка.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("ошибка сериализации запроса: %v", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("ошибка создания запроса: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("ошибка обращения к серверу: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.parseError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("ошибка разбора ответа: %v", err)
		}
	}

	return nil
}

// parseError достает человекочитаемое сообщение из тела ошибки.
// Поле error предпочитается общему сообщению.
func (c *Client) parseError(resp *http.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("сервер вернул ошибку (код %d)", resp.StatusCode),
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		apiErr.Message = body.Error
	}

	return apiErr
}
