package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schedule-admin-panel/internal/draft"
	"schedule-admin-panel/internal/models"
	"schedule-admin-panel/internal/service"
	"schedule-admin-panel/pkg/scheduleapi"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeAPI - remote API для тестов страниц: списки + журнал мутаций
type fakeAPI struct {
	mu       sync.Mutex
	failAll  bool
	failSave bool

	mutations []string // "METHOD path body"
}

func (f *fakeAPI) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		if f.failAll {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"api down"}`))
			return
		}

		if r.Method != http.MethodGet {
			body, _ := io.ReadAll(r.Body)
			f.mutations = append(f.mutations, r.Method+" "+r.URL.Path+" "+string(body))
			if f.failSave {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"error":"Employee not found"}`))
				return
			}
			w.Write([]byte(`{}`))
			return
		}

		switch r.URL.Path {
		case "/api/users":
			w.Write([]byte(`[{"id":1,"fio":"Иванов И.И.","team":"QA","employee_type":"OFFICE_FIXED","role":"user","is_active":true,"start_time":"09:00","end_time":"18:00","lunch_start":"13:00","lunch_duration":60},
				{"id":2,"fio":"Петров П.П.","team":"Dev","employee_type":"ALWAYS_REMOTE","role":"admin","is_active":false,"start_time":"10:00","end_time":"19:00","lunch_start":"14:00","lunch_duration":60}]`))
		case "/api/schedule-base":
			w.Write([]byte(`[{"id":10,"employee_id":1,"date":"2026-09-01","status":"О"}]`))
		case "/api/schedule-adjustments":
			w.Write([]byte(`[{"id":20,"employee_id":1,"date":"2026-08-31","status_override":null,"start_time_override":null,"end_time_override":null,"lunch_start_override":null,"absences":null}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func newTestPanel(t *testing.T) (*fakeAPI, *gin.Engine) {
	t.Helper()

	fake := &fakeAPI{}
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)

	client := scheduleapi.NewClient(srv.URL, 5*time.Second)
	h := NewHandler(
		service.NewEmployeeService(client),
		service.NewBasePlanService(client),
		service.NewAdjustmentService(client),
		service.NewReportService(client),
		draft.NewStore(),
	)

	router := gin.New()
	router.SetFuncMap(TemplateFuncMap())
	router.LoadHTMLGlob("../../web/templates/*.html")
	h.RegisterRoutes(router)

	return fake, router
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)
	return w
}

func TestUsersPage(t *testing.T) {
	_, router := newTestPanel(t)

	w := get(router, "/users")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "Иванов И.И.")
	// Неактивный сотрудник приглушен
	assert.Contains(t, body, "table-secondary text-muted")
	// Модальное окно закрыто
	assert.NotContains(t, body, "Новый сотрудник")
}

func TestUsersPageSurvivesLoadFailure(t *testing.T) {
	fake, router := newTestPanel(t)
	fake.failAll = true

	w := get(router, "/users")
	// Ошибка загрузки не блокирует страницу - список просто пуст
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "Иванов И.И.")
}

func TestUsersCreateModalDefaults(t *testing.T) {
	_, router := newTestPanel(t)

	body := get(router, "/users?create=1").Body.String()
	assert.Contains(t, body, "Новый сотрудник")
	assert.Contains(t, body, `value="09:00"`)
	assert.Contains(t, body, `value="18:00"`)
	assert.Contains(t, body, `value="13:00"`)
}

func TestUsersEditModal(t *testing.T) {
	_, router := newTestPanel(t)

	body := get(router, "/users?edit=2").Body.String()
	assert.Contains(t, body, "Редактирование")
	assert.Contains(t, body, `value="Петров П.П."`)
}

func TestUsersSaveCreatePostsNullTgID(t *testing.T) {
	fake, router := newTestPanel(t)

	w := postForm(router, "/users/save", url.Values{
		"id":             {"0"},
		"fio":            {"Иванов И.И."},
		"team":           {"QA"},
		"tg_user_id":     {""},
		"employee_type":  {"OFFICE_FIXED"},
		"role":           {"user"},
		"is_active":      {"on"},
		"start_time":     {"09:00"},
		"end_time":       {"18:00"},
		"lunch_start":    {"13:00"},
		"lunch_duration": {"60"},
	})

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/users", w.Header().Get("Location"))

	require.Len(t, fake.mutations, 1)
	assert.True(t, strings.HasPrefix(fake.mutations[0], "POST /api/users "))

	var payload map[string]json.RawMessage
	raw := strings.TrimPrefix(fake.mutations[0], "POST /api/users ")
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))
	assert.Equal(t, "null", string(payload["tg_user_id"]))
	assert.Equal(t, "true", string(payload["is_active"]))
}

func TestUsersSaveFailureKeepsDraft(t *testing.T) {
	fake, router := newTestPanel(t)
	fake.failSave = true

	w := postForm(router, "/users/save", url.Values{
		"fio":  {"Сидоров С.С."},
		"team": {"QA"},
	})

	// Форма остается открытой с черновиком и сообщением сервера
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `value="Сидоров С.С."`)
	assert.Contains(t, body, "Employee not found")
}

func TestUsersDelete(t *testing.T) {
	fake, router := newTestPanel(t)

	w := postForm(router, "/users/delete/2", url.Values{})
	require.Equal(t, http.StatusSeeOther, w.Code)

	require.Len(t, fake.mutations, 1)
	assert.True(t, strings.HasPrefix(fake.mutations[0], "DELETE /api/users/2"))
}

func TestPlanPageResolvesNames(t *testing.T) {
	_, router := newTestPanel(t)

	body := get(router, "/plan").Body.String()
	assert.Contains(t, body, "2026-09-01")
	assert.Contains(t, body, "Иванов И.И.")
}

func TestPlanSaveUpdateDispatch(t *testing.T) {
	fake, router := newTestPanel(t)

	w := postForm(router, "/plan/save", url.Values{
		"id":          {"10"},
		"employee_id": {"1"},
		"date":        {"2026-09-01"},
		"status":      {"В"},
	})

	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Len(t, fake.mutations, 1)
	assert.True(t, strings.HasPrefix(fake.mutations[0], "PATCH /api/schedule-base/10 "))
}

// Полный проход через сессию черновика: открыть правку, добавить две
// отлучки, удалить первую, сохранить. В PATCH уходит ровно вторая.
func TestAdjustmentDraftFlow(t *testing.T) {
	fake, router := newTestPanel(t)

	w := postForm(router, "/adjustments/open", url.Values{"id": {"20"}})
	require.Equal(t, http.StatusSeeOther, w.Code)

	location := w.Header().Get("Location")
	require.True(t, strings.HasPrefix(location, "/adjustments?draft="), location)
	sid := strings.TrimPrefix(location, "/adjustments?draft=")

	// Модальное окно рендерится из сессии
	body := get(router, location).Body.String()
	assert.Contains(t, body, "Редактирование правки")

	scalars := url.Values{
		"employee_id":          {"1"},
		"date":                 {"2026-08-31"},
		"status_override":      {""},
		"start_time_override":  {""},
		"end_time_override":    {""},
		"lunch_start_override": {""},
	}

	addForm := func(from, to, comment string) url.Values {
		form := url.Values{}
		for k, v := range scalars {
			form[k] = v
		}
		form.Set("pending_from", from)
		form.Set("pending_to", to)
		form.Set("pending_comment", comment)
		return form
	}

	w = postForm(router, "/adjustments/draft/"+sid+"/absences/add", addForm("12:00", "12:30", "A"))
	require.Equal(t, http.StatusSeeOther, w.Code)
	w = postForm(router, "/adjustments/draft/"+sid+"/absences/add", addForm("15:00", "15:15", "B"))
	require.Equal(t, http.StatusSeeOther, w.Code)

	// Обе отлучки видны в форме
	body = get(router, location).Body.String()
	assert.Contains(t, body, "12:00 - 12:30 (A)")
	assert.Contains(t, body, "15:00 - 15:15 (B)")

	w = postForm(router, "/adjustments/draft/"+sid+"/absences/remove/0", addForm("", "", ""))
	require.Equal(t, http.StatusSeeOther, w.Code)

	w = postForm(router, "/adjustments/draft/"+sid+"/submit", addForm("", "", ""))
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/adjustments", w.Header().Get("Location"))

	require.Len(t, fake.mutations, 1)
	assert.True(t, strings.HasPrefix(fake.mutations[0], "PATCH /api/schedule-adjustments/20 "))

	var payload struct {
		StatusOverride *string                  `json:"status_override"`
		Absences       []models.AbsenceInterval `json:"absences"`
	}
	raw := strings.TrimPrefix(fake.mutations[0], "PATCH /api/schedule-adjustments/20 ")
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))
	assert.Nil(t, payload.StatusOverride)
	assert.Equal(t, []models.AbsenceInterval{{From: "15:00", To: "15:15", Comment: "B"}}, payload.Absences)

	// Сессия закрыта после успешного сохранения
	body = get(router, location).Body.String()
	assert.NotContains(t, body, "Редактирование правки")
}

func TestAdjustmentAbsenceAddValidation(t *testing.T) {
	fake, router := newTestPanel(t)

	w := postForm(router, "/adjustments/open", url.Values{})
	sid := strings.TrimPrefix(w.Header().Get("Location"), "/adjustments?draft=")

	form := url.Values{
		"employee_id":  {"1"},
		"date":         {"2026-09-01"},
		"pending_from": {"12:00"},
		"pending_to":   {""},
	}
	w = postForm(router, "/adjustments/draft/"+sid+"/absences/add", form)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "err=")

	// Список отлучек не изменился, незавершенный ввод сохранен
	body := get(router, "/adjustments?draft="+sid).Body.String()
	assert.NotContains(t, body, "alert-secondary")
	assert.Contains(t, body, `value="12:00"`)
	assert.Empty(t, fake.mutations)
}

func TestAdjustmentCancelDiscardsDraft(t *testing.T) {
	fake, router := newTestPanel(t)

	w := postForm(router, "/adjustments/open", url.Values{})
	location := w.Header().Get("Location")
	sid := strings.TrimPrefix(location, "/adjustments?draft=")

	w = postForm(router, "/adjustments/draft/"+sid+"/cancel", url.Values{})
	require.Equal(t, http.StatusSeeOther, w.Code)

	// Черновик выброшен, модальное окно больше не открывается
	body := get(router, location).Body.String()
	assert.NotContains(t, body, "Новая правка")
	assert.Empty(t, fake.mutations)
}

func TestAdjustmentSubmitFailureKeepsSession(t *testing.T) {
	fake, router := newTestPanel(t)

	w := postForm(router, "/adjustments/open", url.Values{})
	sid := strings.TrimPrefix(w.Header().Get("Location"), "/adjustments?draft=")

	fake.failSave = true
	form := url.Values{"employee_id": {"1"}, "date": {"2026-09-01"}}
	w = postForm(router, "/adjustments/draft/"+sid+"/submit", form)

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "draft="+sid)
	assert.Contains(t, w.Header().Get("Location"), "err=")

	// Черновик доступен для повтора
	body := get(router, "/adjustments?draft="+sid).Body.String()
	assert.Contains(t, body, "Новая правка")
}

func TestReportExcelRoute(t *testing.T) {
	_, router := newTestPanel(t)

	w := get(router, "/report/2026/9/xlsx")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, excelContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "schedule_2026_09.xlsx")

	w = get(router, "/report/2026/13/xlsx")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlanCalendarRoute(t *testing.T) {
	_, router := newTestPanel(t)

	w := get(router, "/plan/ics/1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/calendar")
	assert.Contains(t, w.Body.String(), "BEGIN:VCALENDAR")
}
