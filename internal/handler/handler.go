package handler

import (
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"schedule-admin-panel/internal/draft"
	"schedule-admin-panel/internal/models"
	"schedule-admin-panel/internal/service"
)

type Handler struct {
	employeeService   *service.EmployeeService
	basePlanService   *service.BasePlanService
	adjustmentService *service.AdjustmentService
	reportService     *service.ReportService
	drafts            *draft.Store
}

func NewHandler(
	employeeService *service.EmployeeService,
	basePlanService *service.BasePlanService,
	adjustmentService *service.AdjustmentService,
	reportService *service.ReportService,
	drafts *draft.Store,
) *Handler {
	return &Handler{
		employeeService:   employeeService,
		basePlanService:   basePlanService,
		adjustmentService: adjustmentService,
		reportService:     reportService,
		drafts:            drafts,
	}
}

// RegisterRoutes вешает страницы редакторов, действия форм и выгрузки
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/users")
	})

	r.GET("/users", h.usersPage)
	r.POST("/users/save", h.usersSave)
	r.POST("/users/delete/:id", h.usersDelete)

	r.GET("/plan", h.planPage)
	r.POST("/plan/save", h.planSave)
	r.POST("/plan/delete/:id", h.planDelete)
	r.GET("/plan/ics/:employee_id", h.planCalendar)

	r.GET("/adjustments", h.adjustmentsPage)
	r.POST("/adjustments/open", h.adjustmentsOpen)
	r.POST("/adjustments/delete/:id", h.adjustmentsDelete)
	r.POST("/adjustments/draft/:sid/absences/add", h.adjustmentAbsenceAdd)
	r.POST("/adjustments/draft/:sid/absences/remove/:index", h.adjustmentAbsenceRemove)
	r.POST("/adjustments/draft/:sid/submit", h.adjustmentSubmit)
	r.POST("/adjustments/draft/:sid/cancel", h.adjustmentCancel)

	r.GET("/report/:year/:month/xlsx", h.reportExcel)
}

// TemplateFuncMap - функции, доступные шаблонам страниц
func TemplateFuncMap() template.FuncMap {
	return template.FuncMap{
		"statusLabel":   models.StatusLabel,
		"typeLabel":     models.EmployeeTypeLabel,
		"statusCodes":   func() []string { return models.StatusCodes },
		"employeeTypes": func() []string { return models.EmployeeTypes },
		"reportPath": func() string {
			now := time.Now()
			return fmt.Sprintf("/report/%d/%d/xlsx", now.Year(), int(now.Month()))
		},
	}
}

// redirectWithError возвращает на страницу, добавляя сообщение об ошибке
func redirectWithError(c *gin.Context, path, message string) {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	c.Redirect(http.StatusSeeOther, path+sep+"err="+url.QueryEscape(message))
}

// employeeNames строит словарь id -> ФИО для отображения в таблицах
func employeeNames(employees []models.Employee, ids []int) map[int]string {
	names := make(map[int]string, len(ids))
	for _, id := range ids {
		names[id] = service.ResolveFio(employees, id)
	}
	return names
}

func formInt(c *gin.Context, name string) int {
	val, _ := strconv.Atoi(c.PostForm(name))
	return val
}

func paramInt(c *gin.Context, name string) (int, bool) {
	val, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, false
	}
	return val, true
}
