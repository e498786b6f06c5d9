package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"schedule-admin-panel/internal/draft"
	"schedule-admin-panel/internal/service"
)

// planPage отдает плановый график. Справочник и план грузятся
// параллельно; ошибка любого из запросов оставляет страницу пустой.
func (h *Handler) planPage(c *gin.Context) {
	entries, employees, err := h.basePlanService.Load(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to load base plan")
	}

	ids := make([]int, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, entry.EmployeeID)
	}

	data := gin.H{
		"Active":    "plan",
		"Entries":   entries,
		"Employees": employees,
		"Names":     employeeNames(employees, ids),
		"Error":     c.Query("err"),
	}

	if c.Query("create") == "1" {
		data["Draft"] = draft.NewBasePlanDraft(employees)
		data["ShowModal"] = true
	} else if editID, err := strconv.Atoi(c.Query("edit")); err == nil {
		if entry, ok := service.FindBasePlanEntry(entries, editID); ok {
			data["Draft"] = draft.BasePlanDraftFrom(entry)
			data["ShowModal"] = true
		}
	}

	c.HTML(http.StatusOK, "plan.html", data)
}

// planSave создает или обновляет запись плана. При ошибке форма
// остается открытой с нетронутым черновиком.
func (h *Handler) planSave(c *gin.Context) {
	d := draft.BasePlanDraft{
		ID:         formInt(c, "id"),
		EmployeeID: formInt(c, "employee_id"),
		Date:       c.PostForm("date"),
		Status:     c.PostForm("status"),
	}

	if err := h.basePlanService.Save(c.Request.Context(), d); err != nil {
		logrus.WithError(err).Error("Failed to save base plan entry")

		entries, employees, lerr := h.basePlanService.Load(c.Request.Context())
		if lerr != nil {
			logrus.WithError(lerr).Error("Failed to load base plan")
		}

		ids := make([]int, 0, len(entries))
		for _, entry := range entries {
			ids = append(ids, entry.EmployeeID)
		}

		c.HTML(http.StatusOK, "plan.html", gin.H{
			"Active":    "plan",
			"Entries":   entries,
			"Employees": employees,
			"Names":     employeeNames(employees, ids),
			"Draft":     d,
			"ShowModal": true,
			"Error":     "Ошибка: " + err.Error(),
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/plan")
}

func (h *Handler) planDelete(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		c.Redirect(http.StatusSeeOther, "/plan")
		return
	}

	if err := h.basePlanService.Delete(c.Request.Context(), id); err != nil {
		logrus.WithError(err).WithField("id", id).Error("Failed to delete base plan entry")
		redirectWithError(c, "/plan", "Ошибка удаления: "+err.Error())
		return
	}

	c.Redirect(http.StatusSeeOther, "/plan")
}

// planCalendar выгружает плановый график сотрудника в формате iCalendar
func (h *Handler) planCalendar(c *gin.Context) {
	employeeID, ok := paramInt(c, "employee_id")
	if !ok {
		c.String(http.StatusBadRequest, "некорректный идентификатор сотрудника")
		return
	}

	content, filename, err := h.reportService.PlanCalendar(c.Request.Context(), employeeID)
	if err != nil {
		logrus.WithError(err).WithField("employee_id", employeeID).Error("Failed to build plan calendar")
		c.String(http.StatusBadGateway, err.Error())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(content))
}
