package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"schedule-admin-panel/internal/draft"
	"schedule-admin-panel/internal/service"
)

// usersPage отдает справочник сотрудников. Ошибка загрузки только
// логируется - страница показывает пустой список.
func (h *Handler) usersPage(c *gin.Context) {
	employees, err := h.employeeService.Load(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to load employees")
	}

	data := gin.H{
		"Active":    "users",
		"Employees": employees,
		"Error":     c.Query("err"),
	}

	if c.Query("create") == "1" {
		data["Draft"] = draft.NewEmployeeDraft()
		data["ShowModal"] = true
	} else if editID, err := strconv.Atoi(c.Query("edit")); err == nil {
		if employee, ok := service.FindEmployee(employees, editID); ok {
			data["Draft"] = draft.EmployeeDraftFrom(employee)
			data["ShowModal"] = true
		}
	}

	c.HTML(http.StatusOK, "users.html", data)
}

// usersSave создает или обновляет сотрудника. При ошибке форма
// остается открытой с нетронутым черновиком.
func (h *Handler) usersSave(c *gin.Context) {
	d := bindEmployeeDraft(c)

	if err := h.employeeService.Save(c.Request.Context(), d); err != nil {
		logrus.WithError(err).Error("Failed to save employee")

		employees, lerr := h.employeeService.Load(c.Request.Context())
		if lerr != nil {
			logrus.WithError(lerr).Error("Failed to load employees")
		}

		c.HTML(http.StatusOK, "users.html", gin.H{
			"Active":    "users",
			"Employees": employees,
			"Draft":     d,
			"ShowModal": true,
			"Error":     "Ошибка: " + err.Error(),
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/users")
}

func (h *Handler) usersDelete(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		c.Redirect(http.StatusSeeOther, "/users")
		return
	}

	if err := h.employeeService.Delete(c.Request.Context(), id); err != nil {
		logrus.WithError(err).WithField("id", id).Error("Failed to delete employee")
		redirectWithError(c, "/users", "Ошибка удаления: "+err.Error())
		return
	}

	c.Redirect(http.StatusSeeOther, "/users")
}

func bindEmployeeDraft(c *gin.Context) draft.EmployeeDraft {
	d := draft.EmployeeDraft{
		ID:            formInt(c, "id"),
		Fio:           c.PostForm("fio"),
		Team:          c.PostForm("team"),
		TgUserID:      c.PostForm("tg_user_id"),
		EmployeeType:  c.PostForm("employee_type"),
		Role:          c.PostForm("role"),
		IsActive:      c.PostForm("is_active") != "",
		StartTime:     c.PostForm("start_time"),
		EndTime:       c.PostForm("end_time"),
		LunchStart:    c.PostForm("lunch_start"),
		LunchDuration: formInt(c, "lunch_duration"),
	}

	return d
}
