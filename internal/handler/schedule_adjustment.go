package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"schedule-admin-panel/internal/draft"
	"schedule-admin-panel/internal/service"
)

// adjustmentsPage отдает список ручных правок. Если в запросе есть
// живая сессия черновика, модальное окно рендерится из нее.
func (h *Handler) adjustmentsPage(c *gin.Context) {
	adjustments, employees, err := h.adjustmentService.Load(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to load adjustments")
	}

	ids := make([]int, 0, len(adjustments))
	for _, adj := range adjustments {
		ids = append(ids, adj.EmployeeID)
	}

	data := gin.H{
		"Active":      "adjustments",
		"Adjustments": adjustments,
		"Employees":   employees,
		"Names":       employeeNames(employees, ids),
		"Error":       c.Query("err"),
	}

	if sid := c.Query("draft"); sid != "" {
		if d, ok := h.drafts.Get(sid); ok {
			data["Draft"] = d
			data["Sid"] = sid
			data["ShowModal"] = true
		}
	}

	c.HTML(http.StatusOK, "adjustments.html", data)
}

// adjustmentsOpen открывает сессию черновика: пустой для создания,
// копия записи для редактирования. Черновик живет до сохранения
// или отмены.
func (h *Handler) adjustmentsOpen(c *gin.Context) {
	adjustments, employees, err := h.adjustmentService.Load(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to load adjustments")
		redirectWithError(c, "/adjustments", "Ошибка: "+err.Error())
		return
	}

	var d *draft.AdjustmentDraft
	if id := formInt(c, "id"); id != 0 {
		adj, ok := service.FindAdjustment(adjustments, id)
		if !ok {
			redirectWithError(c, "/adjustments", "Правка не найдена")
			return
		}
		d = draft.AdjustmentDraftFrom(adj)
	} else {
		d = draft.NewAdjustmentDraft(employees)
	}

	sid := h.drafts.Put(d)
	c.Redirect(http.StatusSeeOther, "/adjustments?draft="+sid)
}

// adjustmentAbsenceAdd добавляет отлучку в черновик. Без заполненного
// времени список не меняется, а форма получает сообщение об ошибке.
func (h *Handler) adjustmentAbsenceAdd(c *gin.Context) {
	sid := c.Param("sid")
	d, ok := h.drafts.Get(sid)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/adjustments")
		return
	}

	bindAdjustmentFields(c, d)

	if err := d.AddPendingAbsence(); err != nil {
		redirectWithError(c, "/adjustments?draft="+sid, "Заполните время")
		return
	}

	c.Redirect(http.StatusSeeOther, "/adjustments?draft="+sid)
}

// adjustmentAbsenceRemove убирает отлучку по позиции; остальные
// переиндексируются
func (h *Handler) adjustmentAbsenceRemove(c *gin.Context) {
	sid := c.Param("sid")
	d, ok := h.drafts.Get(sid)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/adjustments")
		return
	}

	bindAdjustmentFields(c, d)

	if index, ok := paramInt(c, "index"); ok {
		d.RemoveAbsence(index)
	}

	c.Redirect(http.StatusSeeOther, "/adjustments?draft="+sid)
}

// adjustmentSubmit отправляет черновик целиком. Сессия закрывается
// только при успехе - после ошибки черновик доступен для повтора.
func (h *Handler) adjustmentSubmit(c *gin.Context) {
	sid := c.Param("sid")
	d, ok := h.drafts.Get(sid)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/adjustments")
		return
	}

	bindAdjustmentFields(c, d)

	if err := h.adjustmentService.Save(c.Request.Context(), d); err != nil {
		logrus.WithError(err).Error("Failed to save adjustment")
		redirectWithError(c, "/adjustments?draft="+sid, "Ошибка: "+err.Error())
		return
	}

	h.drafts.Delete(sid)
	c.Redirect(http.StatusSeeOther, "/adjustments")
}

// adjustmentCancel выбрасывает черновик вместе с сессией
func (h *Handler) adjustmentCancel(c *gin.Context) {
	h.drafts.Delete(c.Param("sid"))
	c.Redirect(http.StatusSeeOther, "/adjustments")
}

func (h *Handler) adjustmentsDelete(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		c.Redirect(http.StatusSeeOther, "/adjustments")
		return
	}

	if err := h.adjustmentService.Delete(c.Request.Context(), id); err != nil {
		logrus.WithError(err).WithField("id", id).Error("Failed to delete adjustment")
		redirectWithError(c, "/adjustments", "Ошибка удаления: "+err.Error())
		return
	}

	c.Redirect(http.StatusSeeOther, "/adjustments")
}

// bindAdjustmentFields переносит скалярные поля формы и незавершенный
// ввод отлучки в черновик. Список отлучек меняется только явными
// действиями добавления и удаления.
func bindAdjustmentFields(c *gin.Context, d *draft.AdjustmentDraft) {
	d.EmployeeID = formInt(c, "employee_id")
	d.Date = c.PostForm("date")
	d.StatusOverride = c.PostForm("status_override")
	d.StartTimeOverride = c.PostForm("start_time_override")
	d.EndTimeOverride = c.PostForm("end_time_override")
	d.LunchStartOverride = c.PostForm("lunch_start_override")
	d.Pending.From = c.PostForm("pending_from")
	d.Pending.To = c.PostForm("pending_to")
	d.Pending.Comment = c.PostForm("pending_comment")
}
