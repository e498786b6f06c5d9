package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// reportExcel отдает сводный отчет за месяц в формате xlsx
func (h *Handler) reportExcel(c *gin.Context) {
	year, yearOK := paramInt(c, "year")
	month, monthOK := paramInt(c, "month")
	if !yearOK || !monthOK || month < 1 || month > 12 {
		c.String(http.StatusBadRequest, "некорректный год или месяц")
		return
	}

	buf, filename, err := h.reportService.MonthExcel(c.Request.Context(), year, time.Month(month))
	if err != nil {
		logrus.WithError(err).WithField("year", year).WithField("month", month).
			Error("Failed to build month report")
		c.String(http.StatusBadGateway, err.Error())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, excelContentType, buf.Bytes())
}
