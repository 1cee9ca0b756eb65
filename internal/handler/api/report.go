package api

import (
	"bytes"
	"net/http"

	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	q queries.ReportQueries
}

func NewReportHandler(q queries.ReportQueries) *ReportHandler {
	return &ReportHandler{q: q}
}

// @Summary Reservations report
// @Description Every reservation as CSV, dates in the configured pattern
// @Tags reports
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {string} string "CSV"
// @Failure 403 {object} httperr.Response
// @Router /admin/reports/reservations.csv [get]
func (h *ReportHandler) ReservationsCSV(c *gin.Context) {
	// Buffered so a failure midway still yields a clean error response.
	var buf bytes.Buffer
	if err := h.q.WriteReservationsCSV(c.Request.Context(), &buf); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="reservations.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
