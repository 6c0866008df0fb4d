package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"centavo/internal/models"
	"centavo/internal/services"
)

// ReportHandler handles the read-only report endpoints.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetReport handles GET /report?week_start=YYYY-MM-DD&q=text.
//
// A missing or malformed week_start falls back to the week containing today.
// The q parameter narrows the returned transaction list without changing the
// summary or per-budget totals.
func (h *ReportHandler) GetReport(c *gin.Context) {
	var weekStart models.Date
	if raw := c.Query("week_start"); raw != "" {
		if parsed, err := models.ParseDate(raw); err == nil {
			weekStart = parsed
		}
	}

	report, err := h.reportService.GetBudgetReport(weekStart, c.Query("q"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetOverview handles GET /overview.
func (h *ReportHandler) GetOverview(c *gin.Context) {
	overview, err := h.reportService.GetOverview()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}
