package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"teamboard/internal/dto"
	apierrors "teamboard/internal/errors"
	"teamboard/internal/services"
)

// ReportHandler exposes the derived reporting metrics.
type ReportHandler struct {
	reportService *services.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// GetOverview returns the dashboard headline metrics.
func (h *ReportHandler) GetOverview(c *gin.Context) {
	overview, err := h.reportService.GetOverview()
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToOverviewDTO(*overview))
}

// GetEmployeePerformance returns employees ranked by completion rate.
func (h *ReportHandler) GetEmployeePerformance(c *gin.Context) {
	ranking, err := h.reportService.GetEmployeePerformance()
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"performance": dto.ToEmployeePerformanceDTOs(ranking)})
}

// GetAttendanceReport summarizes all attendance records on file.
func (h *ReportHandler) GetAttendanceReport(c *gin.Context) {
	summary, err := h.reportService.GetAttendanceReport()
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToAttendanceSummaryDTO(summary))
}
